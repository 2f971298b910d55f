package usecases

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetTrends(t *testing.T) {
	uc := NewGetTrendsUseCase()

	points := uc.Execute()
	assert.Len(t, points, 7)
	assert.Equal(t, "00:00", points[0].Hour)
	assert.Equal(t, "23:00", points[6].Hour)

	points[0].Upload = -1
	assert.Equal(t, 50.0, uc.Execute()[0].Upload, "callers get a copy")
}
