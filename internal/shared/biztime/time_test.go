package biztime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoundaries_UTC(t *testing.T) {
	require.NoError(t, Init("UTC"))

	// Wednesday
	ts := time.Date(2025, 3, 12, 15, 4, 5, 0, time.UTC)

	assert.Equal(t, time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC), StartOfDayUTC(ts))
	assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), StartOfWeekUTC(ts))
	assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), StartOfMonthUTC(ts))
}

func TestStartOfWeek_Sunday(t *testing.T) {
	require.NoError(t, Init("UTC"))

	sunday := time.Date(2025, 3, 16, 23, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), StartOfWeekUTC(sunday))
}

func TestBoundaries_OffsetZone(t *testing.T) {
	require.NoError(t, Init("Asia/Tokyo"))
	t.Cleanup(func() { _ = Init("UTC") })

	// 2025-03-12 16:00 UTC is 2025-03-13 01:00 in Tokyo
	ts := time.Date(2025, 3, 12, 16, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2025, 3, 12, 15, 0, 0, 0, time.UTC), StartOfDayUTC(ts))
}

func TestFixedClock(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	c := NewFixedClock(start)

	c.Advance(125 * time.Second)

	assert.Equal(t, start.Add(125*time.Second), c.Now())
}

func TestInit_InvalidZone(t *testing.T) {
	assert.Error(t, Init("Not/AZone"))
}
