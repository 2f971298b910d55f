package mappers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vpndash/vpndash/internal/domain/connection"
	"github.com/vpndash/vpndash/internal/infrastructure/persistence/models"
)

func TestConnectionMapper_ActiveUserID(t *testing.T) {
	m := NewConnectionMapper()
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	c, err := connection.NewConnection(9, "server1", start, func() (string, error) { return "conn_a", nil })
	require.NoError(t, err)

	model := m.ToModel(c)
	require.NotNil(t, model.ActiveUserID)
	assert.Equal(t, uint(9), *model.ActiveUserID)

	require.NoError(t, c.Stop(start.Add(time.Minute), 0.1))
	model = m.ToModel(c)
	assert.Nil(t, model.ActiveUserID)
	assert.Equal(t, "disconnected", model.Status)
}

func TestConnectionMapper_RejectsUnknownStatus(t *testing.T) {
	m := NewConnectionMapper()

	_, err := m.ToEntity(&models.ConnectionModel{ID: 1, SID: "conn_a", UserID: 1, Status: "paused"})
	assert.Error(t, err)

	_, err = m.LogToEntities([]*models.ConnectionLogModel{{ID: 1, SID: "log_a", Status: "lost"}})
	assert.Error(t, err)
}

func TestUserMapper_RoundTrip(t *testing.T) {
	m := NewUserMapper()
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	entity, err := m.ToEntity(&models.UserModel{
		ID: 3, SID: "usr_a", Name: "Alice", Email: "a@x.com", PasswordHash: "h",
		SubscriptionPlan: "premium", SubscriptionExpiry: now, LastLogin: now,
		TotalDataUsed: 2.5, CreatedAt: now, UpdatedAt: now,
	})
	require.NoError(t, err)

	model := m.ToModel(entity)
	assert.Equal(t, "premium", model.SubscriptionPlan)
	assert.Equal(t, 2.5, model.TotalDataUsed)
	assert.Equal(t, "usr_a", model.SID)
}
