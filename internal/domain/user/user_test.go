package user

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "github.com/vpndash/vpndash/internal/domain/user/valueobjects"
)

func mockShortIDGenerator() func() (string, error) {
	counter := 0
	return func() (string, error) {
		counter++
		return fmt.Sprintf("usr_test_%d", counter), nil
	}
}

func newTestUser(t *testing.T, now time.Time) *User {
	t.Helper()
	name, err := vo.NewName("Alice")
	require.NoError(t, err)
	email, err := vo.NewEmail("a@x.com")
	require.NoError(t, err)

	u, err := NewUser(name, email, "hash", vo.PlanFree, 7*24*time.Hour, now, mockShortIDGenerator())
	require.NoError(t, err)
	return u
}

func TestNewUser_TrialDefaults(t *testing.T) {
	now := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)
	u := newTestUser(t, now)

	assert.Equal(t, "usr_test_1", u.SID())
	assert.Equal(t, vo.PlanFree, u.Plan())
	assert.Equal(t, now.Add(7*24*time.Hour), u.SubscriptionExpiry())
	assert.Equal(t, now, u.LastLogin())
	assert.Equal(t, now, u.CreatedAt())
	assert.Zero(t, u.TotalDataUsed())
	assert.True(t, u.IsSubscriptionActive(now))
	assert.False(t, u.IsSubscriptionActive(now.Add(8*24*time.Hour)))
}

func TestNewUser_GeneratorFailure(t *testing.T) {
	name, _ := vo.NewName("Alice")
	email, _ := vo.NewEmail("a@x.com")

	_, err := NewUser(name, email, "hash", vo.PlanFree, time.Hour, time.Now(), func() (string, error) {
		return "", fmt.Errorf("no entropy")
	})

	assert.Error(t, err)
}

func TestUser_RecordLogin(t *testing.T) {
	now := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)
	u := newTestUser(t, now)

	later := now.Add(time.Hour)
	u.RecordLogin(later)

	assert.Equal(t, later, u.LastLogin())
	assert.Equal(t, now, u.CreatedAt())
}

func TestUser_SetID(t *testing.T) {
	u := newTestUser(t, time.Now())

	require.NoError(t, u.SetID(5))
	assert.Error(t, u.SetID(6))
	assert.Equal(t, uint(5), u.ID())
}

func TestReconstructUser(t *testing.T) {
	now := time.Now().UTC()
	u, err := ReconstructUser(UserSnapshot{
		ID: 1, SID: "usr_a", Name: "Bob", Email: "b@x.com", PasswordHash: "h",
		Plan: "business", SubscriptionExpiry: now, TotalDataUsed: 1.5,
		CreatedAt: now, UpdatedAt: now, LastLogin: now,
	})
	require.NoError(t, err)
	assert.Equal(t, vo.PlanBusiness, u.Plan())
	assert.Equal(t, 1.5, u.TotalDataUsed())

	_, err = ReconstructUser(UserSnapshot{ID: 0})
	assert.Error(t, err)
}
