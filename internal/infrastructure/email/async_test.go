package email

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vpndash/vpndash/internal/shared/logger"
)

type recordingService struct {
	sent chan string
	err  error
}

func (r *recordingService) SendWelcomeEmail(to, _ string, _ time.Time) error {
	r.sent <- "welcome:" + to
	return r.err
}

func (r *recordingService) SendPasswordChangedEmail(to string) error {
	r.sent <- "password:" + to
	return r.err
}

func (r *recordingService) next(t *testing.T) string {
	t.Helper()
	select {
	case msg := <-r.sent:
		return msg
	case <-time.After(time.Second):
		require.FailNow(t, "message was not delivered")
		return ""
	}
}

func TestAsyncService_Delivers(t *testing.T) {
	inner := &recordingService{sent: make(chan string, 2)}
	svc := NewAsyncService(inner, logger.NewNopLogger())

	require.NoError(t, svc.SendWelcomeEmail("a@example.com", "A", time.Now()))
	assert.Equal(t, "welcome:a@example.com", inner.next(t))

	require.NoError(t, svc.SendPasswordChangedEmail("a@example.com"))
	assert.Equal(t, "password:a@example.com", inner.next(t))
}

func TestAsyncService_SwallowsDeliveryErrors(t *testing.T) {
	inner := &recordingService{sent: make(chan string, 1), err: errors.New("smtp down")}
	svc := NewAsyncService(inner, logger.NewNopLogger())

	assert.NoError(t, svc.SendPasswordChangedEmail("a@example.com"))
	assert.Equal(t, "password:a@example.com", inner.next(t))
}

func TestAsyncService_Drain(t *testing.T) {
	inner := &recordingService{sent: make(chan string, 2)}
	svc := NewAsyncService(inner, logger.NewNopLogger())

	require.NoError(t, svc.SendWelcomeEmail("a@example.com", "A", time.Now()))
	require.NoError(t, svc.SendPasswordChangedEmail("b@example.com"))

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, svc.Drain(ctx))
	assert.Len(t, inner.sent, 2)
}
