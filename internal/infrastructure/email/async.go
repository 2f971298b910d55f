package email

import (
	"context"
	"time"

	"github.com/vpndash/vpndash/internal/shared/goroutine"
	"github.com/vpndash/vpndash/internal/shared/logger"
	"github.com/vpndash/vpndash/internal/shared/utils"
)

// AsyncService hands every message to the wrapped service on its own goroutine
// and only logs delivery failures.
type AsyncService struct {
	inner    Service
	logger   logger.Interface
	inflight *goroutine.Group
}

func NewAsyncService(inner Service, log logger.Interface) *AsyncService {
	return &AsyncService{
		inner:    inner,
		logger:   log,
		inflight: goroutine.NewGroup(log),
	}
}

func (s *AsyncService) SendWelcomeEmail(to, name string, subscriptionExpiry time.Time) error {
	s.inflight.Go("email.welcome", func() {
		if err := s.inner.SendWelcomeEmail(to, name, subscriptionExpiry); err != nil {
			s.logger.Warnw("failed to send welcome email", "to", utils.MaskEmail(to), "error", err)
		}
	})
	return nil
}

func (s *AsyncService) SendPasswordChangedEmail(to string) error {
	s.inflight.Go("email.password_changed", func() {
		if err := s.inner.SendPasswordChangedEmail(to); err != nil {
			s.logger.Warnw("failed to send password changed email", "to", utils.MaskEmail(to), "error", err)
		}
	})
	return nil
}

// Drain waits for messages still being delivered.
func (s *AsyncService) Drain(ctx context.Context) error {
	return s.inflight.Wait(ctx)
}
