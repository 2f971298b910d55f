package email

import (
	"time"

	sharedConfig "github.com/vpndash/vpndash/internal/shared/config"
	"github.com/vpndash/vpndash/internal/shared/logger"
	"github.com/vpndash/vpndash/internal/shared/utils"
)

// Service sends the account notices.
type Service interface {
	SendWelcomeEmail(to, name string, subscriptionExpiry time.Time) error
	SendPasswordChangedEmail(to string) error
}

// NewService returns the SMTP service, sending off the request path, when email
// is enabled and a logging no-op otherwise.
func NewService(cfg sharedConfig.EmailConfig, log logger.Interface) Service {
	if !cfg.Enabled || cfg.SMTPHost == "" {
		log.Infow("email delivery disabled")
		return &NoopEmailService{logger: log}
	}

	log.Infow("email service initialized",
		"host", cfg.SMTPHost,
		"port", cfg.SMTPPort,
		"from", cfg.FromAddress,
	)
	return NewAsyncService(NewSMTPEmailService(SMTPConfigFrom(cfg)), log)
}

type NoopEmailService struct {
	logger logger.Interface
}

func (n *NoopEmailService) SendWelcomeEmail(to, _ string, _ time.Time) error {
	n.logger.Debugw("email disabled, skipping welcome email", "to", utils.MaskEmail(to))
	return nil
}

func (n *NoopEmailService) SendPasswordChangedEmail(to string) error {
	n.logger.Debugw("email disabled, skipping password changed email", "to", utils.MaskEmail(to))
	return nil
}
