package usecases

import (
	"time"

	"github.com/vpndash/vpndash/internal/infrastructure/auth"
)

type EmailService interface {
	SendWelcomeEmail(to, name string, subscriptionExpiry time.Time) error
	SendPasswordChangedEmail(to string) error
}

type JWTService interface {
	Generate(userSID string) (*auth.TokenPair, error)
	Refresh(refreshToken string) (*auth.Claims, *auth.TokenPair, error)
}

// NameSanitizer strips markup from user-supplied display names.
type NameSanitizer interface {
	StripTags(text string) string
}

// SubscriptionPolicy is what a new account gets.
type SubscriptionPolicy struct {
	Plan  string
	Trial time.Duration
}
