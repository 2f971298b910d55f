package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/vpndash/vpndash/internal/infrastructure/auth"
	"github.com/vpndash/vpndash/internal/shared/biztime"
	"github.com/vpndash/vpndash/internal/shared/logger"
)

type LogoutCommand struct {
	UserSID   string
	TokenID   string
	FamilyID  string
	ExpiresAt time.Time
}

type LogoutUseCase struct {
	revoker   auth.TokenRevoker
	familyTTL time.Duration
	clock     biztime.Clock
	logger    logger.Interface
}

// NewLogoutUseCase takes familyTTL, the refresh token lifetime, as the longest
// any token of a login can outlive the logout.
func NewLogoutUseCase(revoker auth.TokenRevoker, familyTTL time.Duration, clock biztime.Clock, logger logger.Interface) *LogoutUseCase {
	return &LogoutUseCase{
		revoker:   revoker,
		familyTTL: familyTTL,
		clock:     clock,
		logger:    logger,
	}
}

// Execute revokes the access token the request was made with and the token
// family it belongs to, so refresh tokens from the same login stop working.
func (uc *LogoutUseCase) Execute(ctx context.Context, cmd LogoutCommand) error {
	if cmd.TokenID != "" {
		if err := uc.revoker.Revoke(ctx, cmd.TokenID, cmd.ExpiresAt); err != nil {
			uc.logger.Errorw("failed to revoke token", "user_id", cmd.UserSID, "error", err)
			return fmt.Errorf("failed to revoke token: %w", err)
		}
	}

	if cmd.FamilyID != "" {
		if err := uc.revoker.Revoke(ctx, cmd.FamilyID, uc.clock.Now().Add(uc.familyTTL)); err != nil {
			uc.logger.Errorw("failed to revoke token family", "user_id", cmd.UserSID, "error", err)
			return fmt.Errorf("failed to revoke token family: %w", err)
		}
	}

	uc.logger.Infow("user logged out", "user_id", cmd.UserSID)
	return nil
}
