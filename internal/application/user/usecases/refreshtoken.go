package usecases

import (
	"context"

	"github.com/vpndash/vpndash/internal/domain/user"
	"github.com/vpndash/vpndash/internal/infrastructure/auth"
	"github.com/vpndash/vpndash/internal/shared/errors"
	"github.com/vpndash/vpndash/internal/shared/logger"
)

type RefreshTokenUseCase struct {
	userRepo   user.Repository
	jwtService JWTService
	revoker    auth.TokenRevoker
	logger     logger.Interface
}

func NewRefreshTokenUseCase(userRepo user.Repository, jwtService JWTService, revoker auth.TokenRevoker, logger logger.Interface) *RefreshTokenUseCase {
	return &RefreshTokenUseCase{
		userRepo:   userRepo,
		jwtService: jwtService,
		revoker:    revoker,
		logger:     logger,
	}
}

// Execute exchanges a refresh token for a new pair in the same family and
// retires the presented token. The user must still exist.
func (uc *RefreshTokenUseCase) Execute(ctx context.Context, refreshToken string) (*auth.TokenPair, error) {
	if refreshToken == "" {
		return nil, errors.NewBadRequestError("Refresh token is required")
	}

	claims, pair, err := uc.jwtService.Refresh(refreshToken)
	if err != nil {
		uc.logger.Warnw("refresh token rejected", "error", err)
		return nil, errors.NewTokenInvalidError()
	}

	revoked, err := auth.IsClaimsRevoked(ctx, uc.revoker, claims)
	if err != nil {
		uc.logger.Errorw("failed to check token revocation", "error", err)
	} else if revoked {
		return nil, errors.NewTokenInvalidError("token has been revoked")
	}

	u, err := uc.userRepo.GetBySID(ctx, claims.UserSID)
	if err != nil {
		uc.logger.Errorw("failed to get user", "user_id", claims.UserSID, "error", err)
		return nil, err
	}
	if u == nil {
		return nil, errors.NewTokenInvalidError()
	}

	// a refresh token is single use; the new pair replaces it
	if claims.ExpiresAt != nil {
		if err := uc.revoker.Revoke(ctx, claims.ID, claims.ExpiresAt.Time); err != nil {
			uc.logger.Errorw("failed to retire refresh token", "user_id", claims.UserSID, "error", err)
		}
	}

	return pair, nil
}
