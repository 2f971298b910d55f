package usecases

import (
	"context"

	"github.com/vpndash/vpndash/internal/application/common"
	"github.com/vpndash/vpndash/internal/domain/user"
	"github.com/vpndash/vpndash/internal/shared/errors"
	"github.com/vpndash/vpndash/internal/shared/logger"
)

type GetProfileQuery struct {
	UserSID string
	// RequestedSID is the optional ?userId= parameter. Only the caller's own
	// profile is visible.
	RequestedSID string
}

type GetProfileUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewGetProfileUseCase(userRepo user.Repository, logger logger.Interface) *GetProfileUseCase {
	return &GetProfileUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *GetProfileUseCase) Execute(ctx context.Context, query GetProfileQuery) (*user.User, error) {
	if query.RequestedSID != "" && query.RequestedSID != query.UserSID {
		return nil, errors.NewNotFoundError("User not found")
	}
	return common.LookupUser(ctx, uc.userRepo, query.UserSID, uc.logger)
}
