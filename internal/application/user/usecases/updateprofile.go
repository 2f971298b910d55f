package usecases

import (
	"context"
	"fmt"

	"github.com/vpndash/vpndash/internal/application/common"
	"github.com/vpndash/vpndash/internal/domain/user"
	vo "github.com/vpndash/vpndash/internal/domain/user/valueobjects"
	"github.com/vpndash/vpndash/internal/shared/biztime"
	"github.com/vpndash/vpndash/internal/shared/errors"
	"github.com/vpndash/vpndash/internal/shared/logger"
)

// UpdateProfileCommand carries a partial update; nil fields are left alone.
type UpdateProfileCommand struct {
	UserSID string
	Name    *string
	Email   *string
}

type UpdateProfileUseCase struct {
	userRepo  user.Repository
	sanitizer NameSanitizer
	clock     biztime.Clock
	logger    logger.Interface
}

func NewUpdateProfileUseCase(userRepo user.Repository, sanitizer NameSanitizer, clock biztime.Clock, logger logger.Interface) *UpdateProfileUseCase {
	return &UpdateProfileUseCase{
		userRepo:  userRepo,
		sanitizer: sanitizer,
		clock:     clock,
		logger:    logger,
	}
}

func (uc *UpdateProfileUseCase) Execute(ctx context.Context, cmd UpdateProfileCommand) (*user.User, error) {
	existingUser, err := common.LookupUser(ctx, uc.userRepo, cmd.UserSID, uc.logger)
	if err != nil {
		return nil, err
	}

	now := uc.clock.Now()

	if cmd.Name != nil {
		name, err := vo.NewName(uc.sanitizer.StripTags(*cmd.Name))
		if err != nil {
			return nil, errors.NewValidationError("Invalid name", err.Error())
		}
		if err := existingUser.UpdateName(name, now); err != nil {
			return nil, errors.NewValidationError("Invalid name", err.Error())
		}
	}

	if cmd.Email != nil {
		email, err := vo.NewEmail(*cmd.Email)
		if err != nil {
			return nil, errors.NewValidationError("Invalid email", err.Error())
		}

		if !email.Equals(existingUser.Email()) {
			other, err := uc.userRepo.GetByEmail(ctx, email.String())
			if err != nil {
				uc.logger.Errorw("failed to check email", "error", err)
				return nil, fmt.Errorf("failed to check email: %w", err)
			}
			if other != nil && other.ID() != existingUser.ID() {
				return nil, errors.NewConflictError("Email already registered")
			}
		}

		if err := existingUser.UpdateEmail(email, now); err != nil {
			return nil, errors.NewValidationError("Invalid email", err.Error())
		}
	}

	if err := uc.userRepo.Update(ctx, existingUser); err != nil {
		if errors.IsConflictError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to update profile", "user_id", cmd.UserSID, "error", err)
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	uc.logger.Infow("profile updated", "user_id", cmd.UserSID)
	return existingUser, nil
}
