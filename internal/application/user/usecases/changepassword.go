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

type ChangePasswordCommand struct {
	UserSID     string
	OldPassword string
	NewPassword string
}

type ChangePasswordUseCase struct {
	userRepo       user.Repository
	passwordHasher user.PasswordHasher
	emailService   EmailService
	clock          biztime.Clock
	logger         logger.Interface
}

func NewChangePasswordUseCase(
	userRepo user.Repository,
	hasher user.PasswordHasher,
	emailService EmailService,
	clock biztime.Clock,
	logger logger.Interface,
) *ChangePasswordUseCase {
	return &ChangePasswordUseCase{
		userRepo:       userRepo,
		passwordHasher: hasher,
		emailService:   emailService,
		clock:          clock,
		logger:         logger,
	}
}

func (uc *ChangePasswordUseCase) Execute(ctx context.Context, cmd ChangePasswordCommand) error {
	if cmd.OldPassword == "" || cmd.NewPassword == "" {
		return errors.NewBadRequestError("Old and new passwords are required")
	}

	newPassword, err := vo.NewPassword(cmd.NewPassword)
	if err != nil {
		return errors.NewValidationError("Invalid password", err.Error())
	}

	existingUser, err := common.LookupUser(ctx, uc.userRepo, cmd.UserSID, uc.logger)
	if err != nil {
		return err
	}

	if err := uc.passwordHasher.Verify(cmd.OldPassword, existingUser.PasswordHash()); err != nil {
		return errors.NewUnauthorizedError("Current password is incorrect")
	}

	hash, err := uc.passwordHasher.Hash(newPassword.String())
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := existingUser.ChangePasswordHash(hash, uc.clock.Now()); err != nil {
		return fmt.Errorf("failed to change password: %w", err)
	}

	if err := uc.userRepo.Update(ctx, existingUser); err != nil {
		uc.logger.Errorw("failed to save password", "user_id", cmd.UserSID, "error", err)
		return fmt.Errorf("failed to save password: %w", err)
	}

	if err := uc.emailService.SendPasswordChangedEmail(existingUser.Email().String()); err != nil {
		uc.logger.Warnw("failed to send password changed email", "error", err, "user_id", cmd.UserSID)
	}

	uc.logger.Infow("password changed", "user_id", cmd.UserSID)
	return nil
}
