package usecases

import (
	"context"
	"fmt"

	"github.com/vpndash/vpndash/internal/domain/usage"
	"github.com/vpndash/vpndash/internal/domain/user"
	vo "github.com/vpndash/vpndash/internal/domain/user/valueobjects"
	"github.com/vpndash/vpndash/internal/shared/biztime"
	"github.com/vpndash/vpndash/internal/shared/db"
	"github.com/vpndash/vpndash/internal/shared/errors"
	"github.com/vpndash/vpndash/internal/shared/id"
	"github.com/vpndash/vpndash/internal/shared/logger"
	"github.com/vpndash/vpndash/internal/shared/utils"
)

type RegisterCommand struct {
	Name            string
	Email           string
	Password        string
	ConfirmPassword string
}

type RegisterUseCase struct {
	userRepo       user.Repository
	statsRepo      usage.Repository
	passwordHasher user.PasswordHasher
	txManager      db.Transactor
	emailService   EmailService
	sanitizer      NameSanitizer
	policy         SubscriptionPolicy
	clock          biztime.Clock
	logger         logger.Interface
}

func NewRegisterUseCase(
	userRepo user.Repository,
	statsRepo usage.Repository,
	hasher user.PasswordHasher,
	txManager db.Transactor,
	emailService EmailService,
	sanitizer NameSanitizer,
	policy SubscriptionPolicy,
	clock biztime.Clock,
	logger logger.Interface,
) *RegisterUseCase {
	return &RegisterUseCase{
		userRepo:       userRepo,
		statsRepo:      statsRepo,
		passwordHasher: hasher,
		txManager:      txManager,
		emailService:   emailService,
		sanitizer:      sanitizer,
		policy:         policy,
		clock:          clock,
		logger:         logger,
	}
}

// Execute creates the user and its zeroed usage row in one transaction.
func (uc *RegisterUseCase) Execute(ctx context.Context, cmd RegisterCommand) (*user.User, error) {
	if cmd.Name == "" || cmd.Email == "" || cmd.Password == "" || cmd.ConfirmPassword == "" {
		return nil, errors.NewBadRequestError("All fields are required")
	}
	if cmd.Password != cmd.ConfirmPassword {
		return nil, errors.NewBadRequestError("Passwords do not match")
	}

	email, err := vo.NewEmail(cmd.Email)
	if err != nil {
		return nil, errors.NewValidationError("Invalid email", err.Error())
	}

	name, err := vo.NewName(uc.sanitizer.StripTags(cmd.Name))
	if err != nil {
		return nil, errors.NewValidationError("Invalid name", err.Error())
	}

	password, err := vo.NewPassword(cmd.Password)
	if err != nil {
		return nil, errors.NewValidationError("Invalid password", err.Error())
	}

	plan, err := vo.ParsePlan(uc.policy.Plan)
	if err != nil {
		uc.logger.Errorw("invalid default subscription plan", "plan", uc.policy.Plan, "error", err)
		return nil, fmt.Errorf("invalid default plan: %w", err)
	}

	exists, err := uc.userRepo.ExistsByEmail(ctx, email.String())
	if err != nil {
		uc.logger.Errorw("failed to check email existence", "error", err)
		return nil, fmt.Errorf("failed to check email existence: %w", err)
	}
	if exists {
		return nil, errors.NewConflictError("Email already registered")
	}

	hash, err := uc.passwordHasher.Hash(password.String())
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := uc.clock.Now()
	newUser, err := user.NewUser(name, email, hash, plan, uc.policy.Trial, now, id.NewUserID)
	if err != nil {
		uc.logger.Errorw("failed to create user aggregate", "error", err)
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	// the email check above is advisory; the unique index decides under concurrency
	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.userRepo.Create(txCtx, newUser); err != nil {
			return err
		}

		stats, err := usage.NewStats(newUser.ID(), now)
		if err != nil {
			return err
		}
		return uc.statsRepo.Create(txCtx, stats)
	})
	if err != nil {
		if errors.IsConflictError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to register user", "email", utils.MaskEmail(email.String()), "error", err)
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	if err := uc.emailService.SendWelcomeEmail(email.String(), name.String(), newUser.SubscriptionExpiry()); err != nil {
		uc.logger.Warnw("failed to send welcome email", "error", err, "email", utils.MaskEmail(email.String()))
	}

	uc.logger.Infow("user registered successfully", "user_id", newUser.SID(), "email", utils.MaskEmail(email.String()))

	return newUser, nil
}
