package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/vpndash/vpndash/internal/domain/user"
	vo "github.com/vpndash/vpndash/internal/domain/user/valueobjects"
	"github.com/vpndash/vpndash/internal/shared/biztime"
	"github.com/vpndash/vpndash/internal/shared/errors"
	"github.com/vpndash/vpndash/internal/shared/logger"
)

type LoginCommand struct {
	Email    string
	Password string
}

type LoginResult struct {
	User         *user.User
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
}

type LoginUseCase struct {
	userRepo       user.Repository
	passwordHasher user.PasswordHasher
	jwtService     JWTService
	clock          biztime.Clock
	logger         logger.Interface
}

func NewLoginUseCase(
	userRepo user.Repository,
	hasher user.PasswordHasher,
	jwtService JWTService,
	clock biztime.Clock,
	logger logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		userRepo:       userRepo,
		passwordHasher: hasher,
		jwtService:     jwtService,
		clock:          clock,
		logger:         logger,
	}
}

// Execute authenticates by email and password. Failures never touch lastLogin.
func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	if cmd.Email == "" || cmd.Password == "" {
		return nil, errors.NewBadRequestError("Email and password are required")
	}

	email, err := vo.NewEmail(cmd.Email)
	if err != nil {
		return nil, errors.NewInvalidCredentialsError()
	}

	existingUser, err := uc.userRepo.GetByEmail(ctx, email.String())
	if err != nil {
		uc.logger.Errorw("failed to get user by email", "error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if existingUser == nil {
		return nil, errors.NewInvalidCredentialsError()
	}

	if err := uc.passwordHasher.Verify(cmd.Password, existingUser.PasswordHash()); err != nil {
		uc.logger.Infow("login rejected", "user_id", existingUser.SID())
		return nil, errors.NewInvalidCredentialsError()
	}

	tokens, err := uc.jwtService.Generate(existingUser.SID())
	if err != nil {
		uc.logger.Errorw("failed to generate tokens", "user_id", existingUser.SID(), "error", err)
		return nil, fmt.Errorf("failed to generate tokens: %w", err)
	}

	now := uc.clock.Now()
	uc.upgradeHash(existingUser, cmd.Password, now)
	existingUser.RecordLogin(now)
	if err := uc.userRepo.Update(ctx, existingUser); err != nil {
		uc.logger.Errorw("failed to record login", "user_id", existingUser.SID(), "error", err)
		return nil, fmt.Errorf("failed to record login: %w", err)
	}

	uc.logger.Infow("user logged in successfully", "user_id", existingUser.SID())

	return &LoginResult{
		User:         existingUser,
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
		ExpiresIn:    tokens.ExpiresIn,
	}, nil
}

// rehasher is implemented by hashers whose work factor can change between deployments.
type rehasher interface {
	NeedsRehash(hash string) bool
}

// upgradeHash re-hashes a verified password stored at an outdated cost. The new
// hash is persisted together with lastLogin; failures keep the old hash.
func (uc *LoginUseCase) upgradeHash(u *user.User, password string, now time.Time) {
	r, ok := uc.passwordHasher.(rehasher)
	if !ok || !r.NeedsRehash(u.PasswordHash()) {
		return
	}

	hash, err := uc.passwordHasher.Hash(password)
	if err != nil {
		uc.logger.Warnw("failed to upgrade password hash", "user_id", u.SID(), "error", err)
		return
	}
	if err := u.ChangePasswordHash(hash, now); err != nil {
		uc.logger.Warnw("failed to upgrade password hash", "user_id", u.SID(), "error", err)
		return
	}
	uc.logger.Infow("password hash upgraded", "user_id", u.SID())
}
