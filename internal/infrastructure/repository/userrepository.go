package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/vpndash/vpndash/internal/domain/user"
	"github.com/vpndash/vpndash/internal/infrastructure/persistence/mappers"
	"github.com/vpndash/vpndash/internal/infrastructure/persistence/models"
	"github.com/vpndash/vpndash/internal/shared/db"
	apperrors "github.com/vpndash/vpndash/internal/shared/errors"
	"github.com/vpndash/vpndash/internal/shared/logger"
)

// UserRepository implements user.Repository on gorm.
type UserRepository struct {
	db     *gorm.DB
	mapper mappers.UserMapper
	logger logger.Interface
}

func NewUserRepository(db *gorm.DB, logger logger.Interface) user.Repository {
	return &UserRepository{
		db:     db,
		mapper: mappers.NewUserMapper(),
		logger: logger,
	}
}

// Create creates a new user. A taken email is reported as a conflict.
func (r *UserRepository) Create(ctx context.Context, userEntity *user.User) error {
	model := r.mapper.ToModel(userEntity)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return apperrors.NewConflictError("Email already registered")
		}
		r.logger.Errorw("failed to create user in database", "error", err)
		return fmt.Errorf("failed to create user: %w", err)
	}

	if err := userEntity.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set user ID: %w", err)
	}

	r.logger.Infow("user created successfully", "id", model.ID, "sid", model.SID)
	return nil
}

// GetByID retrieves a user by ID. Returns nil when absent.
func (r *UserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	return r.first(ctx, "id = ?", id)
}

// GetBySID retrieves a user by external SID. Returns nil when absent.
func (r *UserRepository) GetBySID(ctx context.Context, sid string) (*user.User, error) {
	return r.first(ctx, "sid = ?", sid)
}

// GetByEmail retrieves a user by normalized email. Returns nil when absent.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	return r.first(ctx, "email = ?", email)
}

func (r *UserRepository) first(ctx context.Context, query string, arg any) (*user.User, error) {
	var model models.UserModel

	if err := db.GetTxFromContext(ctx, r.db).Where(query, arg).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get user", "query", query, "error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	entity, err := r.mapper.ToEntity(&model)
	if err != nil {
		r.logger.Errorw("failed to map user model to entity", "id", model.ID, "error", err)
		return nil, fmt.Errorf("failed to map user: %w", err)
	}
	return entity, nil
}

// Update saves the mutable profile, credential and login columns.
// total_data_used is excluded; it only moves through AddDataUsed.
func (r *UserRepository) Update(ctx context.Context, userEntity *user.User) error {
	model := r.mapper.ToModel(userEntity)

	result := db.GetTxFromContext(ctx, r.db).Model(&models.UserModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]any{
			"name":          model.Name,
			"email":         model.Email,
			"password_hash": model.PasswordHash,
			"last_login":    model.LastLogin,
			"updated_at":    model.UpdatedAt,
		})
	if result.Error != nil {
		if apperrors.IsDuplicateError(result.Error) {
			return apperrors.NewConflictError("Email already in use")
		}
		r.logger.Errorw("failed to update user", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update user: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("User not found")
	}
	return nil
}

func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	if err := db.GetTxFromContext(ctx, r.db).Model(&models.UserModel{}).
		Where("email = ?", email).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check email: %w", err)
	}
	return count > 0, nil
}

// AddDataUsed increments total_data_used in SQL so concurrent closures add up.
func (r *UserRepository) AddDataUsed(ctx context.Context, id uint, gb float64) error {
	if gb < 0 {
		return fmt.Errorf("data used increment cannot be negative: %f", gb)
	}

	result := db.GetTxFromContext(ctx, r.db).Model(&models.UserModel{}).
		Where("id = ?", id).
		UpdateColumn("total_data_used", gorm.Expr("total_data_used + ?", gb))
	if result.Error != nil {
		r.logger.Errorw("failed to add data used", "id", id, "error", result.Error)
		return fmt.Errorf("failed to add data used: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("User not found")
	}
	return nil
}
