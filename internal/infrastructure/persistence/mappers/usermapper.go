package mappers

import (
	"fmt"

	"github.com/vpndash/vpndash/internal/domain/user"
	"github.com/vpndash/vpndash/internal/infrastructure/persistence/models"
)

// UserMapper handles the conversion between domain entities and persistence models
type UserMapper interface {
	ToEntity(model *models.UserModel) (*user.User, error)
	ToModel(entity *user.User) *models.UserModel
}

type UserMapperImpl struct{}

func NewUserMapper() UserMapper {
	return &UserMapperImpl{}
}

// ToEntity converts a persistence model to a domain entity
func (m *UserMapperImpl) ToEntity(model *models.UserModel) (*user.User, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := user.ReconstructUser(user.UserSnapshot{
		ID:                 model.ID,
		SID:                model.SID,
		Name:               model.Name,
		Email:              model.Email,
		PasswordHash:       model.PasswordHash,
		Plan:               model.SubscriptionPlan,
		SubscriptionExpiry: model.SubscriptionExpiry,
		TotalDataUsed:      model.TotalDataUsed,
		CreatedAt:          model.CreatedAt,
		UpdatedAt:          model.UpdatedAt,
		LastLogin:          model.LastLogin,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct user entity: %w", err)
	}
	return entity, nil
}

// ToModel converts a domain entity to a persistence model
func (m *UserMapperImpl) ToModel(entity *user.User) *models.UserModel {
	if entity == nil {
		return nil
	}

	return &models.UserModel{
		ID:                 entity.ID(),
		SID:                entity.SID(),
		Name:               entity.Name().String(),
		Email:              entity.Email().String(),
		PasswordHash:       entity.PasswordHash(),
		SubscriptionPlan:   entity.Plan().String(),
		SubscriptionExpiry: entity.SubscriptionExpiry(),
		TotalDataUsed:      entity.TotalDataUsed(),
		LastLogin:          entity.LastLogin(),
		CreatedAt:          entity.CreatedAt(),
		UpdatedAt:          entity.UpdatedAt(),
	}
}
