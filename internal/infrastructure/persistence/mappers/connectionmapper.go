package mappers

import (
	"fmt"

	"github.com/vpndash/vpndash/internal/domain/connection"
	"github.com/vpndash/vpndash/internal/infrastructure/persistence/models"
	"github.com/vpndash/vpndash/internal/shared/mapper"
)

type ConnectionMapper interface {
	ToEntity(model *models.ConnectionModel) (*connection.Connection, error)
	ToModel(entity *connection.Connection) *models.ConnectionModel
	LogToEntity(model *models.ConnectionLogModel) (*connection.Log, error)
	LogToEntities(list []*models.ConnectionLogModel) ([]*connection.Log, error)
	LogToModel(entity *connection.Log) *models.ConnectionLogModel
}

type ConnectionMapperImpl struct{}

func NewConnectionMapper() ConnectionMapper {
	return &ConnectionMapperImpl{}
}

func (m *ConnectionMapperImpl) ToEntity(model *models.ConnectionModel) (*connection.Connection, error) {
	if model == nil {
		return nil, nil
	}
	entity, err := connection.ReconstructConnection(connection.ConnectionSnapshot{
		ID:        model.ID,
		SID:       model.SID,
		UserID:    model.UserID,
		ServerID:  model.ServerID,
		StartTime: model.StartTime,
		EndTime:   model.EndTime,
		Duration:  model.Duration,
		DataUsed:  model.DataUsed,
		Status:    model.Status,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct connection %s: %w", model.SID, err)
	}
	return entity, nil
}

// ToModel sets ActiveUserID only for open sessions.
func (m *ConnectionMapperImpl) ToModel(entity *connection.Connection) *models.ConnectionModel {
	if entity == nil {
		return nil
	}
	model := &models.ConnectionModel{
		ID:        entity.ID(),
		SID:       entity.SID(),
		UserID:    entity.UserID(),
		ServerID:  entity.ServerID(),
		StartTime: entity.StartTime(),
		EndTime:   entity.EndTime(),
		Duration:  entity.Duration(),
		DataUsed:  entity.DataUsed(),
		Status:    entity.Status().String(),
		CreatedAt: entity.CreatedAt(),
		UpdatedAt: entity.UpdatedAt(),
	}
	if entity.IsConnected() {
		uid := entity.UserID()
		model.ActiveUserID = &uid
	}
	return model
}

func (m *ConnectionMapperImpl) LogToEntity(model *models.ConnectionLogModel) (*connection.Log, error) {
	if model == nil {
		return nil, nil
	}
	entity, err := connection.ReconstructLog(connection.LogSnapshot{
		ID:             model.ID,
		SID:            model.SID,
		UserID:         model.UserID,
		Timestamp:      model.Timestamp,
		ServerLocation: model.ServerLocation,
		IPAddress:      model.IPAddress,
		DataUsed:       model.DataUsed,
		Duration:       model.Duration,
		Status:         model.Status,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct connection log %s: %w", model.SID, err)
	}
	return entity, nil
}

func (m *ConnectionMapperImpl) LogToEntities(list []*models.ConnectionLogModel) ([]*connection.Log, error) {
	return mapper.MapSliceWithError(list, m.LogToEntity)
}

func (m *ConnectionMapperImpl) LogToModel(entity *connection.Log) *models.ConnectionLogModel {
	if entity == nil {
		return nil
	}
	return &models.ConnectionLogModel{
		ID:             entity.ID(),
		SID:            entity.SID(),
		UserID:         entity.UserID(),
		Timestamp:      entity.Timestamp(),
		ServerLocation: entity.ServerLocation(),
		IPAddress:      entity.IPAddress(),
		DataUsed:       entity.DataUsed(),
		Duration:       entity.Duration(),
		Status:         string(entity.Status()),
	}
}
