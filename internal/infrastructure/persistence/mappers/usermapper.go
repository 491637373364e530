package mappers

import (
	"fmt"

	"github.com/ridecrew/ridecrew/internal/domain/user"
	"github.com/ridecrew/ridecrew/internal/infrastructure/persistence/models"
	"github.com/ridecrew/ridecrew/internal/shared/authorization"
)

// UserMapper handles the conversion between domain entities and persistence models
type UserMapper interface {
	// ToEntity converts a persistence model to a domain entity
	ToEntity(model *models.UserModel) (*user.User, error)

	// ToModel converts a domain entity to a persistence model
	ToModel(entity *user.User) *models.UserModel

	// ToEntities converts multiple persistence models to domain entities
	ToEntities(models []*models.UserModel) ([]*user.User, error)
}

// UserMapperImpl is the concrete implementation of UserMapper
type UserMapperImpl struct{}

// NewUserMapper creates a new user mapper
func NewUserMapper() UserMapper {
	return &UserMapperImpl{}
}

// ToEntity converts a persistence model to a domain entity
func (m *UserMapperImpl) ToEntity(model *models.UserModel) (*user.User, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := user.ReconstructUser(
		model.ID,
		model.Email,
		model.FirstName,
		model.LastName,
		model.PasswordHash,
		authorization.ParseUserRole(model.Role),
		model.AvatarPath,
		model.Bio,
		model.City,
		model.Department,
		model.ClubID,
		model.IsClubAdmin,
		model.BillingCustomerID,
		model.CreatedAt,
		model.UpdatedAt,
	)
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
		ID:                entity.ID(),
		Email:             entity.Email(),
		FirstName:         entity.FirstName(),
		LastName:          entity.LastName(),
		PasswordHash:      entity.PasswordHash(),
		Role:              entity.Role().String(),
		AvatarPath:        entity.AvatarPath(),
		Bio:               entity.Bio(),
		City:              entity.City(),
		Department:        entity.Department(),
		ClubID:            entity.ClubID(),
		IsClubAdmin:       entity.IsClubAdmin(),
		BillingCustomerID: entity.BillingCustomerID(),
		CreatedAt:         entity.CreatedAt(),
		UpdatedAt:         entity.UpdatedAt(),
	}
}

// ToEntities converts multiple persistence models to domain entities
func (m *UserMapperImpl) ToEntities(userModels []*models.UserModel) ([]*user.User, error) {
	entities := make([]*user.User, 0, len(userModels))
	for _, model := range userModels {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, fmt.Errorf("failed to map user ID %d: %w", model.ID, err)
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
