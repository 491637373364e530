package mappers

import (
	"github.com/ridecrew/ridecrew/internal/domain/club"
	"github.com/ridecrew/ridecrew/internal/infrastructure/persistence/models"
	"github.com/ridecrew/ridecrew/internal/shared/textnorm"
)

// ClubToEntity converts a club model to the domain aggregate.
func ClubToEntity(model *models.ClubModel) (*club.Club, error) {
	return club.ReconstructClub(model.ID, club.Details{
		Name:             model.Name,
		OrganizationType: club.OrganizationType(model.OrganizationType),
		Description:      model.Description,
		Address: club.Address{
			Street:     model.Street,
			PostalCode: model.PostalCode,
			City:       model.City,
			Department: model.Department,
		},
	}, model.AvatarPath, model.CreatedAt, model.UpdatedAt)
}

// ClubToModel converts a club aggregate to its model, deriving the search key.
func ClubToModel(c *club.Club) *models.ClubModel {
	addr := c.Address()
	return &models.ClubModel{
		ID:               c.ID(),
		Name:             c.Name(),
		OrganizationType: string(c.OrganizationType()),
		Description:      c.Description(),
		Street:           addr.Street,
		PostalCode:       addr.PostalCode,
		City:             addr.City,
		Department:       addr.Department,
		AvatarPath:       c.AvatarPath(),
		SearchKey:        textnorm.SearchKey(c.Name() + " " + addr.City),
		CreatedAt:        c.CreatedAt(),
		UpdatedAt:        c.UpdatedAt(),
	}
}
