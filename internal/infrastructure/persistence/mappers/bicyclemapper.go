package mappers

import (
	"github.com/ridecrew/ridecrew/internal/domain/bicycle"
	"github.com/ridecrew/ridecrew/internal/infrastructure/persistence/models"
)

func BicycleToEntity(model *models.BicycleModel) *bicycle.Bicycle {
	return bicycle.ReconstructBicycle(model.ID, model.OwnerID, bicycle.Specs{
		Name:  model.Name,
		Brand: model.Brand,
		Model: model.Model,
		Kind:  bicycle.Kind(model.Kind),
		Year:  model.Year,
	}, model.PhotoPath, model.CreatedAt, model.UpdatedAt)
}

func BicycleToModel(b *bicycle.Bicycle) *models.BicycleModel {
	s := b.Specs()
	return &models.BicycleModel{
		ID:        b.ID(),
		OwnerID:   b.OwnerID(),
		Name:      s.Name,
		Brand:     s.Brand,
		Model:     s.Model,
		Kind:      string(s.Kind),
		Year:      s.Year,
		PhotoPath: b.PhotoPath(),
		CreatedAt: b.CreatedAt(),
		UpdatedAt: b.UpdatedAt(),
	}
}
