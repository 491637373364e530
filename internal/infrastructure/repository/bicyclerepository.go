package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/ridecrew/ridecrew/internal/domain/bicycle"
	"github.com/ridecrew/ridecrew/internal/infrastructure/persistence/mappers"
	"github.com/ridecrew/ridecrew/internal/infrastructure/persistence/models"
	"github.com/ridecrew/ridecrew/internal/shared/biztime"
	"github.com/ridecrew/ridecrew/internal/shared/db"
)

type BicycleRepository struct {
	db *gorm.DB
}

func NewBicycleRepository(database *gorm.DB) *BicycleRepository {
	return &BicycleRepository{db: database}
}

func (r *BicycleRepository) Create(ctx context.Context, b *bicycle.Bicycle) error {
	model := mappers.BicycleToModel(b)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create bicycle: %w", err)
	}
	b.SetID(model.ID)
	return nil
}

func (r *BicycleRepository) GetByID(ctx context.Context, id uint) (*bicycle.Bicycle, error) {
	var model models.BicycleModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, bicycle.ErrBicycleNotFound
		}
		return nil, fmt.Errorf("failed to get bicycle: %w", err)
	}
	return mappers.BicycleToEntity(&model), nil
}

func (r *BicycleRepository) Update(ctx context.Context, b *bicycle.Bicycle) error {
	model := mappers.BicycleToModel(b)
	result := db.GetTxFromContext(ctx, r.db).Model(&models.BicycleModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"name":       model.Name,
			"brand":      model.Brand,
			"model":      model.Model,
			"kind":       model.Kind,
			"year":       model.Year,
			"photo_path": model.PhotoPath,
			"updated_at": biztime.NowUTC(),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update bicycle: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return bicycle.ErrBicycleNotFound
	}
	return nil
}

func (r *BicycleRepository) Delete(ctx context.Context, id uint) error {
	result := db.GetTxFromContext(ctx, r.db).Delete(&models.BicycleModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete bicycle: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return bicycle.ErrBicycleNotFound
	}
	return nil
}

func (r *BicycleRepository) ListByOwner(ctx context.Context, ownerID uint) ([]*bicycle.Bicycle, error) {
	var rows []*models.BicycleModel
	if err := db.GetTxFromContext(ctx, r.db).Where("owner_id = ?", ownerID).
		Order("id ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list bicycles: %w", err)
	}
	bikes := make([]*bicycle.Bicycle, len(rows))
	for i, row := range rows {
		bikes[i] = mappers.BicycleToEntity(row)
	}
	return bikes, nil
}
