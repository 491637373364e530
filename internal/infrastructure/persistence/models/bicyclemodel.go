package models

import (
	"time"

	"github.com/ridecrew/ridecrew/internal/shared/constants"
)

// BicycleModel represents the database persistence model for bicycles
type BicycleModel struct {
	ID        uint   `gorm:"primarykey"`
	OwnerID   uint   `gorm:"not null;index:idx_bicycles_owner"`
	Name      string `gorm:"not null;size:100"`
	Brand     string `gorm:"size:100"`
	Model     string `gorm:"size:100"`
	Kind      string `gorm:"not null;size:20"`
	Year      int
	PhotoPath string `gorm:"size:500"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (BicycleModel) TableName() string {
	return constants.TableBicycles
}
