package models

import (
	"time"

	"gorm.io/datatypes"

	"github.com/ridecrew/ridecrew/internal/shared/constants"
)

// SubsModel is the local snapshot of a billing provider subscription.
type SubsModel struct {
	ID                     uint   `gorm:"primarykey"`
	UserID                 uint   `gorm:"not null;index:idx_subs_user"`
	PlanType               string `gorm:"size:50"`
	ExternalSubscriptionID string `gorm:"not null;uniqueIndex;size:64"`
	CustomerID             string `gorm:"not null;size:64"`
	StartAt                time.Time
	EndAt                  time.Time
	CancelAtPeriodEnd      bool           `gorm:"not null;default:false"`
	Status                 string         `gorm:"not null;size:20;index:idx_subs_status"`
	LatestInvoiceID        string         `gorm:"size:64"`
	Snapshot               datatypes.JSON `gorm:"type:json"`
	CreatedAt              time.Time
	UpdatedAt              time.Time
}

func (SubsModel) TableName() string {
	return constants.TableSubs
}
