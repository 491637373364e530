package models

import (
	"time"

	"gorm.io/datatypes"

	"github.com/ridecrew/ridecrew/internal/shared/constants"
)

// HikeModel represents the database persistence model for hikes
type HikeModel struct {
	ID           uint      `gorm:"primarykey"`
	CreatorID    uint      `gorm:"not null;index:idx_hikes_creator"`
	ClubID       *uint     `gorm:"index:idx_hikes_club"`
	Title        string    `gorm:"not null;size:200"`
	Description  string    `gorm:"type:text"`
	StartsAt     time.Time `gorm:"not null;index:idx_hikes_starts_at"`
	Department   string    `gorm:"size:3;index:idx_hikes_department"`
	City         string    `gorm:"size:100"`
	MeetingPoint string    `gorm:"size:255"`
	DistanceKm   float64   `gorm:"not null;default:0"`
	ElevationM   int       `gorm:"not null;default:0"`
	Difficulty   string    `gorm:"not null;size:10"`
	Status       string    `gorm:"not null;default:planned;size:20;index:idx_hikes_status"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (HikeModel) TableName() string {
	return constants.TableHikes
}

// TripModel stores one ordered segment of a hike; Path is a JSON array of
// [lon, lat] pairs.
type TripModel struct {
	ID         uint           `gorm:"primarykey"`
	HikeID     uint           `gorm:"not null;index:idx_trips_hike"`
	Position   int            `gorm:"not null"`
	Label      string         `gorm:"not null;size:200"`
	StartLabel string         `gorm:"size:255"`
	EndLabel   string         `gorm:"size:255"`
	DistanceKm float64        `gorm:"not null;default:0"`
	Path       datatypes.JSON `gorm:"type:json"`
	CreatedAt  time.Time
}

func (TripModel) TableName() string {
	return constants.TableTrips
}

type HikeHypeModel struct {
	ID        uint `gorm:"primarykey"`
	HikeID    uint `gorm:"not null;uniqueIndex:uk_hike_hype,priority:1"`
	UserID    uint `gorm:"not null;uniqueIndex:uk_hike_hype,priority:2"`
	CreatedAt time.Time
}

func (HikeHypeModel) TableName() string {
	return constants.TableHikeHypes
}

type HikeImageModel struct {
	ID        uint   `gorm:"primarykey"`
	HikeID    uint   `gorm:"not null;index:idx_hike_images_hike"`
	Path      string `gorm:"not null;size:500"`
	CreatedAt time.Time
}

func (HikeImageModel) TableName() string {
	return constants.TableHikeImages
}
