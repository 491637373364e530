package models

import (
	"time"

	"gorm.io/gorm"

	"github.com/ridecrew/ridecrew/internal/shared/constants"
)

// ClubModel represents the database persistence model for clubs
type ClubModel struct {
	ID               uint   `gorm:"primarykey"`
	Name             string `gorm:"not null;size:150"`
	OrganizationType string `gorm:"not null;size:20"`
	Description      string `gorm:"type:text"`
	Street           string `gorm:"size:255"`
	PostalCode       string `gorm:"size:10"`
	City             string `gorm:"not null;size:100"`
	Department       string `gorm:"size:3;index:idx_clubs_department"`
	AvatarPath       string `gorm:"size:500"`
	// SearchKey holds the folded name and city used by list search.
	SearchKey string `gorm:"size:150;index:idx_clubs_search_key"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the table name for GORM
func (ClubModel) TableName() string {
	return constants.TableClubs
}

// ClubFollowModel is a user -> club follow relation.
type ClubFollowModel struct {
	ID        uint `gorm:"primarykey"`
	UserID    uint `gorm:"not null;uniqueIndex:uk_club_follow,priority:1"`
	ClubID    uint `gorm:"not null;uniqueIndex:uk_club_follow,priority:2;index:idx_club_follows_club"`
	CreatedAt time.Time
}

func (ClubFollowModel) TableName() string {
	return constants.TableClubFollows
}

// ClubJoinRequestModel is a pending join request, unique per (user, club).
type ClubJoinRequestModel struct {
	ID        uint `gorm:"primarykey"`
	UserID    uint `gorm:"not null;uniqueIndex:uk_club_join_request,priority:1"`
	ClubID    uint `gorm:"not null;uniqueIndex:uk_club_join_request,priority:2;index:idx_club_join_requests_club"`
	CreatedAt time.Time
}

func (ClubJoinRequestModel) TableName() string {
	return constants.TableClubJoinRequests
}
