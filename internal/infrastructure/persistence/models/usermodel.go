package models

import (
	"time"

	"gorm.io/gorm"

	"github.com/ridecrew/ridecrew/internal/shared/constants"
)

// UserModel represents the database persistence model for users
// This is the anti-corruption layer between domain and database
type UserModel struct {
	ID                uint   `gorm:"primarykey"`
	Email             string `gorm:"uniqueIndex;not null;size:255"`
	FirstName         string `gorm:"not null;size:100"`
	LastName          string `gorm:"not null;size:100"`
	PasswordHash      string `gorm:"not null;size:255"`
	Role              string `gorm:"not null;default:user;size:20"`
	AvatarPath        string `gorm:"size:500"`
	Bio               string `gorm:"type:text"`
	City              string `gorm:"size:100"`
	Department        string `gorm:"size:3;index:idx_users_department"`
	ClubID            *uint  `gorm:"index:idx_users_club"`
	IsClubAdmin       bool   `gorm:"not null;default:false"`
	BillingCustomerID string `gorm:"not null;default:none;size:64;index:idx_users_billing_customer"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
	DeletedAt         gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the table name for GORM
func (UserModel) TableName() string {
	return constants.TableUsers
}

// BeforeCreate hook for GORM
func (u *UserModel) BeforeCreate(tx *gorm.DB) error {
	if u.Role == "" {
		u.Role = "user"
	}
	if u.BillingCustomerID == "" {
		u.BillingCustomerID = "none"
	}
	return nil
}

// SessionModel backs an issued access token.
type SessionModel struct {
	ID        string    `gorm:"primarykey;size:36"`
	UserID    uint      `gorm:"not null;index:idx_sessions_user"`
	ExpiresAt time.Time `gorm:"not null;index:idx_sessions_expires"`
	RevokedAt *time.Time
	CreatedAt time.Time
}

func (SessionModel) TableName() string {
	return constants.TableSessions
}

// UserFollowModel is a follower -> followed relation.
type UserFollowModel struct {
	ID         uint `gorm:"primarykey"`
	FollowerID uint `gorm:"not null;uniqueIndex:uk_user_follow,priority:1"`
	FollowedID uint `gorm:"not null;uniqueIndex:uk_user_follow,priority:2;index:idx_user_follows_followed"`
	CreatedAt  time.Time
}

func (UserFollowModel) TableName() string {
	return constants.TableUserFollows
}
