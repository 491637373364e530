package dto

import (
	"time"

	commondto "github.com/ridecrew/ridecrew/internal/application/common/dto"
	"github.com/ridecrew/ridecrew/internal/domain/entitlement"
	"github.com/ridecrew/ridecrew/internal/domain/user"
)

// ProfileResponse is the public view of a user.
type ProfileResponse struct {
	ID             uint      `json:"id"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	FullName       string    `json:"full_name"`
	AvatarURL      string    `json:"avatar_url,omitempty"`
	Bio            string    `json:"bio,omitempty"`
	City           string    `json:"city,omitempty"`
	Department     string    `json:"department,omitempty"`
	ClubID         *uint     `json:"club_id,omitempty"`
	IsClubAdmin    bool      `json:"is_club_admin"`
	FollowerCount  int64     `json:"follower_count"`
	FollowingCount int64     `json:"following_count"`
	FollowedByMe   bool      `json:"followed_by_me"`
	CreatedAt      time.Time `json:"created_at"`
}

// CurrentUserResponse is the authenticated user's own view, including the
// computed premium attributes.
type CurrentUserResponse struct {
	ID             uint      `json:"id"`
	Email          string    `json:"email"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	FullName       string    `json:"full_name"`
	Role           string    `json:"role"`
	AvatarURL      string    `json:"avatar_url,omitempty"`
	Bio            string    `json:"bio,omitempty"`
	City           string    `json:"city,omitempty"`
	Department     string    `json:"department,omitempty"`
	ClubID         *uint     `json:"club_id,omitempty"`
	IsClubAdmin    bool      `json:"is_club_admin"`
	PlanName       string    `json:"plan_name"`
	PremiumActive  bool      `json:"premium_active"`
	PremiumLapsing bool      `json:"premium_lapsing"`
	CreatedAt      time.Time `json:"created_at"`
}

// AdminUserResponse is the row shown in the platform user list.
type AdminUserResponse struct {
	ID                uint      `json:"id"`
	Email             string    `json:"email"`
	FullName          string    `json:"full_name"`
	Role              string    `json:"role"`
	ClubID            *uint     `json:"club_id,omitempty"`
	HasBillingAccount bool      `json:"has_billing_account"`
	CreatedAt         time.Time `json:"created_at"`
}

func ToProfileResponse(u *user.User, url commondto.URLFunc) *ProfileResponse {
	return &ProfileResponse{
		ID:          u.ID(),
		FirstName:   u.FirstName(),
		LastName:    u.LastName(),
		FullName:    u.FullName(),
		AvatarURL:   url(u.AvatarPath()),
		Bio:         u.Bio(),
		City:        u.City(),
		Department:  u.Department(),
		ClubID:      u.ClubID(),
		IsClubAdmin: u.IsClubAdmin(),
		CreatedAt:   u.CreatedAt(),
	}
}

func ToCurrentUserResponse(u *user.User, e entitlement.Entitlement, url commondto.URLFunc) *CurrentUserResponse {
	return &CurrentUserResponse{
		ID:             u.ID(),
		Email:          u.Email(),
		FirstName:      u.FirstName(),
		LastName:       u.LastName(),
		FullName:       u.FullName(),
		Role:           u.Role().String(),
		AvatarURL:      url(u.AvatarPath()),
		Bio:            u.Bio(),
		City:           u.City(),
		Department:     u.Department(),
		ClubID:         u.ClubID(),
		IsClubAdmin:    u.IsClubAdmin(),
		PlanName:       string(e.PlanName),
		PremiumActive:  e.Active,
		PremiumLapsing: e.Lapsing,
		CreatedAt:      u.CreatedAt(),
	}
}

func ToAdminUserResponse(u *user.User) *AdminUserResponse {
	return &AdminUserResponse{
		ID:                u.ID(),
		Email:             u.Email(),
		FullName:          u.FullName(),
		Role:              u.Role().String(),
		ClubID:            u.ClubID(),
		HasBillingAccount: u.HasBillingCustomer(),
		CreatedAt:         u.CreatedAt(),
	}
}
