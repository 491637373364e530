package dto

import (
	"time"

	commondto "github.com/ridecrew/ridecrew/internal/application/common/dto"
	"github.com/ridecrew/ridecrew/internal/domain/club"
	"github.com/ridecrew/ridecrew/internal/domain/user"
)

// ClubResponse is the club detail view. Counts and viewer flags are filled by
// the use case that builds it.
type ClubResponse struct {
	ID               uint      `json:"id"`
	Name             string    `json:"name"`
	OrganizationType string    `json:"organization_type"`
	Description      string    `json:"description,omitempty"`
	Street           string    `json:"street,omitempty"`
	PostalCode       string    `json:"postal_code,omitempty"`
	City             string    `json:"city"`
	Department       string    `json:"department,omitempty"`
	AvatarURL        string    `json:"avatar_url,omitempty"`
	MemberCount      int64     `json:"member_count"`
	FollowerCount    int64     `json:"follower_count"`
	IsMember         bool      `json:"is_member"`
	IsAdmin          bool      `json:"is_admin"`
	FollowedByMe     bool      `json:"followed_by_me"`
	RequestPending   bool      `json:"request_pending"`
	CreatedAt        time.Time `json:"created_at"`
}

type MemberResponse struct {
	commondto.UserSummary
	IsClubAdmin bool `json:"is_club_admin"`
}

type JoinRequestResponse struct {
	User        commondto.UserSummary `json:"user"`
	City        string                `json:"city,omitempty"`
	RequestedAt time.Time             `json:"requested_at"`
}

func ToClubResponse(c *club.Club, url commondto.URLFunc) *ClubResponse {
	addr := c.Address()
	return &ClubResponse{
		ID:               c.ID(),
		Name:             c.Name(),
		OrganizationType: string(c.OrganizationType()),
		Description:      c.Description(),
		Street:           addr.Street,
		PostalCode:       addr.PostalCode,
		City:             addr.City,
		Department:       addr.Department,
		AvatarURL:        url(c.AvatarPath()),
		CreatedAt:        c.CreatedAt(),
	}
}

func ToClubSummary(c *club.Club, url commondto.URLFunc) commondto.ClubSummary {
	return commondto.ClubSummary{ID: c.ID(), Name: c.Name(), AvatarURL: url(c.AvatarPath())}
}

func ToMemberResponse(u *user.User, url commondto.URLFunc) *MemberResponse {
	return &MemberResponse{
		UserSummary: commondto.ToUserSummary(u, url),
		IsClubAdmin: u.IsClubAdmin(),
	}
}

// ToJoinRequestResponses pairs pending requests with their requesters. Requests
// whose requester no longer exists are skipped.
func ToJoinRequestResponses(reqs []*club.JoinRequest, users map[uint]*user.User, url commondto.URLFunc) []*JoinRequestResponse {
	result := make([]*JoinRequestResponse, 0, len(reqs))
	for _, r := range reqs {
		u, ok := users[r.UserID]
		if !ok {
			continue
		}
		result = append(result, &JoinRequestResponse{
			User:        commondto.ToUserSummary(u, url),
			City:        u.City(),
			RequestedAt: r.CreatedAt,
		})
	}
	return result
}
