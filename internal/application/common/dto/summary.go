// Package dto provides data transfer objects shared across bounded contexts.
package dto

import "github.com/ridecrew/ridecrew/internal/domain/user"

// UserSummary is the compact author/member view embedded in other responses.
type UserSummary struct {
	ID        uint   `json:"id"`
	FullName  string `json:"full_name"`
	AvatarURL string `json:"avatar_url,omitempty"`
}

// ClubSummary is the compact club view embedded in posts and hikes.
type ClubSummary struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url,omitempty"`
}

// URLFunc turns a stored object key into a public URL.
type URLFunc func(key string) string

func ToUserSummary(u *user.User, url URLFunc) UserSummary {
	if u == nil {
		return UserSummary{FullName: "Deleted user"}
	}
	return UserSummary{
		ID:        u.ID(),
		FullName:  u.FullName(),
		AvatarURL: url(u.AvatarPath()),
	}
}
