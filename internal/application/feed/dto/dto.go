package dto

import (
	"time"

	commondto "github.com/ridecrew/ridecrew/internal/application/common/dto"
	"github.com/ridecrew/ridecrew/internal/domain/feed"
	"github.com/ridecrew/ridecrew/internal/domain/user"
)

type PostResponse struct {
	ID           uint                   `json:"id"`
	Author       commondto.UserSummary  `json:"author"`
	Club         *commondto.ClubSummary `json:"club,omitempty"`
	Content      string                 `json:"content"`
	ContentHTML  string                 `json:"content_html"`
	ImageURLs    []string               `json:"image_urls"`
	LikeCount    int64                  `json:"like_count"`
	CommentCount int64                  `json:"comment_count"`
	LikedByMe    bool                   `json:"liked_by_me"`
	Comments     []*CommentResponse     `json:"comments,omitempty"`
	CreatedAt    time.Time              `json:"created_at"`
}

type CommentResponse struct {
	ID          uint                  `json:"id"`
	Author      commondto.UserSummary `json:"author"`
	Content     string                `json:"content"`
	ContentHTML string                `json:"content_html"`
	CreatedAt   time.Time             `json:"created_at"`
}

func ToCommentResponse(c *feed.Comment, author *user.User, url commondto.URLFunc) *CommentResponse {
	return &CommentResponse{
		ID:          c.ID,
		Author:      commondto.ToUserSummary(author, url),
		Content:     c.Content,
		ContentHTML: c.ContentHTML,
		CreatedAt:   c.CreatedAt,
	}
}
