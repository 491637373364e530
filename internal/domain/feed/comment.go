package feed

import (
	"strings"
	"time"

	"github.com/ridecrew/ridecrew/internal/shared/biztime"
)

type Comment struct {
	ID          uint
	PostID      uint
	UserID      uint
	Content     string
	ContentHTML string
	CreatedAt   time.Time
}

func NewComment(postID, userID uint, content, contentHTML string) (*Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrEmptyContent
	}
	if len([]rune(content)) > MaxContentLength {
		return nil, ErrContentTooLong
	}
	return &Comment{
		PostID:      postID,
		UserID:      userID,
		Content:     content,
		ContentHTML: contentHTML,
		CreatedAt:   biztime.NowUTC(),
	}, nil
}

// CanBeDeletedBy lets the comment author and the post author remove a comment.
func (c *Comment) CanBeDeletedBy(actorID, postAuthorID uint) bool {
	return c.UserID == actorID || postAuthorID == actorID
}
