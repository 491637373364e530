package models

import (
	"time"

	"github.com/ridecrew/ridecrew/internal/shared/constants"
)

// PostModel represents the database persistence model for feed posts
type PostModel struct {
	ID           uint      `gorm:"primarykey"`
	AuthorUserID uint      `gorm:"not null;index:idx_posts_author"`
	ClubID       *uint     `gorm:"index:idx_posts_club"`
	Content      string    `gorm:"type:text;not null"`
	ContentHTML  string    `gorm:"type:text"`
	CreatedAt    time.Time `gorm:"index:idx_posts_created"`
	UpdatedAt    time.Time
}

func (PostModel) TableName() string {
	return constants.TablePosts
}

type PostImageModel struct {
	ID        uint   `gorm:"primarykey"`
	PostID    uint   `gorm:"not null;index:idx_post_images_post"`
	Path      string `gorm:"not null;size:500"`
	CreatedAt time.Time
}

func (PostImageModel) TableName() string {
	return constants.TablePostImages
}

type PostCommentModel struct {
	ID          uint   `gorm:"primarykey"`
	PostID      uint   `gorm:"not null;index:idx_post_comments_post"`
	UserID      uint   `gorm:"not null;index:idx_post_comments_user"`
	Content     string `gorm:"type:text;not null"`
	ContentHTML string `gorm:"type:text"`
	CreatedAt   time.Time
}

func (PostCommentModel) TableName() string {
	return constants.TablePostComments
}

type PostLikeModel struct {
	ID        uint `gorm:"primarykey"`
	PostID    uint `gorm:"not null;uniqueIndex:uk_post_like,priority:1"`
	UserID    uint `gorm:"not null;uniqueIndex:uk_post_like,priority:2"`
	CreatedAt time.Time
}

func (PostLikeModel) TableName() string {
	return constants.TablePostLikes
}
