package feed

import "context"

// PostRepository persists posts and their image rows.
type PostRepository interface {
	Create(ctx context.Context, p *Post) error
	AddImage(ctx context.Context, postID uint, path string) error
	GetByID(ctx context.Context, id uint) (*Post, error)
	// Delete removes the post with its comments, likes and image rows and
	// returns the stored image paths.
	Delete(ctx context.Context, id uint) ([]string, error)
	// DeleteAllForClub removes every post published for the club, with their
	// comments, likes and image rows, and returns the stored image paths.
	DeleteAllForClub(ctx context.Context, clubID uint) ([]string, error)
	// DeleteAllByAuthor removes the user's own (non-club) posts.
	DeleteAllByAuthor(ctx context.Context, userID uint) ([]string, error)
	ListByClub(ctx context.Context, clubID uint, page, pageSize int) ([]*Post, int64, error)
	ListByUser(ctx context.Context, userID uint, page, pageSize int) ([]*Post, int64, error)
	Timeline(ctx context.Context, q TimelineQuery) ([]*Post, int64, error)
}

// TimelineQuery selects the posts visible on a user's feed: their own posts,
// posts of followed users, and posts of followed clubs and their own club.
type TimelineQuery struct {
	UserID          uint
	FollowedUserIDs []uint
	ClubIDs         []uint
	Page            int
	PageSize        int
}

type CommentRepository interface {
	Create(ctx context.Context, c *Comment) error
	GetByID(ctx context.Context, id uint) (*Comment, error)
	Delete(ctx context.Context, id uint) error
	ListByPost(ctx context.Context, postID uint) ([]*Comment, error)
	CountByPosts(ctx context.Context, postIDs []uint) (map[uint]int64, error)
}

type LikeRepository interface {
	Exists(ctx context.Context, postID, userID uint) (bool, error)
	Create(ctx context.Context, postID, userID uint) error
	Delete(ctx context.Context, postID, userID uint) (bool, error)
	CountByPosts(ctx context.Context, postIDs []uint) (map[uint]int64, error)
	// LikedBy returns the subset of postIDs liked by userID
	LikedBy(ctx context.Context, userID uint, postIDs []uint) (map[uint]bool, error)
}
