package club

import "context"

// Repository defines the interface for club data operations
type Repository interface {
	Create(ctx context.Context, c *Club) error
	// GetByID returns ErrClubNotFound for missing or soft-deleted clubs
	GetByID(ctx context.Context, id uint) (*Club, error)
	Update(ctx context.Context, c *Club) error
	// Delete soft deletes the club row
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, filter ListFilter) ([]*Club, int64, error)
}

// ListFilter represents filtering and pagination options for club list
type ListFilter struct {
	Page       int
	PageSize   int
	Search     string
	Department string
}

// JoinRequestRepository stores pending join requests.
type JoinRequestRepository interface {
	Exists(ctx context.Context, userID, clubID uint) (bool, error)
	// Create returns ErrDuplicateJoinRequest when the pair already exists
	Create(ctx context.Context, req *JoinRequest) error
	// Delete reports whether a row was removed
	Delete(ctx context.Context, userID, clubID uint) (bool, error)
	DeleteAllForUser(ctx context.Context, userID uint) error
	DeleteAllForClub(ctx context.Context, clubID uint) error
	ListByClub(ctx context.Context, clubID uint) ([]*JoinRequest, error)
}

// FollowRepository stores user -> club follow relations.
type FollowRepository interface {
	Exists(ctx context.Context, userID, clubID uint) (bool, error)
	Create(ctx context.Context, userID, clubID uint) error
	Delete(ctx context.Context, userID, clubID uint) (bool, error)
	DeleteAllForClub(ctx context.Context, clubID uint) error
	DeleteAllForUser(ctx context.Context, userID uint) error
	CountByClub(ctx context.Context, clubID uint) (int64, error)
	ListClubIDsByUser(ctx context.Context, userID uint) ([]uint, error)
}
