package hike

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, h *Hike) error
	GetByID(ctx context.Context, id uint) (*Hike, error)
	Update(ctx context.Context, h *Hike) error
	Search(ctx context.Context, filter SearchFilter) ([]*Hike, int64, error)
	// DeleteAllForClub removes the club's hikes with their trips, hypes and
	// image rows, and returns the stored image paths.
	DeleteAllForClub(ctx context.Context, clubID uint) ([]string, error)
	// DeleteAllByCreator removes the hikes created by a deleted user and returns image paths.
	DeleteAllByCreator(ctx context.Context, userID uint) ([]string, error)
}

// SearchFilter selects planned hikes starting within [From, To].
type SearchFilter struct {
	From       time.Time
	To         *time.Time
	Department string
	ClubID     *uint
	Page       int
	PageSize   int
}

type TripRepository interface {
	Create(ctx context.Context, t *Trip) error
	GetByID(ctx context.Context, id uint) (*Trip, error)
	Delete(ctx context.Context, id uint) error
	ListByHike(ctx context.Context, hikeID uint) ([]*Trip, error)
	NextPosition(ctx context.Context, hikeID uint) (int, error)
}

type HypeRepository interface {
	Exists(ctx context.Context, hikeID, userID uint) (bool, error)
	Create(ctx context.Context, hikeID, userID uint) error
	Delete(ctx context.Context, hikeID, userID uint) (bool, error)
	CountByHikes(ctx context.Context, hikeIDs []uint) (map[uint]int64, error)
	HypedBy(ctx context.Context, userID uint, hikeIDs []uint) (map[uint]bool, error)
}

type ImageRepository interface {
	Create(ctx context.Context, hikeID uint, path string) error
	ListByHike(ctx context.Context, hikeID uint) ([]string, error)
}
