package hike

import (
	"fmt"
	"strings"
	"time"

	"github.com/ridecrew/ridecrew/internal/shared/biztime"
)

type Status string

const (
	StatusPlanned   Status = "planned"
	StatusCancelled Status = "cancelled"
)

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

func (d Difficulty) IsValid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// Details holds the editable attributes of a hike.
type Details struct {
	Title        string
	Description  string
	StartsAt     time.Time
	Department   string
	City         string
	MeetingPoint string
	DistanceKm   float64
	ElevationM   int
	Difficulty   Difficulty
}

func (d Details) validate() error {
	if strings.TrimSpace(d.Title) == "" {
		return ErrTitleRequired
	}
	if d.StartsAt.IsZero() {
		return ErrStartRequired
	}
	if !d.Difficulty.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidDifficulty, d.Difficulty)
	}
	if d.DistanceKm < 0 || d.ElevationM < 0 {
		return ErrNegativeMetric
	}
	return nil
}

// Hike is a ride event. It is organized by its creator, optionally in the name
// of the club the creator administers.
type Hike struct {
	id        uint
	clubID    *uint
	creatorID uint
	details   Details
	status    Status
	createdAt time.Time
	updatedAt time.Time
}

func NewHike(creatorID uint, clubID *uint, d Details) (*Hike, error) {
	if creatorID == 0 {
		return nil, fmt.Errorf("creator is required")
	}
	if err := d.validate(); err != nil {
		return nil, err
	}
	if d.StartsAt.Before(biztime.NowUTC()) {
		return nil, ErrStartInPast
	}

	now := biztime.NowUTC()
	d.Title = strings.TrimSpace(d.Title)
	return &Hike{
		clubID:    clubID,
		creatorID: creatorID,
		details:   d,
		status:    StatusPlanned,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructHike(id uint, creatorID uint, clubID *uint, d Details, status Status, createdAt, updatedAt time.Time) *Hike {
	return &Hike{
		id:        id,
		clubID:    clubID,
		creatorID: creatorID,
		details:   d,
		status:    status,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (h *Hike) ID() uint { return h.id }
func (h *Hike) ClubID() *uint { return h.clubID }
func (h *Hike) CreatorID() uint { return h.creatorID }
func (h *Hike) Details() Details { return h.details }
func (h *Hike) Status() Status { return h.status }
func (h *Hike) CreatedAt() time.Time { return h.createdAt }
func (h *Hike) UpdatedAt() time.Time { return h.updatedAt }

func (h *Hike) SetID(id uint) { h.id = id }

func (h *Hike) IsCancelled() bool { return h.status == StatusCancelled }

// CanBeManagedBy reports whether actor may edit the hike: its creator, or an admin
// of the organizing club.
func (h *Hike) CanBeManagedBy(actorID uint, actorAdminOfClub *uint) bool {
	if h.creatorID == actorID {
		return true
	}
	return h.clubID != nil && actorAdminOfClub != nil && *h.clubID == *actorAdminOfClub
}

// Update replaces the editable attributes of a planned hike.
func (h *Hike) Update(d Details) error {
	if h.IsCancelled() {
		return ErrHikeCancelled
	}
	if err := d.validate(); err != nil {
		return err
	}
	d.Title = strings.TrimSpace(d.Title)
	h.details = d
	h.updatedAt = biztime.NowUTC()
	return nil
}

// Cancel marks the hike cancelled. Cancelling twice is a conflict.
func (h *Hike) Cancel() error {
	if h.IsCancelled() {
		return ErrHikeCancelled
	}
	h.status = StatusCancelled
	h.updatedAt = biztime.NowUTC()
	return nil
}
