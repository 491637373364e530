package dto

import (
	"time"

	commondto "github.com/ridecrew/ridecrew/internal/application/common/dto"
	"github.com/ridecrew/ridecrew/internal/domain/hike"
)

type HikeResponse struct {
	ID           uint                   `json:"id"`
	Creator      commondto.UserSummary  `json:"creator"`
	Club         *commondto.ClubSummary `json:"club,omitempty"`
	Title        string                 `json:"title"`
	Description  string                 `json:"description,omitempty"`
	StartsAt     time.Time              `json:"starts_at"`
	Department   string                 `json:"department,omitempty"`
	City         string                 `json:"city,omitempty"`
	MeetingPoint string                 `json:"meeting_point,omitempty"`
	DistanceKm   float64                `json:"distance_km"`
	ElevationM   int                    `json:"elevation_m"`
	Difficulty   string                 `json:"difficulty"`
	Status       string                 `json:"status"`
	HypeCount    int64                  `json:"hype_count"`
	HypedByMe    bool                   `json:"hyped_by_me"`
	Trips        []*TripResponse        `json:"trips,omitempty"`
	ImageURLs    []string               `json:"image_urls,omitempty"`
	CreatedAt    time.Time              `json:"created_at"`
}

type TripResponse struct {
	ID         uint         `json:"id"`
	Position   int          `json:"position"`
	Label      string       `json:"label"`
	StartLabel string       `json:"start_label,omitempty"`
	EndLabel   string       `json:"end_label,omitempty"`
	DistanceKm float64      `json:"distance_km"`
	Path       []hike.Point `json:"path"`
}

func ToHikeResponse(h *hike.Hike) *HikeResponse {
	d := h.Details()
	return &HikeResponse{
		ID:           h.ID(),
		Title:        d.Title,
		Description:  d.Description,
		StartsAt:     d.StartsAt,
		Department:   d.Department,
		City:         d.City,
		MeetingPoint: d.MeetingPoint,
		DistanceKm:   d.DistanceKm,
		ElevationM:   d.ElevationM,
		Difficulty:   string(d.Difficulty),
		Status:       string(h.Status()),
		CreatedAt:    h.CreatedAt(),
	}
}

func ToTripResponse(t *hike.Trip) *TripResponse {
	path := t.Path
	if path == nil {
		path = []hike.Point{}
	}
	return &TripResponse{
		ID:         t.ID,
		Position:   t.Position,
		Label:      t.Label,
		StartLabel: t.StartLabel,
		EndLabel:   t.EndLabel,
		DistanceKm: t.DistanceKm,
		Path:       path,
	}
}
