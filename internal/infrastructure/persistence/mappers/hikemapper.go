package mappers

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"github.com/ridecrew/ridecrew/internal/domain/hike"
	"github.com/ridecrew/ridecrew/internal/infrastructure/persistence/models"
)

func HikeToEntity(model *models.HikeModel) *hike.Hike {
	return hike.ReconstructHike(model.ID, model.CreatorID, model.ClubID, hike.Details{
		Title:        model.Title,
		Description:  model.Description,
		StartsAt:     model.StartsAt,
		Department:   model.Department,
		City:         model.City,
		MeetingPoint: model.MeetingPoint,
		DistanceKm:   model.DistanceKm,
		ElevationM:   model.ElevationM,
		Difficulty:   hike.Difficulty(model.Difficulty),
	}, hike.Status(model.Status), model.CreatedAt, model.UpdatedAt)
}

func HikeToModel(h *hike.Hike) *models.HikeModel {
	d := h.Details()
	return &models.HikeModel{
		ID:           h.ID(),
		CreatorID:    h.CreatorID(),
		ClubID:       h.ClubID(),
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
		UpdatedAt:    h.UpdatedAt(),
	}
}

func TripToEntity(model *models.TripModel) (*hike.Trip, error) {
	var path []hike.Point
	if len(model.Path) > 0 {
		if err := json.Unmarshal(model.Path, &path); err != nil {
			return nil, fmt.Errorf("failed to decode trip %d path: %w", model.ID, err)
		}
	}
	return &hike.Trip{
		ID:         model.ID,
		HikeID:     model.HikeID,
		Position:   model.Position,
		Label:      model.Label,
		StartLabel: model.StartLabel,
		EndLabel:   model.EndLabel,
		DistanceKm: model.DistanceKm,
		Path:       path,
	}, nil
}

func TripToModel(t *hike.Trip) (*models.TripModel, error) {
	path := t.Path
	if path == nil {
		path = []hike.Point{}
	}
	raw, err := json.Marshal(path)
	if err != nil {
		return nil, fmt.Errorf("failed to encode trip path: %w", err)
	}
	return &models.TripModel{
		ID:         t.ID,
		HikeID:     t.HikeID,
		Position:   t.Position,
		Label:      t.Label,
		StartLabel: t.StartLabel,
		EndLabel:   t.EndLabel,
		DistanceKm: t.DistanceKm,
		Path:       datatypes.JSON(raw),
	}, nil
}
