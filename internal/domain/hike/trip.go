package hike

import (
	"fmt"
	"strings"
)

// Point is a [longitude, latitude] pair.
type Point [2]float64

func (p Point) Valid() bool {
	return p[0] >= -180 && p[0] <= 180 && p[1] >= -90 && p[1] <= 90
}

// Trip is one ordered segment of a hike.
type Trip struct {
	ID         uint
	HikeID     uint
	Position   int
	Label      string
	StartLabel string
	EndLabel   string
	DistanceKm float64
	Path       []Point
}

func NewTrip(hikeID uint, position int, label, startLabel, endLabel string, distanceKm float64, path []Point) (*Trip, error) {
	if strings.TrimSpace(label) == "" {
		return nil, ErrTripLabelRequired
	}
	if distanceKm < 0 {
		return nil, ErrNegativeMetric
	}
	for i, p := range path {
		if !p.Valid() {
			return nil, fmt.Errorf("%w: point %d", ErrInvalidPath, i)
		}
	}
	return &Trip{
		HikeID:     hikeID,
		Position:   position,
		Label:      strings.TrimSpace(label),
		StartLabel: startLabel,
		EndLabel:   endLabel,
		DistanceKm: distanceKm,
		Path:       path,
	}, nil
}
