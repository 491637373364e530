package hike

import "errors"

var (
	ErrHikeNotFound      = errors.New("hike not found")
	ErrTripNotFound      = errors.New("trip not found")
	ErrTitleRequired     = errors.New("hike title is required")
	ErrStartRequired     = errors.New("hike start date is required")
	ErrStartInPast       = errors.New("hike cannot start in the past")
	ErrInvalidDifficulty = errors.New("invalid difficulty")
	ErrNegativeMetric    = errors.New("distance and elevation cannot be negative")
	ErrHikeCancelled     = errors.New("hike is cancelled")
	ErrTripLabelRequired = errors.New("trip label is required")
	ErrInvalidPath       = errors.New("invalid trip path")
)
