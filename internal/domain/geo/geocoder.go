package geo

import (
	"context"
	"errors"
)

var ErrGeocoderUnavailable = errors.New("geocoding service unavailable")

// Address is a geocoded address.
type Address struct {
	Label          string  `json:"label"`
	Street         string  `json:"street,omitempty"`
	PostalCode     string  `json:"postal_code,omitempty"`
	City           string  `json:"city,omitempty"`
	DepartmentCode string  `json:"department_code,omitempty"`
	Longitude      float64 `json:"longitude"`
	Latitude       float64 `json:"latitude"`
	Score          float64 `json:"score"`
}

// Geocoder resolves free-text addresses and coordinates.
type Geocoder interface {
	Search(ctx context.Context, query string, limit int) ([]Address, error)
	Reverse(ctx context.Context, longitude, latitude float64) ([]Address, error)
}
