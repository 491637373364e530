package usecases

import (
	"context"
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/ridecrew/ridecrew/internal/domain/geo"
	"github.com/ridecrew/ridecrew/internal/shared/errors"
	"github.com/ridecrew/ridecrew/internal/shared/logger"
)

const defaultSearchLimit = 5

type SearchAddressQuery struct {
	Query string
	Limit int
}

type SearchAddressUseCase struct {
	geocoder geo.Geocoder
	logger   logger.Interface
}

func NewSearchAddressUseCase(geocoder geo.Geocoder, logger logger.Interface) *SearchAddressUseCase {
	return &SearchAddressUseCase{geocoder: geocoder, logger: logger}
}

func (uc *SearchAddressUseCase) Execute(ctx context.Context, query SearchAddressQuery) ([]geo.Address, error) {
	q := strings.TrimSpace(query.Query)
	if len(q) < 3 {
		return nil, errors.NewValidationError("query must contain at least 3 characters")
	}
	limit := query.Limit
	if limit <= 0 {
		limit = defaultSearchLimit
	}

	addresses, err := uc.geocoder.Search(ctx, q, limit)
	if err != nil {
		return nil, mapGeocoderError(uc.logger, err, "search")
	}
	return addresses, nil
}

type ReverseGeocodeQuery struct {
	Longitude float64
	Latitude  float64
}

type ReverseGeocodeUseCase struct {
	geocoder geo.Geocoder
	logger   logger.Interface
}

func NewReverseGeocodeUseCase(geocoder geo.Geocoder, logger logger.Interface) *ReverseGeocodeUseCase {
	return &ReverseGeocodeUseCase{geocoder: geocoder, logger: logger}
}

func (uc *ReverseGeocodeUseCase) Execute(ctx context.Context, query ReverseGeocodeQuery) ([]geo.Address, error) {
	if query.Longitude < -180 || query.Longitude > 180 || query.Latitude < -90 || query.Latitude > 90 {
		return nil, errors.NewValidationError("coordinates out of range")
	}

	addresses, err := uc.geocoder.Reverse(ctx, query.Longitude, query.Latitude)
	if err != nil {
		return nil, mapGeocoderError(uc.logger, err, "reverse")
	}
	return addresses, nil
}

func mapGeocoderError(log logger.Interface, err error, op string) error {
	log.Warnw("geocoding failed", "operation", op, "error", err)
	if stderrors.Is(err, geo.ErrGeocoderUnavailable) {
		return errors.NewUpstreamError("address service unavailable")
	}
	return fmt.Errorf("failed to geocode: %w", err)
}

type ListDepartmentsUseCase struct {
	logger logger.Interface
}

func NewListDepartmentsUseCase(logger logger.Interface) *ListDepartmentsUseCase {
	return &ListDepartmentsUseCase{logger: logger}
}

func (uc *ListDepartmentsUseCase) Execute(ctx context.Context) ([]geo.Department, error) {
	departments, err := geo.Departments()
	if err != nil {
		uc.logger.Errorw("failed to load department catalog", "error", err)
		return nil, fmt.Errorf("failed to load departments: %w", err)
	}
	return departments, nil
}
