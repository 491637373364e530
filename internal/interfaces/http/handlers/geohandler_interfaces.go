package handlers

import (
	"context"

	"github.com/ridecrew/ridecrew/internal/application/geo/usecases"
	"github.com/ridecrew/ridecrew/internal/domain/geo"
)

// Use case interfaces for GeoHandler - enables unit testing with mocks.

type searchAddressUseCase interface {
	Execute(ctx context.Context, query usecases.SearchAddressQuery) ([]geo.Address, error)
}

type reverseGeocodeUseCase interface {
	Execute(ctx context.Context, query usecases.ReverseGeocodeQuery) ([]geo.Address, error)
}

type listDepartmentsUseCase interface {
	Execute(ctx context.Context) ([]geo.Department, error)
}
