package handlers

import (
	"context"

	"github.com/ridecrew/ridecrew/internal/application/bicycle/dto"
	"github.com/ridecrew/ridecrew/internal/application/bicycle/usecases"
)

// Use case interfaces for BicycleHandler - enables unit testing with mocks.

type createBicycleUseCase interface {
	Execute(ctx context.Context, cmd usecases.CreateBicycleCommand) (*dto.BicycleResponse, error)
}

type updateBicycleUseCase interface {
	Execute(ctx context.Context, cmd usecases.UpdateBicycleCommand) (*dto.BicycleResponse, error)
}

type deleteBicycleUseCase interface {
	Execute(ctx context.Context, cmd usecases.DeleteBicycleCommand) error
}

type listBicyclesUseCase interface {
	Execute(ctx context.Context, query usecases.ListBicyclesQuery) ([]*dto.BicycleResponse, error)
}

type updateBicyclePhotoUseCase interface {
	Execute(ctx context.Context, cmd usecases.UpdateBicyclePhotoCommand) (*dto.BicycleResponse, error)
}
