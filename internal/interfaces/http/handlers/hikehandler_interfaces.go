package handlers

import (
	"context"

	"github.com/ridecrew/ridecrew/internal/application/hike/dto"
	"github.com/ridecrew/ridecrew/internal/application/hike/usecases"
	"github.com/ridecrew/ridecrew/internal/domain/shared"
)

// Use case interfaces for HikeHandler - enables unit testing with mocks.

type createHikeUseCase interface {
	Execute(ctx context.Context, cmd usecases.CreateHikeCommand) (*dto.HikeResponse, error)
}

type updateHikeUseCase interface {
	Execute(ctx context.Context, cmd usecases.UpdateHikeCommand) (*dto.HikeResponse, error)
}

type cancelHikeUseCase interface {
	Execute(ctx context.Context, cmd usecases.CancelHikeCommand) error
}

type getHikeUseCase interface {
	Execute(ctx context.Context, query usecases.GetHikeQuery) (*dto.HikeResponse, error)
}

type searchHikesUseCase interface {
	Execute(ctx context.Context, query usecases.SearchHikesQuery) (*usecases.SearchHikesResult, error)
}

type addTripUseCase interface {
	Execute(ctx context.Context, cmd usecases.AddTripCommand) (*dto.TripResponse, error)
}

type removeTripUseCase interface {
	Execute(ctx context.Context, cmd usecases.RemoveTripCommand) error
}

type toggleHypeUseCase interface {
	Execute(ctx context.Context, cmd usecases.ToggleHypeCommand) (*shared.ToggleResult, error)
}

type addHikeImageUseCase interface {
	Execute(ctx context.Context, cmd usecases.AddHikeImageCommand) (string, error)
}
