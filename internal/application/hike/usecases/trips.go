package usecases

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/ridecrew/ridecrew/internal/application/hike/dto"
	"github.com/ridecrew/ridecrew/internal/domain/hike"
	"github.com/ridecrew/ridecrew/internal/shared/errors"
	"github.com/ridecrew/ridecrew/internal/shared/logger"
)

type AddTripCommand struct {
	HikeID     uint
	ActorID    uint
	Label      string
	StartLabel string
	EndLabel   string
	DistanceKm float64
	Path       []hike.Point
}

type AddTripUseCase struct {
	hikeRepo hike.Repository
	tripRepo hike.TripRepository
	logger   logger.Interface
}

func NewAddTripUseCase(hikeRepo hike.Repository, tripRepo hike.TripRepository, logger logger.Interface) *AddTripUseCase {
	return &AddTripUseCase{
		hikeRepo: hikeRepo,
		tripRepo: tripRepo,
		logger:   logger,
	}
}

// Execute appends a trip after the existing ones. Only the creator edits trips.
func (uc *AddTripUseCase) Execute(ctx context.Context, cmd AddTripCommand) (*dto.TripResponse, error) {
	h, err := loadHike(ctx, uc.hikeRepo, cmd.HikeID)
	if err != nil {
		return nil, err
	}
	if h.CreatorID() != cmd.ActorID {
		return nil, errors.NewForbiddenError("only the hike creator can edit trips")
	}
	if h.IsCancelled() {
		return nil, mapHikeError(hike.ErrHikeCancelled)
	}

	position, err := uc.tripRepo.NextPosition(ctx, h.ID())
	if err != nil {
		return nil, fmt.Errorf("failed to compute trip position: %w", err)
	}
	trip, err := hike.NewTrip(h.ID(), position, cmd.Label, cmd.StartLabel, cmd.EndLabel, cmd.DistanceKm, cmd.Path)
	if err != nil {
		return nil, mapHikeError(err)
	}
	if err := uc.tripRepo.Create(ctx, trip); err != nil {
		uc.logger.Errorw("failed to create trip", "error", err, "hike_id", cmd.HikeID)
		return nil, fmt.Errorf("failed to create trip: %w", err)
	}
	return dto.ToTripResponse(trip), nil
}

type RemoveTripCommand struct {
	HikeID  uint
	TripID  uint
	ActorID uint
}

type RemoveTripUseCase struct {
	hikeRepo hike.Repository
	tripRepo hike.TripRepository
	logger   logger.Interface
}

func NewRemoveTripUseCase(hikeRepo hike.Repository, tripRepo hike.TripRepository, logger logger.Interface) *RemoveTripUseCase {
	return &RemoveTripUseCase{
		hikeRepo: hikeRepo,
		tripRepo: tripRepo,
		logger:   logger,
	}
}

func (uc *RemoveTripUseCase) Execute(ctx context.Context, cmd RemoveTripCommand) error {
	h, err := loadHike(ctx, uc.hikeRepo, cmd.HikeID)
	if err != nil {
		return err
	}
	if h.CreatorID() != cmd.ActorID {
		return errors.NewForbiddenError("only the hike creator can edit trips")
	}

	trip, err := uc.tripRepo.GetByID(ctx, cmd.TripID)
	if err != nil {
		if stderrors.Is(err, hike.ErrTripNotFound) {
			return errors.NewNotFoundError("trip not found")
		}
		return fmt.Errorf("failed to get trip: %w", err)
	}
	if trip.HikeID != h.ID() {
		return errors.NewNotFoundError("trip not found")
	}

	if err := uc.tripRepo.Delete(ctx, trip.ID); err != nil {
		uc.logger.Errorw("failed to delete trip", "error", err, "trip_id", cmd.TripID)
		return fmt.Errorf("failed to delete trip: %w", err)
	}
	return nil
}
