package usecases

import (
	"context"
	"fmt"

	"github.com/ridecrew/ridecrew/internal/application/hike/dto"
	"github.com/ridecrew/ridecrew/internal/domain/club"
	"github.com/ridecrew/ridecrew/internal/domain/hike"
	"github.com/ridecrew/ridecrew/internal/domain/shared/services"
	"github.com/ridecrew/ridecrew/internal/domain/user"
	"github.com/ridecrew/ridecrew/internal/shared/logger"
)

type UpdateHikeCommand struct {
	HikeID  uint
	ActorID uint
	HikeDetailsInput
}

type UpdateHikeUseCase struct {
	hikeRepo  hike.Repository
	userRepo  user.Repository
	decorator *hikeDecorator
	logger    logger.Interface
}

func NewUpdateHikeUseCase(
	hikeRepo hike.Repository,
	userRepo user.Repository,
	clubRepo club.Repository,
	hypeRepo hike.HypeRepository,
	storage services.ObjectStorage,
	logger logger.Interface,
) *UpdateHikeUseCase {
	return &UpdateHikeUseCase{
		hikeRepo:  hikeRepo,
		userRepo:  userRepo,
		decorator: &hikeDecorator{userRepo: userRepo, clubRepo: clubRepo, hypeRepo: hypeRepo, storage: storage},
		logger:    logger,
	}
}

func (uc *UpdateHikeUseCase) Execute(ctx context.Context, cmd UpdateHikeCommand) (*dto.HikeResponse, error) {
	details, err := cmd.toDetails()
	if err != nil {
		return nil, err
	}
	h, err := requireManager(ctx, uc.hikeRepo, uc.userRepo, cmd.HikeID, cmd.ActorID)
	if err != nil {
		return nil, err
	}

	if err := h.Update(details); err != nil {
		return nil, mapHikeError(err)
	}
	if err := uc.hikeRepo.Update(ctx, h); err != nil {
		uc.logger.Errorw("failed to update hike", "error", err, "hike_id", cmd.HikeID)
		return nil, fmt.Errorf("failed to update hike: %w", err)
	}
	return uc.decorator.decorateOne(ctx, h, cmd.ActorID)
}

type CancelHikeCommand struct {
	HikeID  uint
	ActorID uint
}

type CancelHikeUseCase struct {
	hikeRepo hike.Repository
	userRepo user.Repository
	logger   logger.Interface
}

func NewCancelHikeUseCase(hikeRepo hike.Repository, userRepo user.Repository, logger logger.Interface) *CancelHikeUseCase {
	return &CancelHikeUseCase{
		hikeRepo: hikeRepo,
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *CancelHikeUseCase) Execute(ctx context.Context, cmd CancelHikeCommand) error {
	h, err := requireManager(ctx, uc.hikeRepo, uc.userRepo, cmd.HikeID, cmd.ActorID)
	if err != nil {
		return err
	}
	if err := h.Cancel(); err != nil {
		return mapHikeError(err)
	}
	if err := uc.hikeRepo.Update(ctx, h); err != nil {
		uc.logger.Errorw("failed to cancel hike", "error", err, "hike_id", cmd.HikeID)
		return fmt.Errorf("failed to cancel hike: %w", err)
	}

	uc.logger.Infow("hike cancelled", "hike_id", cmd.HikeID, "actor_id", cmd.ActorID)
	return nil
}
