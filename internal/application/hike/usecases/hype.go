package usecases

import (
	"context"
	"fmt"

	"github.com/ridecrew/ridecrew/internal/domain/hike"
	"github.com/ridecrew/ridecrew/internal/domain/shared"
	"github.com/ridecrew/ridecrew/internal/shared/logger"
)

type ToggleHypeCommand struct {
	HikeID uint
	UserID uint
}

type ToggleHypeUseCase struct {
	hikeRepo hike.Repository
	hypeRepo hike.HypeRepository
	logger   logger.Interface
}

func NewToggleHypeUseCase(hikeRepo hike.Repository, hypeRepo hike.HypeRepository, logger logger.Interface) *ToggleHypeUseCase {
	return &ToggleHypeUseCase{
		hikeRepo: hikeRepo,
		hypeRepo: hypeRepo,
		logger:   logger,
	}
}

func (uc *ToggleHypeUseCase) Execute(ctx context.Context, cmd ToggleHypeCommand) (*shared.ToggleResult, error) {
	if _, err := loadHike(ctx, uc.hikeRepo, cmd.HikeID); err != nil {
		return nil, err
	}

	removed, err := uc.hypeRepo.Delete(ctx, cmd.HikeID, cmd.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to unhype hike: %w", err)
	}
	if !removed {
		if err := uc.hypeRepo.Create(ctx, cmd.HikeID, cmd.UserID); err != nil {
			uc.logger.Errorw("failed to hype hike", "error", err, "hike_id", cmd.HikeID, "user_id", cmd.UserID)
			return nil, fmt.Errorf("failed to hype hike: %w", err)
		}
	}

	result := shared.Toggled(removed, shared.ActionHype, shared.ActionUnhype)
	return &result, nil
}
