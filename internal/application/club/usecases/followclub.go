package usecases

import (
	"context"
	"fmt"

	"github.com/ridecrew/ridecrew/internal/domain/club"
	"github.com/ridecrew/ridecrew/internal/domain/shared"
	"github.com/ridecrew/ridecrew/internal/shared/logger"
)

type ToggleFollowClubCommand struct {
	ClubID uint
	UserID uint
}

type ToggleFollowClubUseCase struct {
	clubRepo   club.Repository
	followRepo club.FollowRepository
	logger     logger.Interface
}

func NewToggleFollowClubUseCase(clubRepo club.Repository, followRepo club.FollowRepository, logger logger.Interface) *ToggleFollowClubUseCase {
	return &ToggleFollowClubUseCase{
		clubRepo:   clubRepo,
		followRepo: followRepo,
		logger:     logger,
	}
}

func (uc *ToggleFollowClubUseCase) Execute(ctx context.Context, cmd ToggleFollowClubCommand) (*shared.ToggleResult, error) {
	if _, err := loadClub(ctx, uc.clubRepo, cmd.ClubID); err != nil {
		return nil, err
	}

	removed, err := uc.followRepo.Delete(ctx, cmd.UserID, cmd.ClubID)
	if err != nil {
		return nil, fmt.Errorf("failed to unfollow club: %w", err)
	}
	if !removed {
		if err := uc.followRepo.Create(ctx, cmd.UserID, cmd.ClubID); err != nil {
			uc.logger.Errorw("failed to follow club", "error", err, "club_id", cmd.ClubID, "user_id", cmd.UserID)
			return nil, fmt.Errorf("failed to follow club: %w", err)
		}
	}

	result := shared.Toggled(removed, shared.ActionFollow, shared.ActionUnfollow)
	uc.logger.Infow("club follow toggled", "club_id", cmd.ClubID, "user_id", cmd.UserID, "action", result.Action)

	return &result, nil
}
