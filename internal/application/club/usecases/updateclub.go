package usecases

import (
	"context"
	"fmt"

	"github.com/ridecrew/ridecrew/internal/application/club/dto"
	"github.com/ridecrew/ridecrew/internal/application/common"
	"github.com/ridecrew/ridecrew/internal/domain/club"
	"github.com/ridecrew/ridecrew/internal/domain/shared/services"
	"github.com/ridecrew/ridecrew/internal/domain/user"
	"github.com/ridecrew/ridecrew/internal/shared/logger"
)

type UpdateClubCommand struct {
	ClubID  uint
	ActorID uint
	ClubDetailsInput
}

type UpdateClubUseCase struct {
	clubRepo club.Repository
	userRepo user.Repository
	storage  services.ObjectStorage
	logger   logger.Interface
}

func NewUpdateClubUseCase(
	clubRepo club.Repository,
	userRepo user.Repository,
	storage services.ObjectStorage,
	logger logger.Interface,
) *UpdateClubUseCase {
	return &UpdateClubUseCase{
		clubRepo: clubRepo,
		userRepo: userRepo,
		storage:  storage,
		logger:   logger,
	}
}

func (uc *UpdateClubUseCase) Execute(ctx context.Context, cmd UpdateClubCommand) (*dto.ClubResponse, error) {
	details, err := cmd.toDetails()
	if err != nil {
		return nil, err
	}
	c, err := loadClub(ctx, uc.clubRepo, cmd.ClubID)
	if err != nil {
		return nil, err
	}
	if _, err := requireClubAdmin(ctx, uc.userRepo, cmd.ActorID, cmd.ClubID); err != nil {
		return nil, err
	}

	if err := c.Update(details); err != nil {
		return nil, mapDetailsError(err)
	}
	if err := uc.clubRepo.Update(ctx, c); err != nil {
		uc.logger.Errorw("failed to update club", "error", err, "club_id", cmd.ClubID)
		return nil, fmt.Errorf("failed to update club: %w", err)
	}

	uc.logger.Infow("club updated", "club_id", cmd.ClubID, "actor_id", cmd.ActorID)
	return dto.ToClubResponse(c, uc.storage.URL), nil
}

type UpdateClubAvatarCommand struct {
	ClubID  uint
	ActorID uint
	Image   common.ImageUpload
}

type UpdateClubAvatarUseCase struct {
	clubRepo club.Repository
	userRepo user.Repository
	storage  services.ObjectStorage
	logger   logger.Interface
}

func NewUpdateClubAvatarUseCase(
	clubRepo club.Repository,
	userRepo user.Repository,
	storage services.ObjectStorage,
	logger logger.Interface,
) *UpdateClubAvatarUseCase {
	return &UpdateClubAvatarUseCase{
		clubRepo: clubRepo,
		userRepo: userRepo,
		storage:  storage,
		logger:   logger,
	}
}

func (uc *UpdateClubAvatarUseCase) Execute(ctx context.Context, cmd UpdateClubAvatarCommand) (*dto.ClubResponse, error) {
	c, err := loadClub(ctx, uc.clubRepo, cmd.ClubID)
	if err != nil {
		return nil, err
	}
	if _, err := requireClubAdmin(ctx, uc.userRepo, cmd.ActorID, cmd.ClubID); err != nil {
		return nil, err
	}

	key, err := common.StoreImage(ctx, uc.storage, common.KindClubAvatar, cmd.Image)
	if err != nil {
		return nil, err
	}
	previous := c.ReplaceAvatar(key)
	if err := uc.clubRepo.Update(ctx, c); err != nil {
		uc.logger.Errorw("failed to save club avatar", "error", err, "club_id", cmd.ClubID)
		common.DeleteAssets(ctx, uc.storage, uc.logger, key)
		return nil, fmt.Errorf("failed to save club avatar: %w", err)
	}
	common.DeleteAssets(ctx, uc.storage, uc.logger, previous)

	return dto.ToClubResponse(c, uc.storage.URL), nil
}
