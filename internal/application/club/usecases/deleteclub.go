package usecases

import (
	"context"
	"fmt"

	"github.com/ridecrew/ridecrew/internal/application/common"
	"github.com/ridecrew/ridecrew/internal/domain/club"
	"github.com/ridecrew/ridecrew/internal/domain/feed"
	"github.com/ridecrew/ridecrew/internal/domain/hike"
	"github.com/ridecrew/ridecrew/internal/domain/shared/services"
	"github.com/ridecrew/ridecrew/internal/domain/user"
	"github.com/ridecrew/ridecrew/internal/shared/db"
	"github.com/ridecrew/ridecrew/internal/shared/logger"
)

type DeleteClubCommand struct {
	ClubID  uint
	ActorID uint
	// Moderation marks a deletion issued through the platform admin routes,
	// where the permission check already happened.
	Moderation bool
}

type DeleteClubUseCase struct {
	clubRepo        club.Repository
	userRepo        user.Repository
	clubFollowRepo  club.FollowRepository
	joinRequestRepo club.JoinRequestRepository
	postRepo        feed.PostRepository
	hikeRepo        hike.Repository
	txManager       db.Transactor
	storage         services.ObjectStorage
	logger          logger.Interface
}

func NewDeleteClubUseCase(
	clubRepo club.Repository,
	userRepo user.Repository,
	clubFollowRepo club.FollowRepository,
	joinRequestRepo club.JoinRequestRepository,
	postRepo feed.PostRepository,
	hikeRepo hike.Repository,
	txManager db.Transactor,
	storage services.ObjectStorage,
	logger logger.Interface,
) *DeleteClubUseCase {
	return &DeleteClubUseCase{
		clubRepo:        clubRepo,
		userRepo:        userRepo,
		clubFollowRepo:  clubFollowRepo,
		joinRequestRepo: joinRequestRepo,
		postRepo:        postRepo,
		hikeRepo:        hikeRepo,
		txManager:       txManager,
		storage:         storage,
		logger:          logger,
	}
}

// Execute removes the club together with everything hanging off it. Stored
// assets are deleted only after the transaction commits.
func (uc *DeleteClubUseCase) Execute(ctx context.Context, cmd DeleteClubCommand) error {
	c, err := loadClub(ctx, uc.clubRepo, cmd.ClubID)
	if err != nil {
		return err
	}
	if !cmd.Moderation {
		if _, err := requireClubAdmin(ctx, uc.userRepo, cmd.ActorID, cmd.ClubID); err != nil {
			return err
		}
	}

	assets := club.AssetPaths{}
	assets.Add(c.AvatarPath())

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.userRepo.DetachAllFromClub(txCtx, c.ID()); err != nil {
			return fmt.Errorf("failed to detach members: %w", err)
		}
		if err := uc.clubFollowRepo.DeleteAllForClub(txCtx, c.ID()); err != nil {
			return fmt.Errorf("failed to delete club follows: %w", err)
		}
		if err := uc.joinRequestRepo.DeleteAllForClub(txCtx, c.ID()); err != nil {
			return fmt.Errorf("failed to delete join requests: %w", err)
		}
		postImages, err := uc.postRepo.DeleteAllForClub(txCtx, c.ID())
		if err != nil {
			return fmt.Errorf("failed to delete club posts: %w", err)
		}
		assets.Add(postImages...)
		hikeImages, err := uc.hikeRepo.DeleteAllForClub(txCtx, c.ID())
		if err != nil {
			return fmt.Errorf("failed to delete club hikes: %w", err)
		}
		assets.Add(hikeImages...)
		return uc.clubRepo.Delete(txCtx, c.ID())
	})
	if err != nil {
		uc.logger.Errorw("failed to delete club", "error", err, "club_id", cmd.ClubID)
		return err
	}

	common.DeleteAssets(ctx, uc.storage, uc.logger, assets...)

	uc.logger.Infow("club deleted",
		"club_id", cmd.ClubID,
		"actor_id", cmd.ActorID,
		"moderation", cmd.Moderation,
		"assets", len(assets),
	)
	return nil
}
