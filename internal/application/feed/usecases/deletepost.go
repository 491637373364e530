package usecases

import (
	"context"
	"fmt"

	"github.com/ridecrew/ridecrew/internal/application/common"
	"github.com/ridecrew/ridecrew/internal/domain/feed"
	"github.com/ridecrew/ridecrew/internal/domain/shared/services"
	"github.com/ridecrew/ridecrew/internal/domain/user"
	"github.com/ridecrew/ridecrew/internal/shared/errors"
	"github.com/ridecrew/ridecrew/internal/shared/logger"
)

type DeletePostCommand struct {
	PostID  uint
	ActorID uint
	// Moderation skips the ownership check for platform admin routes.
	Moderation bool
}

type DeletePostUseCase struct {
	postRepo feed.PostRepository
	userRepo user.Repository
	storage  services.ObjectStorage
	logger   logger.Interface
}

func NewDeletePostUseCase(
	postRepo feed.PostRepository,
	userRepo user.Repository,
	storage services.ObjectStorage,
	logger logger.Interface,
) *DeletePostUseCase {
	return &DeletePostUseCase{
		postRepo: postRepo,
		userRepo: userRepo,
		storage:  storage,
		logger:   logger,
	}
}

func (uc *DeletePostUseCase) Execute(ctx context.Context, cmd DeletePostCommand) error {
	post, err := loadPost(ctx, uc.postRepo, cmd.PostID)
	if err != nil {
		return err
	}

	if !cmd.Moderation {
		actor, err := loadUser(ctx, uc.userRepo, cmd.ActorID)
		if err != nil {
			return err
		}
		clubAdmin := post.IsClubPost() && actor.IsAdminOf(*post.ClubID())
		if !post.CanBeDeletedBy(actor.ID(), clubAdmin) {
			return errors.NewForbiddenError("you cannot delete this post")
		}
	}

	paths, err := uc.postRepo.Delete(ctx, post.ID())
	if err != nil {
		uc.logger.Errorw("failed to delete post", "error", err, "post_id", cmd.PostID)
		return fmt.Errorf("failed to delete post: %w", err)
	}
	common.DeleteAssets(ctx, uc.storage, uc.logger, paths...)

	uc.logger.Infow("post deleted", "post_id", cmd.PostID, "actor_id", cmd.ActorID, "moderation", cmd.Moderation)
	return nil
}
