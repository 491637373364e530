package usecases

import (
	"context"
	"fmt"

	"github.com/ridecrew/ridecrew/internal/domain/feed"
	"github.com/ridecrew/ridecrew/internal/domain/shared"
	"github.com/ridecrew/ridecrew/internal/shared/logger"
)

type ToggleLikeCommand struct {
	PostID uint
	UserID uint
}

type ToggleLikeUseCase struct {
	postRepo feed.PostRepository
	likeRepo feed.LikeRepository
	logger   logger.Interface
}

func NewToggleLikeUseCase(postRepo feed.PostRepository, likeRepo feed.LikeRepository, logger logger.Interface) *ToggleLikeUseCase {
	return &ToggleLikeUseCase{
		postRepo: postRepo,
		likeRepo: likeRepo,
		logger:   logger,
	}
}

func (uc *ToggleLikeUseCase) Execute(ctx context.Context, cmd ToggleLikeCommand) (*shared.ToggleResult, error) {
	if _, err := loadPost(ctx, uc.postRepo, cmd.PostID); err != nil {
		return nil, err
	}

	removed, err := uc.likeRepo.Delete(ctx, cmd.PostID, cmd.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to unlike post: %w", err)
	}
	if !removed {
		if err := uc.likeRepo.Create(ctx, cmd.PostID, cmd.UserID); err != nil {
			uc.logger.Errorw("failed to like post", "error", err, "post_id", cmd.PostID, "user_id", cmd.UserID)
			return nil, fmt.Errorf("failed to like post: %w", err)
		}
	}

	result := shared.Toggled(removed, shared.ActionLike, shared.ActionUnlike)
	return &result, nil
}
