package usecases

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/ridecrew/ridecrew/internal/domain/shared"
	"github.com/ridecrew/ridecrew/internal/domain/user"
	"github.com/ridecrew/ridecrew/internal/shared/errors"
	"github.com/ridecrew/ridecrew/internal/shared/logger"
)

type ToggleFollowUserCommand struct {
	FollowerID uint
	TargetID   uint
}

type ToggleFollowUserUseCase struct {
	userRepo   user.Repository
	followRepo user.FollowRepository
	logger     logger.Interface
}

func NewToggleFollowUserUseCase(userRepo user.Repository, followRepo user.FollowRepository, logger logger.Interface) *ToggleFollowUserUseCase {
	return &ToggleFollowUserUseCase{
		userRepo:   userRepo,
		followRepo: followRepo,
		logger:     logger,
	}
}

// Execute follows the target when the caller does not follow them yet and
// unfollows otherwise.
func (uc *ToggleFollowUserUseCase) Execute(ctx context.Context, cmd ToggleFollowUserCommand) (*shared.ToggleResult, error) {
	if cmd.FollowerID == cmd.TargetID {
		return nil, errors.NewValidationError(user.ErrSelfFollow.Error())
	}

	if _, err := uc.userRepo.GetByID(ctx, cmd.TargetID); err != nil {
		if stderrors.Is(err, user.ErrUserNotFound) {
			return nil, errors.NewNotFoundError("user not found")
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	removed, err := uc.followRepo.Delete(ctx, cmd.FollowerID, cmd.TargetID)
	if err != nil {
		return nil, fmt.Errorf("failed to unfollow user: %w", err)
	}
	if !removed {
		if err := uc.followRepo.Create(ctx, cmd.FollowerID, cmd.TargetID); err != nil {
			return nil, fmt.Errorf("failed to follow user: %w", err)
		}
	}

	result := shared.Toggled(removed, shared.ActionFollow, shared.ActionUnfollow)
	uc.logger.Infow("user follow toggled", "follower_id", cmd.FollowerID, "target_id", cmd.TargetID, "action", result.Action)

	return &result, nil
}
