package usecases

import (
	"context"
	stderrors "errors"
	"fmt"

	commondto "github.com/ridecrew/ridecrew/internal/application/common/dto"
	"github.com/ridecrew/ridecrew/internal/domain/shared/services"
	"github.com/ridecrew/ridecrew/internal/domain/user"
	"github.com/ridecrew/ridecrew/internal/shared/errors"
	"github.com/ridecrew/ridecrew/internal/shared/logger"
)

type FollowDirection string

const (
	FollowDirectionFollowers FollowDirection = "followers"
	FollowDirectionFollowing FollowDirection = "following"
)

type ListFollowsQuery struct {
	UserID    uint
	Direction FollowDirection
	Page      int
	PageSize  int
}

type ListFollowsResult struct {
	Users []commondto.UserSummary
	Total int64
}

type ListFollowsUseCase struct {
	userRepo   user.Repository
	followRepo user.FollowRepository
	storage    services.ObjectStorage
	logger     logger.Interface
}

func NewListFollowsUseCase(
	userRepo user.Repository,
	followRepo user.FollowRepository,
	storage services.ObjectStorage,
	logger logger.Interface,
) *ListFollowsUseCase {
	return &ListFollowsUseCase{
		userRepo:   userRepo,
		followRepo: followRepo,
		storage:    storage,
		logger:     logger,
	}
}

func (uc *ListFollowsUseCase) Execute(ctx context.Context, query ListFollowsQuery) (*ListFollowsResult, error) {
	if _, err := uc.userRepo.GetByID(ctx, query.UserID); err != nil {
		if stderrors.Is(err, user.ErrUserNotFound) {
			return nil, errors.NewNotFoundError("user not found")
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	var (
		ids   []uint
		total int64
		err   error
	)
	switch query.Direction {
	case FollowDirectionFollowers:
		ids, total, err = uc.followRepo.ListFollowerIDs(ctx, query.UserID, query.Page, query.PageSize)
	case FollowDirectionFollowing:
		ids, total, err = uc.followRepo.ListFollowingIDs(ctx, query.UserID, query.Page, query.PageSize)
	default:
		return nil, errors.NewValidationError("unknown follow direction")
	}
	if err != nil {
		uc.logger.Errorw("failed to list follows", "error", err, "user_id", query.UserID)
		return nil, fmt.Errorf("failed to list follows: %w", err)
	}

	users, err := uc.userRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load users: %w", err)
	}

	result := &ListFollowsResult{Users: make([]commondto.UserSummary, 0, len(ids)), Total: total}
	for _, id := range ids {
		if u, ok := users[id]; ok {
			result.Users = append(result.Users, commondto.ToUserSummary(u, uc.storage.URL))
		}
	}
	return result, nil
}
