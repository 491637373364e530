package usecases

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/ridecrew/ridecrew/internal/application/user/dto"
	"github.com/ridecrew/ridecrew/internal/domain/shared/services"
	"github.com/ridecrew/ridecrew/internal/domain/user"
	"github.com/ridecrew/ridecrew/internal/shared/errors"
	"github.com/ridecrew/ridecrew/internal/shared/logger"
)

type GetUserQuery struct {
	UserID   uint
	ViewerID uint
}

type GetUserUseCase struct {
	userRepo   user.Repository
	followRepo user.FollowRepository
	storage    services.ObjectStorage
	logger     logger.Interface
}

func NewGetUserUseCase(
	userRepo user.Repository,
	followRepo user.FollowRepository,
	storage services.ObjectStorage,
	logger logger.Interface,
) *GetUserUseCase {
	return &GetUserUseCase{
		userRepo:   userRepo,
		followRepo: followRepo,
		storage:    storage,
		logger:     logger,
	}
}

func (uc *GetUserUseCase) Execute(ctx context.Context, query GetUserQuery) (*dto.ProfileResponse, error) {
	u, err := uc.userRepo.GetByID(ctx, query.UserID)
	if err != nil {
		if stderrors.Is(err, user.ErrUserNotFound) {
			return nil, errors.NewNotFoundError("user not found")
		}
		uc.logger.Errorw("failed to get user", "error", err, "user_id", query.UserID)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	resp := dto.ToProfileResponse(u, uc.storage.URL)

	if _, resp.FollowerCount, err = uc.followRepo.ListFollowerIDs(ctx, u.ID(), 1, 1); err != nil {
		return nil, fmt.Errorf("failed to count followers: %w", err)
	}
	if _, resp.FollowingCount, err = uc.followRepo.ListFollowingIDs(ctx, u.ID(), 1, 1); err != nil {
		return nil, fmt.Errorf("failed to count following: %w", err)
	}
	if query.ViewerID != 0 && query.ViewerID != u.ID() {
		if resp.FollowedByMe, err = uc.followRepo.Exists(ctx, query.ViewerID, u.ID()); err != nil {
			return nil, fmt.Errorf("failed to check follow: %w", err)
		}
	}

	return resp, nil
}
