package usecases

import (
	"context"
	stderrors "errors"
	"fmt"

	appentitlement "github.com/ridecrew/ridecrew/internal/application/entitlement"
	"github.com/ridecrew/ridecrew/internal/application/user/dto"
	"github.com/ridecrew/ridecrew/internal/domain/entitlement"
	"github.com/ridecrew/ridecrew/internal/domain/shared/services"
	"github.com/ridecrew/ridecrew/internal/domain/user"
	"github.com/ridecrew/ridecrew/internal/shared/errors"
	"github.com/ridecrew/ridecrew/internal/shared/logger"
)

type GetCurrentUserQuery struct {
	UserID uint
}

type GetCurrentUserUseCase struct {
	userRepo user.Repository
	resolver entitlement.Resolver
	storage  services.ObjectStorage
	logger   logger.Interface
}

func NewGetCurrentUserUseCase(
	userRepo user.Repository,
	resolver entitlement.Resolver,
	storage services.ObjectStorage,
	logger logger.Interface,
) *GetCurrentUserUseCase {
	return &GetCurrentUserUseCase{
		userRepo: userRepo,
		resolver: resolver,
		storage:  storage,
		logger:   logger,
	}
}

// Execute returns the caller's profile with the premium attributes computed
// from the billing provider on every read.
func (uc *GetCurrentUserUseCase) Execute(ctx context.Context, query GetCurrentUserQuery) (*dto.CurrentUserResponse, error) {
	u, err := uc.userRepo.GetByID(ctx, query.UserID)
	if err != nil {
		if stderrors.Is(err, user.ErrUserNotFound) {
			return nil, errors.NewNotFoundError("user not found")
		}
		uc.logger.Errorw("failed to get current user", "error", err, "user_id", query.UserID)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	ent := uc.resolver.Resolve(ctx, appentitlement.SubjectOf(u))
	return dto.ToCurrentUserResponse(u, ent, uc.storage.URL), nil
}
