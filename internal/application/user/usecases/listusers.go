package usecases

import (
	"context"
	"fmt"

	"github.com/ridecrew/ridecrew/internal/application/user/dto"
	"github.com/ridecrew/ridecrew/internal/domain/user"
	"github.com/ridecrew/ridecrew/internal/shared/logger"
)

type ListUsersQuery struct {
	Page     int
	PageSize int
	Search   string
	Role     string
}

type ListUsersResult struct {
	Users []*dto.AdminUserResponse
	Total int64
}

// ListUsersUseCase backs the platform administration user list.
type ListUsersUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewListUsersUseCase(userRepo user.Repository, logger logger.Interface) *ListUsersUseCase {
	return &ListUsersUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *ListUsersUseCase) Execute(ctx context.Context, query ListUsersQuery) (*ListUsersResult, error) {
	users, total, err := uc.userRepo.List(ctx, user.ListFilter{
		Page:     query.Page,
		PageSize: query.PageSize,
		Search:   query.Search,
		Role:     query.Role,
	})
	if err != nil {
		uc.logger.Errorw("failed to list users", "error", err)
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	result := &ListUsersResult{Users: make([]*dto.AdminUserResponse, len(users)), Total: total}
	for i, u := range users {
		result.Users[i] = dto.ToAdminUserResponse(u)
	}
	return result, nil
}
