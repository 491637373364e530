package handlers

import (
	"context"

	"github.com/ridecrew/ridecrew/internal/application/user/dto"
	"github.com/ridecrew/ridecrew/internal/application/user/usecases"
)

// Use case interfaces for AuthHandler - enables unit testing with mocks.

type registerUseCase interface {
	Execute(ctx context.Context, cmd usecases.RegisterCommand) (*dto.ProfileResponse, error)
}

type loginUseCase interface {
	Execute(ctx context.Context, cmd usecases.LoginCommand) (*usecases.LoginResult, error)
}

type logoutUseCase interface {
	Execute(ctx context.Context, cmd usecases.LogoutCommand) error
}

type getCurrentUserUseCase interface {
	Execute(ctx context.Context, query usecases.GetCurrentUserQuery) (*dto.CurrentUserResponse, error)
}
