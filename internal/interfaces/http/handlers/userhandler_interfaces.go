package handlers

import (
	"context"

	clubusecases "github.com/ridecrew/ridecrew/internal/application/club/usecases"
	"github.com/ridecrew/ridecrew/internal/application/user/dto"
	"github.com/ridecrew/ridecrew/internal/application/user/usecases"
	"github.com/ridecrew/ridecrew/internal/domain/shared"
)

// Use case interfaces for UserHandler - enables unit testing with mocks.

type getUserUseCase interface {
	Execute(ctx context.Context, query usecases.GetUserQuery) (*dto.ProfileResponse, error)
}

type updateProfileUseCase interface {
	Execute(ctx context.Context, cmd usecases.UpdateProfileCommand) (*dto.CurrentUserResponse, error)
}

type updateAvatarUseCase interface {
	Execute(ctx context.Context, cmd usecases.UpdateAvatarCommand) (*dto.ProfileResponse, error)
}

type deleteAccountUseCase interface {
	Execute(ctx context.Context, cmd usecases.DeleteAccountCommand) error
}

type leaveClubUseCase interface {
	Execute(ctx context.Context, cmd clubusecases.LeaveClubCommand) error
}

type toggleFollowUserUseCase interface {
	Execute(ctx context.Context, cmd usecases.ToggleFollowUserCommand) (*shared.ToggleResult, error)
}

type listFollowsUseCase interface {
	Execute(ctx context.Context, query usecases.ListFollowsQuery) (*usecases.ListFollowsResult, error)
}

type listUsersUseCase interface {
	Execute(ctx context.Context, query usecases.ListUsersQuery) (*usecases.ListUsersResult, error)
}
