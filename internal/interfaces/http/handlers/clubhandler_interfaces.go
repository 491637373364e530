package handlers

import (
	"context"

	"github.com/ridecrew/ridecrew/internal/application/club/dto"
	"github.com/ridecrew/ridecrew/internal/application/club/usecases"
	"github.com/ridecrew/ridecrew/internal/domain/shared"
)

// Use case interfaces for ClubHandler - enables unit testing with mocks.

type createClubUseCase interface {
	Execute(ctx context.Context, cmd usecases.CreateClubCommand) (*dto.ClubResponse, error)
}

type updateClubUseCase interface {
	Execute(ctx context.Context, cmd usecases.UpdateClubCommand) (*dto.ClubResponse, error)
}

type updateClubAvatarUseCase interface {
	Execute(ctx context.Context, cmd usecases.UpdateClubAvatarCommand) (*dto.ClubResponse, error)
}

type getClubUseCase interface {
	Execute(ctx context.Context, query usecases.GetClubQuery) (*dto.ClubResponse, error)
}

type listClubsUseCase interface {
	Execute(ctx context.Context, query usecases.ListClubsQuery) (*usecases.ListClubsResult, error)
}

type listMembersUseCase interface {
	Execute(ctx context.Context, query usecases.ListMembersQuery) (*usecases.ListMembersResult, error)
}

type deleteClubUseCase interface {
	Execute(ctx context.Context, cmd usecases.DeleteClubCommand) error
}

type requestToJoinUseCase interface {
	Execute(ctx context.Context, cmd usecases.RequestToJoinCommand) error
}

type acceptRequestUseCase interface {
	Execute(ctx context.Context, cmd usecases.AcceptRequestCommand) ([]*dto.JoinRequestResponse, error)
}

type denyRequestUseCase interface {
	Execute(ctx context.Context, cmd usecases.DenyRequestCommand) error
}

type showJoinRequestsUseCase interface {
	Execute(ctx context.Context, query usecases.ShowJoinRequestsQuery) ([]*dto.JoinRequestResponse, error)
}

type expelMemberUseCase interface {
	Execute(ctx context.Context, cmd usecases.ExpelMemberCommand) error
}

type changeAdminUseCase interface {
	Execute(ctx context.Context, cmd usecases.ChangeAdminCommand) error
}

type toggleFollowClubUseCase interface {
	Execute(ctx context.Context, cmd usecases.ToggleFollowClubCommand) (*shared.ToggleResult, error)
}
