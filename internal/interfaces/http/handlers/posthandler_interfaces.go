package handlers

import (
	"context"

	"github.com/ridecrew/ridecrew/internal/application/feed/dto"
	"github.com/ridecrew/ridecrew/internal/application/feed/usecases"
	"github.com/ridecrew/ridecrew/internal/domain/shared"
)

// Use case interfaces for PostHandler - enables unit testing with mocks.

type createPostUseCase interface {
	Execute(ctx context.Context, cmd usecases.CreatePostCommand) (*dto.PostResponse, error)
}

type deletePostUseCase interface {
	Execute(ctx context.Context, cmd usecases.DeletePostCommand) error
}

type getPostUseCase interface {
	Execute(ctx context.Context, query usecases.GetPostQuery) (*dto.PostResponse, error)
}

type getTimelineUseCase interface {
	Execute(ctx context.Context, query usecases.TimelineQuery) (*usecases.ListPostsResult, error)
}

type listClubPostsUseCase interface {
	Execute(ctx context.Context, query usecases.ListClubPostsQuery) (*usecases.ListPostsResult, error)
}

type listUserPostsUseCase interface {
	Execute(ctx context.Context, query usecases.ListUserPostsQuery) (*usecases.ListPostsResult, error)
}

type addCommentUseCase interface {
	Execute(ctx context.Context, cmd usecases.AddCommentCommand) (*dto.CommentResponse, error)
}

type deleteCommentUseCase interface {
	Execute(ctx context.Context, cmd usecases.DeleteCommentCommand) error
}

type toggleLikeUseCase interface {
	Execute(ctx context.Context, cmd usecases.ToggleLikeCommand) (*shared.ToggleResult, error)
}
