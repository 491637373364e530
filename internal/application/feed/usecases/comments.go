package usecases

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/ridecrew/ridecrew/internal/application/feed/dto"
	"github.com/ridecrew/ridecrew/internal/domain/feed"
	"github.com/ridecrew/ridecrew/internal/domain/shared/services"
	"github.com/ridecrew/ridecrew/internal/domain/user"
	"github.com/ridecrew/ridecrew/internal/shared/errors"
	"github.com/ridecrew/ridecrew/internal/shared/logger"
	"github.com/ridecrew/ridecrew/internal/shared/services/markdown"
)

type AddCommentCommand struct {
	PostID  uint
	UserID  uint
	Content string
}

type AddCommentUseCase struct {
	postRepo    feed.PostRepository
	commentRepo feed.CommentRepository
	userRepo    user.Repository
	renderer    markdown.Renderer
	storage     services.ObjectStorage
	logger      logger.Interface
}

func NewAddCommentUseCase(
	postRepo feed.PostRepository,
	commentRepo feed.CommentRepository,
	userRepo user.Repository,
	renderer markdown.Renderer,
	storage services.ObjectStorage,
	logger logger.Interface,
) *AddCommentUseCase {
	return &AddCommentUseCase{
		postRepo:    postRepo,
		commentRepo: commentRepo,
		userRepo:    userRepo,
		renderer:    renderer,
		storage:     storage,
		logger:      logger,
	}
}

func (uc *AddCommentUseCase) Execute(ctx context.Context, cmd AddCommentCommand) (*dto.CommentResponse, error) {
	post, err := loadPost(ctx, uc.postRepo, cmd.PostID)
	if err != nil {
		return nil, err
	}
	author, err := loadUser(ctx, uc.userRepo, cmd.UserID)
	if err != nil {
		return nil, err
	}

	html, err := uc.renderer.Render(cmd.Content)
	if err != nil {
		return nil, fmt.Errorf("failed to render comment: %w", err)
	}
	comment, err := feed.NewComment(post.ID(), author.ID(), cmd.Content, html)
	if err != nil {
		return nil, mapContentError(err)
	}
	if err := uc.commentRepo.Create(ctx, comment); err != nil {
		uc.logger.Errorw("failed to create comment", "error", err, "post_id", cmd.PostID)
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}

	return dto.ToCommentResponse(comment, author, uc.storage.URL), nil
}

type DeleteCommentCommand struct {
	PostID    uint
	CommentID uint
	ActorID   uint
}

type DeleteCommentUseCase struct {
	postRepo    feed.PostRepository
	commentRepo feed.CommentRepository
	logger      logger.Interface
}

func NewDeleteCommentUseCase(postRepo feed.PostRepository, commentRepo feed.CommentRepository, logger logger.Interface) *DeleteCommentUseCase {
	return &DeleteCommentUseCase{
		postRepo:    postRepo,
		commentRepo: commentRepo,
		logger:      logger,
	}
}

func (uc *DeleteCommentUseCase) Execute(ctx context.Context, cmd DeleteCommentCommand) error {
	post, err := loadPost(ctx, uc.postRepo, cmd.PostID)
	if err != nil {
		return err
	}
	comment, err := uc.commentRepo.GetByID(ctx, cmd.CommentID)
	if err != nil {
		if stderrors.Is(err, feed.ErrCommentNotFound) {
			return errors.NewNotFoundError("comment not found")
		}
		return fmt.Errorf("failed to get comment: %w", err)
	}
	if comment.PostID != post.ID() {
		return errors.NewNotFoundError("comment not found")
	}
	if !comment.CanBeDeletedBy(cmd.ActorID, post.AuthorUserID()) {
		return errors.NewForbiddenError("you cannot delete this comment")
	}

	if err := uc.commentRepo.Delete(ctx, comment.ID); err != nil {
		uc.logger.Errorw("failed to delete comment", "error", err, "comment_id", cmd.CommentID)
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	return nil
}
