package usecases

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/ridecrew/ridecrew/internal/domain/feed"
	"github.com/ridecrew/ridecrew/internal/domain/user"
	"github.com/ridecrew/ridecrew/internal/shared/errors"
)

func loadPost(ctx context.Context, repo feed.PostRepository, postID uint) (*feed.Post, error) {
	p, err := repo.GetByID(ctx, postID)
	if err != nil {
		if stderrors.Is(err, feed.ErrPostNotFound) {
			return nil, errors.NewNotFoundError("post not found")
		}
		return nil, fmt.Errorf("failed to get post: %w", err)
	}
	return p, nil
}

func loadUser(ctx context.Context, repo user.Repository, userID uint) (*user.User, error) {
	u, err := repo.GetByID(ctx, userID)
	if err != nil {
		if stderrors.Is(err, user.ErrUserNotFound) {
			return nil, errors.NewNotFoundError("user not found")
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return u, nil
}

func mapContentError(err error) error {
	if stderrors.Is(err, feed.ErrEmptyContent) || stderrors.Is(err, feed.ErrContentTooLong) {
		return errors.NewValidationError(err.Error())
	}
	return err
}
