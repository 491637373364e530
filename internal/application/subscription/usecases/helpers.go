package usecases

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/ridecrew/ridecrew/internal/domain/subscription"
	"github.com/ridecrew/ridecrew/internal/domain/user"
	"github.com/ridecrew/ridecrew/internal/shared/errors"
)

func loadUser(ctx context.Context, repo user.Repository, id uint) (*user.User, error) {
	u, err := repo.GetByID(ctx, id)
	if err != nil {
		if stderrors.Is(err, user.ErrUserNotFound) {
			return nil, errors.NewNotFoundError("user not found")
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return u, nil
}

// loadOwnedSubs returns the local record of a subscription owned by userID.
// Records of other users are reported as missing.
func loadOwnedSubs(ctx context.Context, repo subscription.SubsRepository, externalID string, userID uint) (*subscription.Subs, error) {
	s, err := repo.GetByExternalID(ctx, externalID)
	if err != nil {
		if stderrors.Is(err, subscription.ErrSubsNotFound) {
			return nil, errors.NewNotFoundError("subscription not found")
		}
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}
	if s.UserID() != userID {
		return nil, errors.NewNotFoundError("subscription not found")
	}
	return s, nil
}

// mapGatewayError translates billing provider failures on write paths.
func mapGatewayError(err error) error {
	switch {
	case stderrors.Is(err, subscription.ErrGatewayNotConfigured):
		return errors.NewUnavailableError("billing is not available")
	case stderrors.Is(err, subscription.ErrNotFound):
		return errors.NewNotFoundError("subscription not found at billing provider")
	default:
		return errors.NewUpstreamError("billing provider request failed", err.Error())
	}
}
