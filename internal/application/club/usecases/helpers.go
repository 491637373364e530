package usecases

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/ridecrew/ridecrew/internal/domain/club"
	"github.com/ridecrew/ridecrew/internal/domain/user"
	"github.com/ridecrew/ridecrew/internal/shared/errors"
)

func loadClub(ctx context.Context, repo club.Repository, clubID uint) (*club.Club, error) {
	c, err := repo.GetByID(ctx, clubID)
	if err != nil {
		if stderrors.Is(err, club.ErrClubNotFound) {
			return nil, errors.NewNotFoundError("club not found")
		}
		return nil, fmt.Errorf("failed to get club: %w", err)
	}
	return c, nil
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

// requireClubAdmin returns the actor when they administer clubID.
func requireClubAdmin(ctx context.Context, repo user.Repository, actorID, clubID uint) (*user.User, error) {
	actor, err := loadUser(ctx, repo, actorID)
	if err != nil {
		return nil, err
	}
	if !actor.IsAdminOf(clubID) {
		return nil, errors.NewForbiddenError("only the club admin can perform this action")
	}
	return actor, nil
}

func mapDetailsError(err error) error {
	switch {
	case stderrors.Is(err, club.ErrNameRequired),
		stderrors.Is(err, club.ErrCityRequired),
		stderrors.Is(err, club.ErrInvalidOrganizationType):
		return errors.NewValidationError(err.Error())
	default:
		return err
	}
}
