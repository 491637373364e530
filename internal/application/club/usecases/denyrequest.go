package usecases

import (
	"context"
	"fmt"

	"github.com/ridecrew/ridecrew/internal/application/club/dto"
	"github.com/ridecrew/ridecrew/internal/domain/club"
	"github.com/ridecrew/ridecrew/internal/domain/shared/services"
	"github.com/ridecrew/ridecrew/internal/domain/user"
	"github.com/ridecrew/ridecrew/internal/shared/errors"
	"github.com/ridecrew/ridecrew/internal/shared/logger"
)

type DenyRequestCommand struct {
	ClubID  uint
	ActorID uint
	UserID  uint
}

type DenyRequestUseCase struct {
	clubRepo        club.Repository
	userRepo        user.Repository
	joinRequestRepo club.JoinRequestRepository
	logger          logger.Interface
}

func NewDenyRequestUseCase(
	clubRepo club.Repository,
	userRepo user.Repository,
	joinRequestRepo club.JoinRequestRepository,
	logger logger.Interface,
) *DenyRequestUseCase {
	return &DenyRequestUseCase{
		clubRepo:        clubRepo,
		userRepo:        userRepo,
		joinRequestRepo: joinRequestRepo,
		logger:          logger,
	}
}

// Execute deletes the request of that (user, club) pair only.
func (uc *DenyRequestUseCase) Execute(ctx context.Context, cmd DenyRequestCommand) error {
	if _, err := loadClub(ctx, uc.clubRepo, cmd.ClubID); err != nil {
		return err
	}
	if _, err := requireClubAdmin(ctx, uc.userRepo, cmd.ActorID, cmd.ClubID); err != nil {
		return err
	}

	deleted, err := uc.joinRequestRepo.Delete(ctx, cmd.UserID, cmd.ClubID)
	if err != nil {
		uc.logger.Errorw("failed to delete join request", "error", err, "club_id", cmd.ClubID, "user_id", cmd.UserID)
		return fmt.Errorf("failed to delete join request: %w", err)
	}
	if !deleted {
		return errors.NewNotFoundError("join request not found")
	}

	uc.logger.Infow("join request denied", "club_id", cmd.ClubID, "user_id", cmd.UserID, "actor_id", cmd.ActorID)
	return nil
}

type ShowJoinRequestsQuery struct {
	ClubID  uint
	ActorID uint
}

type ShowJoinRequestsUseCase struct {
	clubRepo        club.Repository
	userRepo        user.Repository
	joinRequestRepo club.JoinRequestRepository
	storage         services.ObjectStorage
	logger          logger.Interface
}

func NewShowJoinRequestsUseCase(
	clubRepo club.Repository,
	userRepo user.Repository,
	joinRequestRepo club.JoinRequestRepository,
	storage services.ObjectStorage,
	logger logger.Interface,
) *ShowJoinRequestsUseCase {
	return &ShowJoinRequestsUseCase{
		clubRepo:        clubRepo,
		userRepo:        userRepo,
		joinRequestRepo: joinRequestRepo,
		storage:         storage,
		logger:          logger,
	}
}

func (uc *ShowJoinRequestsUseCase) Execute(ctx context.Context, query ShowJoinRequestsQuery) ([]*dto.JoinRequestResponse, error) {
	if _, err := loadClub(ctx, uc.clubRepo, query.ClubID); err != nil {
		return nil, err
	}
	if _, err := requireClubAdmin(ctx, uc.userRepo, query.ActorID, query.ClubID); err != nil {
		return nil, err
	}
	return pendingRequests(ctx, uc.joinRequestRepo, uc.userRepo, uc.storage, query.ClubID)
}
