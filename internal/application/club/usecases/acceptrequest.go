package usecases

import (
	"context"
	"fmt"

	"github.com/ridecrew/ridecrew/internal/application/club/dto"
	"github.com/ridecrew/ridecrew/internal/domain/club"
	"github.com/ridecrew/ridecrew/internal/domain/shared/services"
	"github.com/ridecrew/ridecrew/internal/domain/user"
	"github.com/ridecrew/ridecrew/internal/shared/db"
	"github.com/ridecrew/ridecrew/internal/shared/errors"
	"github.com/ridecrew/ridecrew/internal/shared/logger"
)

type AcceptRequestCommand struct {
	ClubID  uint
	ActorID uint
	UserID  uint
}

type AcceptRequestUseCase struct {
	clubRepo        club.Repository
	userRepo        user.Repository
	joinRequestRepo club.JoinRequestRepository
	txManager       db.Transactor
	notifier        services.MembershipNotifier
	storage         services.ObjectStorage
	logger          logger.Interface
}

func NewAcceptRequestUseCase(
	clubRepo club.Repository,
	userRepo user.Repository,
	joinRequestRepo club.JoinRequestRepository,
	txManager db.Transactor,
	notifier services.MembershipNotifier,
	storage services.ObjectStorage,
	logger logger.Interface,
) *AcceptRequestUseCase {
	return &AcceptRequestUseCase{
		clubRepo:        clubRepo,
		userRepo:        userRepo,
		joinRequestRepo: joinRequestRepo,
		txManager:       txManager,
		notifier:        notifier,
		storage:         storage,
		logger:          logger,
	}
}

// Execute admits the requester. The membership is taken with a conditional
// update so that two concurrent accepts for the same user cannot both succeed.
// It returns the club's remaining pending requests.
func (uc *AcceptRequestUseCase) Execute(ctx context.Context, cmd AcceptRequestCommand) ([]*dto.JoinRequestResponse, error) {
	c, err := loadClub(ctx, uc.clubRepo, cmd.ClubID)
	if err != nil {
		return nil, err
	}
	if _, err := requireClubAdmin(ctx, uc.userRepo, cmd.ActorID, cmd.ClubID); err != nil {
		return nil, err
	}

	rejected := false
	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		exists, err := uc.joinRequestRepo.Exists(txCtx, cmd.UserID, cmd.ClubID)
		if err != nil {
			return fmt.Errorf("failed to check join request: %w", err)
		}
		if !exists {
			return errors.NewNotFoundError("join request not found")
		}

		attached, err := uc.userRepo.AttachToClubIfUnaffiliated(txCtx, cmd.UserID, cmd.ClubID)
		if err != nil {
			return fmt.Errorf("failed to attach member: %w", err)
		}
		if !attached {
			// The stale request is dropped and the transaction still commits.
			rejected = true
			_, err := uc.joinRequestRepo.Delete(txCtx, cmd.UserID, cmd.ClubID)
			return err
		}
		return uc.joinRequestRepo.DeleteAllForUser(txCtx, cmd.UserID)
	})
	if err != nil {
		if errors.IsAppError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to accept join request", "error", err, "club_id", cmd.ClubID, "user_id", cmd.UserID)
		return nil, fmt.Errorf("failed to accept join request: %w", err)
	}
	if rejected {
		uc.logger.Infow("join request dropped, user already affiliated", "club_id", cmd.ClubID, "user_id", cmd.UserID)
		return nil, errors.NewConflictError("user already belongs to a club")
	}

	uc.logger.Infow("join request accepted", "club_id", cmd.ClubID, "user_id", cmd.UserID, "actor_id", cmd.ActorID)

	if member, err := uc.userRepo.GetByID(ctx, cmd.UserID); err == nil {
		recipient := services.Recipient{Email: member.Email(), Name: member.FullName()}
		if err := uc.notifier.JoinAccepted(ctx, recipient, c.Name()); err != nil {
			uc.logger.Warnw("failed to notify accepted member", "error", err, "user_id", cmd.UserID)
		}
	}

	return pendingRequests(ctx, uc.joinRequestRepo, uc.userRepo, uc.storage, cmd.ClubID)
}

func pendingRequests(
	ctx context.Context,
	joinRequestRepo club.JoinRequestRepository,
	userRepo user.Repository,
	storage services.ObjectStorage,
	clubID uint,
) ([]*dto.JoinRequestResponse, error) {
	reqs, err := joinRequestRepo.ListByClub(ctx, clubID)
	if err != nil {
		return nil, fmt.Errorf("failed to list join requests: %w", err)
	}
	ids := make([]uint, 0, len(reqs))
	for _, r := range reqs {
		ids = append(ids, r.UserID)
	}
	users, err := userRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load requesters: %w", err)
	}
	return dto.ToJoinRequestResponses(reqs, users, storage.URL), nil
}
