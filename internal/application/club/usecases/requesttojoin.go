package usecases

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/ridecrew/ridecrew/internal/domain/club"
	"github.com/ridecrew/ridecrew/internal/domain/shared/services"
	"github.com/ridecrew/ridecrew/internal/domain/user"
	"github.com/ridecrew/ridecrew/internal/shared/errors"
	"github.com/ridecrew/ridecrew/internal/shared/logger"
)

type RequestToJoinCommand struct {
	ClubID uint
	UserID uint
}

type RequestToJoinUseCase struct {
	clubRepo        club.Repository
	userRepo        user.Repository
	joinRequestRepo club.JoinRequestRepository
	notifier        services.MembershipNotifier
	logger          logger.Interface
}

func NewRequestToJoinUseCase(
	clubRepo club.Repository,
	userRepo user.Repository,
	joinRequestRepo club.JoinRequestRepository,
	notifier services.MembershipNotifier,
	logger logger.Interface,
) *RequestToJoinUseCase {
	return &RequestToJoinUseCase{
		clubRepo:        clubRepo,
		userRepo:        userRepo,
		joinRequestRepo: joinRequestRepo,
		notifier:        notifier,
		logger:          logger,
	}
}

// Execute files a pending request and emails the club admins. A user may have
// pending requests to several clubs at once.
func (uc *RequestToJoinUseCase) Execute(ctx context.Context, cmd RequestToJoinCommand) error {
	c, err := loadClub(ctx, uc.clubRepo, cmd.ClubID)
	if err != nil {
		return err
	}
	requester, err := loadUser(ctx, uc.userRepo, cmd.UserID)
	if err != nil {
		return err
	}
	if requester.IsMemberOf(c.ID()) {
		return errors.NewConflictError("you are already a member of this club")
	}

	exists, err := uc.joinRequestRepo.Exists(ctx, requester.ID(), c.ID())
	if err != nil {
		return fmt.Errorf("failed to check join request: %w", err)
	}
	if exists {
		return errors.NewConflictError("a request to join this club is already pending")
	}

	if err := uc.joinRequestRepo.Create(ctx, &club.JoinRequest{UserID: requester.ID(), ClubID: c.ID()}); err != nil {
		if stderrors.Is(err, club.ErrDuplicateJoinRequest) {
			return errors.NewConflictError("a request to join this club is already pending")
		}
		uc.logger.Errorw("failed to create join request", "error", err, "club_id", c.ID(), "user_id", requester.ID())
		return fmt.Errorf("failed to create join request: %w", err)
	}

	uc.logger.Infow("join request created", "club_id", c.ID(), "user_id", requester.ID())

	admins, err := uc.userRepo.ListClubAdmins(ctx, c.ID())
	if err != nil {
		uc.logger.Warnw("failed to load club admins for notification", "error", err, "club_id", c.ID())
		return nil
	}
	recipients := make([]services.Recipient, 0, len(admins))
	for _, a := range admins {
		recipients = append(recipients, services.Recipient{Email: a.Email(), Name: a.FullName()})
	}
	if err := uc.notifier.JoinRequested(ctx, recipients, requester.FullName(), c.Name()); err != nil {
		uc.logger.Warnw("failed to notify club admins", "error", err, "club_id", c.ID())
	}
	return nil
}
