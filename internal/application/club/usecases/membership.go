package usecases

import (
	"context"
	"fmt"

	"github.com/ridecrew/ridecrew/internal/domain/club"
	"github.com/ridecrew/ridecrew/internal/domain/user"
	"github.com/ridecrew/ridecrew/internal/shared/db"
	"github.com/ridecrew/ridecrew/internal/shared/errors"
	"github.com/ridecrew/ridecrew/internal/shared/logger"
)

type ExpelMemberCommand struct {
	ClubID  uint
	ActorID uint
	UserID  uint
}

type ExpelMemberUseCase struct {
	clubRepo  club.Repository
	userRepo  user.Repository
	txManager db.Transactor
	logger    logger.Interface
}

func NewExpelMemberUseCase(
	clubRepo club.Repository,
	userRepo user.Repository,
	txManager db.Transactor,
	logger logger.Interface,
) *ExpelMemberUseCase {
	return &ExpelMemberUseCase{
		clubRepo:  clubRepo,
		userRepo:  userRepo,
		txManager: txManager,
		logger:    logger,
	}
}

// Execute removes a member from the club. Expelling a user who is not a member
// of this club is a no-op.
func (uc *ExpelMemberUseCase) Execute(ctx context.Context, cmd ExpelMemberCommand) error {
	if _, err := loadClub(ctx, uc.clubRepo, cmd.ClubID); err != nil {
		return err
	}
	if _, err := requireClubAdmin(ctx, uc.userRepo, cmd.ActorID, cmd.ClubID); err != nil {
		return err
	}
	if cmd.UserID == cmd.ActorID {
		return errors.NewValidationError("the club admin cannot expel themself", "hand the admin role over or leave the club instead")
	}

	var detached bool
	err := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		var err error
		detached, err = uc.userRepo.DetachFromClub(txCtx, cmd.UserID, cmd.ClubID)
		return err
	})
	if err != nil {
		uc.logger.Errorw("failed to expel member", "error", err, "club_id", cmd.ClubID, "user_id", cmd.UserID)
		return fmt.Errorf("failed to expel member: %w", err)
	}

	if detached {
		uc.logger.Infow("member expelled", "club_id", cmd.ClubID, "user_id", cmd.UserID, "actor_id", cmd.ActorID)
	}
	return nil
}

type ChangeAdminCommand struct {
	ClubID  uint
	ActorID uint
	UserID  uint
}

type ChangeAdminUseCase struct {
	clubRepo  club.Repository
	userRepo  user.Repository
	txManager db.Transactor
	logger    logger.Interface
}

func NewChangeAdminUseCase(
	clubRepo club.Repository,
	userRepo user.Repository,
	txManager db.Transactor,
	logger logger.Interface,
) *ChangeAdminUseCase {
	return &ChangeAdminUseCase{
		clubRepo:  clubRepo,
		userRepo:  userRepo,
		txManager: txManager,
		logger:    logger,
	}
}

// Execute hands the admin role to another member of the same club.
func (uc *ChangeAdminUseCase) Execute(ctx context.Context, cmd ChangeAdminCommand) error {
	if _, err := loadClub(ctx, uc.clubRepo, cmd.ClubID); err != nil {
		return err
	}
	if _, err := requireClubAdmin(ctx, uc.userRepo, cmd.ActorID, cmd.ClubID); err != nil {
		return err
	}
	if cmd.UserID == cmd.ActorID {
		return errors.NewValidationError("you are already the club admin")
	}

	notMember := errors.NewValidationError("the new admin must be a member of the club")
	target, err := loadUser(ctx, uc.userRepo, cmd.UserID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return notMember
		}
		return err
	}
	if !target.IsMemberOf(cmd.ClubID) {
		return notMember
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		promoted, err := uc.userRepo.SetClubAdmin(txCtx, cmd.UserID, cmd.ClubID, true)
		if err != nil {
			return err
		}
		if !promoted {
			return notMember
		}
		_, err = uc.userRepo.SetClubAdmin(txCtx, cmd.ActorID, cmd.ClubID, false)
		return err
	})
	if err != nil {
		if errors.IsAppError(err) {
			return err
		}
		uc.logger.Errorw("failed to change club admin", "error", err, "club_id", cmd.ClubID, "user_id", cmd.UserID)
		return fmt.Errorf("failed to change club admin: %w", err)
	}

	uc.logger.Infow("club admin changed", "club_id", cmd.ClubID, "from_user_id", cmd.ActorID, "to_user_id", cmd.UserID)
	return nil
}

type LeaveClubCommand struct {
	UserID uint
}

type LeaveClubUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewLeaveClubUseCase(userRepo user.Repository, logger logger.Interface) *LeaveClubUseCase {
	return &LeaveClubUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

// Execute detaches the user from their club. The admin flag is always cleared,
// which can leave the club without an admin.
func (uc *LeaveClubUseCase) Execute(ctx context.Context, cmd LeaveClubCommand) error {
	u, err := loadUser(ctx, uc.userRepo, cmd.UserID)
	if err != nil {
		return err
	}

	previous := u.ClubID()
	u.LeaveClub()
	if err := uc.userRepo.Update(ctx, u); err != nil {
		uc.logger.Errorw("failed to leave club", "error", err, "user_id", cmd.UserID)
		return fmt.Errorf("failed to leave club: %w", err)
	}

	if previous != nil {
		uc.logger.Infow("user left club", "user_id", cmd.UserID, "club_id", *previous)
	}
	return nil
}
