package usecases

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/ridecrew/ridecrew/internal/application/common"
	"github.com/ridecrew/ridecrew/internal/domain/club"
	"github.com/ridecrew/ridecrew/internal/domain/feed"
	"github.com/ridecrew/ridecrew/internal/domain/hike"
	"github.com/ridecrew/ridecrew/internal/domain/shared/services"
	"github.com/ridecrew/ridecrew/internal/domain/user"
	"github.com/ridecrew/ridecrew/internal/shared/db"
	"github.com/ridecrew/ridecrew/internal/shared/errors"
	"github.com/ridecrew/ridecrew/internal/shared/logger"
)

type DeleteAccountCommand struct {
	UserID uint
}

type DeleteAccountUseCase struct {
	userRepo        user.Repository
	userFollowRepo  user.FollowRepository
	sessionRepo     user.SessionRepository
	joinRequestRepo club.JoinRequestRepository
	clubFollowRepo  club.FollowRepository
	postRepo        feed.PostRepository
	hikeRepo        hike.Repository
	txManager       db.Transactor
	storage         services.ObjectStorage
	logger          logger.Interface
}

func NewDeleteAccountUseCase(
	userRepo user.Repository,
	userFollowRepo user.FollowRepository,
	sessionRepo user.SessionRepository,
	joinRequestRepo club.JoinRequestRepository,
	clubFollowRepo club.FollowRepository,
	postRepo feed.PostRepository,
	hikeRepo hike.Repository,
	txManager db.Transactor,
	storage services.ObjectStorage,
	logger logger.Interface,
) *DeleteAccountUseCase {
	return &DeleteAccountUseCase{
		userRepo:        userRepo,
		userFollowRepo:  userFollowRepo,
		sessionRepo:     sessionRepo,
		joinRequestRepo: joinRequestRepo,
		clubFollowRepo:  clubFollowRepo,
		postRepo:        postRepo,
		hikeRepo:        hikeRepo,
		txManager:       txManager,
		storage:         storage,
		logger:          logger,
	}
}

// Execute soft deletes the account. The user leaves their club, loses the admin
// flag, and their relations, own posts, created hikes and sessions are removed.
func (uc *DeleteAccountUseCase) Execute(ctx context.Context, cmd DeleteAccountCommand) error {
	u, err := uc.userRepo.GetByID(ctx, cmd.UserID)
	if err != nil {
		if stderrors.Is(err, user.ErrUserNotFound) {
			return errors.NewNotFoundError("user not found")
		}
		return fmt.Errorf("failed to get user: %w", err)
	}

	assets := club.AssetPaths{}
	assets.Add(u.AvatarPath())

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		u.LeaveClub()
		if err := uc.userRepo.Update(txCtx, u); err != nil {
			return err
		}
		if err := uc.userFollowRepo.DeleteAllForUser(txCtx, u.ID()); err != nil {
			return err
		}
		if err := uc.clubFollowRepo.DeleteAllForUser(txCtx, u.ID()); err != nil {
			return err
		}
		if err := uc.joinRequestRepo.DeleteAllForUser(txCtx, u.ID()); err != nil {
			return err
		}
		postImages, err := uc.postRepo.DeleteAllByAuthor(txCtx, u.ID())
		if err != nil {
			return err
		}
		assets.Add(postImages...)
		hikeImages, err := uc.hikeRepo.DeleteAllByCreator(txCtx, u.ID())
		if err != nil {
			return err
		}
		assets.Add(hikeImages...)
		if err := uc.sessionRepo.RevokeAllForUser(txCtx, u.ID()); err != nil {
			return err
		}
		return uc.userRepo.Delete(txCtx, u.ID())
	})
	if err != nil {
		uc.logger.Errorw("failed to delete account", "error", err, "user_id", cmd.UserID)
		return fmt.Errorf("failed to delete account: %w", err)
	}

	common.DeleteAssets(ctx, uc.storage, uc.logger, assets...)

	uc.logger.Infow("account deleted", "user_id", cmd.UserID, "assets", len(assets))

	return nil
}
