package usecases

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/ridecrew/ridecrew/internal/application/common"
	"github.com/ridecrew/ridecrew/internal/application/user/dto"
	"github.com/ridecrew/ridecrew/internal/domain/shared/services"
	"github.com/ridecrew/ridecrew/internal/domain/user"
	"github.com/ridecrew/ridecrew/internal/shared/errors"
	"github.com/ridecrew/ridecrew/internal/shared/logger"
)

type UpdateAvatarCommand struct {
	UserID uint
	Image  common.ImageUpload
}

type UpdateAvatarUseCase struct {
	userRepo user.Repository
	storage  services.ObjectStorage
	logger   logger.Interface
}

func NewUpdateAvatarUseCase(userRepo user.Repository, storage services.ObjectStorage, logger logger.Interface) *UpdateAvatarUseCase {
	return &UpdateAvatarUseCase{
		userRepo: userRepo,
		storage:  storage,
		logger:   logger,
	}
}

// Execute stores the new avatar, then deletes the previous object once the
// user row points to the new key.
func (uc *UpdateAvatarUseCase) Execute(ctx context.Context, cmd UpdateAvatarCommand) (*dto.ProfileResponse, error) {
	u, err := uc.userRepo.GetByID(ctx, cmd.UserID)
	if err != nil {
		if stderrors.Is(err, user.ErrUserNotFound) {
			return nil, errors.NewNotFoundError("user not found")
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	key, err := common.StoreImage(ctx, uc.storage, common.KindUserAvatar, cmd.Image)
	if err != nil {
		return nil, err
	}

	previous := u.ReplaceAvatar(key)
	if err := uc.userRepo.Update(ctx, u); err != nil {
		uc.logger.Errorw("failed to save avatar", "error", err, "user_id", cmd.UserID)
		common.DeleteAssets(ctx, uc.storage, uc.logger, key)
		return nil, fmt.Errorf("failed to save avatar: %w", err)
	}
	common.DeleteAssets(ctx, uc.storage, uc.logger, previous)

	uc.logger.Infow("avatar updated", "user_id", cmd.UserID, "key", key)

	return dto.ToProfileResponse(u, uc.storage.URL), nil
}
