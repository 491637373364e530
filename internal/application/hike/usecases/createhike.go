package usecases

import (
	"context"
	"fmt"

	"github.com/ridecrew/ridecrew/internal/application/hike/dto"
	"github.com/ridecrew/ridecrew/internal/domain/club"
	"github.com/ridecrew/ridecrew/internal/domain/hike"
	"github.com/ridecrew/ridecrew/internal/domain/shared/services"
	"github.com/ridecrew/ridecrew/internal/domain/user"
	"github.com/ridecrew/ridecrew/internal/shared/errors"
	"github.com/ridecrew/ridecrew/internal/shared/logger"
)

type CreateHikeCommand struct {
	CreatorID uint
	// AsClub organizes the hike in the name of the club the creator administers.
	AsClub bool
	HikeDetailsInput
}

type CreateHikeUseCase struct {
	hikeRepo  hike.Repository
	userRepo  user.Repository
	decorator *hikeDecorator
	logger    logger.Interface
}

func NewCreateHikeUseCase(
	hikeRepo hike.Repository,
	userRepo user.Repository,
	clubRepo club.Repository,
	hypeRepo hike.HypeRepository,
	storage services.ObjectStorage,
	logger logger.Interface,
) *CreateHikeUseCase {
	return &CreateHikeUseCase{
		hikeRepo:  hikeRepo,
		userRepo:  userRepo,
		decorator: &hikeDecorator{userRepo: userRepo, clubRepo: clubRepo, hypeRepo: hypeRepo, storage: storage},
		logger:    logger,
	}
}

func (uc *CreateHikeUseCase) Execute(ctx context.Context, cmd CreateHikeCommand) (*dto.HikeResponse, error) {
	details, err := cmd.toDetails()
	if err != nil {
		return nil, err
	}
	creator, err := loadUser(ctx, uc.userRepo, cmd.CreatorID)
	if err != nil {
		return nil, err
	}

	var clubID *uint
	if cmd.AsClub {
		if clubID = adminClubOf(creator); clubID == nil {
			return nil, errors.NewForbiddenError("only a club admin can organize a hike for a club")
		}
	}

	h, err := hike.NewHike(creator.ID(), clubID, details)
	if err != nil {
		return nil, mapHikeError(err)
	}
	if err := uc.hikeRepo.Create(ctx, h); err != nil {
		uc.logger.Errorw("failed to create hike", "error", err, "creator_id", cmd.CreatorID)
		return nil, fmt.Errorf("failed to create hike: %w", err)
	}

	uc.logger.Infow("hike created", "hike_id", h.ID(), "creator_id", cmd.CreatorID, "as_club", cmd.AsClub)
	return uc.decorator.decorateOne(ctx, h, creator.ID())
}
