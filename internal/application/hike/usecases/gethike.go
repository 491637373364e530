package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/ridecrew/ridecrew/internal/application/common"
	"github.com/ridecrew/ridecrew/internal/application/hike/dto"
	"github.com/ridecrew/ridecrew/internal/domain/club"
	"github.com/ridecrew/ridecrew/internal/domain/geo"
	"github.com/ridecrew/ridecrew/internal/domain/hike"
	"github.com/ridecrew/ridecrew/internal/domain/shared/services"
	"github.com/ridecrew/ridecrew/internal/domain/user"
	"github.com/ridecrew/ridecrew/internal/shared/biztime"
	"github.com/ridecrew/ridecrew/internal/shared/errors"
	"github.com/ridecrew/ridecrew/internal/shared/logger"
)

type GetHikeQuery struct {
	HikeID   uint
	ViewerID uint
}

type GetHikeUseCase struct {
	hikeRepo  hike.Repository
	tripRepo  hike.TripRepository
	imageRepo hike.ImageRepository
	storage   services.ObjectStorage
	decorator *hikeDecorator
	logger    logger.Interface
}

func NewGetHikeUseCase(
	hikeRepo hike.Repository,
	tripRepo hike.TripRepository,
	hypeRepo hike.HypeRepository,
	imageRepo hike.ImageRepository,
	userRepo user.Repository,
	clubRepo club.Repository,
	storage services.ObjectStorage,
	logger logger.Interface,
) *GetHikeUseCase {
	return &GetHikeUseCase{
		hikeRepo:  hikeRepo,
		tripRepo:  tripRepo,
		imageRepo: imageRepo,
		storage:   storage,
		decorator: &hikeDecorator{userRepo: userRepo, clubRepo: clubRepo, hypeRepo: hypeRepo, storage: storage},
		logger:    logger,
	}
}

func (uc *GetHikeUseCase) Execute(ctx context.Context, query GetHikeQuery) (*dto.HikeResponse, error) {
	h, err := loadHike(ctx, uc.hikeRepo, query.HikeID)
	if err != nil {
		return nil, err
	}
	resp, err := uc.decorator.decorateOne(ctx, h, query.ViewerID)
	if err != nil {
		return nil, err
	}

	trips, err := uc.tripRepo.ListByHike(ctx, h.ID())
	if err != nil {
		return nil, fmt.Errorf("failed to list trips: %w", err)
	}
	resp.Trips = make([]*dto.TripResponse, 0, len(trips))
	for _, t := range trips {
		resp.Trips = append(resp.Trips, dto.ToTripResponse(t))
	}

	images, err := uc.imageRepo.ListByHike(ctx, h.ID())
	if err != nil {
		return nil, fmt.Errorf("failed to list hike images: %w", err)
	}
	resp.ImageURLs = make([]string, 0, len(images))
	for _, img := range images {
		resp.ImageURLs = append(resp.ImageURLs, uc.storage.URL(img))
	}
	return resp, nil
}

type SearchHikesQuery struct {
	From       *time.Time
	To         *time.Time
	Department string
	ClubID     *uint
	ViewerID   uint
	Page       int
	PageSize   int
}

type SearchHikesResult struct {
	Hikes []*dto.HikeResponse
	Total int64
}

type SearchHikesUseCase struct {
	hikeRepo  hike.Repository
	decorator *hikeDecorator
	logger    logger.Interface
}

func NewSearchHikesUseCase(
	hikeRepo hike.Repository,
	hypeRepo hike.HypeRepository,
	userRepo user.Repository,
	clubRepo club.Repository,
	storage services.ObjectStorage,
	logger logger.Interface,
) *SearchHikesUseCase {
	return &SearchHikesUseCase{
		hikeRepo:  hikeRepo,
		decorator: &hikeDecorator{userRepo: userRepo, clubRepo: clubRepo, hypeRepo: hypeRepo, storage: storage},
		logger:    logger,
	}
}

// Execute lists planned hikes in the window, soonest first. The window starts
// now unless From is given.
func (uc *SearchHikesUseCase) Execute(ctx context.Context, query SearchHikesQuery) (*SearchHikesResult, error) {
	if query.Department != "" && !geo.IsDepartmentCode(query.Department) {
		return nil, invalidDepartment()
	}
	from := biztime.NowUTC()
	if query.From != nil {
		from = query.From.UTC()
	}
	if query.To != nil && query.To.Before(from) {
		return nil, errors.NewValidationError("the end of the search window is before its start")
	}

	hikes, total, err := uc.hikeRepo.Search(ctx, hike.SearchFilter{
		From:       from,
		To:         query.To,
		Department: query.Department,
		ClubID:     query.ClubID,
		Page:       query.Page,
		PageSize:   query.PageSize,
	})
	if err != nil {
		uc.logger.Errorw("failed to search hikes", "error", err)
		return nil, fmt.Errorf("failed to search hikes: %w", err)
	}

	items, err := uc.decorator.decorate(ctx, hikes, query.ViewerID)
	if err != nil {
		return nil, err
	}
	return &SearchHikesResult{Hikes: items, Total: total}, nil
}

type AddHikeImageCommand struct {
	HikeID  uint
	ActorID uint
	Image   common.ImageUpload
}

type AddHikeImageUseCase struct {
	hikeRepo  hike.Repository
	imageRepo hike.ImageRepository
	storage   services.ObjectStorage
	logger    logger.Interface
}

func NewAddHikeImageUseCase(
	hikeRepo hike.Repository,
	imageRepo hike.ImageRepository,
	storage services.ObjectStorage,
	logger logger.Interface,
) *AddHikeImageUseCase {
	return &AddHikeImageUseCase{
		hikeRepo:  hikeRepo,
		imageRepo: imageRepo,
		storage:   storage,
		logger:    logger,
	}
}

// Execute stores an image for the hike and returns its public URL.
func (uc *AddHikeImageUseCase) Execute(ctx context.Context, cmd AddHikeImageCommand) (string, error) {
	h, err := loadHike(ctx, uc.hikeRepo, cmd.HikeID)
	if err != nil {
		return "", err
	}
	if h.CreatorID() != cmd.ActorID {
		return "", errors.NewForbiddenError("only the hike creator can add images")
	}

	key, err := common.StoreImage(ctx, uc.storage, common.KindHikeImage, cmd.Image)
	if err != nil {
		return "", err
	}
	if err := uc.imageRepo.Create(ctx, h.ID(), key); err != nil {
		uc.logger.Errorw("failed to save hike image", "error", err, "hike_id", cmd.HikeID)
		common.DeleteAssets(ctx, uc.storage, uc.logger, key)
		return "", fmt.Errorf("failed to save hike image: %w", err)
	}
	return uc.storage.URL(key), nil
}
