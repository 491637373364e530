package usecases

import (
	"context"
	stderrors "errors"
	"fmt"
	"time"

	commondto "github.com/ridecrew/ridecrew/internal/application/common/dto"
	"github.com/ridecrew/ridecrew/internal/application/hike/dto"
	"github.com/ridecrew/ridecrew/internal/domain/club"
	"github.com/ridecrew/ridecrew/internal/domain/geo"
	"github.com/ridecrew/ridecrew/internal/domain/hike"
	"github.com/ridecrew/ridecrew/internal/domain/shared/services"
	"github.com/ridecrew/ridecrew/internal/domain/user"
	"github.com/ridecrew/ridecrew/internal/shared/errors"
)

// HikeDetailsInput carries the editable attributes of a hike.
type HikeDetailsInput struct {
	Title        string
	Description  string
	StartsAt     time.Time
	Department   string
	City         string
	MeetingPoint string
	DistanceKm   float64
	ElevationM   int
	Difficulty   string
}

func (in HikeDetailsInput) toDetails() (hike.Details, error) {
	if in.Department != "" && !geo.IsDepartmentCode(in.Department) {
		return hike.Details{}, invalidDepartment()
	}
	return hike.Details{
		Title:        in.Title,
		Description:  in.Description,
		StartsAt:     in.StartsAt.UTC(),
		Department:   in.Department,
		City:         in.City,
		MeetingPoint: in.MeetingPoint,
		DistanceKm:   in.DistanceKm,
		ElevationM:   in.ElevationM,
		Difficulty:   hike.Difficulty(in.Difficulty),
	}, nil
}

func invalidDepartment() error {
	return errors.NewFieldValidationError("Validation failed", map[string]string{
		"department": "department must be a known department code",
	})
}

func mapHikeError(err error) error {
	switch {
	case stderrors.Is(err, hike.ErrHikeCancelled):
		return errors.NewConflictError(err.Error())
	case stderrors.Is(err, hike.ErrTitleRequired),
		stderrors.Is(err, hike.ErrStartRequired),
		stderrors.Is(err, hike.ErrStartInPast),
		stderrors.Is(err, hike.ErrInvalidDifficulty),
		stderrors.Is(err, hike.ErrNegativeMetric),
		stderrors.Is(err, hike.ErrTripLabelRequired),
		stderrors.Is(err, hike.ErrInvalidPath):
		return errors.NewValidationError(err.Error())
	default:
		return err
	}
}

func loadHike(ctx context.Context, repo hike.Repository, hikeID uint) (*hike.Hike, error) {
	h, err := repo.GetByID(ctx, hikeID)
	if err != nil {
		if stderrors.Is(err, hike.ErrHikeNotFound) {
			return nil, errors.NewNotFoundError("hike not found")
		}
		return nil, fmt.Errorf("failed to get hike: %w", err)
	}
	return h, nil
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

// adminClubOf returns the club the user administers, if any.
func adminClubOf(u *user.User) *uint {
	if u.IsClubAdmin() {
		return u.ClubID()
	}
	return nil
}

// requireManager loads the hike and checks that actor is its creator or an
// admin of the organizing club.
func requireManager(ctx context.Context, hikeRepo hike.Repository, userRepo user.Repository, hikeID, actorID uint) (*hike.Hike, error) {
	h, err := loadHike(ctx, hikeRepo, hikeID)
	if err != nil {
		return nil, err
	}
	actor, err := loadUser(ctx, userRepo, actorID)
	if err != nil {
		return nil, err
	}
	if !h.CanBeManagedBy(actor.ID(), adminClubOf(actor)) {
		return nil, errors.NewForbiddenError("only the organizer can manage this hike")
	}
	return h, nil
}

// hikeDecorator fills creator, club and hype attributes of hike responses.
type hikeDecorator struct {
	userRepo user.Repository
	clubRepo club.Repository
	hypeRepo hike.HypeRepository
	storage  services.ObjectStorage
}

func (d *hikeDecorator) decorate(ctx context.Context, hikes []*hike.Hike, viewerID uint) ([]*dto.HikeResponse, error) {
	result := make([]*dto.HikeResponse, 0, len(hikes))
	if len(hikes) == 0 {
		return result, nil
	}

	ids := make([]uint, 0, len(hikes))
	creatorIDs := make([]uint, 0, len(hikes))
	for _, h := range hikes {
		ids = append(ids, h.ID())
		creatorIDs = append(creatorIDs, h.CreatorID())
	}
	creators, err := d.userRepo.GetByIDs(ctx, creatorIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load creators: %w", err)
	}
	hypes, err := d.hypeRepo.CountByHikes(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to count hypes: %w", err)
	}
	hyped := map[uint]bool{}
	if viewerID != 0 {
		if hyped, err = d.hypeRepo.HypedBy(ctx, viewerID, ids); err != nil {
			return nil, fmt.Errorf("failed to load hypes: %w", err)
		}
	}

	clubs := map[uint]*club.Club{}
	for _, h := range hikes {
		resp := dto.ToHikeResponse(h)
		resp.Creator = commondto.ToUserSummary(creators[h.CreatorID()], d.storage.URL)
		resp.HypeCount = hypes[h.ID()]
		resp.HypedByMe = hyped[h.ID()]
		if id := h.ClubID(); id != nil {
			c, ok := clubs[*id]
			if !ok {
				c, err = d.clubRepo.GetByID(ctx, *id)
				if err != nil && !stderrors.Is(err, club.ErrClubNotFound) {
					return nil, fmt.Errorf("failed to load club: %w", err)
				}
				clubs[*id] = c
			}
			if c != nil {
				resp.Club = &commondto.ClubSummary{ID: c.ID(), Name: c.Name(), AvatarURL: d.storage.URL(c.AvatarPath())}
			}
		}
		result = append(result, resp)
	}
	return result, nil
}

func (d *hikeDecorator) decorateOne(ctx context.Context, h *hike.Hike, viewerID uint) (*dto.HikeResponse, error) {
	result, err := d.decorate(ctx, []*hike.Hike{h}, viewerID)
	if err != nil {
		return nil, err
	}
	return result[0], nil
}
