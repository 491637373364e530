package usecases

import (
	"context"
	"fmt"

	"github.com/ridecrew/ridecrew/internal/application/club/dto"
	"github.com/ridecrew/ridecrew/internal/domain/club"
	"github.com/ridecrew/ridecrew/internal/domain/geo"
	"github.com/ridecrew/ridecrew/internal/domain/shared/services"
	"github.com/ridecrew/ridecrew/internal/domain/user"
	"github.com/ridecrew/ridecrew/internal/shared/db"
	"github.com/ridecrew/ridecrew/internal/shared/errors"
	"github.com/ridecrew/ridecrew/internal/shared/logger"
)

type ClubDetailsInput struct {
	Name             string
	OrganizationType string
	Description      string
	Street           string
	PostalCode       string
	City             string
	Department       string
}

func (in ClubDetailsInput) toDetails() (club.Details, error) {
	if in.Department != "" && !geo.IsDepartmentCode(in.Department) {
		return club.Details{}, errors.NewFieldValidationError("Validation failed", map[string]string{
			"department": "department must be a known department code",
		})
	}
	return club.Details{
		Name:             in.Name,
		OrganizationType: club.OrganizationType(in.OrganizationType),
		Description:      in.Description,
		Address: club.Address{
			Street:     in.Street,
			PostalCode: in.PostalCode,
			City:       in.City,
			Department: in.Department,
		},
	}, nil
}

type CreateClubCommand struct {
	CreatorID uint
	ClubDetailsInput
}

type CreateClubUseCase struct {
	clubRepo        club.Repository
	userRepo        user.Repository
	joinRequestRepo club.JoinRequestRepository
	txManager       db.Transactor
	storage         services.ObjectStorage
	logger          logger.Interface
}

func NewCreateClubUseCase(
	clubRepo club.Repository,
	userRepo user.Repository,
	joinRequestRepo club.JoinRequestRepository,
	txManager db.Transactor,
	storage services.ObjectStorage,
	logger logger.Interface,
) *CreateClubUseCase {
	return &CreateClubUseCase{
		clubRepo:        clubRepo,
		userRepo:        userRepo,
		joinRequestRepo: joinRequestRepo,
		txManager:       txManager,
		storage:         storage,
		logger:          logger,
	}
}

// Execute creates a club whose founder becomes its first member and admin.
// The founder's pending requests to other clubs are dropped.
func (uc *CreateClubUseCase) Execute(ctx context.Context, cmd CreateClubCommand) (*dto.ClubResponse, error) {
	details, err := cmd.toDetails()
	if err != nil {
		return nil, err
	}

	creator, err := loadUser(ctx, uc.userRepo, cmd.CreatorID)
	if err != nil {
		return nil, err
	}
	if creator.IsAffiliated() {
		return nil, errors.NewConflictError("you already belong to a club")
	}

	c, err := club.NewClub(details)
	if err != nil {
		return nil, mapDetailsError(err)
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.clubRepo.Create(txCtx, c); err != nil {
			return fmt.Errorf("failed to create club: %w", err)
		}
		attached, err := uc.userRepo.AttachToClubIfUnaffiliated(txCtx, creator.ID(), c.ID())
		if err != nil {
			return fmt.Errorf("failed to attach founder: %w", err)
		}
		if !attached {
			return errors.NewConflictError("you already belong to a club")
		}
		if _, err := uc.userRepo.SetClubAdmin(txCtx, creator.ID(), c.ID(), true); err != nil {
			return fmt.Errorf("failed to promote founder: %w", err)
		}
		return uc.joinRequestRepo.DeleteAllForUser(txCtx, creator.ID())
	})
	if err != nil {
		if errors.IsAppError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to create club", "error", err, "creator_id", cmd.CreatorID)
		return nil, err
	}

	uc.logger.Infow("club created", "club_id", c.ID(), "creator_id", cmd.CreatorID)

	resp := dto.ToClubResponse(c, uc.storage.URL)
	resp.MemberCount = 1
	resp.IsMember = true
	resp.IsAdmin = true
	return resp, nil
}
