package usecases

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/ridecrew/ridecrew/internal/application/bicycle/dto"
	"github.com/ridecrew/ridecrew/internal/application/common"
	"github.com/ridecrew/ridecrew/internal/domain/bicycle"
	"github.com/ridecrew/ridecrew/internal/domain/shared/services"
	"github.com/ridecrew/ridecrew/internal/shared/errors"
	"github.com/ridecrew/ridecrew/internal/shared/logger"
)

type SpecsInput struct {
	Name  string
	Brand string
	Model string
	Kind  string
	Year  int
}

func (in SpecsInput) toSpecs() bicycle.Specs {
	return bicycle.Specs{
		Name:  in.Name,
		Brand: in.Brand,
		Model: in.Model,
		Kind:  bicycle.Kind(in.Kind),
		Year:  in.Year,
	}
}

func mapSpecsError(err error) error {
	switch {
	case stderrors.Is(err, bicycle.ErrNameRequired),
		stderrors.Is(err, bicycle.ErrInvalidKind),
		stderrors.Is(err, bicycle.ErrInvalidYear):
		return errors.NewValidationError(err.Error())
	default:
		return err
	}
}

// loadOwned returns the bicycle when actorID owns it.
func loadOwned(ctx context.Context, repo bicycle.Repository, id, actorID uint) (*bicycle.Bicycle, error) {
	b, err := repo.GetByID(ctx, id)
	if err != nil {
		if stderrors.Is(err, bicycle.ErrBicycleNotFound) {
			return nil, errors.NewNotFoundError("bicycle not found")
		}
		return nil, fmt.Errorf("failed to get bicycle: %w", err)
	}
	if b.OwnerID() != actorID {
		return nil, errors.NewForbiddenError("you do not own this bicycle")
	}
	return b, nil
}

type CreateBicycleCommand struct {
	OwnerID uint
	SpecsInput
}

type CreateBicycleUseCase struct {
	repo    bicycle.Repository
	storage services.ObjectStorage
	logger  logger.Interface
}

func NewCreateBicycleUseCase(repo bicycle.Repository, storage services.ObjectStorage, logger logger.Interface) *CreateBicycleUseCase {
	return &CreateBicycleUseCase{repo: repo, storage: storage, logger: logger}
}

func (uc *CreateBicycleUseCase) Execute(ctx context.Context, cmd CreateBicycleCommand) (*dto.BicycleResponse, error) {
	b, err := bicycle.NewBicycle(cmd.OwnerID, cmd.toSpecs())
	if err != nil {
		return nil, mapSpecsError(err)
	}
	if err := uc.repo.Create(ctx, b); err != nil {
		uc.logger.Errorw("failed to create bicycle", "error", err, "owner_id", cmd.OwnerID)
		return nil, fmt.Errorf("failed to create bicycle: %w", err)
	}
	return dto.ToBicycleResponse(b, uc.storage.URL), nil
}

type UpdateBicycleCommand struct {
	BicycleID uint
	ActorID   uint
	SpecsInput
}

type UpdateBicycleUseCase struct {
	repo    bicycle.Repository
	storage services.ObjectStorage
	logger  logger.Interface
}

func NewUpdateBicycleUseCase(repo bicycle.Repository, storage services.ObjectStorage, logger logger.Interface) *UpdateBicycleUseCase {
	return &UpdateBicycleUseCase{repo: repo, storage: storage, logger: logger}
}

func (uc *UpdateBicycleUseCase) Execute(ctx context.Context, cmd UpdateBicycleCommand) (*dto.BicycleResponse, error) {
	b, err := loadOwned(ctx, uc.repo, cmd.BicycleID, cmd.ActorID)
	if err != nil {
		return nil, err
	}
	if err := b.Update(cmd.toSpecs()); err != nil {
		return nil, mapSpecsError(err)
	}
	if err := uc.repo.Update(ctx, b); err != nil {
		uc.logger.Errorw("failed to update bicycle", "error", err, "bicycle_id", cmd.BicycleID)
		return nil, fmt.Errorf("failed to update bicycle: %w", err)
	}
	return dto.ToBicycleResponse(b, uc.storage.URL), nil
}

type DeleteBicycleCommand struct {
	BicycleID uint
	ActorID   uint
}

type DeleteBicycleUseCase struct {
	repo    bicycle.Repository
	storage services.ObjectStorage
	logger  logger.Interface
}

func NewDeleteBicycleUseCase(repo bicycle.Repository, storage services.ObjectStorage, logger logger.Interface) *DeleteBicycleUseCase {
	return &DeleteBicycleUseCase{repo: repo, storage: storage, logger: logger}
}

func (uc *DeleteBicycleUseCase) Execute(ctx context.Context, cmd DeleteBicycleCommand) error {
	b, err := loadOwned(ctx, uc.repo, cmd.BicycleID, cmd.ActorID)
	if err != nil {
		return err
	}
	if err := uc.repo.Delete(ctx, b.ID()); err != nil {
		uc.logger.Errorw("failed to delete bicycle", "error", err, "bicycle_id", cmd.BicycleID)
		return fmt.Errorf("failed to delete bicycle: %w", err)
	}
	common.DeleteAssets(ctx, uc.storage, uc.logger, b.PhotoPath())
	return nil
}

type ListBicyclesQuery struct {
	OwnerID uint
}

type ListBicyclesUseCase struct {
	repo    bicycle.Repository
	storage services.ObjectStorage
	logger  logger.Interface
}

func NewListBicyclesUseCase(repo bicycle.Repository, storage services.ObjectStorage, logger logger.Interface) *ListBicyclesUseCase {
	return &ListBicyclesUseCase{repo: repo, storage: storage, logger: logger}
}

func (uc *ListBicyclesUseCase) Execute(ctx context.Context, query ListBicyclesQuery) ([]*dto.BicycleResponse, error) {
	bikes, err := uc.repo.ListByOwner(ctx, query.OwnerID)
	if err != nil {
		uc.logger.Errorw("failed to list bicycles", "error", err, "owner_id", query.OwnerID)
		return nil, fmt.Errorf("failed to list bicycles: %w", err)
	}
	result := make([]*dto.BicycleResponse, 0, len(bikes))
	for _, b := range bikes {
		result = append(result, dto.ToBicycleResponse(b, uc.storage.URL))
	}
	return result, nil
}

type UpdateBicyclePhotoCommand struct {
	BicycleID uint
	ActorID   uint
	Image     common.ImageUpload
}

type UpdateBicyclePhotoUseCase struct {
	repo    bicycle.Repository
	storage services.ObjectStorage
	logger  logger.Interface
}

func NewUpdateBicyclePhotoUseCase(repo bicycle.Repository, storage services.ObjectStorage, logger logger.Interface) *UpdateBicyclePhotoUseCase {
	return &UpdateBicyclePhotoUseCase{repo: repo, storage: storage, logger: logger}
}

func (uc *UpdateBicyclePhotoUseCase) Execute(ctx context.Context, cmd UpdateBicyclePhotoCommand) (*dto.BicycleResponse, error) {
	b, err := loadOwned(ctx, uc.repo, cmd.BicycleID, cmd.ActorID)
	if err != nil {
		return nil, err
	}
	key, err := common.StoreImage(ctx, uc.storage, common.KindBicyclePhoto, cmd.Image)
	if err != nil {
		return nil, err
	}
	previous := b.ReplacePhoto(key)
	if err := uc.repo.Update(ctx, b); err != nil {
		uc.logger.Errorw("failed to save bicycle photo", "error", err, "bicycle_id", cmd.BicycleID)
		common.DeleteAssets(ctx, uc.storage, uc.logger, key)
		return nil, fmt.Errorf("failed to save bicycle photo: %w", err)
	}
	common.DeleteAssets(ctx, uc.storage, uc.logger, previous)
	return dto.ToBicycleResponse(b, uc.storage.URL), nil
}
