package usecases

import (
	"context"
	stderrors "errors"
	"fmt"

	appentitlement "github.com/ridecrew/ridecrew/internal/application/entitlement"
	"github.com/ridecrew/ridecrew/internal/application/user/dto"
	"github.com/ridecrew/ridecrew/internal/domain/entitlement"
	"github.com/ridecrew/ridecrew/internal/domain/geo"
	"github.com/ridecrew/ridecrew/internal/domain/shared/services"
	"github.com/ridecrew/ridecrew/internal/domain/user"
	"github.com/ridecrew/ridecrew/internal/shared/errors"
	"github.com/ridecrew/ridecrew/internal/shared/logger"
)

type UpdateProfileCommand struct {
	UserID     uint
	FirstName  string
	LastName   string
	Bio        string
	City       string
	Department string
}

type UpdateProfileUseCase struct {
	userRepo user.Repository
	resolver entitlement.Resolver
	storage  services.ObjectStorage
	logger   logger.Interface
}

func NewUpdateProfileUseCase(
	userRepo user.Repository,
	resolver entitlement.Resolver,
	storage services.ObjectStorage,
	logger logger.Interface,
) *UpdateProfileUseCase {
	return &UpdateProfileUseCase{
		userRepo: userRepo,
		resolver: resolver,
		storage:  storage,
		logger:   logger,
	}
}

func (uc *UpdateProfileUseCase) Execute(ctx context.Context, cmd UpdateProfileCommand) (*dto.CurrentUserResponse, error) {
	if cmd.Department != "" && !geo.IsDepartmentCode(cmd.Department) {
		return nil, errors.NewFieldValidationError("Validation failed", map[string]string{
			"department": "department must be a known department code",
		})
	}

	u, err := uc.userRepo.GetByID(ctx, cmd.UserID)
	if err != nil {
		if stderrors.Is(err, user.ErrUserNotFound) {
			return nil, errors.NewNotFoundError("user not found")
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if err := u.UpdateProfile(user.Profile{
		FirstName:  cmd.FirstName,
		LastName:   cmd.LastName,
		Bio:        cmd.Bio,
		City:       cmd.City,
		Department: cmd.Department,
	}); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.userRepo.Update(ctx, u); err != nil {
		uc.logger.Errorw("failed to update profile", "error", err, "user_id", cmd.UserID)
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	uc.logger.Infow("profile updated", "user_id", cmd.UserID)

	ent := uc.resolver.Resolve(ctx, appentitlement.SubjectOf(u))
	return dto.ToCurrentUserResponse(u, ent, uc.storage.URL), nil
}
