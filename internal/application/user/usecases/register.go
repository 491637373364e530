package usecases

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/ridecrew/ridecrew/internal/application/user/dto"
	"github.com/ridecrew/ridecrew/internal/domain/shared/services"
	"github.com/ridecrew/ridecrew/internal/domain/user"
	"github.com/ridecrew/ridecrew/internal/shared/errors"
	"github.com/ridecrew/ridecrew/internal/shared/logger"
)

const minPasswordLength = 8

type RegisterCommand struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
}

type RegisterUseCase struct {
	userRepo user.Repository
	hasher   PasswordHasher
	storage  services.ObjectStorage
	logger   logger.Interface
}

func NewRegisterUseCase(
	userRepo user.Repository,
	hasher PasswordHasher,
	storage services.ObjectStorage,
	logger logger.Interface,
) *RegisterUseCase {
	return &RegisterUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		storage:  storage,
		logger:   logger,
	}
}

func (uc *RegisterUseCase) Execute(ctx context.Context, cmd RegisterCommand) (*dto.ProfileResponse, error) {
	if len(cmd.Password) < minPasswordLength {
		return nil, errors.NewFieldValidationError("Validation failed", map[string]string{
			"password": fmt.Sprintf("password must be at least %d characters long", minPasswordLength),
		})
	}

	exists, err := uc.userRepo.ExistsByEmail(ctx, cmd.Email)
	if err != nil {
		uc.logger.Errorw("failed to check email", "error", err)
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		return nil, errors.NewConflictError("email already registered")
	}

	hash, err := uc.hasher.Hash(cmd.Password)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	newUser, err := user.NewUser(cmd.Email, cmd.FirstName, cmd.LastName, hash)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.userRepo.Create(ctx, newUser); err != nil {
		if stderrors.Is(err, user.ErrEmailTaken) || errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("email already registered")
		}
		uc.logger.Errorw("failed to create user", "error", err)
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	uc.logger.Infow("user registered", "user_id", newUser.ID())

	return dto.ToProfileResponse(newUser, uc.storage.URL), nil
}
