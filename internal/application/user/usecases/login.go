package usecases

import (
	"context"
	stderrors "errors"
	"fmt"
	"time"

	appentitlement "github.com/ridecrew/ridecrew/internal/application/entitlement"
	"github.com/ridecrew/ridecrew/internal/application/user/dto"
	"github.com/ridecrew/ridecrew/internal/domain/entitlement"
	"github.com/ridecrew/ridecrew/internal/domain/shared/services"
	"github.com/ridecrew/ridecrew/internal/domain/user"
	"github.com/ridecrew/ridecrew/internal/shared/config"
	"github.com/ridecrew/ridecrew/internal/shared/errors"
	"github.com/ridecrew/ridecrew/internal/shared/logger"
)

type LoginCommand struct {
	Email    string
	Password string
}

type LoginResult struct {
	AccessToken string
	ExpiresAt   time.Time
	User        *dto.CurrentUserResponse
}

type LoginUseCase struct {
	userRepo      user.Repository
	sessionRepo   user.SessionRepository
	hasher        PasswordHasher
	tokens        TokenIssuer
	resolver      entitlement.Resolver
	storage       services.ObjectStorage
	sessionConfig config.SessionConfig
	logger        logger.Interface
}

func NewLoginUseCase(
	userRepo user.Repository,
	sessionRepo user.SessionRepository,
	hasher PasswordHasher,
	tokens TokenIssuer,
	resolver entitlement.Resolver,
	storage services.ObjectStorage,
	sessionConfig config.SessionConfig,
	logger logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		userRepo:      userRepo,
		sessionRepo:   sessionRepo,
		hasher:        hasher,
		tokens:        tokens,
		resolver:      resolver,
		storage:       storage,
		sessionConfig: sessionConfig,
		logger:        logger,
	}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	existing, err := uc.userRepo.GetByEmail(ctx, cmd.Email)
	if err != nil {
		if stderrors.Is(err, user.ErrUserNotFound) {
			return nil, errors.NewInvalidCredentialsError()
		}
		uc.logger.Errorw("failed to get user by email", "error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if err := uc.hasher.Verify(cmd.Password, existing.PasswordHash()); err != nil {
		uc.logger.Infow("login rejected", "user_id", existing.ID())
		return nil, errors.NewInvalidCredentialsError()
	}

	ttl := uc.sessionConfig.TTL()
	if ttl <= 0 {
		ttl = 30 * 24 * time.Hour
	}
	session, err := user.NewSession(existing.ID(), ttl)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	if err := uc.sessionRepo.Create(ctx, session); err != nil {
		uc.logger.Errorw("failed to save session", "error", err, "user_id", existing.ID())
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	token, expiresAt, err := uc.tokens.Generate(existing.ID(), session.ID, existing.Role(), session.ExpiresAt)
	if err != nil {
		uc.logger.Errorw("failed to sign access token", "error", err, "user_id", existing.ID())
		return nil, fmt.Errorf("failed to sign access token: %w", err)
	}

	uc.logger.Infow("user logged in", "user_id", existing.ID(), "session_id", session.ID)

	ent := uc.resolver.Resolve(ctx, appentitlement.SubjectOf(existing))
	return &LoginResult{
		AccessToken: token,
		ExpiresAt:   expiresAt,
		User:        dto.ToCurrentUserResponse(existing, ent, uc.storage.URL),
	}, nil
}
