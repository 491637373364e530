package usecases

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/ridecrew/ridecrew/internal/domain/user"
	"github.com/ridecrew/ridecrew/internal/shared/logger"
)

type LogoutCommand struct {
	SessionID string
}

type LogoutUseCase struct {
	sessionRepo user.SessionRepository
	logger      logger.Interface
}

func NewLogoutUseCase(sessionRepo user.SessionRepository, logger logger.Interface) *LogoutUseCase {
	return &LogoutUseCase{
		sessionRepo: sessionRepo,
		logger:      logger,
	}
}

// Execute revokes the session. Logging out of an unknown session succeeds.
func (uc *LogoutUseCase) Execute(ctx context.Context, cmd LogoutCommand) error {
	if err := uc.sessionRepo.Revoke(ctx, cmd.SessionID); err != nil {
		if stderrors.Is(err, user.ErrSessionNotFound) {
			return nil
		}
		uc.logger.Errorw("failed to revoke session", "error", err, "session_id", cmd.SessionID)
		return fmt.Errorf("failed to logout: %w", err)
	}

	uc.logger.Infow("user logged out", "session_id", cmd.SessionID)

	return nil
}
