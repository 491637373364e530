package usecases

import (
	"context"
	"fmt"

	"github.com/ridecrew/ridecrew/internal/domain/user"
	"github.com/ridecrew/ridecrew/internal/shared/logger"
)

// PurgeSessionsUseCase removes expired and revoked sessions. It runs as a
// scheduled job.
type PurgeSessionsUseCase struct {
	sessionRepo user.SessionRepository
	logger      logger.Interface
}

func NewPurgeSessionsUseCase(sessionRepo user.SessionRepository, logger logger.Interface) *PurgeSessionsUseCase {
	return &PurgeSessionsUseCase{
		sessionRepo: sessionRepo,
		logger:      logger,
	}
}

// Execute returns the number of purged sessions.
func (uc *PurgeSessionsUseCase) Execute(ctx context.Context) (int, error) {
	n, err := uc.sessionRepo.DeleteExpired(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to purge sessions: %w", err)
	}
	if n > 0 {
		uc.logger.Infow("purged sessions", "count", n)
	}
	return int(n), nil
}
