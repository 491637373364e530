package usecases

import (
	"context"
	"fmt"

	"github.com/ridecrew/ridecrew/internal/application/subscription/dto"
	"github.com/ridecrew/ridecrew/internal/domain/subscription"
	"github.com/ridecrew/ridecrew/internal/shared/logger"
)

type ListSubsQuery struct {
	UserID uint
}

type ListSubsUseCase struct {
	subsRepo subscription.SubsRepository
	logger   logger.Interface
}

func NewListSubsUseCase(subsRepo subscription.SubsRepository, logger logger.Interface) *ListSubsUseCase {
	return &ListSubsUseCase{subsRepo: subsRepo, logger: logger}
}

func (uc *ListSubsUseCase) Execute(ctx context.Context, query ListSubsQuery) ([]*dto.SubsResponse, error) {
	subs, err := uc.subsRepo.ListByUser(ctx, query.UserID)
	if err != nil {
		uc.logger.Errorw("failed to list subscriptions", "error", err, "user_id", query.UserID)
		return nil, fmt.Errorf("failed to list subscriptions: %w", err)
	}
	return dto.ToSubsResponses(subs), nil
}
