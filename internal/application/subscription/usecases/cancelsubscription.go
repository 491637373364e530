package usecases

import (
	"context"
	"fmt"

	"github.com/ridecrew/ridecrew/internal/application/subscription/dto"
	"github.com/ridecrew/ridecrew/internal/domain/entitlement"
	"github.com/ridecrew/ridecrew/internal/domain/subscription"
	"github.com/ridecrew/ridecrew/internal/shared/errors"
	"github.com/ridecrew/ridecrew/internal/shared/logger"
)

type ChangeRenewalCommand struct {
	UserID         uint
	SubscriptionID string
}

// renewalUseCase flips cancel_at_period_end on an owned subscription.
type renewalUseCase struct {
	subsRepo subscription.SubsRepository
	gateway  subscription.Gateway
	resolver entitlement.Resolver
	logger   logger.Interface
}

func (uc *renewalUseCase) setCancelAtPeriodEnd(ctx context.Context, cmd ChangeRenewalCommand, cancel bool) (*dto.SubsResponse, error) {
	record, err := loadOwnedSubs(ctx, uc.subsRepo, cmd.SubscriptionID, cmd.UserID)
	if err != nil {
		return nil, err
	}
	if !record.IsActive() {
		return nil, errors.NewConflictError(subscription.ErrInactive.Error())
	}
	if cancel && record.CancelAtPeriodEnd() {
		return nil, errors.NewConflictError(subscription.ErrAlreadyCanceling.Error())
	}
	if !cancel && !record.CancelAtPeriodEnd() {
		return nil, errors.NewConflictError(subscription.ErrNotCanceling.Error())
	}

	ext, err := uc.gateway.UpdateSubscription(ctx, record.ExternalSubscriptionID(), subscription.Update{CancelAtPeriodEnd: cancel})
	if err != nil {
		uc.logger.Errorw("failed to update subscription at provider",
			"error", err,
			"subscription_id", record.ExternalSubscriptionID(),
			"cancel_at_period_end", cancel,
		)
		return nil, mapGatewayError(err)
	}

	record.Refresh(*ext)
	if err := uc.subsRepo.Update(ctx, record); err != nil {
		uc.logger.Errorw("failed to update subscription record", "error", err, "subscription_id", record.ExternalSubscriptionID())
		return nil, fmt.Errorf("failed to update subscription: %w", err)
	}
	uc.resolver.Invalidate(ctx, record.CustomerID())

	uc.logger.Infow("subscription renewal changed",
		"user_id", cmd.UserID,
		"subscription_id", record.ExternalSubscriptionID(),
		"cancel_at_period_end", cancel,
	)
	return dto.ToSubsResponse(record), nil
}

type CancelSubscriptionUseCase struct {
	renewalUseCase
}

func NewCancelSubscriptionUseCase(
	subsRepo subscription.SubsRepository,
	gateway subscription.Gateway,
	resolver entitlement.Resolver,
	logger logger.Interface,
) *CancelSubscriptionUseCase {
	return &CancelSubscriptionUseCase{renewalUseCase{
		subsRepo: subsRepo,
		gateway:  gateway,
		resolver: resolver,
		logger:   logger,
	}}
}

// Execute schedules the subscription to end with its current period.
func (uc *CancelSubscriptionUseCase) Execute(ctx context.Context, cmd ChangeRenewalCommand) (*dto.SubsResponse, error) {
	return uc.setCancelAtPeriodEnd(ctx, cmd, true)
}

type ResumeSubscriptionUseCase struct {
	renewalUseCase
}

func NewResumeSubscriptionUseCase(
	subsRepo subscription.SubsRepository,
	gateway subscription.Gateway,
	resolver entitlement.Resolver,
	logger logger.Interface,
) *ResumeSubscriptionUseCase {
	return &ResumeSubscriptionUseCase{renewalUseCase{
		subsRepo: subsRepo,
		gateway:  gateway,
		resolver: resolver,
		logger:   logger,
	}}
}

// Execute undoes a scheduled cancellation while the subscription is still active.
func (uc *ResumeSubscriptionUseCase) Execute(ctx context.Context, cmd ChangeRenewalCommand) (*dto.SubsResponse, error) {
	return uc.setCancelAtPeriodEnd(ctx, cmd, false)
}
