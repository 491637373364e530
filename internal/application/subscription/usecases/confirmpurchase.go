package usecases

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/ridecrew/ridecrew/internal/application/subscription/dto"
	"github.com/ridecrew/ridecrew/internal/domain/entitlement"
	"github.com/ridecrew/ridecrew/internal/domain/subscription"
	"github.com/ridecrew/ridecrew/internal/domain/user"
	"github.com/ridecrew/ridecrew/internal/shared/errors"
	"github.com/ridecrew/ridecrew/internal/shared/logger"
)

type ConfirmPurchaseCommand struct {
	UserID         uint
	SubscriptionID string
}

type ConfirmPurchaseUseCase struct {
	userRepo user.Repository
	subsRepo subscription.SubsRepository
	gateway  subscription.Gateway
	resolver entitlement.Resolver
	logger   logger.Interface
}

func NewConfirmPurchaseUseCase(
	userRepo user.Repository,
	subsRepo subscription.SubsRepository,
	gateway subscription.Gateway,
	resolver entitlement.Resolver,
	logger logger.Interface,
) *ConfirmPurchaseUseCase {
	return &ConfirmPurchaseUseCase{
		userRepo: userRepo,
		subsRepo: subsRepo,
		gateway:  gateway,
		resolver: resolver,
		logger:   logger,
	}
}

// Execute records the local snapshot of a subscription bought through checkout.
// Confirming the same subscription twice refreshes the existing record.
func (uc *ConfirmPurchaseUseCase) Execute(ctx context.Context, cmd ConfirmPurchaseCommand) (*dto.SubsResponse, error) {
	if cmd.SubscriptionID == "" {
		return nil, errors.NewValidationError("subscription id is required")
	}

	u, err := loadUser(ctx, uc.userRepo, cmd.UserID)
	if err != nil {
		return nil, err
	}
	if !u.HasBillingCustomer() {
		return nil, errors.NewForbiddenError("subscription does not belong to you")
	}

	ext, err := uc.gateway.RetrieveSubscription(ctx, cmd.SubscriptionID)
	if err != nil {
		uc.logger.Warnw("failed to retrieve subscription", "error", err, "subscription_id", cmd.SubscriptionID)
		return nil, mapGatewayError(err)
	}
	if ext.CustomerID != u.BillingCustomerID() {
		uc.logger.Warnw("subscription confirm with foreign customer",
			"user_id", u.ID(),
			"subscription_id", ext.ID,
		)
		return nil, errors.NewForbiddenError("subscription does not belong to you")
	}

	record, err := uc.subsRepo.GetByExternalID(ctx, ext.ID)
	switch {
	case err == nil:
		record.Refresh(*ext)
		if err := uc.subsRepo.Update(ctx, record); err != nil {
			uc.logger.Errorw("failed to update subscription record", "error", err, "subscription_id", ext.ID)
			return nil, fmt.Errorf("failed to update subscription: %w", err)
		}
	case stderrors.Is(err, subscription.ErrSubsNotFound):
		record, err = subscription.NewSubsFromExternal(u.ID(), *ext)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		if err := uc.subsRepo.Create(ctx, record); err != nil {
			uc.logger.Errorw("failed to create subscription record", "error", err, "subscription_id", ext.ID)
			return nil, fmt.Errorf("failed to create subscription: %w", err)
		}
	default:
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}

	uc.resolver.Invalidate(ctx, u.BillingCustomerID())
	uc.logger.Infow("subscription purchase confirmed",
		"user_id", u.ID(),
		"subscription_id", ext.ID,
		"plan", ext.PlanNickname,
	)
	return dto.ToSubsResponse(record), nil
}
