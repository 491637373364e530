package usecases

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/ridecrew/ridecrew/internal/domain/entitlement"
	"github.com/ridecrew/ridecrew/internal/domain/subscription"
	"github.com/ridecrew/ridecrew/internal/shared/logger"
)

// SyncSubsUseCase refreshes every locally active subscription from the billing
// provider. Subscriptions the provider no longer knows are marked canceled.
type SyncSubsUseCase struct {
	subsRepo subscription.SubsRepository
	gateway  subscription.Gateway
	resolver entitlement.Resolver
	logger   logger.Interface
}

func NewSyncSubsUseCase(
	subsRepo subscription.SubsRepository,
	gateway subscription.Gateway,
	resolver entitlement.Resolver,
	logger logger.Interface,
) *SyncSubsUseCase {
	return &SyncSubsUseCase{
		subsRepo: subsRepo,
		gateway:  gateway,
		resolver: resolver,
		logger:   logger,
	}
}

// Execute returns the number of records changed. A provider failure on one
// record is logged and skipped.
func (uc *SyncSubsUseCase) Execute(ctx context.Context) (int, error) {
	active, err := uc.subsRepo.ListActive(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list active subscriptions: %w", err)
	}

	changed := 0
	for _, record := range active {
		if ctx.Err() != nil {
			return changed, ctx.Err()
		}

		ext, err := uc.gateway.RetrieveSubscription(ctx, record.ExternalSubscriptionID())
		switch {
		case err == nil:
			if !differs(record, ext) {
				continue
			}
			record.Refresh(*ext)
		case stderrors.Is(err, subscription.ErrNotFound):
			record.MarkCanceled()
		default:
			uc.logger.Warnw("failed to refresh subscription",
				"error", err,
				"subscription_id", record.ExternalSubscriptionID(),
			)
			continue
		}

		if err := uc.subsRepo.Update(ctx, record); err != nil {
			uc.logger.Errorw("failed to store refreshed subscription",
				"error", err,
				"subscription_id", record.ExternalSubscriptionID(),
			)
			continue
		}
		uc.resolver.Invalidate(ctx, record.CustomerID())
		changed++
	}

	if changed > 0 {
		uc.logger.Infow("subscriptions synchronized", "checked", len(active), "changed", changed)
	}
	return changed, nil
}

func differs(record *subscription.Subs, ext *subscription.ExternalSubscription) bool {
	return record.Status() != ext.Status ||
		record.CancelAtPeriodEnd() != ext.CancelAtPeriodEnd ||
		record.PlanType() != ext.PlanNickname ||
		!record.EndAt().Equal(ext.CurrentPeriodEnd) ||
		record.LatestInvoiceID() != ext.LatestInvoiceID
}
