// Package entitlement resolves premium access on read and gating paths.
package entitlement

import (
	"context"

	"github.com/ridecrew/ridecrew/internal/domain/entitlement"
	"github.com/ridecrew/ridecrew/internal/domain/subscription"
	"github.com/ridecrew/ridecrew/internal/domain/user"
	"github.com/ridecrew/ridecrew/internal/infrastructure/metrics"
	"github.com/ridecrew/ridecrew/internal/shared/logger"
)

// ServiceImpl implements entitlement.Resolver on top of the billing gateway.
type ServiceImpl struct {
	gateway subscription.Gateway
	cache   entitlement.Cache
	metrics metrics.EntitlementMetrics
	logger  logger.Interface
}

// NewService creates the resolver. cache and m may be nil.
func NewService(
	gateway subscription.Gateway,
	cache entitlement.Cache,
	m metrics.EntitlementMetrics,
	logger logger.Interface,
) *ServiceImpl {
	return &ServiceImpl{
		gateway: gateway,
		cache:   cache,
		metrics: m,
		logger:  logger,
	}
}

// Resolve never fails. Users without a billing customer, unknown customers and
// provider failures all resolve to entitlement.None.
func (s *ServiceImpl) Resolve(ctx context.Context, subject entitlement.Subject) entitlement.Entitlement {
	customerID := subject.BillingCustomerID
	if customerID == "" || customerID == user.NoBillingCustomer {
		s.record(metrics.OutcomeNoCustomer)
		return entitlement.None
	}

	if s.cache != nil {
		cached, err := s.cache.Get(ctx, customerID)
		if err != nil {
			s.logger.Warnw("entitlement cache read failed", "error", err, "user_id", subject.UserID)
		} else if cached != nil {
			s.record(metrics.OutcomeCacheHit)
			return *cached
		}
	}

	subs, err := s.gateway.ListCustomerSubscriptions(ctx, customerID)
	if err != nil {
		s.logger.Warnw("failed to list customer subscriptions, treating as no entitlement",
			"error", err,
			"user_id", subject.UserID,
			"billing_customer_id", customerID,
		)
		s.record(metrics.OutcomeProviderError)
		return entitlement.None
	}

	resolved := entitlement.Resolve(subs)
	s.record(metrics.OutcomeResolved)

	if s.cache != nil {
		if err := s.cache.Set(ctx, customerID, resolved); err != nil {
			s.logger.Warnw("entitlement cache write failed", "error", err, "user_id", subject.UserID)
		}
	}

	s.logger.Debugw("entitlement resolved",
		"user_id", subject.UserID,
		"plan_name", resolved.PlanName,
		"active", resolved.Active,
		"lapsing", resolved.Lapsing,
		"subscriptions", len(subs),
	)

	return resolved
}

// Invalidate drops the cached entitlement of a customer.
func (s *ServiceImpl) Invalidate(ctx context.Context, billingCustomerID string) {
	if s.cache == nil || billingCustomerID == "" || billingCustomerID == user.NoBillingCustomer {
		return
	}
	if err := s.cache.Delete(ctx, billingCustomerID); err != nil {
		s.logger.Warnw("failed to invalidate entitlement cache", "error", err, "billing_customer_id", billingCustomerID)
	}
}

func (s *ServiceImpl) record(outcome string) {
	if s.metrics != nil {
		s.metrics.IncResolution(outcome)
	}
}

// SubjectOf builds the resolution subject of a user.
func SubjectOf(u *user.User) entitlement.Subject {
	return entitlement.Subject{UserID: u.ID(), BillingCustomerID: u.BillingCustomerID()}
}
