package entitlement

import "context"

// Subject is the minimal view of a user needed to resolve an entitlement.
type Subject struct {
	UserID            uint
	BillingCustomerID string
}

// Resolver resolves entitlements on read and gating paths. It never fails:
// provider errors resolve to None.
type Resolver interface {
	Resolve(ctx context.Context, subject Subject) Entitlement
	// Invalidate drops any cached entitlement of the customer.
	Invalidate(ctx context.Context, billingCustomerID string)
}

// Cache stores resolved entitlements per billing customer.
type Cache interface {
	Get(ctx context.Context, billingCustomerID string) (*Entitlement, error)
	Set(ctx context.Context, billingCustomerID string, e Entitlement) error
	Delete(ctx context.Context, billingCustomerID string) error
}
