package subscription

import "context"

// SubsRepository persists local subscription snapshots.
type SubsRepository interface {
	Create(ctx context.Context, s *Subs) error
	Update(ctx context.Context, s *Subs) error
	GetByExternalID(ctx context.Context, externalSubscriptionID string) (*Subs, error)
	ListByUser(ctx context.Context, userID uint) ([]*Subs, error)
	// ListActive returns every row whose local status is still active.
	ListActive(ctx context.Context) ([]*Subs, error)
}
