package subscription

import (
	"fmt"
	"time"

	"github.com/ridecrew/ridecrew/internal/shared/biztime"
)

// Subs is the local durable copy of a subscription, recorded when a purchase is
// confirmed and refreshed on cancel, resume and periodic sync.
type Subs struct {
	id                     uint
	userID                 uint
	planType               PlanName
	externalSubscriptionID string
	customerID             string
	startAt                time.Time
	endAt                  time.Time
	cancelAtPeriodEnd      bool
	status                 string
	latestInvoiceID        string
	snapshot               map[string]any
	createdAt              time.Time
	updatedAt              time.Time
}

// NewSubsFromExternal records a snapshot of a provider subscription for a user.
func NewSubsFromExternal(userID uint, ext ExternalSubscription) (*Subs, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if ext.ID == "" {
		return nil, fmt.Errorf("external subscription id is required")
	}
	s := &Subs{userID: userID, createdAt: biztime.NowUTC()}
	s.Refresh(ext)
	return s, nil
}

func ReconstructSubs(
	id, userID uint,
	planType PlanName,
	externalSubscriptionID, customerID string,
	startAt, endAt time.Time,
	cancelAtPeriodEnd bool,
	status, latestInvoiceID string,
	snapshot map[string]any,
	createdAt, updatedAt time.Time,
) *Subs {
	return &Subs{
		id:                     id,
		userID:                 userID,
		planType:               planType,
		externalSubscriptionID: externalSubscriptionID,
		customerID:             customerID,
		startAt:                startAt,
		endAt:                  endAt,
		cancelAtPeriodEnd:      cancelAtPeriodEnd,
		status:                 status,
		latestInvoiceID:        latestInvoiceID,
		snapshot:               snapshot,
		createdAt:              createdAt,
		updatedAt:              updatedAt,
	}
}

func (s *Subs) ID() uint { return s.id }
func (s *Subs) UserID() uint { return s.userID }
func (s *Subs) PlanType() PlanName { return s.planType }
func (s *Subs) ExternalSubscriptionID() string { return s.externalSubscriptionID }
func (s *Subs) CustomerID() string { return s.customerID }
func (s *Subs) StartAt() time.Time { return s.startAt }
func (s *Subs) EndAt() time.Time { return s.endAt }
func (s *Subs) CancelAtPeriodEnd() bool { return s.cancelAtPeriodEnd }
func (s *Subs) Status() string { return s.status }
func (s *Subs) LatestInvoiceID() string { return s.latestInvoiceID }
func (s *Subs) Snapshot() map[string]any { return s.snapshot }
func (s *Subs) CreatedAt() time.Time { return s.createdAt }
func (s *Subs) UpdatedAt() time.Time { return s.updatedAt }

func (s *Subs) SetID(id uint) { s.id = id }

// Refresh overwrites the snapshot with the provider's current view.
func (s *Subs) Refresh(ext ExternalSubscription) {
	s.planType = ext.PlanNickname
	s.externalSubscriptionID = ext.ID
	s.customerID = ext.CustomerID
	s.startAt = ext.CurrentPeriodStart
	s.endAt = ext.CurrentPeriodEnd
	s.cancelAtPeriodEnd = ext.CancelAtPeriodEnd
	s.status = ext.Status
	s.latestInvoiceID = ext.LatestInvoiceID
	s.snapshot = map[string]any{
		"id":                   ext.ID,
		"customer":             ext.CustomerID,
		"status":               ext.Status,
		"cancel_at_period_end": ext.CancelAtPeriodEnd,
		"plan_nickname":        string(ext.PlanNickname),
		"price_id":             ext.PriceID,
		"current_period_start": ext.CurrentPeriodStart.Unix(),
		"current_period_end":   ext.CurrentPeriodEnd.Unix(),
		"latest_invoice":       ext.LatestInvoiceID,
	}
	s.updatedAt = biztime.NowUTC()
}

// MarkCanceled records that the provider no longer knows the subscription.
func (s *Subs) MarkCanceled() {
	s.status = StatusCanceled
	s.updatedAt = biztime.NowUTC()
}

// IsActive reports whether the local copy still considers the subscription active.
func (s *Subs) IsActive() bool {
	return s.status == StatusActive
}
