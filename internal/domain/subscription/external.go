package subscription

import (
	"strings"
	"time"
)

// Provider-side subscription statuses relevant to entitlement.
const (
	StatusActive     = "active"
	StatusTrialing   = "trialing"
	StatusPastDue    = "past_due"
	StatusCanceled   = "canceled"
	StatusIncomplete = "incomplete"
)

// PlanName is the nickname of a billing plan as configured at the provider.
type PlanName string

const (
	PlanPremium1 PlanName = "Premium 1"
	PlanPremium2 PlanName = "Premium 2"
)

// TopTier is the highest named tier; a lapsing TopTier subscription wins
// over a newer lower-tier one during an overlap.
const TopTier = PlanPremium2

// Rank orders plans; unknown or empty plans rank 0.
func (p PlanName) Rank() int {
	switch p {
	case PlanPremium1:
		return 1
	case PlanPremium2:
		return 2
	}
	return 0
}

func (p PlanName) IsValid() bool {
	return p.Rank() > 0
}

// ParsePlanName matches a plan name case-insensitively; configuration
// loaders lowercase map keys.
func ParsePlanName(s string) (PlanName, bool) {
	for _, p := range []PlanName{PlanPremium1, PlanPremium2} {
		if strings.EqualFold(strings.TrimSpace(s), string(p)) {
			return p, true
		}
	}
	return "", false
}

// PriceIDsByPlan normalizes a configured plan-to-price map to canonical
// plan names, dropping unknown plans.
func PriceIDsByPlan(configured map[string]string) map[PlanName]string {
	out := make(map[PlanName]string, len(configured))
	for name, priceID := range configured {
		if p, ok := ParsePlanName(name); ok && priceID != "" {
			out[p] = priceID
		}
	}
	return out
}

// ExternalSubscription is the billing provider's view of one subscription.
type ExternalSubscription struct {
	ID                 string
	CustomerID         string
	Status             string
	CancelAtPeriodEnd  bool
	PlanNickname       PlanName
	PriceID            string
	CurrentPeriodStart time.Time
	CurrentPeriodEnd   time.Time
	LatestInvoiceID    string
}

// IsActive reports whether the provider considers the subscription active.
func (s ExternalSubscription) IsActive() bool {
	return s.Status == StatusActive
}

// IsLapsing reports an active subscription scheduled to end with its period.
func (s ExternalSubscription) IsLapsing() bool {
	return s.IsActive() && s.CancelAtPeriodEnd
}
