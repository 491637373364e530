// Package entitlement derives a user's effective premium tier from the billing
// provider's live subscription list.
package entitlement

import (
	"github.com/ridecrew/ridecrew/internal/domain/subscription"
)

// Entitlement is the resolved access tier of one billing customer.
type Entitlement struct {
	// PlanName is the plan of the selected subscription, empty when none.
	PlanName subscription.PlanName `json:"plan_name"`
	// Active is true when some subscription is active and not set to cancel.
	Active bool `json:"active"`
	// Lapsing is true when the selected subscription is active but set to
	// cancel at the end of its period.
	Lapsing bool `json:"lapsing"`
	// SubscriptionID identifies the selected subscription.
	SubscriptionID string `json:"subscription_id,omitempty"`
}

// None is the entitlement of users without billing record or subscriptions.
var None = Entitlement{}

// HasAccess reports whether premium features are currently usable. A lapsing
// subscription keeps its perks until the period ends.
func (e Entitlement) HasAccess() bool {
	return e.Active || e.Lapsing
}

// Grants reports whether the entitlement covers the required plan.
func (e Entitlement) Grants(required subscription.PlanName) bool {
	return e.HasAccess() && e.PlanName.Rank() >= required.Rank()
}

// Resolve computes the entitlement for a provider-ordered subscription list.
//
// With more than one subscription (an upgrade or downgrade overlap) the first
// active top-tier subscription that is set to cancel is selected, so the user
// keeps top-tier perks until it really ends. Otherwise the first entry wins.
func Resolve(subs []subscription.ExternalSubscription) Entitlement {
	if len(subs) == 0 {
		return None
	}

	selected := subs[0]
	if len(subs) > 1 {
		for _, s := range subs {
			if s.IsLapsing() && s.PlanNickname == subscription.TopTier {
				selected = s
				break
			}
		}
	}

	active := false
	for _, s := range subs {
		if s.IsActive() && !s.CancelAtPeriodEnd {
			active = true
			break
		}
	}

	return Entitlement{
		PlanName:       selected.PlanNickname,
		Active:         active,
		Lapsing:        selected.IsLapsing(),
		SubscriptionID: selected.ID,
	}
}
