package entitlement

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ridecrew/ridecrew/internal/domain/subscription"
)

func sub(id string, plan subscription.PlanName, status string, cancelAtPeriodEnd bool) subscription.ExternalSubscription {
	return subscription.ExternalSubscription{
		ID:                id,
		Status:            status,
		CancelAtPeriodEnd: cancelAtPeriodEnd,
		PlanNickname:      plan,
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name string
		subs []subscription.ExternalSubscription
		want Entitlement
	}{
		{
			name: "no subscriptions",
			subs: nil,
			want: None,
		},
		{
			name: "single active premium 1",
			subs: []subscription.ExternalSubscription{
				sub("sub_a", subscription.PlanPremium1, subscription.StatusActive, false),
			},
			want: Entitlement{PlanName: subscription.PlanPremium1, Active: true, Lapsing: false, SubscriptionID: "sub_a"},
		},
		{
			name: "single lapsing premium 2",
			subs: []subscription.ExternalSubscription{
				sub("sub_a", subscription.PlanPremium2, subscription.StatusActive, true),
			},
			want: Entitlement{PlanName: subscription.PlanPremium2, Active: false, Lapsing: true, SubscriptionID: "sub_a"},
		},
		{
			name: "single canceled",
			subs: []subscription.ExternalSubscription{
				sub("sub_a", subscription.PlanPremium1, subscription.StatusCanceled, false),
			},
			want: Entitlement{PlanName: subscription.PlanPremium1, Active: false, Lapsing: false, SubscriptionID: "sub_a"},
		},
		{
			name: "lapsing premium 2 wins over new premium 1",
			subs: []subscription.ExternalSubscription{
				sub("sub_new", subscription.PlanPremium1, subscription.StatusActive, false),
				sub("sub_old", subscription.PlanPremium2, subscription.StatusActive, true),
			},
			want: Entitlement{PlanName: subscription.PlanPremium2, Active: true, Lapsing: true, SubscriptionID: "sub_old"},
		},
		{
			name: "lapsing premium 1 does not override provider order",
			subs: []subscription.ExternalSubscription{
				sub("sub_new", subscription.PlanPremium2, subscription.StatusActive, false),
				sub("sub_old", subscription.PlanPremium1, subscription.StatusActive, true),
			},
			want: Entitlement{PlanName: subscription.PlanPremium2, Active: true, Lapsing: false, SubscriptionID: "sub_new"},
		},
		{
			name: "canceled premium 2 is not preferred",
			subs: []subscription.ExternalSubscription{
				sub("sub_new", subscription.PlanPremium1, subscription.StatusActive, false),
				sub("sub_old", subscription.PlanPremium2, subscription.StatusCanceled, true),
			},
			want: Entitlement{PlanName: subscription.PlanPremium1, Active: true, Lapsing: false, SubscriptionID: "sub_new"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Resolve(tt.subs))
		})
	}
}

func TestEntitlementGrants(t *testing.T) {
	p1 := Entitlement{PlanName: subscription.PlanPremium1, Active: true}
	assert.True(t, p1.Grants(subscription.PlanPremium1))
	assert.False(t, p1.Grants(subscription.PlanPremium2))

	lapsingP2 := Entitlement{PlanName: subscription.PlanPremium2, Lapsing: true}
	assert.True(t, lapsingP2.Grants(subscription.PlanPremium2))

	assert.False(t, None.HasAccess())
	assert.False(t, Entitlement{PlanName: subscription.PlanPremium2}.Grants(subscription.PlanPremium1))
}
