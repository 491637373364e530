package payment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v82"

	"github.com/ridecrew/ridecrew/internal/domain/subscription"
	"github.com/ridecrew/ridecrew/internal/shared/config"
	"github.com/ridecrew/ridecrew/internal/shared/logger"
)

type fakeStripe struct {
	listFunc     func(params *stripe.SubscriptionListParams) ([]*stripe.Subscription, error)
	getFunc      func(id string) (*stripe.Subscription, error)
	updateFunc   func(id string, params *stripe.SubscriptionParams) (*stripe.Subscription, error)
	cancelFunc   func(id string) (*stripe.Subscription, error)
	customerFunc func(params *stripe.CustomerParams) (*stripe.Customer, error)
	checkoutFunc func(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error)
}

func (f *fakeStripe) ListSubscriptions(params *stripe.SubscriptionListParams) ([]*stripe.Subscription, error) {
	return f.listFunc(params)
}

func (f *fakeStripe) GetSubscription(id string, _ *stripe.SubscriptionParams) (*stripe.Subscription, error) {
	return f.getFunc(id)
}

func (f *fakeStripe) UpdateSubscription(id string, params *stripe.SubscriptionParams) (*stripe.Subscription, error) {
	return f.updateFunc(id, params)
}

func (f *fakeStripe) CancelSubscription(id string, _ *stripe.SubscriptionCancelParams) (*stripe.Subscription, error) {
	return f.cancelFunc(id)
}

func (f *fakeStripe) NewCustomer(params *stripe.CustomerParams) (*stripe.Customer, error) {
	return f.customerFunc(params)
}

func (f *fakeStripe) NewCheckoutSession(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error) {
	return f.checkoutFunc(params)
}

func stripeSub(id string, status stripe.SubscriptionStatus, cancelAtPeriodEnd bool, priceNickname, priceID string) *stripe.Subscription {
	return &stripe.Subscription{
		ID:                id,
		Status:            status,
		CancelAtPeriodEnd: cancelAtPeriodEnd,
		Customer:          &stripe.Customer{ID: "cus_1"},
		LatestInvoice:     &stripe.Invoice{ID: "in_1"},
		Items: &stripe.SubscriptionItemList{
			Data: []*stripe.SubscriptionItem{{
				Price:              &stripe.Price{ID: priceID, Nickname: priceNickname},
				CurrentPeriodStart: 1700000000,
				CurrentPeriodEnd:   1702592000,
			}},
		},
	}
}

func newTestGateway(api stripeAPI) *StripeGateway {
	return newStripeGateway(api, config.BillingConfig{
		PriceIDs: map[string]string{"Premium 1": "price_p1", "Premium 2": "price_p2"},
	}, logger.NewNopLogger())
}

func TestStripeGateway_ListCustomerSubscriptions(t *testing.T) {
	api := &fakeStripe{
		listFunc: func(params *stripe.SubscriptionListParams) ([]*stripe.Subscription, error) {
			assert.Equal(t, "cus_1", *params.Customer)
			return []*stripe.Subscription{
				stripeSub("sub_1", stripe.SubscriptionStatusActive, true, "Premium 2", "price_p2"),
				stripeSub("sub_2", stripe.SubscriptionStatusActive, false, "", "price_p1"),
			}, nil
		},
	}

	subs, err := newTestGateway(api).ListCustomerSubscriptions(context.Background(), "cus_1")
	require.NoError(t, err)
	require.Len(t, subs, 2)

	assert.Equal(t, "sub_1", subs[0].ID)
	assert.Equal(t, subscription.PlanPremium2, subs[0].PlanNickname)
	assert.True(t, subs[0].IsLapsing())
	assert.Equal(t, "cus_1", subs[0].CustomerID)
	assert.Equal(t, "in_1", subs[0].LatestInvoiceID)
	assert.Equal(t, time.Unix(1702592000, 0).UTC(), subs[0].CurrentPeriodEnd)

	// missing nickname falls back to the configured price mapping
	assert.Equal(t, subscription.PlanPremium1, subs[1].PlanNickname)
}

func TestStripeGateway_NormalizesPlanNicknames(t *testing.T) {
	api := &fakeStripe{
		listFunc: func(params *stripe.SubscriptionListParams) ([]*stripe.Subscription, error) {
			return []*stripe.Subscription{
				stripeSub("sub_1", stripe.SubscriptionStatusActive, true, "premium 2", "price_other"),
				stripeSub("sub_2", stripe.SubscriptionStatusActive, false, " PREMIUM 1 ", "price_other"),
				stripeSub("sub_3", stripe.SubscriptionStatusActive, false, "Gold", "price_p2"),
			}, nil
		},
	}

	subs, err := newTestGateway(api).ListCustomerSubscriptions(context.Background(), "cus_1")
	require.NoError(t, err)
	require.Len(t, subs, 3)

	assert.Equal(t, subscription.PlanPremium2, subs[0].PlanNickname)
	assert.Equal(t, 2, subs[0].PlanNickname.Rank())
	assert.Equal(t, subscription.PlanPremium1, subs[1].PlanNickname)
	// unknown nickname falls back to the configured price mapping
	assert.Equal(t, subscription.PlanPremium2, subs[2].PlanNickname)
}

func TestStripeGateway_NotFoundIsDistinguishable(t *testing.T) {
	missing := &stripe.Error{Code: stripe.ErrorCodeResourceMissing, Msg: "No such subscription"}
	api := &fakeStripe{
		getFunc: func(string) (*stripe.Subscription, error) { return nil, missing },
		updateFunc: func(string, *stripe.SubscriptionParams) (*stripe.Subscription, error) {
			return nil, errors.New("connection reset")
		},
	}
	gw := newTestGateway(api)

	_, err := gw.RetrieveSubscription(context.Background(), "sub_x")
	assert.ErrorIs(t, err, subscription.ErrNotFound)

	_, err = gw.UpdateSubscription(context.Background(), "sub_x", subscription.Update{CancelAtPeriodEnd: true})
	require.Error(t, err)
	assert.NotErrorIs(t, err, subscription.ErrNotFound)
}

func TestStripeGateway_UpdateAndCheckout(t *testing.T) {
	api := &fakeStripe{
		updateFunc: func(id string, params *stripe.SubscriptionParams) (*stripe.Subscription, error) {
			assert.True(t, *params.CancelAtPeriodEnd)
			return stripeSub(id, stripe.SubscriptionStatusActive, true, "Premium 1", "price_p1"), nil
		},
		customerFunc: func(params *stripe.CustomerParams) (*stripe.Customer, error) {
			assert.Equal(t, "anne@example.com", *params.Email)
			assert.Equal(t, "7", params.Metadata["user_id"])
			return &stripe.Customer{ID: "cus_new"}, nil
		},
		checkoutFunc: func(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error) {
			assert.Equal(t, "price_p2", *params.LineItems[0].Price)
			assert.Equal(t, string(stripe.CheckoutSessionModeSubscription), *params.Mode)
			return &stripe.CheckoutSession{ID: "cs_1", URL: "https://checkout.example/cs_1"}, nil
		},
	}
	gw := newTestGateway(api)
	ctx := context.Background()

	ext, err := gw.UpdateSubscription(ctx, "sub_1", subscription.Update{CancelAtPeriodEnd: true})
	require.NoError(t, err)
	assert.True(t, ext.CancelAtPeriodEnd)

	customerID, err := gw.CreateCustomer(ctx, subscription.CustomerProfile{UserID: 7, Email: "anne@example.com", Name: "Anne Rider"})
	require.NoError(t, err)
	assert.Equal(t, "cus_new", customerID)

	sess, err := gw.CreateCheckoutSession(ctx, subscription.CheckoutRequest{CustomerID: "cus_new", PriceID: "price_p2", UserID: 7})
	require.NoError(t, err)
	assert.Equal(t, "https://checkout.example/cs_1", sess.URL)
}

func TestNew_DisabledWithoutSecretKey(t *testing.T) {
	gw := New(config.BillingConfig{}, logger.NewNopLogger())

	_, err := gw.ListCustomerSubscriptions(context.Background(), "cus_1")
	assert.ErrorIs(t, err, subscription.ErrGatewayNotConfigured)

	_, err = gw.CreateCheckoutSession(context.Background(), subscription.CheckoutRequest{})
	assert.ErrorIs(t, err, subscription.ErrGatewayNotConfigured)
}
