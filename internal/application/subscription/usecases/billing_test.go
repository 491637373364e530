package usecases

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ridecrew/ridecrew/internal/application/testutil"
	"github.com/ridecrew/ridecrew/internal/domain/subscription"
	"github.com/ridecrew/ridecrew/internal/domain/user"
	apperrors "github.com/ridecrew/ridecrew/internal/shared/errors"
	"github.com/ridecrew/ridecrew/internal/shared/logger"
)

type billingFixture struct {
	users    *testutil.MockUserRepository
	subs     *testutil.MockSubsRepository
	gateway  *testutil.MockGateway
	resolver *testutil.MockResolver
	log      logger.Interface
}

func newBillingFixture() *billingFixture {
	return &billingFixture{
		users:    testutil.NewMockUserRepository(),
		subs:     testutil.NewMockSubsRepository(),
		gateway:  testutil.NewMockGateway(),
		resolver: testutil.NewMockResolver(),
		log:      logger.NewNopLogger(),
	}
}

// customer seeds a user with a billing customer and one active subscription.
func (f *billingFixture) customer(t *testing.T, email, customerID, subID string) *user.User {
	t.Helper()
	u := f.users.Seed(email, "Anne", "Rider")
	require.NoError(t, u.AttachBillingCustomer(customerID))
	f.gateway.AddSubscription(subscription.ExternalSubscription{
		ID:               subID,
		CustomerID:       customerID,
		Status:           subscription.StatusActive,
		PlanNickname:     subscription.PlanPremium2,
		PriceID:          "price_p2",
		CurrentPeriodEnd: time.Now().Add(30 * 24 * time.Hour).Truncate(time.Second),
	})
	return u
}

func (f *billingFixture) confirm() *ConfirmPurchaseUseCase {
	return NewConfirmPurchaseUseCase(f.users, f.subs, f.gateway, f.resolver, f.log)
}

func TestStartCheckout(t *testing.T) {
	ctx := context.Background()
	settings := CheckoutSettings{
		PriceIDs:   map[string]string{"Premium 1": "price_p1", "Premium 2": "price_p2"},
		SuccessURL: "https://app.test/billing/success",
		CancelURL:  "https://app.test/billing/cancel",
	}

	t.Run("creates the customer once", func(t *testing.T) {
		f := newBillingFixture()
		u := f.users.Seed("new@example.com", "New", "Rider")
		uc := NewStartCheckoutUseCase(f.users, f.gateway, settings, f.log)

		resp, err := uc.Execute(ctx, StartCheckoutCommand{UserID: u.ID(), Plan: "Premium 2"})
		require.NoError(t, err)
		assert.Equal(t, "https://checkout.test/cs_test", resp.URL)
		assert.True(t, u.HasBillingCustomer())
		require.Len(t, f.gateway.Checkouts, 1)
		assert.Equal(t, "price_p2", f.gateway.Checkouts[0].PriceID)
		assert.Equal(t, u.BillingCustomerID(), f.gateway.Checkouts[0].CustomerID)

		_, err = uc.Execute(ctx, StartCheckoutCommand{UserID: u.ID(), Plan: "Premium 1"})
		require.NoError(t, err)
		assert.Len(t, f.gateway.CreatedCustomers, 1)
	})

	t.Run("unknown plan", func(t *testing.T) {
		f := newBillingFixture()
		u := f.users.Seed("new@example.com", "New", "Rider")
		_, err := NewStartCheckoutUseCase(f.users, f.gateway, settings, f.log).
			Execute(ctx, StartCheckoutCommand{UserID: u.ID(), Plan: "Gold"})
		assert.True(t, apperrors.IsValidationError(err))
		assert.Empty(t, f.gateway.CreatedCustomers)
	})

	t.Run("billing not configured", func(t *testing.T) {
		f := newBillingFixture()
		f.gateway.CreateCustomerFunc = func(ctx context.Context, p subscription.CustomerProfile) (string, error) {
			return "", subscription.ErrGatewayNotConfigured
		}
		u := f.users.Seed("new@example.com", "New", "Rider")
		_, err := NewStartCheckoutUseCase(f.users, f.gateway, settings, f.log).
			Execute(ctx, StartCheckoutCommand{UserID: u.ID(), Plan: "Premium 1"})
		require.Error(t, err)
		assert.Equal(t, 503, apperrors.GetAppError(err).Code)
		assert.False(t, u.HasBillingCustomer())
	})
}

func TestConfirmPurchase(t *testing.T) {
	ctx := context.Background()

	t.Run("records the snapshot once per subscription", func(t *testing.T) {
		f := newBillingFixture()
		u := f.customer(t, "anne@example.com", "cus_anne", "sub_1")

		first, err := f.confirm().Execute(ctx, ConfirmPurchaseCommand{UserID: u.ID(), SubscriptionID: "sub_1"})
		require.NoError(t, err)
		assert.Equal(t, "Premium 2", first.PlanType)

		second, err := f.confirm().Execute(ctx, ConfirmPurchaseCommand{UserID: u.ID(), SubscriptionID: "sub_1"})
		require.NoError(t, err)
		assert.Equal(t, first.ID, second.ID)

		records, _ := f.subs.ListByUser(ctx, u.ID())
		assert.Len(t, records, 1)
		assert.Equal(t, []string{"cus_anne", "cus_anne"}, f.resolver.Invalidated)
	})

	t.Run("foreign customer", func(t *testing.T) {
		f := newBillingFixture()
		f.customer(t, "owner@example.com", "cus_owner", "sub_1")
		intruder := f.users.Seed("intruder@example.com", "Eve", "Other")
		require.NoError(t, intruder.AttachBillingCustomer("cus_eve"))

		_, err := f.confirm().Execute(ctx, ConfirmPurchaseCommand{UserID: intruder.ID(), SubscriptionID: "sub_1"})
		assert.True(t, apperrors.IsForbiddenError(err))
		assert.Empty(t, f.resolver.Invalidated)
	})

	t.Run("provider errors surface", func(t *testing.T) {
		f := newBillingFixture()
		u := f.customer(t, "anne@example.com", "cus_anne", "sub_1")

		_, err := f.confirm().Execute(ctx, ConfirmPurchaseCommand{UserID: u.ID(), SubscriptionID: "sub_missing"})
		assert.True(t, apperrors.IsNotFoundError(err))

		f.gateway.RetrieveFunc = func(ctx context.Context, id string) (*subscription.ExternalSubscription, error) {
			return nil, errors.New("connection reset")
		}
		_, err = f.confirm().Execute(ctx, ConfirmPurchaseCommand{UserID: u.ID(), SubscriptionID: "sub_1"})
		require.Error(t, err)
		assert.Equal(t, 502, apperrors.GetAppError(err).Code)
	})
}

func TestCancelAndResumeSubscription(t *testing.T) {
	ctx := context.Background()
	f := newBillingFixture()
	u := f.customer(t, "anne@example.com", "cus_anne", "sub_1")
	_, err := f.confirm().Execute(ctx, ConfirmPurchaseCommand{UserID: u.ID(), SubscriptionID: "sub_1"})
	require.NoError(t, err)

	cancel := NewCancelSubscriptionUseCase(f.subs, f.gateway, f.resolver, f.log)
	resume := NewResumeSubscriptionUseCase(f.subs, f.gateway, f.resolver, f.log)
	cmd := ChangeRenewalCommand{UserID: u.ID(), SubscriptionID: "sub_1"}

	_, err = resume.Execute(ctx, cmd)
	assert.True(t, apperrors.IsConflictError(err))

	canceled, err := cancel.Execute(ctx, cmd)
	require.NoError(t, err)
	assert.True(t, canceled.CancelAtPeriodEnd)
	assert.Equal(t, subscription.StatusActive, canceled.Status)

	_, err = cancel.Execute(ctx, cmd)
	assert.True(t, apperrors.IsConflictError(err))

	resumed, err := resume.Execute(ctx, cmd)
	require.NoError(t, err)
	assert.False(t, resumed.CancelAtPeriodEnd)
	assert.Equal(t, []string{"sub_1", "sub_1"}, f.gateway.Updates)

	other := f.users.Seed("other@example.com", "Other", "Rider")
	_, err = cancel.Execute(ctx, ChangeRenewalCommand{UserID: other.ID(), SubscriptionID: "sub_1"})
	assert.True(t, apperrors.IsNotFoundError(err))

	_, err = cancel.Execute(ctx, ChangeRenewalCommand{UserID: u.ID(), SubscriptionID: "sub_unknown"})
	assert.True(t, apperrors.IsNotFoundError(err))
}

func TestSyncSubs(t *testing.T) {
	ctx := context.Background()
	f := newBillingFixture()
	anne := f.customer(t, "anne@example.com", "cus_anne", "sub_anne")
	bob := f.customer(t, "bob@example.com", "cus_bob", "sub_bob")
	carl := f.customer(t, "carl@example.com", "cus_carl", "sub_carl")
	for _, c := range []ConfirmPurchaseCommand{
		{UserID: anne.ID(), SubscriptionID: "sub_anne"},
		{UserID: bob.ID(), SubscriptionID: "sub_bob"},
		{UserID: carl.ID(), SubscriptionID: "sub_carl"},
	} {
		_, err := f.confirm().Execute(ctx, c)
		require.NoError(t, err)
	}
	f.resolver.Invalidated = nil

	f.gateway.Subscriptions["sub_anne"].Status = subscription.StatusPastDue
	delete(f.gateway.Subscriptions, "sub_bob")

	changed, err := NewSyncSubsUseCase(f.subs, f.gateway, f.resolver, f.log).Execute(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, changed)
	assert.ElementsMatch(t, []string{"cus_anne", "cus_bob"}, f.resolver.Invalidated)

	active, _ := f.subs.ListActive(ctx)
	require.Len(t, active, 1)
	assert.Equal(t, "sub_carl", active[0].ExternalSubscriptionID())

	bobSubs, _ := f.subs.ListByUser(ctx, bob.ID())
	assert.Equal(t, subscription.StatusCanceled, bobSubs[0].Status())
}

func TestGetEntitlementAndListSubs(t *testing.T) {
	ctx := context.Background()
	f := newBillingFixture()
	u := f.customer(t, "anne@example.com", "cus_anne", "sub_1")
	f.resolver.Grant(u.ID(), subscription.PlanPremium1)

	ent, err := NewGetEntitlementUseCase(f.users, f.resolver, f.log).Execute(ctx, GetEntitlementQuery{UserID: u.ID()})
	require.NoError(t, err)
	assert.Equal(t, "Premium 1", ent.PlanName)
	assert.True(t, ent.PremiumActive)

	_, err = NewGetEntitlementUseCase(f.users, f.resolver, f.log).Execute(ctx, GetEntitlementQuery{UserID: 999})
	assert.True(t, apperrors.IsNotFoundError(err))

	_, err = f.confirm().Execute(ctx, ConfirmPurchaseCommand{UserID: u.ID(), SubscriptionID: "sub_1"})
	require.NoError(t, err)
	list, err := NewListSubsUseCase(f.subs, f.log).Execute(ctx, ListSubsQuery{UserID: u.ID()})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "sub_1", list[0].ExternalSubscriptionID)
}
