// Package payment adapts the Stripe API to the subscription.Gateway port.
package payment

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/stripe/stripe-go/v82"
	checkoutsession "github.com/stripe/stripe-go/v82/checkout/session"
	"github.com/stripe/stripe-go/v82/customer"
	stripesub "github.com/stripe/stripe-go/v82/subscription"

	"github.com/ridecrew/ridecrew/internal/domain/subscription"
	"github.com/ridecrew/ridecrew/internal/shared/config"
	"github.com/ridecrew/ridecrew/internal/shared/logger"
)

// stripeAPI is the subset of the Stripe client used by the gateway.
type stripeAPI interface {
	ListSubscriptions(params *stripe.SubscriptionListParams) ([]*stripe.Subscription, error)
	GetSubscription(id string, params *stripe.SubscriptionParams) (*stripe.Subscription, error)
	UpdateSubscription(id string, params *stripe.SubscriptionParams) (*stripe.Subscription, error)
	CancelSubscription(id string, params *stripe.SubscriptionCancelParams) (*stripe.Subscription, error)
	NewCustomer(params *stripe.CustomerParams) (*stripe.Customer, error)
	NewCheckoutSession(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error)
}

// packageAPI calls the stripe-go package level resources.
type packageAPI struct{}

func (packageAPI) ListSubscriptions(params *stripe.SubscriptionListParams) ([]*stripe.Subscription, error) {
	var subs []*stripe.Subscription
	it := stripesub.List(params)
	for it.Next() {
		subs = append(subs, it.Subscription())
	}
	return subs, it.Err()
}

func (packageAPI) GetSubscription(id string, params *stripe.SubscriptionParams) (*stripe.Subscription, error) {
	return stripesub.Get(id, params)
}

func (packageAPI) UpdateSubscription(id string, params *stripe.SubscriptionParams) (*stripe.Subscription, error) {
	return stripesub.Update(id, params)
}

func (packageAPI) CancelSubscription(id string, params *stripe.SubscriptionCancelParams) (*stripe.Subscription, error) {
	return stripesub.Cancel(id, params)
}

func (packageAPI) NewCustomer(params *stripe.CustomerParams) (*stripe.Customer, error) {
	return customer.New(params)
}

func (packageAPI) NewCheckoutSession(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error) {
	return checkoutsession.New(params)
}

// StripeGateway implements subscription.Gateway.
type StripeGateway struct {
	api         stripeAPI
	planByPrice map[string]subscription.PlanName
	logger      logger.Interface
}

// NewStripeGateway configures the global Stripe key and returns the gateway.
func NewStripeGateway(cfg config.BillingConfig, log logger.Interface) *StripeGateway {
	stripe.Key = cfg.StripeSecretKey
	return newStripeGateway(packageAPI{}, cfg, log)
}

func newStripeGateway(api stripeAPI, cfg config.BillingConfig, log logger.Interface) *StripeGateway {
	planByPrice := make(map[string]subscription.PlanName, len(cfg.PriceIDs))
	for plan, priceID := range subscription.PriceIDsByPlan(cfg.PriceIDs) {
		planByPrice[priceID] = plan
	}
	return &StripeGateway{api: api, planByPrice: planByPrice, logger: log}
}

func (g *StripeGateway) ListCustomerSubscriptions(ctx context.Context, customerID string) ([]subscription.ExternalSubscription, error) {
	params := &stripe.SubscriptionListParams{Customer: stripe.String(customerID)}
	params.Context = ctx

	subs, err := g.api.ListSubscriptions(params)
	if err != nil {
		return nil, g.translate("list subscriptions", err)
	}

	result := make([]subscription.ExternalSubscription, 0, len(subs))
	for _, s := range subs {
		result = append(result, g.toExternal(s))
	}
	return result, nil
}

func (g *StripeGateway) CreateCustomer(ctx context.Context, profile subscription.CustomerProfile) (string, error) {
	params := &stripe.CustomerParams{
		Email: stripe.String(profile.Email),
		Name:  stripe.String(profile.Name),
	}
	params.Context = ctx
	params.AddMetadata("user_id", strconv.FormatUint(uint64(profile.UserID), 10))

	cust, err := g.api.NewCustomer(params)
	if err != nil {
		return "", g.translate("create customer", err)
	}
	g.logger.Infow("billing customer created", "user_id", profile.UserID, "customer_id", cust.ID)
	return cust.ID, nil
}

func (g *StripeGateway) UpdateSubscription(ctx context.Context, id string, update subscription.Update) (*subscription.ExternalSubscription, error) {
	params := &stripe.SubscriptionParams{CancelAtPeriodEnd: stripe.Bool(update.CancelAtPeriodEnd)}
	params.Context = ctx

	s, err := g.api.UpdateSubscription(id, params)
	if err != nil {
		return nil, g.translate("update subscription", err)
	}
	ext := g.toExternal(s)
	return &ext, nil
}

func (g *StripeGateway) CancelSubscription(ctx context.Context, id string) (*subscription.ExternalSubscription, error) {
	params := &stripe.SubscriptionCancelParams{}
	params.Context = ctx

	s, err := g.api.CancelSubscription(id, params)
	if err != nil {
		return nil, g.translate("cancel subscription", err)
	}
	ext := g.toExternal(s)
	return &ext, nil
}

func (g *StripeGateway) RetrieveSubscription(ctx context.Context, id string) (*subscription.ExternalSubscription, error) {
	params := &stripe.SubscriptionParams{}
	params.Context = ctx

	s, err := g.api.GetSubscription(id, params)
	if err != nil {
		return nil, g.translate("retrieve subscription", err)
	}
	ext := g.toExternal(s)
	return &ext, nil
}

func (g *StripeGateway) CreateCheckoutSession(ctx context.Context, req subscription.CheckoutRequest) (*subscription.CheckoutSession, error) {
	params := &stripe.CheckoutSessionParams{
		Customer: stripe.String(req.CustomerID),
		Mode:     stripe.String(string(stripe.CheckoutSessionModeSubscription)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Price:    stripe.String(req.PriceID),
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL:        stripe.String(req.SuccessURL),
		CancelURL:         stripe.String(req.CancelURL),
		ClientReferenceID: stripe.String(strconv.FormatUint(uint64(req.UserID), 10)),
	}
	params.Context = ctx

	sess, err := g.api.NewCheckoutSession(params)
	if err != nil {
		return nil, g.translate("create checkout session", err)
	}
	return &subscription.CheckoutSession{ID: sess.ID, URL: sess.URL}, nil
}

// translate maps a Stripe "resource_missing" error onto subscription.ErrNotFound
// and wraps everything else as a provider failure.
func (g *StripeGateway) translate(op string, err error) error {
	var stripeErr *stripe.Error
	if errors.As(err, &stripeErr) && stripeErr.Code == stripe.ErrorCodeResourceMissing {
		return fmt.Errorf("stripe %s: %w", op, subscription.ErrNotFound)
	}
	g.logger.Warnw("stripe request failed", "op", op, "error", err)
	return fmt.Errorf("stripe %s: %w", op, err)
}

func (g *StripeGateway) toExternal(s *stripe.Subscription) subscription.ExternalSubscription {
	ext := subscription.ExternalSubscription{
		ID:                s.ID,
		Status:            string(s.Status),
		CancelAtPeriodEnd: s.CancelAtPeriodEnd,
	}
	if s.Customer != nil {
		ext.CustomerID = s.Customer.ID
	}
	if s.LatestInvoice != nil {
		ext.LatestInvoiceID = s.LatestInvoice.ID
	}

	if s.Items == nil || len(s.Items.Data) == 0 {
		return ext
	}
	item := s.Items.Data[0]
	if item.Price != nil {
		ext.PriceID = item.Price.ID
		ext.PlanNickname = planFromNickname(item.Price.Nickname)
	}
	if ext.PlanNickname == "" && item.Plan != nil {
		ext.PlanNickname = planFromNickname(item.Plan.Nickname)
	}
	if ext.PlanNickname == "" {
		ext.PlanNickname = g.planByPrice[ext.PriceID]
	}
	if item.CurrentPeriodStart > 0 {
		ext.CurrentPeriodStart = time.Unix(item.CurrentPeriodStart, 0).UTC()
	}
	if item.CurrentPeriodEnd > 0 {
		ext.CurrentPeriodEnd = time.Unix(item.CurrentPeriodEnd, 0).UTC()
	}
	return ext
}

// planFromNickname maps a provider nickname onto a known plan; nicknames are
// edited by hand in the dashboard, so case and surrounding spaces vary.
func planFromNickname(nickname string) subscription.PlanName {
	plan, _ := subscription.ParsePlanName(nickname)
	return plan
}
