package subscription

import (
	"context"
	"errors"
)

// ErrNotFound is returned by a Gateway when the provider reports the customer or
// subscription as missing. Transport and provider failures use other errors.
var ErrNotFound = errors.New("billing resource not found")

// CustomerProfile is what the provider stores about a customer.
type CustomerProfile struct {
	UserID uint
	Email  string
	Name   string
}

// Update carries the mutable subscription fields.
type Update struct {
	CancelAtPeriodEnd bool
}

// CheckoutRequest describes a subscription-mode hosted checkout.
type CheckoutRequest struct {
	CustomerID string
	PriceID    string
	SuccessURL string
	CancelURL  string
	UserID     uint
}

// CheckoutSession is the hosted checkout the client is redirected to.
type CheckoutSession struct {
	ID  string
	URL string
}

// Gateway is the billing provider port.
type Gateway interface {
	ListCustomerSubscriptions(ctx context.Context, customerID string) ([]ExternalSubscription, error)
	CreateCustomer(ctx context.Context, profile CustomerProfile) (string, error)
	UpdateSubscription(ctx context.Context, subscriptionID string, update Update) (*ExternalSubscription, error)
	CancelSubscription(ctx context.Context, subscriptionID string) (*ExternalSubscription, error)
	RetrieveSubscription(ctx context.Context, subscriptionID string) (*ExternalSubscription, error)
	CreateCheckoutSession(ctx context.Context, req CheckoutRequest) (*CheckoutSession, error)
}
