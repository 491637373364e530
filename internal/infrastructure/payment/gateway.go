package payment

import (
	"context"

	"github.com/ridecrew/ridecrew/internal/domain/subscription"
	"github.com/ridecrew/ridecrew/internal/shared/config"
	"github.com/ridecrew/ridecrew/internal/shared/logger"
)

// New returns the Stripe gateway, or a gateway that fails every call with
// subscription.ErrGatewayNotConfigured when no secret key is configured.
func New(cfg config.BillingConfig, log logger.Interface) subscription.Gateway {
	if cfg.StripeSecretKey == "" {
		log.Warnw("billing provider disabled, stripe_secret_key is empty")
		return disabledGateway{}
	}
	return NewStripeGateway(cfg, log)
}

type disabledGateway struct{}

func (disabledGateway) ListCustomerSubscriptions(context.Context, string) ([]subscription.ExternalSubscription, error) {
	return nil, subscription.ErrGatewayNotConfigured
}

func (disabledGateway) CreateCustomer(context.Context, subscription.CustomerProfile) (string, error) {
	return "", subscription.ErrGatewayNotConfigured
}

func (disabledGateway) UpdateSubscription(context.Context, string, subscription.Update) (*subscription.ExternalSubscription, error) {
	return nil, subscription.ErrGatewayNotConfigured
}

func (disabledGateway) CancelSubscription(context.Context, string) (*subscription.ExternalSubscription, error) {
	return nil, subscription.ErrGatewayNotConfigured
}

func (disabledGateway) RetrieveSubscription(context.Context, string) (*subscription.ExternalSubscription, error) {
	return nil, subscription.ErrGatewayNotConfigured
}

func (disabledGateway) CreateCheckoutSession(context.Context, subscription.CheckoutRequest) (*subscription.CheckoutSession, error) {
	return nil, subscription.ErrGatewayNotConfigured
}
