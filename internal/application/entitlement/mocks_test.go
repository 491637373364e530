package entitlement

import (
	"context"

	"github.com/ridecrew/ridecrew/internal/domain/entitlement"
	"github.com/ridecrew/ridecrew/internal/domain/subscription"
)

type mockGateway struct {
	ListCustomerSubscriptionsFunc func(ctx context.Context, customerID string) ([]subscription.ExternalSubscription, error)
	listCalls                     int
}

func (m *mockGateway) ListCustomerSubscriptions(ctx context.Context, customerID string) ([]subscription.ExternalSubscription, error) {
	m.listCalls++
	if m.ListCustomerSubscriptionsFunc != nil {
		return m.ListCustomerSubscriptionsFunc(ctx, customerID)
	}
	return nil, nil
}

func (m *mockGateway) CreateCustomer(ctx context.Context, profile subscription.CustomerProfile) (string, error) {
	return "", nil
}

func (m *mockGateway) UpdateSubscription(ctx context.Context, subscriptionID string, update subscription.Update) (*subscription.ExternalSubscription, error) {
	return nil, nil
}

func (m *mockGateway) CancelSubscription(ctx context.Context, subscriptionID string) (*subscription.ExternalSubscription, error) {
	return nil, nil
}

func (m *mockGateway) RetrieveSubscription(ctx context.Context, subscriptionID string) (*subscription.ExternalSubscription, error) {
	return nil, nil
}

func (m *mockGateway) CreateCheckoutSession(ctx context.Context, req subscription.CheckoutRequest) (*subscription.CheckoutSession, error) {
	return nil, nil
}

type mockCache struct {
	entries map[string]entitlement.Entitlement
	GetErr  error
	deletes []string
}

func newMockCache() *mockCache {
	return &mockCache{entries: make(map[string]entitlement.Entitlement)}
}

func (m *mockCache) Get(ctx context.Context, id string) (*entitlement.Entitlement, error) {
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	e, ok := m.entries[id]
	if !ok {
		return nil, nil
	}
	return &e, nil
}

func (m *mockCache) Set(ctx context.Context, id string, e entitlement.Entitlement) error {
	m.entries[id] = e
	return nil
}

func (m *mockCache) Delete(ctx context.Context, id string) error {
	m.deletes = append(m.deletes, id)
	delete(m.entries, id)
	return nil
}

type mockMetrics struct {
	outcomes []string
}

func (m *mockMetrics) IncResolution(outcome string) {
	m.outcomes = append(m.outcomes, outcome)
}
