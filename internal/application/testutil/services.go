package testutil

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/ridecrew/ridecrew/internal/domain/entitlement"
	"github.com/ridecrew/ridecrew/internal/domain/shared/services"
	"github.com/ridecrew/ridecrew/internal/domain/subscription"
	"github.com/ridecrew/ridecrew/internal/shared/authorization"
)

// MockTransactor runs fn directly; FailWith makes every transaction fail
// before fn is called.
type MockTransactor struct {
	FailWith error
	Calls    int
}

func (m *MockTransactor) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	m.Calls++
	if m.FailWith != nil {
		return m.FailWith
	}
	return fn(ctx)
}

// MockObjectStorage keeps stored keys in memory.
type MockObjectStorage struct {
	mu      sync.Mutex
	objects map[string]int64
	deleted []string

	StoreError  error
	DeleteError error
}

func NewMockObjectStorage() *MockObjectStorage {
	return &MockObjectStorage{objects: make(map[string]int64)}
}

func (m *MockObjectStorage) Exists(ctx context.Context, key string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.objects[key]
	return ok, nil
}

func (m *MockObjectStorage) Store(ctx context.Context, key string, body io.Reader, size int64, contentType string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.StoreError != nil {
		return m.StoreError
	}
	if _, err := io.Copy(io.Discard, body); err != nil {
		return err
	}
	m.objects[key] = size
	return nil
}

func (m *MockObjectStorage) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.deleted = append(m.deleted, key)
	if m.DeleteError != nil {
		return m.DeleteError
	}
	delete(m.objects, key)
	return nil
}

func (m *MockObjectStorage) URL(key string) string {
	if key == "" {
		return ""
	}
	return "https://cdn.test/" + key
}

// Keys returns the currently stored keys in sorted order.
func (m *MockObjectStorage) Keys() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	keys := make([]string, 0, len(m.objects))
	for k := range m.objects {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Deleted returns every key passed to Delete.
func (m *MockObjectStorage) Deleted() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.deleted...)
}

// Put seeds an object.
func (m *MockObjectStorage) Put(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.objects[key] = 1
}

// MockNotifier records membership notifications.
type MockNotifier struct {
	mu        sync.Mutex
	Requested []string
	Accepted  []string
	Err       error
}

func (m *MockNotifier) JoinRequested(ctx context.Context, admins []services.Recipient, requesterName, clubName string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, a := range admins {
		m.Requested = append(m.Requested, fmt.Sprintf("%s:%s:%s", a.Email, requesterName, clubName))
	}
	return m.Err
}

func (m *MockNotifier) JoinAccepted(ctx context.Context, member services.Recipient, clubName string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Accepted = append(m.Accepted, fmt.Sprintf("%s:%s", member.Email, clubName))
	return m.Err
}

// MockResolver returns a fixed entitlement per user.
type MockResolver struct {
	mu          sync.Mutex
	ByUser      map[uint]entitlement.Entitlement
	Invalidated []string
}

func NewMockResolver() *MockResolver {
	return &MockResolver{ByUser: make(map[uint]entitlement.Entitlement)}
}

func (m *MockResolver) Resolve(ctx context.Context, subject entitlement.Subject) entitlement.Entitlement {
	m.mu.Lock()
	defer m.mu.Unlock()
	if e, ok := m.ByUser[subject.UserID]; ok {
		return e
	}
	return entitlement.None
}

func (m *MockResolver) Invalidate(ctx context.Context, billingCustomerID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Invalidated = append(m.Invalidated, billingCustomerID)
}

// Grant gives userID an active subscription to plan.
func (m *MockResolver) Grant(userID uint, plan subscription.PlanName) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ByUser[userID] = entitlement.Entitlement{PlanName: plan, Active: true, SubscriptionID: "sub_test"}
}

// MockGateway is a subscription.Gateway with per-method hooks. Unset hooks
// fall back to the Subscriptions map.
type MockGateway struct {
	mu            sync.Mutex
	Subscriptions map[string]*subscription.ExternalSubscription

	ListFunc           func(ctx context.Context, customerID string) ([]subscription.ExternalSubscription, error)
	CreateCustomerFunc func(ctx context.Context, profile subscription.CustomerProfile) (string, error)
	RetrieveFunc       func(ctx context.Context, id string) (*subscription.ExternalSubscription, error)
	UpdateFunc         func(ctx context.Context, id string, update subscription.Update) (*subscription.ExternalSubscription, error)
	CheckoutFunc       func(ctx context.Context, req subscription.CheckoutRequest) (*subscription.CheckoutSession, error)

	CreatedCustomers []subscription.CustomerProfile
	Checkouts        []subscription.CheckoutRequest
	Updates          []string
}

func NewMockGateway() *MockGateway {
	return &MockGateway{Subscriptions: make(map[string]*subscription.ExternalSubscription)}
}

// AddSubscription registers a provider subscription.
func (m *MockGateway) AddSubscription(ext subscription.ExternalSubscription) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Subscriptions[ext.ID] = &ext
}

func (m *MockGateway) ListCustomerSubscriptions(ctx context.Context, customerID string) ([]subscription.ExternalSubscription, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, customerID)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	var result []subscription.ExternalSubscription
	for _, s := range m.Subscriptions {
		if s.CustomerID == customerID {
			result = append(result, *s)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (m *MockGateway) CreateCustomer(ctx context.Context, profile subscription.CustomerProfile) (string, error) {
	if m.CreateCustomerFunc != nil {
		return m.CreateCustomerFunc(ctx, profile)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CreatedCustomers = append(m.CreatedCustomers, profile)
	return fmt.Sprintf("cus_%d", profile.UserID), nil
}

func (m *MockGateway) UpdateSubscription(ctx context.Context, id string, update subscription.Update) (*subscription.ExternalSubscription, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, update)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Updates = append(m.Updates, id)
	s, ok := m.Subscriptions[id]
	if !ok {
		return nil, subscription.ErrNotFound
	}
	s.CancelAtPeriodEnd = update.CancelAtPeriodEnd
	copied := *s
	return &copied, nil
}

func (m *MockGateway) CancelSubscription(ctx context.Context, id string) (*subscription.ExternalSubscription, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.Subscriptions[id]
	if !ok {
		return nil, subscription.ErrNotFound
	}
	s.Status = subscription.StatusCanceled
	copied := *s
	return &copied, nil
}

func (m *MockGateway) RetrieveSubscription(ctx context.Context, id string) (*subscription.ExternalSubscription, error) {
	if m.RetrieveFunc != nil {
		return m.RetrieveFunc(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.Subscriptions[id]
	if !ok {
		return nil, subscription.ErrNotFound
	}
	copied := *s
	return &copied, nil
}

func (m *MockGateway) CreateCheckoutSession(ctx context.Context, req subscription.CheckoutRequest) (*subscription.CheckoutSession, error) {
	if m.CheckoutFunc != nil {
		return m.CheckoutFunc(ctx, req)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Checkouts = append(m.Checkouts, req)
	return &subscription.CheckoutSession{ID: "cs_test", URL: "https://checkout.test/cs_test"}, nil
}

// MockSubsRepository is an in-memory subscription.SubsRepository.
type MockSubsRepository struct {
	mu     sync.RWMutex
	subs   map[uint]*subscription.Subs
	nextID uint
}

func NewMockSubsRepository() *MockSubsRepository {
	return &MockSubsRepository{subs: make(map[uint]*subscription.Subs)}
}

func (m *MockSubsRepository) Create(ctx context.Context, s *subscription.Subs) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.subs {
		if existing.ExternalSubscriptionID() == s.ExternalSubscriptionID() {
			return errors.New("UNIQUE constraint failed: subs.external_subscription_id")
		}
	}
	m.nextID++
	s.SetID(m.nextID)
	m.subs[s.ID()] = s
	return nil
}

func (m *MockSubsRepository) Update(ctx context.Context, s *subscription.Subs) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.subs[s.ID()]; !ok {
		return subscription.ErrSubsNotFound
	}
	m.subs[s.ID()] = s
	return nil
}

func (m *MockSubsRepository) GetByExternalID(ctx context.Context, externalSubscriptionID string) (*subscription.Subs, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, s := range m.subs {
		if s.ExternalSubscriptionID() == externalSubscriptionID {
			return s, nil
		}
	}
	return nil, subscription.ErrSubsNotFound
}

func (m *MockSubsRepository) ListByUser(ctx context.Context, userID uint) ([]*subscription.Subs, error) {
	return m.find(func(s *subscription.Subs) bool { return s.UserID() == userID }), nil
}

func (m *MockSubsRepository) ListActive(ctx context.Context) ([]*subscription.Subs, error) {
	return m.find(func(s *subscription.Subs) bool { return s.IsActive() }), nil
}

func (m *MockSubsRepository) find(match func(*subscription.Subs) bool) []*subscription.Subs {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var result []*subscription.Subs
	for _, s := range m.subs {
		if match(s) {
			result = append(result, s)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID() < result[j].ID() })
	return result
}

// FakeHasher hashes by prefixing "hash:".
type FakeHasher struct{}

var ErrFakePasswordMismatch = errors.New("password verification failed")

func (FakeHasher) Hash(password string) (string, error) {
	if len(password) < 8 {
		return "", errors.New("password too short")
	}
	return "hash:" + password, nil
}

func (FakeHasher) Verify(password, hash string) error {
	if hash != "hash:"+password {
		return ErrFakePasswordMismatch
	}
	return nil
}

// FakeTokenIssuer issues "token:<user>:<session>" strings.
type FakeTokenIssuer struct{}

func (FakeTokenIssuer) Generate(userID uint, sessionID string, role authorization.UserRole, sessionExpiresAt time.Time) (string, time.Time, error) {
	return fmt.Sprintf("token:%d:%s", userID, sessionID), sessionExpiresAt, nil
}

// FakeRenderer wraps content in a paragraph.
type FakeRenderer struct {
	Err error
}

func (r FakeRenderer) Render(content string) (string, error) {
	if r.Err != nil {
		return "", r.Err
	}
	return "<p>" + strings.TrimSpace(content) + "</p>", nil
}
