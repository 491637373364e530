package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/ridecrew/ridecrew/internal/domain/entitlement"
	"github.com/ridecrew/ridecrew/internal/domain/subscription"
	"github.com/ridecrew/ridecrew/internal/domain/user"
	"github.com/ridecrew/ridecrew/internal/shared/authorization"
	"github.com/ridecrew/ridecrew/internal/shared/constants"
	"github.com/ridecrew/ridecrew/internal/shared/logger"
)

type stubUsers struct {
	users map[uint]*user.User
	err   error
}

func (s *stubUsers) GetByID(ctx context.Context, id uint) (*user.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	u, ok := s.users[id]
	if !ok {
		return nil, user.ErrUserNotFound
	}
	return u, nil
}

type stubResolver struct {
	byCustomer map[string]entitlement.Entitlement
}

func (s *stubResolver) Resolve(ctx context.Context, subject entitlement.Subject) entitlement.Entitlement {
	if e, ok := s.byCustomer[subject.BillingCustomerID]; ok {
		return e
	}
	return entitlement.None
}

func (s *stubResolver) Invalidate(ctx context.Context, billingCustomerID string) {}

func billedUser(id uint, customerID string) *user.User {
	now := time.Now().UTC()
	u, err := user.ReconstructUser(id, "rider@example.com", "Jane", "Doe", "hash",
		authorization.RoleUser, "", "", "", "", nil, false, customerID, now, now)
	if err != nil {
		panic(err)
	}
	return u
}

func runPlan(m *PlanMiddleware, plan subscription.PlanName, userID uint) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	_, r := gin.CreateTestContext(w)

	r.POST("/clubs", func(c *gin.Context) {
		if userID != 0 {
			c.Set(constants.ContextKeyUserID, userID)
		}
		c.Next()
	}, m.RequirePlan(plan), func(c *gin.Context) {
		c.Status(http.StatusCreated)
	})

	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/clubs", nil))
	return w
}

func newPlanMiddleware() *PlanMiddleware {
	users := &stubUsers{users: map[uint]*user.User{
		1: billedUser(1, "cus_basic"),
		2: billedUser(2, "cus_top_lapsing"),
		3: billedUser(3, "cus_none"),
		4: billedUser(4, "cus_top"),
	}}
	resolver := &stubResolver{byCustomer: map[string]entitlement.Entitlement{
		"cus_basic":       {PlanName: subscription.PlanPremium1, Active: true},
		"cus_top_lapsing": {PlanName: subscription.PlanPremium2, Lapsing: true},
		"cus_top":         {PlanName: subscription.PlanPremium2, Active: true},
	}}
	return NewPlanMiddleware(users, resolver, logger.NewNopLogger())
}

func TestPlanMiddleware_RequirePlan(t *testing.T) {
	m := newPlanMiddleware()

	tests := []struct {
		name   string
		plan   subscription.PlanName
		userID uint
		want   int
	}{
		{"anonymous", subscription.PlanPremium2, 0, http.StatusUnauthorized},
		{"unknown user", subscription.PlanPremium2, 99, http.StatusUnauthorized},
		{"premium 1 denied top tier", subscription.PlanPremium2, 1, http.StatusForbidden},
		{"lapsing premium 2 allowed", subscription.PlanPremium2, 2, http.StatusCreated},
		{"active premium 2 allowed", subscription.PlanPremium2, 4, http.StatusCreated},
		{"no subscription denied", "", 3, http.StatusForbidden},
		{"premium 1 allowed any plan", "", 1, http.StatusCreated},
		{"premium 2 allowed any plan", "", 4, http.StatusCreated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := runPlan(m, tt.plan, tt.userID)
			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func TestPlanMiddleware_UserStoreFailure(t *testing.T) {
	m := NewPlanMiddleware(&stubUsers{err: errors.New("connection refused")}, &stubResolver{}, logger.NewNopLogger())

	w := runPlan(m, subscription.PlanPremium2, 1)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
