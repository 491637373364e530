package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ridecrew/ridecrew/internal/application/subscription/dto"
	"github.com/ridecrew/ridecrew/internal/application/subscription/usecases"
	"github.com/ridecrew/ridecrew/internal/interfaces/http/handlers/testutil"
	"github.com/ridecrew/ridecrew/internal/shared/errors"
)

type mockStartCheckoutUC struct {
	cmd usecases.StartCheckoutCommand
	err error
}

func (m *mockStartCheckoutUC) Execute(ctx context.Context, cmd usecases.StartCheckoutCommand) (*dto.CheckoutResponse, error) {
	m.cmd = cmd
	if m.err != nil {
		return nil, m.err
	}
	return &dto.CheckoutResponse{SessionID: "cs_test", URL: "https://checkout.example/cs_test"}, nil
}

type mockConfirmPurchaseUC struct {
	cmd usecases.ConfirmPurchaseCommand
	err error
}

func (m *mockConfirmPurchaseUC) Execute(ctx context.Context, cmd usecases.ConfirmPurchaseCommand) (*dto.SubsResponse, error) {
	m.cmd = cmd
	if m.err != nil {
		return nil, m.err
	}
	return &dto.SubsResponse{ID: 1, ExternalSubscriptionID: cmd.SubscriptionID}, nil
}

type mockChangeRenewalUC struct {
	err error
}

func (m *mockChangeRenewalUC) Execute(ctx context.Context, cmd usecases.ChangeRenewalCommand) (*dto.SubsResponse, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &dto.SubsResponse{ExternalSubscriptionID: cmd.SubscriptionID}, nil
}

func newTestBillingHandler(checkout startCheckoutUseCase, confirm confirmPurchaseUseCase, cancel, resume changeRenewalUseCase) *BillingHandler {
	return NewBillingHandler(nil, checkout, confirm, cancel, resume, nil, testutil.NewMockLogger())
}

func TestBillingHandler_StartCheckout_Success(t *testing.T) {
	mockUC := &mockStartCheckoutUC{}
	handler := newTestBillingHandler(mockUC, nil, nil, nil)

	c, w := testutil.NewTestContext(http.MethodPost, "/billing/checkout", CheckoutRequest{Plan: "Premium 2"})
	testutil.SetAuthContext(c, 3)

	handler.StartCheckout(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "Premium 2", mockUC.cmd.Plan)
}

func TestBillingHandler_StartCheckout_UnknownPlan(t *testing.T) {
	handler := newTestBillingHandler(&mockStartCheckoutUC{}, nil, nil, nil)

	c, w := testutil.NewTestContext(http.MethodPost, "/billing/checkout", CheckoutRequest{Plan: "Gold"})
	testutil.SetAuthContext(c, 3)

	handler.StartCheckout(c)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.Contains(t, resp.Error.Fields, "plan")
}

func TestBillingHandler_StartCheckout_BillingDisabled(t *testing.T) {
	handler := newTestBillingHandler(&mockStartCheckoutUC{err: errors.NewUnavailableError("billing is not configured")}, nil, nil, nil)

	c, w := testutil.NewTestContext(http.MethodPost, "/billing/checkout", CheckoutRequest{Plan: "Premium 1"})
	testutil.SetAuthContext(c, 3)

	handler.StartCheckout(c)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestBillingHandler_ConfirmPurchase_ProviderErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"success", nil, http.StatusCreated},
		{"foreign subscription", errors.NewForbiddenError("subscription belongs to another customer"), http.StatusForbidden},
		{"unknown subscription", errors.NewNotFoundError("subscription not found"), http.StatusNotFound},
		{"provider failure", errors.NewUpstreamError("billing provider unavailable"), http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUC := &mockConfirmPurchaseUC{err: tt.err}
			handler := newTestBillingHandler(nil, mockUC, nil, nil)

			c, w := testutil.NewTestContext(http.MethodPost, "/billing/subscriptions/sub_123/confirm", nil)
			testutil.SetAuthContext(c, 3)
			testutil.SetURLParam(c, "subId", "sub_123")

			handler.ConfirmPurchase(c)

			assert.Equal(t, tt.want, w.Code)
			assert.Equal(t, "sub_123", mockUC.cmd.SubscriptionID)
		})
	}
}

func TestBillingHandler_CancelSubscription_AlreadyLapsing(t *testing.T) {
	handler := newTestBillingHandler(nil, nil, &mockChangeRenewalUC{err: errors.NewConflictError("subscription is already set to cancel")}, nil)

	c, w := testutil.NewTestContext(http.MethodPost, "/billing/subscriptions/sub_123/cancel", nil)
	testutil.SetAuthContext(c, 3)
	testutil.SetURLParam(c, "subId", "sub_123")

	handler.CancelSubscription(c)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestBillingHandler_ResumeSubscription_Success(t *testing.T) {
	handler := newTestBillingHandler(nil, nil, nil, &mockChangeRenewalUC{})

	c, w := testutil.NewTestContext(http.MethodPost, "/billing/subscriptions/sub_123/resume", nil)
	testutil.SetAuthContext(c, 3)
	testutil.SetURLParam(c, "subId", "sub_123")

	handler.ResumeSubscription(c)

	assert.Equal(t, http.StatusCreated, w.Code)
}
