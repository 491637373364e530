package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ridecrew/ridecrew/internal/application/subscription/dto"
	"github.com/ridecrew/ridecrew/internal/application/subscription/usecases"
	"github.com/ridecrew/ridecrew/internal/shared/errors"
	"github.com/ridecrew/ridecrew/internal/shared/logger"
	"github.com/ridecrew/ridecrew/internal/shared/utils"
)

var _ = dto.SubsResponse{}

// BillingHandler serves entitlement reads and the subscription lifecycle.
type BillingHandler struct {
	entitlementUseCase getEntitlementUseCase
	checkoutUseCase    startCheckoutUseCase
	confirmUseCase     confirmPurchaseUseCase
	cancelUseCase      changeRenewalUseCase
	resumeUseCase      changeRenewalUseCase
	listUseCase        listSubsUseCase
	logger             logger.Interface
}

func NewBillingHandler(
	entitlementUC getEntitlementUseCase,
	checkoutUC startCheckoutUseCase,
	confirmUC confirmPurchaseUseCase,
	cancelUC changeRenewalUseCase,
	resumeUC changeRenewalUseCase,
	listUC listSubsUseCase,
	logger logger.Interface,
) *BillingHandler {
	return &BillingHandler{
		entitlementUseCase: entitlementUC,
		checkoutUseCase:    checkoutUC,
		confirmUseCase:     confirmUC,
		cancelUseCase:      cancelUC,
		resumeUseCase:      resumeUC,
		listUseCase:        listUC,
		logger:             logger,
	}
}

type CheckoutRequest struct {
	Plan string `json:"plan" binding:"required,plan_name"`
}

// GetEntitlement returns the caller's resolved premium access
// @Summary Current entitlement
// @Tags Billing
// @Produce json
// @Security Bearer
// @Success 200 {object} utils.APIResponse{data=dto.EntitlementResponse}
// @Router /billing/entitlement [get]
func (h *BillingHandler) GetEntitlement(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	result, err := h.entitlementUseCase.Execute(c.Request.Context(), usecases.GetEntitlementQuery{UserID: userID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// StartCheckout opens a provider checkout session for a plan
// @Summary Start checkout
// @Tags Billing
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body CheckoutRequest true "Plan"
// @Success 201 {object} utils.APIResponse{data=dto.CheckoutResponse}
// @Failure 502 {object} utils.APIResponse
// @Failure 503 {object} utils.APIResponse
// @Router /billing/checkout [post]
func (h *BillingHandler) StartCheckout(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	session, err := h.checkoutUseCase.Execute(c.Request.Context(), usecases.StartCheckoutCommand{
		UserID: userID,
		Plan:   req.Plan,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, session, "checkout session created")
}

// ListSubscriptions returns the caller's subscription history
// @Summary List subscriptions
// @Tags Billing
// @Produce json
// @Security Bearer
// @Success 200 {object} utils.APIResponse{data=[]dto.SubsResponse}
// @Router /billing/subscriptions [get]
func (h *BillingHandler) ListSubscriptions(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	subs, err := h.listUseCase.Execute(c.Request.Context(), usecases.ListSubsQuery{UserID: userID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", subs)
}

// ConfirmPurchase records a subscription created through checkout
// @Summary Confirm purchase
// @Tags Billing
// @Produce json
// @Security Bearer
// @Param subId path string true "Provider subscription ID"
// @Success 201 {object} utils.APIResponse{data=dto.SubsResponse}
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Failure 502 {object} utils.APIResponse
// @Router /billing/subscriptions/{subId}/confirm [post]
func (h *BillingHandler) ConfirmPurchase(c *gin.Context) {
	userID, subID, ok := h.actorAndSubscription(c)
	if !ok {
		return
	}

	subs, err := h.confirmUseCase.Execute(c.Request.Context(), usecases.ConfirmPurchaseCommand{
		UserID:         userID,
		SubscriptionID: subID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, subs, "purchase confirmed")
}

// CancelSubscription stops the renewal of a subscription
// @Summary Cancel subscription
// @Description The subscription stays active until the end of the current period.
// @Tags Billing
// @Produce json
// @Security Bearer
// @Param subId path string true "Provider subscription ID"
// @Success 201 {object} utils.APIResponse{data=dto.SubsResponse}
// @Failure 404 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /billing/subscriptions/{subId}/cancel [post]
func (h *BillingHandler) CancelSubscription(c *gin.Context) {
	h.changeRenewal(c, h.cancelUseCase, "subscription will not renew")
}

// ResumeSubscription restores the renewal of a lapsing subscription
// @Summary Resume subscription
// @Tags Billing
// @Produce json
// @Security Bearer
// @Param subId path string true "Provider subscription ID"
// @Success 201 {object} utils.APIResponse{data=dto.SubsResponse}
// @Failure 404 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /billing/subscriptions/{subId}/resume [post]
func (h *BillingHandler) ResumeSubscription(c *gin.Context) {
	h.changeRenewal(c, h.resumeUseCase, "subscription resumed")
}

func (h *BillingHandler) changeRenewal(c *gin.Context, uc changeRenewalUseCase, message string) {
	userID, subID, ok := h.actorAndSubscription(c)
	if !ok {
		return
	}

	subs, err := uc.Execute(c.Request.Context(), usecases.ChangeRenewalCommand{
		UserID:         userID,
		SubscriptionID: subID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, subs, message)
}

func (h *BillingHandler) actorAndSubscription(c *gin.Context) (uint, string, bool) {
	userID, ok := currentUserID(c)
	if !ok {
		return 0, "", false
	}
	subID := strings.TrimSpace(c.Param("subId"))
	if subID == "" {
		utils.ErrorResponseWithError(c, errors.NewValidationError("subscription ID is required"))
		return 0, "", false
	}
	return userID, subID, true
}
