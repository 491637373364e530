package usecases

import (
	"context"
	"fmt"

	"github.com/ridecrew/ridecrew/internal/application/subscription/dto"
	"github.com/ridecrew/ridecrew/internal/domain/subscription"
	"github.com/ridecrew/ridecrew/internal/domain/user"
	"github.com/ridecrew/ridecrew/internal/shared/errors"
	"github.com/ridecrew/ridecrew/internal/shared/logger"
)

// CheckoutSettings are the provider prices per plan and the redirect targets.
type CheckoutSettings struct {
	PriceIDs   map[string]string
	SuccessURL string
	CancelURL  string
}

type StartCheckoutCommand struct {
	UserID uint
	Plan   string
}

type StartCheckoutUseCase struct {
	userRepo user.Repository
	gateway  subscription.Gateway
	settings CheckoutSettings
	logger   logger.Interface
}

func NewStartCheckoutUseCase(
	userRepo user.Repository,
	gateway subscription.Gateway,
	settings CheckoutSettings,
	logger logger.Interface,
) *StartCheckoutUseCase {
	return &StartCheckoutUseCase{
		userRepo: userRepo,
		gateway:  gateway,
		settings: settings,
		logger:   logger,
	}
}

// Execute creates the billing customer on first use, then opens a hosted
// subscription checkout for the plan's configured price.
func (uc *StartCheckoutUseCase) Execute(ctx context.Context, cmd StartCheckoutCommand) (*dto.CheckoutResponse, error) {
	plan, ok := subscription.ParsePlanName(cmd.Plan)
	priceID := subscription.PriceIDsByPlan(uc.settings.PriceIDs)[plan]
	if !ok || priceID == "" {
		return nil, errors.NewFieldValidationError("unknown plan", map[string]string{"plan": "must be one of Premium 1, Premium 2"})
	}

	u, err := loadUser(ctx, uc.userRepo, cmd.UserID)
	if err != nil {
		return nil, err
	}

	if !u.HasBillingCustomer() {
		customerID, err := uc.gateway.CreateCustomer(ctx, subscription.CustomerProfile{
			UserID: u.ID(),
			Email:  u.Email(),
			Name:   u.FullName(),
		})
		if err != nil {
			uc.logger.Errorw("failed to create billing customer", "error", err, "user_id", u.ID())
			return nil, mapGatewayError(err)
		}
		if err := u.AttachBillingCustomer(customerID); err != nil {
			return nil, fmt.Errorf("failed to attach billing customer: %w", err)
		}
		if err := uc.userRepo.Update(ctx, u); err != nil {
			uc.logger.Errorw("failed to store billing customer", "error", err, "user_id", u.ID())
			return nil, fmt.Errorf("failed to update user: %w", err)
		}
		uc.logger.Infow("billing customer created", "user_id", u.ID(), "billing_customer_id", customerID)
	}

	session, err := uc.gateway.CreateCheckoutSession(ctx, subscription.CheckoutRequest{
		CustomerID: u.BillingCustomerID(),
		PriceID:    priceID,
		SuccessURL: uc.settings.SuccessURL,
		CancelURL:  uc.settings.CancelURL,
		UserID:     u.ID(),
	})
	if err != nil {
		uc.logger.Errorw("failed to create checkout session", "error", err, "user_id", u.ID(), "plan", plan)
		return nil, mapGatewayError(err)
	}

	return &dto.CheckoutResponse{SessionID: session.ID, URL: session.URL}, nil
}
