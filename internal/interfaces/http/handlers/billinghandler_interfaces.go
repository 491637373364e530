package handlers

import (
	"context"

	"github.com/ridecrew/ridecrew/internal/application/subscription/dto"
	"github.com/ridecrew/ridecrew/internal/application/subscription/usecases"
)

// Use case interfaces for BillingHandler - enables unit testing with mocks.

type getEntitlementUseCase interface {
	Execute(ctx context.Context, query usecases.GetEntitlementQuery) (*dto.EntitlementResponse, error)
}

type startCheckoutUseCase interface {
	Execute(ctx context.Context, cmd usecases.StartCheckoutCommand) (*dto.CheckoutResponse, error)
}

type confirmPurchaseUseCase interface {
	Execute(ctx context.Context, cmd usecases.ConfirmPurchaseCommand) (*dto.SubsResponse, error)
}

type changeRenewalUseCase interface {
	Execute(ctx context.Context, cmd usecases.ChangeRenewalCommand) (*dto.SubsResponse, error)
}

type listSubsUseCase interface {
	Execute(ctx context.Context, query usecases.ListSubsQuery) ([]*dto.SubsResponse, error)
}
