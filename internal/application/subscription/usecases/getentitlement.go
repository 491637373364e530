package usecases

import (
	"context"

	"github.com/ridecrew/ridecrew/internal/application/entitlement"
	"github.com/ridecrew/ridecrew/internal/application/subscription/dto"
	domainentitlement "github.com/ridecrew/ridecrew/internal/domain/entitlement"
	"github.com/ridecrew/ridecrew/internal/domain/user"
	"github.com/ridecrew/ridecrew/internal/shared/logger"
)

type GetEntitlementQuery struct {
	UserID uint
}

type GetEntitlementUseCase struct {
	userRepo user.Repository
	resolver domainentitlement.Resolver
	logger   logger.Interface
}

func NewGetEntitlementUseCase(
	userRepo user.Repository,
	resolver domainentitlement.Resolver,
	logger logger.Interface,
) *GetEntitlementUseCase {
	return &GetEntitlementUseCase{
		userRepo: userRepo,
		resolver: resolver,
		logger:   logger,
	}
}

func (uc *GetEntitlementUseCase) Execute(ctx context.Context, query GetEntitlementQuery) (*dto.EntitlementResponse, error) {
	u, err := loadUser(ctx, uc.userRepo, query.UserID)
	if err != nil {
		return nil, err
	}
	return dto.ToEntitlementResponse(uc.resolver.Resolve(ctx, entitlement.SubjectOf(u))), nil
}
