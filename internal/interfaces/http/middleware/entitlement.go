package middleware

import (
	"context"
	stderrors "errors"
	"net/http"

	"github.com/gin-gonic/gin"

	appentitlement "github.com/ridecrew/ridecrew/internal/application/entitlement"
	"github.com/ridecrew/ridecrew/internal/domain/entitlement"
	"github.com/ridecrew/ridecrew/internal/domain/subscription"
	"github.com/ridecrew/ridecrew/internal/domain/user"
	"github.com/ridecrew/ridecrew/internal/shared/constants"
	"github.com/ridecrew/ridecrew/internal/shared/logger"
	"github.com/ridecrew/ridecrew/internal/shared/utils"
)

// UserLookup loads the authenticated user.
type UserLookup interface {
	GetByID(ctx context.Context, id uint) (*user.User, error)
}

// PlanMiddleware gates routes on the caller's premium entitlement.
type PlanMiddleware struct {
	users    UserLookup
	resolver entitlement.Resolver
	logger   logger.Interface
}

func NewPlanMiddleware(users UserLookup, resolver entitlement.Resolver, logger logger.Interface) *PlanMiddleware {
	return &PlanMiddleware{
		users:    users,
		resolver: resolver,
		logger:   logger,
	}
}

// RequirePlan allows callers whose entitlement grants at least the given plan.
// A lapsing subscription keeps access until its period ends. An empty plan
// accepts any premium plan.
func (m *PlanMiddleware) RequirePlan(required subscription.PlanName) gin.HandlerFunc {
	if required == "" {
		required = subscription.PlanPremium1
	}
	return func(c *gin.Context) {
		userID := c.GetUint(constants.ContextKeyUserID)
		if userID == 0 {
			utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
			c.Abort()
			return
		}

		u, err := m.users.GetByID(c.Request.Context(), userID)
		if err != nil {
			if !stderrors.Is(err, user.ErrUserNotFound) {
				m.logger.Errorw("failed to load user for plan check", "error", err, "user_id", userID)
				utils.ErrorResponse(c, http.StatusInternalServerError, constants.ErrMsgInternalServerError)
				c.Abort()
				return
			}
			m.logger.Warnw("authenticated user no longer exists", "user_id", userID)
			utils.ErrorResponse(c, http.StatusUnauthorized, "user not found")
			c.Abort()
			return
		}

		ent := m.resolver.Resolve(c.Request.Context(), appentitlement.SubjectOf(u))
		if !ent.Grants(required) {
			m.logger.Debugw("plan requirement not met",
				"user_id", userID,
				"required", required,
				"plan_name", ent.PlanName,
				"active", ent.Active,
				"lapsing", ent.Lapsing,
			)
			utils.ErrorResponse(c, http.StatusForbidden, string(required)+" subscription required")
			c.Abort()
			return
		}

		c.Next()
	}
}
