package authorization

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ridecrew/ridecrew/internal/shared/constants"
	"github.com/ridecrew/ridecrew/internal/shared/utils"
)

// RequireAdmin only lets platform administrators through.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(constants.ContextKeyUserRole) != string(RoleAdmin) {
			utils.ErrorResponse(c, http.StatusForbidden, "admin access required")
			c.Abort()
			return
		}
		c.Next()
	}
}

// CanAccessResourceByOwnerID reports whether the caller owns the resource or is a platform admin.
func CanAccessResourceByOwnerID(userID uint, userRole UserRole, resourceOwnerID uint) bool {
	if userRole.IsAdmin() {
		return true
	}
	return userID == resourceOwnerID
}
