package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/ridecrew/ridecrew/internal/domain/permission"
	"github.com/ridecrew/ridecrew/internal/shared/constants"
	"github.com/ridecrew/ridecrew/internal/shared/logger"
)

type stubEnforcer struct {
	allowed map[string]bool
	err     error
}

func (s *stubEnforcer) Enforce(subject string, resource permission.Resource, action permission.Action) (bool, error) {
	if s.err != nil {
		return false, s.err
	}
	return s.allowed[subject+":"+string(resource)+":"+string(action)], nil
}

func runPermission(enforcer permission.Enforcer, role string, authenticated bool) int {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	m := NewPermissionMiddleware(enforcer, logger.NewNopLogger())
	r.DELETE("/admin/clubs/:id", func(c *gin.Context) {
		if authenticated {
			c.Set(constants.ContextKeyUserID, uint(1))
			c.Set(constants.ContextKeyUserRole, role)
		}
		c.Next()
	}, m.RequirePermission(permission.ResourceClubs, permission.ActionDelete), func(c *gin.Context) {
		c.Status(http.StatusAccepted)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/admin/clubs/3", nil))
	return w.Code
}

func TestPermissionMiddleware_RequirePermission(t *testing.T) {
	enforcer := &stubEnforcer{allowed: map[string]bool{"admin:clubs:delete": true}}

	assert.Equal(t, http.StatusAccepted, runPermission(enforcer, "admin", true))
	assert.Equal(t, http.StatusForbidden, runPermission(enforcer, "user", true))
	assert.Equal(t, http.StatusUnauthorized, runPermission(enforcer, "", false))
	assert.Equal(t, http.StatusInternalServerError, runPermission(&stubEnforcer{err: errors.New("policy load failed")}, "admin", true))
}
