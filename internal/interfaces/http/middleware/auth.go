package middleware

import (
	"context"
	stderrors "errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ridecrew/ridecrew/internal/domain/user"
	"github.com/ridecrew/ridecrew/internal/infrastructure/auth"
	"github.com/ridecrew/ridecrew/internal/shared/constants"
	"github.com/ridecrew/ridecrew/internal/shared/errors"
	"github.com/ridecrew/ridecrew/internal/shared/logger"
	"github.com/ridecrew/ridecrew/internal/shared/utils"
)

// TokenVerifier parses signed access tokens.
type TokenVerifier interface {
	Verify(token string) (*auth.Claims, error)
}

// SessionLookup resolves the session an access token is bound to.
type SessionLookup interface {
	GetByID(ctx context.Context, sessionID string) (*user.Session, error)
}

type AuthMiddleware struct {
	tokens   TokenVerifier
	sessions SessionLookup
	logger   logger.Interface
}

func NewAuthMiddleware(tokens TokenVerifier, sessions SessionLookup, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		tokens:   tokens,
		sessions: sessions,
		logger:   logger,
	}
}

// RequireAuth rejects requests without a valid token bound to a live session.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := extractToken(c)
		if !ok {
			utils.ErrorResponse(c, http.StatusUnauthorized, "missing authorization token")
			c.Abort()
			return
		}

		claims, err := m.tokens.Verify(token)
		if err != nil {
			if stderrors.Is(err, auth.ErrTokenExpired) {
				m.reject(c, errors.NewTokenExpiredError("access token"), err)
				return
			}
			m.reject(c, errors.NewTokenInvalidError("access token"), err)
			return
		}

		session, err := m.sessions.GetByID(c.Request.Context(), claims.SessionID)
		if err != nil {
			if !stderrors.Is(err, user.ErrSessionNotFound) {
				m.logger.Errorw("failed to load session", "error", err, "session_id", claims.SessionID)
				utils.ErrorResponse(c, http.StatusInternalServerError, constants.ErrMsgInternalServerError)
				c.Abort()
				return
			}
			// purged sessions were expired or revoked before the purge
			m.reject(c, errors.NewSessionExpiredError(), err)
			return
		}
		if session.RevokedAt != nil || session.UserID != claims.UserID {
			m.reject(c, errors.NewTokenInvalidError("access token"), nil)
			return
		}
		if !session.IsActive() {
			m.reject(c, errors.NewSessionExpiredError(), nil)
			return
		}

		c.Set(constants.ContextKeyUserID, claims.UserID)
		c.Set(constants.ContextKeySessionID, claims.SessionID)
		c.Set(constants.ContextKeyUserRole, string(claims.Role))

		c.Next()
	}
}

func (m *AuthMiddleware) reject(c *gin.Context, authErr *errors.AuthError, cause error) {
	if errors.ShouldLogAuthError(authErr) {
		m.logger.Warnw("rejected access token", "type", authErr.Type, "error", cause, "path", c.Request.URL.Path)
	}
	utils.ErrorResponseWithError(c, authErr)
	c.Abort()
}

// OptionalAuth identifies the caller when a valid token is present and lets
// anonymous requests through.
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := extractToken(c)
		if !ok {
			c.Next()
			return
		}

		claims, err := m.tokens.Verify(token)
		if err == nil {
			session, err := m.sessions.GetByID(c.Request.Context(), claims.SessionID)
			if err == nil && session.IsActive() && session.UserID == claims.UserID {
				c.Set(constants.ContextKeyUserID, claims.UserID)
				c.Set(constants.ContextKeySessionID, claims.SessionID)
				c.Set(constants.ContextKeyUserRole, string(claims.Role))
			}
		}

		c.Next()
	}
}

// extractToken reads the bearer token, falling back to the access token cookie.
func extractToken(c *gin.Context) (string, bool) {
	if header := c.GetHeader(constants.HeaderAuthorization); header != "" {
		parts := strings.SplitN(header, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") && parts[1] != "" {
			return parts[1], true
		}
		return "", false
	}
	token := utils.GetTokenFromCookie(c, constants.AccessTokenCookie)
	return token, token != ""
}
