package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ridecrew/ridecrew/internal/shared/constants"
)

// SetAccessTokenCookie stores the access token for browser clients.
func SetAccessTokenCookie(c *gin.Context, accessToken string, maxAge int, secure bool) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(constants.AccessTokenCookie, accessToken, maxAge, "/", "", secure, true)
}

// ClearAccessTokenCookie expires the access token cookie.
func ClearAccessTokenCookie(c *gin.Context, secure bool) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(constants.AccessTokenCookie, "", -1, "/", "", secure, true)
}

// GetTokenFromCookie retrieves a token from the named cookie.
func GetTokenFromCookie(c *gin.Context, cookieName string) string {
	token, err := c.Cookie(cookieName)
	if err != nil {
		return ""
	}
	return token
}
