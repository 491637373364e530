package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ridecrew/ridecrew/internal/infrastructure/ratelimit"
	"github.com/ridecrew/ridecrew/internal/shared/logger"
	"github.com/ridecrew/ridecrew/internal/shared/utils"
)

// RateLimiter limits requests per client IP and route.
type RateLimiter struct {
	limiter ratelimit.RateLimiter
	logger  logger.Interface
}

func NewRateLimiter(limiter ratelimit.RateLimiter, logger logger.Interface) *RateLimiter {
	return &RateLimiter{
		limiter: limiter,
		logger:  logger,
	}
}

// Limit returns a Gin middleware that enforces the rate limit per client IP.
// A nil limiter disables limiting.
func (rl *RateLimiter) Limit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if rl.limiter == nil {
			c.Next()
			return
		}

		key := c.FullPath() + ":" + c.ClientIP()
		allowed, err := rl.limiter.Allow(c.Request.Context(), key)
		if err != nil {
			// Fail open when the backing store is unavailable.
			rl.logger.Warnw("rate limiter unavailable", "error", err)
			c.Next()
			return
		}

		if !allowed {
			utils.ErrorResponse(c, http.StatusTooManyRequests, "rate limit exceeded, please try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}
