package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ridecrew/ridecrew/internal/infrastructure/metrics"
)

// Metrics records every request under its route template, so ids in the path
// do not multiply series.
func Metrics(m metrics.HTTPMetrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.ObserveRequest(c.Request.Method, route, c.Writer.Status(), time.Since(start))
	}
}
