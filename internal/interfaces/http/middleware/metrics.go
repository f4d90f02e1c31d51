package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"nika-sop.backend/internal/metrics"
)

// MetricsMiddleware counts requests by method, route and status
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		metrics.HTTPRequestsTotal.
			WithLabelValues(c.Request.Method, path, strconv.Itoa(c.Writer.Status())).
			Inc()
	}
}
