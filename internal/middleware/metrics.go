package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/SumitSharma2000/Car-Wash-APP/internal/metrics"
)

// MetricsMiddleware counts requests by route template, not raw path.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.IncHTTP(c.Request.Method, route, c.Writer.Status())
	}
}
