package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"renascer/internal/metrics"
)

// Metrics records request counts and latencies per route. The route template
// is used instead of the raw path so that /suppliers/1 and /suppliers/2 share
// a label.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())

		metrics.HTTPRequestsTotal.WithLabelValues(c.Request.Method, path, status).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(c.Request.Method, path, status).Observe(time.Since(start).Seconds())
	}
}
