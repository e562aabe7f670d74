package middleware

import (
	"strconv"
	"time"

	"estimate_agent/internal/infrastructure/metrics"

	"github.com/gin-gonic/gin"
)

const unmatchedRoute = "unmatched"

// Metrics records request count and latency labelled by route template, so
// path parameters do not explode label cardinality.
func Metrics(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = unmatchedRoute
		}
		method := c.Request.Method

		m.HTTPRequests.WithLabelValues(method, route, strconv.Itoa(c.Writer.Status())).Inc()
		m.HTTPDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
	}
}
