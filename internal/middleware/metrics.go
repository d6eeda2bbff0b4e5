package middleware

import (
	"log"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-manager/internal/metrics"
)

const slowRequest = 500 * time.Millisecond

// RequestMetrics mede cada requisição e registra no log as lentas.
func RequestMetrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		latency := time.Since(start)
		status := strconv.Itoa(c.Writer.Status())

		metrics.HTTPRequests.WithLabelValues(c.Request.Method, route, status).Inc()
		metrics.HTTPDuration.WithLabelValues(c.Request.Method, route).Observe(latency.Seconds())

		if latency > slowRequest {
			log.Printf("[http] slow request %s %s | status %s | %v",
				c.Request.Method, c.Request.URL.Path, status, latency)
		}
	}
}
