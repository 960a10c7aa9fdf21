package middleware

import (
	"time"

	"shareit/internal/pkg/metrics"

	"github.com/gin-gonic/gin"
)

// Metrics records request count and latency per matched route template.
func Metrics(service string) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		metrics.ObserveHTTP(service, c.Request.Method, c.FullPath(), c.Writer.Status(), time.Since(start))
	}
}
