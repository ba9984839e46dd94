package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/crewboard/crewboard/internal/pkg/logger"
)

// RequestLogger emits one structured log line per request after it finishes.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		event := logger.Info()
		if c.Writer.Status() >= 500 {
			event = logger.Error()
		}
		event.
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("duration", time.Since(start)).
			Str("clientIP", c.ClientIP()).
			Str("requestID", c.GetString("request_id")).
			Msg("Request handled")
	}
}
