package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"pulsenet-backend/internal/logger"
)

const requestIDHeader = "X-Request-ID"

// requestID assigns each request a UUID (unless the caller supplied one)
// so a response can be matched to its log lines.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Writer.Header().Set(requestIDHeader, id)
		c.Next()
	}
}

// requestLog writes one line per completed request.
func requestLog(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Info("request",
			"request_id", c.GetString("request_id"),
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}
