package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jengzang/travelmap-backend-go/internal/logger"
)

// Logger middleware logs HTTP requests through zap
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		if raw := c.Request.URL.RawQuery; raw != "" {
			path = path + "?" + raw
		}

		c.Next()

		logger.Infow("request",
			"method", c.Request.Method,
			"path", path,
			"status", c.Writer.Status(),
			"latency", time.Since(start),
			"clientIP", c.ClientIP(),
			"errors", c.Errors.String(),
		)
	}
}
