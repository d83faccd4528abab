package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/peakops/website/internal/logging"
	"github.com/peakops/website/internal/utils"
)

// RequestLogger logs one line per request with latency, status and the real
// client IP.
func RequestLogger() gin.HandlerFunc {
	logger := logging.GetGlobalLogger()

	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		latency := time.Since(start)
		statusCode := c.Writer.Status()
		clientIP := utils.GetRealIP(c)

		logger.Info("%s | %13v | %15s | %-17s %s",
			logger.FormatHTTPStatus(statusCode),
			latency,
			clientIP,
			logger.FormatHTTPMethod(method),
			path,
		)
	}
}
