package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"github.com/peakops/website/internal/logging"
)

// Recovery converts panics into 500 responses and logs the stack trace.
func Recovery() gin.HandlerFunc {
	logger := logging.GetGlobalLogger()

	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.Error("panic recovered: %v | %s %s | %s | %s\n%s",
					err,
					c.Request.Method,
					c.Request.URL.Path,
					c.ClientIP(),
					c.GetString("RequestID"),
					debug.Stack(),
				)

				c.String(http.StatusInternalServerError, "Internal server error")
				c.Abort()
			}
		}()

		c.Next()
	}
}
