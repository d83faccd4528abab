package middleware

import (
	"github.com/gin-gonic/gin"
)

// SecurityHeaders middleware adds security headers to every response.
func SecurityHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Prevent clickjacking while still allowing our own embeds
		c.Header("X-Frame-Options", "SAMEORIGIN")

		// Prevent MIME type sniffing
		c.Header("X-Content-Type-Options", "nosniff")

		// Enable browser's XSS filter
		c.Header("X-XSS-Protection", "1; mode=block")

		// Prevent browsers from sending the Referer header when navigating from HTTPS to HTTP
		c.Header("Referrer-Policy", "strict-origin-when-cross-origin")

		// Enforce HTTPS
		c.Header("Strict-Transport-Security", "max-age=31536000; includeSubDomains")

		c.Next()
	}
}
