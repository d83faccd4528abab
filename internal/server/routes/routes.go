package routes

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/peakops/website/internal/api/middleware"
	"github.com/peakops/website/internal/logging"
)

// Setup configures all route groups
func Setup(router *gin.Engine, h *Handlers, m *Middleware) {
	logger := logging.GetGlobalLogger()

	SetupPageRoutes(router, h.Pages)
	SetupFormRoutes(router, h.Forms, m)
	SetupDownloadRoutes(router, h.Downloads)
	SetupSEORoutes(router, h.SEO)
	SetupHealthRoutes(router, h.Health)

	// Everything else gets the custom 404 page.
	router.NoRoute(h.Pages.NotFound)

	logger.Info("All routes have been set up successfully")
}

// SetupGlobalMiddleware configures middleware that applies to all routes.
func SetupGlobalMiddleware(router *gin.Engine, serviceName string, tracing bool) {
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger())
	if tracing {
		router.Use(otelgin.Middleware(serviceName))
	}
	router.Use(middleware.SecurityHeaders())
	router.Use(handleTrailingSlash())
}

// handleTrailingSlash redirects /path/ to /path. All canonical routes are
// registered without a trailing slash, so slashed requests reach this through
// the no-route chain with the global middleware already applied.
func handleTrailingSlash() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path

		if path != "/" && strings.HasSuffix(path, "/") {
			target := strings.TrimRight(path, "/")
			if target == "" {
				target = "/"
			}
			if raw := c.Request.URL.RawQuery; raw != "" {
				target += "?" + raw
			}
			c.Redirect(http.StatusMovedPermanently, target)
			c.Abort()
			return
		}

		c.Next()
	}
}
