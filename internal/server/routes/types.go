package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/peakops/website/internal/api/handlers"
)

// Handlers contains all the route handlers
type Handlers struct {
	Pages     *handlers.PagesHandler
	Forms     *handlers.FormsHandler
	Downloads *handlers.DownloadsHandler
	SEO       *handlers.SEOHandler
	Health    *handlers.HealthHandler
}

// Middleware contains the route-scoped middleware
type Middleware struct {
	RateLimit gin.HandlerFunc
}
