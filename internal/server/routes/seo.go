package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/peakops/website/internal/api/handlers"
)

// SetupSEORoutes configures the crawler-facing endpoints.
func SetupSEORoutes(router *gin.Engine, seo *handlers.SEOHandler) {
	router.GET("/robots.txt", seo.Robots)
	router.GET("/sitemap.xml", seo.Sitemap)
}
