package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/peakops/website/internal/api/handlers"
)

// SetupPageRoutes configures the static marketing pages.
func SetupPageRoutes(router *gin.Engine, pages *handlers.PagesHandler) {
	router.GET("/", pages.Home)
	router.GET("/about", pages.About)
	router.GET("/services", pages.Services)
	router.GET("/pricing", pages.Pricing)
	router.GET("/results", pages.Results)
	router.GET("/faq", pages.FAQ)
	router.GET("/resources", pages.Resources)
	router.GET("/self-assessment", pages.SelfAssessment)
}
