package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/peakops/website/internal/api/handlers"
	"github.com/peakops/website/internal/assets"
)

// SetupFormRoutes configures the lead-capture forms. Submissions go through
// the per-client rate limiter; page views do not.
func SetupFormRoutes(router *gin.Engine, forms *handlers.FormsHandler, m *Middleware) {
	router.GET("/contact", forms.ShowContact)
	router.POST("/contact", m.RateLimit, forms.SubmitContact)

	for _, magnet := range assets.Catalog() {
		router.GET(magnet.Path(), forms.ShowLeadMagnet(magnet))
		router.POST(magnet.Path(), m.RateLimit, forms.SubmitLeadMagnet(magnet))
	}
}
