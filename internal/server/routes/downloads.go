package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/peakops/website/internal/api/handlers"
	"github.com/peakops/website/internal/assets"
)

// SetupDownloadRoutes configures the lead-magnet PDF downloads.
func SetupDownloadRoutes(router *gin.Engine, downloads *handlers.DownloadsHandler) {
	for _, magnet := range assets.Catalog() {
		router.GET(magnet.DownloadPath(), downloads.Serve(magnet))
	}
}
