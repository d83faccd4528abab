package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/peakops/website/internal/logging"
	"github.com/peakops/website/internal/seo"
)

// SEOHandler serves the crawler-facing endpoints.
type SEOHandler struct {
	baseURL string
}

func NewSEOHandler(baseURL string) *SEOHandler {
	return &SEOHandler{baseURL: baseURL}
}

func (h *SEOHandler) Robots(c *gin.Context) {
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(seo.BuildRobots(h.baseURL)))
}

func (h *SEOHandler) Sitemap(c *gin.Context) {
	xml, err := seo.BuildSitemap(h.baseURL)
	if err != nil {
		logging.GetGlobalLogger().Error("Failed to build sitemap: %v", err)
		c.String(http.StatusInternalServerError, "sitemap unavailable")
		return
	}
	c.Data(http.StatusOK, "application/xml; charset=utf-8", []byte(xml))
}
