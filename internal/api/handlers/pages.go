package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/peakops/website/internal/assets"
	"github.com/peakops/website/internal/seo"
)

// PagesHandler renders the marketing pages.
type PagesHandler struct {
	baseURL string
}

func NewPagesHandler(baseURL string) *PagesHandler {
	return &PagesHandler{baseURL: baseURL}
}

// pageData assembles the common template payload for a page route.
func pageData(baseURL, path string, extra gin.H) gin.H {
	meta, _ := seo.Lookup(path)
	data := gin.H{
		"Meta":    meta,
		"BaseURL": baseURL,
	}
	for k, v := range extra {
		data[k] = v
	}
	return data
}

// renderNotFound renders the custom 404 page. Shared with the download
// handler for missing files.
func renderNotFound(c *gin.Context, baseURL string) {
	meta := seo.Meta{
		Title:       "Page Not Found | PeakOps Automation",
		Description: "The page you were looking for could not be found.",
		Canonical:   c.Request.URL.Path,
		OG: seo.OpenGraph{
			Title:       "Page Not Found",
			Description: "The page you were looking for could not be found.",
			Type:        "website",
		},
	}
	c.HTML(http.StatusNotFound, "404.html", gin.H{
		"Meta":    meta,
		"BaseURL": baseURL,
	})
}

func (h *PagesHandler) Home(c *gin.Context) {
	c.HTML(http.StatusOK, "home.html", pageData(h.baseURL, "/", nil))
}

func (h *PagesHandler) About(c *gin.Context) {
	c.HTML(http.StatusOK, "about.html", pageData(h.baseURL, "/about", nil))
}

func (h *PagesHandler) Services(c *gin.Context) {
	c.HTML(http.StatusOK, "services.html", pageData(h.baseURL, "/services", nil))
}

func (h *PagesHandler) Pricing(c *gin.Context) {
	c.HTML(http.StatusOK, "pricing.html", pageData(h.baseURL, "/pricing", gin.H{
		"Tiers": assets.Tiers(),
	}))
}

func (h *PagesHandler) Results(c *gin.Context) {
	c.HTML(http.StatusOK, "results.html", pageData(h.baseURL, "/results", nil))
}

func (h *PagesHandler) FAQ(c *gin.Context) {
	c.HTML(http.StatusOK, "faq.html", pageData(h.baseURL, "/faq", nil))
}

func (h *PagesHandler) Resources(c *gin.Context) {
	c.HTML(http.StatusOK, "resources.html", pageData(h.baseURL, "/resources", gin.H{
		"Magnets": assets.Catalog(),
	}))
}

func (h *PagesHandler) SelfAssessment(c *gin.Context) {
	c.HTML(http.StatusOK, "self-assessment.html", pageData(h.baseURL, "/self-assessment", nil))
}

// NotFound handles every unmatched route.
func (h *PagesHandler) NotFound(c *gin.Context) {
	renderNotFound(c, h.baseURL)
}
