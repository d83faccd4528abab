package handlers

import (
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"github.com/peakops/website/internal/assets"
)

// DownloadsHandler streams the generated lead-magnet PDFs from disk. The
// files are produced by the ops CLI, not embedded, so a missing file is a
// deploy gap and renders the 404 page.
type DownloadsHandler struct {
	baseURL string
	pdfDir  string
}

func NewDownloadsHandler(baseURL, staticDir string) *DownloadsHandler {
	return &DownloadsHandler{
		baseURL: baseURL,
		pdfDir:  filepath.Join(staticDir, "pdfs"),
	}
}

// Serve returns the download handler for m.
func (h *DownloadsHandler) Serve(m assets.LeadMagnet) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := filepath.Join(h.pdfDir, m.Filename)
		if _, err := os.Stat(path); err != nil {
			renderNotFound(c, h.baseURL)
			return
		}
		c.FileAttachment(path, m.Filename)
	}
}
