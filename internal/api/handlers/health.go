package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/peakops/website/internal/version"
)

type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// Check reports liveness. The site has no backing stores, so reachable means
// healthy.
func (h *HealthHandler) Check(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"version": version.Version,
	})
}
