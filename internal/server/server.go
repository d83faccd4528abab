package server

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/peakops/website/internal/api/handlers"
	"github.com/peakops/website/internal/api/middleware"
	"github.com/peakops/website/internal/config"
	"github.com/peakops/website/internal/logging"
	"github.com/peakops/website/internal/server/routes"
	"github.com/peakops/website/internal/service"
	"github.com/peakops/website/internal/utils"
	"github.com/peakops/website/web"
)

// ServiceName identifies the site in traces.
const ServiceName = "peakops-website"

// Server represents the HTTP server
type Server struct {
	router *gin.Engine
	cfg    *config.Config
}

// New assembles the router, handlers and middleware from cfg. The limiter is
// injected so rate limiting can be swapped out or disabled wholesale.
func New(cfg *config.Config, limiter middleware.ClientLimiter) (*Server, error) {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Gin's own logger is replaced by the request logger middleware.
	gin.DisableConsoleColor()
	gin.DefaultWriter = io.Discard

	router := gin.New()
	// Trailing slashes are normalized by handleTrailingSlash instead of
	// gin's built-in redirect, so the redirects carry the security headers.
	router.RedirectTrailingSlash = false

	tmpl, err := template.ParseFS(web.Templates, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	router.SetHTMLTemplate(tmpl)

	static, err := fs.Sub(web.Static, "static")
	if err != nil {
		return nil, fmt.Errorf("failed to mount static assets: %w", err)
	}
	router.StaticFS("/static", http.FS(static))

	routes.SetupGlobalMiddleware(router, ServiceName, cfg.OTLPEndpoint != "")

	sheets := service.NewSheetsService(cfg.WebhookURL, cfg.WebhookTimeout)

	h := &routes.Handlers{
		Pages:     handlers.NewPagesHandler(cfg.BaseURL),
		Forms:     handlers.NewFormsHandler(cfg.BaseURL, sheets),
		Downloads: handlers.NewDownloadsHandler(cfg.BaseURL, cfg.StaticDir),
		SEO:       handlers.NewSEOHandler(cfg.BaseURL),
		Health:    handlers.NewHealthHandler(),
	}
	m := &routes.Middleware{
		RateLimit: middleware.RateLimit(limiter, utils.GetRealIP),
	}
	routes.Setup(router, h, m)

	return &Server{router: router, cfg: cfg}, nil
}

// Handler exposes the assembled handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves until ctx is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	logger := logging.GetGlobalLogger()

	srv := &http.Server{
		Addr:              ":" + s.cfg.Port,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Listening on :%s (%s)", s.cfg.Port, s.cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutting down HTTP server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
