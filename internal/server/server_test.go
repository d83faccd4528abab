package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/peakops/website/internal/api/middleware"
	"github.com/peakops/website/internal/assets"
	"github.com/peakops/website/internal/config"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		Environment:    "test",
		Port:           "0",
		BaseURL:        "https://peakops.club",
		StaticDir:      t.TempDir(),
		WebhookTimeout: time.Second,
	}
}

func newTestServer(t *testing.T, cfg *config.Config, limiter middleware.ClientLimiter) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)
	if cfg == nil {
		cfg = testConfig(t)
	}
	if limiter == nil {
		limiter = middleware.AllowAll()
	}
	srv, err := New(cfg, limiter)
	require.NoError(t, err)
	return srv
}

func get(srv *Server, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	srv.Handler().ServeHTTP(w, req)
	return w
}

func postForm(srv *Server, path string, form url.Values, headers map[string]string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	srv.Handler().ServeHTTP(w, req)
	return w
}

// webhookRecorder is a stand-in spreadsheet webhook capturing every payload.
type webhookRecorder struct {
	mu       sync.Mutex
	payloads []map[string]string
	status   int
}

func newWebhookRecorder(status int) (*webhookRecorder, *httptest.Server) {
	rec := &webhookRecorder{status: status}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload map[string]string
		_ = json.NewDecoder(r.Body).Decode(&payload)
		rec.mu.Lock()
		rec.payloads = append(rec.payloads, payload)
		rec.mu.Unlock()
		w.WriteHeader(rec.status)
	}))
	return rec, srv
}

func (r *webhookRecorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.payloads)
}

func (r *webhookRecorder) last() map[string]string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.payloads) == 0 {
		return nil
	}
	return r.payloads[len(r.payloads)-1]
}

func TestAllPagesLoad(t *testing.T) {
	srv := newTestServer(t, nil, nil)

	pages := []struct {
		path string
		want string
	}{
		{"/", "PeakOps"},
		{"/about", "About"},
		{"/services", "Services"},
		{"/pricing", "Pricing"},
		{"/results", "Results"},
		{"/faq", "Frequently"},
		{"/resources", "Resources"},
		{"/self-assessment", "Self-Assessment"},
		{"/contact", "Contact"},
		{"/workflow-checklist", "Workflow"},
		{"/top-10-automations", "Top 10"},
		{"/automation-guide", "Automation"},
	}

	for _, page := range pages {
		t.Run(page.path, func(t *testing.T) {
			w := get(srv, page.path)
			require.Equal(t, http.StatusOK, w.Code)
			require.Contains(t, w.Body.String(), page.want)
		})
	}
}

func TestSecurityHeadersOnEveryResponse(t *testing.T) {
	srv := newTestServer(t, nil, nil)

	want := map[string]string{
		"X-Frame-Options":           "SAMEORIGIN",
		"X-Content-Type-Options":    "nosniff",
		"X-XSS-Protection":          "1; mode=block",
		"Referrer-Policy":           "strict-origin-when-cross-origin",
		"Strict-Transport-Security": "max-age=31536000; includeSubDomains",
	}

	responses := map[string]*httptest.ResponseRecorder{
		"page":     get(srv, "/"),
		"robots":   get(srv, "/robots.txt"),
		"health":   get(srv, "/health"),
		"notfound": get(srv, "/nonexistent-page-12345"),
		"redirect": postForm(srv, "/contact", url.Values{
			"name":         {"Jane"},
			"email":        {"jane@example.com"},
			"improvements": {"reporting"},
		}, nil),
	}

	for name, w := range responses {
		for header, value := range want {
			require.Equalf(t, value, w.Header().Get(header), "%s response missing %s", name, header)
		}
	}
}

func TestRequestIDOnResponses(t *testing.T) {
	srv := newTestServer(t, nil, nil)

	w := get(srv, "/")
	require.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestCustom404Page(t *testing.T) {
	srv := newTestServer(t, nil, nil)

	w := get(srv, "/nonexistent-page-12345")
	require.Equal(t, http.StatusNotFound, w.Code)
	body := strings.ToLower(w.Body.String())
	require.True(t, strings.Contains(body, "404") || strings.Contains(body, "not found"))
}

func TestTrailingSlashRedirect(t *testing.T) {
	srv := newTestServer(t, nil, nil)

	w := get(srv, "/about/")
	require.Equal(t, http.StatusMovedPermanently, w.Code)
	require.Equal(t, "/about", w.Header().Get("Location"))
	// Normalization happens inside the middleware chain, so even the
	// redirect carries the security headers.
	require.Equal(t, "SAMEORIGIN", w.Header().Get("X-Frame-Options"))
}

func TestRobotsTxt(t *testing.T) {
	srv := newTestServer(t, nil, nil)

	w := get(srv, "/robots.txt")
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Header().Get("Content-Type"), "text/plain")
	require.Contains(t, w.Body.String(), "User-agent")
	require.Contains(t, w.Body.String(), "Sitemap: https://peakops.club/sitemap.xml")
}

func TestSitemapXML(t *testing.T) {
	srv := newTestServer(t, nil, nil)

	w := get(srv, "/sitemap.xml")
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Header().Get("Content-Type"), "application/xml")
	body := w.Body.String()
	require.Contains(t, body, "<?xml")
	require.Contains(t, body, "urlset")
	require.Contains(t, body, "https://peakops.club/")
	require.Contains(t, body, "https://peakops.club/faq")
}

func TestHealthEndpoint(t *testing.T) {
	srv := newTestServer(t, nil, nil)

	w := get(srv, "/health")
	require.Equal(t, http.StatusOK, w.Code)

	var payload map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))
	require.Equal(t, "ok", payload["status"])
}

func TestLeadMagnetSubmitValid(t *testing.T) {
	rec, hook := newWebhookRecorder(http.StatusOK)
	defer hook.Close()

	cfg := testConfig(t)
	cfg.WebhookURL = hook.URL
	srv := newTestServer(t, cfg, nil)

	w := postForm(srv, "/workflow-checklist", url.Values{"email": {"test@example.com"}}, nil)
	require.Equal(t, http.StatusSeeOther, w.Code)
	require.Equal(t, "/workflow-checklist?download=1", w.Header().Get("Location"))

	require.Equal(t, 1, rec.count())
	payload := rec.last()
	require.Equal(t, "test@example.com", payload["email"])
	require.Equal(t, "/workflow-checklist", payload["source"])
	require.NotEmpty(t, payload["submitted_at"])
}

func TestLeadMagnetSubmitTrimsEmail(t *testing.T) {
	rec, hook := newWebhookRecorder(http.StatusOK)
	defer hook.Close()

	cfg := testConfig(t)
	cfg.WebhookURL = hook.URL
	srv := newTestServer(t, cfg, nil)

	w := postForm(srv, "/top-10-automations", url.Values{"email": {"  user@example.com  "}}, nil)
	require.Equal(t, http.StatusSeeOther, w.Code)
	require.Equal(t, "user@example.com", rec.last()["email"])
}

func TestLeadMagnetSubmitInvalid(t *testing.T) {
	rec, hook := newWebhookRecorder(http.StatusOK)
	defer hook.Close()

	cfg := testConfig(t)
	cfg.WebhookURL = hook.URL
	srv := newTestServer(t, cfg, nil)

	for _, email := range []string{"invalid-email", "bad@", ""} {
		w := postForm(srv, "/workflow-checklist", url.Values{"email": {email}}, nil)
		require.Equal(t, http.StatusOK, w.Code)
		require.Contains(t, strings.ToLower(w.Body.String()), "error")
	}

	// Invalid submissions never reach the webhook.
	require.Equal(t, 0, rec.count())
}

func TestLeadMagnetDownloadState(t *testing.T) {
	srv := newTestServer(t, nil, nil)

	w := get(srv, "/automation-guide?download=1")
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "Download your PDF")
}

func TestContactSubmitValid(t *testing.T) {
	rec, hook := newWebhookRecorder(http.StatusOK)
	defer hook.Close()

	cfg := testConfig(t)
	cfg.WebhookURL = hook.URL
	srv := newTestServer(t, cfg, nil)

	w := postForm(srv, "/contact", url.Values{
		"name":            {"John Doe"},
		"email":           {"john@example.com"},
		"company":         {"Acme Corp"},
		"role":            {"Manager"},
		"current_process": {"Manual spreadsheets"},
		"improvements":    {"We need automation"},
		"budget":          {"1000-3000"},
	}, nil)
	require.Equal(t, http.StatusSeeOther, w.Code)
	require.Equal(t, "/contact?sent=1", w.Header().Get("Location"))

	payload := rec.last()
	require.Equal(t, "John Doe", payload["name"])
	require.Equal(t, "john@example.com", payload["email"])
	require.Equal(t, "/contact", payload["source"])
}

func TestContactSubmitInvalid(t *testing.T) {
	rec, hook := newWebhookRecorder(http.StatusOK)
	defer hook.Close()

	cfg := testConfig(t)
	cfg.WebhookURL = hook.URL
	srv := newTestServer(t, cfg, nil)

	cases := []url.Values{
		{"name": {"John"}, "email": {""}, "improvements": {"test"}},
		{"name": {""}, "email": {"john@example.com"}, "improvements": {"test"}},
		{"name": {"John"}, "email": {"not@valid"}, "improvements": {"test"}},
		{"name": {"John"}, "email": {"user@@example.com"}, "improvements": {"test"}},
		{"name": {"John"}, "email": {"user @example.com"}, "improvements": {"test"}},
		{"name": {"   "}, "email": {"john@example.com"}, "improvements": {"test"}},
		{"name": {"John"}, "email": {"john@example.com"}},
	}

	for _, form := range cases {
		w := postForm(srv, "/contact", form, nil)
		require.Equal(t, http.StatusOK, w.Code)
		require.Contains(t, strings.ToLower(w.Body.String()), "error")
	}

	require.Equal(t, 0, rec.count())
}

func TestContactSubmitSpecialCharacters(t *testing.T) {
	srv := newTestServer(t, nil, nil)

	w := postForm(srv, "/contact", url.Values{
		"name":         {`John "The Boss" O'Brien`},
		"email":        {"john+test@example.com"},
		"company":      {"Acme & Co."},
		"improvements": {strings.Repeat("x", 1000)},
	}, nil)
	require.Equal(t, http.StatusSeeOther, w.Code)
}

func TestContactSentBanner(t *testing.T) {
	srv := newTestServer(t, nil, nil)

	w := get(srv, "/contact?sent=1")
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "message has been received")
}

func TestWebhookUnsetStillSucceeds(t *testing.T) {
	srv := newTestServer(t, nil, nil) // no webhook URL configured

	w := postForm(srv, "/workflow-checklist", url.Values{"email": {"test@example.com"}}, nil)
	require.Equal(t, http.StatusSeeOther, w.Code)
}

func TestWebhookFailureStillSucceeds(t *testing.T) {
	_, hook := newWebhookRecorder(http.StatusInternalServerError)
	defer hook.Close()

	cfg := testConfig(t)
	cfg.WebhookURL = hook.URL
	srv := newTestServer(t, cfg, nil)

	w := postForm(srv, "/contact", url.Values{
		"name":         {"Jane"},
		"email":        {"jane@example.com"},
		"improvements": {"reporting"},
	}, nil)
	require.Equal(t, http.StatusSeeOther, w.Code)
}

func TestWebhookUnreachableStillSucceeds(t *testing.T) {
	hook := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	hookURL := hook.URL
	hook.Close()

	cfg := testConfig(t)
	cfg.WebhookURL = hookURL
	srv := newTestServer(t, cfg, nil)

	w := postForm(srv, "/automation-guide", url.Values{"email": {"user@example.com"}}, nil)
	require.Equal(t, http.StatusSeeOther, w.Code)
}

func TestWebhookTimeoutStillSucceeds(t *testing.T) {
	release := make(chan struct{})
	hook := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer hook.Close()
	defer close(release)

	cfg := testConfig(t)
	cfg.WebhookURL = hook.URL
	cfg.WebhookTimeout = 50 * time.Millisecond
	srv := newTestServer(t, cfg, nil)

	w := postForm(srv, "/top-10-automations", url.Values{"email": {"user@example.com"}}, nil)
	require.Equal(t, http.StatusSeeOther, w.Code)
}

func TestFormRateLimiting(t *testing.T) {
	rec, hook := newWebhookRecorder(http.StatusOK)
	defer hook.Close()

	cfg := testConfig(t)
	cfg.WebhookURL = hook.URL
	srv := newTestServer(t, cfg, middleware.NewIPLimiter(1, 2))

	client := map[string]string{"X-Real-IP": "203.0.113.7"}
	form := url.Values{"email": {"test@example.com"}}

	for i := 0; i < 2; i++ {
		w := postForm(srv, "/workflow-checklist", form, client)
		require.Equalf(t, http.StatusSeeOther, w.Code, "request %d within burst", i+1)
	}

	w := postForm(srv, "/workflow-checklist", form, client)
	require.Equal(t, http.StatusTooManyRequests, w.Code)
	require.NotEmpty(t, w.Header().Get("Retry-After"))

	// Nothing was processed for the throttled request.
	require.Equal(t, 2, rec.count())

	// A different client is unaffected.
	other := postForm(srv, "/workflow-checklist", form, map[string]string{"X-Real-IP": "198.51.100.9"})
	require.Equal(t, http.StatusSeeOther, other.Code)
}

func TestPageViewsNotRateLimited(t *testing.T) {
	srv := newTestServer(t, nil, middleware.NewIPLimiter(1, 1))

	for i := 0; i < 10; i++ {
		w := get(srv, "/")
		require.Equal(t, http.StatusOK, w.Code)
	}
}

func TestDownloadServesPDF(t *testing.T) {
	cfg := testConfig(t)
	_, err := assets.GeneratePDFs(filepath.Join(cfg.StaticDir, "pdfs"))
	require.NoError(t, err)

	srv := newTestServer(t, cfg, nil)

	for _, m := range assets.Catalog() {
		w := get(srv, m.DownloadPath())
		require.Equalf(t, http.StatusOK, w.Code, "download %s", m.Slug)
		require.Contains(t, w.Header().Get("Content-Disposition"), "attachment")
		require.True(t, strings.HasPrefix(w.Body.String(), "%PDF"))
	}
}

func TestDownloadMissingPDF(t *testing.T) {
	srv := newTestServer(t, nil, nil) // empty static dir, no PDFs generated

	w := get(srv, "/workflow-checklist/download")
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Contains(t, strings.ToLower(w.Body.String()), "not found")
}

func TestStaticAssetsServed(t *testing.T) {
	srv := newTestServer(t, nil, nil)

	w := get(srv, "/static/css/styles.css")
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "--blue")
}
