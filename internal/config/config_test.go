package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want %q", cfg.Port, "8080")
	}
	if cfg.BaseURL != "https://peakops.club" {
		t.Errorf("BaseURL = %q, want %q", cfg.BaseURL, "https://peakops.club")
	}
	if cfg.WebhookURL != "" {
		t.Errorf("WebhookURL = %q, want empty (unconfigured is a valid state)", cfg.WebhookURL)
	}
	if cfg.WebhookTimeout != 10*time.Second {
		t.Errorf("WebhookTimeout = %v, want %v", cfg.WebhookTimeout, 10*time.Second)
	}
	if !cfg.RateLimitEnabled {
		t.Error("RateLimitEnabled = false, want true by default")
	}
	if cfg.FormRateRPS != 1 || cfg.FormRateBurst != 5 {
		t.Errorf("form rate = %v/%d, want 1/5", cfg.FormRateRPS, cfg.FormRateBurst)
	}
	if cfg.LogFile == "" {
		t.Error("LogFile should get a default when unset")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("BASE_URL", "https://staging.peakops.club/")
	t.Setenv("G_SHEETS_WEBHOOK_URL", "https://hooks.example.com/sheets")
	t.Setenv("WEBHOOK_TIMEOUT", "2s")
	t.Setenv("RATE_LIMIT_ENABLED", "false")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Port != "9090" {
		t.Errorf("Port = %q, want %q", cfg.Port, "9090")
	}
	// Trailing slash must be stripped so URL joins stay clean.
	if cfg.BaseURL != "https://staging.peakops.club" {
		t.Errorf("BaseURL = %q, want trailing slash trimmed", cfg.BaseURL)
	}
	if cfg.WebhookURL != "https://hooks.example.com/sheets" {
		t.Errorf("WebhookURL = %q, want override", cfg.WebhookURL)
	}
	if cfg.WebhookTimeout != 2*time.Second {
		t.Errorf("WebhookTimeout = %v, want 2s", cfg.WebhookTimeout)
	}
	if cfg.RateLimitEnabled {
		t.Error("RateLimitEnabled = true, want false")
	}
}
