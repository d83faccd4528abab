package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Submission is one validated form submission bound for the spreadsheet.
type Submission struct {
	Source string            // page route the form was submitted from
	Fields map[string]string // trimmed form fields
}

// SheetsService forwards form submissions to a spreadsheet webhook.
// Forwarding is best effort; callers log failures and move on.
type SheetsService struct {
	webhookURL string
	client     *http.Client
}

// NewSheetsService creates a sheets forwarder. An empty webhookURL disables
// forwarding without being an error.
func NewSheetsService(webhookURL string, timeout time.Duration) *SheetsService {
	return &SheetsService{
		webhookURL: webhookURL,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// Enabled reports whether a webhook URL is configured.
func (s *SheetsService) Enabled() bool {
	return s.webhookURL != ""
}

// Forward posts the submission as flat JSON to the webhook, stamped with the
// source page and submission time. When no webhook is configured it returns
// nil without calling out.
func (s *SheetsService) Forward(ctx context.Context, sub Submission) error {
	if s.webhookURL == "" {
		return nil
	}

	payload := make(map[string]string, len(sub.Fields)+2)
	for k, v := range sub.Fields {
		payload[k] = v
	}
	payload["source"] = sub.Source
	payload["submitted_at"] = time.Now().UTC().Format(time.RFC3339)

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal submission: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.webhookURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("webhook returned status %d", resp.StatusCode)
	}

	return nil
}
