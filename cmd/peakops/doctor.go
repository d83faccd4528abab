package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"
)

var (
	doctorURL     string
	doctorTimeout time.Duration
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check that the website is up and healthy",
	Run: func(cmd *cobra.Command, args []string) {
		s := spinner.New(spinner.CharSets[14], 120*time.Millisecond)
		s.Suffix = " Checking " + doctorURL + "..."
		s.Start()

		status, err := waitForHealthy(doctorURL, doctorTimeout)
		s.Stop()

		if err != nil {
			logger.Error("Health check failed: %v", err)
			os.Exit(1)
		}
		logger.Info("Server is healthy (status: %s)", status)
	},
}

func init() {
	doctorCmd.Flags().StringVar(&doctorURL, "url", "http://localhost:8080", "Base URL of the server to check")
	doctorCmd.Flags().DurationVar(&doctorTimeout, "timeout", 30*time.Second, "How long to keep retrying before giving up")
}

// waitForHealthy polls the health endpoint until it answers 200 or the
// deadline passes. Returns the reported status string on success.
func waitForHealthy(baseURL string, timeout time.Duration) (string, error) {
	client := &http.Client{Timeout: 5 * time.Second}
	deadline := time.Now().Add(timeout)

	var lastErr error
	for {
		status, err := checkHealth(client, baseURL)
		if err == nil {
			return status, nil
		}
		lastErr = err

		if time.Now().After(deadline) {
			return "", fmt.Errorf("server not healthy after %s: %w", timeout, lastErr)
		}
		time.Sleep(time.Second)
	}
}

func checkHealth(client *http.Client, baseURL string) (string, error) {
	resp, err := client.Get(baseURL + "/health")
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var body struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("failed to decode health response: %w", err)
	}
	return body.Status, nil
}
