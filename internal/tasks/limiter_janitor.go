// Package tasks holds the server's periodic background jobs.
package tasks

import (
	"sync"
	"time"

	"github.com/peakops/website/internal/api/middleware"
	"github.com/peakops/website/internal/logging"
)

// LimiterJanitor periodically drops rate-limiter buckets for clients that
// have gone quiet, keeping the per-IP map from growing without bound.
type LimiterJanitor struct {
	limiter  *middleware.IPLimiter
	interval time.Duration
	idle     time.Duration
	done     chan struct{}
	wg       sync.WaitGroup
}

// NewLimiterJanitor creates a janitor that prunes limiter buckets idle for
// longer than idle, checking every interval.
func NewLimiterJanitor(limiter *middleware.IPLimiter, interval, idle time.Duration) *LimiterJanitor {
	return &LimiterJanitor{
		limiter:  limiter,
		interval: interval,
		idle:     idle,
		done:     make(chan struct{}),
	}
}

// Start begins the janitor task in the background.
func (j *LimiterJanitor) Start() {
	j.wg.Add(1)
	go j.runPeriodically()
}

// Stop gracefully stops the janitor task.
func (j *LimiterJanitor) Stop() {
	close(j.done)
	j.wg.Wait()
}

// runPeriodically prunes at regular intervals until stopped.
func (j *LimiterJanitor) runPeriodically() {
	defer j.wg.Done()
	logger := logging.GetGlobalLogger()

	logger.Info("Starting rate limiter janitor (interval=%v, idle=%v)", j.interval, j.idle)

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if removed := j.limiter.Prune(j.idle); removed > 0 {
				logger.Debug("Rate limiter janitor pruned %d idle clients (%d tracked)", removed, j.limiter.Len())
			}
		case <-j.done:
			logger.Info("Rate limiter janitor stopped")
			return
		}
	}
}
