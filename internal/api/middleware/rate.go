package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// ClientLimiter decides whether a request identified by key may proceed.
type ClientLimiter interface {
	Allow(key string) bool
}

// IPLimiter hands out one token bucket per client key. Buckets for clients
// not seen recently are dropped by Prune.
type IPLimiter struct {
	mu      sync.Mutex
	clients map[string]*clientBucket
	rps     rate.Limit
	burst   int
}

type clientBucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewIPLimiter creates a keyed limiter allowing rps requests per second with
// the given burst per client.
func NewIPLimiter(rps float64, burst int) *IPLimiter {
	return &IPLimiter{
		clients: make(map[string]*clientBucket),
		rps:     rate.Limit(rps),
		burst:   burst,
	}
}

// Allow reports whether the client may make another request, minting a fresh
// bucket on first sight.
func (l *IPLimiter) Allow(key string) bool {
	l.mu.Lock()
	b, ok := l.clients[key]
	if !ok {
		b = &clientBucket{limiter: rate.NewLimiter(l.rps, l.burst)}
		l.clients[key] = b
	}
	b.lastSeen = time.Now()
	l.mu.Unlock()

	return b.limiter.Allow()
}

// Prune drops buckets idle for longer than ttl and returns how many were
// removed. A pruned client that comes back simply gets a full bucket again.
func (l *IPLimiter) Prune(ttl time.Duration) int {
	cutoff := time.Now().Add(-ttl)

	l.mu.Lock()
	defer l.mu.Unlock()

	removed := 0
	for key, b := range l.clients {
		if b.lastSeen.Before(cutoff) {
			delete(l.clients, key)
			removed++
		}
	}
	return removed
}

// Len returns the number of clients currently tracked.
func (l *IPLimiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.clients)
}

type allowAll struct{}

func (allowAll) Allow(string) bool { return true }

// AllowAll returns a limiter that never throttles, for when rate limiting is
// disabled.
func AllowAll() ClientLimiter {
	return allowAll{}
}

// RateLimit throttles requests per client using keyFn to identify the client.
// Over-limit requests are rejected with 429 before any processing happens.
func RateLimit(limiter ClientLimiter, keyFn func(*gin.Context) string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !limiter.Allow(keyFn(c)) {
			c.Header("Retry-After", "1")
			c.String(http.StatusTooManyRequests, "Too many requests. Please try again in a moment.")
			c.Abort()
			return
		}
		c.Next()
	}
}
