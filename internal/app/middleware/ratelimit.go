package middleware

import (
	"context"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RateLimiter tracks request rates per client over a sliding window.
type RateLimiter struct {
	clients map[string]*ClientLimit
	mu      sync.RWMutex
	logger  *zap.Logger
	now     func() time.Time

	maxRequests int
	window      time.Duration
}

// ClientLimit tracks requests for a single client
type ClientLimit struct {
	requests []time.Time
	mu       sync.Mutex
	lastSeen time.Time
}

// defaultRateWindow replaces a non-positive window.
const defaultRateWindow = time.Minute

// NewRateLimiter creates a rate limiter. Call Run to prune idle clients.
// A non-positive window falls back to defaultRateWindow.
func NewRateLimiter(logger *zap.Logger, maxRequests int, window time.Duration) *RateLimiter {
	if window <= 0 {
		logger.Warn("Invalid rate limit window, using default",
			zap.Duration("window", window),
			zap.Duration("default", defaultRateWindow))
		window = defaultRateWindow
	}
	return &RateLimiter{
		clients:     make(map[string]*ClientLimit),
		logger:      logger,
		now:         time.Now,
		maxRequests: maxRequests,
		window:      window,
	}
}

// Run removes clients idle for two windows until ctx is done.
func (rl *RateLimiter) Run(ctx context.Context) {
	ticker := time.NewTicker(rl.window * 2)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			rl.prune()
		}
	}
}

func (rl *RateLimiter) prune() {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	now := rl.now()
	for clientID, limit := range rl.clients {
		limit.mu.Lock()
		if now.Sub(limit.lastSeen) > rl.window*2 {
			delete(rl.clients, clientID)
		}
		limit.mu.Unlock()
	}
}

// Allow records a request from clientID and reports whether it fits the
// window. rl.mu is held while recording so prune cannot drop the entry in
// between; lock order is always rl.mu then ClientLimit.mu.
func (rl *RateLimiter) Allow(clientID string) bool {
	rl.mu.RLock()
	if client, exists := rl.clients[clientID]; exists {
		allowed := rl.record(clientID, client)
		rl.mu.RUnlock()
		return allowed
	}
	rl.mu.RUnlock()

	rl.mu.Lock()
	defer rl.mu.Unlock()
	client, exists := rl.clients[clientID]
	if !exists {
		client = &ClientLimit{requests: make([]time.Time, 0, rl.maxRequests)}
		rl.clients[clientID] = client
	}
	return rl.record(clientID, client)
}

func (rl *RateLimiter) record(clientID string, client *ClientLimit) bool {
	client.mu.Lock()
	defer client.mu.Unlock()

	now := rl.now()
	client.lastSeen = now

	cutoff := now.Add(-rl.window)
	valid := client.requests[:0]
	for _, t := range client.requests {
		if t.After(cutoff) {
			valid = append(valid, t)
		}
	}
	client.requests = valid

	if len(client.requests) >= rl.maxRequests {
		rl.logger.Warn("Rate limit exceeded",
			zap.String("client_id", clientID),
			zap.Int("requests", len(client.requests)),
			zap.Int("max_requests", rl.maxRequests),
			zap.Duration("window", rl.window))
		return false
	}

	client.requests = append(client.requests, now)
	return true
}

// Clients reports how many clients are tracked.
func (rl *RateLimiter) Clients() int {
	rl.mu.RLock()
	defer rl.mu.RUnlock()
	return len(rl.clients)
}

// Middleware rejects requests over the limit by calling onLimit, which must
// write the response.
func (rl *RateLimiter) Middleware(onLimit func(c *gin.Context)) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.Allow(clientID(c)) {
			onLimit(c)
			c.Abort()
			return
		}
		c.Next()
	}
}

// clientID keys on the client IP; visitor cookies are too easy to drop.
func clientID(c *gin.Context) string {
	return c.ClientIP()
}
