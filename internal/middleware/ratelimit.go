package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/crewboard/crewboard/internal/app/models/dto"
)

// RateLimiter is a fixed-window per-client counter. Counts reset when the
// window rolls over, so a burst right at the boundary can briefly see up to
// twice the limit; acceptable for a dashboard API.
type RateLimiter struct {
	mu       sync.Mutex
	requests map[string]*windowCounter
	limit    int
	window   time.Duration
}

type windowCounter struct {
	count       int
	windowStart time.Time
}

// NewRateLimiter creates a limiter allowing limit requests per window per
// client key.
func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	rl := &RateLimiter{
		requests: make(map[string]*windowCounter),
		limit:    limit,
		window:   window,
	}
	go rl.cleanupLoop()
	return rl
}

// Allow records one request for key and reports whether it is within the
// limit.
func (rl *RateLimiter) Allow(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	wc, ok := rl.requests[key]
	if !ok || now.Sub(wc.windowStart) >= rl.window {
		rl.requests[key] = &windowCounter{count: 1, windowStart: now}
		return true
	}

	wc.count++
	return wc.count <= rl.limit
}

// cleanupLoop drops expired windows so idle clients do not accumulate.
func (rl *RateLimiter) cleanupLoop() {
	ticker := time.NewTicker(rl.window)
	defer ticker.Stop()
	for range ticker.C {
		rl.mu.Lock()
		now := time.Now()
		for key, wc := range rl.requests {
			if now.Sub(wc.windowStart) >= rl.window {
				delete(rl.requests, key)
			}
		}
		rl.mu.Unlock()
	}
}

// RateLimit rejects clients exceeding the limit with 429.
func RateLimit(limiter *RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !limiter.Allow(c.ClientIP()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests,
				dto.NewErrorResponse("Muitas requisições, tente novamente mais tarde"))
			return
		}
		c.Next()
	}
}
