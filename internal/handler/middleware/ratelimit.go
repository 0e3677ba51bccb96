package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"gembank/internal/pkg/clock"

	"github.com/gin-gonic/gin"
)

// RateLimiter implements fixed-window request counting per client IP.
// Buckets live in process memory, so the limit holds for a single-process
// deployment only.
type RateLimiter struct {
	mu      sync.Mutex
	buckets map[string]*bucket
	clock   clock.Clock

	maxRequests int
	window      time.Duration
}

type bucket struct {
	count   int
	resetAt time.Time
}

func NewRateLimiter(maxRequests int, window time.Duration, clk clock.Clock) *RateLimiter {
	return &RateLimiter{
		buckets:     make(map[string]*bucket),
		clock:       clk,
		maxRequests: maxRequests,
		window:      window,
	}
}

// Allow reports whether a request under key fits the current window, with
// the remaining quota and the wait time when it does not.
func (rl *RateLimiter) Allow(key string) (allowed bool, remaining int, retryAfter time.Duration) {
	now := rl.clock.Now()

	rl.mu.Lock()
	defer rl.mu.Unlock()

	b, ok := rl.buckets[key]
	if !ok || !now.Before(b.resetAt) {
		rl.buckets[key] = &bucket{count: 1, resetAt: now.Add(rl.window)}
		return true, rl.maxRequests - 1, 0
	}

	if b.count >= rl.maxRequests {
		return false, 0, b.resetAt.Sub(now)
	}

	b.count++
	return true, rl.maxRequests - b.count, 0
}

func (rl *RateLimiter) Middleware(prefix string) gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed, remaining, retryAfter := rl.Allow(prefix + ":" + c.ClientIP())
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))

		if !allowed {
			c.Header("Retry-After", strconv.Itoa(int(retryAfter.Seconds())+1))
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error": "Rate limit exceeded",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
