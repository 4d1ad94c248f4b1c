package middleware

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// RateLimitConfig defines the fixed-window rate limit.
type RateLimitConfig struct {
	// MaxRequests is the number of requests allowed per window
	MaxRequests int
	// Window is the fixed counting window
	Window time.Duration
}

// DefaultRateLimitConfig mirrors the public API default.
func DefaultRateLimitConfig() *RateLimitConfig {
	return &RateLimitConfig{
		MaxRequests: 100,
		Window:      15 * time.Minute,
	}
}

// RateLimiter counts requests per client key in fixed windows.
// Counters are the only cross-request shared state in the process.
type RateLimiter struct {
	config  *RateLimitConfig
	mu      sync.Mutex
	windows map[string]*window
}

type window struct {
	count   int
	startAt time.Time
}

// NewRateLimiter creates a rate limiter.
func NewRateLimiter(config *RateLimitConfig) *RateLimiter {
	if config == nil {
		config = DefaultRateLimitConfig()
	}

	return &RateLimiter{
		config:  config,
		windows: make(map[string]*window),
	}
}

// Allow reports whether a request for the given key fits the window.
func (rl *RateLimiter) Allow(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	w, exists := rl.windows[key]
	if !exists || now.Sub(w.startAt) >= rl.config.Window {
		rl.windows[key] = &window{count: 1, startAt: now}
		return true
	}

	if w.count >= rl.config.MaxRequests {
		return false
	}

	w.count++
	return true
}

// Remaining returns the requests left in the current window for key.
func (rl *RateLimiter) Remaining(key string) int {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	w, exists := rl.windows[key]
	if !exists || time.Since(w.startAt) >= rl.config.Window {
		return rl.config.MaxRequests
	}

	remaining := rl.config.MaxRequests - w.count
	if remaining < 0 {
		return 0
	}
	return remaining
}

// LimitMessage is the client-facing text for an exhausted window.
func (rl *RateLimiter) LimitMessage() string {
	return fmt.Sprintf("You have exceeded the %d requests in %s limit!",
		rl.config.MaxRequests, formatWindow(rl.config.Window))
}

func formatWindow(window time.Duration) string {
	if minutes := int(window.Minutes()); minutes >= 1 {
		if minutes == 1 {
			return "1 minute"
		}
		return fmt.Sprintf("%d minutes", minutes)
	}
	return window.String()
}

// RateLimitMiddleware limits requests per client IP.
func RateLimitMiddleware(limiter *RateLimiter) gin.HandlerFunc {
	message := limiter.LimitMessage()

	return func(c *gin.Context) {
		if !limiter.Allow(c.ClientIP()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": message,
			})
			return
		}
		c.Next()
	}
}
