package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRateLimiter_AllowWithinLimit(t *testing.T) {
	t.Parallel()

	limiter := NewRateLimiter(&RateLimitConfig{MaxRequests: 3, Window: time.Minute})

	for i := 0; i < 3; i++ {
		assert.True(t, limiter.Allow("client-a"), "request %d should pass", i+1)
	}
	assert.False(t, limiter.Allow("client-a"))
}

func TestRateLimiter_KeysAreIndependent(t *testing.T) {
	t.Parallel()

	limiter := NewRateLimiter(&RateLimitConfig{MaxRequests: 1, Window: time.Minute})

	assert.True(t, limiter.Allow("client-a"))
	assert.False(t, limiter.Allow("client-a"))
	assert.True(t, limiter.Allow("client-b"))
}

func TestRateLimiter_WindowResets(t *testing.T) {
	t.Parallel()

	limiter := NewRateLimiter(&RateLimitConfig{MaxRequests: 1, Window: 20 * time.Millisecond})

	assert.True(t, limiter.Allow("client-a"))
	assert.False(t, limiter.Allow("client-a"))

	time.Sleep(30 * time.Millisecond)

	assert.True(t, limiter.Allow("client-a"))
}

func TestRateLimiter_Remaining(t *testing.T) {
	t.Parallel()

	limiter := NewRateLimiter(&RateLimitConfig{MaxRequests: 5, Window: time.Minute})

	assert.Equal(t, 5, limiter.Remaining("client-a"))

	limiter.Allow("client-a")
	limiter.Allow("client-a")

	assert.Equal(t, 3, limiter.Remaining("client-a"))
}

func TestRateLimiter_DefaultConfig(t *testing.T) {
	t.Parallel()

	limiter := NewRateLimiter(nil)

	assert.Equal(t, 100, limiter.config.MaxRequests)
	assert.Equal(t, 15*time.Minute, limiter.config.Window)
}

func TestRateLimitMiddleware_Returns429(t *testing.T) {
	t.Parallel()

	gin.SetMode(gin.TestMode)
	router := gin.New()
	limiter := NewRateLimiter(&RateLimitConfig{MaxRequests: 2, Window: time.Minute})
	router.GET("/", RateLimitMiddleware(limiter), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	do := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec
	}

	assert.Equal(t, http.StatusOK, do().Code)
	assert.Equal(t, http.StatusOK, do().Code)

	rec := do()
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	// The message reflects the configured window, not a canned default
	assert.Contains(t, rec.Body.String(), "exceeded the 2 requests in 1 minute limit")
}

func TestRateLimiter_LimitMessage(t *testing.T) {
	t.Parallel()

	cases := []struct {
		config  RateLimitConfig
		message string
	}{
		{RateLimitConfig{MaxRequests: 100, Window: 15 * time.Minute}, "You have exceeded the 100 requests in 15 minutes limit!"},
		{RateLimitConfig{MaxRequests: 1, Window: time.Minute}, "You have exceeded the 1 requests in 1 minute limit!"},
		{RateLimitConfig{MaxRequests: 5, Window: 30 * time.Second}, "You have exceeded the 5 requests in 30s limit!"},
	}

	for _, tc := range cases {
		limiter := NewRateLimiter(&tc.config)
		assert.Equal(t, tc.message, limiter.LimitMessage())
	}
}
