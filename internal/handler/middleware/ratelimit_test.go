//go:build unit

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"gembank/internal/handler/middleware"
	"gembank/internal/pkg/clock"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRateLimiterAllow(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("counts down to zero then blocks", func(t *testing.T) {
		clk := clock.NewMockClock(now)
		rl := middleware.NewRateLimiter(3, time.Minute, clk)

		for i := 0; i < 3; i++ {
			allowed, _, _ := rl.Allow("client")
			assert.True(t, allowed, "request %d", i+1)
		}

		allowed, remaining, retryAfter := rl.Allow("client")
		assert.False(t, allowed)
		assert.Equal(t, 0, remaining)
		assert.Equal(t, time.Minute, retryAfter)
	})

	t.Run("window expiry resets the bucket", func(t *testing.T) {
		clk := clock.NewMockClock(now)
		rl := middleware.NewRateLimiter(1, time.Minute, clk)

		allowed, _, _ := rl.Allow("client")
		assert.True(t, allowed)
		allowed, _, _ = rl.Allow("client")
		assert.False(t, allowed)

		clk.Advance(time.Minute)
		allowed, _, _ = rl.Allow("client")
		assert.True(t, allowed)
	})

	t.Run("keys are independent", func(t *testing.T) {
		clk := clock.NewMockClock(now)
		rl := middleware.NewRateLimiter(1, time.Minute, clk)

		allowed, _, _ := rl.Allow("a")
		assert.True(t, allowed)
		allowed, _, _ = rl.Allow("b")
		assert.True(t, allowed)
	})
}

func TestRateLimiterMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	clk := clock.NewMockClock(now)
	rl := middleware.NewRateLimiter(2, time.Minute, clk)

	router := gin.New()
	router.POST("/deposits", rl.Middleware("deposit"), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	perform := func() *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/deposits", nil)
		router.ServeHTTP(rec, req)
		return rec
	}

	assert.Equal(t, http.StatusOK, perform().Code)
	assert.Equal(t, http.StatusOK, perform().Code)

	rec := perform()
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))

	clk.Advance(time.Minute)
	assert.Equal(t, http.StatusOK, perform().Code)
}
