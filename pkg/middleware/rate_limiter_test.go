package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimiter_AllowsWithinBurst(t *testing.T) {
	rl := NewRateLimiter(60, 5)
	e := echo.New()

	handler := rl.RateLimitMiddleware()(func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	for i := 0; i < 5; i++ {
		req := httptest.NewRequest(http.MethodGet, "/missions", nil)
		req.Header.Set("X-Real-IP", "203.0.113.10")
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		require.NoError(t, handler(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	}
}

func TestRateLimiter_BlocksBeyondBurst(t *testing.T) {
	rl := NewRateLimiter(1, 2)
	e := echo.New()

	handler := rl.RateLimitMiddleware()(func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	blocked := false
	for i := 0; i < 10; i++ {
		req := httptest.NewRequest(http.MethodPost, "/auth/login", nil)
		req.Header.Set("X-Real-IP", "203.0.113.11")
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		require.NoError(t, handler(c))
		if rec.Code == http.StatusTooManyRequests {
			blocked = true
		}
	}
	assert.True(t, blocked, "burst exhaustion should return 429")
}

func TestRateLimiter_IsolatesIPs(t *testing.T) {
	rl := NewRateLimiter(1, 1)
	e := echo.New()

	handler := rl.RateLimitMiddleware()(func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	// Exhaust first IP
	req := httptest.NewRequest(http.MethodGet, "/missions", nil)
	req.Header.Set("X-Real-IP", "203.0.113.12")
	rec := httptest.NewRecorder()
	require.NoError(t, handler(e.NewContext(req, rec)))
	require.Equal(t, http.StatusOK, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/missions", nil)
	req.Header.Set("X-Real-IP", "203.0.113.12")
	rec = httptest.NewRecorder()
	require.NoError(t, handler(e.NewContext(req, rec)))
	require.Equal(t, http.StatusTooManyRequests, rec.Code)

	// A different IP is unaffected
	req = httptest.NewRequest(http.MethodGet, "/missions", nil)
	req.Header.Set("X-Real-IP", "203.0.113.13")
	rec = httptest.NewRecorder()
	require.NoError(t, handler(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)
}
