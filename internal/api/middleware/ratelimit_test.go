package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestClientLimiter_Allow(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	l := NewClientLimiter(1, 2, WithClientLimiterNowFunc(func() time.Time { return now }))

	assert.True(t, l.Allow("10.0.0.1"))
	assert.True(t, l.Allow("10.0.0.1"))
	assert.False(t, l.Allow("10.0.0.1"), "burst exhausted")

	assert.True(t, l.Allow("10.0.0.2"), "clients have independent buckets")

	now = now.Add(time.Second)
	assert.True(t, l.Allow("10.0.0.1"), "one token refilled")
	assert.Equal(t, 2, l.Clients())
}

func TestClientLimiter_EvictsIdleClients(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	l := NewClientLimiter(5, 5, WithClientLimiterNowFunc(func() time.Time { return now }))

	l.Allow("a")
	l.Allow("b")
	assert.Equal(t, 2, l.Clients())

	now = now.Add(limiterIdleTTL + time.Minute)
	l.Allow("c")
	assert.Equal(t, 1, l.Clients())
}

func TestRateLimit_Middleware(t *testing.T) {
	t.Parallel()

	e := echo.New()
	l := NewClientLimiter(0.001, 1)
	e.GET("/api/v1/search", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}, RateLimit(l))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/search", http.NoBody)
	req.RemoteAddr = "192.0.2.10:5555"
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/v1/search", http.NoBody)
	req.RemoteAddr = "192.0.2.10:5556"
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "1", rec.Header().Get("Retry-After"))
	assert.Contains(t, rec.Body.String(), "rate limit exceeded")
}
