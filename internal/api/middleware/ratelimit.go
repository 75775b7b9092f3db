package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"

	"github.com/donaldgifford/carmatch/internal/metrics"
)

const limiterIdleTTL = 10 * time.Minute

// ClientLimiter hands out one token bucket per client key (the remote IP).
// Buckets idle for longer than limiterIdleTTL are evicted on access.
type ClientLimiter struct {
	perSecond rate.Limit
	burst     int
	nowFunc   func() time.Time

	mu        sync.Mutex
	clients   map[string]*clientBucket
	lastSweep time.Time
}

type clientBucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// ClientLimiterOption configures the ClientLimiter.
type ClientLimiterOption func(*ClientLimiter)

// WithClientLimiterNowFunc overrides the time function for testing.
func WithClientLimiterNowFunc(f func() time.Time) ClientLimiterOption {
	return func(l *ClientLimiter) {
		l.nowFunc = f
	}
}

// NewClientLimiter creates a limiter allowing perSecond requests per client
// with the given burst.
func NewClientLimiter(perSecond float64, burst int, opts ...ClientLimiterOption) *ClientLimiter {
	l := &ClientLimiter{
		perSecond: rate.Limit(perSecond),
		burst:     burst,
		nowFunc:   time.Now,
		clients:   make(map[string]*clientBucket),
	}
	for _, opt := range opts {
		opt(l)
	}
	l.lastSweep = l.nowFunc()
	return l
}

// Allow reports whether a request from key may proceed now.
func (l *ClientLimiter) Allow(key string) bool {
	now := l.nowFunc()

	l.mu.Lock()
	defer l.mu.Unlock()

	if now.Sub(l.lastSweep) > limiterIdleTTL {
		for k, b := range l.clients {
			if now.Sub(b.lastSeen) > limiterIdleTTL {
				delete(l.clients, k)
			}
		}
		l.lastSweep = now
	}

	b, ok := l.clients[key]
	if !ok {
		b = &clientBucket{limiter: rate.NewLimiter(l.perSecond, l.burst)}
		l.clients[key] = b
	}
	b.lastSeen = now

	return b.limiter.AllowN(now, 1)
}

// Clients returns the number of tracked client buckets.
func (l *ClientLimiter) Clients() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.clients)
}

// RateLimit returns Echo middleware that rejects requests over the client's
// budget with 429 Too Many Requests.
func RateLimit(l *ClientLimiter) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if l.Allow(c.RealIP()) {
				return next(c)
			}

			path := c.Path()
			if path == "" {
				path = c.Request().URL.Path
			}
			metrics.HTTPRateLimitedTotal.WithLabelValues(path).Inc()

			c.Response().Header().Set("Retry-After", "1")
			c.Response().Header().Set(echo.HeaderContentType, "application/problem+json")
			return c.JSON(http.StatusTooManyRequests, problem{
				Title:  http.StatusText(http.StatusTooManyRequests),
				Status: http.StatusTooManyRequests,
				Detail: "rate limit exceeded",
			})
		}
	}
}
