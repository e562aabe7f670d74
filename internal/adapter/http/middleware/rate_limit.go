package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"estimate_agent/pkg"
	"estimate_agent/pkg/logger"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// RateLimiter keeps one token bucket per client. A bucket holds max tokens and
// refills at max per window, so a client gets max requests per window.
// Buckets idle for longer than a window are full again and get evicted.
type RateLimiter struct {
	mu        sync.Mutex
	buckets   map[string]*clientBucket
	limit     rate.Limit
	burst     int
	window    time.Duration
	lastSweep time.Time
	now       func() time.Time
}

type clientBucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func NewRateLimiter(max int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		buckets: make(map[string]*clientBucket),
		limit:   rate.Limit(float64(max) / window.Seconds()),
		burst:   max,
		window:  window,
		now:     time.Now,
	}
}

func (l *RateLimiter) Allow(key string) bool {
	now := l.now()

	l.mu.Lock()
	if now.Sub(l.lastSweep) >= l.window {
		l.sweep(now)
	}
	b, ok := l.buckets[key]
	if !ok {
		b = &clientBucket{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.buckets[key] = b
	}
	b.lastSeen = now
	l.mu.Unlock()

	return b.limiter.AllowN(now, 1)
}

// Len returns the number of tracked clients.
func (l *RateLimiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.buckets)
}

// sweep drops idle buckets. Callers hold l.mu.
func (l *RateLimiter) sweep(now time.Time) {
	for key, b := range l.buckets {
		if now.Sub(b.lastSeen) >= l.window {
			delete(l.buckets, key)
		}
	}
	l.lastSweep = now
}

// RateLimit keys clients by X-API-Key when present, else by client IP.
func RateLimit(limiter *RateLimiter) gin.HandlerFunc {
	retryAfter := strconv.Itoa(int(limiter.window.Seconds()))

	return func(c *gin.Context) {
		key := c.GetHeader(HeaderAPIKey)
		if key == "" {
			key = c.ClientIP()
		}

		if !limiter.Allow(key) {
			logger.Warn(c.Request.Context(), "rate limit exceeded", "client_ip", c.ClientIP())

			appErr := pkg.NewDomainErrorSimple("RATE_LIMIT_EXCEEDED", "Too many requests, please try again later", http.StatusTooManyRequests)
			c.Header("Retry-After", retryAfter)
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		c.Next()
	}
}
