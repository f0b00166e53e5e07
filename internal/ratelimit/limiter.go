package ratelimit

import (
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	apperrors "github.com/ecobeehq/ecoscore-backend/internal/errors"
)

// Limiter enforces a per-client-IP token bucket. Idle buckets are evicted
// after an hour so the map does not grow with every IP ever seen.
type Limiter struct {
	mu       sync.Mutex
	clients  map[string]*client
	rps      rate.Limit
	burst    int
	counters Counters
}

type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// Counters receives a signal for every rejected request.
type Counters interface {
	IncrementRateLimited()
}

// NewLimiter creates a limiter allowing rps requests per second with the
// given burst per IP.
func NewLimiter(rps float64, burst int, counters Counters) *Limiter {
	l := &Limiter{
		clients:  make(map[string]*client),
		rps:      rate.Limit(rps),
		burst:    burst,
		counters: counters,
	}
	go l.evictIdle()
	return l
}

func (l *Limiter) evictIdle() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		cutoff := time.Now().Add(-1 * time.Hour)
		l.mu.Lock()
		for ip, c := range l.clients {
			if c.lastSeen.Before(cutoff) {
				delete(l.clients, ip)
			}
		}
		l.mu.Unlock()
	}
}

// Allow reports whether a request from ip may proceed.
func (l *Limiter) Allow(ip string) bool {
	l.mu.Lock()
	c, ok := l.clients[ip]
	if !ok {
		c = &client{limiter: rate.NewLimiter(l.rps, l.burst)}
		l.clients[ip] = c
	}
	c.lastSeen = time.Now()
	l.mu.Unlock()

	return c.limiter.Allow()
}

// Middleware rejects over-limit requests with a structured 429.
func (l *Limiter) Middleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if !l.Allow(ctx.ClientIP()) {
			if l.counters != nil {
				l.counters.IncrementRateLimited()
			}
			appErr := apperrors.NewRateLimitError("1s")
			apperrors.LogError(ctx, appErr)
			ctx.AbortWithStatusJSON(appErr.HTTPStatus, appErr)
			return
		}
		ctx.Next()
	}
}
