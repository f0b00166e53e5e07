package ratelimit

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeCounters struct {
	rejected atomic.Int64
}

func (f *fakeCounters) IncrementRateLimited() { f.rejected.Add(1) }

func TestAllowEnforcesBurst(t *testing.T) {
	l := NewLimiter(1, 3, nil)

	for i := 0; i < 3; i++ {
		assert.True(t, l.Allow("10.0.0.1"), "request %d within burst", i)
	}
	assert.False(t, l.Allow("10.0.0.1"))
}

func TestAllowTracksClientsIndependently(t *testing.T) {
	l := NewLimiter(1, 1, nil)

	assert.True(t, l.Allow("10.0.0.1"))
	assert.False(t, l.Allow("10.0.0.1"))
	assert.True(t, l.Allow("10.0.0.2"), "a fresh client gets its own bucket")
}

func TestMiddlewareRejectsWith429(t *testing.T) {
	counters := &fakeCounters{}
	l := NewLimiter(1, 1, counters)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(l.Middleware())
	r.GET("/", func(ctx *gin.Context) { ctx.Status(http.StatusOK) })

	first := httptest.NewRecorder()
	r.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, first.Code)

	second := httptest.NewRecorder()
	r.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
	assert.Equal(t, int64(1), counters.rejected.Load())
}
