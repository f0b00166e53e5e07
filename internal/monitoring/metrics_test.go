package monitoring

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsEndpointExposesInstruments(t *testing.T) {
	m := NewMetrics(func() float64 { return 7 })

	m.RecordScore("items")
	m.RecordScore("quiz")
	m.RecordSubmission("new_entry")
	m.IncrementPersistFailure()
	m.IncrementCacheHit()
	m.IncrementCacheMiss()
	m.IncrementRateLimited()

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/metrics", m.Handler())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	assert.Contains(t, body, `ecoscore_scores_computed_total{source="items"} 1`)
	assert.Contains(t, body, `ecoscore_scores_computed_total{source="quiz"} 1`)
	assert.Contains(t, body, `ecoscore_leaderboard_submissions_total{status="new_entry"} 1`)
	assert.Contains(t, body, "ecoscore_leaderboard_persist_failures_total 1")
	assert.Contains(t, body, "ecoscore_cache_hits_total 1")
	assert.Contains(t, body, "ecoscore_cache_misses_total 1")
	assert.Contains(t, body, "ecoscore_rate_limited_total 1")
	assert.Contains(t, body, "ecoscore_leaderboard_entries 7")
}

func TestMiddlewareLabelsByRoute(t *testing.T) {
	m := NewMetrics(nil)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(m.Middleware())
	r.GET("/api/actions/:id", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/metrics", m.Handler())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/actions/plant_meals", nil))
	require.Equal(t, http.StatusOK, w.Code)

	// Unmatched routes collapse into one label instead of one series per path.
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nope", nil))
	require.Equal(t, http.StatusNotFound, w.Code)

	scrape := httptest.NewRecorder()
	r.ServeHTTP(scrape, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	body := scrape.Body.String()
	assert.Contains(t, body, `path="/api/actions/:id"`)
	assert.Contains(t, body, `path="unmatched"`)
}
