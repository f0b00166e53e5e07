package leaderboard

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/ecobeehq/ecoscore-backend/internal/cache"
)

// viewCache memoizes rendered leaderboard views for a short TTL so bursts of
// reads between submissions share one sort pass. Any submission clears it.
type viewCache struct {
	cache *cache.Cache
}

func newViewCache(ttl time.Duration) *viewCache {
	return &viewCache{cache: cache.NewCache(ttl)}
}

func viewKey(limit int, boundaryFilter string) string {
	return fmt.Sprintf("view:%d:%s", limit, boundaryFilter)
}

func (vc *viewCache) get(limit int, boundaryFilter string) (View, bool) {
	data, found := vc.cache.Get(viewKey(limit, boundaryFilter))
	if !found {
		return View{}, false
	}

	var view View
	if err := json.Unmarshal(data, &view); err != nil {
		slog.Error("Failed to unmarshal cached leaderboard view", "error", err)
		return View{}, false
	}
	return view, true
}

func (vc *viewCache) set(limit int, boundaryFilter string, view View) {
	data, err := json.Marshal(view)
	if err != nil {
		slog.Error("Failed to marshal leaderboard view for cache", "error", err)
		return
	}
	vc.cache.Set(viewKey(limit, boundaryFilter), data)
}

func (vc *viewCache) invalidate() {
	vc.cache.Clear()
}
