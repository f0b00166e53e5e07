package scoring

import (
	"math"
	"strings"

	"github.com/ecobeehq/ecoscore-backend/internal/boundaries"
	"github.com/ecobeehq/ecoscore-backend/internal/factors"
)

// Scorer maps items onto the factor tables and normalizes their raw impact
// against the planetary-boundary transgression levels. All methods are pure
// functions over the constant tables and safe for concurrent use.
type Scorer struct {
	tables factors.Table
}

// NewScorer creates a scorer over the given factor tables.
func NewScorer(tables factors.Table) *Scorer {
	return &Scorer{tables: tables}
}

var (
	// Keywords that reduce impact when present in category or materials.
	positiveModifiers = []string{"local", "organic", "recycled", "sustainable", "eco"}
	// Keywords that increase impact.
	negativeModifiers = []string{"fast", "processed", "imported", "synthetic"}
)

// ScoreItem scores a single item across all planetary boundaries. It is
// total over input: unknown types and categories resolve through the
// fallback chain to a defined numeric result, never an error.
func (s *Scorer) ScoreItem(item Item) ScoredItem {
	domain := boundaries.DomainFor(item.Type)
	entry := s.matchCategory(domain, item)

	raw := applyContextualModifiers(entry.Scores, item)

	normalized := make(map[string]float64, len(boundaries.Keys()))
	for _, key := range boundaries.Keys() {
		rawScore, ok := raw[key]
		if !ok {
			rawScore = 50
		}
		normalized[key] = normalizeBoundaryScore(rawScore, key)
	}

	description := entry.Description
	if description == "" {
		description = strings.TrimSpace(item.Type + " item")
	}

	return ScoredItem{
		Item:   item,
		Scores: normalized,
		Details: ScoreDetails{
			Domain:           domain,
			CategoryMatched:  strings.ToLower(item.Category),
			RawScores:        raw,
			NormalizedScores: normalized,
			Description:      description,
		},
	}
}

// matchCategory resolves an item to a factor entry through the ordered
// fallback chain: exact match, substring match, material match, then the
// domain-average entry. Table keys are scanned in sorted order so fallback
// matching is deterministic.
func (s *Scorer) matchCategory(domain boundaries.Domain, item Item) factors.Entry {
	table := s.tables[domain]
	category := strings.ToLower(strings.TrimSpace(item.Category))

	if entry, ok := table[category]; ok && category != "" {
		return entry
	}

	keys := s.tables.Categories(domain)

	if category != "" {
		for _, key := range keys {
			if strings.Contains(key, category) || strings.Contains(category, key) {
				return table[key]
			}
		}
	}

	for _, material := range item.Materials {
		m := strings.ToLower(strings.TrimSpace(material))
		if m == "" {
			continue
		}
		for _, key := range keys {
			if strings.Contains(key, m) || strings.Contains(m, key) {
				return table[key]
			}
		}
	}

	return s.tables.DomainAverage(domain)
}

// applyContextualModifiers adjusts raw scores for sustainability hints in the
// category or material tags. The reduction is applied first, then the
// increase, each clamped independently on the evolving value.
func applyContextualModifiers(scores map[string]float64, item Item) map[string]float64 {
	modified := make(map[string]float64, len(scores))
	for k, v := range scores {
		modified[k] = v
	}

	category := strings.ToLower(item.Category)
	materials := make([]string, len(item.Materials))
	for i, m := range item.Materials {
		materials[i] = strings.ToLower(m)
	}

	hasKeyword := func(keywords []string) bool {
		for _, kw := range keywords {
			if strings.Contains(category, kw) {
				return true
			}
			for _, m := range materials {
				if strings.Contains(m, kw) {
					return true
				}
			}
		}
		return false
	}

	if hasKeyword(positiveModifiers) {
		for k := range modified {
			modified[k] = math.Max(5, modified[k]*0.8)
		}
	}
	if hasKeyword(negativeModifiers) {
		for k := range modified {
			modified[k] = math.Min(95, modified[k]*1.2)
		}
	}

	return modified
}

// normalizeBoundaryScore converts a raw 0-100 factor score into a 0-100
// transgression score, scaled by how far the boundary's current global status
// exceeds its safe operating space. Lower is better for the environment.
func normalizeBoundaryScore(raw float64, boundaryKey string) float64 {
	cfg, ok := boundaries.Get(boundaryKey)
	if !ok {
		return clamp(raw, 0, 100)
	}

	transgressionFactor := raw / 100.0

	var normalized float64
	if cfg.CurrentGlobalStatus > cfg.SafeOperatingSpace {
		globalTransgression := (cfg.CurrentGlobalStatus - cfg.SafeOperatingSpace) / cfg.SafeOperatingSpace
		normalized = math.Min(100, transgressionFactor*(50+globalTransgression*50))
	} else {
		normalized = math.Min(100, transgressionFactor*50)
	}

	return clamp(normalized, 0, 100)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
