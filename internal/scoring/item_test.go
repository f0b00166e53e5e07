package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecobeehq/ecoscore-backend/internal/boundaries"
	"github.com/ecobeehq/ecoscore-backend/internal/factors"
)

func newTestScorer() *Scorer {
	return NewScorer(factors.Default())
}

func TestScoreItemPlantBasedVersusMeatHeavy(t *testing.T) {
	s := newTestScorer()

	plant := s.ScoreItem(Item{Type: "food", Category: "plant-based"})
	meat := s.ScoreItem(Item{Type: "food", Category: "meat-heavy"})

	// Climate multiplier: 50 + ((415-350)/350)*50 = 59.2857 applied to raw/100.
	assert.InDelta(t, 7.114, plant.Scores[boundaries.Climate], 0.01)
	assert.InDelta(t, 48.614, meat.Scores[boundaries.Climate], 0.01)

	for _, key := range boundaries.Keys() {
		assert.Less(t, plant.Scores[key], meat.Scores[key],
			"plant-based should beat meat-heavy on %s", key)
	}
}

func TestScoreItemTotality(t *testing.T) {
	s := newTestScorer()

	tests := []struct {
		name string
		item Item
	}{
		{"empty item", Item{}},
		{"unknown type", Item{Type: "spaceship", Category: "warp-core"}},
		{"unknown category", Item{Type: "food", Category: "unicorn-stew"}},
		{"materials only", Item{Type: "clothing", Materials: []string{"polyester"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scored := s.ScoreItem(tt.item)
			require.Len(t, scored.Scores, len(boundaries.Keys()))
			for key, v := range scored.Scores {
				assert.GreaterOrEqual(t, v, 0.0, "boundary %s below 0", key)
				assert.LessOrEqual(t, v, 100.0, "boundary %s above 100", key)
			}
		})
	}
}

func TestScoreItemDeterministic(t *testing.T) {
	s := newTestScorer()
	item := Item{Type: "clothing", Category: "shirt", Materials: []string{"cotton", "polyester"}}

	first := s.ScoreItem(item)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first.Scores, s.ScoreItem(item).Scores)
		assert.Equal(t, first.Details, s.ScoreItem(item).Details)
	}
}

func TestMatchCategoryFallbackChain(t *testing.T) {
	s := newTestScorer()

	tests := []struct {
		name     string
		item     Item
		wantDesc string
	}{
		{
			"exact match",
			Item{Type: "food", Category: "plant-based"},
			"Plant-based diet with minimal processing",
		},
		{
			"exact match case-insensitive",
			Item{Type: "food", Category: "Plant-Based"},
			"Plant-based diet with minimal processing",
		},
		{
			"substring match",
			Item{Type: "clothing", Category: "organic cotton shirt"},
			"Conventional cotton textiles",
		},
		{
			"material match",
			Item{Type: "clothing", Category: "jacket", Materials: []string{"polyester"}},
			"Synthetic polyester fabrics",
		},
		{
			"domain average fallback",
			Item{Type: "food", Category: "unicorn-stew"},
			"Average food item",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scored := s.ScoreItem(tt.item)
			assert.Equal(t, tt.wantDesc, scored.Details.Description)
		})
	}
}

func TestContextualModifiers(t *testing.T) {
	s := newTestScorer()

	// "organic cotton shirt" matches the cotton table via substring, then the
	// organic keyword applies the 0.8 reduction: climate 42 -> 33.6 raw.
	organic := s.ScoreItem(Item{Type: "clothing", Category: "organic cotton shirt"})
	assert.InDelta(t, 33.6, organic.Details.RawScores[boundaries.Climate], 1e-9)

	plain := s.ScoreItem(Item{Type: "clothing", Category: "cotton"})
	assert.InDelta(t, 42.0, plain.Details.RawScores[boundaries.Climate], 1e-9)

	// Negative keywords scale up, capped at 95.
	fast := s.ScoreItem(Item{Type: "clothing", Category: "fast-fashion"})
	assert.InDelta(t, 90.0, fast.Details.RawScores[boundaries.Climate], 1e-9) // 75 * 1.2
	assert.InDelta(t, 95.0, fast.Details.RawScores[boundaries.Aerosols], 1e-9) // 80 * 1.2 capped
}

func TestOrganicAlternativeBeatsSynthetic(t *testing.T) {
	s := newTestScorer()

	organicShirt := s.ScoreItem(Item{Type: "clothing", Category: "organic cotton shirt"})
	polyesterJacket := s.ScoreItem(Item{Type: "clothing", Category: "polyester"})

	assert.Less(t, organicShirt.Scores[boundaries.Climate], polyesterJacket.Scores[boundaries.Climate])
}

func TestNormalizeBoundaryScore(t *testing.T) {
	tests := []struct {
		name     string
		raw      float64
		boundary string
		want     float64
	}{
		{"climate mid", 50, boundaries.Climate, 29.643},
		{"climate full pressure clamps", 100, boundaries.Biosphere, 100},
		{"freshwater within safe space", 50, boundaries.Freshwater, 25},
		{"aerosols", 50, boundaries.Aerosols, 30},
		{"zero stays zero", 0, boundaries.Climate, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, normalizeBoundaryScore(tt.raw, tt.boundary), 0.01)
		})
	}
}
