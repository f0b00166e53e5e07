package recommend

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecobeehq/ecoscore-backend/internal/boundaries"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	return NewEngine(slog.Default())
}

func TestPersonalizedRanksByRelevance(t *testing.T) {
	e := newTestEngine(t)

	scores := map[string]float64{
		boundaries.Climate:        85,
		boundaries.Aerosols:       75,
		boundaries.Biosphere:      70,
		boundaries.Biogeochemical: 40,
		boundaries.Freshwater:     35,
	}

	results := e.Personalized(scores, UserContext{}, 5)
	require.Len(t, results, 5)

	for i := 1; i < len(results); i++ {
		assert.GreaterOrEqual(t, results[i-1].RecommendationScore, results[i].RecommendationScore)
	}
	for _, r := range results {
		assert.Greater(t, r.RecommendationScore, 0.0)
	}

	// Walking/biking hits all three priority boundaries hard and matches the
	// default easy/daily/free context.
	assert.Equal(t, "active_transport", results[0].ID)
	assert.InDelta(t, 20.13, results[0].RecommendationScore, 0.01)
}

func TestPersonalizedContextPreferences(t *testing.T) {
	e := newTestEngine(t)

	scores := map[string]float64{
		boundaries.Climate:    80,
		boundaries.Freshwater: 75,
		boundaries.Aerosols:   70,
	}

	socialOff := false
	notStudent := false
	ctx := UserContext{
		DifficultyPreference: "medium",
		TimeAvailability:     "monthly",
		BudgetPreference:     "low",
		SocialPreference:     &socialOff,
		IsStudent:            &notStudent,
	}

	defaultResults := e.Personalized(scores, UserContext{}, 12)
	tunedResults := e.Personalized(scores, ctx, 12)

	score := func(results []ScoredAction, id string) float64 {
		for _, r := range results {
			if r.ID == id {
				return r.RecommendationScore
			}
		}
		t.Fatalf("action %s not in results", id)
		return 0
	}

	// clothing_repair is medium/monthly/low and non-campus-relevant for a
	// non-student; the tuned context must rank it higher than defaults do.
	assert.Greater(t, score(tunedResults, "clothing_repair"), score(defaultResults, "clothing_repair"))
}

func TestPersonalizedLimit(t *testing.T) {
	e := newTestEngine(t)
	scores := map[string]float64{boundaries.Climate: 90}

	assert.Len(t, e.Personalized(scores, UserContext{}, 3), 3)
	assert.LessOrEqual(t, len(e.Personalized(scores, UserContext{}, 0)), 5) // default limit
}

func TestPersonalizedIncludesRelatedResources(t *testing.T) {
	e := newTestEngine(t)
	scores := map[string]float64{boundaries.Freshwater: 90, boundaries.Climate: 85}

	results := e.Personalized(scores, UserContext{}, 12)
	for _, r := range results {
		if r.ID == "clothing_repair" {
			names := make([]string, 0, len(r.RelatedResources))
			for _, res := range r.RelatedResources {
				names = append(names, res.ID)
			}
			assert.Contains(t, names, "campus_repair_cafe")
			assert.Contains(t, names, "sustainability_workshops")
			return
		}
	}
	t.Fatal("clothing_repair not recommended")
}

func TestDetails(t *testing.T) {
	e := newTestEngine(t)

	details, ok := e.Details("plant_meals")
	require.True(t, ok)
	assert.Equal(t, "Plant-Based Meals 3x/week", details.Name)
	assert.LessOrEqual(t, len(details.SimilarActions), 3)
	assert.NotEmpty(t, details.SimilarActions)

	_, ok = e.Details("teleportation")
	assert.False(t, ok)
}

func TestActionsByCategory(t *testing.T) {
	e := newTestEngine(t)

	food := e.ActionsByCategory("food")
	require.Len(t, food, 3)
	for _, a := range food {
		assert.Equal(t, "food", a.Category)
	}

	assert.Len(t, e.ActionsByCategory("FOOD"), 3)
	assert.Empty(t, e.ActionsByCategory("gardening"))
}

func TestResources(t *testing.T) {
	e := newTestEngine(t)
	resources := e.Resources()
	assert.Len(t, resources, 6)
	// Sorted by id for stable API output.
	for i := 1; i < len(resources); i++ {
		assert.Less(t, resources[i-1].ID, resources[i].ID)
	}
}

func TestActionSimilarity(t *testing.T) {
	actions := defaultActions()

	// Same category, same difficulty, same time commitment, overlapping impact.
	s := actionSimilarity(actions["active_transport"], actions["public_transport"])
	assert.Greater(t, s, similarityThreshold)

	// Self-similarity with identical tags and impacts is the ceiling.
	self := actionSimilarity(actions["plant_meals"], actions["plant_meals"])
	assert.InDelta(t, 1.0, self, 1e-9)
}

func TestImpactSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a, b map[string]float64
		want float64
	}{
		{"identical", map[string]float64{"climate": 50}, map[string]float64{"climate": 50}, 1.0},
		{"disjoint", map[string]float64{"climate": 50}, map[string]float64{"aerosols": 50}, 0.0},
		{"empty", nil, map[string]float64{"climate": 50}, 0.0},
		{"half apart", map[string]float64{"climate": 0}, map[string]float64{"climate": 50}, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, impactSimilarity(tt.a, tt.b), 1e-9)
		})
	}
}
