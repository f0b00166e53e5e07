package scoring

import (
	"sort"
	"strings"

	"github.com/ecobeehq/ecoscore-backend/internal/boundaries"
)

type recommendationTemplate struct {
	Action     string
	Impact     string
	Difficulty string
}

// recommendationTemplates holds candidate suggestions per boundary. The
// contextual selector picks the first template matching the user's item types,
// else the first in the list.
var recommendationTemplates = map[string][]recommendationTemplate{
	boundaries.Climate: {
		{"Switch to plant-based meals 3 days/week", "Reduce GHG by 20-30%", "easy"},
		{"Use public transport or bike for short trips", "Cut transport emissions by 50%", "medium"},
		{"Choose renewable energy provider", "Reduce home carbon footprint by 40%", "easy"},
		{"Buy second-hand clothing instead of new", "Avoid 60% of textile emissions", "easy"},
	},
	boundaries.Biosphere: {
		{"Choose MSC/FSC certified products", "Support sustainable ecosystems", "easy"},
		{"Reduce meat consumption", "Lower land use pressure by 30%", "medium"},
		{"Plant native species in garden/balcony", "Support local biodiversity", "easy"},
		{"Join campus conservation activities", "Contribute to habitat protection", "easy"},
	},
	boundaries.Biogeochemical: {
		{"Choose organic produce when possible", "Reduce nitrogen runoff by 40%", "medium"},
		{"Compost food waste", "Prevent nutrient pollution", "easy"},
		{"Use phosphate-free cleaning products", "Reduce waterway eutrophication", "easy"},
		{"Support regenerative agriculture", "Improve soil nutrient cycling", "medium"},
	},
	boundaries.Freshwater: {
		{"Take shorter showers (5 min max)", "Save 25% of water usage", "easy"},
		{"Choose drought-resistant foods", "Reduce agricultural water demand", "medium"},
		{"Fix any leaks promptly", "Prevent 10% water waste", "easy"},
		{"Collect rainwater for plants", "Reduce demand on freshwater", "medium"},
	},
	boundaries.Aerosols: {
		{"Choose natural fiber clothing", "Reduce microplastic release", "medium"},
		{"Use reusable containers", "Avoid single-use plastics", "easy"},
		{"Walk/bike instead of driving", "Reduce particulate emissions", "medium"},
		{"Support plastic-free packaging", "Reduce novel entity pollution", "easy"},
	},
}

// generateRecommendations proposes actions for the top three highest-pressure
// boundaries, skipping any at or below 40, at most five in total.
func generateRecommendations(averages map[string]float64, items []ScoredItem) []Recommendation {
	type rankedBoundary struct {
		key   string
		score float64
	}

	ranked := make([]rankedBoundary, 0, len(averages))
	for key, score := range averages {
		ranked = append(ranked, rankedBoundary{key, score})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].score != ranked[j].score {
			return ranked[i].score > ranked[j].score
		}
		return ranked[i].key < ranked[j].key
	})

	recommendations := []Recommendation{}
	for _, rb := range ranked {
		if len(recommendations) >= 3 {
			break
		}
		if rb.score <= 40 {
			continue
		}
		cfg, ok := boundaries.Get(rb.key)
		if !ok {
			continue
		}
		templates := recommendationTemplates[rb.key]
		if len(templates) == 0 {
			continue
		}
		selected := selectContextualRecommendation(templates, items)
		recommendations = append(recommendations, Recommendation{
			Action:       selected.Action,
			Impact:       selected.Impact,
			Boundary:     cfg.Name,
			CurrentScore: round1(rb.score),
			Difficulty:   selected.Difficulty,
			Category:     rb.key,
		})
	}

	if len(recommendations) > 5 {
		recommendations = recommendations[:5]
	}
	return recommendations
}

// selectContextualRecommendation picks the template most relevant to the
// user's item types, preferring food, then clothing, then transport hints.
func selectContextualRecommendation(templates []recommendationTemplate, items []ScoredItem) recommendationTemplate {
	hasType := func(wanted ...string) bool {
		for _, item := range items {
			t := strings.ToLower(item.Type)
			for _, w := range wanted {
				if t == w {
					return true
				}
			}
		}
		return false
	}

	firstMatching := func(keywords ...string) (recommendationTemplate, bool) {
		for _, tmpl := range templates {
			action := strings.ToLower(tmpl.Action)
			for _, kw := range keywords {
				if strings.Contains(action, kw) {
					return tmpl, true
				}
			}
		}
		return recommendationTemplate{}, false
	}

	if hasType("food", "meal") {
		if tmpl, ok := firstMatching("meal", "food", "meat"); ok {
			return tmpl
		}
	}
	if hasType("clothing", "outfit") {
		if tmpl, ok := firstMatching("clothing", "second-hand"); ok {
			return tmpl
		}
	}
	if hasType("transport", "mobility") {
		if tmpl, ok := firstMatching("transport", "bike"); ok {
			return tmpl
		}
	}

	return templates[0]
}
