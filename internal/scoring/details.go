package scoring

import (
	"math"

	"github.com/ecobeehq/ecoscore-backend/internal/boundaries"
)

// boundaryDetails builds the per-boundary analysis: pressure status tier,
// the top contributing items, and the improvement headroom.
func boundaryDetails(averages map[string]float64, items []ScoredItem) map[string]BoundaryDetail {
	details := make(map[string]BoundaryDetail, len(averages))

	for key, score := range averages {
		cfg, ok := boundaries.Get(key)
		if !ok {
			continue
		}

		var status, riskLevel string
		switch {
		case score <= 25:
			status, riskLevel = "Within Safe Operating Space", "Low"
		case score <= 50:
			status, riskLevel = "Approaching Boundary", "Medium"
		case score <= 75:
			status, riskLevel = "Beyond Safe Limit", "High"
		default:
			status, riskLevel = "Critical Transgression", "Critical"
		}

		contributing := []ContributingItem{}
		for _, item := range items {
			if len(contributing) >= 3 {
				break
			}
			impact, present := item.Scores[key]
			if !present || impact <= 40 {
				continue
			}
			contributing = append(contributing, ContributingItem{
				Type:     item.Type,
				Category: item.Category,
				Impact:   impact,
			})
		}

		details[key] = BoundaryDetail{
			Score:                round1(score),
			Name:                 cfg.Name,
			Status:               status,
			RiskLevel:            riskLevel,
			Description:          cfg.Description,
			Units:                cfg.Units,
			Weight:               cfg.Weight,
			SafeOperatingSpace:   cfg.SafeOperatingSpace,
			CurrentGlobalStatus:  cfg.CurrentGlobalStatus,
			ContributingItems:    contributing,
			ImprovementPotential: math.Max(0, score-20),
		}
	}

	return details
}
