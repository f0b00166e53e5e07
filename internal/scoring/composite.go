package scoring

import (
	"math"

	"github.com/ecobeehq/ecoscore-backend/internal/boundaries"
)

const (
	frameworkName    = "Stockholm Resilience Centre Planetary Boundaries"
	frameworkVersion = "2.0"
)

// CalculateEcoScore scores every item, averages per boundary, and aggregates
// the weighted composite, grade, recommendations, and boundary detail report.
func (s *Scorer) CalculateEcoScore(items []Item) Result {
	if len(items) == 0 {
		return s.defaultResult()
	}

	scoredItems := make([]ScoredItem, 0, len(items))
	collected := make(map[string][]float64, len(boundaries.Keys()))

	for _, item := range items {
		scored := s.ScoreItem(item)
		scoredItems = append(scoredItems, scored)
		for _, key := range boundaries.Keys() {
			if v, ok := scored.Scores[key]; ok {
				collected[key] = append(collected[key], v)
			}
		}
	}

	averages := make(map[string]float64, len(boundaries.Keys()))
	for _, key := range boundaries.Keys() {
		scores := collected[key]
		if len(scores) == 0 {
			averages[key] = 50.0
			continue
		}
		sum := 0.0
		for _, v := range scores {
			sum += v
		}
		averages[key] = sum / float64(len(scores))
	}

	composite := compositeScore(averages)

	return Result{
		Items:               scoredItems,
		PerBoundaryAverages: averages,
		Composite:           round1(composite),
		Grade:               Grade(composite),
		Recommendations:     generateRecommendations(averages, scoredItems),
		BoundaryDetails:     boundaryDetails(averages, scoredItems),
		Methodology:         methodology(""),
	}
}

// compositeScore computes the weight-normalized composite over the boundaries
// actually present, so partial coverage still yields a valid 0-100 value.
func compositeScore(averages map[string]float64) float64 {
	composite, totalWeight := 0.0, 0.0
	for key, cfg := range boundaries.Registry() {
		if avg, ok := averages[key]; ok {
			composite += avg * cfg.Weight
			totalWeight += cfg.Weight
		}
	}
	if totalWeight == 0 {
		return 50.0
	}
	return composite / totalWeight
}

// defaultResult is the all-neutral outcome when there is nothing to score.
func (s *Scorer) defaultResult() Result {
	averages := make(map[string]float64, len(boundaries.Keys()))
	for _, key := range boundaries.Keys() {
		averages[key] = 50.0
	}

	return Result{
		Items:               []ScoredItem{},
		PerBoundaryAverages: averages,
		Composite:           50.0,
		Grade:               "C",
		Recommendations:     generateRecommendations(averages, nil),
		BoundaryDetails:     boundaryDetails(averages, nil),
		Methodology:         methodology(""),
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func methodology(basedOn string) Methodology {
	return Methodology{
		Framework:          frameworkName,
		Version:            frameworkVersion,
		BoundariesIncluded: boundaries.Keys(),
		WeightingScheme:    boundaries.Weights(),
		BasedOn:            basedOn,
	}
}
