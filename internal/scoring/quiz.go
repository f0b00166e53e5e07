package scoring

import (
	"math"
	"strconv"

	"github.com/ecobeehq/ecoscore-backend/internal/boundaries"
)

// CalculateFromQuiz derives boundary scores from quiz responses when no
// scannable items exist. Every boundary starts at a neutral 50 and known
// answers apply clamped additive adjustments. Unknown question ids or answer
// values are explicit no-ops, never errors.
func (s *Scorer) CalculateFromQuiz(responses []QuizResponse) Result {
	scores := make(map[string]float64, len(boundaries.Keys()))
	for _, key := range boundaries.Keys() {
		scores[key] = 50.0
	}

	byQuestion := make(map[string]QuizResponse, len(responses))
	for _, r := range responses {
		byQuestion[r.QuestionID] = r
	}

	if r, ok := byQuestion["food_today"]; ok {
		applyFoodAnswer(scores, r.Answer)
	}
	if r, ok := byQuestion["transport_today"]; ok {
		applyTransportAnswer(scores, r.Answer)
	}
	if r, ok := byQuestion["distance_traveled"]; ok {
		applyDistanceAnswer(scores, r.Answer)
	}
	if r, ok := byQuestion["water_usage"]; ok {
		applyWaterAnswer(scores, r.Answer)
	}
	if r, ok := byQuestion["waste_reduction"]; ok {
		applyWasteAnswer(scores, r.Choices)
	}

	composite := compositeScore(scores)

	return Result{
		Items:               []ScoredItem{},
		PerBoundaryAverages: scores,
		Composite:           round1(composite),
		Grade:               Grade(composite),
		Recommendations:     generateRecommendations(scores, nil),
		BoundaryDetails:     boundaryDetails(scores, nil),
		Methodology:         methodology("quiz_responses"),
	}
}

func applyFoodAnswer(scores map[string]float64, answer string) {
	switch answer {
	case "plant-based":
		scores[boundaries.Climate] = math.Max(15, scores[boundaries.Climate]-30)
		scores[boundaries.Biosphere] = math.Max(20, scores[boundaries.Biosphere]-25)
		scores[boundaries.Biogeochemical] = math.Max(25, scores[boundaries.Biogeochemical]-20)
	case "mixed":
		scores[boundaries.Climate] = math.Max(25, scores[boundaries.Climate]-15)
		scores[boundaries.Biosphere] = math.Max(30, scores[boundaries.Biosphere]-10)
	case "meat-heavy":
		scores[boundaries.Climate] = math.Min(85, scores[boundaries.Climate]+25)
		scores[boundaries.Biosphere] = math.Min(80, scores[boundaries.Biosphere]+20)
		scores[boundaries.Biogeochemical] = math.Min(85, scores[boundaries.Biogeochemical]+25)
	case "packaged":
		scores[boundaries.Climate] = math.Min(75, scores[boundaries.Climate]+15)
		scores[boundaries.Aerosols] = math.Min(75, scores[boundaries.Aerosols]+20)
	}
}

func applyTransportAnswer(scores map[string]float64, answer string) {
	switch answer {
	case "walk", "bike":
		scores[boundaries.Climate] = math.Max(10, scores[boundaries.Climate]-35)
		scores[boundaries.Aerosols] = math.Max(15, scores[boundaries.Aerosols]-30)
	case "public":
		scores[boundaries.Climate] = math.Max(25, scores[boundaries.Climate]-15)
		scores[boundaries.Aerosols] = math.Max(30, scores[boundaries.Aerosols]-15)
	case "electric":
		scores[boundaries.Climate] = math.Max(30, scores[boundaries.Climate]-10)
	case "car":
		scores[boundaries.Climate] = math.Min(85, scores[boundaries.Climate]+30)
		scores[boundaries.Aerosols] = math.Min(80, scores[boundaries.Aerosols]+25)
	}
}

func applyDistanceAnswer(scores map[string]float64, answer string) {
	switch answer {
	case "under_5km":
		// minimal additional impact
	case "5_20km":
		scores[boundaries.Climate] = math.Min(80, scores[boundaries.Climate]+10)
	case "20_50km":
		scores[boundaries.Climate] = math.Min(85, scores[boundaries.Climate]+20)
	case "over_50km":
		scores[boundaries.Climate] = math.Min(90, scores[boundaries.Climate]+30)
	}
}

// applyWaterAnswer scales freshwater pressure by a 1 (very conscious) to
// 5 (not conscious) self-rating. Unparseable answers are ignored.
func applyWaterAnswer(scores map[string]float64, answer string) {
	rating, err := strconv.Atoi(answer)
	if err != nil {
		return
	}
	switch {
	case rating <= 2:
		scores[boundaries.Freshwater] = math.Max(20, scores[boundaries.Freshwater]-25)
	case rating == 3:
		scores[boundaries.Freshwater] = math.Max(35, scores[boundaries.Freshwater]-10)
	case rating >= 4:
		scores[boundaries.Freshwater] = math.Min(75, scores[boundaries.Freshwater]+20)
	}
}

func applyWasteAnswer(scores map[string]float64, choices []string) {
	reduction := float64(len(choices)) * 5 // 5 points per listed action
	scores[boundaries.Aerosols] = math.Max(20, scores[boundaries.Aerosols]-reduction)
	scores[boundaries.Biogeochemical] = math.Max(25, scores[boundaries.Biogeochemical]-reduction)
}
