package scoring

import "github.com/ecobeehq/ecoscore-backend/internal/boundaries"

// Item is one thing to score: a scanned product, a quiz-derived choice, or a
// free-form entry. Type and category are free text; the scorer resolves them
// through the synonym table and fallback match chain.
type Item struct {
	Type      string   `json:"type"`
	Category  string   `json:"category"`
	Materials []string `json:"materials,omitempty"`
	Barcode   string   `json:"barcode,omitempty"`
}

// ScoreDetails records how an item was matched and scored.
type ScoreDetails struct {
	Domain           boundaries.Domain  `json:"factor_table_used"`
	CategoryMatched  string             `json:"category_matched"`
	RawScores        map[string]float64 `json:"raw_scores"`
	NormalizedScores map[string]float64 `json:"normalized_scores"`
	Description      string             `json:"description"`
}

// ScoredItem is the input item plus one normalized 0-100 transgression score
// per configured boundary. Every boundary in the registry appears in Scores.
type ScoredItem struct {
	Item
	Scores  map[string]float64 `json:"scores"`
	Details ScoreDetails       `json:"ecoscore_details"`
}

// Recommendation is one boundary-targeted suggestion in a scoring result.
type Recommendation struct {
	Action       string  `json:"action"`
	Impact       string  `json:"impact"`
	Boundary     string  `json:"boundary"`
	CurrentScore float64 `json:"current_score"`
	Difficulty   string  `json:"difficulty"`
	Category     string  `json:"category"`
}

// ContributingItem identifies an item pushing a boundary's average up.
type ContributingItem struct {
	Type     string  `json:"type"`
	Category string  `json:"category"`
	Impact   float64 `json:"impact"`
}

// BoundaryDetail is the per-boundary analysis attached to a result.
type BoundaryDetail struct {
	Score                float64            `json:"score"`
	Name                 string             `json:"name"`
	Status               string             `json:"status"`
	RiskLevel            string             `json:"risk_level"`
	Description          string             `json:"description"`
	Units                string             `json:"units"`
	Weight               float64            `json:"weight"`
	SafeOperatingSpace   float64            `json:"safe_operating_space"`
	CurrentGlobalStatus  float64            `json:"current_global_status"`
	ContributingItems    []ContributingItem `json:"contributing_items"`
	ImprovementPotential float64            `json:"improvement_potential"`
}

// Methodology documents the framework behind a result.
type Methodology struct {
	Framework          string             `json:"framework"`
	Version            string             `json:"version"`
	BoundariesIncluded []string           `json:"boundaries_included"`
	WeightingScheme    map[string]float64 `json:"weighting_scheme"`
	BasedOn            string             `json:"based_on,omitempty"`
}

// Result is a complete scoring outcome. It is computed fresh on every call
// and never mutated afterward.
type Result struct {
	Items               []ScoredItem              `json:"items"`
	PerBoundaryAverages map[string]float64        `json:"per_boundary_averages"`
	Composite           float64                   `json:"composite"`
	Grade               string                    `json:"grade"`
	Recommendations     []Recommendation          `json:"recommendations"`
	BoundaryDetails     map[string]BoundaryDetail `json:"boundary_details"`
	Methodology         Methodology               `json:"methodology"`
}

// QuizResponse is one validated quiz answer. Choices carries list-valued
// answers (e.g. waste-reduction actions); Answer carries everything else.
type QuizResponse struct {
	QuestionID string   `json:"question_id" binding:"required"`
	Answer     string   `json:"answer"`
	Choices    []string `json:"choices,omitempty"`
}
