package leaderboard

import "time"

// Entry is one user's best score on the leaderboard. UserID never leaves the
// store; public views expose the pseudonym only.
type Entry struct {
	UserID            string             `json:"-"`
	Pseudonym         string             `json:"pseudonym"`
	CompositeScore    float64            `json:"composite_score"`
	BoundaryScores    map[string]float64 `json:"boundary_scores"`
	Grade             string             `json:"grade"`
	CampusAffiliation string             `json:"campus_affiliation"`
	SessionCount      int                `json:"session_count"`
	CreatedAt         time.Time          `json:"-"`
	UpdatedAt         time.Time          `json:"-"`
}

// SubmitResult reports what a submission did to the board.
type SubmitResult struct {
	Status      string  `json:"status"` // new_entry, improved, no_improvement
	Rank        int     `json:"rank,omitempty"`
	Improvement float64 `json:"improvement,omitempty"`
	CurrentBest float64 `json:"current_best,omitempty"`
	Pseudonym   string  `json:"pseudonym"`
}

// RankedEntry is a privacy-filtered entry in a leaderboard view.
type RankedEntry struct {
	Rank              int                `json:"rank"`
	Pseudonym         string             `json:"pseudonym"`
	CompositeScore    float64            `json:"composite_score"`
	BoundaryScores    map[string]float64 `json:"boundary_scores"`
	Grade             string             `json:"grade"`
	SubmissionDate    string             `json:"submission_date"` // date only
	SessionCount      int                `json:"session_count"`
	CampusAffiliation string             `json:"campus_affiliation"`
}

// Stats summarizes the full board, not just the entries in a view.
type Stats struct {
	TotalParticipants int                `json:"total_participants"`
	AverageScore      float64            `json:"average_score"`
	BestScore         float64            `json:"best_score"`
	MedianScore       float64            `json:"median_score"`
	BoundaryAverages  map[string]float64 `json:"boundary_averages"`
	ScoreDistribution map[string]int     `json:"score_distribution"`
}

// View is a complete leaderboard response.
type View struct {
	Leaderboard []RankedEntry `json:"leaderboard"`
	Stats       Stats         `json:"stats"`
	Filter      string        `json:"filter,omitempty"`
	LastUpdated time.Time     `json:"last_updated"`
}
