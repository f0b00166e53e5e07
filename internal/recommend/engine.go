package recommend

import (
	"log/slog"
	"math"
	"sort"
	"strings"
)

// UserContext carries recommendation preferences. Zero values fall back to
// the defaults applied in normalize.
type UserContext struct {
	DifficultyPreference string `json:"difficulty_preference"`
	TimeAvailability     string `json:"time_availability"`
	BudgetPreference     string `json:"budget_preference"`
	SocialPreference     *bool  `json:"social_preference"`
	IsStudent            *bool  `json:"is_student"`
}

type resolvedContext struct {
	difficulty string
	time       string
	budget     string
	social     bool
	student    bool
}

func (c UserContext) normalize() resolvedContext {
	r := resolvedContext{
		difficulty: c.DifficultyPreference,
		time:       c.TimeAvailability,
		budget:     c.BudgetPreference,
		social:     true,
		student:    true,
	}
	if r.difficulty == "" {
		r.difficulty = "easy"
	}
	if r.time == "" {
		r.time = "daily"
	}
	if r.budget == "" {
		r.budget = "free"
	}
	if c.SocialPreference != nil {
		r.social = *c.SocialPreference
	}
	if c.IsStudent != nil {
		r.student = *c.IsStudent
	}
	return r
}

// ScoredAction is one ranked recommendation with its supporting resources.
type ScoredAction struct {
	Action
	RecommendationScore float64    `json:"recommendation_score"`
	RelatedResources    []Resource `json:"related_resources"`
}

// ActionDetails is the full view of one action, including graph neighbors.
type ActionDetails struct {
	Action
	RelatedResources []Resource `json:"related_resources"`
	SimilarActions   []string   `json:"similar_actions"`
}

// Engine ranks the action catalog against a user's boundary pressure profile.
// The catalog and similarity graph are immutable after construction, so the
// engine is safe for concurrent use.
type Engine struct {
	actions   map[string]Action
	resources map[string]Resource
	graph     map[string][]edge
	logger    *slog.Logger
}

// NewEngine builds an engine over the built-in action and resource catalogs.
func NewEngine(logger *slog.Logger) *Engine {
	actions := defaultActions()
	e := &Engine{
		actions:   actions,
		resources: defaultResources(),
		graph:     buildActionGraph(actions),
		logger:    logger,
	}
	e.logger.Info("recommendation engine ready",
		"actions", len(e.actions),
		"resources", len(e.resources))
	return e
}

var costRank = map[string]int{"free": 3, "low": 2, "medium": 1, "high": 0}

// Personalized ranks actions against the user's worst boundaries and context
// preferences, returning at most limit entries with positive relevance.
func (e *Engine) Personalized(boundaryScores map[string]float64, ctx UserContext, limit int) []ScoredAction {
	if limit <= 0 {
		limit = 5
	}
	resolved := ctx.normalize()
	priorities := priorityBoundaries(boundaryScores, 3)

	var results []ScoredAction
	for id, action := range e.actions {
		score := e.actionScore(action, priorities, resolved)
		if score <= 0 {
			continue
		}
		results = append(results, ScoredAction{
			Action:              action,
			RecommendationScore: math.Round(score*100) / 100,
			RelatedResources:    e.relatedResources(id),
		})
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].RecommendationScore != results[j].RecommendationScore {
			return results[i].RecommendationScore > results[j].RecommendationScore
		}
		return results[i].ID < results[j].ID
	})

	if len(results) > limit {
		results = results[:limit]
	}
	return results
}

type boundaryPressure struct {
	key   string
	score float64
}

func priorityBoundaries(scores map[string]float64, n int) []boundaryPressure {
	ranked := make([]boundaryPressure, 0, len(scores))
	for key, score := range scores {
		ranked = append(ranked, boundaryPressure{key, score})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].score != ranked[j].score {
			return ranked[i].score > ranked[j].score
		}
		return ranked[i].key < ranked[j].key
	})
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// actionScore combines impact relevance against the priority boundaries with
// preference bonuses for difficulty, time, budget, social fit, and campus ties.
func (e *Engine) actionScore(action Action, priorities []boundaryPressure, ctx resolvedContext) float64 {
	score := 0.0

	for _, p := range priorities {
		if impact, ok := action.ImpactReduction[p.key]; ok {
			score += (p.score / 100.0) * (impact / 100.0) * 10
		}
	}

	if action.Difficulty == ctx.difficulty {
		score += 2
	} else if action.Difficulty == "easy" && ctx.difficulty != "hard" {
		score += 1
	}

	if action.TimeCommitment == ctx.time {
		score += 1
	}

	if costRank[action.Cost] >= costRank[ctx.budget] {
		score += 1
	}

	if action.SocialAspect == ctx.social {
		score += 0.5
	}

	if action.CampusSpecific && ctx.student {
		score += 1
	}

	return score
}

func (e *Engine) relatedResources(actionID string) []Resource {
	var related []Resource
	for _, resource := range e.resources {
		for _, id := range resource.RelatedActions {
			if id == actionID {
				related = append(related, resource)
				break
			}
		}
	}
	sort.Slice(related, func(i, j int) bool { return related[i].ID < related[j].ID })
	return related
}

// Details returns the full view of one action, or false if the id is unknown.
func (e *Engine) Details(actionID string) (ActionDetails, bool) {
	action, ok := e.actions[actionID]
	if !ok {
		return ActionDetails{}, false
	}

	var similar []string
	for _, conn := range e.graph[actionID] {
		if len(similar) >= 3 {
			break
		}
		similar = append(similar, e.actions[conn.actionID].Name)
	}

	return ActionDetails{
		Action:           action,
		RelatedResources: e.relatedResources(actionID),
		SimilarActions:   similar,
	}, true
}

// Resources lists every campus and local resource with the names of the
// actions it supports.
func (e *Engine) Resources() []Resource {
	resources := make([]Resource, 0, len(e.resources))
	for _, r := range e.resources {
		resources = append(resources, r)
	}
	sort.Slice(resources, func(i, j int) bool { return resources[i].ID < resources[j].ID })
	return resources
}

// ActionsByCategory lists the actions in one category, sorted by id.
func (e *Engine) ActionsByCategory(category string) []Action {
	var actions []Action
	for _, action := range e.actions {
		if strings.EqualFold(action.Category, category) {
			actions = append(actions, action)
		}
	}
	sort.Slice(actions, func(i, j int) bool { return actions[i].ID < actions[j].ID })
	return actions
}
