package recommend

import (
	"math"
	"sort"
)

// similarityThreshold is the minimum similarity for a graph edge.
const similarityThreshold = 0.3

type edge struct {
	actionID   string
	similarity float64
}

// buildActionGraph links every action to the others it resembles, sorted by
// descending similarity. Built once at engine construction and read-only after.
func buildActionGraph(actions map[string]Action) map[string][]edge {
	graph := make(map[string][]edge, len(actions))

	for id, action := range actions {
		var connections []edge
		for otherID, other := range actions {
			if id == otherID {
				continue
			}
			similarity := actionSimilarity(action, other)
			if similarity > similarityThreshold {
				connections = append(connections, edge{otherID, similarity})
			}
		}
		sort.Slice(connections, func(i, j int) bool {
			if connections[i].similarity != connections[j].similarity {
				return connections[i].similarity > connections[j].similarity
			}
			return connections[i].actionID < connections[j].actionID
		})
		graph[id] = connections
	}

	return graph
}

// actionSimilarity blends categorical matches, tag overlap, and impact profile
// closeness into a 0-1 score.
func actionSimilarity(a, b Action) float64 {
	similarity := 0.0

	if a.Category == b.Category {
		similarity += 0.3
	}
	if a.Difficulty == b.Difficulty {
		similarity += 0.2
	}
	if a.TimeCommitment == b.TimeCommitment {
		similarity += 0.1
	}

	common := 0
	tagSet := make(map[string]struct{}, len(a.Tags))
	for _, t := range a.Tags {
		tagSet[t] = struct{}{}
	}
	for _, t := range b.Tags {
		if _, ok := tagSet[t]; ok {
			common++
		}
	}
	maxTags := math.Max(float64(len(a.Tags)), math.Max(float64(len(b.Tags)), 1))
	similarity += float64(common) / maxTags * 0.3

	similarity += impactSimilarity(a.ImpactReduction, b.ImpactReduction) * 0.1

	return similarity
}

// impactSimilarity compares impact profiles over their shared boundaries;
// disjoint or empty profiles score zero.
func impactSimilarity(impact1, impact2 map[string]float64) float64 {
	if len(impact1) == 0 || len(impact2) == 0 {
		return 0
	}

	totalDiff, shared := 0.0, 0
	for boundary, v1 := range impact1 {
		v2, ok := impact2[boundary]
		if !ok {
			continue
		}
		totalDiff += math.Abs(v1-v2) / 100.0
		shared++
	}
	if shared == 0 {
		return 0
	}

	return 1.0 - totalDiff/float64(shared)
}
