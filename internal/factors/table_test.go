package factors

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecobeehq/ecoscore-backend/internal/boundaries"
)

func TestDefaultTablesCoverAllDomains(t *testing.T) {
	tables := Default()
	for _, domain := range boundaries.Domains() {
		entries, ok := tables[domain]
		require.True(t, ok, "missing table for domain %s", domain)
		require.NotEmpty(t, entries)

		for category, entry := range entries {
			for key, score := range entry.Scores {
				assert.True(t, boundaries.IsValid(key), "%s/%s has unknown boundary %s", domain, category, key)
				assert.GreaterOrEqual(t, score, 0.0)
				assert.LessOrEqual(t, score, 100.0)
			}
		}
	}
}

func TestCategoriesSorted(t *testing.T) {
	tables := Default()
	for _, domain := range boundaries.Domains() {
		cats := tables.Categories(domain)
		assert.True(t, sort.StringsAreSorted(cats), "categories for %s not sorted", domain)
		assert.Len(t, cats, len(tables[domain]))
	}
}

func TestDomainAverage(t *testing.T) {
	tables := Table{
		boundaries.DomainFood: {
			"a": {Scores: map[string]float64{boundaries.Climate: 10}},
			"b": {Scores: map[string]float64{boundaries.Climate: 30}},
		},
	}

	avg := tables.DomainAverage(boundaries.DomainFood)
	assert.InDelta(t, 20.0, avg.Scores[boundaries.Climate], 1e-9)
	// Boundaries absent from every entry default to neutral.
	assert.InDelta(t, 50.0, avg.Scores[boundaries.Freshwater], 1e-9)
}

func TestDomainAverageEmptyTable(t *testing.T) {
	avg := Table{}.DomainAverage(boundaries.DomainMobility)
	for _, key := range boundaries.Keys() {
		assert.InDelta(t, 50.0, avg.Scores[key], 1e-9)
	}
}
