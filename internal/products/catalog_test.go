package products

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecobeehq/ecoscore-backend/internal/boundaries"
)

func TestLookup(t *testing.T) {
	c := NewCatalog()

	p, ok := c.Lookup("1234567890123")
	require.True(t, ok)
	assert.Equal(t, "Organic Quinoa Salad", p.Name)
	assert.Equal(t, "food", p.Type)

	_, ok = c.Lookup("0000000000000")
	assert.False(t, ok)
}

func TestAdd(t *testing.T) {
	c := NewCatalog()

	c.Add(Product{Barcode: "9999999999999", Name: "Bamboo Toothbrush", Type: "household"})

	p, ok := c.Lookup("9999999999999")
	require.True(t, ok)
	assert.Equal(t, "Bamboo Toothbrush", p.Name)
}

func TestSearch(t *testing.T) {
	c := NewCatalog()

	results := c.Search("organic", "")
	require.Len(t, results, 2)
	// Sorted by barcode for stable output.
	assert.Equal(t, "Organic Quinoa Salad", results[0].Name)
	assert.Equal(t, "Organic Cotton T-Shirt", results[1].Name)

	foodOnly := c.Search("organic", "food")
	require.Len(t, foodOnly, 1)
	assert.Equal(t, "Organic Quinoa Salad", foodOnly[0].Name)

	assert.Empty(t, c.Search("plutonium", ""))
}

func TestAlternativesForBeefBurger(t *testing.T) {
	c := NewCatalog()

	alternatives, ok := c.Alternatives("2345678901234", 5)
	require.True(t, ok)
	require.Len(t, alternatives, 2)

	// Equal similarity ties break on barcode.
	assert.Equal(t, "1234567890123", alternatives[0].Barcode)
	assert.Equal(t, "3456789012345", alternatives[1].Barcode)

	quinoa := alternatives[0]
	assert.InDelta(t, 17.0, quinoa.SustainabilityScore, 1e-9)
	assert.Equal(t, "better for biodiversity", quinoa.WhyBetter)

	latte := alternatives[1]
	assert.InDelta(t, 27.0, latte.SustainabilityScore, 1e-9)
	assert.Equal(t, "lower carbon footprint", latte.WhyBetter)

	for _, alt := range alternatives {
		assert.NotEqual(t, "2345678901234", alt.Barcode)
	}
}

func TestAlternativesRespectTypeAndScore(t *testing.T) {
	c := NewCatalog()

	// The quinoa salad has the best mean score of any food, so nothing beats it.
	alternatives, ok := c.Alternatives("1234567890123", 5)
	require.True(t, ok)
	assert.Empty(t, alternatives)

	// Clothing alternatives never include food products.
	alternatives, ok = c.Alternatives("5678901234567", 5)
	require.True(t, ok)
	for _, alt := range alternatives {
		p, found := c.Lookup(alt.Barcode)
		require.True(t, found)
		assert.Equal(t, "clothing", p.Type)
	}
}

func TestAlternativesSimilarityFromSharedMaterials(t *testing.T) {
	c := NewCatalog()

	// The recycled wool sweater shares the "natural" material with the cotton
	// t-shirt: 0.3 * (1/3 Jaccard) = 0.1.
	alternatives, ok := c.Alternatives("4567890123456", 5)
	require.True(t, ok)
	require.Len(t, alternatives, 1)
	assert.Equal(t, "6789012345678", alternatives[0].Barcode)
	assert.InDelta(t, 0.1, alternatives[0].Similarity, 1e-9)
}

func TestAlternativesUnknownBarcode(t *testing.T) {
	c := NewCatalog()

	_, ok := c.Alternatives("0000000000000", 5)
	assert.False(t, ok)
}

func TestAlternativesLimit(t *testing.T) {
	c := NewCatalog()

	c.Add(Product{
		Barcode: "7777777777777", Name: "Lentil Bowl", Brand: "EcoFresh",
		Category: "plant-based", Type: "food", Materials: []string{"plant-based"},
		Sustainability: map[string]float64{boundaries.Climate: 18, boundaries.Biosphere: 12},
	})

	alternatives, ok := c.Alternatives("2345678901234", 1)
	require.True(t, ok)
	assert.Len(t, alternatives, 1)
}

func TestImprovementReason(t *testing.T) {
	assert.Equal(t, "uses less water",
		improvementReason(map[string]float64{boundaries.Freshwater: 5, boundaries.Climate: 50}))
	assert.Equal(t, "Better overall environmental impact", improvementReason(nil))
}

func TestJaccard(t *testing.T) {
	tests := []struct {
		name string
		a, b []string
		want float64
	}{
		{"identical", []string{"x", "y"}, []string{"x", "y"}, 1.0},
		{"half overlap", []string{"x", "y"}, []string{"y", "z"}, 1.0 / 3.0},
		{"disjoint", []string{"x"}, []string{"y"}, 0.0},
		{"one empty", nil, []string{"x"}, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, jaccard(tt.a, tt.b), 1e-9)
		})
	}
}
