package products

import (
	"math"
	"sort"
	"strings"
	"sync"

	"github.com/ecobeehq/ecoscore-backend/internal/boundaries"
)

// Product is one catalog entry keyed by barcode. Sustainability maps boundary
// keys to raw 0-100 pressure scores, lower being better.
type Product struct {
	Barcode        string             `json:"barcode"`
	Name           string             `json:"name"`
	Brand          string             `json:"brand"`
	Category       string             `json:"category"`
	Type           string             `json:"type"`
	Materials      []string           `json:"materials"`
	Sustainability map[string]float64 `json:"sustainability"`
	Certifications []string           `json:"certifications"`
	Packaging      string             `json:"packaging"`
}

// Alternative is a more sustainable swap for a looked-up product.
type Alternative struct {
	Barcode             string   `json:"barcode"`
	Name                string   `json:"name"`
	Brand               string   `json:"brand"`
	SustainabilityScore float64  `json:"sustainability_score"`
	Similarity          float64  `json:"similarity"`
	WhyBetter           string   `json:"why_better"`
	Certifications      []string `json:"certifications"`
}

// Catalog holds the barcode database. The seed set ships in the binary;
// Add can extend it at runtime.
type Catalog struct {
	mu       sync.RWMutex
	products map[string]Product
}

// NewCatalog returns a catalog seeded with the built-in products.
func NewCatalog() *Catalog {
	return &Catalog{products: seedProducts()}
}

// Lookup returns the product for a barcode.
func (c *Catalog) Lookup(barcode string) (Product, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	p, ok := c.products[barcode]
	return p, ok
}

// Add inserts or replaces a product.
func (c *Catalog) Add(p Product) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.products[p.Barcode] = p
}

// Search matches query against name, brand, category, and materials,
// optionally restricted to one product type.
func (c *Catalog) Search(query, productType string) []Product {
	c.mu.RLock()
	defer c.mu.RUnlock()

	q := strings.ToLower(query)
	var results []Product
	for _, p := range c.products {
		if productType != "" && p.Type != productType {
			continue
		}
		searchable := strings.ToLower(strings.Join(append(
			[]string{p.Name, p.Brand, p.Category}, p.Materials...), " "))
		if strings.Contains(searchable, q) {
			results = append(results, p)
		}
	}

	sort.Slice(results, func(i, j int) bool { return results[i].Barcode < results[j].Barcode })
	return results
}

// Alternatives finds same-type products with a strictly better mean
// sustainability score, ranked by similarity to the original.
func (c *Catalog) Alternatives(barcode string, limit int) ([]Alternative, bool) {
	if limit <= 0 {
		limit = 5
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	base, ok := c.products[barcode]
	if !ok {
		return nil, false
	}
	baseScore := meanScore(base.Sustainability)

	var alternatives []Alternative
	for otherBarcode, other := range c.products {
		if otherBarcode == barcode || other.Type != base.Type {
			continue
		}
		otherScore := meanScore(other.Sustainability)
		if otherScore >= baseScore {
			continue
		}
		alternatives = append(alternatives, Alternative{
			Barcode:             otherBarcode,
			Name:                other.Name,
			Brand:               other.Brand,
			SustainabilityScore: round1(otherScore),
			Similarity:          round2(similarity(base, other)),
			WhyBetter:           improvementReason(other.Sustainability),
			Certifications:      other.Certifications,
		})
	}

	sort.Slice(alternatives, func(i, j int) bool {
		if alternatives[i].Similarity != alternatives[j].Similarity {
			return alternatives[i].Similarity > alternatives[j].Similarity
		}
		return alternatives[i].Barcode < alternatives[j].Barcode
	})
	if len(alternatives) > limit {
		alternatives = alternatives[:limit]
	}
	return alternatives, true
}

// similarity weighs category, material overlap, brand, and certification
// overlap into a 0-1 score.
func similarity(p1, p2 Product) float64 {
	s := 0.0
	if p1.Category == p2.Category {
		s += 0.4
	}
	s += 0.3 * jaccard(p1.Materials, p2.Materials)
	if p1.Brand == p2.Brand {
		s += 0.2
	}
	s += 0.1 * jaccard(p1.Certifications, p2.Certifications)

	if s > 1 {
		s = 1
	}
	return s
}

func jaccard(a, b []string) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	set := make(map[string]struct{}, len(a))
	for _, v := range a {
		set[v] = struct{}{}
	}
	intersection := 0
	union := len(set)
	for _, v := range b {
		if _, ok := set[v]; ok {
			intersection++
		} else {
			union++
		}
	}
	return float64(intersection) / float64(union)
}

var improvementReasons = map[string]string{
	boundaries.Climate:        "lower carbon footprint",
	boundaries.Biosphere:      "better for biodiversity",
	boundaries.Biogeochemical: "reduced chemical impact",
	boundaries.Freshwater:     "uses less water",
	boundaries.Aerosols:       "less pollution",
}

// improvementReason names the alternative's strongest boundary. Ties break
// on the boundary key for a stable answer.
func improvementReason(sustainability map[string]float64) string {
	if len(sustainability) == 0 {
		return "Better overall environmental impact"
	}

	bestKey, bestScore := "", 0.0
	for key, score := range sustainability {
		if bestKey == "" || score < bestScore || (score == bestScore && key < bestKey) {
			bestKey, bestScore = key, score
		}
	}

	if reason, ok := improvementReasons[bestKey]; ok {
		return reason
	}
	return "better environmental performance"
}

func meanScore(scores map[string]float64) float64 {
	if len(scores) == 0 {
		return 50
	}
	sum := 0.0
	for _, v := range scores {
		sum += v
	}
	return sum / float64(len(scores))
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }
func round2(v float64) float64 { return math.Round(v*100) / 100 }
