// Package factors holds the static impact factor tables: raw 0-100 impact
// estimates per (domain, category) pair against each planetary boundary.
// The values are hand-tuned research estimates from LCA studies, not measured
// data, and are kept as a swappable data table (see csv.go).
package factors

import (
	"sort"

	"github.com/ecobeehq/ecoscore-backend/internal/boundaries"
)

// Entry is one factor-table row: raw per-boundary impact scores plus a
// human-readable description of the category.
type Entry struct {
	Scores      map[string]float64 `json:"scores"`
	Description string             `json:"description"`
}

// Table maps canonical domain -> category -> factor entry.
type Table map[boundaries.Domain]map[string]Entry

// Default returns the built-in factor tables.
func Default() Table {
	return defaultTables
}

// Categories returns the category keys of a domain table in sorted order.
// Matching must scan keys deterministically, so callers iterate this slice
// rather than ranging over the map.
func (t Table) Categories(domain boundaries.Domain) []string {
	entries := t[domain]
	cats := make([]string, 0, len(entries))
	for c := range entries {
		cats = append(cats, c)
	}
	sort.Strings(cats)
	return cats
}

// DomainAverage computes the per-boundary arithmetic mean over every category
// of a domain table: the "average item" of that domain. An empty table yields
// a flat neutral 50 for every boundary.
func (t Table) DomainAverage(domain boundaries.Domain) Entry {
	entries := t[domain]
	avg := Entry{
		Scores:      make(map[string]float64, len(boundaries.Keys())),
		Description: "Average " + string(domain) + " item",
	}
	for _, key := range boundaries.Keys() {
		sum, n := 0.0, 0
		for _, e := range entries {
			if v, ok := e.Scores[key]; ok {
				sum += v
				n++
			}
		}
		if n > 0 {
			avg.Scores[key] = sum / float64(n)
		} else {
			avg.Scores[key] = 50
		}
	}
	return avg
}

var defaultTables = Table{
	boundaries.DomainFood: {
		"plant-based": {
			Scores:      map[string]float64{"climate": 12, "biosphere": 18, "biogeochemical": 20, "freshwater": 25, "aerosols": 15},
			Description: "Plant-based diet with minimal processing",
		},
		"mixed": {
			Scores:      map[string]float64{"climate": 48, "biosphere": 42, "biogeochemical": 45, "freshwater": 52, "aerosols": 38},
			Description: "Balanced omnivore diet",
		},
		"meat-heavy": {
			Scores:      map[string]float64{"climate": 82, "biosphere": 78, "biogeochemical": 72, "freshwater": 68, "aerosols": 58},
			Description: "High meat consumption diet",
		},
		"snack": {
			Scores:      map[string]float64{"climate": 35, "biosphere": 32, "biogeochemical": 40, "freshwater": 38, "aerosols": 45},
			Description: "Processed snack foods",
		},
		"drink": {
			Scores:      map[string]float64{"climate": 22, "biosphere": 28, "biogeochemical": 30, "freshwater": 42, "aerosols": 25},
			Description: "Beverages including dairy and non-dairy",
		},
		"packaged": {
			Scores:      map[string]float64{"climate": 58, "biosphere": 52, "biogeochemical": 62, "freshwater": 48, "aerosols": 68},
			Description: "Heavily packaged processed foods",
		},
		"organic": {
			Scores:      map[string]float64{"climate": 18, "biosphere": 12, "biogeochemical": 15, "freshwater": 22, "aerosols": 12},
			Description: "Certified organic produce",
		},
		"local": {
			Scores:      map[string]float64{"climate": 20, "biosphere": 25, "biogeochemical": 28, "freshwater": 30, "aerosols": 20},
			Description: "Locally sourced food (< 50km)",
		},
		"seafood": {
			Scores:      map[string]float64{"climate": 42, "biosphere": 65, "biogeochemical": 35, "freshwater": 15, "aerosols": 40},
			Description: "Fish and seafood products",
		},
	},
	boundaries.DomainFashion: {
		"cotton": {
			Scores:      map[string]float64{"climate": 42, "biosphere": 38, "biogeochemical": 52, "freshwater": 68, "aerosols": 32},
			Description: "Conventional cotton textiles",
		},
		"polyester": {
			Scores:      map[string]float64{"climate": 72, "biosphere": 58, "biogeochemical": 38, "freshwater": 28, "aerosols": 78},
			Description: "Synthetic polyester fabrics",
		},
		"wool": {
			Scores:      map[string]float64{"climate": 58, "biosphere": 68, "biogeochemical": 62, "freshwater": 42, "aerosols": 38},
			Description: "Natural wool textiles",
		},
		"linen": {
			Scores:      map[string]float64{"climate": 22, "biosphere": 18, "biogeochemical": 28, "freshwater": 32, "aerosols": 18},
			Description: "Linen and hemp textiles",
		},
		"leather": {
			Scores:      map[string]float64{"climate": 78, "biosphere": 82, "biogeochemical": 68, "freshwater": 58, "aerosols": 48},
			Description: "Animal leather products",
		},
		"recycled": {
			Scores:      map[string]float64{"climate": 15, "biosphere": 22, "biogeochemical": 18, "freshwater": 22, "aerosols": 25},
			Description: "Recycled textile materials",
		},
		"synthetic": {
			Scores:      map[string]float64{"climate": 68, "biosphere": 52, "biogeochemical": 32, "freshwater": 22, "aerosols": 82},
			Description: "Various synthetic materials",
		},
		"organic-cotton": {
			Scores:      map[string]float64{"climate": 28, "biosphere": 22, "biogeochemical": 32, "freshwater": 45, "aerosols": 20},
			Description: "Organic cotton textiles",
		},
		"fast-fashion": {
			Scores:      map[string]float64{"climate": 75, "biosphere": 65, "biogeochemical": 55, "freshwater": 50, "aerosols": 80},
			Description: "Fast fashion items with short lifecycle",
		},
	},
	boundaries.DomainMobility: {
		"walk": {
			Scores:      map[string]float64{"climate": 2, "biosphere": 5, "biogeochemical": 3, "freshwater": 3, "aerosols": 2},
			Description: "Walking as primary transport",
		},
		"bike": {
			Scores:      map[string]float64{"climate": 8, "biosphere": 12, "biogeochemical": 8, "freshwater": 8, "aerosols": 6},
			Description: "Cycling including bike production",
		},
		"bus": {
			Scores:      map[string]float64{"climate": 32, "biosphere": 28, "biogeochemical": 22, "freshwater": 18, "aerosols": 38},
			Description: "Public bus transport",
		},
		"train": {
			Scores:      map[string]float64{"climate": 22, "biosphere": 18, "biogeochemical": 12, "freshwater": 12, "aerosols": 22},
			Description: "Rail transport including electric",
		},
		"car": {
			Scores:      map[string]float64{"climate": 72, "biosphere": 58, "biogeochemical": 48, "freshwater": 38, "aerosols": 78},
			Description: "Personal gasoline vehicle",
		},
		"plane": {
			Scores:      map[string]float64{"climate": 92, "biosphere": 68, "biogeochemical": 38, "freshwater": 28, "aerosols": 82},
			Description: "Air travel per km",
		},
		"electric_car": {
			Scores:      map[string]float64{"climate": 32, "biosphere": 38, "biogeochemical": 28, "freshwater": 22, "aerosols": 35},
			Description: "Electric vehicle including battery impact",
		},
		"carpool": {
			Scores:      map[string]float64{"climate": 45, "biosphere": 40, "biogeochemical": 35, "freshwater": 30, "aerosols": 50},
			Description: "Shared car transport",
		},
		"motorcycle": {
			Scores:      map[string]float64{"climate": 55, "biosphere": 45, "biogeochemical": 40, "freshwater": 35, "aerosols": 65},
			Description: "Motorcycle transport",
		},
	},
	boundaries.DomainCareer: {
		"renewable-energy": {
			Scores:      map[string]float64{"climate": 15, "biosphere": 25, "biogeochemical": 20, "freshwater": 30, "aerosols": 22},
			Description: "Renewable energy sector",
		},
		"tech": {
			Scores:      map[string]float64{"climate": 42, "biosphere": 28, "biogeochemical": 22, "freshwater": 32, "aerosols": 48},
			Description: "Technology and software",
		},
		"finance": {
			Scores:      map[string]float64{"climate": 32, "biosphere": 22, "biogeochemical": 18, "freshwater": 22, "aerosols": 28},
			Description: "Financial services",
		},
		"healthcare": {
			Scores:      map[string]float64{"climate": 38, "biosphere": 32, "biogeochemical": 42, "freshwater": 38, "aerosols": 52},
			Description: "Healthcare and medical",
		},
		"education": {
			Scores:      map[string]float64{"climate": 22, "biosphere": 18, "biogeochemical": 12, "freshwater": 18, "aerosols": 22},
			Description: "Education and research",
		},
		"manufacturing": {
			Scores:      map[string]float64{"climate": 78, "biosphere": 72, "biogeochemical": 82, "freshwater": 68, "aerosols": 88},
			Description: "Manufacturing and heavy industry",
		},
		"agriculture": {
			Scores:      map[string]float64{"climate": 52, "biosphere": 68, "biogeochemical": 78, "freshwater": 82, "aerosols": 58},
			Description: "Agriculture and farming",
		},
		"fossil-fuel": {
			Scores:      map[string]float64{"climate": 88, "biosphere": 65, "biogeochemical": 58, "freshwater": 45, "aerosols": 82},
			Description: "Fossil fuel industry",
		},
		"construction": {
			Scores:      map[string]float64{"climate": 68, "biosphere": 58, "biogeochemical": 65, "freshwater": 52, "aerosols": 72},
			Description: "Construction and building",
		},
		"consulting": {
			Scores:      map[string]float64{"climate": 35, "biosphere": 25, "biogeochemical": 20, "freshwater": 25, "aerosols": 32},
			Description: "Business consulting services",
		},
	},
	boundaries.DomainLifestyle: {
		"minimal": {
			Scores:      map[string]float64{"climate": 15, "biosphere": 20, "biogeochemical": 18, "freshwater": 22, "aerosols": 18},
			Description: "Minimalist lifestyle choices",
		},
		"average": {
			Scores:      map[string]float64{"climate": 50, "biosphere": 45, "biogeochemical": 48, "freshwater": 52, "aerosols": 50},
			Description: "Average consumption patterns",
		},
		"high-consumption": {
			Scores:      map[string]float64{"climate": 78, "biosphere": 72, "biogeochemical": 68, "freshwater": 75, "aerosols": 80},
			Description: "High consumption lifestyle",
		},
		"sustainable": {
			Scores:      map[string]float64{"climate": 25, "biosphere": 22, "biogeochemical": 28, "freshwater": 30, "aerosols": 25},
			Description: "Actively sustainable choices",
		},
	},
}
