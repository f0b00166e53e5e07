// Package boundaries holds the static planetary-boundary configuration the
// rest of the scoring engine is built on: the five tracked boundaries of the
// Stockholm Resilience Centre framework and the canonical item domains.
package boundaries

import "strings"

// Config describes one planetary boundary.
type Config struct {
	Name                string  `json:"name"`
	Weight              float64 `json:"weight"`
	SafeOperatingSpace  float64 `json:"safe_operating_space"`
	CurrentGlobalStatus float64 `json:"current_global_status"`
	Units               string  `json:"units"`
	Description         string  `json:"description"`
}

// Boundary keys. Lower scores against any boundary mean less pressure on it.
const (
	Climate        = "climate"
	Biosphere      = "biosphere"
	Biogeochemical = "biogeochemical"
	Freshwater     = "freshwater"
	Aerosols       = "aerosols"
)

var registry = map[string]Config{
	Climate: {
		Name:                "Climate Change",
		Weight:              0.25,
		SafeOperatingSpace:  350.0, // ppm CO2 equivalent
		CurrentGlobalStatus: 415.0,
		Units:               "ppm CO2eq",
		Description:         "Atmospheric CO2 concentration and radiative forcing",
	},
	Biosphere: {
		Name:                "Biosphere Integrity",
		Weight:              0.25,
		SafeOperatingSpace:  10.0, // extinctions per million species-years
		CurrentGlobalStatus: 100.0,
		Units:               "E/MSY",
		Description:         "Biodiversity loss and ecosystem function",
	},
	Biogeochemical: {
		Name:                "Biogeochemical Flows",
		Weight:              0.20,
		SafeOperatingSpace:  62.0, // Tg N/yr to ocean
		CurrentGlobalStatus: 150.0,
		Units:               "Tg N/yr",
		Description:         "Nitrogen and phosphorus cycles",
	},
	Freshwater: {
		Name:                "Freshwater Use",
		Weight:              0.15,
		SafeOperatingSpace:  4000.0, // km3/yr global consumption
		CurrentGlobalStatus: 2600.0,
		Units:               "km3/yr",
		Description:         "Global consumptive use of freshwater",
	},
	Aerosols: {
		Name:                "Atmospheric Aerosol Loading",
		Weight:              0.15,
		SafeOperatingSpace:  25.0,
		CurrentGlobalStatus: 30.0,
		Units:               "AOD",
		Description:         "Aerosols and novel chemical entities",
	},
}

// keys in stable presentation order.
var keys = []string{Climate, Biosphere, Biogeochemical, Freshwater, Aerosols}

// Registry returns the full boundary configuration table.
func Registry() map[string]Config {
	return registry
}

// Get returns the configuration for a boundary key.
func Get(key string) (Config, bool) {
	cfg, ok := registry[key]
	return cfg, ok
}

// Keys returns the boundary keys in stable order.
func Keys() []string {
	return keys
}

// IsValid reports whether key names a tracked boundary.
func IsValid(key string) bool {
	_, ok := registry[key]
	return ok
}

// Weights returns the weighting scheme keyed by boundary.
func Weights() map[string]float64 {
	w := make(map[string]float64, len(registry))
	for k, cfg := range registry {
		w[k] = cfg.Weight
	}
	return w
}

// Domain is one of the five canonical item domains a factor table exists for.
type Domain string

const (
	DomainFood      Domain = "food"
	DomainFashion   Domain = "fashion"
	DomainMobility  Domain = "mobility"
	DomainCareer    Domain = "career"
	DomainLifestyle Domain = "lifestyle"
)

var domainSynonyms = map[string]Domain{
	"meal":      DomainFood,
	"food":      DomainFood,
	"beverage":  DomainFood,
	"drink":     DomainFood,
	"outfit":    DomainFashion,
	"clothing":  DomainFashion,
	"apparel":   DomainFashion,
	"fashion":   DomainFashion,
	"transport": DomainMobility,
	"mobility":  DomainMobility,
	"travel":    DomainMobility,
	"job":       DomainCareer,
	"career":    DomainCareer,
	"work":      DomainCareer,
	"lifestyle": DomainLifestyle,
	"habit":     DomainLifestyle,
}

// DomainFor maps a free-text item type to a canonical domain. Unrecognized
// types resolve to the lifestyle domain so scoring stays total over input.
func DomainFor(itemType string) Domain {
	if d, ok := domainSynonyms[strings.ToLower(strings.TrimSpace(itemType))]; ok {
		return d
	}
	return DomainLifestyle
}

// Domains returns all canonical domains in stable order.
func Domains() []Domain {
	return []Domain{DomainFood, DomainFashion, DomainMobility, DomainCareer, DomainLifestyle}
}
