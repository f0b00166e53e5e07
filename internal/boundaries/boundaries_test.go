package boundaries

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeightsSumToOne(t *testing.T) {
	total := 0.0
	for _, cfg := range Registry() {
		total += cfg.Weight
	}
	assert.InDelta(t, 1.0, total, 1e-9)
}

func TestRegistryComplete(t *testing.T) {
	require.Len(t, Keys(), 5)
	for _, key := range Keys() {
		cfg, ok := Get(key)
		require.True(t, ok, "missing config for %s", key)
		assert.NotEmpty(t, cfg.Name)
		assert.NotEmpty(t, cfg.Units)
		assert.Greater(t, cfg.Weight, 0.0)
		assert.Greater(t, cfg.SafeOperatingSpace, 0.0)
		assert.Greater(t, cfg.CurrentGlobalStatus, 0.0)
	}
}

func TestIsValid(t *testing.T) {
	assert.True(t, IsValid(Climate))
	assert.True(t, IsValid(Aerosols))
	assert.False(t, IsValid("ozone"))
	assert.False(t, IsValid(""))
}

func TestDomainFor(t *testing.T) {
	tests := []struct {
		name     string
		itemType string
		want     Domain
	}{
		{"meal synonym", "meal", DomainFood},
		{"beverage synonym", "beverage", DomainFood},
		{"clothing synonym", "clothing", DomainFashion},
		{"outfit synonym", "outfit", DomainFashion},
		{"transport synonym", "transport", DomainMobility},
		{"travel synonym", "travel", DomainMobility},
		{"job synonym", "job", DomainCareer},
		{"habit synonym", "habit", DomainLifestyle},
		{"mixed case", "Clothing", DomainFashion},
		{"surrounding whitespace", "  food  ", DomainFood},
		{"unknown type falls back to lifestyle", "spaceship", DomainLifestyle},
		{"empty type falls back to lifestyle", "", DomainLifestyle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DomainFor(tt.itemType))
		})
	}
}
