package generator

import (
	"testing"

	"github.com/broadband-analytics/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestLookup(t *testing.T) {
	table := map[string]int{"a": 1}

	assert.Equal(t, 1, Lookup(table, "a", 42))
	assert.Equal(t, 42, Lookup(table, "b", 42))
	assert.Equal(t, 7, Lookup[string, int](nil, "a", 7))
}

func TestRegionValue_FallsBackToDefaultRegion(t *testing.T) {
	table := map[domain.Region]float64{
		domain.RegionSouth: 0.3,
		DefaultRegion:      0.5,
	}

	assert.Equal(t, 0.3, regionValue(table, domain.RegionSouth))
	assert.Equal(t, 0.5, regionValue(table, domain.Region("Atlantis")))
}

func TestNormalize(t *testing.T) {
	assert.InDeltaSlice(t, []float64{0.25, 0.75}, normalize([]float64{1, 3}), 1e-12)
	assert.InDeltaSlice(t, []float64{0.5, 0.5}, normalize([]float64{0, 0}), 1e-12)
}

func TestClampAndRound(t *testing.T) {
	assert.Equal(t, 0.95, clamp(1.2, 0, 0.95))
	assert.Equal(t, 0.01, clamp(-1, 0.01, 0.95))
	assert.Equal(t, 0.5, clamp(0.5, 0, 1))

	assert.Equal(t, 3, roundInt(10, 0.25))
	assert.Equal(t, 7.3, round1(7.26))
}
