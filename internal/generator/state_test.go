package generator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStates_SchemaAndConsistency(t *testing.T) {
	engine := NewEngine(nil, nil)

	for seed := uint64(1); seed <= 5; seed++ {
		states := engine.States(NewRand(seed))
		require.Len(t, states, 30)

		for i, s := range states {
			assert.Equal(t, engine.Catalog().States()[i], s.StateName)
			assert.Equal(t, engine.Catalog().RegionOf(s.StateName), s.Region)
			assert.Equal(t, engine.Catalog().PopulationOf(s.StateName), s.Population)

			assert.GreaterOrEqual(t, s.BroadbandPenetration, 0.0)
			assert.LessOrEqual(t, s.BroadbandPenetration, 0.95)
			assert.Equal(t, int(math.Round(float64(s.Population)*s.BroadbandPenetration)), s.Subscribers)
			assert.GreaterOrEqual(t, s.UrbanPenetration, s.BroadbandPenetration)
			assert.LessOrEqual(t, s.UrbanPenetration, math.Max(0.85, s.BroadbandPenetration))

			assert.GreaterOrEqual(t, s.FixedBroadbandUsage, s.MobileDataUsage*1.5)
			assert.LessOrEqual(t, s.FixedBroadbandUsage, s.MobileDataUsage*2.5)
		}
	}
}

func TestStates_PenetrationWithinRegionBand(t *testing.T) {
	engine := NewEngine(nil, nil)
	states := engine.States(NewRand(11))

	for _, s := range states {
		band := engine.Params().State.PenetrationBands[s.Region]
		assert.GreaterOrEqual(t, s.BroadbandPenetration, band.Min, s.StateName)
		assert.LessOrEqual(t, s.BroadbandPenetration, band.Max, s.StateName)

		usage := engine.Params().State.MobileUsageBands[s.Region]
		assert.GreaterOrEqual(t, s.MobileDataUsage, usage.Min, s.StateName)
		assert.LessOrEqual(t, s.MobileDataUsage, usage.Max, s.StateName)
	}
}

func TestStates_SeedDeterminism(t *testing.T) {
	engine := NewEngine(nil, nil)

	first := engine.States(NewRand(2024))
	second := engine.States(NewRand(2024))

	assert.Equal(t, first, second)
}

func TestStates_UnseededCallsDiffer(t *testing.T) {
	engine := NewEngine(nil, nil)

	first := engine.States(NewRandomRand())
	second := engine.States(NewRandomRand())

	differs := false
	for i := range first {
		if first[i].BroadbandPenetration != second[i].BroadbandPenetration {
			differs = true
			break
		}
	}
	assert.True(t, differs)
}

func TestStates_UnknownStateUsesDefaults(t *testing.T) {
	catalog := NewCatalog([]string{"Atlantis"}, nil, nil)
	engine := NewEngine(catalog, nil)

	states := engine.States(NewRand(3))
	require.Len(t, states, 1)

	s := states[0]
	assert.Equal(t, DefaultRegion, s.Region)
	assert.Equal(t, DefaultPopulation, s.Population)
	band := engine.Params().State.PenetrationBands[DefaultRegion]
	assert.GreaterOrEqual(t, s.BroadbandPenetration, band.Min)
	assert.LessOrEqual(t, s.BroadbandPenetration, band.Max)
}
