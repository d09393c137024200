package generator

import (
	"testing"

	"github.com/broadband-analytics/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStateCode(t *testing.T) {
	tests := []struct {
		name     string
		expected string
	}{
		{"Tamil Nadu", "TN"},
		{"Kerala", "Ke"},
		{"Jammu and Kashmir", "JaK"},
		{"Goa", "Go"},
		{"X", "X"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, StateCode(tt.name))
		})
	}
}

func TestPrioritize(t *testing.T) {
	params := DefaultParams().Priority

	states := []domain.StateRecord{
		{StateName: "Big Low", Region: domain.RegionNortheast, Population: 200_000_000, BroadbandPenetration: 0},
		{StateName: "Small High", Region: domain.RegionSouth, Population: 0, BroadbandPenetration: 0.9},
		{StateName: "Middle", Region: domain.RegionNorth, Population: 50_000_000, BroadbandPenetration: 0.25},
	}

	records := Prioritize(states, params)
	require.Len(t, records, 3)

	// 0.4*1 + 0.4*1 + 0.2*0.95 = 0.99
	assert.Equal(t, 9.9, records[0].PotentialImpact)
	// 0.4*0 + 0.4*0 + 0.2*0.7 = 0.14
	assert.Equal(t, 1.4, records[1].PotentialImpact)
	// 0.4*0.5 + 0.4*0.5 + 0.2*0.8 = 0.56
	assert.Equal(t, 5.6, records[2].PotentialImpact)

	assert.Equal(t, "BL", records[0].StateCode)
	assert.Equal(t, domain.RegionNortheast, records[0].Region)
	assert.Equal(t, 0.25, records[2].CurrentPenetration)
}

func TestEnginePriority_Range(t *testing.T) {
	engine := NewEngine(nil, nil)
	records := engine.Priority(NewRand(10))

	require.Len(t, records, 30)
	for _, r := range records {
		assert.GreaterOrEqual(t, r.PotentialImpact, 0.0)
		assert.LessOrEqual(t, r.PotentialImpact, 10.0)
		if r.State == "Tamil Nadu" {
			assert.Equal(t, "TN", r.StateCode)
		}
	}
}
