package generator

import (
	"testing"

	"github.com/broadband-analytics/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog_States(t *testing.T) {
	catalog := DefaultCatalog()

	states := catalog.States()
	require.Len(t, states, 30)

	seen := make(map[string]bool)
	for _, s := range states {
		assert.False(t, seen[s], "duplicate state %s", s)
		seen[s] = true
		assert.True(t, catalog.Contains(s))
		assert.Positive(t, catalog.PopulationOf(s))
	}
}

func TestCatalog_StatesReturnsCopy(t *testing.T) {
	catalog := DefaultCatalog()

	states := catalog.States()
	states[0] = "Atlantis"

	assert.NotEqual(t, "Atlantis", catalog.States()[0])
}

func TestCatalog_Defaults(t *testing.T) {
	catalog := DefaultCatalog()

	assert.Equal(t, domain.RegionNorth, catalog.RegionOf("Atlantis"))
	assert.Equal(t, 10_000_000, catalog.PopulationOf("Atlantis"))
	assert.False(t, catalog.Contains("Atlantis"))
}

func TestCatalog_RegionOf(t *testing.T) {
	catalog := DefaultCatalog()

	tests := []struct {
		state    string
		expected domain.Region
	}{
		{"Kerala", domain.RegionSouth},
		{"Tamil Nadu", domain.RegionSouth},
		{"Maharashtra", domain.RegionWest},
		{"Bihar", domain.RegionEast},
		{"Assam", domain.RegionNortheast},
		{"Madhya Pradesh", domain.RegionCentral},
		{"Delhi", domain.RegionNorth},
	}

	for _, tt := range tests {
		t.Run(tt.state, func(t *testing.T) {
			assert.Equal(t, tt.expected, catalog.RegionOf(tt.state))
		})
	}
}

func TestCatalog_RuralPopulation(t *testing.T) {
	catalog := DefaultCatalog()

	assert.Equal(t, int(float64(basePopulation["Kerala"])*RuralShare), catalog.PopulationOf("Kerala"))
}

func TestCatalog_StatesInAndEntries(t *testing.T) {
	catalog := DefaultCatalog()

	total := 0
	for _, region := range domain.Regions() {
		states := catalog.StatesIn(region)
		assert.NotEmpty(t, states, "region %s", region)
		total += len(states)
	}
	assert.Equal(t, 30, total)

	entries := catalog.Entries()
	require.Len(t, entries, 30)
	assert.Equal(t, catalog.States()[0], entries[0].State)
	assert.Equal(t, catalog.RegionOf(entries[0].State), entries[0].Region)
}

func TestNewCatalog_CustomTables(t *testing.T) {
	catalog := NewCatalog(
		[]string{"Alpha", "Beta"},
		map[string]domain.Region{"Alpha": domain.RegionSouth},
		map[string]int{"Alpha": 1000},
	)

	assert.Equal(t, []string{"Alpha", "Beta"}, catalog.States())
	assert.Equal(t, domain.RegionSouth, catalog.RegionOf("Alpha"))
	assert.Equal(t, DefaultRegion, catalog.RegionOf("Beta"))
	assert.Equal(t, DefaultPopulation, catalog.PopulationOf("Beta"))
}
