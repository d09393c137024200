package generator

import (
	"math"
	"testing"

	"github.com/broadband-analytics/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDemographics_Coverage(t *testing.T) {
	engine := NewEngine(nil, nil)
	records := engine.Demographics(NewRand(1))

	require.Len(t, records, 30*7*2)

	perState := make(map[string]int)
	for _, r := range records {
		perState[r.State]++
	}
	for _, state := range engine.Catalog().States() {
		assert.Equal(t, 14, perState[state], state)
	}
}

func TestDemographics_Invariants(t *testing.T) {
	engine := NewEngine(nil, nil)

	for seed := uint64(1); seed <= 5; seed++ {
		records := engine.Demographics(NewRand(seed))

		for _, r := range records {
			assert.Equal(t, int(math.Round(float64(r.Population)*r.Penetration)), r.Users)
			assert.GreaterOrEqual(t, r.Penetration, 0.01)
			assert.LessOrEqual(t, r.Penetration, 0.9)
			assert.Equal(t, r.Penetration, r.RuralPenetration)
			assert.GreaterOrEqual(t, r.UrbanPenetration, r.RuralPenetration)
			assert.LessOrEqual(t, r.UrbanPenetration, 0.9)
		}

		// записи идут парами Male, Female для каждого штата и возраста
		for i := 0; i < len(records); i += 2 {
			male, female := records[i], records[i+1]
			require.Equal(t, domain.GenderMale, male.Gender)
			require.Equal(t, domain.GenderFemale, female.Gender)
			require.Equal(t, male.AgeGroup, female.AgeGroup)
			assert.GreaterOrEqual(t, male.Penetration, female.Penetration, "%s %s", male.State, male.AgeGroup)
		}
	}
}

func TestDemographics_MaleRatioBounds(t *testing.T) {
	engine := NewEngine(nil, nil)
	records := engine.Demographics(NewRand(8))

	for i := 0; i < len(records); i += 2 {
		male, female := records[i], records[i+1]
		total := male.Population + female.Population
		if total == 0 {
			continue
		}
		ratio := float64(male.Population) / float64(total)
		assert.GreaterOrEqual(t, ratio, 0.45-0.001)
		assert.LessOrEqual(t, ratio, 0.70+0.001)
	}
}

func TestIncomeEducation_Coverage(t *testing.T) {
	engine := NewEngine(nil, nil)
	records := engine.IncomeEducation(NewRand(1))

	require.Len(t, records, 30*25)

	perState := make(map[string]int)
	for _, r := range records {
		perState[r.State]++
		assert.GreaterOrEqual(t, r.Penetration, 0.01)
		assert.LessOrEqual(t, r.Penetration, 0.95)
		assert.Equal(t, int(math.Round(float64(r.Population)*r.Penetration)), r.Users)
	}
	for _, state := range engine.Catalog().States() {
		assert.Equal(t, 25, perState[state], state)
	}
}

func TestIncomeEducation_DiagonalConcentration(t *testing.T) {
	engine := NewEngine(nil, nil)
	shares := engine.jointShares()
	n := len(domain.EducationLevels)

	var sum float64
	for _, s := range shares {
		sum += s
	}
	assert.InDelta(t, 1.0, sum, 1e-9)

	// при равных маргинальных долях ячейка на диагонали тяжелее соседней вне ее
	params := DefaultParams()
	for _, g := range domain.IncomeGroups {
		params.IncomeEducation.IncomeShares[g] = 0.2
	}
	for _, l := range domain.EducationLevels {
		params.IncomeEducation.EducationShares[l] = 0.2
	}
	uniform := NewEngine(nil, params).jointShares()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i != j {
				assert.Greater(t, uniform[i*n+i], uniform[i*n+j])
			}
		}
	}
}

func TestIncomeEducation_PenetrationGrowsWithEducation(t *testing.T) {
	params := DefaultParams()
	params.IncomeEducation.Jitter = Band{Min: 1, Max: 1}
	engine := NewEngine(nil, params)

	records := engine.IncomeEducation(NewRand(6))
	n := len(domain.EducationLevels)
	for k := 0; k+n <= len(records); k += n {
		for j := 1; j < n; j++ {
			assert.GreaterOrEqual(t, records[k+j].Penetration, records[k+j-1].Penetration)
		}
	}
}

func TestIncomeEducation_PenetrationGrowsWithIncome(t *testing.T) {
	params := DefaultParams()
	params.IncomeEducation.Jitter = Band{Min: 1, Max: 1}
	engine := NewEngine(nil, params)

	records := engine.IncomeEducation(NewRand(6))
	n := len(domain.EducationLevels)
	require.Equal(t, len(domain.IncomeGroups), n)

	for k := 0; k+n*n <= len(records); k += n * n {
		for i := 1; i < n; i++ {
			for j := 0; j < n; j++ {
				assert.GreaterOrEqual(t, records[k+i*n+j].Penetration, records[k+(i-1)*n+j].Penetration)
			}
		}
	}
}
