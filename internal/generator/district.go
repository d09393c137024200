package generator

import (
	"fmt"

	"github.com/broadband-analytics/internal/domain"
)

// noAdjustment - множитель для местности без поправки
var noAdjustment = Band{Min: 1, Max: 1}

// Districts разворачивает каждый штат в набор районов
func (e *Engine) Districts(rng *Rand) []domain.DistrictRecord {
	states := e.States(rng)

	var records []domain.DistrictRecord
	for _, state := range states {
		records = append(records, e.districtsOf(rng, state)...)
	}
	return records
}

// DistrictCount возвращает число районов штата: из фиксированной таблицы либо случайное в [MinCount, MaxCount]
func (e *Engine) DistrictCount(rng *Rand, state string) int {
	p := e.params.District
	var n int
	if p.UseFixedCounts {
		n = Lookup(p.FixedCounts, state, p.DefaultFixedCount)
	} else {
		n = rng.IntRange(p.MinCount, p.MaxCount)
	}
	if n < 1 {
		n = 1
	}
	return n
}

func (e *Engine) districtsOf(rng *Rand, state domain.StateRecord) []domain.DistrictRecord {
	p := e.params.District
	count := e.DistrictCount(rng, state.StateName)
	shares := rng.Dirichlet(count, p.DirichletAlpha)
	variation := regionValue(p.RegionVariation, state.Region)

	terrains := domain.Terrains()
	proximities := domain.Proximities()

	records := make([]domain.DistrictRecord, 0, count)
	for i := 0; i < count; i++ {
		terrain := terrains[rng.IntN(len(terrains))]
		proximity := proximities[rng.IntN(len(proximities))]
		population := int(shares[i] * float64(state.Population))

		proximityFactor := rng.UniformBand(Lookup(p.ProximityFactors, proximity, noAdjustment))
		terrainFactor := rng.UniformBand(Lookup(p.TerrainFactors, terrain, noAdjustment))
		regionFactor := 1 + rng.Beta(e.params.State.BetaAlpha, e.params.State.BetaBeta)*variation - variation/2

		penetration := state.BroadbandPenetration * proximityFactor * terrainFactor * regionFactor
		penetration = clamp(penetration, p.PenetrationBounds.Min, p.PenetrationBounds.Max)

		records = append(records, domain.DistrictRecord{
			DistrictName:    fmt.Sprintf("%s District %d", state.StateName, i+1),
			ParentState:     state.StateName,
			Population:      population,
			Penetration:     penetration,
			Subscribers:     roundInt(population, penetration),
			Terrain:         terrain,
			ProximityToCity: proximity,
		})
	}
	return records
}
