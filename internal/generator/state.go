package generator

import (
	"math"

	"github.com/broadband-analytics/internal/domain"
)

// States генерирует по одной записи на каждый штат справочника.
// Проникновенность берется из Beta-распределения, растянутого на полосу региона.
func (e *Engine) States(rng *Rand) []domain.StateRecord {
	p := e.params.State
	states := e.catalog.States()
	records := make([]domain.StateRecord, 0, len(states))

	for _, state := range states {
		region := e.catalog.RegionOf(state)
		population := e.catalog.PopulationOf(state)

		band := regionValue(p.PenetrationBands, region)
		penetration := band.Min + rng.Beta(p.BetaAlpha, p.BetaBeta)*band.Width()
		penetration = clamp(penetration, 0, e.params.MaxPenetration)

		mobile := rng.UniformBand(regionValue(p.MobileUsageBands, region))
		fixed := mobile * rng.UniformBand(p.FixedUsageMultiplier)

		// городская проникновенность не ниже сельской даже после ограничения сверху
		urban := math.Min(penetration*rng.UniformBand(p.UrbanMultiplier), p.UrbanCap)
		urban = math.Max(urban, penetration)

		records = append(records, domain.StateRecord{
			StateName:            state,
			Region:               region,
			Population:           population,
			BroadbandPenetration: penetration,
			Subscribers:          roundInt(population, penetration),
			MobileDataUsage:      mobile,
			FixedBroadbandUsage:  fixed,
			UrbanPenetration:     urban,
		})
	}

	return records
}
