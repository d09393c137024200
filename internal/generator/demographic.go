package generator

import (
	"math"

	"github.com/broadband-analytics/internal/domain"
)

// Demographics разворачивает каждый штат в строки возраст x пол (7 x 2 на штат).
// Мужская проникновенность всегда не ниже женской: gap < 1, поэтому 2-gap > gap.
func (e *Engine) Demographics(rng *Rand) []domain.DemographicRecord {
	p := e.params.Demographic
	states := e.States(rng)
	genders := domain.Genders()

	records := make([]domain.DemographicRecord, 0, len(states)*len(domain.AgeGroups)*len(genders))
	for _, state := range states {
		maleRatio := clamp(
			regionValue(p.MaleRatio, state.Region)+rng.Normal(0, p.MaleRatioStd),
			p.MaleRatioBounds.Min, p.MaleRatioBounds.Max,
		)
		gap := clamp(rng.Normal(p.GenderGapMean, p.GenderGapStd), p.GenderGapBounds.Min, p.GenderGapBounds.Max)
		adjustment := safeRatio(state.BroadbandPenetration, e.params.NationalAveragePenetration)

		for _, age := range domain.AgeGroups {
			agePopulation := float64(state.Population) * Lookup(p.AgeShares, age, 0)
			baseAdoption := Lookup(p.AgeAdoption, age, 0)

			for _, gender := range genders {
				share, factor := maleRatio, 2-gap
				if gender == domain.GenderFemale {
					share, factor = 1-maleRatio, gap
				}

				population := int(math.Round(agePopulation * share))
				penetration := clamp(baseAdoption*adjustment*factor, p.PenetrationBounds.Min, p.PenetrationBounds.Max)
				urban := math.Max(math.Min(penetration*p.UrbanMultiplier, p.PenetrationBounds.Max), penetration)

				records = append(records, domain.DemographicRecord{
					State:            state.StateName,
					AgeGroup:         age,
					Gender:           gender,
					Population:       population,
					Penetration:      penetration,
					Users:            roundInt(population, penetration),
					UrbanPenetration: urban,
					RuralPenetration: penetration,
				})
			}
		}
	}
	return records
}
