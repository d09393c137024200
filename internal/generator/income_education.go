package generator

import (
	"math"

	"github.com/broadband-analytics/internal/domain"
)

// IncomeEducation разворачивает каждый штат в 5 x 5 строк доход x образование.
// Доли населения сосредоточены у диагонали за счет ядра exp(-k|i/n - j/n|) и нормируются по 25 ячейкам.
func (e *Engine) IncomeEducation(rng *Rand) []domain.IncomeEducationRecord {
	p := e.params.IncomeEducation
	states := e.States(rng)
	shares := e.jointShares()
	cells := len(domain.IncomeGroups) * len(domain.EducationLevels)

	records := make([]domain.IncomeEducationRecord, 0, len(states)*cells)
	for _, state := range states {
		adjustment := safeRatio(state.BroadbandPenetration, p.ReferencePenetration)

		for i, income := range domain.IncomeGroups {
			for j, education := range domain.EducationLevels {
				share := shares[i*len(domain.EducationLevels)+j]
				population := roundInt(state.Population, share)

				adoption := p.IncomeWeight*Lookup(p.IncomeAdoption, income, 0) +
					p.EducationWeight*Lookup(p.EducationAdoption, education, 0)
				penetration := clamp(
					adoption*adjustment*rng.UniformBand(p.Jitter),
					p.PenetrationBounds.Min, p.PenetrationBounds.Max,
				)

				records = append(records, domain.IncomeEducationRecord{
					State:          state.StateName,
					IncomeGroup:    income,
					EducationLevel: education,
					Population:     population,
					Penetration:    penetration,
					Users:          roundInt(population, penetration),
				})
			}
		}
	}
	return records
}

// jointShares возвращает нормированные доли ячеек в порядке income-major
func (e *Engine) jointShares() []float64 {
	p := e.params.IncomeEducation
	incomeLevels := float64(len(domain.IncomeGroups))
	educationLevels := float64(len(domain.EducationLevels))

	weights := make([]float64, 0, len(domain.IncomeGroups)*len(domain.EducationLevels))
	for i, income := range domain.IncomeGroups {
		for j, education := range domain.EducationLevels {
			kernel := math.Exp(-p.CorrelationStrength * math.Abs(float64(i)/incomeLevels-float64(j)/educationLevels))
			weights = append(weights, Lookup(p.IncomeShares, income, 0)*Lookup(p.EducationShares, education, 0)*kernel)
		}
	}
	return normalize(weights)
}
