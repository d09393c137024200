package generator

import (
	"math"
	"time"

	"github.com/broadband-analytics/internal/domain"
)

// StateTimeSeries генерирует историю проникновения каждого штата за StateHistory.Months месяцев.
// История стартует с current x (1 - фактор роста региона) и приходит к текущему значению в месяце end.
func (e *Engine) StateTimeSeries(rng *Rand, end time.Time) []domain.StatePenetrationPoint {
	p := e.params.StateHistory
	states := e.States(rng)
	dates := MonthGrid(end, p.Months)

	points := make([]domain.StatePenetrationPoint, 0, len(states)*len(dates))
	for _, state := range states {
		current := state.BroadbandPenetration
		start := current * (1 - regionValue(p.GrowthFactors, state.Region))

		for i, date := range dates {
			curve := math.Pow(progress(i, len(dates)), p.CurveExponent)
			penetration := start + (current-start)*curve
			penetration *= e.seasonalFactor(date.Month())
			penetration *= rng.Normal(1, p.NoiseStd)

			points = append(points, domain.StatePenetrationPoint{
				State:       state.StateName,
				Region:      state.Region,
				Date:        date,
				Penetration: clamp(penetration, 0, e.params.MaxPenetration),
			})
		}
	}
	return points
}

// seasonalFactor: зимой рост чуть выше, в сезон муссонов чуть ниже
func (e *Engine) seasonalFactor(month time.Month) float64 {
	switch month {
	case time.November, time.December, time.January, time.February:
		return e.params.StateHistory.WinterFactor
	case time.June, time.July, time.August, time.September:
		return e.params.StateHistory.MonsoonFactor
	default:
		return 1
	}
}
