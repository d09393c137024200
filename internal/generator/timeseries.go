package generator

import (
	"math"
	"time"

	"github.com/broadband-analytics/internal/domain"
)

// TimeSeries генерирует национальный месячный ряд абонентов, заканчивающийся месяцем end.
// Ряд = логистический тренд x сезонность x (1 + эффект программ) x (1 + шум).
func (e *Engine) TimeSeries(rng *Rand, end time.Time) []domain.TimeSeriesPoint {
	p := e.params.TimeSeries
	dates := MonthGrid(end, p.Months)
	if len(dates) == 0 {
		return nil
	}

	uplift := policyUplift(p.PolicyWindows, len(dates))
	points := make([]domain.TimeSeriesPoint, 0, len(dates))

	for i, date := range dates {
		trend := p.InitialSubscribers + (p.FinalSubscribers-p.InitialSubscribers)*logisticProgress(p.Steepness, progress(i, len(dates)))
		seasonal := p.Seasonality[int(date.Month())-1]
		noise := clamp(rng.Normal(0, p.NoiseStd), -p.NoiseClip, p.NoiseClip)

		subscribers := int(math.Round(trend * seasonal * (1 + uplift[i]) * (1 + noise)))
		points = append(points, domain.TimeSeriesPoint{
			Date:        date,
			Subscribers: subscribers,
			Penetration: safeRatio(float64(subscribers), p.NationalPopulation),
		})
	}

	return points
}

// MonthGrid возвращает n первых чисел месяцев (UTC) подряд, последний - месяц, содержащий end
func MonthGrid(end time.Time, n int) []time.Time {
	if n <= 0 {
		return nil
	}
	end = end.UTC()
	last := time.Date(end.Year(), end.Month(), 1, 0, 0, 0, 0, time.UTC)

	dates := make([]time.Time, n)
	for i := range dates {
		dates[i] = last.AddDate(0, i-(n-1), 0)
	}
	return dates
}

// progress возвращает положение точки i из n на отрезке [0, 1]
func progress(i, n int) float64 {
	if n <= 1 {
		return 1
	}
	return float64(i) / float64(n-1)
}

// logisticProgress - логистическая кривая 1/(1+exp(-k(x-0.5))), нормированная так, что f(0)=0 и f(1)=1
func logisticProgress(k, x float64) float64 {
	f := func(v float64) float64 {
		return 1 / (1 + math.Exp(-k*(v-0.5)))
	}
	lo, hi := f(0), f(1)
	if hi == lo {
		return x
	}
	return (f(x) - lo) / (hi - lo)
}

// policyUplift раскладывает окна программ по индексам ряда длины n
func policyUplift(windows []PolicyWindow, n int) []float64 {
	uplift := make([]float64, n)
	for _, w := range windows {
		start := n - w.OffsetFromEnd
		for j, u := range w.Uplift {
			if idx := start + j; idx >= 0 && idx < n {
				uplift[idx] += u
			}
		}
	}
	return uplift
}
