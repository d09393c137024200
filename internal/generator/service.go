package generator

import "github.com/broadband-analytics/internal/domain"

// Services генерирует использование онлайн-сервисов: базовый процент x множитель региона x шум
// и объем данных из диапазона категории сервиса
func (e *Engine) Services(rng *Rand) []domain.ServiceRecord {
	p := e.params.Service
	states := e.States(rng)

	records := make([]domain.ServiceRecord, 0, len(states)*len(domain.Services))
	for _, state := range states {
		multipliers := regionValue(p.RegionMultipliers, state.Region)

		for _, service := range domain.Services {
			usage := Lookup(p.BaseUsage, service, 0) * Lookup(multipliers, service, 1.0) * rng.UniformBand(p.Jitter)
			volume := rng.UniformBand(Lookup(p.DataVolume, service, p.DefaultDataVolume))

			records = append(records, domain.ServiceRecord{
				State:           state.StateName,
				Service:         service,
				UsagePercentage: usage,
				DataVolume:      volume,
			})
		}
	}
	return records
}
