package generator

import (
	"math"

	"github.com/broadband-analytics/internal/domain"
)

// индексы устройств в domain.DeviceTypes
const (
	deviceBasicPhone = iota
	deviceFeaturePhone
	deviceLowEnd
	deviceMidRange
	deviceHighEnd
	deviceComputer
)

// Usage генерирует распределение устройств по штатам и типы подключения для каждого устройства
func (e *Engine) Usage(rng *Rand) []domain.UsageRecord {
	p := e.params.Usage
	states := e.States(rng)

	records := make([]domain.UsageRecord, 0, len(states)*len(domain.DeviceTypes))
	for _, state := range states {
		shares := e.deviceShares(rng, state)

		for i, device := range domain.DeviceTypes {
			conn := connectionVector(Lookup(p.ConnectionShares, device, p.DefaultConnection))
			records = append(records, domain.UsageRecord{
				State:           state.StateName,
				DeviceType:      device,
				Users:           roundInt(state.Subscribers, shares[i]),
				Percentage:      shares[i],
				Connection2G:    conn[0],
				Connection3G:    conn[1],
				Connection4G:    conn[2],
				Connection5G:    conn[3],
				ConnectionFixed: conn[4],
			})
		}
	}
	return records
}

// deviceShares: базовый вектор + поправка региона + сдвиг к продвинутым устройствам
// при проникновенности выше средней по стране, затем шум, нижняя граница и нормировка
func (e *Engine) deviceShares(rng *Rand, state domain.StateRecord) []float64 {
	p := e.params.Usage
	shares := make([]float64, len(domain.DeviceTypes))
	copy(shares, p.BaselineDeviceShares)

	adjustments := regionValue(p.RegionAdjustments, state.Region)
	for i := range shares {
		if i < len(adjustments) {
			shares[i] += adjustments[i]
		}
	}

	if ratio := safeRatio(state.BroadbandPenetration, e.params.NationalAveragePenetration); ratio > 1 {
		shift := (ratio - 1) * p.ShiftScale
		shares[deviceBasicPhone] = math.Max(shares[deviceBasicPhone]-2*shift, p.BasicPhoneFloor)
		shares[deviceFeaturePhone] = math.Max(shares[deviceFeaturePhone]-shift, p.FeaturePhoneFloor)
		shares[deviceMidRange] += shift / 2
		shares[deviceHighEnd] += shift / 2
		shares[deviceComputer] = math.Min(shares[deviceComputer]+shift, p.ComputerCap)
		shares = normalize(shares)
	}

	for i := range shares {
		shares[i] = math.Max(shares[i]+rng.Normal(0, p.NoiseStd), p.MinShare)
	}
	return normalize(shares)
}

// connectionVector приводит вектор долей подключений к длине ConnectionTypes и нормирует его
func connectionVector(v []float64) []float64 {
	out := make([]float64, len(domain.ConnectionTypes))
	copy(out, v)
	for i := range out {
		out[i] = math.Max(out[i], 0)
	}
	return normalize(out)
}

// ConnectionMix генерирует соотношение мобильного и фиксированного доступа по штатам
func (e *Engine) ConnectionMix(rng *Rand) []domain.ConnectionMixRecord {
	states := e.States(rng)

	records := make([]domain.ConnectionMixRecord, 0, len(states))
	for _, state := range states {
		mobile := rng.UniformBand(e.params.Usage.MobileShare)
		records = append(records, domain.ConnectionMixRecord{
			State:       state.StateName,
			Region:      state.Region,
			MobileShare: mobile,
			FixedShare:  1 - mobile,
		})
	}
	return records
}
