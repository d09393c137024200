package generator

import (
	"fmt"
	"path/filepath"

	"github.com/broadband-analytics/internal/domain"
	"github.com/spf13/viper"
)

// LoadParams накладывает файл параметров (YAML/JSON/TOML) поверх DefaultParams.
// Пустой путь возвращает канонические параметры. Ключи регионов сравниваются без учета регистра.
//
// Поддерживаемые ключи:
//
//	version, national_average_penetration, max_penetration,
//	penetration_bands.<region>: [min, max], mobile_usage_bands.<region>: [min, max],
//	districts.min_count, districts.max_count, districts.use_fixed_counts,
//	time_series.months, time_series.initial_subscribers, time_series.final_subscribers, time_series.noise_std,
//	state_history.months
func LoadParams(path string) (*Params, error) {
	params := DefaultParams()
	if path == "" {
		return params, nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read params file %s: %w", path, err)
	}

	if err := applyParams(v, params); err != nil {
		return nil, fmt.Errorf("invalid params file %s: %w", path, err)
	}

	// параметры из файла не должны делить ключи кеша с каноническими
	if !v.IsSet("version") {
		params.Version = ParamsVersion + "+" + filepath.Base(path)
	}

	return params, nil
}

func applyParams(v *viper.Viper, p *Params) error {
	if v.IsSet("version") {
		p.Version = v.GetString("version")
	}
	if v.IsSet("national_average_penetration") {
		p.NationalAveragePenetration = v.GetFloat64("national_average_penetration")
		if p.NationalAveragePenetration <= 0 {
			return fmt.Errorf("national_average_penetration must be positive")
		}
	}
	if v.IsSet("max_penetration") {
		p.MaxPenetration = v.GetFloat64("max_penetration")
	}

	if err := overlayBands(v, "penetration_bands", p.State.PenetrationBands); err != nil {
		return err
	}
	if err := overlayBands(v, "mobile_usage_bands", p.State.MobileUsageBands); err != nil {
		return err
	}

	if v.IsSet("districts.min_count") {
		p.District.MinCount = v.GetInt("districts.min_count")
	}
	if v.IsSet("districts.max_count") {
		p.District.MaxCount = v.GetInt("districts.max_count")
	}
	if v.IsSet("districts.use_fixed_counts") {
		p.District.UseFixedCounts = v.GetBool("districts.use_fixed_counts")
	}
	if p.District.MinCount < 1 || p.District.MaxCount < p.District.MinCount {
		return fmt.Errorf("invalid district count range [%d, %d]", p.District.MinCount, p.District.MaxCount)
	}

	if v.IsSet("time_series.months") {
		p.TimeSeries.Months = v.GetInt("time_series.months")
	}
	if v.IsSet("time_series.initial_subscribers") {
		p.TimeSeries.InitialSubscribers = v.GetFloat64("time_series.initial_subscribers")
	}
	if v.IsSet("time_series.final_subscribers") {
		p.TimeSeries.FinalSubscribers = v.GetFloat64("time_series.final_subscribers")
	}
	if v.IsSet("time_series.noise_std") {
		p.TimeSeries.NoiseStd = v.GetFloat64("time_series.noise_std")
	}
	if p.TimeSeries.Months < 1 {
		return fmt.Errorf("time_series.months must be positive")
	}

	if v.IsSet("state_history.months") {
		p.StateHistory.Months = v.GetInt("state_history.months")
		if p.StateHistory.Months < 1 {
			return fmt.Errorf("state_history.months must be positive")
		}
	}

	return nil
}

// overlayBands читает таблицу регион -> [min, max] и заменяет указанные полосы
func overlayBands(v *viper.Viper, key string, dst map[domain.Region]Band) error {
	if !v.IsSet(key) {
		return nil
	}

	var raw map[string][]float64
	if err := v.UnmarshalKey(key, &raw); err != nil {
		return fmt.Errorf("failed to decode %s: %w", key, err)
	}

	for name, values := range raw {
		region, ok := domain.ParseRegion(name)
		if !ok {
			return fmt.Errorf("%s: unknown region %q", key, name)
		}
		if len(values) != 2 || values[0] > values[1] {
			return fmt.Errorf("%s.%s: band must be [min, max]", key, name)
		}
		dst[region] = Band{Min: values[0], Max: values[1]}
	}
	return nil
}
