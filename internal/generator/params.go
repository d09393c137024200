package generator

import "github.com/broadband-analytics/internal/domain"

// ParamsVersion - версия канонического набора параметров моделей
const ParamsVersion = "2024.1"

// Band - интервал [Min, Max] для равномерных розыгрышей и масштабирования
type Band struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Width возвращает ширину интервала
func (b Band) Width() float64 {
	return b.Max - b.Min
}

// Params - полный набор параметров всех моделей. Все числовые константы генераторов живут здесь.
type Params struct {
	Version string `json:"version"`

	// NationalAveragePenetration - эталонная средняя проникновенность по стране
	NationalAveragePenetration float64 `json:"national_average_penetration"`
	// MaxPenetration - верхняя граница проникновенности штата
	MaxPenetration float64 `json:"max_penetration"`

	State           StateParams           `json:"state"`
	District        DistrictParams        `json:"district"`
	TimeSeries      TimeSeriesParams      `json:"time_series"`
	StateHistory    StateHistoryParams    `json:"state_history"`
	Demographic     DemographicParams     `json:"demographic"`
	IncomeEducation IncomeEducationParams `json:"income_education"`
	Usage           UsageParams           `json:"usage"`
	Service         ServiceParams         `json:"service"`
	Priority        PriorityParams        `json:"priority"`
}

// StateParams - параметры модели штатов
type StateParams struct {
	PenetrationBands     map[domain.Region]Band `json:"penetration_bands"`
	MobileUsageBands     map[domain.Region]Band `json:"mobile_usage_bands"`
	FixedUsageMultiplier Band                   `json:"fixed_usage_multiplier"`
	UrbanMultiplier      Band                   `json:"urban_multiplier"`
	UrbanCap             float64                `json:"urban_cap"`
	BetaAlpha            float64                `json:"beta_alpha"`
	BetaBeta             float64                `json:"beta_beta"`
}

// DistrictParams - параметры модели районов
type DistrictParams struct {
	MinCount          int                       `json:"min_count"`
	MaxCount          int                       `json:"max_count"`
	UseFixedCounts    bool                      `json:"use_fixed_counts"`
	FixedCounts       map[string]int            `json:"fixed_counts"`
	DefaultFixedCount int                       `json:"default_fixed_count"`
	DirichletAlpha    float64                   `json:"dirichlet_alpha"`
	ProximityFactors  map[domain.Proximity]Band `json:"proximity_factors"`
	TerrainFactors    map[domain.Terrain]Band   `json:"terrain_factors"`
	RegionVariation   map[domain.Region]float64 `json:"region_variation"`
	PenetrationBounds Band                      `json:"penetration_bounds"`
}

// PolicyWindow - окно эффекта государственной программы, отсчитывается от конца ряда
type PolicyWindow struct {
	Name          string    `json:"name"`
	OffsetFromEnd int       `json:"offset_from_end"`
	Uplift        []float64 `json:"uplift"`
}

// TimeSeriesParams - параметры национального месячного ряда
type TimeSeriesParams struct {
	Months             int            `json:"months"`
	InitialSubscribers float64        `json:"initial_subscribers"`
	FinalSubscribers   float64        `json:"final_subscribers"`
	Steepness          float64        `json:"steepness"`
	Seasonality        [12]float64    `json:"seasonality"`
	PolicyWindows      []PolicyWindow `json:"policy_windows"`
	NoiseStd           float64        `json:"noise_std"`
	NoiseClip          float64        `json:"noise_clip"`
	NationalPopulation float64        `json:"national_population"`
}

// StateHistoryParams - параметры истории проникновения по штатам
type StateHistoryParams struct {
	Months        int                       `json:"months"`
	GrowthFactors map[domain.Region]float64 `json:"growth_factors"`
	CurveExponent float64                   `json:"curve_exponent"`
	WinterFactor  float64                   `json:"winter_factor"`
	MonsoonFactor float64                   `json:"monsoon_factor"`
	NoiseStd      float64                   `json:"noise_std"`
}

// DemographicParams - параметры модели возраст x пол
type DemographicParams struct {
	AgeShares         map[string]float64        `json:"age_shares"`
	AgeAdoption       map[string]float64        `json:"age_adoption"`
	MaleRatio         map[domain.Region]float64 `json:"male_ratio"`
	MaleRatioStd      float64                   `json:"male_ratio_std"`
	MaleRatioBounds   Band                      `json:"male_ratio_bounds"`
	GenderGapMean     float64                   `json:"gender_gap_mean"`
	GenderGapStd      float64                   `json:"gender_gap_std"`
	GenderGapBounds   Band                      `json:"gender_gap_bounds"`
	UrbanMultiplier   float64                   `json:"urban_multiplier"`
	PenetrationBounds Band                      `json:"penetration_bounds"`
}

// IncomeEducationParams - параметры модели доход x образование
type IncomeEducationParams struct {
	IncomeShares         map[string]float64 `json:"income_shares"`
	IncomeAdoption       map[string]float64 `json:"income_adoption"`
	EducationShares      map[string]float64 `json:"education_shares"`
	EducationAdoption    map[string]float64 `json:"education_adoption"`
	CorrelationStrength  float64            `json:"correlation_strength"`
	IncomeWeight         float64            `json:"income_weight"`
	EducationWeight      float64            `json:"education_weight"`
	ReferencePenetration float64            `json:"reference_penetration"`
	Jitter               Band               `json:"jitter"`
	PenetrationBounds    Band               `json:"penetration_bounds"`
}

// UsageParams - параметры модели устройств и подключений
type UsageParams struct {
	BaselineDeviceShares []float64                   `json:"baseline_device_shares"`
	RegionAdjustments    map[domain.Region][]float64 `json:"region_adjustments"`
	ShiftScale           float64                     `json:"shift_scale"`
	BasicPhoneFloor      float64                     `json:"basic_phone_floor"`
	FeaturePhoneFloor    float64                     `json:"feature_phone_floor"`
	ComputerCap          float64                     `json:"computer_cap"`
	NoiseStd             float64                     `json:"noise_std"`
	MinShare             float64                     `json:"min_share"`
	ConnectionShares     map[string][]float64        `json:"connection_shares"`
	DefaultConnection    []float64                   `json:"default_connection"`
	MobileShare          Band                        `json:"mobile_share"`
}

// ServiceParams - параметры модели использования сервисов
type ServiceParams struct {
	BaseUsage         map[string]float64                   `json:"base_usage"`
	RegionMultipliers map[domain.Region]map[string]float64 `json:"region_multipliers"`
	Jitter            Band                                 `json:"jitter"`
	DataVolume        map[string]Band                      `json:"data_volume"`
	DefaultDataVolume Band                                 `json:"default_data_volume"`
}

// PriorityParams - параметры расчета приоритета штатов
type PriorityParams struct {
	PopulationScale    float64                   `json:"population_scale"`
	PopulationCap      float64                   `json:"population_cap"`
	PenetrationCeiling float64                   `json:"penetration_ceiling"`
	DevelopmentFactors map[domain.Region]float64 `json:"development_factors"`
	PopulationWeight   float64                   `json:"population_weight"`
	PenetrationWeight  float64                   `json:"penetration_weight"`
	DevelopmentWeight  float64                   `json:"development_weight"`
}

// DefaultParams возвращает канонический набор параметров версии ParamsVersion.
// Каждый вызов возвращает независимую копию, которую можно изменять.
func DefaultParams() *Params {
	return &Params{
		Version:                    ParamsVersion,
		NationalAveragePenetration: 0.15,
		MaxPenetration:             0.95,
		State: StateParams{
			PenetrationBands: map[domain.Region]Band{
				domain.RegionSouth:     {0.18, 0.32},
				domain.RegionWest:      {0.15, 0.28},
				domain.RegionNorth:     {0.10, 0.22},
				domain.RegionCentral:   {0.08, 0.18},
				domain.RegionEast:      {0.05, 0.15},
				domain.RegionNortheast: {0.03, 0.12},
			},
			MobileUsageBands: map[domain.Region]Band{
				domain.RegionSouth:     {1.5, 3.0},
				domain.RegionWest:      {1.2, 2.5},
				domain.RegionNorth:     {1.0, 2.0},
				domain.RegionCentral:   {0.8, 1.8},
				domain.RegionEast:      {0.8, 1.5},
				domain.RegionNortheast: {0.5, 1.2},
			},
			FixedUsageMultiplier: Band{1.5, 2.5},
			UrbanMultiplier:      Band{2, 4},
			UrbanCap:             0.85,
			BetaAlpha:            2,
			BetaBeta:             2,
		},
		District: DistrictParams{
			MinCount: 5,
			MaxCount: 10,
			FixedCounts: map[string]int{
				"Uttar Pradesh": 75, "Maharashtra": 36, "Bihar": 38,
				"West Bengal": 23, "Madhya Pradesh": 52, "Tamil Nadu": 38,
				"Rajasthan": 33, "Karnataka": 31, "Gujarat": 33,
				"Andhra Pradesh": 13, "Odisha": 30, "Telangana": 33,
				"Kerala": 14, "Jharkhand": 24, "Assam": 33,
				"Punjab": 23, "Chhattisgarh": 28, "Haryana": 22,
				"Delhi": 11, "Jammu and Kashmir": 20, "Uttarakhand": 13,
				"Himachal Pradesh": 12, "Tripura": 8, "Meghalaya": 11,
				"Manipur": 16, "Nagaland": 12, "Goa": 2,
				"Arunachal Pradesh": 25, "Sikkim": 4, "Mizoram": 11,
			},
			DefaultFixedCount: 15,
			DirichletAlpha:    1,
			ProximityFactors: map[domain.Proximity]Band{
				domain.ProximityNear:   {1.2, 1.6},
				domain.ProximityMedium: {0.9, 1.2},
				domain.ProximityFar:    {0.5, 0.9},
			},
			TerrainFactors: map[domain.Terrain]Band{
				domain.TerrainMountainous: {0.6, 0.8},
				domain.TerrainHilly:       {0.7, 0.9},
			},
			RegionVariation: map[domain.Region]float64{
				domain.RegionSouth:     0.3,
				domain.RegionWest:      0.4,
				domain.RegionNorth:     0.5,
				domain.RegionCentral:   0.6,
				domain.RegionEast:      0.6,
				domain.RegionNortheast: 0.7,
			},
			PenetrationBounds: Band{0.01, 0.95},
		},
		TimeSeries: TimeSeriesParams{
			Months:             60,
			InitialSubscribers: 80_000_000,
			FinalSubscribers:   250_000_000,
			Steepness:          10,
			Seasonality:        [12]float64{1.02, 1.01, 0.99, 0.98, 0.97, 0.96, 0.97, 0.98, 1.0, 1.01, 1.03, 1.04},
			PolicyWindows: []PolicyWindow{
				{Name: "digital-initiative", OffsetFromEnd: 24, Uplift: []float64{0.03, 0.06, 0.08, 0.07, 0.05, 0.03}},
				{Name: "broadband-subsidy", OffsetFromEnd: 6, Uplift: []float64{0.02, 0.04, 0.06, 0.07, 0.08, 0.09}},
			},
			NoiseStd:           0.01,
			NoiseClip:          0.03,
			NationalPopulation: 1_350_000_000,
		},
		StateHistory: StateHistoryParams{
			Months: 36,
			GrowthFactors: map[domain.Region]float64{
				domain.RegionSouth:     0.45,
				domain.RegionWest:      0.50,
				domain.RegionNorth:     0.55,
				domain.RegionCentral:   0.60,
				domain.RegionEast:      0.60,
				domain.RegionNortheast: 0.65,
			},
			CurveExponent: 0.8,
			WinterFactor:  1.01,
			MonsoonFactor: 0.99,
			NoiseStd:      0.005,
		},
		Demographic: DemographicParams{
			AgeShares: map[string]float64{
				"0-14": 0.28, "15-24": 0.18, "25-34": 0.16, "35-44": 0.13,
				"45-54": 0.11, "55-64": 0.08, "65+": 0.06,
			},
			AgeAdoption: map[string]float64{
				"0-14": 0.10, "15-24": 0.25, "25-34": 0.22, "35-44": 0.16,
				"45-54": 0.12, "55-64": 0.08, "65+": 0.04,
			},
			MaleRatio: map[domain.Region]float64{
				domain.RegionSouth:     0.53,
				domain.RegionWest:      0.56,
				domain.RegionNorth:     0.62,
				domain.RegionCentral:   0.64,
				domain.RegionEast:      0.65,
				domain.RegionNortheast: 0.60,
			},
			MaleRatioStd:      0.01,
			MaleRatioBounds:   Band{0.45, 0.70},
			GenderGapMean:     0.65,
			GenderGapStd:      0.05,
			GenderGapBounds:   Band{0.4, 0.9},
			UrbanMultiplier:   2,
			PenetrationBounds: Band{0.01, 0.9},
		},
		IncomeEducation: IncomeEducationParams{
			IncomeShares: map[string]float64{
				"Low": 0.30, "Lower-Middle": 0.35, "Middle": 0.25, "Upper-Middle": 0.08, "High": 0.02,
			},
			IncomeAdoption: map[string]float64{
				"Low": 0.15, "Lower-Middle": 0.25, "Middle": 0.45, "Upper-Middle": 0.65, "High": 0.85,
			},
			EducationShares: map[string]float64{
				"Illiterate": 0.35, "Primary": 0.30, "Secondary": 0.20, "Higher Secondary": 0.10, "Graduate and Above": 0.05,
			},
			EducationAdoption: map[string]float64{
				"Illiterate": 0.1, "Primary": 0.2, "Secondary": 0.4, "Higher Secondary": 0.6, "Graduate and Above": 0.8,
			},
			CorrelationStrength:  3,
			IncomeWeight:         0.4,
			EducationWeight:      0.6,
			ReferencePenetration: 0.35,
			Jitter:               Band{0.9, 1.1},
			PenetrationBounds:    Band{0.01, 0.95},
		},
		Usage: UsageParams{
			BaselineDeviceShares: []float64{0.10, 0.20, 0.30, 0.25, 0.10, 0.05},
			RegionAdjustments: map[domain.Region][]float64{
				domain.RegionSouth:     {-0.05, -0.05, -0.05, 0.05, 0.05, 0.05},
				domain.RegionWest:      {-0.05, -0.05, -0.05, 0.05, 0.05, 0.05},
				domain.RegionNorth:     {0, 0, 0, 0, 0, 0},
				domain.RegionCentral:   {0, 0, 0, 0, 0, 0},
				domain.RegionEast:      {0.05, 0.05, 0.05, -0.10, -0.03, -0.02},
				domain.RegionNortheast: {0.05, 0.05, 0.05, -0.10, -0.03, -0.02},
			},
			ShiftScale:        0.1,
			BasicPhoneFloor:   0.01,
			FeaturePhoneFloor: 0.05,
			ComputerCap:       0.25,
			NoiseStd:          0.02,
			MinShare:          0.01,
			ConnectionShares: map[string][]float64{
				"Basic Phone":          {0.4, 0.5, 0.1, 0, 0},
				"Feature Phone":        {0.4, 0.5, 0.1, 0, 0},
				"Low-end Smartphone":   {0.05, 0.45, 0.5, 0, 0},
				"Mid-range Smartphone": {0, 0.2, 0.7, 0.1, 0},
				"High-end Smartphone":  {0, 0.05, 0.65, 0.3, 0},
				"Computer/Tablet":      {0, 0, 0.2, 0.2, 0.6},
			},
			DefaultConnection: []float64{0, 0, 1, 0, 0},
			MobileShare:       Band{0.7, 0.9},
		},
		Service: ServiceParams{
			BaseUsage: map[string]float64{
				"Social Media": 75, "Video Streaming": 65, "Communication": 80, "News": 45,
				"Education": 30, "Gaming": 25, "Banking": 20, "Government Services": 15,
				"E-commerce": 18, "Healthcare": 10, "Agriculture Apps": 12,
			},
			RegionMultipliers: map[domain.Region]map[string]float64{
				domain.RegionSouth: {
					"Education": 1.2, "Banking": 1.3, "E-commerce": 1.2, "Government Services": 1.1, "Healthcare": 1.2,
				},
				domain.RegionWest: {
					"E-commerce": 1.3, "Banking": 1.2, "Social Media": 1.1, "Video Streaming": 1.1, "Gaming": 1.2,
				},
				domain.RegionNorth: {
					"Agriculture Apps": 1.2, "Government Services": 0.9, "News": 1.1, "Communication": 1.05,
				},
				domain.RegionEast: {
					"Agriculture Apps": 1.3, "Education": 0.9, "Banking": 0.8, "Social Media": 0.95, "Video Streaming": 0.9,
				},
				domain.RegionNortheast: {
					"News": 0.9, "E-commerce": 0.7, "Social Media": 0.9, "Communication": 1.1, "Government Services": 0.8,
				},
				domain.RegionCentral: {
					"Agriculture Apps": 1.4, "Banking": 0.85, "E-commerce": 0.8, "Education": 0.9, "Healthcare": 0.85,
				},
			},
			Jitter: Band{0.9, 1.1},
			DataVolume: map[string]Band{
				"Video Streaming": {1.5, 2.5},
				"Gaming":          {1.5, 2.5},
				"Social Media":    {0.5, 1.0},
				"Communication":   {0.5, 1.0},
				"News":            {0.5, 1.0},
			},
			DefaultDataVolume: Band{0.1, 0.4},
		},
		Priority: PriorityParams{
			PopulationScale:    10_000_000,
			PopulationCap:      10,
			PenetrationCeiling: 0.5,
			DevelopmentFactors: map[domain.Region]float64{
				domain.RegionSouth:     0.7,
				domain.RegionWest:      0.75,
				domain.RegionNorth:     0.8,
				domain.RegionCentral:   0.85,
				domain.RegionEast:      0.9,
				domain.RegionNortheast: 0.95,
			},
			PopulationWeight:  0.4,
			PenetrationWeight: 0.4,
			DevelopmentWeight: 0.2,
		},
	}
}
