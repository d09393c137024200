package dto

// InsightsRequest - общий запрос сводных показателей
type InsightsRequest struct {
	Seed  *uint64 `json:"seed,omitempty"`
	Limit int     `json:"limit" validate:"omitempty,min=1,max=30"`
}

// GrowthRequest - запрос показателей роста за окно последних месяцев (0 = весь ряд)
type GrowthRequest struct {
	Seed   *uint64 `json:"seed,omitempty"`
	Months int     `json:"months" validate:"omitempty,min=2,max=120"`
}

// SummaryResponse - ключевые национальные показатели
type SummaryResponse struct {
	AveragePenetration float64 `json:"average_penetration"`
	TotalSubscribers   int     `json:"total_subscribers"`
	YearlyGrowth       float64 `json:"yearly_growth"`
	UrbanRuralGap      float64 `json:"urban_rural_gap"`
	RuralPopulation    int     `json:"rural_population"`
	TopState           string  `json:"top_state"`
	BottomState        string  `json:"bottom_state"`
	Labels             Labels  `json:"labels"`
}

// Labels - человекочитаемые значения для карточек дашборда
type Labels struct {
	AveragePenetration string `json:"average_penetration"`
	TotalSubscribers   string `json:"total_subscribers"`
	YearlyGrowth       string `json:"yearly_growth"`
	UrbanRuralGap      string `json:"urban_rural_gap"`
}

// RegionInsight - агрегаты по региону
type RegionInsight struct {
	Region              string  `json:"region"`
	States              int     `json:"states"`
	Population          int     `json:"population"`
	Subscribers         int     `json:"subscribers"`
	AveragePenetration  float64 `json:"average_penetration"`
	WeightedPenetration float64 `json:"weighted_penetration"`
	MobileDataUsage     float64 `json:"mobile_data_usage"`
}

// GrowthResponse - динамика национального ряда абонентов
type GrowthResponse struct {
	Months             int              `json:"months"`
	StartSubscribers   int              `json:"start_subscribers"`
	CurrentSubscribers int              `json:"current_subscribers"`
	GrowthPercent      float64          `json:"growth_percent"`
	CAGR               float64          `json:"cagr"`
	LatestYoY          float64          `json:"latest_yoy"`
	Quarterly          []QuarterlyPoint `json:"quarterly"`
}

// QuarterlyPoint - последнее значение квартала и прирост к предыдущему кварталу
type QuarterlyPoint struct {
	Quarter     string  `json:"quarter"`
	Subscribers int     `json:"subscribers"`
	GrowthRate  float64 `json:"growth_rate"`
}

// DemographicsResponse - гендерный разрыв, возрастные группы и матрица доход x образование
type DemographicsResponse struct {
	GenderGap       []GenderGapRow         `json:"gender_gap"`
	AgeGroups       []AgeGroupRow          `json:"age_groups"`
	IncomeEducation *IncomeEducationMatrix `json:"income_education"`
}

// GenderGapRow - проникновение по полу в штате
type GenderGapRow struct {
	State             string  `json:"state"`
	MalePenetration   float64 `json:"male_penetration"`
	FemalePenetration float64 `json:"female_penetration"`
	GapRatio          float64 `json:"gap_ratio"`
}

// AgeGroupRow - агрегат по возрастной группе по всем штатам
type AgeGroupRow struct {
	AgeGroup    string  `json:"age_group"`
	Population  int     `json:"population"`
	Users       int     `json:"users"`
	Penetration float64 `json:"penetration"`
}

// IncomeEducationMatrix - средневзвешенное проникновение: строки - доход, колонки - образование
type IncomeEducationMatrix struct {
	IncomeGroups    []string    `json:"income_groups"`
	EducationLevels []string    `json:"education_levels"`
	Penetration     [][]float64 `json:"penetration"`
}
