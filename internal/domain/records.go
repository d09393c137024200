package domain

import "time"

// JSON-теги полей записей являются именами колонок таблиц и частью внешнего контракта.

// StateRecord - показатели широкополосного доступа по штату (сельское население)
type StateRecord struct {
	StateName            string  `json:"state_name"`
	Region               Region  `json:"region"`
	Population           int     `json:"population"`
	BroadbandPenetration float64 `json:"broadband_penetration"`
	Subscribers          int     `json:"subscribers"`
	MobileDataUsage      float64 `json:"mobile_data_usage"`
	FixedBroadbandUsage  float64 `json:"fixed_broadband_usage"`
	UrbanPenetration     float64 `json:"urban_penetration"`
}

// DistrictRecord - показатели по району
type DistrictRecord struct {
	DistrictName    string    `json:"district_name"`
	ParentState     string    `json:"parent_state"`
	Population      int       `json:"population"`
	Penetration     float64   `json:"penetration"`
	Subscribers     int       `json:"subscribers"`
	Terrain         Terrain   `json:"terrain"`
	ProximityToCity Proximity `json:"proximity_to_city"`
}

// TimeSeriesPoint - месячная точка национального ряда абонентов
type TimeSeriesPoint struct {
	Date        time.Time `json:"date"`
	Subscribers int       `json:"subscribers"`
	Penetration float64   `json:"penetration"`
}

// StatePenetrationPoint - месячная точка истории проникновения по штату
type StatePenetrationPoint struct {
	State       string    `json:"state"`
	Region      Region    `json:"region"`
	Date        time.Time `json:"date"`
	Penetration float64   `json:"penetration"`
}

// DemographicRecord - срез штат x возраст x пол
type DemographicRecord struct {
	State            string  `json:"state"`
	AgeGroup         string  `json:"age_group"`
	Gender           Gender  `json:"gender"`
	Population       int     `json:"population"`
	Penetration      float64 `json:"penetration"`
	Users            int     `json:"users"`
	UrbanPenetration float64 `json:"urban_penetration"`
	RuralPenetration float64 `json:"rural_penetration"`
}

// IncomeEducationRecord - срез штат x доход x образование
type IncomeEducationRecord struct {
	State          string  `json:"state"`
	IncomeGroup    string  `json:"income_group"`
	EducationLevel string  `json:"education_level"`
	Population     int     `json:"population"`
	Penetration    float64 `json:"penetration"`
	Users          int     `json:"users"`
}

// UsageRecord - доля устройства в штате и распределение типов подключения для него
type UsageRecord struct {
	State           string  `json:"state"`
	DeviceType      string  `json:"device_type"`
	Users           int     `json:"users"`
	Percentage      float64 `json:"percentage"`
	Connection2G    float64 `json:"connection_2G"`
	Connection3G    float64 `json:"connection_3G"`
	Connection4G    float64 `json:"connection_4G"`
	Connection5G    float64 `json:"connection_5G"`
	ConnectionFixed float64 `json:"connection_fixed"`
}

// ConnectionShares возвращает доли подключений в порядке ConnectionTypes
func (u UsageRecord) ConnectionShares() []float64 {
	return []float64{u.Connection2G, u.Connection3G, u.Connection4G, u.Connection5G, u.ConnectionFixed}
}

// ConnectionMixRecord - соотношение мобильного и фиксированного доступа в штате
type ConnectionMixRecord struct {
	State       string  `json:"state"`
	Region      Region  `json:"region"`
	MobileShare float64 `json:"mobile_share"`
	FixedShare  float64 `json:"fixed_share"`
}

// ServiceRecord - использование онлайн-сервиса в штате
type ServiceRecord struct {
	State           string  `json:"state"`
	Service         string  `json:"service"`
	UsagePercentage float64 `json:"usage_percentage"`
	DataVolume      float64 `json:"data_volume"`
}

// PriorityRecord - приоритет штата для развития инфраструктуры
type PriorityRecord struct {
	State              string  `json:"state"`
	StateCode          string  `json:"state_code"`
	Region             Region  `json:"region"`
	Population         int     `json:"population"`
	CurrentPenetration float64 `json:"current_penetration"`
	PotentialImpact    float64 `json:"potential_impact"`
}
