package domain

// DatasetKind - идентификатор генерируемой таблицы (используется в URL, ключах кеша и экспорте)
type DatasetKind string

const (
	DatasetStates          DatasetKind = "states"
	DatasetDistricts       DatasetKind = "districts"
	DatasetTimeSeries      DatasetKind = "time-series"
	DatasetStateTimeSeries DatasetKind = "state-time-series"
	DatasetDemographics    DatasetKind = "demographics"
	DatasetIncomeEducation DatasetKind = "income-education"
	DatasetUsage           DatasetKind = "usage"
	DatasetConnectionMix   DatasetKind = "connection-mix"
	DatasetServices        DatasetKind = "services"
	DatasetPriority        DatasetKind = "priority"
)

// DatasetKinds возвращает все поддерживаемые таблицы
func DatasetKinds() []DatasetKind {
	return []DatasetKind{
		DatasetStates,
		DatasetDistricts,
		DatasetTimeSeries,
		DatasetStateTimeSeries,
		DatasetDemographics,
		DatasetIncomeEducation,
		DatasetUsage,
		DatasetConnectionMix,
		DatasetServices,
		DatasetPriority,
	}
}

// IsValid проверяет, что таблица известна
func (k DatasetKind) IsValid() bool {
	for _, kind := range DatasetKinds() {
		if kind == k {
			return true
		}
	}
	return false
}

// StateColumn возвращает имя колонки с названием штата (ключ соединения таблиц)
func (k DatasetKind) StateColumn() string {
	switch k {
	case DatasetStates:
		return "state_name"
	case DatasetDistricts:
		return "parent_state"
	case DatasetTimeSeries:
		return ""
	default:
		return "state"
	}
}

// ExportFormat - формат выгрузки таблицы
type ExportFormat string

const (
	ExportFormatCSV  ExportFormat = "csv"
	ExportFormatXLSX ExportFormat = "xlsx"
)

// ContentType возвращает MIME-тип формата
func (f ExportFormat) ContentType() string {
	switch f {
	case ExportFormatXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	default:
		return "text/csv"
	}
}
