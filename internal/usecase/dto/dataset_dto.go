package dto

import (
	"github.com/broadband-analytics/internal/domain"
	"github.com/broadband-analytics/internal/table"
)

// DatasetRequest - запрос таблицы. Seed делает выборку воспроизводимой,
// States и Regions сужают строки (пересечение условий).
type DatasetRequest struct {
	Kind    string   `json:"kind" validate:"required,dataset_kind"`
	Seed    *uint64  `json:"seed,omitempty"`
	States  []string `json:"states,omitempty" validate:"omitempty,max=40,dive,min=2,max=64"`
	Regions []string `json:"regions,omitempty" validate:"omitempty,max=6,dive,region"`
}

// MeltRequest - запрос таблицы в длинном формате
type MeltRequest struct {
	DatasetRequest
	IDVars    []string `json:"id_vars,omitempty"`
	ValueVars []string `json:"value_vars,omitempty"`
	VarName   string   `json:"var_name,omitempty" validate:"omitempty,max=64"`
	ValueName string   `json:"value_name,omitempty" validate:"omitempty,max=64"`
}

// DatasetResult - сгенерированная (или взятая из кеша) таблица
type DatasetResult struct {
	Kind          domain.DatasetKind
	Frame         *table.Frame
	Seed          *uint64
	Cached        bool
	ParamsVersion string
}
