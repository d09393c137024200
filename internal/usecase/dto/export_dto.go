package dto

import (
	"time"

	"github.com/google/uuid"
)

// ExportRequest - запрос выгрузки таблицы (синхронной или в очередь)
type ExportRequest struct {
	DatasetRequest
	Format string `json:"format" validate:"required,export_format"`
}

// ExportFile - готовый файл синхронной выгрузки
type ExportFile struct {
	Filename    string
	ContentType string
	Rows        int
	Data        []byte
}

// ExportJobResponse - ответ на постановку задачи выгрузки в очередь
type ExportJobResponse struct {
	JobID     uuid.UUID `json:"job_id"`
	Status    string    `json:"status"`
	StatusURL string    `json:"status_url"`
	ResultURL string    `json:"result_url"`
	CreatedAt time.Time `json:"created_at"`
}

// ChartRequest - запрос PNG-графика
type ChartRequest struct {
	Chart  string  `json:"chart" validate:"required,oneof=state-penetration time-series device-mix"`
	Seed   *uint64 `json:"seed,omitempty"`
	Width  int     `json:"width" validate:"omitempty,min=200,max=2400"`
	Height int     `json:"height" validate:"omitempty,min=150,max=1800"`
}
