package domain

import (
	"time"

	"github.com/google/uuid"
)

// Stream names
const (
	StreamExportRequest = "stream:export:request"
	StreamExportDone    = "stream:export:done"
)

// ExportRequestEvent - входящее событие на асинхронную выгрузку таблицы
type ExportRequestEvent struct {
	JobID     uuid.UUID    `json:"job_id"`
	Kind      DatasetKind  `json:"kind"`
	Format    ExportFormat `json:"format"`
	Seed      *uint64      `json:"seed,omitempty"`
	States    []string     `json:"states,omitempty"`
	Regions   []string     `json:"regions,omitempty"`
	CreatedAt time.Time    `json:"created_at"`
}

// IsSeeded проверяет, воспроизводима ли выгрузка
func (e *ExportRequestEvent) IsSeeded() bool {
	return e.Seed != nil
}

// ExportDoneEvent - результат выгрузки
type ExportDoneEvent struct {
	JobID    uuid.UUID    `json:"job_id"`
	Kind     DatasetKind  `json:"kind"`
	Format   ExportFormat `json:"format"`
	Rows     int          `json:"rows"`
	Error    string       `json:"error,omitempty"`
	Finished time.Time    `json:"finished"`
}

// ExportStatus - состояние асинхронной выгрузки
type ExportStatus string

const (
	ExportStatusQueued ExportStatus = "queued"
	ExportStatusDone   ExportStatus = "done"
	ExportStatusFailed ExportStatus = "failed"
)

// ExportJob - карточка задачи выгрузки, хранится в кеше рядом с результатом
type ExportJob struct {
	JobID      uuid.UUID    `json:"job_id"`
	Kind       DatasetKind  `json:"kind"`
	Format     ExportFormat `json:"format"`
	Status     ExportStatus `json:"status"`
	Rows       int          `json:"rows,omitempty"`
	Error      string       `json:"error,omitempty"`
	CreatedAt  time.Time    `json:"created_at"`
	FinishedAt *time.Time   `json:"finished_at,omitempty"`
}

// ExportArtifact - готовый файл выгрузки, хранится в кеше до истечения TTL
type ExportArtifact struct {
	JobID       uuid.UUID    `json:"job_id"`
	Kind        DatasetKind  `json:"kind"`
	Format      ExportFormat `json:"format"`
	Filename    string       `json:"filename"`
	ContentType string       `json:"content_type"`
	Rows        int          `json:"rows"`
	Data        []byte       `json:"data"`
}

// StreamMessage - сообщение из Redis Stream
type StreamMessage struct {
	ID   string
	Data string
}
