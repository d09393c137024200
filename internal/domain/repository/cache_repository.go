package repository

import (
	"context"
	"time"

	"github.com/broadband-analytics/internal/domain"
	"github.com/google/uuid"
)

// CacheRepository определяет методы для работы с кешем
type CacheRepository interface {
	// Get получает значение из кеша по ключу (nil, nil при промахе)
	Get(ctx context.Context, key string) ([]byte, error)

	// Set сохраняет значение в кеше с TTL
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete удаляет значение из кеша
	Delete(ctx context.Context, key string) error

	// Exists проверяет существование ключа
	Exists(ctx context.Context, key string) (bool, error)

	// GetDataset декодирует закешированную таблицу в dest, возвращает false при промахе
	GetDataset(ctx context.Context, key string, dest interface{}) (bool, error)

	// SetDataset сохраняет записи таблицы в кеше
	SetDataset(ctx context.Context, key string, records interface{}, ttl time.Duration) error

	// GetExport получает готовую выгрузку (nil, nil если её ещё нет)
	GetExport(ctx context.Context, jobID uuid.UUID) (*domain.ExportArtifact, error)

	// SetExport сохраняет готовую выгрузку
	SetExport(ctx context.Context, artifact *domain.ExportArtifact, ttl time.Duration) error

	// GetExportJob получает карточку задачи выгрузки (nil, nil если её нет)
	GetExportJob(ctx context.Context, jobID uuid.UUID) (*domain.ExportJob, error)

	// SetExportJob сохраняет карточку задачи выгрузки
	SetExportJob(ctx context.Context, job *domain.ExportJob, ttl time.Duration) error

	// DeleteExportJob удаляет карточку задачи выгрузки
	DeleteExportJob(ctx context.Context, jobID uuid.UUID) error
}
