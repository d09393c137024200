package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/broadband-analytics/internal/domain"
	"github.com/broadband-analytics/internal/domain/repository"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	exportKeyPrefix    = "export:"
	exportJobKeyPrefix = "export:job:"
)

type cacheRepository struct {
	client *redis.Client
	logger *zap.Logger
}

func NewCacheRepository(redis *Redis) repository.CacheRepository {
	return &cacheRepository{
		client: redis.Client(),
		logger: redis.logger,
	}
}

// ExportKey возвращает ключ готовой выгрузки
func ExportKey(jobID uuid.UUID) string {
	return exportKeyPrefix + jobID.String()
}

// ExportJobKey возвращает ключ карточки задачи выгрузки
func ExportJobKey(jobID uuid.UUID) string {
	return exportJobKeyPrefix + jobID.String()
}

func (r *cacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil // Cache miss
	}
	if err != nil {
		r.logger.Error("Failed to get from cache", zap.String("key", key), zap.Error(err))
		return nil, fmt.Errorf("cache get error: %w", err)
	}

	r.logger.Debug("Cache hit", zap.String("key", key))
	return val, nil
}

func (r *cacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	err := r.client.Set(ctx, key, value, ttl).Err()
	if err != nil {
		r.logger.Error("Failed to set cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache set error: %w", err)
	}

	r.logger.Debug("Cache set", zap.String("key", key), zap.Duration("ttl", ttl))
	return nil
}

func (r *cacheRepository) Delete(ctx context.Context, key string) error {
	err := r.client.Del(ctx, key).Err()
	if err != nil {
		r.logger.Error("Failed to delete from cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache delete error: %w", err)
	}

	r.logger.Debug("Cache deleted", zap.String("key", key))
	return nil
}

func (r *cacheRepository) Exists(ctx context.Context, key string) (bool, error) {
	val, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		r.logger.Error("Failed to check cache existence", zap.String("key", key), zap.Error(err))
		return false, fmt.Errorf("cache exists error: %w", err)
	}

	return val > 0, nil
}

// GetDataset декодирует закешированные записи в dest (указатель на срез)
func (r *cacheRepository) GetDataset(ctx context.Context, key string, dest interface{}) (bool, error) {
	return r.getJSON(ctx, key, dest)
}

// SetDataset сохраняет записи таблицы
func (r *cacheRepository) SetDataset(ctx context.Context, key string, records interface{}, ttl time.Duration) error {
	return r.setJSON(ctx, key, records, ttl)
}

// GetExport получает готовую выгрузку из кеша
func (r *cacheRepository) GetExport(ctx context.Context, jobID uuid.UUID) (*domain.ExportArtifact, error) {
	var artifact domain.ExportArtifact
	found, err := r.getJSON(ctx, ExportKey(jobID), &artifact)
	if err != nil || !found {
		return nil, err
	}
	return &artifact, nil
}

// SetExport сохраняет готовую выгрузку
func (r *cacheRepository) SetExport(ctx context.Context, artifact *domain.ExportArtifact, ttl time.Duration) error {
	return r.setJSON(ctx, ExportKey(artifact.JobID), artifact, ttl)
}

// GetExportJob получает карточку задачи выгрузки
func (r *cacheRepository) GetExportJob(ctx context.Context, jobID uuid.UUID) (*domain.ExportJob, error) {
	var job domain.ExportJob
	found, err := r.getJSON(ctx, ExportJobKey(jobID), &job)
	if err != nil || !found {
		return nil, err
	}
	return &job, nil
}

// SetExportJob сохраняет карточку задачи выгрузки
func (r *cacheRepository) SetExportJob(ctx context.Context, job *domain.ExportJob, ttl time.Duration) error {
	return r.setJSON(ctx, ExportJobKey(job.JobID), job, ttl)
}

// DeleteExportJob удаляет карточку задачи выгрузки
func (r *cacheRepository) DeleteExportJob(ctx context.Context, jobID uuid.UUID) error {
	return r.Delete(ctx, ExportJobKey(jobID))
}

func (r *cacheRepository) getJSON(ctx context.Context, key string, dest interface{}) (bool, error) {
	data, err := r.Get(ctx, key)
	if err != nil {
		return false, err
	}
	if data == nil {
		return false, nil
	}

	if err := json.Unmarshal(data, dest); err != nil {
		r.logger.Error("Failed to unmarshal cached value", zap.String("key", key), zap.Error(err))
		return false, fmt.Errorf("unmarshal %s: %w", key, err)
	}
	return true, nil
}

func (r *cacheRepository) setJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		r.logger.Error("Failed to marshal value", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("marshal %s: %w", key, err)
	}

	return r.Set(ctx, key, data, ttl)
}
