package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/broadband-analytics/internal/domain"
	"github.com/broadband-analytics/internal/domain/repository"
	apperrors "github.com/broadband-analytics/internal/pkg/errors"
	"github.com/broadband-analytics/internal/pkg/metrics"
	"github.com/broadband-analytics/internal/usecase/dto"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ExportJobUseCase ставит выгрузки в очередь Redis Stream и выполняет их в воркере
type ExportJobUseCase struct {
	exports    *ExportUseCase
	cacheRepo  repository.CacheRepository
	streamRepo repository.StreamRepository
	logger     *zap.Logger
	ttl        time.Duration
	now        func() time.Time
}

// NewExportJobUseCase создает новый экземпляр ExportJobUseCase
func NewExportJobUseCase(
	exports *ExportUseCase,
	cacheRepo repository.CacheRepository,
	streamRepo repository.StreamRepository,
	logger *zap.Logger,
	ttl time.Duration,
) *ExportJobUseCase {
	return &ExportJobUseCase{
		exports:    exports,
		cacheRepo:  cacheRepo,
		streamRepo: streamRepo,
		logger:     logger,
		ttl:        ttl,
		now:        time.Now,
	}
}

// Enqueue сохраняет карточку задачи и публикует событие в stream:export:request
func (uc *ExportJobUseCase) Enqueue(ctx context.Context, req dto.ExportRequest) (*dto.ExportJobResponse, error) {
	now := uc.now().UTC()
	job := &domain.ExportJob{
		JobID:     uuid.New(),
		Kind:      domain.DatasetKind(req.Kind),
		Format:    domain.ExportFormat(req.Format),
		Status:    domain.ExportStatusQueued,
		CreatedAt: now,
	}

	// 1. Карточка задачи, чтобы статус был доступен сразу
	if err := uc.cacheRepo.SetExportJob(ctx, job, uc.ttl); err != nil {
		uc.logger.Error("Failed to store export job", zap.String("job_id", job.JobID.String()), zap.Error(err))
		return nil, apperrors.ErrCacheError
	}

	// 2. Событие для воркера
	event := &domain.ExportRequestEvent{
		JobID:     job.JobID,
		Kind:      job.Kind,
		Format:    job.Format,
		Seed:      req.Seed,
		States:    req.States,
		Regions:   req.Regions,
		CreatedAt: now,
	}
	if err := uc.streamRepo.PublishToStream(ctx, domain.StreamExportRequest, event); err != nil {
		uc.logger.Error("Failed to publish export request", zap.String("job_id", job.JobID.String()), zap.Error(err))
		// Карточку без события в очереди никто не обработает
		if delErr := uc.cacheRepo.DeleteExportJob(ctx, job.JobID); delErr != nil {
			uc.logger.Warn("Failed to delete orphan export job", zap.String("job_id", job.JobID.String()), zap.Error(delErr))
		}
		return nil, apperrors.ErrStreamError
	}

	metrics.ExportJob(req.Format, metrics.StatusQueued)
	uc.logger.Info("Export job queued",
		zap.String("job_id", job.JobID.String()),
		zap.String("dataset", req.Kind),
		zap.String("format", req.Format))

	id := job.JobID.String()
	return &dto.ExportJobResponse{
		JobID:     job.JobID,
		Status:    string(job.Status),
		StatusURL: "/api/v1/exports/" + id + "/status",
		ResultURL: "/api/v1/exports/" + id,
		CreatedAt: now,
	}, nil
}

// Status возвращает карточку задачи
func (uc *ExportJobUseCase) Status(ctx context.Context, jobID uuid.UUID) (*domain.ExportJob, error) {
	job, err := uc.cacheRepo.GetExportJob(ctx, jobID)
	if err != nil {
		uc.logger.Error("Failed to get export job", zap.String("job_id", jobID.String()), zap.Error(err))
		return nil, apperrors.ErrCacheError
	}
	if job == nil {
		return nil, apperrors.ErrExportNotReady.WithDetails(map[string]interface{}{
			"job_id": jobID.String(),
		})
	}
	return job, nil
}

// Download возвращает готовый файл; пока его нет - EXPORT_NOT_READY
func (uc *ExportJobUseCase) Download(ctx context.Context, jobID uuid.UUID) (*domain.ExportArtifact, error) {
	artifact, err := uc.cacheRepo.GetExport(ctx, jobID)
	if err != nil {
		uc.logger.Error("Failed to get export artifact", zap.String("job_id", jobID.String()), zap.Error(err))
		return nil, apperrors.ErrCacheError
	}
	if artifact == nil {
		return nil, apperrors.ErrExportNotReady.WithDetails(map[string]interface{}{
			"job_id": jobID.String(),
		})
	}
	return artifact, nil
}

// Process выполняет выгрузку из события очереди.
// Ошибка генерации завершает задачу статусом failed и не возвращается,
// ошибка записи в кеш возвращается, чтобы воркер повторил попытку.
func (uc *ExportJobUseCase) Process(ctx context.Context, event *domain.ExportRequestEvent) (*domain.ExportDoneEvent, error) {
	req := dto.ExportRequest{
		DatasetRequest: dto.DatasetRequest{
			Kind:    string(event.Kind),
			Seed:    event.Seed,
			States:  event.States,
			Regions: event.Regions,
		},
		Format: string(event.Format),
	}

	job := &domain.ExportJob{
		JobID:     event.JobID,
		Kind:      event.Kind,
		Format:    event.Format,
		CreatedAt: event.CreatedAt,
	}
	done := &domain.ExportDoneEvent{
		JobID:  event.JobID,
		Kind:   event.Kind,
		Format: event.Format,
	}

	file, err := uc.exports.Export(ctx, req)
	if err != nil {
		uc.logger.Warn("Export job failed",
			zap.String("job_id", event.JobID.String()),
			zap.Error(err))

		finished, storeErr := uc.fail(ctx, job, err.Error())
		if storeErr != nil {
			return nil, storeErr
		}
		done.Error = job.Error
		done.Finished = finished
		return done, nil
	}

	artifact := &domain.ExportArtifact{
		JobID:       event.JobID,
		Kind:        event.Kind,
		Format:      event.Format,
		Filename:    file.Filename,
		ContentType: file.ContentType,
		Rows:        file.Rows,
		Data:        file.Data,
	}
	if err := uc.cacheRepo.SetExport(ctx, artifact, uc.ttl); err != nil {
		return nil, fmt.Errorf("store export artifact: %w", err)
	}

	finished := uc.now().UTC()
	job.Status = domain.ExportStatusDone
	job.Rows = file.Rows
	job.FinishedAt = &finished
	if err := uc.cacheRepo.SetExportJob(ctx, job, uc.ttl); err != nil {
		return nil, fmt.Errorf("store export job: %w", err)
	}

	metrics.ExportJob(string(event.Format), metrics.StatusDone)
	uc.logger.Info("Export job done",
		zap.String("job_id", event.JobID.String()),
		zap.Int("rows", file.Rows))

	done.Rows = file.Rows
	done.Finished = finished
	return done, nil
}

// MarkFailed переводит задачу в failed, когда воркер исчерпал повторы
func (uc *ExportJobUseCase) MarkFailed(ctx context.Context, event *domain.ExportRequestEvent, reason string) error {
	job := &domain.ExportJob{
		JobID:     event.JobID,
		Kind:      event.Kind,
		Format:    event.Format,
		CreatedAt: event.CreatedAt,
	}
	_, err := uc.fail(ctx, job, reason)
	return err
}

func (uc *ExportJobUseCase) fail(ctx context.Context, job *domain.ExportJob, reason string) (time.Time, error) {
	finished := uc.now().UTC()
	job.Status = domain.ExportStatusFailed
	job.Error = reason
	job.FinishedAt = &finished
	if err := uc.cacheRepo.SetExportJob(ctx, job, uc.ttl); err != nil {
		return finished, fmt.Errorf("store failed export job: %w", err)
	}

	metrics.ExportJob(string(job.Format), metrics.StatusFailed)
	return finished, nil
}
