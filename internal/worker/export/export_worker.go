package export

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/broadband-analytics/internal/domain"
	"github.com/broadband-analytics/internal/domain/repository"
	"github.com/broadband-analytics/internal/worker"
	"go.uber.org/zap"
)

const (
	// WorkerName - имя воркера в логах и WorkerManager
	WorkerName = "dataset-export"

	defaultBatchSize = 20
	emptyQueueSleep  = 100 * time.Millisecond // пауза если очередь пуста
	errorSleep       = time.Second            // пауза после ошибки чтения
	retryBackoff     = 200 * time.Millisecond
)

// Processor выполняет одну выгрузку и возвращает событие о результате.
// MarkFailed закрывает задачу, когда повторы исчерпаны.
type Processor interface {
	Process(ctx context.Context, event *domain.ExportRequestEvent) (*domain.ExportDoneEvent, error)
	MarkFailed(ctx context.Context, event *domain.ExportRequestEvent, reason string) error
}

// ExportWorker читает stream:export:request пачками, выполняет выгрузки
// и публикует результат в stream:export:done
type ExportWorker struct {
	*worker.BaseWorker
	streamRepo repository.StreamRepository
	processor  Processor
	batchSize  int
	maxRetries int
	now        func() time.Time
}

// NewExportWorker создает новый ExportWorker
func NewExportWorker(
	streamRepo repository.StreamRepository,
	processor Processor,
	consumerGroup string,
	batchSize int,
	maxRetries int,
	logger *zap.Logger,
) *ExportWorker {
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}
	if maxRetries <= 0 {
		maxRetries = 1
	}

	return &ExportWorker{
		BaseWorker: worker.NewBaseWorker(WorkerName, consumerGroup, logger),
		streamRepo: streamRepo,
		processor:  processor,
		batchSize:  batchSize,
		maxRetries: maxRetries,
		now:        time.Now,
	}
}

// Start запускает цикл обработки до Stop или отмены контекста
func (w *ExportWorker) Start(ctx context.Context) error {
	logger := w.Logger()
	logger.Info("Starting ExportWorker (batch mode)",
		zap.String("consumer_group", w.ConsumerGroup()),
		zap.String("consumer_name", w.ConsumerName()),
		zap.Int("batch_size", w.batchSize))

	if err := w.streamRepo.CreateConsumerGroup(ctx, domain.StreamExportRequest, w.ConsumerGroup()); err != nil {
		logger.Error("Failed to create consumer group", zap.Error(err))
		return fmt.Errorf("failed to create consumer group: %w", err)
	}

	for {
		select {
		case <-w.StopChan():
			logger.Info("Worker stopped")
			return nil

		case <-ctx.Done():
			logger.Info("Context cancelled")
			return ctx.Err()

		default:
			processed, err := w.ProcessBatch(ctx)
			if err != nil {
				logger.Error("Failed to process batch", zap.Error(err))
				w.Pause(ctx, errorSleep)
				continue
			}

			if processed == 0 {
				w.Pause(ctx, emptyQueueSleep)
			}
		}
	}
}

// ProcessBatch читает и обрабатывает одну пачку сообщений.
// Возвращает число прочитанных сообщений.
func (w *ExportWorker) ProcessBatch(ctx context.Context) (int, error) {
	logger := w.Logger()

	// 1. Читаем пачку (неблокирующий режим)
	messages, err := w.streamRepo.ConsumeBatch(
		ctx,
		domain.StreamExportRequest,
		w.ConsumerGroup(),
		w.ConsumerName(),
		w.batchSize,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to consume batch: %w", err)
	}
	if len(messages) == 0 {
		return 0, nil
	}

	logger.Info("Processing batch", zap.Int("message_count", len(messages)))

	acked := make([]string, 0, len(messages))
	for _, msg := range messages {
		// 2. Битые сообщения подтверждаем, чтобы не застревали в pending
		event, err := parseMessage(msg)
		if err != nil {
			logger.Warn("Failed to parse message, skipping",
				zap.String("message_id", msg.ID),
				zap.Error(err))
			acked = append(acked, msg.ID)
			continue
		}

		// 3. Выполняем выгрузку с повторами
		done := w.processWithRetry(ctx, event)

		// 4. Публикуем результат
		if err := w.streamRepo.PublishToStream(ctx, domain.StreamExportDone, done); err != nil {
			logger.Error("Failed to publish done event",
				zap.String("job_id", event.JobID.String()),
				zap.Error(err))
		}
		acked = append(acked, msg.ID)
	}

	// 5. ACK всей пачки
	if err := w.streamRepo.AckMessages(ctx, domain.StreamExportRequest, w.ConsumerGroup(), acked); err != nil {
		logger.Error("Failed to ack messages", zap.Error(err))
	}

	logger.Info("Batch processed", zap.Int("processed", len(acked)))
	return len(messages), nil
}

// processWithRetry повторяет выгрузку при инфраструктурных ошибках;
// после maxRetries попыток задача считается проваленной
func (w *ExportWorker) processWithRetry(ctx context.Context, event *domain.ExportRequestEvent) *domain.ExportDoneEvent {
	var lastErr error
	for attempt := 1; attempt <= w.maxRetries; attempt++ {
		done, err := w.processor.Process(ctx, event)
		if err == nil {
			return done
		}
		lastErr = err
		w.Logger().Warn("Export attempt failed",
			zap.String("job_id", event.JobID.String()),
			zap.Int("attempt", attempt),
			zap.Error(err))

		if attempt < w.maxRetries && !w.Pause(ctx, retryBackoff) {
			break
		}
	}

	if err := w.processor.MarkFailed(ctx, event, lastErr.Error()); err != nil {
		w.Logger().Warn("Failed to mark export job as failed",
			zap.String("job_id", event.JobID.String()),
			zap.Error(err))
	}

	return &domain.ExportDoneEvent{
		JobID:    event.JobID,
		Kind:     event.Kind,
		Format:   event.Format,
		Error:    lastErr.Error(),
		Finished: w.now().UTC(),
	}
}

// parseMessage разбирает JSON события из поля data
func parseMessage(msg domain.StreamMessage) (*domain.ExportRequestEvent, error) {
	if msg.Data == "" {
		return nil, fmt.Errorf("missing or invalid 'data' field")
	}

	var event domain.ExportRequestEvent
	if err := json.Unmarshal([]byte(msg.Data), &event); err != nil {
		return nil, fmt.Errorf("failed to unmarshal event: %w", err)
	}
	if !event.Kind.IsValid() {
		return nil, fmt.Errorf("unknown dataset %q", event.Kind)
	}
	return &event, nil
}
