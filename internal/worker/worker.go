package worker

import (
	"context"
)

// Worker - фоновый процесс, управляемый WorkerManager
type Worker interface {
	// Start блокируется до остановки воркера или отмены контекста
	Start(ctx context.Context) error

	// Stop сигнализирует о завершении
	Stop() error

	// Name возвращает имя воркера
	Name() string
}
