package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "broadband"

var (
	// GenerationDuration - время генерации таблицы по типу датасета
	GenerationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "generation_duration_seconds",
		Help:      "Time spent generating a synthetic dataset.",
		Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 14),
	}, []string{"dataset"})

	// DatasetCache - обращения к кешу сидированных датасетов
	DatasetCache = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "dataset_cache_total",
		Help:      "Dataset cache lookups by result.",
	}, []string{"dataset", "result"})

	// ExportJobs - экспортные задачи по формату и статусу
	ExportJobs = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "export_jobs_total",
		Help:      "Export jobs by format and status.",
	}, []string{"format", "status"})

	// HTTPRequests - HTTP-запросы по маршруту и коду ответа
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "HTTP requests by route, method and status.",
	}, []string{"route", "method", "status"})
)

const (
	CacheHit   = "hit"
	CacheMiss  = "miss"
	CacheError = "error"

	StatusQueued = "queued"
	StatusDone   = "done"
	StatusFailed = "failed"
)

// ObserveGeneration записывает длительность генерации датасета
func ObserveGeneration(dataset string, started time.Time) {
	GenerationDuration.WithLabelValues(dataset).Observe(time.Since(started).Seconds())
}

// CacheResult увеличивает счетчик обращений к кешу
func CacheResult(dataset, result string) {
	DatasetCache.WithLabelValues(dataset, result).Inc()
}

// ExportJob увеличивает счетчик экспортных задач
func ExportJob(format, status string) {
	ExportJobs.WithLabelValues(format, status).Inc()
}
