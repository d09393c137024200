package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/broadband-analytics/internal/config"
	"github.com/broadband-analytics/internal/generator"
	"github.com/broadband-analytics/internal/pkg/logger"
	"github.com/broadband-analytics/internal/repository/cache"
	redisRepo "github.com/broadband-analytics/internal/repository/redis"
	"github.com/broadband-analytics/internal/usecase"
	"github.com/broadband-analytics/internal/worker"
	"github.com/broadband-analytics/internal/worker/export"
	"go.uber.org/zap"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// Check if worker is enabled
	if !cfg.Worker.Enabled {
		fmt.Println("Worker is disabled in configuration. Set WORKER_ENABLED=true to enable.")
		os.Exit(0)
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level, "export-worker")
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Dataset Export Worker")
	log.Info("Configuration loaded",
		zap.String("consumer_group", cfg.Worker.ConsumerGroup),
		zap.Int("batch_size", cfg.Worker.BatchSize),
		zap.Int("max_retries", cfg.Worker.MaxRetries),
		zap.Duration("export_ttl", cfg.Cache.ExportTTL))

	// 3. Параметры генератора должны совпадать с API, иначе выгрузки по seed разойдутся
	params, err := generator.LoadParams(cfg.Generator.ParamsFile)
	if err != nil {
		log.Fatal("Failed to load generator params", zap.Error(err))
	}
	engine := generator.NewEngine(nil, params)

	// 4. Connect to Redis
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()

	// 5. Initialize repositories
	cacheRepo := cache.NewCacheRepository(redisClient)
	streamRepo := redisRepo.NewStreamRepository(redisClient.Client(), log)

	// 6. Initialize use cases
	datasetUC := usecase.NewDatasetUseCase(engine, cacheRepo, log, cfg.Cache.DatasetTTL)
	exportUC := usecase.NewExportUseCase(datasetUC, log)
	exportJobUC := usecase.NewExportJobUseCase(exportUC, cacheRepo, streamRepo, log, cfg.Cache.ExportTTL)

	// 7. Initialize workers
	exportWorker := export.NewExportWorker(
		streamRepo,
		exportJobUC,
		cfg.Worker.ConsumerGroup,
		cfg.Worker.BatchSize,
		cfg.Worker.MaxRetries,
		log,
	)

	// 8. Create worker manager and register workers
	workerManager := worker.NewWorkerManager(log)
	workerManager.Register(exportWorker)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := workerManager.Start(ctx); err != nil {
		log.Fatal("Failed to start workers", zap.Error(err))
	}

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan
	log.Info("Received shutdown signal")

	cancel()

	if err := workerManager.Stop(); err != nil {
		log.Error("Error stopping workers", zap.Error(err))
	}

	log.Info("Worker shutdown complete")
}
