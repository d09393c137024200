package main

// @title Rural Broadband Analytics API
// @version 1.0.0
// @description Сервис синтетической статистики широкополосного доступа в сельской Индии.
// @description
// @description Основные возможности:
// @description - Генерация таблиц по штатам, районам, демографии и динамике абонентов
// @description - Воспроизводимые выборки по seed с кешированием в Redis
// @description - Сводные показатели и поквартальная динамика для дашборда
// @description - PNG-графики и выгрузка в CSV/XLSX, в том числе через очередь

// @contact.name API Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/broadband-analytics/docs"
	"github.com/broadband-analytics/internal/config"
	httpDelivery "github.com/broadband-analytics/internal/delivery/http"
	"github.com/broadband-analytics/internal/delivery/http/handler"
	"github.com/broadband-analytics/internal/generator"
	"github.com/broadband-analytics/internal/pkg/logger"
	"github.com/broadband-analytics/internal/repository/cache"
	redisRepo "github.com/broadband-analytics/internal/repository/redis"
	"github.com/broadband-analytics/internal/usecase"
	"go.uber.org/zap"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level, "api")
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Rural Broadband Analytics API")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.String("params_file", cfg.Generator.ParamsFile),
	)

	// 3. Generator parameters
	params, err := generator.LoadParams(cfg.Generator.ParamsFile)
	if err != nil {
		log.Fatal("Failed to load generator params", zap.Error(err))
	}
	engine := generator.NewEngine(nil, params)
	log.Info("Generator ready", zap.String("params_version", engine.Version()))

	// 4. Connect to Redis
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}

	// 5. Repositories
	cacheRepo := cache.NewCacheRepository(redisClient)
	streamRepo := redisRepo.NewStreamRepository(redisClient.Client(), log)

	// 6. Use cases
	datasetUC := usecase.NewDatasetUseCase(engine, cacheRepo, log, cfg.Cache.DatasetTTL)
	insightsUC := usecase.NewInsightsUseCase(datasetUC, log)
	chartUC := usecase.NewChartUseCase(datasetUC, log)
	exportUC := usecase.NewExportUseCase(datasetUC, log)
	exportJobUC := usecase.NewExportJobUseCase(exportUC, cacheRepo, streamRepo, log, cfg.Cache.ExportTTL)

	// 7. HTTP handlers and server
	server := httpDelivery.NewServer(
		cfg,
		log,
		handler.NewDatasetHandler(datasetUC, exportUC, log),
		handler.NewInsightsHandler(insightsUC, log),
		handler.NewChartHandler(chartUC, log),
		handler.NewExportHandler(exportJobUC, log),
	)

	// 8. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 9. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	if err := redisClient.Close(); err != nil {
		log.Error("Failed to close Redis", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
