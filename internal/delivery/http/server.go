package http

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/broadband-analytics/internal/config"
	"github.com/broadband-analytics/internal/delivery/http/handler"
	"github.com/broadband-analytics/internal/delivery/http/middleware"
	"github.com/broadband-analytics/internal/pkg/errors"
	"github.com/broadband-analytics/internal/pkg/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"
)

// Server - HTTP сервер на основе Fiber
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	// Handlers
	datasetHandler  *handler.DatasetHandler
	insightsHandler *handler.InsightsHandler
	chartHandler    *handler.ChartHandler
	exportHandler   *handler.ExportHandler
}

// NewServer - создание нового HTTP сервера
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	datasetHandler *handler.DatasetHandler,
	insightsHandler *handler.InsightsHandler,
	chartHandler *handler.ChartHandler,
	exportHandler *handler.ExportHandler,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Rural Broadband Analytics",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:             app,
		config:          cfg,
		logger:          logger,
		datasetHandler:  datasetHandler,
		insightsHandler: insightsHandler,
		chartHandler:    chartHandler,
		exportHandler:   exportHandler,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

// App возвращает приложение Fiber (используется в тестах через app.Test)
func (s *Server) App() *fiber.App {
	return s.app
}

// setupMiddlewares - настройка middleware
func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery(s.logger))
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS())
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

// setupRoutes - настройка маршрутов
func (s *Server) setupRoutes() {
	// Swagger documentation route
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	// Prometheus
	s.app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	api := s.app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	api.Get("/catalog/states", s.datasetHandler.GetCatalog)

	// Datasets
	datasets := api.Group("/datasets")
	datasets.Get("/:kind", s.datasetHandler.GetDataset)
	datasets.Get("/:kind/long", s.datasetHandler.GetDatasetLong)
	datasets.Get("/:kind/export", s.datasetHandler.ExportDataset)

	// Insights
	insights := api.Group("/insights")
	insights.Get("/summary", s.insightsHandler.GetSummary)
	insights.Get("/regions", s.insightsHandler.GetRegions)
	insights.Get("/priority", s.insightsHandler.GetPriority)
	insights.Get("/growth", s.insightsHandler.GetGrowth)
	insights.Get("/demographics", s.insightsHandler.GetDemographics)

	// Charts, имя графика с суффиксом .png
	api.Get("/charts/:chart", s.chartHandler.GetChart)

	// Async exports
	api.Post("/exports", s.exportHandler.CreateExport)
	api.Get("/exports/:id", s.exportHandler.DownloadExport)
	api.Get("/exports/:id/status", s.exportHandler.GetExportStatus)
}

// Start - запуск HTTP сервера
func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

// Shutdown - graceful shutdown HTTP сервера
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

// customErrorHandler - ошибки Fiber (404 маршрута, 405) и AppError в едином формате ответа
func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		if appErr, ok := errors.AsAppError(err); ok {
			return utils.SendError(c, appErr)
		}

		code := fiber.StatusInternalServerError
		var fiberErr *fiber.Error
		if stderrors.As(err, &fiberErr) {
			code = fiberErr.Code
		}

		if code >= fiber.StatusInternalServerError {
			logger.Error("HTTP Error",
				zap.String("path", c.Path()),
				zap.Int("status", code),
				zap.Error(err),
			)
		}

		return c.Status(code).JSON(utils.ErrorResponse{
			Error: errors.New(errorCode(code), err.Error(), code),
		})
	}
}

func errorCode(status int) string {
	switch status {
	case fiber.StatusNotFound:
		return "NOT_FOUND"
	case fiber.StatusMethodNotAllowed:
		return "METHOD_NOT_ALLOWED"
	case fiber.StatusBadRequest:
		return "BAD_REQUEST"
	default:
		return "INTERNAL_SERVER_ERROR"
	}
}
