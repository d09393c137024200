package handler

import (
	"fmt"

	"github.com/broadband-analytics/internal/pkg/errors"
	"github.com/broadband-analytics/internal/pkg/utils"
	"github.com/broadband-analytics/internal/usecase"
	"github.com/broadband-analytics/internal/usecase/dto"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ExportHandler - обработчик асинхронных выгрузок через очередь
type ExportHandler struct {
	exportJobUC *usecase.ExportJobUseCase
	logger      *zap.Logger
}

// NewExportHandler создает новый ExportHandler
func NewExportHandler(exportJobUC *usecase.ExportJobUseCase, logger *zap.Logger) *ExportHandler {
	return &ExportHandler{
		exportJobUC: exportJobUC,
		logger:      logger,
	}
}

// CreateExport godoc
// @Summary Поставить выгрузку в очередь
// @Description Публикует задачу в stream:export:request, файл забирается по result_url
// @Tags Exports
// @Accept json
// @Produce json
// @Param request body dto.ExportRequest true "Параметры выгрузки"
// @Success 202 {object} utils.SuccessResponse{data=dto.ExportJobResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/exports [post]
func (h *ExportHandler) CreateExport(c *fiber.Ctx) error {
	var req dto.ExportRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithMessage("Invalid request body"))
	}

	if err := validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	job, err := h.exportJobUC.Enqueue(c.UserContext(), req)
	if err != nil {
		logFailure(h.logger, "Failed to enqueue export", err, zap.String("kind", req.Kind))
		return utils.SendError(c, err)
	}

	c.Set(fiber.HeaderLocation, job.StatusURL)
	return utils.SendAccepted(c, job)
}

// GetExportStatus godoc
// @Summary Статус выгрузки
// @Tags Exports
// @Produce json
// @Param id path string true "ID задачи"
// @Success 200 {object} utils.SuccessResponse{data=domain.ExportJob}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/exports/{id}/status [get]
func (h *ExportHandler) GetExportStatus(c *fiber.Ctx) error {
	id, err := jobID(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	job, err := h.exportJobUC.Status(c.UserContext(), id)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, job, nil)
}

// DownloadExport godoc
// @Summary Скачать готовую выгрузку
// @Tags Exports
// @Produce text/csv
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param id path string true "ID задачи"
// @Success 200 {file} file
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/exports/{id} [get]
func (h *ExportHandler) DownloadExport(c *fiber.Ctx) error {
	id, err := jobID(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	artifact, err := h.exportJobUC.Download(c.UserContext(), id)
	if err != nil {
		return utils.SendError(c, err)
	}

	c.Set(fiber.HeaderContentType, artifact.ContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", artifact.Filename))
	return c.Send(artifact.Data)
}

func jobID(c *fiber.Ctx) (uuid.UUID, error) {
	raw := c.Params("id")
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"id": "must be a UUID",
		})
	}
	return id, nil
}
