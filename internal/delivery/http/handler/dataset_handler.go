package handler

import (
	"fmt"
	"time"

	"github.com/broadband-analytics/internal/domain"
	"github.com/broadband-analytics/internal/pkg/errors"
	"github.com/broadband-analytics/internal/pkg/utils"
	"github.com/broadband-analytics/internal/usecase"
	"github.com/broadband-analytics/internal/usecase/dto"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// DatasetHandler - обработчик запросов синтетических таблиц
type DatasetHandler struct {
	datasetUC *usecase.DatasetUseCase
	exportUC  *usecase.ExportUseCase
	logger    *zap.Logger
}

// NewDatasetHandler создает новый DatasetHandler
func NewDatasetHandler(
	datasetUC *usecase.DatasetUseCase,
	exportUC *usecase.ExportUseCase,
	logger *zap.Logger,
) *DatasetHandler {
	return &DatasetHandler{
		datasetUC: datasetUC,
		exportUC:  exportUC,
		logger:    logger,
	}
}

// GetCatalog godoc
// @Summary Справочник штатов
// @Description Возвращает 30 штатов с регионом и сельским населением
// @Tags Catalog
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=[]generator.CatalogEntry}
// @Router /api/v1/catalog/states [get]
func (h *DatasetHandler) GetCatalog(c *fiber.Ctx) error {
	entries := h.datasetUC.Catalog()
	return utils.SendSuccess(c, entries, &utils.Meta{
		Total:         len(entries),
		ParamsVersion: h.datasetUC.ParamsVersion(),
	})
}

// GetDataset godoc
// @Summary Сгенерировать таблицу
// @Description Генерирует таблицу по типу. С seed результат воспроизводим и кешируется.
// @Tags Datasets
// @Produce json
// @Param kind path string true "Тип таблицы" Enums(states, districts, time-series, state-time-series, demographics, income-education, usage, connection-mix, services, priority)
// @Param seed query int false "Seed генератора"
// @Param states query string false "Штаты через запятую"
// @Param regions query string false "Регионы через запятую"
// @Success 200 {object} utils.SuccessResponse{data=table.Frame}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/datasets/{kind} [get]
func (h *DatasetHandler) GetDataset(c *fiber.Ctx) error {
	started := time.Now()

	req, err := h.datasetRequest(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	h.logger.Debug("Dataset request",
		zap.String("kind", req.Kind),
		zap.Bool("seeded", req.Seed != nil),
		zap.Strings("states", req.States),
		zap.Strings("regions", req.Regions))

	result, err := h.datasetUC.Generate(c.UserContext(), req)
	if err != nil {
		logFailure(h.logger, "Dataset generation failed", err, zap.String("kind", req.Kind))
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result.Frame, resultMeta(result, started))
}

// GetDatasetLong godoc
// @Summary Таблица в длинном формате
// @Description Разворачивает колонки значений в пары (переменная, значение)
// @Tags Datasets
// @Produce json
// @Param kind path string true "Тип таблицы"
// @Param seed query int false "Seed генератора"
// @Param id_vars query string false "Колонки-идентификаторы через запятую"
// @Param value_vars query string false "Колонки значений через запятую"
// @Param var_name query string false "Имя колонки переменной" default(variable)
// @Param value_name query string false "Имя колонки значения" default(value)
// @Success 200 {object} utils.SuccessResponse{data=table.Frame}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/datasets/{kind}/long [get]
func (h *DatasetHandler) GetDatasetLong(c *fiber.Ctx) error {
	started := time.Now()

	base, err := h.datasetRequest(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	req := dto.MeltRequest{
		DatasetRequest: base,
		IDVars:         parseList(c, "id_vars"),
		ValueVars:      parseList(c, "value_vars"),
		VarName:        c.Query("var_name"),
		ValueName:      c.Query("value_name"),
	}
	if err := validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.datasetUC.Melt(c.UserContext(), req)
	if err != nil {
		logFailure(h.logger, "Dataset melt failed", err, zap.String("kind", req.Kind))
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result.Frame, resultMeta(result, started))
}

// ExportDataset godoc
// @Summary Скачать таблицу
// @Description Синхронная выгрузка таблицы в CSV или XLSX
// @Tags Datasets
// @Produce text/csv
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param kind path string true "Тип таблицы"
// @Param format query string false "Формат" Enums(csv, xlsx) default(csv)
// @Param seed query int false "Seed генератора"
// @Success 200 {file} file
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/datasets/{kind}/export [get]
func (h *DatasetHandler) ExportDataset(c *fiber.Ctx) error {
	base, err := h.datasetRequest(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	req := dto.ExportRequest{
		DatasetRequest: base,
		Format:         c.Query("format", string(domain.ExportFormatCSV)),
	}
	if !isExportFormat(req.Format) {
		return utils.SendError(c, errors.ErrUnsupportedFormat.WithDetails(map[string]interface{}{
			"format": req.Format,
		}))
	}

	file, err := h.exportUC.Export(c.UserContext(), req)
	if err != nil {
		logFailure(h.logger, "Dataset export failed", err,
			zap.String("kind", req.Kind),
			zap.String("format", req.Format))
		return utils.SendError(c, err)
	}

	h.logger.Info("Dataset exported",
		zap.String("filename", file.Filename),
		zap.Int("rows", file.Rows),
		zap.Int("size", len(file.Data)))

	c.Set(fiber.HeaderContentType, file.ContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", file.Filename))
	return c.Send(file.Data)
}

// datasetRequest собирает запрос из пути и query. Неизвестный тип - 404, а не ошибка валидации.
func (h *DatasetHandler) datasetRequest(c *fiber.Ctx) (dto.DatasetRequest, error) {
	kind := c.Params("kind")
	if !domain.DatasetKind(kind).IsValid() {
		return dto.DatasetRequest{}, errors.ErrUnknownDataset.WithDetails(map[string]interface{}{
			"kind": kind,
		})
	}

	seed, err := parseSeed(c)
	if err != nil {
		return dto.DatasetRequest{}, err
	}

	req := dto.DatasetRequest{
		Kind:    kind,
		Seed:    seed,
		States:  parseList(c, "states"),
		Regions: parseList(c, "regions"),
	}
	if err := validate(&req); err != nil {
		return dto.DatasetRequest{}, err
	}
	return req, nil
}

func resultMeta(result *dto.DatasetResult, started time.Time) *utils.Meta {
	return &utils.Meta{
		Total:         result.Frame.Len(),
		Dataset:       string(result.Kind),
		Seed:          result.Seed,
		ParamsVersion: result.ParamsVersion,
		Cached:        result.Cached,
		TimeMSec:      float64(time.Since(started).Microseconds()) / 1000,
	}
}

func isExportFormat(format string) bool {
	switch domain.ExportFormat(format) {
	case domain.ExportFormatCSV, domain.ExportFormatXLSX:
		return true
	}
	return false
}
