package handler

import (
	"slices"
	"strings"

	"github.com/broadband-analytics/internal/pkg/errors"
	"github.com/broadband-analytics/internal/pkg/utils"
	"github.com/broadband-analytics/internal/usecase"
	"github.com/broadband-analytics/internal/usecase/dto"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ChartHandler - обработчик PNG-графиков
type ChartHandler struct {
	chartUC *usecase.ChartUseCase
	logger  *zap.Logger
}

// NewChartHandler создает новый ChartHandler
func NewChartHandler(chartUC *usecase.ChartUseCase, logger *zap.Logger) *ChartHandler {
	return &ChartHandler{
		chartUC: chartUC,
		logger:  logger,
	}
}

// GetChart godoc
// @Summary PNG-график
// @Tags Charts
// @Produce png
// @Param chart path string true "График" Enums(state-penetration.png, time-series.png, device-mix.png)
// @Param seed query int false "Seed генератора"
// @Param width query int false "Ширина в пикселях (200-2400)" default(1000)
// @Param height query int false "Высота в пикселях (150-1800)" default(560)
// @Success 200 {file} file
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/charts/{chart} [get]
func (h *ChartHandler) GetChart(c *fiber.Ctx) error {
	chart := strings.TrimSuffix(c.Params("chart"), ".png")
	if !slices.Contains(usecase.Charts(), chart) {
		return utils.SendError(c, errors.ErrUnknownChart.WithDetails(map[string]interface{}{
			"chart":     chart,
			"available": usecase.Charts(),
		}))
	}

	seed, err := parseSeed(c)
	if err != nil {
		return utils.SendError(c, err)
	}
	width, err := parseInt(c, "width")
	if err != nil {
		return utils.SendError(c, err)
	}
	height, err := parseInt(c, "height")
	if err != nil {
		return utils.SendError(c, err)
	}

	req := dto.ChartRequest{Chart: chart, Seed: seed, Width: width, Height: height}
	if err := validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	png, err := h.chartUC.Render(c.UserContext(), req)
	if err != nil {
		logFailure(h.logger, "Chart render failed", err, zap.String("chart", chart))
		return utils.SendError(c, err)
	}

	h.logger.Debug("Chart rendered", zap.String("chart", chart), zap.Int("size", len(png)))

	c.Set(fiber.HeaderContentType, "image/png")
	return c.Send(png)
}
