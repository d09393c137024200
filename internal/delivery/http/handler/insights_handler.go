package handler

import (
	"github.com/broadband-analytics/internal/pkg/utils"
	"github.com/broadband-analytics/internal/usecase"
	"github.com/broadband-analytics/internal/usecase/dto"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// InsightsHandler - обработчик аналитических сводок для дашборда
type InsightsHandler struct {
	insightsUC *usecase.InsightsUseCase
	logger     *zap.Logger
}

// NewInsightsHandler создает новый InsightsHandler
func NewInsightsHandler(insightsUC *usecase.InsightsUseCase, logger *zap.Logger) *InsightsHandler {
	return &InsightsHandler{
		insightsUC: insightsUC,
		logger:     logger,
	}
}

// GetSummary godoc
// @Summary Ключевые показатели
// @Description Среднее проникновение, число абонентов, годовой рост и разрыв город/село
// @Tags Insights
// @Produce json
// @Param seed query int false "Seed генератора"
// @Success 200 {object} utils.SuccessResponse{data=dto.SummaryResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/insights/summary [get]
func (h *InsightsHandler) GetSummary(c *fiber.Ctx) error {
	req, err := insightsRequest(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	summary, err := h.insightsUC.Summary(c.UserContext(), req)
	if err != nil {
		logFailure(h.logger, "Summary failed", err)
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, summary, &utils.Meta{Seed: req.Seed})
}

// GetRegions godoc
// @Summary Показатели по регионам
// @Tags Insights
// @Produce json
// @Param seed query int false "Seed генератора"
// @Success 200 {object} utils.SuccessResponse{data=[]dto.RegionInsight}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/insights/regions [get]
func (h *InsightsHandler) GetRegions(c *fiber.Ctx) error {
	req, err := insightsRequest(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	regions, err := h.insightsUC.Regions(c.UserContext(), req)
	if err != nil {
		logFailure(h.logger, "Regions insight failed", err)
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, regions, &utils.Meta{
		Total: len(regions),
		Seed:  req.Seed,
	})
}

// GetPriority godoc
// @Summary Приоритетные штаты
// @Description Штаты с наибольшим потенциальным эффектом от инвестиций
// @Tags Insights
// @Produce json
// @Param seed query int false "Seed генератора"
// @Param limit query int false "Количество штатов (1-30)" default(10)
// @Success 200 {object} utils.SuccessResponse{data=table.Frame}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/insights/priority [get]
func (h *InsightsHandler) GetPriority(c *fiber.Ctx) error {
	req, err := insightsRequest(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	frame, err := h.insightsUC.Priority(c.UserContext(), req)
	if err != nil {
		logFailure(h.logger, "Priority insight failed", err)
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, frame, &utils.Meta{
		Total: frame.Len(),
		Limit: req.Limit,
		Seed:  req.Seed,
	})
}

// GetGrowth godoc
// @Summary Динамика абонентской базы
// @Description CAGR, последний годовой рост и поквартальные значения
// @Tags Insights
// @Produce json
// @Param seed query int false "Seed генератора"
// @Param months query int false "Окно последних месяцев (2-120), по умолчанию весь ряд"
// @Success 200 {object} utils.SuccessResponse{data=dto.GrowthResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/insights/growth [get]
func (h *InsightsHandler) GetGrowth(c *fiber.Ctx) error {
	seed, err := parseSeed(c)
	if err != nil {
		return utils.SendError(c, err)
	}
	months, err := parseInt(c, "months")
	if err != nil {
		return utils.SendError(c, err)
	}

	req := dto.GrowthRequest{Seed: seed, Months: months}
	if err := validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	growth, err := h.insightsUC.Growth(c.UserContext(), req)
	if err != nil {
		logFailure(h.logger, "Growth insight failed", err)
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, growth, &utils.Meta{Seed: seed})
}

// GetDemographics godoc
// @Summary Демографический разрез
// @Description Гендерный разрыв по штатам, возрастные группы и матрица доход x образование
// @Tags Insights
// @Produce json
// @Param seed query int false "Seed генератора"
// @Success 200 {object} utils.SuccessResponse{data=dto.DemographicsResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/insights/demographics [get]
func (h *InsightsHandler) GetDemographics(c *fiber.Ctx) error {
	req, err := insightsRequest(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	demo, err := h.insightsUC.Demographics(c.UserContext(), req)
	if err != nil {
		logFailure(h.logger, "Demographics insight failed", err)
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, demo, &utils.Meta{Seed: req.Seed})
}

func insightsRequest(c *fiber.Ctx) (dto.InsightsRequest, error) {
	seed, err := parseSeed(c)
	if err != nil {
		return dto.InsightsRequest{}, err
	}
	limit, err := parseInt(c, "limit")
	if err != nil {
		return dto.InsightsRequest{}, err
	}

	req := dto.InsightsRequest{Seed: seed, Limit: limit}
	if err := validate(&req); err != nil {
		return dto.InsightsRequest{}, err
	}
	return req, nil
}
