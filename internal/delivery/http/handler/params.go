package handler

import (
	"strconv"
	"strings"

	"github.com/broadband-analytics/internal/pkg/errors"
	"github.com/broadband-analytics/internal/pkg/validator"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// parseSeed читает необязательный query-параметр seed
func parseSeed(c *fiber.Ctx) (*uint64, error) {
	raw := strings.TrimSpace(c.Query("seed"))
	if raw == "" {
		return nil, nil
	}

	seed, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return nil, errors.ErrInvalidSeed.WithDetails(map[string]interface{}{
			"seed": raw,
		})
	}
	return &seed, nil
}

// parseList разбирает список через запятую, пустые элементы отбрасываются
func parseList(c *fiber.Ctx, key string) []string {
	raw := c.Query(key)
	if raw == "" {
		return nil
	}

	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// parseInt читает целочисленный query-параметр, 0 - если параметр не задан
func parseInt(c *fiber.Ctx, key string) (int, error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return 0, nil
	}

	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			key: "must be an integer",
		})
	}
	return v, nil
}

// validate проверяет структуру запроса и возвращает INVALID_REQUEST с деталями
func validate(req interface{}) error {
	if err := validator.Validate(req); err != nil {
		return errors.ErrInvalidRequest.WithDetails(validator.Details(err))
	}
	return nil
}

// logFailure пишет клиентские ошибки (4xx) в Warn, остальные в Error
func logFailure(logger *zap.Logger, msg string, err error, fields ...zap.Field) {
	fields = append(fields, zap.Error(err))
	if appErr, ok := errors.AsAppError(err); ok && appErr.StatusCode < fiber.StatusInternalServerError {
		logger.Warn(msg, fields...)
		return
	}
	logger.Error(msg, fields...)
}
