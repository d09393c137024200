package validator

import (
	stderrors "errors"
	"strings"

	"github.com/broadband-analytics/internal/domain"
	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	_ = validate.RegisterValidation("dataset_kind", func(fl validator.FieldLevel) bool {
		return domain.DatasetKind(fl.Field().String()).IsValid()
	})
	_ = validate.RegisterValidation("export_format", func(fl validator.FieldLevel) bool {
		switch domain.ExportFormat(fl.Field().String()) {
		case domain.ExportFormatCSV, domain.ExportFormatXLSX:
			return true
		}
		return false
	})
	_ = validate.RegisterValidation("region", func(fl validator.FieldLevel) bool {
		_, ok := domain.ParseRegion(fl.Field().String())
		return ok
	})
}

// Validate - валидация структуры
func Validate(s interface{}) error {
	return validate.Struct(s)
}

// GetValidator - получить валидатор для кастомной конфигурации
func GetValidator() *validator.Validate {
	return validate
}

// Details превращает ошибки валидации в карту поле -> нарушенное правило для ответа API
func Details(err error) map[string]interface{} {
	details := make(map[string]interface{})

	var errs validator.ValidationErrors
	if !stderrors.As(err, &errs) {
		details["error"] = err.Error()
		return details
	}

	for _, fe := range errs {
		rule := fe.Tag()
		if fe.Param() != "" {
			rule += "=" + fe.Param()
		}
		details[strings.ToLower(fe.Field())] = rule
	}
	return details
}
