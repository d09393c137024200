// Package docs Rural Broadband Analytics API.
//
// Спецификация OpenAPI для /swagger/*. Пересобирается командой swag init -g cmd/api/main.go.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "API Support"
        },
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/v1/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Проверка доступности",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/v1/catalog/states": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Catalog"],
                "summary": "Справочник штатов",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.SuccessResponse"}}}
            }
        },
        "/api/v1/datasets/{kind}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Datasets"],
                "summary": "Сгенерировать таблицу",
                "parameters": [
                    {"$ref": "#/parameters/kind"},
                    {"$ref": "#/parameters/seed"},
                    {"type": "string", "description": "Штаты через запятую", "name": "states", "in": "query"},
                    {"type": "string", "description": "Регионы через запятую", "name": "regions", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.SuccessResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        },
        "/api/v1/datasets/{kind}/long": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Datasets"],
                "summary": "Таблица в длинном формате",
                "parameters": [
                    {"$ref": "#/parameters/kind"},
                    {"$ref": "#/parameters/seed"},
                    {"type": "string", "name": "id_vars", "in": "query"},
                    {"type": "string", "name": "value_vars", "in": "query"},
                    {"type": "string", "default": "variable", "name": "var_name", "in": "query"},
                    {"type": "string", "default": "value", "name": "value_name", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.SuccessResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        },
        "/api/v1/datasets/{kind}/export": {
            "get": {
                "produces": ["text/csv", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"],
                "tags": ["Datasets"],
                "summary": "Скачать таблицу",
                "parameters": [
                    {"$ref": "#/parameters/kind"},
                    {"$ref": "#/parameters/seed"},
                    {"enum": ["csv", "xlsx"], "type": "string", "default": "csv", "name": "format", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "file"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        },
        "/api/v1/insights/summary": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Insights"],
                "summary": "Ключевые показатели",
                "parameters": [{"$ref": "#/parameters/seed"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.SuccessResponse"}}}
            }
        },
        "/api/v1/insights/regions": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Insights"],
                "summary": "Показатели по регионам",
                "parameters": [{"$ref": "#/parameters/seed"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.SuccessResponse"}}}
            }
        },
        "/api/v1/insights/priority": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Insights"],
                "summary": "Приоритетные штаты",
                "parameters": [
                    {"$ref": "#/parameters/seed"},
                    {"maximum": 30, "minimum": 1, "type": "integer", "default": 10, "name": "limit", "in": "query"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.SuccessResponse"}}}
            }
        },
        "/api/v1/insights/growth": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Insights"],
                "summary": "Динамика абонентской базы",
                "parameters": [
                    {"$ref": "#/parameters/seed"},
                    {"maximum": 120, "minimum": 2, "type": "integer", "name": "months", "in": "query"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.SuccessResponse"}}}
            }
        },
        "/api/v1/insights/demographics": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Insights"],
                "summary": "Демографический разрез",
                "parameters": [{"$ref": "#/parameters/seed"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.SuccessResponse"}}}
            }
        },
        "/api/v1/charts/{chart}": {
            "get": {
                "produces": ["image/png"],
                "tags": ["Charts"],
                "summary": "PNG-график",
                "parameters": [
                    {"enum": ["state-penetration.png", "time-series.png", "device-mix.png"], "type": "string", "name": "chart", "in": "path", "required": true},
                    {"$ref": "#/parameters/seed"},
                    {"maximum": 2400, "minimum": 200, "type": "integer", "default": 1000, "name": "width", "in": "query"},
                    {"maximum": 1800, "minimum": 150, "type": "integer", "default": 560, "name": "height", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "file"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        },
        "/api/v1/exports": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Exports"],
                "summary": "Поставить выгрузку в очередь",
                "parameters": [
                    {"description": "Параметры выгрузки", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.ExportRequest"}}
                ],
                "responses": {
                    "202": {"description": "Accepted", "schema": {"$ref": "#/definitions/utils.SuccessResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        },
        "/api/v1/exports/{id}": {
            "get": {
                "produces": ["text/csv", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"],
                "tags": ["Exports"],
                "summary": "Скачать готовую выгрузку",
                "parameters": [{"$ref": "#/parameters/id"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "file"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        },
        "/api/v1/exports/{id}/status": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Exports"],
                "summary": "Статус выгрузки",
                "parameters": [{"$ref": "#/parameters/id"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.SuccessResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        }
    },
    "parameters": {
        "kind": {
            "enum": ["states", "districts", "time-series", "state-time-series", "demographics", "income-education", "usage", "connection-mix", "services", "priority"],
            "type": "string",
            "description": "Тип таблицы",
            "name": "kind",
            "in": "path",
            "required": true
        },
        "seed": {
            "minimum": 0,
            "type": "integer",
            "description": "Seed генератора",
            "name": "seed",
            "in": "query"
        },
        "id": {
            "type": "string",
            "format": "uuid",
            "description": "ID задачи",
            "name": "id",
            "in": "path",
            "required": true
        }
    },
    "definitions": {
        "dto.ExportRequest": {
            "type": "object",
            "required": ["kind", "format"],
            "properties": {
                "kind": {"type": "string"},
                "format": {"type": "string", "enum": ["csv", "xlsx"]},
                "seed": {"type": "integer"},
                "states": {"type": "array", "items": {"type": "string"}},
                "regions": {"type": "array", "items": {"type": "string"}}
            }
        },
        "errors.AppError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "details": {"type": "object", "additionalProperties": true}
            }
        },
        "utils.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"$ref": "#/definitions/errors.AppError"}
            }
        },
        "utils.Meta": {
            "type": "object",
            "properties": {
                "total": {"type": "integer"},
                "limit": {"type": "integer"},
                "dataset": {"type": "string"},
                "seed": {"type": "integer"},
                "params_version": {"type": "string"},
                "cached": {"type": "boolean"},
                "time_ms": {"type": "number"}
            }
        },
        "utils.SuccessResponse": {
            "type": "object",
            "properties": {
                "data": {},
                "meta": {"$ref": "#/definitions/utils.Meta"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "Rural Broadband Analytics API",
	Description:      "Сервис синтетической статистики широкополосного доступа в сельской Индии.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
