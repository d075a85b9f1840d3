// Package docs registers the OpenAPI document served at /swagger/*any.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "API Support",
            "url": "https://github.com/guttosm/bfpulse"
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
        "/api/v1/summary": {
            "get": {
                "description": "Mean, median, quartiles, fences, skew distance and outlier counts of VALOR PARCELA",
                "produces": ["application/json"],
                "tags": ["statistics"],
                "summary": "Descriptive statistics of the installment amounts",
                "parameters": [
                    {
                        "type": "string",
                        "example": "weibull",
                        "description": "Quantile method (weibull, linear, hazen, median_unbiased, normal_unbiased)",
                        "name": "method",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {"description": "Success", "schema": {"$ref": "#/definitions/dto.SummaryResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "422": {"description": "Empty dataset", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "500": {"description": "Internal Error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/api/v1/ranking": {
            "get": {
                "description": "Sum of VALOR PARCELA per UF, descending, ties broken by UF; k=0 returns every state",
                "produces": ["application/json"],
                "tags": ["statistics"],
                "summary": "States ranked by total paid",
                "parameters": [
                    {
                        "type": "integer",
                        "example": 12,
                        "description": "How many states to return",
                        "name": "k",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {"description": "Success", "schema": {"$ref": "#/definitions/dto.RankingResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "500": {"description": "Internal Error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/healthz": {
            "get": {
                "description": "Always returns OK if the service is running",
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Liveness probe",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/readyz": {
            "get": {
                "description": "Returns ready if PostgreSQL is reachable",
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Readiness probe",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "503": {"description": "Service Unavailable", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        }
    },
    "definitions": {
        "dto.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string", "example": "strconv.Atoi: parsing \"x\": invalid syntax"},
                "message": {"type": "string", "example": "invalid k"},
                "timestamp": {"type": "string"}
            }
        },
        "dto.RankingResponse": {
            "type": "object",
            "properties": {
                "entries": {"type": "array", "items": {"$ref": "#/definitions/models.CategoryTotal"}},
                "k": {"type": "integer", "example": 12}
            }
        },
        "dto.SummaryResponse": {
            "type": "object",
            "properties": {
                "count": {"type": "integer", "example": 2140335},
                "iqr": {"type": "number", "example": 150},
                "lower_fence": {"type": "number", "example": 375},
                "max": {"type": "number", "example": 4664},
                "mean": {"type": "number", "example": 681.45},
                "median": {"type": "number", "example": 650},
                "method": {"type": "string", "example": "weibull"},
                "min": {"type": "number", "example": 25},
                "outliers_above": {"type": "integer", "example": 5310},
                "outliers_below": {"type": "integer", "example": 1203},
                "q1": {"type": "number", "example": 600},
                "q2": {"type": "number", "example": 650},
                "q3": {"type": "number", "example": 750},
                "range": {"type": "number", "example": 4639},
                "skew_pct": {"type": "number", "example": 4.84},
                "std_dev": {"type": "number", "example": 212.1},
                "upper_fence": {"type": "number", "example": 975}
            }
        },
        "models.CategoryTotal": {
            "type": "object",
            "properties": {
                "count": {"type": "integer", "example": 2318},
                "total": {"type": "number", "example": 1523400.5},
                "uf": {"type": "string", "example": "SP"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{"http"},
	Title:            "bfpulse API",
	Description:      "Bolsa Família payment statistics service.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
