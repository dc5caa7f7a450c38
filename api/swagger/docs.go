// Package swagger registers the API description served under /swagger.
// Keep it in step with the annotations in internal/handler.
package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/simulations": {
            "post": {
                "description": "Computes VAT, margin, taxes and net profit from a sale price or a target margin",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["simulations"],
                "summary": "Run a simulation",
                "parameters": [
                    {
                        "description": "Scenario and form values",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/service.SimulateRequest"}
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/response.Response"},
                                {"type": "object", "properties": {"data": {"$ref": "#/definitions/service.SimulationResponse"}}}
                            ]
                        }
                    },
                    "400": {"description": "Malformed payload", "schema": {"$ref": "#/definitions/response.Response"}},
                    "422": {"description": "Invalid field, rate, price or margin", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            }
        },
        "/api/simulations/defaults": {
            "get": {
                "description": "Returns prefill values; rates are given as percentages",
                "produces": ["application/json"],
                "tags": ["simulations"],
                "summary": "Get form defaults",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/response.Response"},
                                {"type": "object", "properties": {"data": {"$ref": "#/definitions/config.FormDefaults"}}}
                            ]
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "config.FormDefaults": {
            "type": "object",
            "properties": {
                "corporate_tax_rate": {"type": "number"},
                "other_contributions_rate": {"type": "number"},
                "purchase_price_ht": {"type": "number"},
                "sale_price_ht": {"type": "number"},
                "target_margin_rate": {"type": "number"},
                "vat_rate": {"type": "number"}
            }
        },
        "model.CalculationResult": {
            "type": "object",
            "properties": {
                "corporate_tax": {"type": "number"},
                "corporate_tax_rate": {"type": "number"},
                "gross_margin": {"type": "number"},
                "gross_margin_rate": {"type": "number"},
                "net_profit": {"type": "number"},
                "other_contributions": {"type": "number"},
                "other_contributions_rate": {"type": "number"},
                "purchase_price_ht": {"type": "number"},
                "sale_price_ht": {"type": "number"},
                "sale_price_ttc": {"type": "number"},
                "scenario": {"type": "string"},
                "target_margin_rate": {"type": "number"},
                "taxable_profit": {"type": "number"},
                "vat_amount": {"type": "number"},
                "vat_rate": {"type": "number"}
            }
        },
        "report.Row": {
            "type": "object",
            "properties": {
                "label": {"type": "string"},
                "value": {"type": "string"}
            }
        },
        "response.Response": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "data": {},
                "error": {"type": "string"},
                "status": {"type": "string"},
                "status_code": {"type": "integer"}
            }
        },
        "service.SimulateRequest": {
            "type": "object",
            "required": ["scenario"],
            "properties": {
                "corporate_tax_rate": {"type": "string"},
                "other_contributions_rate": {"type": "string"},
                "purchase_price_ht": {"type": "string"},
                "sale_price_ht": {"type": "string"},
                "scenario": {"type": "string"},
                "target_margin_rate": {"type": "string"},
                "vat_rate": {"type": "string"}
            }
        },
        "service.SimulationResponse": {
            "type": "object",
            "properties": {
                "result": {"$ref": "#/definitions/model.CalculationResult"},
                "rows": {"type": "array", "items": {"$ref": "#/definitions/report.Row"}}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Margin Simulator API",
	Description:      "Retail pricing simulator: VAT, gross margin, corporate tax and net profit.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
