// Package docs holds the OpenAPI document served at /swagger. It is kept by
// hand in the layout swag emits; update it together with the handler annotations.
package docs

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
        "/forms/{intent}/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["forms"],
                "summary": "Open a work order form",
                "parameters": [
                    {"type": "string", "description": "new | edit | prefinish | finish | info", "name": "intent", "in": "path", "required": true},
                    {"type": "string", "description": "Work order id", "name": "id", "in": "path"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.FormViewResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/pkg.HTTPError"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/pkg.HTTPError"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["forms"],
                "summary": "Submit a work order form",
                "parameters": [
                    {"type": "string", "description": "new | edit | prefinish | finish", "name": "intent", "in": "path", "required": true},
                    {"type": "string", "description": "Work order id", "name": "id", "in": "path"},
                    {"description": "Form fields", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/request.WorkOrderFormRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.FormOutcomeResponse"}},
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/response.FormOutcomeResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/pkg.HTTPError"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/pkg.HTTPError"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/pkg.HTTPError"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/pkg.HTTPError"}}
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["forms"],
                "summary": "Delete a finalized work order from its details form",
                "parameters": [
                    {"type": "string", "description": "info", "name": "intent", "in": "path", "required": true},
                    {"type": "string", "description": "Work order id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.FormOutcomeResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/pkg.HTTPError"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/pkg.HTTPError"}}
                }
            }
        },
        "/services": {
            "get": {
                "produces": ["application/json"],
                "tags": ["services"],
                "summary": "List catalog services",
                "parameters": [
                    {"type": "integer", "name": "page", "in": "query"},
                    {"type": "integer", "name": "page_size", "in": "query"},
                    {"type": "string", "name": "order", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.ServiceLinePageResponse"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["services"],
                "summary": "Add a service to the catalog",
                "parameters": [
                    {"description": "Service", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/request.ServiceLineRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/response.ServiceLineResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/pkg.HTTPError"}}
                }
            }
        },
        "/services/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["services"],
                "summary": "Get a catalog service",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.ServiceLineResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/pkg.HTTPError"}}
                }
            }
        },
        "/work-orders": {
            "get": {
                "produces": ["application/json"],
                "tags": ["work-orders"],
                "summary": "List work orders, newest first by default",
                "parameters": [
                    {"type": "integer", "name": "page", "in": "query"},
                    {"type": "integer", "name": "page_size", "in": "query"},
                    {"type": "string", "name": "order", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.WorkOrderPageResponse"}}
                }
            }
        },
        "/work-orders/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["work-orders"],
                "summary": "Get a work order",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.WorkOrderResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/pkg.HTTPError"}}
                }
            }
        },
        "/work-orders/{id}/payments": {
            "get": {
                "produces": ["application/json"],
                "tags": ["payments"],
                "summary": "Latest payment of a work order",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.WorkOrderPaymentResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/pkg.HTTPError"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["payments"],
                "summary": "Charge a finalized work order",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.WorkOrderPaymentResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/pkg.HTTPError"}}
                }
            }
        }
    },
    "definitions": {
        "pkg.HTTPError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "details": {"type": "object", "additionalProperties": {"type": "string"}}
            }
        },
        "request.WorkOrderFormRequest": {
            "type": "object",
            "properties": {
                "service_ids": {"type": "array", "items": {"type": "string"}},
                "vehicle_model": {"type": "string"},
                "plate": {"type": "string"},
                "date": {"type": "string"}
            }
        },
        "request.ServiceLineRequest": {
            "type": "object",
            "required": ["name", "price"],
            "properties": {
                "name": {"type": "string"},
                "price": {"type": "string"}
            }
        },
        "response.ServiceLineResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "price": {"type": "string"}
            }
        },
        "response.ServiceLinePageResponse": {
            "type": "object",
            "properties": {
                "data": {"type": "array", "items": {"$ref": "#/definitions/response.ServiceLineResponse"}},
                "total_count": {"type": "integer"}
            }
        },
        "response.WorkOrderResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "services": {"type": "array", "items": {"$ref": "#/definitions/response.ServiceLineResponse"}},
                "total": {"type": "string"},
                "vehicle_model": {"type": "string"},
                "plate": {"type": "string"},
                "date": {"type": "string"},
                "status": {"type": "string"}
            }
        },
        "response.WorkOrderPageResponse": {
            "type": "object",
            "properties": {
                "data": {"type": "array", "items": {"$ref": "#/definitions/response.WorkOrderResponse"}},
                "total_count": {"type": "integer"}
            }
        },
        "response.FormViewResponse": {
            "type": "object",
            "properties": {
                "intent": {"type": "string"},
                "edit_mode": {"type": "boolean"},
                "view_mode": {"type": "boolean"},
                "forced_status": {"type": "string"},
                "title": {"type": "string"},
                "confirm_label": {"type": "string"},
                "can_submit": {"type": "boolean"},
                "can_edit_lines": {"type": "boolean"},
                "can_delete": {"type": "boolean"},
                "date_locked": {"type": "boolean"},
                "options": {"type": "array", "items": {"$ref": "#/definitions/response.ServiceLineResponse"}},
                "lines": {"type": "array", "items": {"$ref": "#/definitions/response.ServiceLineResponse"}},
                "total": {"type": "string"},
                "vehicle_model": {"type": "string"},
                "plate": {"type": "string"},
                "date": {"type": "string"},
                "work_order": {"$ref": "#/definitions/response.WorkOrderResponse"},
                "back_to": {"type": "string"}
            }
        },
        "response.FormOutcomeResponse": {
            "type": "object",
            "properties": {
                "redirect_to": {"type": "string"},
                "persisted": {"type": "boolean"},
                "work_order": {"$ref": "#/definitions/response.WorkOrderResponse"}
            }
        },
        "response.WorkOrderPaymentResponse": {
            "type": "object",
            "properties": {
                "payment_id": {"type": "string"},
                "work_order_id": {"type": "string"},
                "amount": {"type": "string"},
                "date": {"type": "string"},
                "status": {"type": "string"},
                "provider_payload_raw": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/v1",
	Schemes:          []string{},
	Title:            "Work Order Service API",
	Description:      "Work order forms, service catalog and payments backed by DynamoDB.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
