// Package docs holds the swagger spec served at /swagger. Regenerate
// with `swag init` after changing handler annotations.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "Mandy Money",
            "url": "https://www.mandymoney.com.au"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/catalog/tiers": {
            "get": {
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "Get the pricing catalog",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/catalog/tiers/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "Get a single licence tier",
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true, "description": "Tier ID"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not Found"}
                }
            }
        },
        "/catalog/unlimited": {
            "get": {
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "Get the whole-school unlimited tier",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/sessions": {
            "post": {
                "produces": ["application/json"],
                "tags": ["sessions"],
                "summary": "Start a new quote session",
                "responses": {
                    "201": {"description": "Created"}
                }
            }
        },
        "/sessions/{session_id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["sessions"],
                "summary": "Get a quote session",
                "parameters": [
                    {"type": "string", "name": "session_id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not Found"}
                }
            }
        },
        "/sessions/{session_id}/school-info": {
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["sessions"],
                "summary": "Replace the school-info draft",
                "parameters": [
                    {"type": "string", "name": "session_id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request"},
                    "404": {"description": "Not Found"}
                }
            }
        },
        "/sessions/{session_id}/selection": {
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["sessions"],
                "summary": "Replace the licence selection",
                "parameters": [
                    {"type": "string", "name": "session_id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request"},
                    "404": {"description": "Not Found"}
                }
            }
        },
        "/sessions/{session_id}/quote": {
            "get": {
                "produces": ["application/json"],
                "tags": ["sessions"],
                "summary": "Get the derived quote view",
                "parameters": [
                    {"type": "string", "name": "session_id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not Found"}
                }
            }
        },
        "/sessions/{session_id}/actions/{action_type}": {
            "post": {
                "produces": ["application/json"],
                "tags": ["actions"],
                "summary": "Dispatch a quote, enquiry or order action",
                "parameters": [
                    {"type": "string", "name": "session_id", "in": "path", "required": true},
                    {"enum": ["quote", "enquiry", "order"], "type": "string", "name": "action_type", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "409": {"description": "Conflict"},
                    "422": {"description": "Unprocessable Entity"}
                }
            }
        },
        "/address/lookup": {
            "get": {
                "produces": ["application/json"],
                "tags": ["address"],
                "summary": "Look up address suggestions",
                "parameters": [
                    {"type": "string", "name": "q", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/quote-attempts": {
            "get": {
                "produces": ["application/json"],
                "tags": ["attempts"],
                "summary": "List quote attempts",
                "parameters": [
                    {"type": "integer", "name": "limit", "in": "query"},
                    {"type": "integer", "name": "page", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request"}
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8000",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Quote Craft API",
	Description:      "Quote and order builder for the High School Program",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
