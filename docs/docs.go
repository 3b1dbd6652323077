// Package docs registers the OpenAPI document served under /swagger.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    },
    "paths": {
        "/v1/reports/categories": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["reports"],
                "summary": "List report categories with their columns and filters",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/v1/reports/{category}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["reports"],
                "summary": "Render one page of a report tab",
                "parameters": [
                    {"type": "string", "description": "timesheet, user, client, project or task", "name": "category", "in": "path", "required": true},
                    {"type": "string", "description": "last7days, thisMonth, lastMonth, yearToDate or custom", "name": "date_range", "in": "query"},
                    {"type": "string", "name": "custom_start_date", "in": "query"},
                    {"type": "string", "name": "custom_end_date", "in": "query"},
                    {"type": "string", "description": "Case-insensitive name search", "name": "search", "in": "query"},
                    {"type": "array", "items": {"type": "string"}, "collectionFormat": "multi", "description": "field:value", "name": "filter", "in": "query"},
                    {"type": "string", "name": "sort", "in": "query"},
                    {"type": "string", "enum": ["asc", "desc"], "name": "order", "in": "query"},
                    {"type": "integer", "description": "1-based page", "name": "page", "in": "query"},
                    {"type": "integer", "name": "page_size", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request"},
                    "404": {"description": "Not Found"}
                }
            }
        },
        "/v1/reports/{category}/records": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["reports"],
                "summary": "List every record of a category in the date window",
                "parameters": [
                    {"type": "string", "name": "category", "in": "path", "required": true},
                    {"type": "string", "name": "date_range", "in": "query"},
                    {"type": "string", "name": "custom_start_date", "in": "query"},
                    {"type": "string", "name": "custom_end_date", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            }
        },
        "/v1/reports/{category}/stats": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["reports"],
                "summary": "Status counters of a category",
                "parameters": [{"type": "string", "name": "category", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            }
        },
        "/v1/reports/{category}/export": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["exports"],
                "summary": "Request an export of a category",
                "parameters": [{"type": "string", "name": "category", "in": "path", "required": true}],
                "responses": {"202": {"description": "Accepted"}, "400": {"description": "Bad Request"}, "403": {"description": "Forbidden"}}
            }
        },
        "/v1/reports/{category}/schedule": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["exports"],
                "summary": "Schedule periodic delivery of a report",
                "parameters": [{"type": "string", "name": "category", "in": "path", "required": true}],
                "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}, "422": {"description": "Unprocessable Entity"}}
            }
        },
        "/v1/reports/{category}/download": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/octet-stream"],
                "tags": ["exports"],
                "summary": "Download the filtered list as CSV or XLSX",
                "parameters": [
                    {"type": "string", "name": "category", "in": "path", "required": true},
                    {"type": "string", "enum": ["csv", "excel"], "name": "format", "in": "query", "required": true}
                ],
                "responses": {"200": {"description": "OK"}, "422": {"description": "Unprocessable Entity"}}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Report Dashboard API",
	Description:      "Timesheet, user, client, project and task reports.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
