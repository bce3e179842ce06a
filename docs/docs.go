// Package docs registers the OpenAPI document served at /swagger/*.
// Maintained by hand; keep it in step with the handler annotations.
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
        "/accomplishments": {
            "get": {
                "produces": ["application/json"],
                "tags": ["accomplishments"],
                "summary": "List accomplishments",
                "parameters": [
                    {"type": "integer", "description": "Filter by user badge", "name": "badge", "in": "query"},
                    {"type": "string", "description": "Filter by week start date (YYYY-MM-DD, requires weekEnd)", "name": "weekStart", "in": "query"},
                    {"type": "string", "description": "Filter by week end date (YYYY-MM-DD, requires weekStart)", "name": "weekEnd", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/handler.accomplishmentResponse"}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["accomplishments"],
                "summary": "Submit a weekly accomplishment",
                "description": "Creates the record for (userBadge, startWeekDate, endWeekDate) or updates it when it already exists",
                "parameters": [
                    {"description": "Weekly submission", "name": "accomplishment", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.accomplishmentRequest"}}
                ],
                "responses": {
                    "200": {"description": "Existing record updated", "schema": {"$ref": "#/definitions/handler.accomplishmentResponse"}},
                    "201": {"description": "New record created", "schema": {"$ref": "#/definitions/handler.accomplishmentResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/accomplishments/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["accomplishments"],
                "summary": "Get an accomplishment",
                "parameters": [{"type": "integer", "description": "Accomplishment ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.accomplishmentResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["accomplishments"],
                "summary": "Update an accomplishment",
                "parameters": [
                    {"type": "integer", "description": "Accomplishment ID", "name": "id", "in": "path", "required": true},
                    {"description": "Fields to update", "name": "accomplishment", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.accomplishmentRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.accomplishmentResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            },
            "delete": {
                "tags": ["accomplishments"],
                "summary": "Delete an accomplishment",
                "parameters": [{"type": "integer", "description": "Accomplishment ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/applications": {
            "get": {
                "produces": ["application/json"],
                "tags": ["applications"],
                "summary": "List applications",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/handler.applicationResponse"}}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["applications"],
                "summary": "Create an application",
                "parameters": [{"description": "Application creation request", "name": "application", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.applicationRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handler.applicationResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/auth/me": {
            "get": {
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Get current user",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.userResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/auth/session": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Create a session",
                "description": "Exchanges a verified identity profile for a portal JWT",
                "parameters": [{"description": "IdP-asserted profile", "name": "profile", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.sessionRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/service.Session"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/projects": {
            "get": {
                "produces": ["application/json"],
                "tags": ["projects"],
                "summary": "List projects",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/handler.projectResponse"}}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["projects"],
                "summary": "Create a project",
                "parameters": [{"description": "Project creation request", "name": "project", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.projectRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handler.projectResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/servers": {
            "get": {
                "produces": ["application/json"],
                "tags": ["servers"],
                "summary": "List servers",
                "parameters": [{"type": "string", "description": "Keyword matched across hostname, ip, os, status, environment, role, location, folder", "name": "q", "in": "query"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/handler.serverResponse"}}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["servers"],
                "summary": "Create a server",
                "parameters": [{"description": "Server creation request", "name": "server", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.serverRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handler.serverResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/settings/ai": {
            "get": {
                "produces": ["application/json"],
                "tags": ["settings"],
                "summary": "Get AI settings",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/service.AISettings"}}
                }
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["settings"],
                "summary": "Update AI settings",
                "parameters": [{"description": "AI settings", "name": "settings", "in": "body", "required": true, "schema": {"$ref": "#/definitions/service.AISettings"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/service.AISettings"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/settings/ai/test": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["settings"],
                "summary": "Test AI connection",
                "parameters": [{"description": "Configuration to test", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.testAIRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.testAIResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/summaries": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["summaries"],
                "summary": "Generate a team roll-up summary",
                "description": "When no users are supplied the whole team is summarized.",
                "parameters": [{"description": "Summary window and optional user bundles", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.summaryRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/service.SummaryResult"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/users": {
            "get": {
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "List users",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/handler.userResponse"}}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Create a user",
                "parameters": [{"description": "User creation request", "name": "user", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.userRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handler.userResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/users/{badge}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Get a user",
                "parameters": [{"type": "integer", "description": "Badge number", "name": "badge", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.userResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Update a user",
                "parameters": [
                    {"type": "integer", "description": "Badge number", "name": "badge", "in": "path", "required": true},
                    {"description": "User update request", "name": "user", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.userRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.userResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            },
            "delete": {
                "tags": ["users"],
                "summary": "Delete a user",
                "parameters": [{"type": "integer", "description": "Badge number", "name": "badge", "in": "path", "required": true}],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "handler.accomplishmentRequest": {
            "type": "object",
            "properties": {
                "accomplishments": {"type": "string"},
                "applicationId": {"type": "string"},
                "dateSubmitted": {"type": "string"},
                "endWeekDate": {"type": "string"},
                "startWeekDate": {"type": "string"},
                "taskStatus": {"type": "string"},
                "userBadge": {"type": "integer"}
            }
        },
        "handler.accomplishmentResponse": {
            "type": "object",
            "properties": {
                "accomplishments": {"type": "string"},
                "applicationId": {"type": "string"},
                "createdAt": {"type": "string"},
                "dateSubmitted": {"type": "string"},
                "endWeekDate": {"type": "string"},
                "id": {"type": "string"},
                "startWeekDate": {"type": "string"},
                "taskStatus": {"type": "string"},
                "updatedAt": {"type": "string"},
                "userBadge": {"type": "integer"}
            }
        },
        "handler.applicationRequest": {
            "type": "object",
            "properties": {
                "appDescription": {"type": "string"},
                "appName": {"type": "string"},
                "devDomain": {"type": "string"},
                "devServerId": {"type": "string"},
                "lastUpdatedBy": {"type": "string"},
                "ownerBadge": {"type": "integer"},
                "prodServerId": {"type": "string"},
                "status": {"type": "string"}
            }
        },
        "handler.applicationResponse": {
            "type": "object",
            "properties": {
                "appDescription": {"type": "string"},
                "appName": {"type": "string"},
                "createdAt": {"type": "string"},
                "devDomain": {"type": "string"},
                "devServerHostname": {"type": "string"},
                "devServerId": {"type": "string"},
                "id": {"type": "string"},
                "lastUpdatedBy": {"type": "string"},
                "ownerBadge": {"type": "integer"},
                "ownerName": {"type": "string"},
                "prodServerHostname": {"type": "string"},
                "prodServerId": {"type": "string"},
                "status": {"type": "string"},
                "updatedAt": {"type": "string"}
            }
        },
        "handler.errorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string"}
            }
        },
        "handler.projectRequest": {
            "type": "object",
            "properties": {
                "description": {"type": "string"},
                "githubUrl": {"type": "string"},
                "name": {"type": "string"},
                "status": {"type": "string"}
            }
        },
        "handler.projectResponse": {
            "type": "object",
            "properties": {
                "createdAt": {"type": "string"},
                "description": {"type": "string"},
                "githubUrl": {"type": "string"},
                "id": {"type": "string"},
                "name": {"type": "string"},
                "status": {"type": "string"},
                "updatedAt": {"type": "string"}
            }
        },
        "handler.serverRequest": {
            "type": "object",
            "properties": {
                "environment": {"type": "string"},
                "folder": {"type": "string"},
                "hostname": {"type": "string"},
                "ipAddress": {"type": "string"},
                "location": {"type": "string"},
                "os": {"type": "string"},
                "role": {"type": "string"},
                "status": {"type": "string"}
            }
        },
        "handler.serverResponse": {
            "type": "object",
            "properties": {
                "createdAt": {"type": "string"},
                "environment": {"type": "string"},
                "folder": {"type": "string"},
                "hostname": {"type": "string"},
                "id": {"type": "string"},
                "ipAddress": {"type": "string"},
                "location": {"type": "string"},
                "os": {"type": "string"},
                "role": {"type": "string"},
                "status": {"type": "string"},
                "updatedAt": {"type": "string"}
            }
        },
        "handler.sessionRequest": {
            "type": "object",
            "properties": {
                "badge": {"type": "integer"},
                "email": {"type": "string"},
                "name": {"type": "string"}
            }
        },
        "handler.summaryRequest": {
            "type": "object",
            "properties": {
                "from": {"type": "string"},
                "includeTeamThemes": {"type": "boolean"},
                "to": {"type": "string"},
                "users": {"type": "array", "items": {"$ref": "#/definitions/service.SummaryUser"}}
            }
        },
        "handler.testAIRequest": {
            "type": "object",
            "properties": {
                "apiKey": {"type": "string"},
                "baseUrl": {"type": "string"},
                "model": {"type": "string"},
                "provider": {"type": "string"}
            }
        },
        "handler.testAIResponse": {
            "type": "object",
            "properties": {
                "response": {"type": "string"}
            }
        },
        "handler.userRequest": {
            "type": "object",
            "properties": {
                "badge": {"type": "integer"},
                "email": {"type": "string"},
                "firstName": {"type": "string"},
                "lastName": {"type": "string"},
                "position": {"type": "string"},
                "readOnly": {"type": "boolean"}
            }
        },
        "handler.userResponse": {
            "type": "object",
            "properties": {
                "accomplishmentCount": {"type": "integer"},
                "badge": {"type": "integer"},
                "createdAt": {"type": "string"},
                "email": {"type": "string"},
                "firstName": {"type": "string"},
                "lastName": {"type": "string"},
                "position": {"type": "string"},
                "readOnly": {"type": "boolean"},
                "updatedAt": {"type": "string"}
            }
        },
        "service.AISettings": {
            "type": "object",
            "properties": {
                "apiKey": {"type": "string"},
                "baseUrl": {"type": "string"},
                "model": {"type": "string"},
                "provider": {"type": "string"}
            }
        },
        "service.Session": {
            "type": "object",
            "properties": {
                "token": {"type": "string"},
                "user": {"type": "object"}
            }
        },
        "service.SummaryEntry": {
            "type": "object",
            "properties": {
                "end_week_date": {"type": "string"},
                "start_week_date": {"type": "string"},
                "text": {"type": "string"}
            }
        },
        "service.SummaryResult": {
            "type": "object",
            "properties": {
                "subjects": {"type": "array", "items": {"$ref": "#/definitions/service.SummarySubject"}},
                "themes": {"type": "array", "items": {"type": "string"}}
            }
        },
        "service.SummarySubject": {
            "type": "object",
            "properties": {
                "badge": {"type": "integer"},
                "blockers": {"type": "array", "items": {"type": "string"}},
                "highlights": {"type": "array", "items": {"type": "string"}},
                "name": {"type": "string"},
                "next_focus": {"type": "array", "items": {"type": "string"}},
                "summary_md": {"type": "string"}
            }
        },
        "service.SummaryUser": {
            "type": "object",
            "properties": {
                "badge": {"type": "integer"},
                "entries": {"type": "array", "items": {"$ref": "#/definitions/service.SummaryEntry"}},
                "name": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "Portal API",
	Description:      "Internal team portal: users, servers, projects, applications, weekly accomplishments and AI roll-up summaries.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
