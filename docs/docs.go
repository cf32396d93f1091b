// Package docs holds the OpenAPI description served at /swagger/.
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
        "/token": {
            "post": {
                "description": "Exchanges a username and password for a bearer token. The token is the username.",
                "consumes": ["application/x-www-form-urlencoded"],
                "produces": ["application/json"],
                "tags": ["Auth"],
                "summary": "Log in",
                "parameters": [
                    {"type": "string", "description": "Username (case-insensitive)", "name": "username", "in": "formData", "required": true},
                    {"type": "string", "description": "Password", "name": "password", "in": "formData", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/auth.TokenResponse"}},
                    "400": {"description": "Incorrect username or password", "schema": {"$ref": "#/definitions/handler.errs"}}
                }
            }
        },
        "/users/me": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["Users"],
                "summary": "Current user",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/auth.UserResponse"}},
                    "401": {"description": "Not authenticated", "schema": {"$ref": "#/definitions/handler.errs"}}
                }
            }
        },
        "/users/me/tasks": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["Users"],
                "summary": "Tasks assigned to the current user",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/task.TaskResponse"}}},
                    "401": {"description": "Not authenticated", "schema": {"$ref": "#/definitions/handler.errs"}}
                }
            }
        },
        "/process-meeting/": {
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Uploads audio, extracts minutes and action items, and stores them. A bearer token is optional; an invalid one is rejected.",
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["Meetings"],
                "summary": "Analyze meeting audio",
                "parameters": [
                    {"type": "file", "description": "Meeting audio", "name": "file", "in": "formData", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/meeting.ProcessResponse"}},
                    "400": {"description": "Missing audio file", "schema": {"$ref": "#/definitions/handler.errs"}},
                    "401": {"description": "Invalid token", "schema": {"$ref": "#/definitions/handler.errs"}},
                    "500": {"description": "Processing failed", "schema": {"$ref": "#/definitions/handler.errs"}}
                }
            }
        },
        "/process-audio/": {
            "post": {
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["Meetings"],
                "summary": "Analyze meeting audio without authentication",
                "parameters": [
                    {"type": "file", "description": "Meeting audio", "name": "file", "in": "formData", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/meeting.ProcessResponse"}},
                    "400": {"description": "Missing audio file", "schema": {"$ref": "#/definitions/handler.errs"}},
                    "500": {"description": "Processing failed", "schema": {"$ref": "#/definitions/handler.errs"}}
                }
            }
        },
        "/meetings": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Meetings"],
                "summary": "List meetings",
                "parameters": [
                    {"type": "integer", "description": "Page (1-based)", "name": "page", "in": "query"},
                    {"type": "integer", "description": "Page size (max 100)", "name": "page_size", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/common.ListResponse"}}
                }
            }
        },
        "/meetings/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Meetings"],
                "summary": "Get a meeting",
                "parameters": [
                    {"type": "integer", "description": "Meeting ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/meeting.MeetingResponse"}},
                    "404": {"description": "Meeting not found", "schema": {"$ref": "#/definitions/handler.errs"}}
                }
            }
        },
        "/tasks/{id}/updates": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["Tasks"],
                "summary": "List task updates",
                "parameters": [
                    {"type": "integer", "description": "Task ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/task.TaskUpdateResponse"}}},
                    "403": {"description": "Task is not assigned to you", "schema": {"$ref": "#/definitions/handler.errs"}},
                    "404": {"description": "Task not found", "schema": {"$ref": "#/definitions/handler.errs"}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Appends a comment to a task assigned to the caller and optionally changes its status.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Tasks"],
                "summary": "Add a task update",
                "parameters": [
                    {"type": "integer", "description": "Task ID", "name": "id", "in": "path", "required": true},
                    {"description": "Update", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/task.AddUpdateRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/task.TaskUpdateResponse"}},
                    "400": {"description": "Invalid request", "schema": {"$ref": "#/definitions/handler.errs"}},
                    "403": {"description": "Task is not assigned to you", "schema": {"$ref": "#/definitions/handler.errs"}},
                    "404": {"description": "Task not found", "schema": {"$ref": "#/definitions/handler.errs"}},
                    "409": {"description": "Task is locked", "schema": {"$ref": "#/definitions/handler.errs"}}
                }
            }
        }
    },
    "definitions": {
        "auth.TokenResponse": {
            "type": "object",
            "properties": {
                "access_token": {"type": "string"},
                "token_type": {"type": "string", "example": "bearer"}
            }
        },
        "auth.UserResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "username": {"type": "string"}
            }
        },
        "common.ListResponse": {
            "type": "object",
            "properties": {
                "data": {},
                "pagination": {"$ref": "#/definitions/common.PaginationResponse"}
            }
        },
        "common.PaginationResponse": {
            "type": "object",
            "properties": {
                "page": {"type": "integer"},
                "page_size": {"type": "integer"}
            }
        },
        "handler.errs": {
            "type": "object",
            "properties": {
                "code": {},
                "info": {"type": "string"},
                "message": {"type": "string"}
            }
        },
        "meeting.MeetingInfo": {
            "type": "object",
            "properties": {
                "filename": {"type": "string"},
                "id": {"type": "integer"}
            }
        },
        "meeting.MeetingResponse": {
            "type": "object",
            "properties": {
                "created_at": {"type": "string"},
                "filename": {"type": "string"},
                "id": {"type": "integer"},
                "summary": {"type": "string"},
                "tasks": {"type": "array", "items": {"$ref": "#/definitions/task.TaskResponse"}}
            }
        },
        "meeting.ProcessResponse": {
            "type": "object",
            "properties": {
                "meeting_info": {"$ref": "#/definitions/meeting.MeetingInfo"},
                "results": {"type": "object"}
            }
        },
        "task.AddUpdateRequest": {
            "type": "object",
            "required": ["comment"],
            "properties": {
                "comment": {"type": "string", "maxLength": 4000},
                "status": {"type": "string", "enum": ["To Do", "In Progress", "Done"]}
            }
        },
        "task.TaskResponse": {
            "type": "object",
            "properties": {
                "assignee_id": {"type": "integer"},
                "description": {"type": "string"},
                "due_date_str": {"type": "string"},
                "id": {"type": "integer"},
                "is_locked": {"type": "boolean"},
                "meeting_id": {"type": "integer"},
                "status": {"type": "string"}
            }
        },
        "task.TaskUpdateResponse": {
            "type": "object",
            "properties": {
                "comment": {"type": "string"},
                "id": {"type": "integer"},
                "task_id": {"type": "integer"},
                "timestamp": {"type": "string"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Type \"Bearer\" followed by a space and the token returned by /token.",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Meeting Analyzer API",
	Description:      "Upload meeting audio and get minutes and assigned action items back.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
