// Package docs registers the Swagger document served at /swagger/.
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
    "paths": {
        "/health": {
            "get": {
                "tags": ["health"],
                "summary": "Liveness probe",
                "responses": {"200": {"description": "Server is running"}}
            }
        },
        "/ready": {
            "get": {
                "tags": ["health"],
                "summary": "Readiness probe with store counts",
                "responses": {"200": {"description": "Server is ready"}}
            }
        },
        "/register": {
            "post": {
                "tags": ["users"],
                "summary": "Register a user",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/RegisterUserRequest"}}
                ],
                "responses": {
                    "200": {"description": "User registered", "schema": {"$ref": "#/definitions/RegisterUserResponse"}},
                    "400": {"description": "Username required", "schema": {"$ref": "#/definitions/MessageResponse"}}
                }
            }
        },
        "/users": {
            "get": {
                "tags": ["users"],
                "summary": "List users",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/User"}}}
                }
            }
        },
        "/projects": {
            "get": {
                "tags": ["projects"],
                "summary": "List projects with tasks and comments",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/Project"}}}
                }
            },
            "post": {
                "tags": ["projects"],
                "summary": "Create a project",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/CreateProjectRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Project"}}
                }
            }
        },
        "/projects/{projectId}": {
            "get": {
                "tags": ["projects"],
                "summary": "Get a project",
                "produces": ["application/json"],
                "parameters": [
                    {"in": "path", "name": "projectId", "required": true, "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Project"}},
                    "404": {"description": "Project not found", "schema": {"$ref": "#/definitions/MessageResponse"}}
                }
            }
        },
        "/projects/{projectId}/tasks": {
            "post": {
                "tags": ["tasks"],
                "summary": "Create a task",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"in": "path", "name": "projectId", "required": true, "type": "integer"},
                    {"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/CreateTaskRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Task"}},
                    "404": {"description": "Project not found", "schema": {"$ref": "#/definitions/MessageResponse"}}
                }
            }
        },
        "/projects/{projectId}/tasks/{taskId}/comments": {
            "post": {
                "tags": ["tasks"],
                "summary": "Comment on a task",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"in": "path", "name": "projectId", "required": true, "type": "integer"},
                    {"in": "path", "name": "taskId", "required": true, "type": "integer"},
                    {"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/AddCommentRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Task"}},
                    "404": {"description": "Project or task not found", "schema": {"$ref": "#/definitions/MessageResponse"}}
                }
            }
        },
        "/projects/{projectId}/tasks/{taskId}/move": {
            "put": {
                "tags": ["tasks"],
                "summary": "Move a task to another column",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"in": "path", "name": "projectId", "required": true, "type": "integer"},
                    {"in": "path", "name": "taskId", "required": true, "type": "integer"},
                    {"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/MoveTaskRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Task"}},
                    "400": {"description": "Invalid status (strict mode only)", "schema": {"$ref": "#/definitions/MessageResponse"}},
                    "404": {"description": "Project or task not found", "schema": {"$ref": "#/definitions/MessageResponse"}}
                }
            }
        }
    },
    "definitions": {
        "MessageResponse": {
            "type": "object",
            "properties": {"message": {"type": "string"}}
        },
        "User": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "username": {"type": "string"}
            }
        },
        "Comment": {
            "type": "object",
            "properties": {
                "user": {"type": "string"},
                "text": {"type": "string"},
                "date": {"type": "string", "format": "date-time"}
            }
        },
        "Task": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "title": {"type": "string"},
                "status": {"type": "string", "example": "To Do"},
                "assignee": {"type": "string", "example": "Unassigned"},
                "comments": {"type": "array", "items": {"$ref": "#/definitions/Comment"}}
            }
        },
        "Project": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "tasks": {"type": "array", "items": {"$ref": "#/definitions/Task"}}
            }
        },
        "RegisterUserRequest": {
            "type": "object",
            "required": ["username"],
            "properties": {"username": {"type": "string", "example": "alice"}}
        },
        "RegisterUserResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string", "example": "User registered"},
                "user": {"$ref": "#/definitions/User"}
            }
        },
        "CreateProjectRequest": {
            "type": "object",
            "properties": {"name": {"type": "string"}}
        },
        "CreateTaskRequest": {
            "type": "object",
            "properties": {
                "title": {"type": "string"},
                "assignee": {"type": "string"}
            }
        },
        "AddCommentRequest": {
            "type": "object",
            "properties": {
                "user": {"type": "string"},
                "text": {"type": "string"}
            }
        },
        "MoveTaskRequest": {
            "type": "object",
            "properties": {"status": {"type": "string", "example": "In Progress"}}
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Taskboard API",
	Description:      "In-memory project and task board",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
