// Package docs registers the OpenAPI document served at /swagger.
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
        "/catalog": {
            "get": {
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "List documentation domains",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.CatalogEntry"}}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/generate": {
            "post": {
                "security": [{"ApiKeyAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["generate"],
                "summary": "Generate questions",
                "parameters": [{"description": "Generation request", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.GenerateRequest"}}],
                "responses": {
                    "200": {"description": "OK", "headers": {"X-Generation-ID": {"type": "string", "description": "Cached result id"}}, "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.GeneratedQuestion"}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/generations/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["generate"],
                "summary": "Get a cached generation result",
                "parameters": [{"type": "string", "description": "Generation id", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.GeneratedQuestion"}}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/collections": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "produces": ["application/json"],
                "tags": ["collections"],
                "summary": "List collections",
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/dto.CollectionSummary"}}}}
            },
            "post": {
                "security": [{"ApiKeyAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["collections"],
                "summary": "Save a collection",
                "parameters": [{"description": "Collection", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.CreateCollectionRequest"}}],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/domain.Collection"}}}
            }
        },
        "/collections/{id}": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "produces": ["application/json"],
                "tags": ["collections"],
                "summary": "Get a collection",
                "parameters": [{"type": "string", "description": "Collection id", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Collection"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/performance": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "produces": ["application/json"],
                "tags": ["performance"],
                "summary": "List quiz attempts",
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/dto.PerformanceResponse"}}}}
            },
            "post": {
                "security": [{"ApiKeyAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["performance"],
                "summary": "Record a quiz attempt",
                "parameters": [{"description": "Answers", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.SubmitPerformanceRequest"}}],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/domain.Performance"}}}
            }
        },
        "/auth/demo": {
            "post": {
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Log in as the demo user",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.TokenResponse"}}}
            }
        },
        "/auth/google/login": {
            "get": {
                "tags": ["auth"],
                "summary": "Initiate Google Login",
                "responses": {"307": {"description": "Redirects to Google"}}
            }
        },
        "/auth/google/callback": {
            "get": {
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Google OAuth2 Callback",
                "parameters": [
                    {"type": "string", "description": "Authorization code from Google", "name": "code", "in": "query", "required": true},
                    {"type": "string", "description": "State string for CSRF protection", "name": "state", "in": "query", "required": true}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.TokenResponse"}}}
            }
        },
        "/users/me": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Current user",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.UserResponse"}}}
            }
        }
    },
    "definitions": {
        "domain.Topic": {
            "type": "object",
            "properties": {"id": {"type": "string"}, "name": {"type": "string"}, "type": {"type": "string"}}
        },
        "domain.CatalogEntry": {
            "type": "object",
            "properties": {"id": {"type": "string"}, "name": {"type": "string"}, "topics": {"type": "array", "items": {"$ref": "#/definitions/domain.Topic"}}}
        },
        "domain.QuestionContent": {
            "type": "object",
            "properties": {
                "question_text": {"type": "string"},
                "options": {"type": "array", "items": {"type": "string"}},
                "correct_answer_index": {"type": "integer"},
                "code_snippet": {"type": "string"}
            }
        },
        "domain.GeneratedQuestion": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "type": {"type": "string", "example": "multiple_choice"},
                "content": {"$ref": "#/definitions/domain.QuestionContent"},
                "explanation": {"type": "string"},
                "tags": {"type": "array", "items": {"type": "string"}},
                "collectionName": {"type": "string"}
            }
        },
        "domain.Collection": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "userId": {"type": "string"},
                "questions": {"type": "array", "items": {"$ref": "#/definitions/domain.GeneratedQuestion"}},
                "createdAt": {"type": "string"},
                "tags": {"type": "array", "items": {"type": "string"}}
            }
        },
        "domain.PerformanceAnswer": {
            "type": "object",
            "properties": {"questionId": {"type": "string"}, "selectedIndex": {"type": "integer"}, "correct": {"type": "boolean"}}
        },
        "domain.Performance": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "userId": {"type": "string"},
                "collectionId": {"type": "string"},
                "score": {"type": "integer"},
                "totalQuestions": {"type": "integer"},
                "answers": {"type": "array", "items": {"$ref": "#/definitions/domain.PerformanceAnswer"}},
                "date": {"type": "string"}
            }
        },
        "dto.GenerateRequest": {
            "type": "object",
            "properties": {
                "domainId": {"type": "string", "example": "react19"},
                "topicId": {"type": "string", "example": "hooks/useState"},
                "difficulty": {"type": "string", "example": "beginner"},
                "count": {"type": "integer", "example": 5},
                "collectionName": {"type": "string", "example": "React Hooks"}
            }
        },
        "dto.CreateCollectionRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "questions": {"type": "array", "items": {"$ref": "#/definitions/domain.GeneratedQuestion"}},
                "tags": {"type": "array", "items": {"type": "string"}}
            }
        },
        "dto.CollectionSummary": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "questionsCount": {"type": "integer"},
                "createdAt": {"type": "string"},
                "tags": {"type": "array", "items": {"type": "string"}}
            }
        },
        "dto.AnswerSubmission": {
            "type": "object",
            "properties": {"questionId": {"type": "string"}, "selectedIndex": {"type": "integer"}}
        },
        "dto.SubmitPerformanceRequest": {
            "type": "object",
            "properties": {"collectionId": {"type": "string"}, "answers": {"type": "array", "items": {"$ref": "#/definitions/dto.AnswerSubmission"}}}
        },
        "dto.PerformanceResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "collectionId": {"type": "string"},
                "collectionName": {"type": "string"},
                "score": {"type": "integer"},
                "totalQuestions": {"type": "integer"},
                "date": {"type": "string"}
            }
        },
        "dto.UserResponse": {
            "type": "object",
            "properties": {"id": {"type": "string"}, "email": {"type": "string"}, "name": {"type": "string"}, "picture": {"type": "string"}}
        },
        "dto.TokenResponse": {
            "type": "object",
            "properties": {
                "access_token": {"type": "string"},
                "token_type": {"type": "string", "example": "Bearer"},
                "expires_in": {"type": "integer", "example": 86400},
                "user": {"$ref": "#/definitions/dto.UserResponse"}
            }
        },
        "dto.ErrorResponse": {
            "type": "object",
            "properties": {
                "code": {"type": "string", "example": "NOT_FOUND"},
                "message": {"type": "string"},
                "status": {"type": "integer", "example": 404},
                "details": {"type": "object", "additionalProperties": true}
            }
        }
    },
    "securityDefinitions": {
        "ApiKeyAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8090",
	BasePath:         "/api",
	Schemes:          []string{"http", "https"},
	Title:            "Doc Quiz API",
	Description:      "Generates multiple-choice quizzes from structured documentation.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
