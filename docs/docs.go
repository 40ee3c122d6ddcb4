// Package docs holds the Swagger 2.0 document for the HTTP API, kept in the
// layout swag emits so `swag init` can regenerate it from the handler annotations.
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
        "/auth/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Login",
                "parameters": [{"description": "login payload", "name": "input", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.loginRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.loginResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/presenter.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/presenter.ErrorResponse"}}
                }
            }
        },
        "/auth/logout": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["auth"],
                "summary": "Logout",
                "responses": {
                    "204": {"description": "No Content"},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/presenter.ErrorResponse"}}
                }
            }
        },
        "/auth/signup": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Register user",
                "parameters": [{"description": "registration payload", "name": "input", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.signupRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handlers.userResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/presenter.ErrorResponse"}}
                }
            }
        },
        "/behavioral-chat": {
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Guests may chat when the deployment allows it; finished interviews are saved for signed-in users.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["interview"],
                "summary": "Behavioral interview turn",
                "parameters": [{"description": "conversation so far", "name": "input", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.behavioralChatRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.behavioralChatResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/presenter.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/presenter.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/presenter.ErrorResponse"}}
                }
            }
        },
        "/evaluate-code": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["practice"],
                "summary": "Evaluate code",
                "parameters": [{"description": "problem snapshot, code and language", "name": "input", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.evaluateCodeRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.evaluateCodeResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/presenter.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/presenter.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/presenter.ErrorResponse"}}
                }
            }
        },
        "/generate-problem": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["practice"],
                "summary": "Generate a practice problem",
                "parameters": [{"description": "topic and difficulty (Easy, Medium, Hard)", "name": "input", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.generateProblemRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/problem.Problem"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/presenter.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/presenter.ErrorResponse"}}
                }
            }
        },
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Liveness probe",
                "responses": {"200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}}
            }
        },
        "/ready": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Readiness probe",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.readinessResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/handlers.readinessResponse"}}
                }
            }
        },
        "/review-resume": {
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Accepts a PDF under the \"resume\" field. Reviews are stored only for signed-in users.",
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["resume"],
                "summary": "Review resume",
                "parameters": [{"type": "file", "description": "resume (PDF)", "name": "resume", "in": "formData", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.reviewResponse"}},
                    "400": {"description": "not a PDF, unreadable, or not a resume", "schema": {"$ref": "#/definitions/presenter.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/presenter.ErrorResponse"}}
                }
            }
        },
        "/user/chat-sessions": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["user"],
                "summary": "Interview history",
                "parameters": [
                    {"type": "integer", "description": "page size (max 100)", "name": "limit", "in": "query"},
                    {"type": "integer", "description": "offset", "name": "offset", "in": "query"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}}}
            }
        },
        "/user/progress": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "description": "Five most recent items of each kind, newest first. currentStreak is 0 once a calendar day has been missed, even though the stored streak is only reset by the next recorded activity.",
                "tags": ["user"],
                "summary": "User progress",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.progressResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/presenter.ErrorResponse"}}
                }
            }
        },
        "/user/record-activity": {
            "post": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["user"],
                "summary": "Record daily activity",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "integer"}}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/presenter.ErrorResponse"}}
                }
            }
        },
        "/user/resume-reviews": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["user"],
                "summary": "Resume review history",
                "parameters": [
                    {"type": "integer", "description": "page size (max 100)", "name": "limit", "in": "query"},
                    {"type": "integer", "description": "offset", "name": "offset", "in": "query"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}}}
            }
        },
        "/user/submissions": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["user"],
                "summary": "Submission history",
                "parameters": [
                    {"type": "integer", "description": "page size (max 100)", "name": "limit", "in": "query"},
                    {"type": "integer", "description": "offset", "name": "offset", "in": "query"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}}}
            }
        }
    },
    "definitions": {
        "handlers.behavioralChatRequest": {
            "type": "object",
            "properties": {
                "messages": {"type": "array", "items": {"$ref": "#/definitions/interview.Message"}},
                "targetCompany": {"type": "string"},
                "targetRole": {"type": "string"},
                "useResumeContext": {"type": "boolean"}
            }
        },
        "handlers.behavioralChatResponse": {
            "type": "object",
            "properties": {
                "completed": {"type": "boolean"},
                "reply": {"type": "string"},
                "sessionId": {"type": "string"}
            }
        },
        "handlers.evaluateCodeRequest": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "language": {"type": "string"},
                "problem": {"$ref": "#/definitions/submission.ProblemSnapshot"},
                "topic": {"type": "string"}
            }
        },
        "handlers.evaluateCodeResponse": {
            "type": "object",
            "properties": {
                "correctness": {"type": "string"},
                "optimization": {"type": "string"},
                "spaceComplexity": {"type": "string"},
                "submissionId": {"type": "string"},
                "timeComplexity": {"type": "string"}
            }
        },
        "handlers.generateProblemRequest": {
            "type": "object",
            "properties": {"difficulty": {"type": "string"}, "topic": {"type": "string"}}
        },
        "handlers.loginRequest": {
            "type": "object",
            "properties": {"email": {"type": "string"}, "password": {"type": "string"}}
        },
        "handlers.loginResponse": {
            "type": "object",
            "properties": {"email": {"type": "string"}, "name": {"type": "string"}, "token": {"type": "string"}, "userId": {"type": "string"}}
        },
        "handlers.progressResponse": {
            "type": "object",
            "properties": {
                "chatSessions": {"type": "array", "items": {"type": "object"}},
                "currentStreak": {"type": "integer"},
                "dsaSubmissions": {"type": "array", "items": {"type": "object"}},
                "resumeReviews": {"type": "array", "items": {"$ref": "#/definitions/handlers.reviewResponse"}}
            }
        },
        "handlers.readinessResponse": {
            "type": "object",
            "properties": {
                "checks": {"type": "object", "additionalProperties": {"type": "string"}},
                "status": {"type": "string"}
            }
        },
        "handlers.reviewResponse": {
            "type": "object",
            "properties": {
                "actionVerbSuggestions": {"type": "array", "items": {"type": "string"}},
                "areasForImprovement": {"type": "array", "items": {"type": "string"}},
                "atsAssessment": {
                    "type": "object",
                    "properties": {"estimatedScore": {"type": "string"}, "explanation": {"type": "string"}}
                },
                "createdAt": {"type": "string"},
                "id": {"type": "string"},
                "quantificationSuggestions": {"type": "array", "items": {"type": "string"}},
                "strengths": {"type": "array", "items": {"type": "string"}}
            }
        },
        "handlers.signupRequest": {
            "type": "object",
            "properties": {"email": {"type": "string"}, "name": {"type": "string"}, "password": {"type": "string"}}
        },
        "handlers.userResponse": {
            "type": "object",
            "properties": {"email": {"type": "string"}, "id": {"type": "string"}, "name": {"type": "string"}}
        },
        "interview.Message": {
            "type": "object",
            "properties": {"sender": {"type": "string"}, "text": {"type": "string"}}
        },
        "presenter.ErrorResponse": {
            "type": "object",
            "properties": {"error": {"type": "string"}, "message": {"type": "string"}}
        },
        "problem.Problem": {
            "type": "object",
            "properties": {
                "boilerplates": {
                    "type": "object",
                    "properties": {"cpp": {"type": "string"}, "java": {"type": "string"}, "javascript": {"type": "string"}, "python": {"type": "string"}}
                },
                "description": {"type": "string"},
                "examples": {
                    "type": "array",
                    "items": {
                        "type": "object",
                        "properties": {"explanation": {"type": "string"}, "input": {"type": "string"}, "output": {"type": "string"}}
                    }
                },
                "title": {"type": "string"}
            }
        },
        "submission.ProblemSnapshot": {
            "type": "object",
            "properties": {"description": {"type": "string"}, "title": {"type": "string"}}
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Supported formats: \"Bearer <JWT>\" or \"<JWT>\".",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8000",
	BasePath:         "/api",
	Schemes:          []string{"http"},
	Title:            "PrepAI API",
	Description:      "Interview preparation backend: practice problems, AI code review, behavioral interview coach and resume review.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
