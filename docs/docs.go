// Package docs holds the swagger document served under /swagger/. Keep it in
// step with the @Router annotations in package handler.
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
            "email": "support@example.com"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/v1/auth/login": {
            "post": {
                "description": "Exchanges a username and password for an access and a refresh token",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Log in",
                "parameters": [
                    {
                        "description": "Credentials",
                        "name": "credentials",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/model.LoginRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.LoginResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/common.AppError"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/common.AppError"}}
                }
            }
        },
        "/api/v1/auth/logout": {
            "post": {
                "description": "Revokes an access and refresh token pair",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Log out",
                "parameters": [
                    {
                        "description": "Token pair",
                        "name": "tokens",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/model.LogoutRequest"}
                    }
                ],
                "responses": {
                    "205": {"description": "Reset Content", "schema": {"$ref": "#/definitions/model.MessageResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/common.AppError"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/common.AppError"}}
                }
            }
        },
        "/api/v1/dashboard/categories": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["dashboard"],
                "summary": "Create a service category",
                "parameters": [
                    {
                        "description": "Category",
                        "name": "category",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/model.CategoryRequest"}
                    }
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/model.Category"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/common.AppError"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/common.AppError"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/common.AppError"}}
                }
            }
        },
        "/api/v1/dashboard/qr_codes/{id}/image": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["image/png"],
                "tags": ["dashboard"],
                "summary": "QR code image",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "QR code ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "file"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/common.AppError"}}
                }
            }
        },
        "/api/v1/dashboard/stats": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["dashboard"],
                "summary": "Dashboard counters",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.DashboardStats"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/common.AppError"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/common.AppError"}}
                }
            }
        },
        "/api/v1/web/calendar/info": {
            "get": {
                "produces": ["application/json"],
                "tags": ["web"],
                "summary": "Bookings of a day",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Day, YYYY-MM-DD",
                        "name": "date",
                        "in": "query",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/model.CalendarInfo"}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/common.AppError"}}
                }
            }
        },
        "/api/v1/web/contact_us": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["web"],
                "summary": "Send a message to the venue",
                "parameters": [
                    {
                        "description": "Message",
                        "name": "message",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/model.ContactRequest"}
                    }
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/model.Message"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/common.AppError"}}
                }
            }
        },
        "/api/v1/web/main_page": {
            "get": {
                "produces": ["application/json"],
                "tags": ["web"],
                "summary": "Landing page hero block",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.HomePage"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/common.AppError"}}
                }
            }
        },
        "/api/v1/web/services": {
            "get": {
                "produces": ["application/json"],
                "tags": ["web"],
                "summary": "List services",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/model.Category"}}}
                }
            }
        },
        "/health": {
            "get": {
                "description": "get the status of server",
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Show the status of server",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"type": "object", "additionalProperties": {"type": "string"}}
                    }
                }
            }
        }
    },
    "definitions": {
        "common.AppError": {
            "type": "object",
            "properties": {
                "code": {"type": "integer"},
                "fields": {"type": "object", "additionalProperties": {"type": "string"}},
                "message": {"type": "string"}
            }
        },
        "model.CalendarInfo": {
            "type": "object",
            "properties": {
                "additional_info": {"type": "string"},
                "book_date": {"type": "string", "format": "date"},
                "category": {
                    "type": "object",
                    "properties": {
                        "image": {"type": "string"},
                        "name": {"type": "string"}
                    }
                },
                "id": {"type": "integer"}
            }
        },
        "model.Category": {
            "type": "object",
            "properties": {
                "created_at": {"type": "string"},
                "description": {"type": "string"},
                "id": {"type": "integer"},
                "image": {"type": "string"},
                "name": {"type": "string"},
                "updated_at": {"type": "string"}
            }
        },
        "model.CategoryRequest": {
            "type": "object",
            "required": ["description", "name"],
            "properties": {
                "description": {"type": "string"},
                "image": {"type": "string"},
                "name": {"type": "string", "maxLength": 250}
            }
        },
        "model.ContactRequest": {
            "type": "object",
            "required": ["first_name", "last_name", "message", "phone_number"],
            "properties": {
                "first_name": {"type": "string", "maxLength": 250},
                "last_name": {"type": "string", "maxLength": 250},
                "message": {"type": "string", "maxLength": 5000},
                "phone_number": {"type": "string"}
            }
        },
        "model.DashboardStats": {
            "type": "object",
            "properties": {
                "annual_income": {"type": "integer"},
                "employees": {"type": "integer"},
                "events": {"type": "integer"},
                "id": {"type": "integer"},
                "unanswered_messages": {"type": "integer"}
            }
        },
        "model.HomePage": {
            "type": "object",
            "properties": {
                "description": {"type": "string"},
                "id": {"type": "integer"},
                "image": {"type": "string"},
                "title": {"type": "string"},
                "updated_at": {"type": "string"}
            }
        },
        "model.LoginRequest": {
            "type": "object",
            "required": ["password", "username"],
            "properties": {
                "password": {"type": "string"},
                "username": {"type": "string", "maxLength": 150}
            }
        },
        "model.LoginResponse": {
            "type": "object",
            "properties": {
                "access_token": {"type": "string"},
                "refresh": {"type": "string"}
            }
        },
        "model.LogoutRequest": {
            "type": "object",
            "required": ["access_token", "refresh_token"],
            "properties": {
                "access_token": {"type": "string"},
                "refresh_token": {"type": "string"}
            }
        },
        "model.Message": {
            "type": "object",
            "properties": {
                "answered": {"type": "boolean"},
                "created_at": {"type": "string"},
                "first_name": {"type": "string"},
                "id": {"type": "integer"},
                "last_name": {"type": "string"},
                "message": {"type": "string"},
                "phone_number": {"type": "string"}
            }
        },
        "model.MessageResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "ok": {"type": "boolean"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Wedding Venue API",
	Description:      "Public content and admin dashboard API of a wedding venue.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
