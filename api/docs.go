// Package api contains the OpenAPI documentation. Regenerate it with "swag init".
package api

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "license": {
            "name": "MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "securityDefinitions": {
        "BasicAuth": {
            "type": "basic"
        }
    },
    "paths": {
        "/": {
            "get": {
                "description": "Lists the general endpoints and the API versions",
                "tags": ["General"],
                "summary": "API root",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/router.RootResponse"}}}
            }
        },
        "/healthz": {
            "get": {
                "description": "Returns the application health and, if not healthy, an error",
                "produces": ["application/json"],
                "tags": ["General"],
                "summary": "Get health",
                "responses": {
                    "204": {"description": "No Content"},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/httperrors.HTTPError"}}
                }
            }
        },
        "/version": {
            "get": {
                "description": "Returns the version of the running backend",
                "tags": ["General"],
                "summary": "API version",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/router.VersionResponse"}}}
            }
        },
        "/v1": {
            "get": {
                "description": "Lists the resource endpoints of v1",
                "tags": ["General"],
                "summary": "v1 API",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/router.V1Response"}}}
            }
        },
        "/v1/user/getMe": {
            "get": {
                "security": [{"BasicAuth": []}],
                "description": "Returns the authenticated user and the ID of their wallet",
                "produces": ["application/json"],
                "tags": ["Users"],
                "summary": "Get the authenticated user",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.UserMeResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/httperrors.HTTPError"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/httperrors.HTTPError"}}
                }
            }
        },
        "/v1/user/signUp": {
            "post": {
                "description": "Creates a user together with their wallet",
                "produces": ["application/json"],
                "tags": ["Users"],
                "summary": "Sign up",
                "parameters": [
                    {"type": "string", "description": "Display name", "name": "name", "in": "query", "required": true},
                    {"type": "string", "description": "Login, 5-20 latin letters, digits or _", "name": "login", "in": "query", "required": true},
                    {"type": "string", "description": "Password, at least 8 characters", "name": "password", "in": "query", "required": true}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/controllers.MessageResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/httperrors.HTTPError"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/httperrors.HTTPError"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/httperrors.HTTPError"}}
                }
            }
        },
        "/v1/wallet/{id}": {
            "get": {
                "description": "Returns the owner, the balance and all expenses of a wallet",
                "produces": ["application/json"],
                "tags": ["Wallets"],
                "summary": "Get wallet",
                "parameters": [{"type": "string", "description": "ID of the wallet", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.WalletResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/httperrors.HTTPError"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/httperrors.HTTPError"}}
                }
            }
        },
        "/v1/wallet/{id}/addExpense": {
            "post": {
                "security": [{"BasicAuth": []}],
                "description": "Adds an expense to a wallet of the authenticated user",
                "produces": ["application/json"],
                "tags": ["Wallets"],
                "summary": "Add expense",
                "parameters": [
                    {"type": "string", "description": "ID of the wallet", "name": "id", "in": "path", "required": true},
                    {"type": "string", "description": "Name of the expense", "name": "name", "in": "query", "required": true},
                    {"type": "integer", "description": "Amount, negative for spending", "name": "amount", "in": "query", "required": true}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/controllers.MessageResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/httperrors.HTTPError"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/httperrors.HTTPError"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/httperrors.HTTPError"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/httperrors.HTTPError"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/httperrors.HTTPError"}}
                }
            }
        },
        "/v1/expense/{id}": {
            "put": {
                "security": [{"BasicAuth": []}],
                "description": "Updates the name and amount of an expense. Each value is only applied if it is present and valid, the others are still applied.",
                "produces": ["application/json"],
                "tags": ["Expenses"],
                "summary": "Update expense",
                "parameters": [
                    {"type": "string", "description": "ID of the expense", "name": "id", "in": "path", "required": true},
                    {"type": "string", "description": "New name", "name": "name", "in": "query"},
                    {"type": "integer", "description": "New amount, ignored if zero or not an integer", "name": "amount", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.MessageResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/httperrors.HTTPError"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/httperrors.HTTPError"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/httperrors.HTTPError"}}
                }
            },
            "delete": {
                "security": [{"BasicAuth": []}],
                "description": "Deletes an expense",
                "produces": ["application/json"],
                "tags": ["Expenses"],
                "summary": "Delete expense",
                "parameters": [{"type": "string", "description": "ID of the expense", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.MessageResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/httperrors.HTTPError"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/httperrors.HTTPError"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/httperrors.HTTPError"}}
                }
            }
        },
        "/v1/budget": {
            "post": {
                "description": "Creates a budget with an invite that is valid for seven days",
                "produces": ["application/json"],
                "tags": ["Budgets"],
                "summary": "Create budget",
                "parameters": [{"type": "string", "description": "Name of the budget", "name": "name", "in": "query", "required": true}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/controllers.IDResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/httperrors.HTTPError"}}
                }
            }
        },
        "/v1/budget/resolveInvite/{code}": {
            "get": {
                "description": "Returns the ID of the budget for an invite that has not expired",
                "produces": ["application/json"],
                "tags": ["Budgets"],
                "summary": "Resolve invite",
                "parameters": [{"type": "string", "description": "Invite", "name": "code", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.IDResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/httperrors.HTTPError"}}
                }
            }
        },
        "/v1/budget/{id}": {
            "get": {
                "description": "Returns a budget with all its items and the amount still available on each item",
                "produces": ["application/json"],
                "tags": ["Budgets"],
                "summary": "Get budget",
                "parameters": [{"type": "string", "description": "ID of the budget", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.BudgetResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/httperrors.HTTPError"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/httperrors.HTTPError"}}
                }
            },
            "put": {
                "description": "Renames a budget",
                "produces": ["application/json"],
                "tags": ["Budgets"],
                "summary": "Update budget",
                "parameters": [
                    {"type": "string", "description": "ID of the budget", "name": "id", "in": "path", "required": true},
                    {"type": "string", "description": "New name", "name": "name", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.MessageResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/httperrors.HTTPError"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/httperrors.HTTPError"}}
                }
            },
            "delete": {
                "description": "Deletes a budget. Its items are kept.",
                "produces": ["application/json"],
                "tags": ["Budgets"],
                "summary": "Delete budget",
                "parameters": [{"type": "string", "description": "ID of the budget", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.MessageResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/httperrors.HTTPError"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/httperrors.HTTPError"}}
                }
            }
        },
        "/v1/budget/{id}/getExpenses": {
            "get": {
                "description": "Returns the expenses concerning a budget. An expense on one of the budget's items is included together with every later expense of the same wallet.",
                "produces": ["application/json"],
                "tags": ["Budgets"],
                "summary": "Get budget expenses",
                "parameters": [{"type": "string", "description": "ID of the budget", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.BudgetExpense"}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/httperrors.HTTPError"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/httperrors.HTTPError"}}
                }
            }
        },
        "/v1/budget/{id}/addItem": {
            "post": {
                "description": "Adds an item to a budget",
                "produces": ["application/json"],
                "tags": ["Budgets"],
                "summary": "Add item",
                "parameters": [
                    {"type": "string", "description": "ID of the budget", "name": "id", "in": "path", "required": true},
                    {"type": "string", "description": "Name of the item", "name": "name", "in": "query", "required": true},
                    {"type": "integer", "description": "Allocated amount, must be positive", "name": "amount", "in": "query", "required": true}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/controllers.IDResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/httperrors.HTTPError"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/httperrors.HTTPError"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/httperrors.HTTPError"}}
                }
            }
        },
        "/v1/item/{id}": {
            "put": {
                "description": "Updates the name and amount of an item. Each value is only applied if it is present and valid, the others are still applied.",
                "produces": ["application/json"],
                "tags": ["Items"],
                "summary": "Update item",
                "parameters": [
                    {"type": "string", "description": "ID of the item", "name": "id", "in": "path", "required": true},
                    {"type": "string", "description": "New name", "name": "name", "in": "query"},
                    {"type": "integer", "description": "New amount, ignored unless it is a positive integer", "name": "amount", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.MessageResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/httperrors.HTTPError"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/httperrors.HTTPError"}}
                }
            },
            "delete": {
                "description": "Deletes an item. Expenses linked to it are kept.",
                "produces": ["application/json"],
                "tags": ["Items"],
                "summary": "Delete item",
                "parameters": [{"type": "string", "description": "ID of the item", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.MessageResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/httperrors.HTTPError"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/httperrors.HTTPError"}}
                }
            }
        },
        "/v1/item/{id}/putMoney": {
            "post": {
                "security": [{"BasicAuth": []}],
                "description": "Creates an expense on a wallet of the authenticated user that is linked to the item. The amount is stored as given, a negative amount makes money available on the item.",
                "produces": ["application/json"],
                "tags": ["Items"],
                "summary": "Put money into item",
                "parameters": [
                    {"type": "string", "description": "ID of the item", "name": "id", "in": "path", "required": true},
                    {"type": "integer", "description": "ID of the wallet to book the expense on", "name": "wallet_id", "in": "query", "required": true},
                    {"type": "integer", "description": "Amount, must not be zero", "name": "amount", "in": "query", "required": true}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/controllers.MessageResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/httperrors.HTTPError"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/httperrors.HTTPError"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/httperrors.HTTPError"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/httperrors.HTTPError"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/httperrors.HTTPError"}}
                }
            }
        }
    },
    "definitions": {
        "controllers.BudgetResponse": {
            "type": "object",
            "properties": {
                "invite": {"type": "string", "example": "qwert"},
                "invite_expires": {"type": "string", "example": "2024-07-08T15:04:05Z"},
                "items": {"type": "array", "items": {"$ref": "#/definitions/models.ItemAvailable"}},
                "name": {"type": "string", "example": "Summer holiday"}
            }
        },
        "controllers.IDResponse": {
            "type": "object",
            "properties": {"id": {"type": "integer", "example": 5}}
        },
        "controllers.MessageResponse": {
            "type": "object",
            "properties": {"message": {"type": "string", "example": "Expense updated."}}
        },
        "controllers.UserMeResponse": {
            "type": "object",
            "properties": {
                "user_id": {"type": "integer", "example": 7},
                "user_name": {"type": "string", "example": "Jane Doe"},
                "wallet_id": {"type": "integer", "example": 3}
            }
        },
        "controllers.WalletResponse": {
            "type": "object",
            "properties": {
                "balance": {"description": "Sum of the amounts of all expenses", "type": "integer", "example": 1250},
                "expenses": {"type": "array", "items": {"$ref": "#/definitions/models.WalletExpense"}},
                "user_name": {"type": "string", "example": "Jane Doe"}
            }
        },
        "httperrors.HTTPError": {
            "type": "object",
            "properties": {"message": {"type": "string", "example": "Wallet not found."}}
        },
        "models.BudgetExpense": {
            "type": "object",
            "properties": {
                "amount": {"type": "integer", "example": -40},
                "name": {"type": "string", "example": "Budget item Flights transfer"},
                "user_name": {"type": "string", "example": "Jane Doe"},
                "wallet_id": {"type": "integer", "example": 3}
            }
        },
        "models.ItemAvailable": {
            "type": "object",
            "properties": {
                "amount": {"type": "integer", "example": 600},
                "available_amount": {"description": "Negated sum of the amounts of all expenses linked to the item", "type": "integer", "example": 150},
                "id": {"type": "integer", "example": 8},
                "name": {"type": "string", "example": "Flights"}
            }
        },
        "models.WalletExpense": {
            "type": "object",
            "properties": {
                "amount": {"type": "integer", "example": -250},
                "budget_name": {"description": "Empty if the expense is not linked to an item of an existing budget", "type": "string", "example": "Holiday"},
                "id": {"type": "integer", "example": 12},
                "name": {"type": "string", "example": "Groceries"}
            }
        },
        "router.RootResponse": {
            "type": "object",
            "properties": {"links": {"$ref": "#/definitions/router.RootLinks"}}
        },
        "router.RootLinks": {
            "type": "object",
            "properties": {
                "docs": {"type": "string", "example": "https://example.com/api/docs/index.html"},
                "healthz": {"type": "string", "example": "https://example.com/api/healthz"},
                "v1": {"type": "string", "example": "https://example.com/api/v1"},
                "version": {"type": "string", "example": "https://example.com/api/version"}
            }
        },
        "router.V1Response": {
            "type": "object",
            "properties": {"links": {"$ref": "#/definitions/router.V1Links"}}
        },
        "router.V1Links": {
            "type": "object",
            "properties": {
                "budget": {"type": "string", "example": "https://example.com/api/v1/budget"},
                "expense": {"type": "string", "example": "https://example.com/api/v1/expense"},
                "item": {"type": "string", "example": "https://example.com/api/v1/item"},
                "user": {"type": "string", "example": "https://example.com/api/v1/user"},
                "wallet": {"type": "string", "example": "https://example.com/api/v1/wallet"}
            }
        },
        "router.VersionResponse": {
            "type": "object",
            "properties": {"data": {"$ref": "#/definitions/router.VersionObject"}}
        },
        "router.VersionObject": {
            "type": "object",
            "properties": {"version": {"type": "string", "example": "1.1.0"}}
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "",
	Host:             "",
	BasePath:         "",
	Schemes:          []string{},
	Title:            "",
	Description:      "",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
