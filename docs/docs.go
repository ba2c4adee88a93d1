// Package docs holds the OpenAPI document served at /api/v1/swagger. It follows
// swag's output layout; keep it in step with the @Router annotations in
// internal/server, or regenerate it with the go:generate line in cmd/server.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "API Support"
        },
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/recipes": {
            "get": {
                "description": "Every recipe in insertion order, or ordered by a vote counter when sort and order are both given.",
                "produces": ["application/json"],
                "tags": ["recipes"],
                "summary": "List recipes",
                "parameters": [
                    {"type": "string", "description": "upvotes or downvotes", "name": "sort", "in": "query"},
                    {"type": "string", "description": "asc or desc", "name": "order", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Feedback"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/models.Feedback"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/models.Feedback"}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Create a recipe owned by the caller and return every recipe",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["recipes"],
                "summary": "Add a recipe",
                "parameters": [
                    {"description": "Recipe", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/validation.RecipeInput"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/models.Feedback"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/models.Feedback"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/models.Feedback"}}
                }
            }
        },
        "/recipes/{recipeID}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["recipes"],
                "summary": "Get a recipe with its reviews",
                "parameters": [
                    {"type": "integer", "description": "Recipe ID", "name": "recipeID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Feedback"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/models.Feedback"}}
                }
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "description": "Only the supplied fields change. Only the owner may update.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["recipes"],
                "summary": "Update a recipe",
                "parameters": [
                    {"type": "integer", "description": "Recipe ID", "name": "recipeID", "in": "path", "required": true},
                    {"description": "Fields to change", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/validation.RecipeInput"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Feedback"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/models.Feedback"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/models.Feedback"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "description": "Removes the recipe with its reviews, votes and favourites. Only the owner may delete.",
                "produces": ["application/json"],
                "tags": ["recipes"],
                "summary": "Delete a recipe",
                "parameters": [
                    {"type": "integer", "description": "Recipe ID", "name": "recipeID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Feedback"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/models.Feedback"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/models.Feedback"}}
                }
            }
        },
        "/recipes/{recipeID}/reviews": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["reviews"],
                "summary": "Review a recipe",
                "parameters": [
                    {"type": "integer", "description": "Recipe ID", "name": "recipeID", "in": "path", "required": true},
                    {"description": "Review", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/validation.ReviewInput"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/models.Feedback"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/models.Feedback"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/models.Feedback"}}
                }
            }
        },
        "/recipes/{recipeID}/upvote": {
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Upvoting again withdraws the vote; a downvote is switched to an upvote.",
                "produces": ["application/json"],
                "tags": ["votes"],
                "summary": "Upvote a recipe",
                "parameters": [
                    {"type": "integer", "description": "Recipe ID", "name": "recipeID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Feedback"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/models.Feedback"}}
                }
            }
        },
        "/recipes/{recipeID}/downvote": {
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Downvoting again withdraws the vote; an upvote is switched to a downvote.",
                "produces": ["application/json"],
                "tags": ["votes"],
                "summary": "Downvote a recipe",
                "parameters": [
                    {"type": "integer", "description": "Recipe ID", "name": "recipeID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Feedback"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/models.Feedback"}}
                }
            }
        },
        "/recipes/{recipeID}/favorite": {
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Adds the recipe to the caller's favourites, or removes it when already there.",
                "produces": ["application/json"],
                "tags": ["favorites"],
                "summary": "Toggle a favourite",
                "parameters": [
                    {"type": "integer", "description": "Recipe ID", "name": "recipeID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Feedback"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/models.Feedback"}}
                }
            }
        },
        "/users/signup": {
            "post": {
                "description": "Register a new account and receive a token",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "User signup",
                "parameters": [
                    {"description": "Signup request", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/validation.SignupInput"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/models.Feedback"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/models.Feedback"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/models.Feedback"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/models.Feedback"}}
                }
            }
        },
        "/users/signin": {
            "post": {
                "description": "Authenticate with username and password",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "User signin",
                "parameters": [
                    {"description": "Signin credentials", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/validation.SigninInput"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Feedback"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/models.Feedback"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/models.Feedback"}}
                }
            }
        },
        "/users/signout": {
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Revoke the presented token until it expires",
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "User signout",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Feedback"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/models.Feedback"}}
                }
            }
        },
        "/users/me": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Get current user profile",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Feedback"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/models.Feedback"}}
                }
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "description": "Non-empty fields overwrite the stored values; the author details on the user's reviews follow.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Update current user profile",
                "parameters": [
                    {"description": "Profile fields", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/validation.ProfileInput"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Feedback"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/models.Feedback"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/models.Feedback"}}
                }
            }
        },
        "/users/me/recipes": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "List the current user's recipes",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Feedback"}}
                }
            }
        },
        "/users/me/favorites": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "List the current user's favourite recipes",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Feedback"}}
                }
            }
        }
    },
    "definitions": {
        "models.Feedback": {
            "type": "object",
            "properties": {
                "data": {},
                "errors": {"type": "object", "additionalProperties": {"type": "string"}},
                "message": {"type": "string"},
                "status": {"type": "string"}
            }
        },
        "validation.RecipeInput": {
            "type": "object",
            "properties": {
                "ingredients": {"type": "string"},
                "procedures": {"type": "string"},
                "title": {"type": "string"}
            }
        },
        "validation.ReviewInput": {
            "type": "object",
            "properties": {
                "reviewSubject": {"type": "string"},
                "vote": {"type": "string"}
            }
        },
        "validation.SignupInput": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "fullName": {"type": "string"},
                "password": {"type": "string"},
                "username": {"type": "string"}
            }
        },
        "validation.SigninInput": {
            "type": "object",
            "properties": {
                "password": {"type": "string"},
                "username": {"type": "string"}
            }
        },
        "validation.ProfileInput": {
            "type": "object",
            "properties": {
                "aboutMe": {"type": "string"},
                "email": {"type": "string"},
                "fullName": {"type": "string"},
                "location": {"type": "string"},
                "profileImage": {"type": "string"},
                "username": {"type": "string"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Type \"Bearer\" followed by a space and JWT token.",
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
	BasePath:         "/api/v1",
	Schemes:          []string{"http", "https"},
	Title:            "More-Recipes API",
	Description:      "Recipe sharing API with reviews, votes and favourites",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
