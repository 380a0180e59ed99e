// Package docs registers the OpenAPI description served under /api/v1/swagger.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/users": {
            "get": {"tags": ["users"], "summary": "List users", "parameters": [{"$ref": "#/parameters/skip"}, {"$ref": "#/parameters/limit"}], "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.User"}}}}},
            "post": {"tags": ["users"], "summary": "Create user", "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/request.UserCreate"}}], "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/models.User"}}, "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}}}
        },
        "/users/{id}": {
            "get": {"tags": ["users"], "summary": "Get user", "parameters": [{"$ref": "#/parameters/id"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.User"}}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}}},
            "put": {"tags": ["users"], "summary": "Update user", "parameters": [{"$ref": "#/parameters/id"}, {"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/request.UserUpdate"}}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.User"}}, "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}}},
            "delete": {"tags": ["users"], "summary": "Delete user", "parameters": [{"$ref": "#/parameters/id"}], "responses": {"204": {"description": "No Content"}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}}}
        },
        "/categories": {
            "get": {"tags": ["categories"], "summary": "List categories", "parameters": [{"$ref": "#/parameters/skip"}, {"$ref": "#/parameters/limit"}], "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Category"}}}}},
            "post": {"tags": ["categories"], "summary": "Create category", "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/request.Category"}}], "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/models.Category"}}, "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}}}
        },
        "/categories/slug/{slug}": {
            "get": {"tags": ["categories"], "summary": "Get category by slug", "parameters": [{"$ref": "#/parameters/slug"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Category"}}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}}}
        },
        "/categories/{id}": {
            "get": {"tags": ["categories"], "summary": "Get category", "parameters": [{"$ref": "#/parameters/id"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Category"}}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}}},
            "put": {"tags": ["categories"], "summary": "Update category", "parameters": [{"$ref": "#/parameters/id"}, {"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/request.Category"}}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Category"}}, "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}}},
            "delete": {"tags": ["categories"], "summary": "Delete category", "parameters": [{"$ref": "#/parameters/id"}], "responses": {"204": {"description": "No Content"}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}}}
        },
        "/posts": {
            "get": {"tags": ["posts"], "summary": "List posts", "parameters": [{"$ref": "#/parameters/skip"}, {"$ref": "#/parameters/limit"}, {"type": "boolean", "name": "published_only", "in": "query"}], "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Post"}}}}},
            "post": {"tags": ["posts"], "summary": "Create post", "parameters": [{"$ref": "#/parameters/author_id"}, {"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/request.Post"}}], "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/models.Post"}}, "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}}}
        },
        "/posts/slug/{slug}": {
            "get": {"tags": ["posts"], "summary": "Get post by slug", "parameters": [{"$ref": "#/parameters/slug"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Post"}}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}}}
        },
        "/posts/{id}": {
            "get": {"tags": ["posts"], "summary": "Get post", "description": "Each call counts one view.", "parameters": [{"$ref": "#/parameters/id"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Post"}}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}}},
            "put": {"tags": ["posts"], "summary": "Update post", "parameters": [{"$ref": "#/parameters/id"}, {"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/request.Post"}}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Post"}}, "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}}},
            "delete": {"tags": ["posts"], "summary": "Delete post", "parameters": [{"$ref": "#/parameters/id"}], "responses": {"204": {"description": "No Content"}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}}}
        },
        "/comments": {
            "get": {"tags": ["comments"], "summary": "List comments", "parameters": [{"$ref": "#/parameters/skip"}, {"$ref": "#/parameters/limit"}], "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Comment"}}}}},
            "post": {"tags": ["comments"], "summary": "Create comment", "parameters": [{"$ref": "#/parameters/author_id"}, {"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/request.Comment"}}], "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/models.Comment"}}, "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}}}
        },
        "/comments/post/{post_id}": {
            "get": {"tags": ["comments"], "summary": "List comments on a post", "parameters": [{"type": "integer", "name": "post_id", "in": "path", "required": true}, {"$ref": "#/parameters/skip"}, {"$ref": "#/parameters/limit"}], "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Comment"}}}}}
        },
        "/comments/{id}/replies": {
            "get": {"tags": ["comments"], "summary": "List replies", "parameters": [{"$ref": "#/parameters/id"}, {"$ref": "#/parameters/skip"}, {"$ref": "#/parameters/limit"}], "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Comment"}}}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}}}
        },
        "/comments/{id}": {
            "get": {"tags": ["comments"], "summary": "Get comment", "parameters": [{"$ref": "#/parameters/id"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Comment"}}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}}},
            "put": {"tags": ["comments"], "summary": "Update comment", "parameters": [{"$ref": "#/parameters/id"}, {"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/request.CommentUpdate"}}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Comment"}}, "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}}},
            "delete": {"tags": ["comments"], "summary": "Delete comment", "parameters": [{"$ref": "#/parameters/id"}], "responses": {"204": {"description": "No Content"}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}}}
        }
    },
    "parameters": {
        "id": {"type": "integer", "name": "id", "in": "path", "required": true},
        "slug": {"type": "string", "name": "slug", "in": "path", "required": true},
        "skip": {"type": "integer", "default": 0, "name": "skip", "in": "query"},
        "limit": {"type": "integer", "default": 100, "name": "limit", "in": "query"},
        "author_id": {"type": "integer", "name": "author_id", "in": "query", "required": true}
    },
    "definitions": {
        "models.ErrorResponse": {"type": "object", "properties": {"error": {"type": "string"}, "code": {"type": "string"}, "details": {"type": "string"}}},
        "models.User": {"type": "object", "properties": {"id": {"type": "integer"}, "email": {"type": "string"}, "username": {"type": "string"}, "full_name": {"type": "string"}, "is_active": {"type": "boolean"}, "is_superuser": {"type": "boolean"}, "created_at": {"type": "string"}, "updated_at": {"type": "string"}}},
        "models.Category": {"type": "object", "properties": {"id": {"type": "integer"}, "name": {"type": "string"}, "slug": {"type": "string"}, "description": {"type": "string"}, "created_at": {"type": "string"}, "updated_at": {"type": "string"}}},
        "models.Post": {"type": "object", "properties": {"id": {"type": "integer"}, "title": {"type": "string"}, "slug": {"type": "string"}, "content": {"type": "string"}, "excerpt": {"type": "string"}, "is_published": {"type": "boolean"}, "view_count": {"type": "integer"}, "author_id": {"type": "integer"}, "author": {"$ref": "#/definitions/models.User"}, "category_id": {"type": "integer"}, "category": {"$ref": "#/definitions/models.Category"}, "published_at": {"type": "string"}, "created_at": {"type": "string"}, "updated_at": {"type": "string"}}},
        "models.Comment": {"type": "object", "properties": {"id": {"type": "integer"}, "content": {"type": "string"}, "is_approved": {"type": "boolean"}, "author_id": {"type": "integer"}, "author": {"$ref": "#/definitions/models.User"}, "post_id": {"type": "integer"}, "parent_id": {"type": "integer"}, "created_at": {"type": "string"}, "updated_at": {"type": "string"}}},
        "request.UserCreate": {"type": "object", "required": ["email", "username", "password"], "properties": {"email": {"type": "string"}, "username": {"type": "string"}, "full_name": {"type": "string"}, "password": {"type": "string"}}},
        "request.UserUpdate": {"type": "object", "properties": {"email": {"type": "string"}, "username": {"type": "string"}, "full_name": {"type": "string"}, "password": {"type": "string"}, "is_active": {"type": "boolean"}}},
        "request.Category": {"type": "object", "properties": {"name": {"type": "string"}, "slug": {"type": "string"}, "description": {"type": "string"}}},
        "request.Post": {"type": "object", "properties": {"title": {"type": "string"}, "slug": {"type": "string"}, "content": {"type": "string"}, "excerpt": {"type": "string"}, "is_published": {"type": "boolean"}, "category_id": {"type": "integer"}}},
        "request.Comment": {"type": "object", "required": ["content", "post_id"], "properties": {"content": {"type": "string"}, "post_id": {"type": "integer"}, "parent_id": {"type": "integer"}}},
        "request.CommentUpdate": {"type": "object", "properties": {"content": {"type": "string"}, "is_approved": {"type": "boolean"}}}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8000",
	BasePath:         "/api/v1",
	Schemes:          []string{"http", "https"},
	Title:            "Blog CMS API",
	Description:      "Blog content management API over users, categories, posts and comments",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
