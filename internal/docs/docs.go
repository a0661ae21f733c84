// Package docs registers the OpenAPI document served at /swagger/doc.json.
package docs

import "github.com/swaggo/swag"

const doc = `{
  "swagger": "2.0",
  "info": {
    "title": "Trivia API",
    "description": "Categories, questions and quiz play for the trivia web client.",
    "version": "1.0"
  },
  "basePath": "/",
  "consumes": ["application/json"],
  "produces": ["application/json"],
  "paths": {
    "/categories": {
      "get": {"tags": ["categories"], "summary": "List every category", "responses": {"200": {"description": "OK"}}}
    },
    "/categories/{categoryId}/questions": {
      "get": {
        "tags": ["questions"], "summary": "List the questions of one category",
        "parameters": [
          {"name": "categoryId", "in": "path", "required": true, "type": "integer"},
          {"name": "page", "in": "query", "type": "integer"}
        ],
        "responses": {"200": {"description": "OK"}, "404": {"$ref": "#/responses/NotFound"}, "422": {"$ref": "#/responses/Unprocessable"}}
      }
    },
    "/questions": {
      "get": {
        "tags": ["questions"], "summary": "List questions page by page, with every category",
        "parameters": [{"name": "page", "in": "query", "type": "integer"}],
        "responses": {"200": {"description": "OK"}, "404": {"$ref": "#/responses/NotFound"}, "422": {"$ref": "#/responses/Unprocessable"}}
      },
      "post": {
        "tags": ["questions"], "summary": "Create a question",
        "parameters": [{"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateQuestion"}}],
        "responses": {"200": {"description": "OK"}, "422": {"$ref": "#/responses/Unprocessable"}}
      }
    },
    "/questions/search": {
      "post": {
        "tags": ["questions"], "summary": "Case-insensitive search on question text",
        "parameters": [
          {"name": "page", "in": "query", "type": "integer"},
          {"name": "request", "in": "body", "required": true, "schema": {"type": "object", "properties": {"searchTerm": {"type": "string"}}}}
        ],
        "responses": {"200": {"description": "OK"}, "404": {"$ref": "#/responses/NotFound"}, "422": {"$ref": "#/responses/Unprocessable"}}
      }
    },
    "/questions/generate": {
      "post": {
        "tags": ["questions"], "summary": "Generate and store trivia questions with Gemini",
        "parameters": [{"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/GenerateRequest"}}],
        "responses": {"201": {"description": "Created"}, "422": {"$ref": "#/responses/Unprocessable"}, "503": {"description": "Generator not configured", "schema": {"$ref": "#/definitions/Error"}}}
      }
    },
    "/questions/{id}": {
      "delete": {
        "tags": ["questions"], "summary": "Delete a question",
        "parameters": [{"name": "id", "in": "path", "required": true, "type": "integer"}],
        "responses": {"200": {"description": "OK"}, "404": {"$ref": "#/responses/NotFound"}}
      }
    },
    "/quizzes": {
      "post": {
        "tags": ["quizzes"], "summary": "Next unseen question of a quiz",
        "parameters": [{"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/NextQuestion"}}],
        "responses": {"200": {"description": "OK, question is null when the quiz is over"}, "422": {"$ref": "#/responses/Unprocessable"}}
      }
    }
  },
  "definitions": {
    "Error": {
      "type": "object",
      "properties": {"success": {"type": "boolean"}, "error": {"type": "integer"}, "message": {"type": "string"}}
    },
    "CreateQuestion": {
      "type": "object",
      "required": ["question", "answer", "difficulty", "category"],
      "properties": {"question": {"type": "string"}, "answer": {"type": "string"}, "difficulty": {"type": "integer"}, "category": {"type": "integer"}}
    },
    "GenerateRequest": {
      "type": "object",
      "properties": {"category": {"type": "integer"}, "difficulty": {"type": "integer"}, "amount": {"type": "integer"}, "topic": {"type": "string"}}
    },
    "NextQuestion": {
      "type": "object",
      "required": ["quiz_category"],
      "properties": {
        "previous_questions": {"type": "array", "items": {"type": "integer"}},
        "quiz_category": {"type": "object", "properties": {"id": {"type": "integer"}, "type": {"type": "string"}}}
      }
    }
  },
  "responses": {
    "NotFound": {"description": "resource not found", "schema": {"$ref": "#/definitions/Error"}},
    "Unprocessable": {"description": "unprocessable", "schema": {"$ref": "#/definitions/Error"}}
  }
}`

type spec struct{}

func (spec) ReadDoc() string {
	return doc
}

func init() {
	swag.Register(swag.Name, spec{})
}
