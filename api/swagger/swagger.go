package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Teacher Activity Insights API",
        "description": "Read-only analytics over a static teacher activity dataset",
        "version": "0.1.0"
    },
    "basePath": "/",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "System", "description": "Health and instrumentation"},
        {"name": "Activities", "description": "Filtered activity listings and exports"},
        {"name": "Analytics", "description": "Rollups, summaries and trends"},
        {"name": "Insights", "description": "Natural-language observations"}
    ],
    "paths": {
        "/health": {
            "get": {
                "tags": ["System"],
                "summary": "Health check with dataset counters",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/ready": {
            "get": {
                "tags": ["System"],
                "summary": "Readiness check",
                "responses": {
                    "200": {"description": "Ready"}
                }
            }
        },
        "/api/v1/activities": {
            "get": {
                "tags": ["Activities"],
                "summary": "List activities for the filtered view",
                "parameters": [
                    {"name": "teacher_id", "in": "query", "type": "string"},
                    {"name": "grade", "in": "query", "type": "string"},
                    {"name": "subject", "in": "query", "type": "string"},
                    {"name": "activity_type", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "Filtered records with count", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/activities/export": {
            "get": {
                "tags": ["Activities"],
                "summary": "Export the filtered view as CSV or PDF",
                "parameters": [
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"]},
                    {"name": "teacher_id", "in": "query", "type": "string"},
                    {"name": "grade", "in": "query", "type": "string"},
                    {"name": "subject", "in": "query", "type": "string"},
                    {"name": "activity_type", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "File download"},
                    "400": {"description": "Unsupported format"}
                }
            }
        },
        "/api/v1/teachers": {
            "get": {
                "tags": ["Analytics"],
                "summary": "Per-teacher rollups for the filtered view",
                "parameters": [
                    {"name": "teacher_id", "in": "query", "type": "string"},
                    {"name": "grade", "in": "query", "type": "string"},
                    {"name": "subject", "in": "query", "type": "string"},
                    {"name": "activity_type", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "Rollups with count", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/summary": {
            "get": {
                "tags": ["Analytics"],
                "summary": "Summary counts, chronological trend and grade breakdown",
                "parameters": [
                    {"name": "teacher_id", "in": "query", "type": "string"},
                    {"name": "grade", "in": "query", "type": "string"},
                    {"name": "subject", "in": "query", "type": "string"},
                    {"name": "activity_type", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "Summary payload", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/insights": {
            "get": {
                "tags": ["Insights"],
                "summary": "Ordered insight list for the filtered view",
                "parameters": [
                    {"name": "teacher_id", "in": "query", "type": "string"},
                    {"name": "grade", "in": "query", "type": "string"},
                    {"name": "subject", "in": "query", "type": "string"},
                    {"name": "activity_type", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "Insight strings, possibly empty", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/filters": {
            "get": {
                "tags": ["Analytics"],
                "summary": "Distinct filter options over the full store",
                "responses": {
                    "200": {"description": "Filter options", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/system": {
            "get": {
                "tags": ["Analytics"],
                "summary": "Instrumentation snapshot",
                "responses": {
                    "200": {"description": "System metrics", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        }
    },
    "definitions": {
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"}
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {"type": "object"},
                "error": {"$ref": "#/definitions/APIError"},
                "meta": {"type": "object"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
