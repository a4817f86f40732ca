package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Scholarship Match API",
        "description": "Matches student profiles against the scholarship catalog and explains each match.",
        "version": "1.0.0"
    },
    "basePath": "/api",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Students", "description": "Student registration"},
        {"name": "Matches", "description": "Eligibility matching and match reports"},
        {"name": "Scholarships", "description": "Scholarship catalog"}
    ],
    "paths": {
        "/students": {
            "post": {
                "tags": ["Students"],
                "summary": "Register a student profile",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateStudentRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/StudentCreatedEnvelope"}},
                    "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "409": {"description": "Email already exists", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/students/{id}/matches": {
            "get": {
                "tags": ["Matches"],
                "summary": "List scholarships the student is eligible for",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/StudentMatches"}},
                    "404": {"description": "Student not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/students/{id}/matches/export": {
            "get": {
                "tags": ["Matches"],
                "summary": "Download the student's matches",
                "produces": ["text/csv", "application/pdf"],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"], "default": "csv"}
                ],
                "responses": {
                    "200": {"description": "Report file", "schema": {"type": "file"}},
                    "400": {"description": "Unsupported format", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Student not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/scholarships": {
            "get": {
                "tags": ["Scholarships"],
                "summary": "List scholarships",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ScholarshipListEnvelope"}}
                }
            }
        },
        "/scholarships/{id}/requirements": {
            "get": {
                "tags": ["Scholarships"],
                "summary": "Count allow-list requirements per facet",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Scholarship not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        }
    },
    "definitions": {
        "CreateStudentRequest": {
            "type": "object",
            "required": ["name", "email", "gpa", "enrollment_status", "citizenship_status"],
            "properties": {
                "name": {"type": "string"},
                "email": {"type": "string", "format": "email"},
                "gpa": {"type": "number", "minimum": 0, "maximum": 4},
                "enrollment_status": {"type": "string"},
                "citizenship_status": {"type": "string"},
                "major": {"type": "string"},
                "graduation_year": {"type": "integer"},
                "gender": {"type": "string"},
                "ethnicity": {"type": "array", "items": {"type": "string"}},
                "household_income": {"type": "integer", "minimum": 0},
                "first_generation": {"type": "boolean"},
                "military_affiliation": {"type": "string"},
                "residency": {"type": "string"},
                "community_service_hours": {"type": "integer", "minimum": 0},
                "state": {"type": "string"}
            }
        },
        "StudentCreated": {
            "type": "object",
            "properties": {
                "id": {"type": "string", "example": "stu_011"},
                "name": {"type": "string"},
                "email": {"type": "string"},
                "created_at": {"type": "string", "format": "date-time"}
            }
        },
        "MatchScholarship": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "amount": {"type": "integer"},
                "provider": {"type": "string"},
                "deadline": {"type": "string", "format": "date"},
                "url": {"type": "string", "x-nullable": true}
            }
        },
        "Match": {
            "type": "object",
            "properties": {
                "scholarship": {"$ref": "#/definitions/MatchScholarship"},
                "match_reasons": {"type": "array", "items": {"type": "string"}},
                "explanation": {"type": "string"}
            }
        },
        "StudentMatches": {
            "type": "object",
            "properties": {
                "student_id": {"type": "string"},
                "student_name": {"type": "string"},
                "total_matches": {"type": "integer"},
                "total_potential_aid": {"type": "integer"},
                "matches": {"type": "array", "items": {"$ref": "#/definitions/Match"}}
            }
        },
        "ScholarshipListItem": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "amount": {"type": "integer"},
                "deadline": {"type": "string", "format": "date"},
                "provider": {"type": "string"}
            }
        },
        "ScholarshipList": {
            "type": "object",
            "properties": {
                "scholarships": {"type": "array", "items": {"$ref": "#/definitions/ScholarshipListItem"}},
                "total": {"type": "integer"}
            }
        },
        "StudentCreatedEnvelope": {
            "type": "object",
            "properties": {"data": {"$ref": "#/definitions/StudentCreated"}}
        },
        "ScholarshipListEnvelope": {
            "type": "object",
            "properties": {"data": {"$ref": "#/definitions/ScholarshipList"}}
        },
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
