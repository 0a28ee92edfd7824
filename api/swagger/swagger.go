package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Matricula API",
        "description": "Student enrollment lookup and registration form (REGISTRO DE MATRICULA) rendering.",
        "version": "1.0.0"
    },
    "basePath": "/",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Enrollments", "description": "Current-year student search"},
        {"name": "Registration", "description": "Legal-size registration form documents"},
        {"name": "Observability", "description": "Health, readiness and metrics"}
    ],
    "paths": {
        "/health": {
            "get": {
                "tags": ["Observability"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/ready": {
            "get": {
                "tags": ["Observability"],
                "summary": "Readiness check",
                "description": "Pings the record store.",
                "responses": {
                    "200": {"description": "Ready"},
                    "503": {"description": "Record store unavailable"}
                }
            }
        },
        "/metrics/summary": {
            "get": {
                "tags": ["Observability"],
                "summary": "Metrics summary",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/MetricsSnapshot"}}
                }
            }
        },
        "/buscar": {
            "get": {
                "tags": ["Enrollments"],
                "summary": "Search current enrollments",
                "description": "criterio is asignacion-nivel-numero, nivel-numero, or free text matched against code, identifier and name. Also served at /api/buscar.php.",
                "produces": ["application/json"],
                "parameters": [
                    {"name": "criterio", "in": "query", "type": "string", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/EnrollmentRecord"}}},
                    "400": {"description": "Missing criterion", "schema": {"$ref": "#/definitions/ErrorBody"}},
                    "404": {"description": "No match", "schema": {"$ref": "#/definitions/ErrorBody"}},
                    "500": {"description": "Record store failure", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/pdf": {
            "get": {
                "tags": ["Registration"],
                "summary": "Registration form of one student",
                "description": "Also served at /api/pdf.php.",
                "produces": ["application/pdf", "text/plain"],
                "parameters": [
                    {"name": "codigo", "in": "query", "type": "string", "required": true, "description": "Student code or identifier"}
                ],
                "responses": {
                    "200": {"description": "Inline PDF named Estudiante_<codigo>.pdf", "schema": {"type": "file"}},
                    "400": {"description": "Missing code", "schema": {"type": "string"}},
                    "404": {"description": "Unknown student", "schema": {"type": "string"}},
                    "500": {"description": "Lookup or rendering failure", "schema": {"type": "string"}}
                }
            }
        },
        "/pdf_consolidado": {
            "get": {
                "tags": ["Registration"],
                "summary": "Consolidated registration forms",
                "description": "One page per known code, in request order. Unknown codes are skipped. Repeated codigos is accepted as well. Also served at /api/pdf_consolidado.php.",
                "produces": ["application/pdf", "text/plain"],
                "parameters": [
                    {"name": "codigos[]", "in": "query", "type": "array", "items": {"type": "string"}, "collectionFormat": "multi", "required": true}
                ],
                "responses": {
                    "200": {"description": "Inline PDF named Estudiantes_Consolidado_<YYYYMMDD_HHMMSS>.pdf", "schema": {"type": "file"}},
                    "400": {"description": "Missing or too many codes", "schema": {"type": "string"}},
                    "404": {"description": "No known student", "schema": {"type": "string"}},
                    "500": {"description": "Lookup or rendering failure", "schema": {"type": "string"}}
                }
            }
        }
    },
    "definitions": {
        "EnrollmentRecord": {
            "type": "object",
            "properties": {
                "codigo": {"type": "string"},
                "year": {"type": "integer"},
                "estudiante": {"type": "string", "x-nullable": true},
                "nombres": {"type": "string", "x-nullable": true},
                "genero": {"type": "string", "x-nullable": true},
                "tipoSangre": {"type": "string", "x-nullable": true},
                "email_estudiante": {"type": "string", "x-nullable": true},
                "fecnac": {"type": "string", "x-nullable": true},
                "edad": {"type": "integer", "x-nullable": true},
                "lugarNacimiento": {"type": "string", "x-nullable": true},
                "tdei": {"type": "string", "x-nullable": true},
                "fechaExpedicion": {"type": "string", "x-nullable": true},
                "lugarExpedicion": {"type": "string", "x-nullable": true},
                "telefono1": {"type": "string", "x-nullable": true},
                "telefono2": {"type": "string", "x-nullable": true},
                "direccion": {"type": "string", "x-nullable": true},
                "lugar": {"type": "string", "x-nullable": true},
                "sisben": {"type": "string", "x-nullable": true},
                "estrato": {"type": "string", "x-nullable": true},
                "eps": {"type": "string", "x-nullable": true},
                "activo": {"type": "string", "x-nullable": true},
                "banda": {"type": "string", "x-nullable": true},
                "desertor": {"type": "string", "x-nullable": true},
                "eanterior": {"type": "string", "x-nullable": true},
                "estado": {"type": "string", "x-nullable": true},
                "asignacion": {"type": "string", "x-nullable": true},
                "nivel": {"type": "string", "x-nullable": true},
                "numero": {"type": "string", "x-nullable": true},
                "sede": {"type": "string", "x-nullable": true},
                "institucion_externa": {"type": "string", "x-nullable": true},
                "otraInformacion": {"type": "string", "x-nullable": true},
                "padre": {"type": "string", "x-nullable": true},
                "padreid": {"type": "string", "x-nullable": true},
                "ocupacionpadre": {"type": "string", "x-nullable": true},
                "telefonopadre": {"type": "string", "x-nullable": true},
                "madre": {"type": "string", "x-nullable": true},
                "madreid": {"type": "string", "x-nullable": true},
                "ocupacionmadre": {"type": "string", "x-nullable": true},
                "telefonomadre": {"type": "string", "x-nullable": true},
                "acudiente": {"type": "string", "x-nullable": true},
                "idacudiente": {"type": "string", "x-nullable": true},
                "parentesco": {"type": "string", "x-nullable": true},
                "telefono_acudiente": {"type": "string", "x-nullable": true},
                "victimaConflicto": {"type": "string", "x-nullable": true},
                "lugarDesplazamiento": {"type": "string", "x-nullable": true},
                "fechaDesplazamiento": {"type": "string", "x-nullable": true},
                "HED": {"type": "string", "x-nullable": true},
                "etnia": {"type": "string", "x-nullable": true},
                "discapacidad": {"type": "string", "x-nullable": true}
            }
        },
        "ErrorBody": {
            "type": "object",
            "properties": {
                "error": {"type": "string"}
            }
        },
        "MetricsSnapshot": {
            "type": "object",
            "properties": {
                "requests_total": {"type": "integer"},
                "average_request_duration_ms": {"type": "number"},
                "db_query_count": {"type": "integer"},
                "average_db_query_duration_ms": {"type": "number"},
                "documents_rendered": {"type": "integer"},
                "pages_rendered": {"type": "integer"},
                "render_failures": {"type": "integer"},
                "average_render_duration_ms": {"type": "number"},
                "goroutines": {"type": "integer"},
                "generated_at": {"type": "string", "format": "date-time"}
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
