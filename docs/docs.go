// Package docs holds the OpenAPI document served at /docs.
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
    "securityDefinitions": {
        "AdminKey": {
            "type": "apiKey",
            "name": "x-api-key",
            "in": "header"
        }
    },
    "paths": {
        "/health": {
            "get": {
                "tags": ["system"],
                "summary": "Liveness and database reachability",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "Always 200; body reports database state"}
                }
            }
        },
        "/v1/countries": {
            "get": {
                "tags": ["countries"],
                "summary": "List countries",
                "produces": ["application/json"],
                "parameters": [
                    {"name": "search", "in": "query", "type": "string", "description": "Substring of name_fr or iso2"},
                    {"name": "continent", "in": "query", "type": "string"},
                    {"name": "popular", "in": "query", "type": "string", "enum": ["0", "1"]},
                    {"name": "limit", "in": "query", "type": "integer"},
                    {"name": "offset", "in": "query", "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "Countries ordered by French name"},
                    "400": {"description": "Invalid filter value"}
                }
            }
        },
        "/v1/countries/{iso2}": {
            "get": {
                "tags": ["countries"],
                "summary": "Country by ISO2 code, with its official portal URL",
                "produces": ["application/json"],
                "parameters": [
                    {"name": "iso2", "in": "path", "type": "string", "required": true}
                ],
                "responses": {
                    "200": {"description": "Country"},
                    "404": {"description": "Country not found"}
                }
            }
        },
        "/v1/countries/{iso2}/guide": {
            "get": {
                "tags": ["countries"],
                "summary": "Country guide text for one language",
                "produces": ["application/json"],
                "parameters": [
                    {"name": "iso2", "in": "path", "type": "string", "required": true},
                    {"name": "lang", "in": "query", "type": "string", "default": "fr"}
                ],
                "responses": {
                    "200": {"description": "Guide"},
                    "404": {"description": "Country or guide not found"}
                }
            }
        },
        "/v1/nationalities": {
            "get": {
                "tags": ["nationalities"],
                "summary": "List nationalities",
                "produces": ["application/json"],
                "parameters": [
                    {"name": "search", "in": "query", "type": "string"},
                    {"name": "limit", "in": "query", "type": "integer"},
                    {"name": "offset", "in": "query", "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "Nationalities ordered by French name"}
                }
            }
        },
        "/v1/requirements": {
            "get": {
                "tags": ["requirements"],
                "summary": "Aggregated entry requirements for a nationality/destination pair",
                "produces": ["application/json"],
                "parameters": [
                    {"name": "nationality", "in": "query", "type": "string", "required": true, "description": "ISO2 code or exact French name"},
                    {"name": "destination", "in": "query", "type": "string", "required": true, "description": "ISO2 code or exact French name"},
                    {"name": "purpose", "in": "query", "type": "string", "default": "tourism"},
                    {"name": "lang", "in": "query", "type": "string", "default": "fr"}
                ],
                "responses": {
                    "200": {"description": "Full requirements document"},
                    "400": {"description": "Missing nationality or destination"},
                    "404": {"description": "Unknown token or no profile for the triple"}
                }
            }
        },
        "/v1/entry-profiles/{id}": {
            "get": {
                "tags": ["entry-profiles"],
                "summary": "Profile with documents, travel, health and decoded sources",
                "produces": ["application/json"],
                "parameters": [
                    {"name": "id", "in": "path", "type": "integer", "required": true}
                ],
                "responses": {
                    "200": {"description": "Composite profile"},
                    "400": {"description": "Invalid profile ID"},
                    "404": {"description": "Entry profile not found"}
                }
            }
        },
        "/v1/entry-profiles/{id}/documents": {
            "get": {
                "tags": ["entry-profiles"],
                "summary": "Document set of a profile",
                "produces": ["application/json"],
                "parameters": [
                    {"name": "id", "in": "path", "type": "integer", "required": true}
                ],
                "responses": {
                    "200": {"description": "Documents, possibly empty"},
                    "400": {"description": "Invalid profile ID"}
                }
            }
        },
        "/v1/entry-profiles/{id}/travel-requirements": {
            "get": {
                "tags": ["entry-profiles"],
                "summary": "Travel requirements row of a profile",
                "produces": ["application/json"],
                "parameters": [
                    {"name": "id", "in": "path", "type": "integer", "required": true}
                ],
                "responses": {
                    "200": {"description": "Travel requirements"},
                    "404": {"description": "Travel requirements not found"}
                }
            }
        },
        "/v1/entry-profiles/{id}/health": {
            "get": {
                "tags": ["entry-profiles"],
                "summary": "Health requirements row of a profile",
                "produces": ["application/json"],
                "parameters": [
                    {"name": "id", "in": "path", "type": "integer", "required": true}
                ],
                "responses": {
                    "200": {"description": "Health requirements"},
                    "404": {"description": "Health requirements not found"}
                }
            }
        },
        "/v1/admin/nationalities": {
            "post": {
                "tags": ["admin"],
                "security": [{"AdminKey": []}],
                "summary": "Create or update a nationality keyed by French name",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "responses": {
                    "201": {"description": "Upserted; body echoes the payload with its id"},
                    "400": {"description": "Validation error"},
                    "401": {"description": "Missing or invalid API key"}
                }
            }
        },
        "/v1/admin/countries": {
            "post": {
                "tags": ["admin"],
                "security": [{"AdminKey": []}],
                "summary": "Create or update a country keyed by iso2, falling back to name",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "responses": {
                    "201": {"description": "Upserted"},
                    "400": {"description": "Validation error"},
                    "401": {"description": "Missing or invalid API key"}
                }
            }
        },
        "/v1/admin/countries/{iso2}/official-portal": {
            "post": {
                "tags": ["admin"],
                "security": [{"AdminKey": []}],
                "summary": "Set a country's official portal URL",
                "parameters": [
                    {"name": "iso2", "in": "path", "type": "string", "required": true}
                ],
                "responses": {
                    "201": {"description": "Upserted"},
                    "404": {"description": "Country not found"}
                }
            }
        },
        "/v1/admin/entry-profiles": {
            "put": {
                "tags": ["admin"],
                "security": [{"AdminKey": []}],
                "summary": "Create or update a profile keyed by (nationality, destination, purpose)",
                "responses": {
                    "200": {"description": "Upserted; id stable across calls"},
                    "400": {"description": "Validation error"}
                }
            }
        },
        "/v1/admin/entry-profiles/{id}/documents": {
            "put": {
                "tags": ["admin"],
                "security": [{"AdminKey": []}],
                "summary": "Replace a profile's document set wholesale",
                "parameters": [
                    {"name": "id", "in": "path", "type": "integer", "required": true}
                ],
                "responses": {
                    "200": {"description": "Replaced; an empty list clears the set"},
                    "404": {"description": "Entry profile not found"}
                }
            }
        },
        "/v1/admin/entry-profiles/{id}/travel-requirements": {
            "put": {
                "tags": ["admin"],
                "security": [{"AdminKey": []}],
                "summary": "Create or update a profile's travel requirements",
                "parameters": [
                    {"name": "id", "in": "path", "type": "integer", "required": true}
                ],
                "responses": {
                    "200": {"description": "Upserted"},
                    "404": {"description": "Entry profile not found"}
                }
            }
        },
        "/v1/admin/entry-profiles/{id}/health": {
            "put": {
                "tags": ["admin"],
                "security": [{"AdminKey": []}],
                "summary": "Create or update a profile's health requirements",
                "parameters": [
                    {"name": "id", "in": "path", "type": "integer", "required": true}
                ],
                "responses": {
                    "200": {"description": "Upserted"},
                    "404": {"description": "Entry profile not found"}
                }
            }
        },
        "/v1/admin/countries/{iso2}/guide": {
            "put": {
                "tags": ["admin"],
                "security": [{"AdminKey": []}],
                "summary": "Create or update a country's guide for one language",
                "parameters": [
                    {"name": "iso2", "in": "path", "type": "string", "required": true}
                ],
                "responses": {
                    "200": {"description": "Upserted"},
                    "404": {"description": "Country not found"}
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Travel Visa Requirements API",
	Description:      "Visa, travel-authorization and health-requirement data per (nationality, destination, purpose).",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
