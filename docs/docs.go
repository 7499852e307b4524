// Package docs holds the Swagger document served under /swagger.
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
		"/charges": {
			"get": {
				"security": [{"BearerAuth": []}],
				"produces": ["application/json"],
				"tags": ["Charges"],
				"summary": "List charge records",
				"parameters": [
					{
						"type": "string",
						"description": "corporation",
						"name": "corporation_uuid",
						"in": "query"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {"$ref": "#/definitions/response.Envelope"}
					},
					"400": {
						"description": "Bad Request",
						"schema": {"$ref": "#/definitions/response.Envelope"}
					}
				}
			},
			"post": {
				"security": [{"BearerAuth": []}],
				"produces": ["application/json"],
				"tags": ["Charges"],
				"summary": "Create charge",
				"consumes": ["application/json"],
				"parameters": [
					{
						"description": "fields",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"type": "object"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {"$ref": "#/definitions/response.Envelope"}
					},
					"400": {
						"description": "Bad Request",
						"schema": {"$ref": "#/definitions/response.Envelope"}
					}
				}
			}
		},
		"/charges/{uuid}": {
			"get": {
				"security": [{"BearerAuth": []}],
				"produces": ["application/json"],
				"tags": ["Charges"],
				"summary": "Get charge",
				"parameters": [
					{
						"type": "string",
						"description": "record uuid",
						"name": "uuid",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {"$ref": "#/definitions/response.Envelope"}
					},
					"404": {
						"description": "Not Found",
						"schema": {"$ref": "#/definitions/response.Envelope"}
					}
				}
			},
			"put": {
				"security": [{"BearerAuth": []}],
				"produces": ["application/json"],
				"tags": ["Charges"],
				"summary": "Update charge",
				"consumes": ["application/json"],
				"parameters": [
					{
						"type": "string",
						"description": "record uuid",
						"name": "uuid",
						"in": "path",
						"required": true
					},
					{
						"description": "fields",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"type": "object"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {"$ref": "#/definitions/response.Envelope"}
					},
					"400": {
						"description": "Bad Request",
						"schema": {"$ref": "#/definitions/response.Envelope"}
					},
					"404": {
						"description": "Not Found",
						"schema": {"$ref": "#/definitions/response.Envelope"}
					}
				}
			},
			"delete": {
				"security": [{"BearerAuth": []}],
				"produces": ["application/json"],
				"tags": ["Charges"],
				"summary": "Delete charge",
				"parameters": [
					{
						"type": "string",
						"description": "record uuid",
						"name": "uuid",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {"$ref": "#/definitions/response.Envelope"}
					},
					"404": {
						"description": "Not Found",
						"schema": {"$ref": "#/definitions/response.Envelope"}
					},
					"409": {
						"description": "Conflict",
						"schema": {"$ref": "#/definitions/response.Envelope"}
					}
				}
			}
		},
		"/sales-taxes": {
			"get": {
				"security": [{"BearerAuth": []}],
				"produces": ["application/json"],
				"tags": ["SalesTaxes"],
				"summary": "List sales tax records",
				"parameters": [
					{
						"type": "string",
						"description": "corporation",
						"name": "corporation_uuid",
						"in": "query"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {"$ref": "#/definitions/response.Envelope"}
					},
					"400": {
						"description": "Bad Request",
						"schema": {"$ref": "#/definitions/response.Envelope"}
					}
				}
			},
			"post": {
				"security": [{"BearerAuth": []}],
				"produces": ["application/json"],
				"tags": ["SalesTaxes"],
				"summary": "Create sales tax",
				"consumes": ["application/json"],
				"parameters": [
					{
						"description": "fields",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"type": "object"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {"$ref": "#/definitions/response.Envelope"}
					},
					"400": {
						"description": "Bad Request",
						"schema": {"$ref": "#/definitions/response.Envelope"}
					}
				}
			}
		},
		"/sales-taxes/{uuid}": {
			"get": {
				"security": [{"BearerAuth": []}],
				"produces": ["application/json"],
				"tags": ["SalesTaxes"],
				"summary": "Get sales tax",
				"parameters": [
					{
						"type": "string",
						"description": "record uuid",
						"name": "uuid",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {"$ref": "#/definitions/response.Envelope"}
					},
					"404": {
						"description": "Not Found",
						"schema": {"$ref": "#/definitions/response.Envelope"}
					}
				}
			},
			"put": {
				"security": [{"BearerAuth": []}],
				"produces": ["application/json"],
				"tags": ["SalesTaxes"],
				"summary": "Update sales tax",
				"consumes": ["application/json"],
				"parameters": [
					{
						"type": "string",
						"description": "record uuid",
						"name": "uuid",
						"in": "path",
						"required": true
					},
					{
						"description": "fields",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"type": "object"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {"$ref": "#/definitions/response.Envelope"}
					},
					"400": {
						"description": "Bad Request",
						"schema": {"$ref": "#/definitions/response.Envelope"}
					},
					"404": {
						"description": "Not Found",
						"schema": {"$ref": "#/definitions/response.Envelope"}
					}
				}
			},
			"delete": {
				"security": [{"BearerAuth": []}],
				"produces": ["application/json"],
				"tags": ["SalesTaxes"],
				"summary": "Delete sales tax",
				"parameters": [
					{
						"type": "string",
						"description": "record uuid",
						"name": "uuid",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {"$ref": "#/definitions/response.Envelope"}
					},
					"404": {
						"description": "Not Found",
						"schema": {"$ref": "#/definitions/response.Envelope"}
					},
					"409": {
						"description": "Conflict",
						"schema": {"$ref": "#/definitions/response.Envelope"}
					}
				}
			}
		},
		"/uoms": {
			"get": {
				"security": [{"BearerAuth": []}],
				"produces": ["application/json"],
				"tags": ["UOM"],
				"summary": "List uom records",
				"parameters": [
					{
						"type": "string",
						"description": "corporation",
						"name": "corporation_uuid",
						"in": "query"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {"$ref": "#/definitions/response.Envelope"}
					},
					"400": {
						"description": "Bad Request",
						"schema": {"$ref": "#/definitions/response.Envelope"}
					}
				}
			},
			"post": {
				"security": [{"BearerAuth": []}],
				"produces": ["application/json"],
				"tags": ["UOM"],
				"summary": "Create uom",
				"consumes": ["application/json"],
				"parameters": [
					{
						"description": "fields",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"type": "object"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {"$ref": "#/definitions/response.Envelope"}
					},
					"400": {
						"description": "Bad Request",
						"schema": {"$ref": "#/definitions/response.Envelope"}
					}
				}
			}
		},
		"/uoms/{uuid}": {
			"get": {
				"security": [{"BearerAuth": []}],
				"produces": ["application/json"],
				"tags": ["UOM"],
				"summary": "Get uom",
				"parameters": [
					{
						"type": "string",
						"description": "record uuid",
						"name": "uuid",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {"$ref": "#/definitions/response.Envelope"}
					},
					"404": {
						"description": "Not Found",
						"schema": {"$ref": "#/definitions/response.Envelope"}
					}
				}
			},
			"put": {
				"security": [{"BearerAuth": []}],
				"produces": ["application/json"],
				"tags": ["UOM"],
				"summary": "Update uom",
				"consumes": ["application/json"],
				"parameters": [
					{
						"type": "string",
						"description": "record uuid",
						"name": "uuid",
						"in": "path",
						"required": true
					},
					{
						"description": "fields",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"type": "object"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {"$ref": "#/definitions/response.Envelope"}
					},
					"400": {
						"description": "Bad Request",
						"schema": {"$ref": "#/definitions/response.Envelope"}
					},
					"404": {
						"description": "Not Found",
						"schema": {"$ref": "#/definitions/response.Envelope"}
					}
				}
			},
			"delete": {
				"security": [{"BearerAuth": []}],
				"produces": ["application/json"],
				"tags": ["UOM"],
				"summary": "Delete uom",
				"parameters": [
					{
						"type": "string",
						"description": "record uuid",
						"name": "uuid",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {"$ref": "#/definitions/response.Envelope"}
					},
					"404": {
						"description": "Not Found",
						"schema": {"$ref": "#/definitions/response.Envelope"}
					},
					"409": {
						"description": "Conflict",
						"schema": {"$ref": "#/definitions/response.Envelope"}
					}
				}
			}
		},
		"/freights": {
			"get": {
				"security": [{"BearerAuth": []}],
				"produces": ["application/json"],
				"tags": ["Freight"],
				"summary": "List freight records",
				"parameters": [
					{
						"type": "string",
						"description": "corporation",
						"name": "corporation_uuid",
						"in": "query"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {"$ref": "#/definitions/response.Envelope"}
					},
					"400": {
						"description": "Bad Request",
						"schema": {"$ref": "#/definitions/response.Envelope"}
					}
				}
			},
			"post": {
				"security": [{"BearerAuth": []}],
				"produces": ["application/json"],
				"tags": ["Freight"],
				"summary": "Create freight",
				"consumes": ["application/json"],
				"parameters": [
					{
						"description": "fields",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"type": "object"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {"$ref": "#/definitions/response.Envelope"}
					},
					"400": {
						"description": "Bad Request",
						"schema": {"$ref": "#/definitions/response.Envelope"}
					}
				}
			}
		},
		"/freights/{uuid}": {
			"get": {
				"security": [{"BearerAuth": []}],
				"produces": ["application/json"],
				"tags": ["Freight"],
				"summary": "Get freight",
				"parameters": [
					{
						"type": "string",
						"description": "record uuid",
						"name": "uuid",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {"$ref": "#/definitions/response.Envelope"}
					},
					"404": {
						"description": "Not Found",
						"schema": {"$ref": "#/definitions/response.Envelope"}
					}
				}
			},
			"put": {
				"security": [{"BearerAuth": []}],
				"produces": ["application/json"],
				"tags": ["Freight"],
				"summary": "Update freight",
				"consumes": ["application/json"],
				"parameters": [
					{
						"type": "string",
						"description": "record uuid",
						"name": "uuid",
						"in": "path",
						"required": true
					},
					{
						"description": "fields",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"type": "object"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {"$ref": "#/definitions/response.Envelope"}
					},
					"400": {
						"description": "Bad Request",
						"schema": {"$ref": "#/definitions/response.Envelope"}
					},
					"404": {
						"description": "Not Found",
						"schema": {"$ref": "#/definitions/response.Envelope"}
					}
				}
			},
			"delete": {
				"security": [{"BearerAuth": []}],
				"produces": ["application/json"],
				"tags": ["Freight"],
				"summary": "Delete freight",
				"parameters": [
					{
						"type": "string",
						"description": "record uuid",
						"name": "uuid",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {"$ref": "#/definitions/response.Envelope"}
					},
					"404": {
						"description": "Not Found",
						"schema": {"$ref": "#/definitions/response.Envelope"}
					},
					"409": {
						"description": "Conflict",
						"schema": {"$ref": "#/definitions/response.Envelope"}
					}
				}
			}
		},
		"/locations": {
			"get": {
				"security": [{"BearerAuth": []}],
				"produces": ["application/json"],
				"tags": ["Locations"],
				"summary": "List location records",
				"parameters": [
					{
						"type": "string",
						"description": "corporation",
						"name": "corporation_uuid",
						"in": "query"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {"$ref": "#/definitions/response.Envelope"}
					},
					"400": {
						"description": "Bad Request",
						"schema": {"$ref": "#/definitions/response.Envelope"}
					}
				}
			},
			"post": {
				"security": [{"BearerAuth": []}],
				"produces": ["application/json"],
				"tags": ["Locations"],
				"summary": "Create location",
				"consumes": ["application/json"],
				"parameters": [
					{
						"description": "fields",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"type": "object"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {"$ref": "#/definitions/response.Envelope"}
					},
					"400": {
						"description": "Bad Request",
						"schema": {"$ref": "#/definitions/response.Envelope"}
					}
				}
			}
		},
		"/locations/{uuid}": {
			"get": {
				"security": [{"BearerAuth": []}],
				"produces": ["application/json"],
				"tags": ["Locations"],
				"summary": "Get location",
				"parameters": [
					{
						"type": "string",
						"description": "record uuid",
						"name": "uuid",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {"$ref": "#/definitions/response.Envelope"}
					},
					"404": {
						"description": "Not Found",
						"schema": {"$ref": "#/definitions/response.Envelope"}
					}
				}
			},
			"put": {
				"security": [{"BearerAuth": []}],
				"produces": ["application/json"],
				"tags": ["Locations"],
				"summary": "Update location",
				"consumes": ["application/json"],
				"parameters": [
					{
						"type": "string",
						"description": "record uuid",
						"name": "uuid",
						"in": "path",
						"required": true
					},
					{
						"description": "fields",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"type": "object"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {"$ref": "#/definitions/response.Envelope"}
					},
					"400": {
						"description": "Bad Request",
						"schema": {"$ref": "#/definitions/response.Envelope"}
					},
					"404": {
						"description": "Not Found",
						"schema": {"$ref": "#/definitions/response.Envelope"}
					}
				}
			},
			"delete": {
				"security": [{"BearerAuth": []}],
				"produces": ["application/json"],
				"tags": ["Locations"],
				"summary": "Delete location",
				"parameters": [
					{
						"type": "string",
						"description": "record uuid",
						"name": "uuid",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {"$ref": "#/definitions/response.Envelope"}
					},
					"404": {
						"description": "Not Found",
						"schema": {"$ref": "#/definitions/response.Envelope"}
					},
					"409": {
						"description": "Conflict",
						"schema": {"$ref": "#/definitions/response.Envelope"}
					}
				}
			}
		},
		"/cost-code-divisions": {
			"get": {
				"security": [{"BearerAuth": []}],
				"produces": ["application/json"],
				"tags": ["CostCodes"],
				"summary": "List cost code division records",
				"parameters": [
					{
						"type": "string",
						"description": "corporation",
						"name": "corporation_uuid",
						"in": "query"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {"$ref": "#/definitions/response.Envelope"}
					},
					"400": {
						"description": "Bad Request",
						"schema": {"$ref": "#/definitions/response.Envelope"}
					}
				}
			},
			"post": {
				"security": [{"BearerAuth": []}],
				"produces": ["application/json"],
				"tags": ["CostCodes"],
				"summary": "Create cost code division",
				"consumes": ["application/json"],
				"parameters": [
					{
						"description": "fields",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"type": "object"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {"$ref": "#/definitions/response.Envelope"}
					},
					"400": {
						"description": "Bad Request",
						"schema": {"$ref": "#/definitions/response.Envelope"}
					}
				}
			}
		},
		"/cost-code-divisions/{uuid}": {
			"get": {
				"security": [{"BearerAuth": []}],
				"produces": ["application/json"],
				"tags": ["CostCodes"],
				"summary": "Get cost code division",
				"parameters": [
					{
						"type": "string",
						"description": "record uuid",
						"name": "uuid",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {"$ref": "#/definitions/response.Envelope"}
					},
					"404": {
						"description": "Not Found",
						"schema": {"$ref": "#/definitions/response.Envelope"}
					}
				}
			},
			"put": {
				"security": [{"BearerAuth": []}],
				"produces": ["application/json"],
				"tags": ["CostCodes"],
				"summary": "Update cost code division",
				"consumes": ["application/json"],
				"parameters": [
					{
						"type": "string",
						"description": "record uuid",
						"name": "uuid",
						"in": "path",
						"required": true
					},
					{
						"description": "fields",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"type": "object"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {"$ref": "#/definitions/response.Envelope"}
					},
					"400": {
						"description": "Bad Request",
						"schema": {"$ref": "#/definitions/response.Envelope"}
					},
					"404": {
						"description": "Not Found",
						"schema": {"$ref": "#/definitions/response.Envelope"}
					}
				}
			},
			"delete": {
				"security": [{"BearerAuth": []}],
				"produces": ["application/json"],
				"tags": ["CostCodes"],
				"summary": "Delete cost code division",
				"parameters": [
					{
						"type": "string",
						"description": "record uuid",
						"name": "uuid",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {"$ref": "#/definitions/response.Envelope"}
					},
					"404": {
						"description": "Not Found",
						"schema": {"$ref": "#/definitions/response.Envelope"}
					},
					"409": {
						"description": "Conflict",
						"schema": {"$ref": "#/definitions/response.Envelope"}
					}
				}
			}
		},
		"/cost-code-configurations": {
			"get": {
				"security": [{"BearerAuth": []}],
				"produces": ["application/json"],
				"tags": ["CostCodes"],
				"summary": "List cost code configuration records",
				"parameters": [
					{
						"type": "string",
						"description": "corporation",
						"name": "corporation_uuid",
						"in": "query"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {"$ref": "#/definitions/response.Envelope"}
					},
					"400": {
						"description": "Bad Request",
						"schema": {"$ref": "#/definitions/response.Envelope"}
					}
				}
			},
			"post": {
				"security": [{"BearerAuth": []}],
				"produces": ["application/json"],
				"tags": ["CostCodes"],
				"summary": "Create cost code configuration",
				"consumes": ["application/json"],
				"parameters": [
					{
						"description": "fields",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"type": "object"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {"$ref": "#/definitions/response.Envelope"}
					},
					"400": {
						"description": "Bad Request",
						"schema": {"$ref": "#/definitions/response.Envelope"}
					}
				}
			}
		},
		"/cost-code-configurations/{uuid}": {
			"get": {
				"security": [{"BearerAuth": []}],
				"produces": ["application/json"],
				"tags": ["CostCodes"],
				"summary": "Get cost code configuration",
				"parameters": [
					{
						"type": "string",
						"description": "record uuid",
						"name": "uuid",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {"$ref": "#/definitions/response.Envelope"}
					},
					"404": {
						"description": "Not Found",
						"schema": {"$ref": "#/definitions/response.Envelope"}
					}
				}
			},
			"put": {
				"security": [{"BearerAuth": []}],
				"produces": ["application/json"],
				"tags": ["CostCodes"],
				"summary": "Update cost code configuration",
				"consumes": ["application/json"],
				"parameters": [
					{
						"type": "string",
						"description": "record uuid",
						"name": "uuid",
						"in": "path",
						"required": true
					},
					{
						"description": "fields",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"type": "object"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {"$ref": "#/definitions/response.Envelope"}
					},
					"400": {
						"description": "Bad Request",
						"schema": {"$ref": "#/definitions/response.Envelope"}
					},
					"404": {
						"description": "Not Found",
						"schema": {"$ref": "#/definitions/response.Envelope"}
					}
				}
			},
			"delete": {
				"security": [{"BearerAuth": []}],
				"produces": ["application/json"],
				"tags": ["CostCodes"],
				"summary": "Delete cost code configuration",
				"parameters": [
					{
						"type": "string",
						"description": "record uuid",
						"name": "uuid",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {"$ref": "#/definitions/response.Envelope"}
					},
					"404": {
						"description": "Not Found",
						"schema": {"$ref": "#/definitions/response.Envelope"}
					},
					"409": {
						"description": "Conflict",
						"schema": {"$ref": "#/definitions/response.Envelope"}
					}
				}
			}
		},
		"/projects": {
			"get": {
				"security": [{"BearerAuth": []}],
				"produces": ["application/json"],
				"tags": ["Projects"],
				"summary": "List project records",
				"parameters": [
					{
						"type": "string",
						"description": "corporation",
						"name": "corporation_uuid",
						"in": "query"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {"$ref": "#/definitions/response.Envelope"}
					},
					"400": {
						"description": "Bad Request",
						"schema": {"$ref": "#/definitions/response.Envelope"}
					}
				}
			},
			"post": {
				"security": [{"BearerAuth": []}],
				"produces": ["application/json"],
				"tags": ["Projects"],
				"summary": "Create project",
				"consumes": ["application/json"],
				"parameters": [
					{
						"description": "fields",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"type": "object"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {"$ref": "#/definitions/response.Envelope"}
					},
					"400": {
						"description": "Bad Request",
						"schema": {"$ref": "#/definitions/response.Envelope"}
					}
				}
			}
		},
		"/projects/{uuid}": {
			"get": {
				"security": [{"BearerAuth": []}],
				"produces": ["application/json"],
				"tags": ["Projects"],
				"summary": "Get project",
				"parameters": [
					{
						"type": "string",
						"description": "record uuid",
						"name": "uuid",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {"$ref": "#/definitions/response.Envelope"}
					},
					"404": {
						"description": "Not Found",
						"schema": {"$ref": "#/definitions/response.Envelope"}
					}
				}
			},
			"put": {
				"security": [{"BearerAuth": []}],
				"produces": ["application/json"],
				"tags": ["Projects"],
				"summary": "Update project",
				"consumes": ["application/json"],
				"parameters": [
					{
						"type": "string",
						"description": "record uuid",
						"name": "uuid",
						"in": "path",
						"required": true
					},
					{
						"description": "fields",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"type": "object"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {"$ref": "#/definitions/response.Envelope"}
					},
					"400": {
						"description": "Bad Request",
						"schema": {"$ref": "#/definitions/response.Envelope"}
					},
					"404": {
						"description": "Not Found",
						"schema": {"$ref": "#/definitions/response.Envelope"}
					}
				}
			},
			"delete": {
				"security": [{"BearerAuth": []}],
				"produces": ["application/json"],
				"tags": ["Projects"],
				"summary": "Delete project",
				"parameters": [
					{
						"type": "string",
						"description": "record uuid",
						"name": "uuid",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {"$ref": "#/definitions/response.Envelope"}
					},
					"404": {
						"description": "Not Found",
						"schema": {"$ref": "#/definitions/response.Envelope"}
					},
					"409": {
						"description": "Conflict",
						"schema": {"$ref": "#/definitions/response.Envelope"}
					}
				}
			}
		},
		"/item-types": {
			"get": {
				"security": [{"BearerAuth": []}],
				"produces": ["application/json"],
				"tags": ["ItemTypes"],
				"summary": "List item type records",
				"parameters": [
					{
						"type": "string",
						"description": "corporation",
						"name": "corporation_uuid",
						"in": "query"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {"$ref": "#/definitions/response.Envelope"}
					},
					"400": {
						"description": "Bad Request",
						"schema": {"$ref": "#/definitions/response.Envelope"}
					}
				}
			},
			"post": {
				"security": [{"BearerAuth": []}],
				"produces": ["application/json"],
				"tags": ["ItemTypes"],
				"summary": "Create item type",
				"consumes": ["application/json"],
				"parameters": [
					{
						"description": "fields",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"type": "object"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {"$ref": "#/definitions/response.Envelope"}
					},
					"400": {
						"description": "Bad Request",
						"schema": {"$ref": "#/definitions/response.Envelope"}
					}
				}
			}
		},
		"/item-types/{uuid}": {
			"get": {
				"security": [{"BearerAuth": []}],
				"produces": ["application/json"],
				"tags": ["ItemTypes"],
				"summary": "Get item type",
				"parameters": [
					{
						"type": "string",
						"description": "record uuid",
						"name": "uuid",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {"$ref": "#/definitions/response.Envelope"}
					},
					"404": {
						"description": "Not Found",
						"schema": {"$ref": "#/definitions/response.Envelope"}
					}
				}
			},
			"put": {
				"security": [{"BearerAuth": []}],
				"produces": ["application/json"],
				"tags": ["ItemTypes"],
				"summary": "Update item type",
				"consumes": ["application/json"],
				"parameters": [
					{
						"type": "string",
						"description": "record uuid",
						"name": "uuid",
						"in": "path",
						"required": true
					},
					{
						"description": "fields",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"type": "object"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {"$ref": "#/definitions/response.Envelope"}
					},
					"400": {
						"description": "Bad Request",
						"schema": {"$ref": "#/definitions/response.Envelope"}
					},
					"404": {
						"description": "Not Found",
						"schema": {"$ref": "#/definitions/response.Envelope"}
					}
				}
			},
			"delete": {
				"security": [{"BearerAuth": []}],
				"produces": ["application/json"],
				"tags": ["ItemTypes"],
				"summary": "Delete item type",
				"parameters": [
					{
						"type": "string",
						"description": "record uuid",
						"name": "uuid",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {"$ref": "#/definitions/response.Envelope"}
					},
					"404": {
						"description": "Not Found",
						"schema": {"$ref": "#/definitions/response.Envelope"}
					},
					"409": {
						"description": "Conflict",
						"schema": {"$ref": "#/definitions/response.Envelope"}
					}
				}
			}
		},
		"/po-instructions": {
			"get": {
				"security": [{"BearerAuth": []}],
				"produces": ["application/json"],
				"tags": ["Purchasing"],
				"summary": "List po instruction records",
				"parameters": [
					{
						"type": "string",
						"description": "corporation",
						"name": "corporation_uuid",
						"in": "query"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {"$ref": "#/definitions/response.Envelope"}
					},
					"400": {
						"description": "Bad Request",
						"schema": {"$ref": "#/definitions/response.Envelope"}
					}
				}
			},
			"post": {
				"security": [{"BearerAuth": []}],
				"produces": ["application/json"],
				"tags": ["Purchasing"],
				"summary": "Create po instruction",
				"consumes": ["application/json"],
				"parameters": [
					{
						"description": "fields",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"type": "object"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {"$ref": "#/definitions/response.Envelope"}
					},
					"400": {
						"description": "Bad Request",
						"schema": {"$ref": "#/definitions/response.Envelope"}
					}
				}
			}
		},
		"/po-instructions/{uuid}": {
			"get": {
				"security": [{"BearerAuth": []}],
				"produces": ["application/json"],
				"tags": ["Purchasing"],
				"summary": "Get po instruction",
				"parameters": [
					{
						"type": "string",
						"description": "record uuid",
						"name": "uuid",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {"$ref": "#/definitions/response.Envelope"}
					},
					"404": {
						"description": "Not Found",
						"schema": {"$ref": "#/definitions/response.Envelope"}
					}
				}
			},
			"put": {
				"security": [{"BearerAuth": []}],
				"produces": ["application/json"],
				"tags": ["Purchasing"],
				"summary": "Update po instruction",
				"consumes": ["application/json"],
				"parameters": [
					{
						"type": "string",
						"description": "record uuid",
						"name": "uuid",
						"in": "path",
						"required": true
					},
					{
						"description": "fields",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"type": "object"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {"$ref": "#/definitions/response.Envelope"}
					},
					"400": {
						"description": "Bad Request",
						"schema": {"$ref": "#/definitions/response.Envelope"}
					},
					"404": {
						"description": "Not Found",
						"schema": {"$ref": "#/definitions/response.Envelope"}
					}
				}
			},
			"delete": {
				"security": [{"BearerAuth": []}],
				"produces": ["application/json"],
				"tags": ["Purchasing"],
				"summary": "Delete po instruction",
				"parameters": [
					{
						"type": "string",
						"description": "record uuid",
						"name": "uuid",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {"$ref": "#/definitions/response.Envelope"}
					},
					"404": {
						"description": "Not Found",
						"schema": {"$ref": "#/definitions/response.Envelope"}
					},
					"409": {
						"description": "Conflict",
						"schema": {"$ref": "#/definitions/response.Envelope"}
					}
				}
			}
		},
		"/terms-and-conditions": {
			"get": {
				"security": [{"BearerAuth": []}],
				"produces": ["application/json"],
				"tags": ["Purchasing"],
				"summary": "List terms and conditions records",
				"parameters": [
					{
						"type": "string",
						"description": "corporation",
						"name": "corporation_uuid",
						"in": "query"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {"$ref": "#/definitions/response.Envelope"}
					},
					"400": {
						"description": "Bad Request",
						"schema": {"$ref": "#/definitions/response.Envelope"}
					}
				}
			},
			"post": {
				"security": [{"BearerAuth": []}],
				"produces": ["application/json"],
				"tags": ["Purchasing"],
				"summary": "Create terms and conditions",
				"consumes": ["application/json"],
				"parameters": [
					{
						"description": "fields",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"type": "object"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {"$ref": "#/definitions/response.Envelope"}
					},
					"400": {
						"description": "Bad Request",
						"schema": {"$ref": "#/definitions/response.Envelope"}
					}
				}
			}
		},
		"/terms-and-conditions/{uuid}": {
			"get": {
				"security": [{"BearerAuth": []}],
				"produces": ["application/json"],
				"tags": ["Purchasing"],
				"summary": "Get terms and conditions",
				"parameters": [
					{
						"type": "string",
						"description": "record uuid",
						"name": "uuid",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {"$ref": "#/definitions/response.Envelope"}
					},
					"404": {
						"description": "Not Found",
						"schema": {"$ref": "#/definitions/response.Envelope"}
					}
				}
			},
			"put": {
				"security": [{"BearerAuth": []}],
				"produces": ["application/json"],
				"tags": ["Purchasing"],
				"summary": "Update terms and conditions",
				"consumes": ["application/json"],
				"parameters": [
					{
						"type": "string",
						"description": "record uuid",
						"name": "uuid",
						"in": "path",
						"required": true
					},
					{
						"description": "fields",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"type": "object"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {"$ref": "#/definitions/response.Envelope"}
					},
					"400": {
						"description": "Bad Request",
						"schema": {"$ref": "#/definitions/response.Envelope"}
					},
					"404": {
						"description": "Not Found",
						"schema": {"$ref": "#/definitions/response.Envelope"}
					}
				}
			},
			"delete": {
				"security": [{"BearerAuth": []}],
				"produces": ["application/json"],
				"tags": ["Purchasing"],
				"summary": "Delete terms and conditions",
				"parameters": [
					{
						"type": "string",
						"description": "record uuid",
						"name": "uuid",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {"$ref": "#/definitions/response.Envelope"}
					},
					"404": {
						"description": "Not Found",
						"schema": {"$ref": "#/definitions/response.Envelope"}
					},
					"409": {
						"description": "Conflict",
						"schema": {"$ref": "#/definitions/response.Envelope"}
					}
				}
			}
		},
		"/audit-logs": {
			"get": {
				"security": [{"BearerAuth": []}],
				"produces": ["application/json"],
				"tags": ["Audit"],
				"summary": "Audit trail",
				"parameters": [
					{
						"type": "string",
						"description": "corporation",
						"name": "corporation_uuid",
						"in": "query",
						"required": true
					},
					{
						"type": "string",
						"description": "entity",
						"name": "entity_uuid",
						"in": "query",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {"$ref": "#/definitions/response.Envelope"}
					},
					"400": {
						"description": "Bad Request",
						"schema": {"$ref": "#/definitions/response.Envelope"}
					}
				}
			}
		},
		"/auth/forgot-password": {
			"post": {
				"produces": ["application/json"],
				"tags": ["Auth"],
				"summary": "Send a password reset email",
				"consumes": ["application/json"],
				"parameters": [
					{
						"description": "email",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"type": "object",
							"properties": {
								"email": {
									"type": "string"
								}
							}
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {"$ref": "#/definitions/response.Envelope"}
					},
					"400": {
						"description": "Bad Request",
						"schema": {"$ref": "#/definitions/response.Envelope"}
					},
					"429": {
						"description": "Too Many Requests",
						"schema": {"$ref": "#/definitions/response.Envelope"}
					}
				}
			}
		},
		"/auth/me": {
			"get": {
				"security": [{"BearerAuth": []}],
				"produces": ["application/json"],
				"tags": ["Auth"],
				"summary": "Current caller",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {"$ref": "#/definitions/response.Envelope"}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {"$ref": "#/definitions/response.Envelope"}
					}
				}
			}
		},
		"/print-links": {
			"get": {
				"security": [{"BearerAuth": []}],
				"produces": ["application/json"],
				"tags": ["Links"],
				"summary": "Resolve print link",
				"parameters": [
					{
						"type": "string",
						"description": "internal path",
						"name": "path",
						"in": "query",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {"$ref": "#/definitions/response.Envelope"}
					}
				}
			}
		},
		"/session/ws": {
			"get": {
				"security": [{"BearerAuth": []}],
				"tags": ["Session"],
				"summary": "Cross-tab session sync",
				"responses": {
					"101": {
						"description": "Switching Protocols"
					},
					"401": {
						"description": "Unauthorized",
						"schema": {"$ref": "#/definitions/response.Envelope"}
					}
				}
			}
		}
	},
	"definitions": {
		"response.Envelope": {
			"type": "object",
			"properties": {
				"success": {
					"type": "boolean"
				},
				"data": {},
				"message": {
					"type": "string"
				},
				"error": {
					"type": "string"
				},
				"statusCode": {
					"type": "integer"
				}
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
	Host:             "",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "Business master-data API",
	Description:      "CRUD for charges, taxes, units, freight, locations, cost codes, projects, item types and purchasing text.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
