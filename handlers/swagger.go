package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterSwagger registers the OpenAPI endpoints for the customer service.
// - GET /swagger/index.html  -> a small HTML page that loads the OpenAPI JSON
// - GET /swagger/doc.json    -> machine-readable OpenAPI JSON
func RegisterSwagger(rg gin.IRouter) {
	rg.GET("/swagger/index.html", func(c *gin.Context) {
		c.Header("Content-Type", "text/html; charset=utf-8")
		c.String(http.StatusOK, swaggerHTML)
	})

	rg.GET("/swagger/doc.json", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(swaggerJSON))
	})
}

const swaggerHTML = `<!doctype html>
<html>
  <head>
    <meta charset="utf-8" />
    <title>plancare customers - Swagger</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@4/swagger-ui.css" />
  </head>
  <body>
    <div id="swagger-ui"></div>
    <script src="https://unpkg.com/swagger-ui-dist@4/swagger-ui-bundle.js"></script>
    <script>
      window.ui = SwaggerUIBundle({
        url: '/swagger/doc.json',
        dom_id: '#swagger-ui',
      })
    </script>
  </body>
</html>`

const swaggerJSON = `{
  "openapi": "3.0.0",
  "info": { "title": "plancare-customers", "version": "v1.0.0" },
  "components": {
    "schemas": {
      "Plan": { "type": "object", "properties": {
        "planName": {"type":"string"}, "planCost": {"type":"number"}, "validity": {"type":"number"},
        "planStatus": {"type":"string"}, "renewalDate": {"type":"string"} } },
      "Customer": { "type": "object", "properties": {
        "id": {"type":"string"}, "name": {"type":"string"}, "dob": {"type":"string"}, "email": {"type":"string"},
        "adharNumber": {"type":"string","minLength":12,"maxLength":12}, "registrationDate": {"type":"string"},
        "mobileNumber": {"type":"string","minLength":10,"maxLength":10}, "plan": {"$ref":"#/components/schemas/Plan"} } },
      "Message": { "type": "object", "properties": { "message": {"type":"string"} } }
    }
  },
  "paths": {
    "/api/customers": {
      "get": { "summary": "List all customers",
        "responses": { "200": { "description": "all customers", "content": {"application/json": {"schema": {"type":"array","items":{"$ref":"#/components/schemas/Customer"}}}} },
                       "500": { "description": "store error", "content": {"application/json": {"schema": {"$ref":"#/components/schemas/Message"}}} } } }
    },
    "/api/customers/new": {
      "post": { "summary": "Register a customer; returns the whole collection",
        "requestBody": { "content": { "application/json": { "schema": {"type":"object","properties":{
          "name":{"type":"string"},"dob":{"type":"string"},"email":{"type":"string"},"adharNumber":{"type":"string"},
          "registrationDate":{"type":"string"},"mobileNumber":{"type":"string"},"planName":{"type":"string"},
          "planCost":{"type":"number"},"validity":{"type":"number"},"planStatus":{"type":"string"}}}}}},
        "responses": { "200": { "description": "updated collection", "content": {"application/json": {"schema": {"type":"array","items":{"$ref":"#/components/schemas/Customer"}}}} },
                       "400": { "description": "validation failed" }, "500": { "description": "store error" } } }
    },
    "/api/customers/renew/{id}": {
      "post": { "summary": "Renew a customer's plan",
        "parameters": [ {"name":"id","in":"path","required":true,"schema":{"type":"string"}} ],
        "requestBody": { "content": { "application/json": { "schema": {"type":"object","properties":{"renewalDate":{"type":"string"},"planStatus":{"type":"string"}}}}}},
        "responses": { "200": { "description": "updated customer", "content": {"application/json": {"schema": {"$ref":"#/components/schemas/Customer"}}} },
                       "404": { "description": "Customer not found" }, "500": { "description": "store error" } } }
    },
    "/api/customers/upgradeDowngrade/{id}": {
      "post": { "summary": "Upgrade or downgrade a customer's plan",
        "parameters": [ {"name":"id","in":"path","required":true,"schema":{"type":"string"}} ],
        "requestBody": { "content": { "application/json": { "schema": {"type":"object","properties":{"newPlanName":{"type":"string"},"planCost":{"type":"number"},"validity":{"type":"number"},"planStatus":{"type":"string"}}}}}},
        "responses": { "200": { "description": "updated customer", "content": {"application/json": {"schema": {"$ref":"#/components/schemas/Customer"}}} },
                       "404": { "description": "Customer not found" }, "500": { "description": "store error" } } }
    },
    "/health": { "get": { "summary": "Liveness check", "responses": { "200": { "description": "healthy" } } } },
    "/ready": { "get": { "summary": "Readiness check", "responses": { "200": { "description": "ready" }, "503": { "description": "not ready" } } } },
    "/metrics": { "get": { "summary": "Prometheus metrics", "responses": { "200": { "description": "metrics" } } } }
  }
}`
