package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/anyulbade/billplz/internal/service"
)

// SetupSwagger serves an OpenAPI document generated from the tool catalog
// and a Swagger UI page that renders it.
func SetupSwagger(router *gin.Engine, tools *service.ToolService, version string) {
	doc := OpenAPIDoc(tools, version)

	router.GET("/swagger/doc.json", func(c *gin.Context) {
		c.JSON(http.StatusOK, doc)
	})
	router.GET("/swagger/index.html", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(swaggerUIHTML))
	})
}

// OpenAPIDoc describes one POST operation per tool plus the journal routes.
func OpenAPIDoc(tools *service.ToolService, version string) gin.H {
	paths := gin.H{}

	for _, t := range tools.Tools() {
		props := gin.H{}
		required := []string{}
		for _, p := range t.Params {
			schema := gin.H{"type": string(p.Type), "description": p.Description}
			if p.Type == service.ParamArray {
				schema["items"] = gin.H{"type": "object"}
			}
			props[p.Name] = schema
			if p.Required {
				required = append(required, p.Name)
			}
		}

		body := gin.H{"type": "object", "properties": props}
		if len(required) > 0 {
			body["required"] = required
		}

		paths["/api/v1/tools/"+t.Name] = gin.H{
			"post": gin.H{
				"operationId": t.Name,
				"summary":     t.Description,
				"tags":        []string{"tools"},
				"requestBody": gin.H{
					"required": len(required) > 0,
					"content":  gin.H{"application/json": gin.H{"schema": body}},
				},
				"responses": gin.H{
					"200": gin.H{"description": "Billplz response wrapped as {tool, data}"},
					"400": gin.H{"description": "Invalid input"},
					"502": gin.H{"description": "Billplz returned an error or could not be reached"},
				},
			},
		}
	}

	paths["/api/v1/tools"] = gin.H{"get": gin.H{
		"summary": "List tools", "tags": []string{"tools"},
		"responses": gin.H{"200": gin.H{"description": "Tool catalog"}},
	}}
	paths["/api/v1/journal"] = gin.H{"get": gin.H{
		"summary": "List journal entries, newest first", "tags": []string{"journal"},
		"parameters": []gin.H{
			queryParam("page", "integer"), queryParam("page_size", "integer"), queryParam("tool", "string"),
		},
		"responses": gin.H{"200": gin.H{"description": "Journal page"}, "503": gin.H{"description": "Journal disabled"}},
	}}
	paths["/api/v1/journal/stats"] = gin.H{"get": gin.H{
		"summary": "Per-tool call statistics", "tags": []string{"journal"},
		"parameters": []gin.H{
			queryParam("since", "string"), queryParam("until", "string"),
			queryParam("sort_by", "string"), queryParam("order", "string"),
		},
		"responses": gin.H{"200": gin.H{"description": "Tool stats"}, "503": gin.H{"description": "Journal disabled"}},
	}}
	paths["/api/v1/journal/{id}"] = gin.H{"get": gin.H{
		"summary": "Get one journal entry", "tags": []string{"journal"},
		"parameters": []gin.H{{"name": "id", "in": "path", "required": true, "schema": gin.H{"type": "string", "format": "uuid"}}},
		"responses": gin.H{"200": gin.H{"description": "Journal entry"}, "404": gin.H{"description": "Not found"}},
	}}

	return gin.H{
		"openapi": "3.0.3",
		"info": gin.H{
			"title":   "Billplz tool gateway",
			"version": version,
		},
		"paths": paths,
	}
}

func queryParam(name, typ string) gin.H {
	return gin.H{"name": name, "in": "query", "schema": gin.H{"type": typ}}
}

const swaggerUIHTML = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <title>Billplz Tool Gateway - API Docs</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5.11.0/swagger-ui.css">
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5.11.0/swagger-ui-bundle.js"></script>
  <script>
    SwaggerUIBundle({
      url: '/swagger/doc.json',
      dom_id: '#swagger-ui',
      presets: [SwaggerUIBundle.presets.apis, SwaggerUIBundle.SwaggerUIStandalonePreset],
      layout: "BaseLayout"
    });
  </script>
</body>
</html>`
