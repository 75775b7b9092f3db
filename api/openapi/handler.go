// Package openapi serves the API's OpenAPI 3.1 document and a Swagger UI.
package openapi

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/danielgtaylor/huma/v2"
	"github.com/labstack/echo/v4"
)

const swaggerUIHTML = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <title>carmatch API</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css">
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    SwaggerUIBundle({
      url: "/swagger/swagger.json",
      dom_id: "#swagger-ui",
      presets: [SwaggerUIBundle.presets.apis, SwaggerUIBundle.SwaggerUIStandalonePreset],
      layout: "BaseLayout",
    });
  </script>
</body>
</html>`

// Spec renders the OpenAPI document of a Huma API. The document is built
// on first use, after every operation has been registered.
type Spec struct {
	api huma.API

	jsonOnce sync.Once
	jsonDoc  []byte
	jsonErr  error

	yamlOnce sync.Once
	yamlDoc  []byte
	yamlErr  error
}

// NewSpec creates a Spec for api.
func NewSpec(api huma.API) *Spec {
	return &Spec{api: api}
}

// JSON returns the document as indented JSON.
func (s *Spec) JSON() ([]byte, error) {
	s.jsonOnce.Do(func() {
		s.jsonDoc, s.jsonErr = json.MarshalIndent(s.api.OpenAPI(), "", "  ")
	})
	return s.jsonDoc, s.jsonErr
}

// YAML returns the document as YAML.
func (s *Spec) YAML() ([]byte, error) {
	s.yamlOnce.Do(func() {
		s.yamlDoc, s.yamlErr = s.api.OpenAPI().YAML()
	})
	return s.yamlDoc, s.yamlErr
}

// RegisterRoutes adds Swagger UI and spec endpoints to the Echo instance.
func RegisterRoutes(e *echo.Echo, spec *Spec) {
	e.GET("/swagger/swagger.json", serveSpec(spec.JSON, "application/json"))
	e.GET("/swagger/swagger.yaml", serveSpec(spec.YAML, "text/yaml"))
	e.GET("/swagger/index.html", serveUI)
	e.GET("/swagger", redirectToUI)
	e.GET("/swagger/", redirectToUI)
}

func serveSpec(render func() ([]byte, error), contentType string) echo.HandlerFunc {
	return func(c echo.Context) error {
		data, err := render()
		if err != nil {
			return c.String(http.StatusInternalServerError, "rendering spec failed")
		}
		return c.Blob(http.StatusOK, contentType, data)
	}
}

func serveUI(c echo.Context) error {
	return c.HTML(http.StatusOK, swaggerUIHTML)
}

func redirectToUI(c echo.Context) error {
	return c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
}
