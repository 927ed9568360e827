package api

import (
	"bytes"
	"encoding/json"
	"html/template"
	"net/http"
	"sync"
)

const docsCacheControl = "public, max-age=300"

var (
	docsOnce sync.Once
	docsJSON []byte
	docsPage []byte
	docsErr  error
)

// RegisterDocsRoutes serves the API documentation:
//
//	GET /                  redirect to /docs
//	GET /docs              Swagger UI
//	GET /docs/openapi      OpenAPI document as JSON
//	GET /docs/openapi.yaml OpenAPI document as written
func RegisterDocsRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/docs", http.StatusMovedPermanently)
	})
	mux.HandleFunc("GET /docs", serveRendered(func() []byte { return docsPage }, "text/html; charset=utf-8"))
	mux.HandleFunc("GET /docs/openapi", serveRendered(func() []byte { return docsJSON }, "application/json"))
	mux.HandleFunc("GET /docs/openapi.yaml", func(w http.ResponseWriter, _ *http.Request) {
		writeDoc(w, "application/yaml", openapiYAML)
	})
}

// serveRendered writes a document rendered once from the parsed OpenAPI spec
func serveRendered(body func() []byte, contentType string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		if err := renderDocs(); err != nil {
			http.Error(w, "OpenAPI document unavailable", http.StatusInternalServerError)
			return
		}
		writeDoc(w, contentType, body())
	}
}

func writeDoc(w http.ResponseWriter, contentType string, body []byte) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Cache-Control", docsCacheControl)
	_, _ = w.Write(body) //nolint:errcheck // client went away
}

func renderDocs() error {
	docsOnce.Do(func() {
		doc, err := GetSwagger()
		if err != nil {
			docsErr = err
			return
		}

		if docsJSON, err = json.Marshal(doc); err != nil {
			docsErr = err
			return
		}

		var page bytes.Buffer
		err = swaggerUI.Execute(&page, struct{ Title, Version, SpecURL string }{
			Title:   doc.Info.Title,
			Version: doc.Info.Version,
			SpecURL: "/docs/openapi",
		})
		if err != nil {
			docsErr = err
			return
		}
		docsPage = page.Bytes()
	})
	return docsErr
}

var swaggerUI = template.Must(template.New("swagger-ui").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Title}} {{.Version}} - Swagger UI</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css">
  <style>body { margin: 0; padding: 0; }</style>
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-standalone-preset.js"></script>
  <script>
    window.onload = () => {
      SwaggerUIBundle({
        url: {{.SpecURL}},
        dom_id: '#swagger-ui',
        presets: [SwaggerUIBundle.presets.apis, SwaggerUIStandalonePreset],
        layout: 'StandaloneLayout',
        displayRequestDuration: true
      });
    };
  </script>
</body>
</html>`))
