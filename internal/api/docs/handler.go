package docs

import (
	_ "embed"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

const (
	basePath     = "/docs"
	documentPath = basePath + "/swagger.yaml"
)

//go:embed swagger.yaml
var openAPIDocument []byte

func uiHandler() http.HandlerFunc {
	return httpSwagger.Handler(
		httpSwagger.URL(documentPath),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
	)
}

// serveDocument writes the OpenAPI description compiled into the binary
func serveDocument(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	w.Header().Set("Content-Length", strconv.Itoa(len(openAPIDocument)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(openAPIDocument)
}

// RegisterRoutes mounts Swagger UI and the OpenAPI document under /docs.
func RegisterRoutes(r chi.Router) {
	r.Get(basePath, func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, basePath+"/index.html", http.StatusFound)
	})

	// chi matches the static route ahead of the wildcard
	r.Get(documentPath, serveDocument)
	r.Get(basePath+"/*", uiHandler())
}
