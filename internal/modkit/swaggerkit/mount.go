// Package swaggerkit serves the swagger UI and the OpenAPI document of the JSON api
//
// The document is generated by swag from the api handler annotations, see the
// go:generate line in cmd/reduce-web.
package swaggerkit

import (
	"net/http"

	"reduce/internal/platform/config"
	phttp "reduce/internal/platform/net/http"

	httpSwagger "github.com/swaggo/http-swagger"
)

// Mount serves the UI at /api/docs/ and the document at /api/docs/doc.json
// CORE_WEB_DOCS_TITLE_SUFFIX is appended to the document title, e.g. "(staging)"
func Mount(r phttp.Router, enabled bool) {
	if !enabled {
		return
	}
	suffix := config.New().Prefix("CORE_WEB_").MayString("DOCS_TITLE_SUFFIX", "")

	r.Get("/api/docs", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/api/docs/", http.StatusPermanentRedirect)
	})
	r.Get("/api/docs/doc.json", serveDocJSON(suffix))
	r.Handle("/api/docs/*", httpSwagger.Handler(httpSwagger.URL("/api/docs/doc.json")))
}
