//go:build !nodocs

package swaggerkit

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	phttp "reduce/internal/platform/net/http"
	"reduce/internal/platform/testkit"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fetchDoc(t *testing.T, r phttp.Router) (int, map[string]any) {
	t.Helper()
	rec := httptest.NewRecorder()
	r.Mux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/docs/doc.json", nil))
	if rec.Code != http.StatusOK {
		return rec.Code, nil
	}
	var spec map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &spec))
	return rec.Code, spec
}

func TestMount_ServesGeneratedDocument(t *testing.T) {
	t.Setenv("CORE_WEB_DOCS_TITLE_SUFFIX", "(test)")
	r := phttp.AdaptChi(chi.NewRouter())
	Mount(r, true)

	code, spec := fetchDoc(t, r)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "3.0.3", spec["openapi"])
	assert.Equal(t, "reduce API (test)", spec["info"].(map[string]any)["title"])
	assert.Equal(t, []any{map[string]any{"url": "/api/v1"}}, spec["servers"])

	paths := spec["paths"].(map[string]any)
	for _, p := range []string{"/time-reports", "/time-reports/picker", "/time-reports/projects", "/upkeep", "/upkeep/{id}", "/upkeep/{id}/complete"} {
		assert.Contains(t, paths, p)
	}

	submit := paths["/time-reports"].(map[string]any)["post"].(map[string]any)
	resps := submit["responses"].(map[string]any)
	for _, s := range []string{"200", "400", "404", "500"} {
		assert.Contains(t, resps, s)
	}
	body := submit["requestBody"].(map[string]any)["content"].(map[string]any)["application/json"].(map[string]any)
	assert.Equal(t, "#/components/schemas/domain.SubmitInput", body["schema"].(map[string]any)["$ref"])

	schemas := spec["components"].(map[string]any)["schemas"].(map[string]any)
	row := schemas["domain.RowInput"].(map[string]any)["properties"].(map[string]any)
	assert.Equal(t, "0915", row["start_time"].(map[string]any)["example"])
	item := schemas["domain.Item"].(map[string]any)["properties"].(map[string]any)
	assert.Equal(t, "uuid", item["id"].(map[string]any)["format"])
}

func TestMount_RedirectAndDisabled(t *testing.T) {
	r := phttp.AdaptChi(chi.NewRouter())
	Mount(r, true)
	rec := httptest.NewRecorder()
	r.Mux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/docs", nil))
	assert.Equal(t, http.StatusPermanentRedirect, rec.Code)

	off := phttp.AdaptChi(chi.NewRouter())
	Mount(off, false)
	code, _ := fetchDoc(t, off)
	assert.Equal(t, http.StatusNotFound, code)
}

func TestServeDocJSON_BadDocument(t *testing.T) {
	testkit.Swap(t, &docReader, func() string { return "{" })
	rec := httptest.NewRecorder()
	serveDocJSON("")(rec, httptest.NewRequest(http.MethodGet, "/api/docs/doc.json", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
