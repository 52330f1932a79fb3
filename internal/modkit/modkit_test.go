package modkit

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"reduce/internal/modkit/httpkit"
	phttp "reduce/internal/platform/net/http"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

func hit(r httpkit.Router, method, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	r.Mux().ServeHTTP(rec, httptest.NewRequest(method, path, nil))
	return rec
}

func teapot(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusTeapot) }

func TestBuild_OptionsOverrideDefaults(t *testing.T) {
	defaults := []Option{WithName("upkeep"), WithPrefix("/upkeep")}

	b := Build(defaults)
	assert.Equal(t, "upkeep", b.Name())
	assert.Equal(t, "/upkeep", b.Prefix())

	b = Build(defaults, WithPrefix("chores/"), WithName("chores"))
	assert.Equal(t, "chores", b.Name())
	assert.Equal(t, "/chores", b.Prefix())

	assert.Panics(t, func() { _ = Build(nil).Name() })
	assert.Panics(t, func() { _ = Build(nil).Prefix() })
}

func TestBase_MountAddsMiddlewareAndRoutes(t *testing.T) {
	mark := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Module", "upkeep")
			next.ServeHTTP(w, r)
		})
	}
	b := Build(nil, WithName("upkeep"), WithPrefix("/upkeep"), WithMiddlewares(mark),
		WithRoutes(func(r httpkit.Router) { r.Get("/extra", teapot) }))

	r := phttp.AdaptChi(chi.NewRouter())
	b.Mount(r, func(r httpkit.Router) { r.Get("/", teapot) })
	httpkit.MountAPIV1(r, nil, func(api httpkit.Router) {
		b.MountAPI(api, func(r httpkit.Router) { r.Post("/", teapot) })
	})

	rec := hit(r, http.MethodGet, "/upkeep/")
	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Equal(t, "upkeep", rec.Header().Get("X-Module"))

	assert.Equal(t, http.StatusTeapot, hit(r, http.MethodGet, "/upkeep/extra").Code)

	rec = hit(r, http.MethodPost, "/api/v1/upkeep/")
	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Empty(t, rec.Header().Get("X-Module"), "page middleware stays off the api")
}
