// Package middleware is the request stack the web server mounts in front of every module
package middleware

import (
	"net/http"
	"time"

	pstrings "reduce/internal/platform/strings"

	chimw "github.com/go-chi/chi/v5/middleware"
	chicors "github.com/go-chi/cors"
)

type Middleware = func(http.Handler) http.Handler

func RequestID() Middleware              { return chimw.RequestID }
func RealIP() Middleware                 { return chimw.RealIP }
func NoCache() Middleware                { return chimw.NoCache }
func StripSlashes() Middleware           { return chimw.StripSlashes }
func Timeout(d time.Duration) Middleware { return chimw.Timeout(d) }
func Throttle(limit int) Middleware      { return chimw.Throttle(limit) }
func Heartbeat(path string) Middleware   { return chimw.Heartbeat(path) }
func Compress(level int) Middleware      { return chimw.NewCompressor(level).Handler }

// CORSOptions is what the web config can set, empty lists fall back to defaults
type CORSOptions struct {
	AllowedOrigins   []string
	AllowedMethods   []string
	AllowedHeaders   []string
	ExposedHeaders   []string
	AllowCredentials bool
	MaxAge           int
}

var (
	corsMethods = []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions}
	// htmx sends these on every swap
	corsHeaders = []string{"Accept", "Content-Type", "X-Request-ID", "HX-Request", "HX-Current-URL", "HX-Target", "HX-Trigger"}
)

func CORS(o CORSOptions) Middleware {
	return chicors.Handler(chicors.Options{
		AllowedOrigins:   o.AllowedOrigins,
		AllowedMethods:   pstrings.IfEmpty(o.AllowedMethods, corsMethods),
		AllowedHeaders:   pstrings.IfEmpty(o.AllowedHeaders, corsHeaders),
		ExposedHeaders:   o.ExposedHeaders,
		AllowCredentials: o.AllowCredentials,
		MaxAge:           o.MaxAge,
	})
}
