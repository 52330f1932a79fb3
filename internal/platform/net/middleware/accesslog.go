package middleware

import (
	"net/http"
	"time"

	"reduce/internal/platform/logger"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// AccessLogOptions tunes AccessLog, Slow of 0 never warns
type AccessLogOptions struct {
	Slow time.Duration
}

// AccessLog writes one line per request through the request logger
func AccessLog(opt AccessLogOptions) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			elapsed := time.Since(start)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			log := logger.C(r.Context())
			evt := log.Info()
			switch {
			case status >= http.StatusInternalServerError:
				evt = log.Error()
			case opt.Slow > 0 && elapsed >= opt.Slow:
				evt = log.Warn().Bool("slow", true)
			}
			evt.Str("method", r.Method).
				Str("path", r.URL.Path).
				Bool("htmx", r.Header.Get("HX-Request") == "true").
				Int("status", status).
				Int("bytes", ww.BytesWritten()).
				Dur("elapsed", elapsed).
				Msg("request")
		})
	}
}
