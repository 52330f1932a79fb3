package http

import (
	stdhttp "net/http"

	mw "github.com/go-chi/chi/v5/middleware"
)

// MountProfiler serves pprof under prefix when enabled, e.g. /debug/pprof/
func MountProfiler(r Router, prefix string, enabled bool) {
	if !enabled {
		return
	}
	h := stdhttp.StripPrefix(prefix, mw.Profiler())
	r.Handle(prefix, h)
	r.Handle(prefix+"/*", h)
}
