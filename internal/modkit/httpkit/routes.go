package httpkit

import "net/http"

// MountUnder mounts a subrouter at prefix with its own middleware
func MountUnder(r Router, prefix string, mw []func(http.Handler) http.Handler, mount func(Router)) {
	r.Route(prefix, func(sub Router) {
		if len(mw) > 0 {
			sub.Use(mw...)
		}
		mount(sub)
	})
}

// MountAPIV1 mounts the JSON api under /api/v1
func MountAPIV1(r Router, mw []func(http.Handler) http.Handler, mount func(Router)) {
	MountUnder(r, "/api/v1", mw, mount)
}
