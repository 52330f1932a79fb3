package http

import "net/http"

// Handler is the plain function form every route registers
type Handler = func(http.ResponseWriter, *http.Request)

// Router is the routing surface modules mount against
// the app only speaks GET, POST and DELETE; htmx forms cover the rest
type Router interface {
	Get(path string, h Handler)
	Post(path string, h Handler)
	Delete(path string, h Handler)

	Handle(path string, h http.Handler)
	Use(mw ...func(http.Handler) http.Handler)
	Route(prefix string, fn func(Router))

	// Mux is the handler to serve, the root mux for the top router
	Mux() http.Handler
}
