// Package httpkit is what service modules use to reach the platform http layer
package httpkit

import (
	"html/template"
	"net/http"

	phttp "reduce/internal/platform/net/http"
)

type (
	// Envelope is the JSON answer every api route writes
	Envelope = phttp.Envelope

	// Response picks status, headers and body for one JSON answer
	Response = phttp.Response

	Handler = phttp.Handler
	Router  = phttp.Router

	// View names a template and its data
	View = phttp.View
)

func OK(data any) Response      { return phttp.OK(data) }
func Created(data any) Response { return phttp.Created(data) }
func NoContent() Response       { return phttp.NoContent() }
func Error(err error) Response  { return phttp.Error(err) }

// Handle adapts a Response-returning func
func Handle(fn func(*http.Request) Response) Handler { return phttp.Handle(fn) }

// HTML renders the View fn returns from t, errors render the error template
func HTML(t *template.Template, fn func(*http.Request) (View, error)) Handler {
	return phttp.HandleHTML(t, fn)
}
