package http

import (
	"bytes"
	"html/template"
	stdhttp "net/http"

	perr "reduce/internal/platform/errors"
	"reduce/internal/platform/logger"
	pnet "reduce/internal/platform/net"
)

// GenericErrorMessage is what server errors render as
const GenericErrorMessage = "Something went wrong!"

// ErrorTemplate is the template name RenderError looks up
const ErrorTemplate = "error"

// View names a template and the data it executes with
type View struct {
	Name   string
	Data   any
	Status int
	Header stdhttp.Header
}

// ErrorView is the data handed to the error template
type ErrorView struct {
	Status    int
	Message   string
	RequestID string
}

// HandleHTML adapts a View-returning handler to net/http
func HandleHTML(t *template.Template, fn func(*stdhttp.Request) (View, error)) Handler {
	return func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		v, err := fn(r)
		if err != nil {
			RenderError(w, r, t, err)
			return
		}
		Render(w, r, t, v)
	}
}

// Render executes the view into a buffer and writes it as text/html
// nothing is written to w when execution fails
func Render(w stdhttp.ResponseWriter, r *stdhttp.Request, t *template.Template, v View) {
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, v.Name, v.Data); err != nil {
		logger.C(r.Context()).Error().Err(err).Str("template", v.Name).Msg("template render failed")
		stdhttp.Error(w, GenericErrorMessage, stdhttp.StatusInternalServerError)
		return
	}
	for k, vv := range v.Header {
		for _, s := range vv {
			w.Header().Add(k, s)
		}
	}
	status := v.Status
	if status == 0 {
		status = stdhttp.StatusOK
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

// RenderError maps err to a status and renders the error template
// client errors show their message, server errors a generic one
func RenderError(w stdhttp.ResponseWriter, r *stdhttp.Request, t *template.Template, err error) {
	status := perr.HTTPStatus(err)
	msg := GenericErrorMessage
	if status < stdhttp.StatusInternalServerError {
		msg = err.Error()
	} else {
		logger.C(r.Context()).Error().Err(err).Int("status", status).Msg("request failed")
	}

	if t == nil || t.Lookup(ErrorTemplate) == nil {
		stdhttp.Error(w, msg, status)
		return
	}
	Render(w, r, t, View{
		Name:   ErrorTemplate,
		Status: status,
		Data: ErrorView{
			Status:    status,
			Message:   msg,
			RequestID: pnet.RequestID(r.Context()),
		},
	})
}
