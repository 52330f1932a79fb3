// Package http is the web layer shared by the html pages and the JSON api
package http

import (
	"encoding/json"
	stdhttp "net/http"

	perr "reduce/internal/platform/errors"
	"reduce/internal/platform/logger"
	pnet "reduce/internal/platform/net"
)

// Envelope wraps every JSON api answer
type Envelope struct {
	StatusCode int            `json:"status_code"          example:"200"`
	Status     string         `json:"status"               example:"OK"`
	Code       perr.ErrorCode `json:"code,omitempty"       swaggertype:"integer"`
	Error      string         `json:"error,omitempty"`
	Field      string         `json:"field,omitempty"`
	RequestID  string         `json:"request_id,omitempty" example:"579f33bf50b1/abc-000001"`
	Data       any            `json:"data,omitempty"`
}

// JSON writes v with status
func JSON(w stdhttp.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Response is what return-style JSON handlers produce
// a Body that is an error selects the error envelope
type Response struct {
	Status int
	Body   any
	Header stdhttp.Header
}

// Handle adapts a Response-returning func to a Handler
func Handle(h func(r *stdhttp.Request) Response) Handler {
	return func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		h(r).write(w, r)
	}
}

func (resp Response) write(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	for k, vv := range resp.Header {
		for _, v := range vv {
			w.Header().Add(k, v)
		}
	}

	status := resp.Status
	if status == 0 {
		status = stdhttp.StatusOK
	}
	if status == stdhttp.StatusNoContent {
		w.WriteHeader(status)
		return
	}

	env := Envelope{RequestID: pnet.RequestID(r.Context())}
	if err, ok := resp.Body.(error); ok && err != nil {
		status = perr.HTTPStatus(err)
		wire := perr.WireFrom(err)
		env.Code, env.Error, env.Field = wire.Code, wire.Message, wire.Field
		if status >= stdhttp.StatusInternalServerError {
			logger.C(r.Context()).Error().Err(err).Int("status", status).Msg("request failed")
			env.Error, env.Field = GenericErrorMessage, ""
		}
	} else {
		env.Data = resp.Body
	}
	env.StatusCode, env.Status = status, stdhttp.StatusText(status)
	JSON(w, status, env)
}

// OK is a 200 with data
func OK(data any) Response { return Response{Status: stdhttp.StatusOK, Body: data} }

// Created is a 201 with data
func Created(data any) Response { return Response{Status: stdhttp.StatusCreated, Body: data} }

// NoContent is an empty 204
func NoContent() Response { return Response{Status: stdhttp.StatusNoContent} }

// Error answers with the status and envelope mapped from err
func Error(err error) Response { return Response{Body: err} }
