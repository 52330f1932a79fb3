package http

import (
	"net/http"

	"reduce/internal/platform/net/http/bind"
)

// JSONHandler binds and validates a T from the body, then calls fn
// fn may return a Response to pick the status, anything else is a 200
func JSONHandler[T any](fn func(*http.Request, T) (any, error)) Handler {
	return Handle(func(r *http.Request) Response {
		in, err := bind.ParseJSON[T](r)
		if err != nil {
			return Error(err)
		}
		return result(fn(r, in))
	})
}

// Call is JSONHandler for endpoints without a body
func Call(fn func(*http.Request) (any, error)) Handler {
	return Handle(func(r *http.Request) Response { return result(fn(r)) })
}

func result(out any, err error) Response {
	if err != nil {
		return Error(err)
	}
	if resp, ok := out.(Response); ok {
		return resp
	}
	return OK(out)
}
