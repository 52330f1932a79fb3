package httpkit

import (
	"net/http"

	phttp "reduce/internal/platform/net/http"
)

// PostJSON mounts a validated JSON body handler under POST
func PostJSON[T any](r Router, path string, h func(*http.Request, T) (any, error)) {
	r.Post(path, phttp.JSONHandler(h))
}

// DeleteJSON mounts a validated JSON body handler under DELETE
func DeleteJSON[T any](r Router, path string, h func(*http.Request, T) (any, error)) {
	r.Delete(path, phttp.JSONHandler(h))
}

// Get, Post and Delete mount handlers that read no body
func Get(r Router, path string, h func(*http.Request) (any, error)) { r.Get(path, phttp.Call(h)) }

func Post(r Router, path string, h func(*http.Request) (any, error)) { r.Post(path, phttp.Call(h)) }

func Delete(r Router, path string, h func(*http.Request) (any, error)) {
	r.Delete(path, phttp.Call(h))
}
