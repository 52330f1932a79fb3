package http

import (
	"encoding/json"
	"errors"
	stdhttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	perr "reduce/internal/platform/errors"
	pnet "reduce/internal/platform/net"
)

func serve(h Handler, method, body string) (*httptest.ResponseRecorder, Envelope) {
	req := httptest.NewRequest(method, "/", strings.NewReader(body))
	req = req.WithContext(pnet.WithRequest(req.Context(), "rid-1"))
	rec := httptest.NewRecorder()
	h(rec, req)

	var env Envelope
	_ = json.Unmarshal(rec.Body.Bytes(), &env)
	return rec, env
}

func TestHandle_SuccessEnvelope(t *testing.T) {
	rec, env := serve(Handle(func(*stdhttp.Request) Response {
		return Created(map[string]int{"inserted": 2})
	}), stdhttp.MethodPost, "")

	if rec.Code != stdhttp.StatusCreated || env.StatusCode != 201 || env.Status != "Created" {
		t.Fatalf("code=%d env=%+v", rec.Code, env)
	}
	if env.RequestID != "rid-1" || env.Error != "" {
		t.Fatalf("env = %+v", env)
	}
	if data, _ := env.Data.(map[string]any); data["inserted"] != float64(2) {
		t.Fatalf("data = %#v", env.Data)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
		t.Fatalf("content type = %q", ct)
	}
}

func TestHandle_NoContentAndHeaders(t *testing.T) {
	rec, _ := serve(Handle(func(*stdhttp.Request) Response {
		return Response{Status: stdhttp.StatusNoContent, Header: stdhttp.Header{"Hx-Trigger": {"upkeep-changed"}}}
	}), stdhttp.MethodDelete, "")

	if rec.Code != stdhttp.StatusNoContent || rec.Body.Len() != 0 {
		t.Fatalf("code=%d body=%q", rec.Code, rec.Body.String())
	}
	if rec.Header().Get("Hx-Trigger") != "upkeep-changed" {
		t.Fatal("header dropped")
	}
}

func TestHandle_ClientErrorCarriesMessageAndField(t *testing.T) {
	err := perr.WithField(perr.NotFoundf("project %q not found", "Gym"), "project")
	rec, env := serve(Handle(func(*stdhttp.Request) Response { return Error(err) }), stdhttp.MethodPost, "")

	if rec.Code != stdhttp.StatusNotFound || env.Code != perr.ErrorCodeNotFound {
		t.Fatalf("code=%d env=%+v", rec.Code, env)
	}
	if env.Error != `project "Gym" not found` || env.Field != "project" || env.Data != nil {
		t.Fatalf("env = %+v", env)
	}
}

func TestHandle_ServerErrorIsGeneric(t *testing.T) {
	err := perr.Wrap(errors.New("dial tcp 10.0.0.5:5432"), perr.ErrorCodeDB, "insert time entries")
	rec, env := serve(Handle(func(*stdhttp.Request) Response { return Error(err) }), stdhttp.MethodPost, "")

	if rec.Code != stdhttp.StatusInternalServerError || env.Code != perr.ErrorCodeDB {
		t.Fatalf("code=%d env=%+v", rec.Code, env)
	}
	if env.Error != GenericErrorMessage {
		t.Fatalf("internal detail leaked: %q", env.Error)
	}
}

type echoIn struct {
	Name string `json:"name" validate:"required"`
}

func TestJSONHandler(t *testing.T) {
	h := JSONHandler(func(_ *stdhttp.Request, in echoIn) (any, error) {
		if in.Name == "dup" {
			return nil, perr.New(perr.ErrorCodeDuplicateKey, "exists")
		}
		if in.Name == "new" {
			return Created(in), nil
		}
		return in, nil
	})

	rec, env := serve(h, stdhttp.MethodPost, `{"name":"Work"}`)
	if rec.Code != 200 || env.Data.(map[string]any)["name"] != "Work" {
		t.Fatalf("ok: %d %+v", rec.Code, env)
	}

	if rec, _ = serve(h, stdhttp.MethodPost, `{"name":"new"}`); rec.Code != 201 {
		t.Fatalf("Response passthrough: %d", rec.Code)
	}
	if rec, _ = serve(h, stdhttp.MethodPost, `{"name":"dup"}`); rec.Code != 409 {
		t.Fatalf("handler error: %d", rec.Code)
	}
	if rec, env = serve(h, stdhttp.MethodPost, `{}`); rec.Code != 400 || env.Field != "name" {
		t.Fatalf("validation: %d %+v", rec.Code, env)
	}
	if rec, env = serve(h, stdhttp.MethodPost, `{"name":`); rec.Code != 400 || env.Code != perr.ErrorCodeJSON {
		t.Fatalf("bad json: %d %+v", rec.Code, env)
	}
}

func TestCall(t *testing.T) {
	rec, env := serve(Call(func(*stdhttp.Request) (any, error) { return []string{"Home", "Work"}, nil }), stdhttp.MethodGet, "")
	if rec.Code != 200 || len(env.Data.([]any)) != 2 {
		t.Fatalf("%d %+v", rec.Code, env)
	}

	rec, _ = serve(Call(func(*stdhttp.Request) (any, error) { return nil, perr.ErrNotFound }), stdhttp.MethodGet, "")
	if rec.Code != 404 {
		t.Fatalf("error: %d", rec.Code)
	}
}
