package swaggerkit

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
)

// envelopeRef is the schema every api answer is wrapped in
const envelopeRef = "#/components/schemas/http.Envelope"

// serveDocJSON serves the generated document with servers, the envelope
// schema and default 400/500 answers filled in
func serveDocJSON(titleSuffix string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		var spec map[string]any
		if err := json.Unmarshal([]byte(docReader()), &spec); err != nil {
			http.Error(w, "spec parse error", http.StatusInternalServerError)
			return
		}
		finish(spec, titleSuffix)

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		_ = json.NewEncoder(w).Encode(spec)
	}
}

func finish(spec map[string]any, titleSuffix string) {
	ensureServers(spec, "/api/v1")
	if titleSuffix != "" {
		if info, ok := spec["info"].(map[string]any); ok {
			if title, ok := info["title"].(string); ok {
				info["title"] = title + " " + titleSuffix
			}
		}
	}
	ensureEnvelope(spec)
	addDefault(spec, http.StatusBadRequest, map[string]any{
		"status_code": 400,
		"status":      "Bad Request",
		"code":        8,
		"error":       "invalid time report: row 0 start-time: hour must be 0-23",
		"field":       "0--start-time",
		"request_id":  "579f33bf50b1/abc-000001",
	})
	addDefault(spec, http.StatusInternalServerError, map[string]any{
		"status_code": 500,
		"status":      "Internal Server Error",
		"code":        1,
		"error":       "Something went wrong!",
		"request_id":  "579f33bf50b1/abc-000001",
	})
}

// ensureServers lifts swagger 2 and 3.1 documents to 3.0.3, the newest the
// bundled ui renders, and adds a servers entry when none is set
func ensureServers(spec map[string]any, url string) {
	if _, ok := spec["swagger"]; ok {
		delete(spec, "swagger")
		spec["openapi"] = "3.0.3"
	}
	if v, ok := spec["openapi"].(string); !ok || strings.HasPrefix(v, "3.1") {
		spec["openapi"] = "3.0.3"
	}
	if _, ok := spec["servers"]; !ok {
		spec["servers"] = []any{map[string]any{"url": url}}
	}
}

// ensureEnvelope adds the envelope schema when the document lacks it
func ensureEnvelope(spec map[string]any) {
	comps, ok := spec["components"].(map[string]any)
	if !ok {
		comps = map[string]any{}
		spec["components"] = comps
	}
	schemas, ok := comps["schemas"].(map[string]any)
	if !ok {
		schemas = map[string]any{}
		comps["schemas"] = schemas
	}
	if _, ok := schemas["http.Envelope"]; ok {
		return
	}
	schemas["http.Envelope"] = map[string]any{
		"type": "object",
		"properties": map[string]any{
			"status_code": map[string]any{"type": "integer"},
			"status":      map[string]any{"type": "string"},
			"code":        map[string]any{"type": "integer"},
			"error":       map[string]any{"type": "string"},
			"field":       map[string]any{"type": "string"},
			"request_id":  map[string]any{"type": "string"},
			"data":        map[string]any{},
		},
	}
}

// addDefault gives every operation a status answer unless it documents one
func addDefault(spec map[string]any, status int, example map[string]any) {
	paths, ok := spec["paths"].(map[string]any)
	if !ok {
		return
	}
	key := strconv.Itoa(status)
	resp := map[string]any{
		"description": http.StatusText(status),
		"content": map[string]any{
			"application/json": map[string]any{
				"schema":  map[string]any{"$ref": envelopeRef},
				"example": example,
			},
		},
	}
	for _, p := range paths {
		node, ok := p.(map[string]any)
		if !ok {
			continue
		}
		for _, opAny := range node {
			op, ok := opAny.(map[string]any)
			if !ok {
				continue
			}
			resps, ok := op["responses"].(map[string]any)
			if !ok {
				resps = map[string]any{}
				op["responses"] = resps
			}
			if _, exists := resps[key]; !exists {
				resps[key] = resp
			}
		}
	}
}
