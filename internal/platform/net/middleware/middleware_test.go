package middleware_test

import (
	"bytes"
	"compress/flate"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"reduce/internal/platform/logger"
	phttp "reduce/internal/platform/net/http"
	"reduce/internal/platform/net/middleware"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecover_PanicBecomesEnvelope(t *testing.T) {
	h := middleware.RequestID()(middleware.Recover(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("nil project")
	})))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/time-reports", nil)
	req.Header.Set("X-Request-Id", "rid-7")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "rid-7", rec.Header().Get("X-Request-ID"))

	var env phttp.Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.Equal(t, phttp.GenericErrorMessage, env.Error)
	assert.Equal(t, "rid-7", env.RequestID)
	assert.NotContains(t, rec.Body.String(), "nil project")
}

func TestRecover_AbortHandlerIsReraised(t *testing.T) {
	h := middleware.Recover(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic(http.ErrAbortHandler)
	}))
	assert.PanicsWithValue(t, http.ErrAbortHandler, func() {
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	})
}

func TestAccessLog_Levels(t *testing.T) {
	cases := []struct {
		name   string
		status int
		slow   time.Duration
		level  string
	}{
		{"ok", http.StatusCreated, 0, "info"},
		{"slow", http.StatusOK, time.Nanosecond, "warn"},
		{"server error", http.StatusBadGateway, 0, "error"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			ctx := logger.Into(context.Background(), logger.New(logger.Options{Format: "json", Writer: &buf}))

			h := middleware.AccessLog(middleware.AccessLogOptions{Slow: tc.slow})(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				time.Sleep(10 * time.Microsecond)
				w.WriteHeader(tc.status)
				_, _ = io.WriteString(w, "hello")
			}))
			req := httptest.NewRequest(http.MethodGet, "/upkeep", nil).WithContext(ctx)
			req.Header.Set("HX-Request", "true")
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			require.Equal(t, tc.status, rec.Code)
			var line map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &line), buf.String())
			assert.Equal(t, tc.level, line["level"])
			assert.Equal(t, float64(tc.status), line["status"])
			assert.Equal(t, float64(5), line["bytes"])
			assert.Equal(t, true, line["htmx"])
			assert.Equal(t, "/upkeep", line["path"])
		})
	}
}

func TestCompress_GzipWhenAccepted(t *testing.T) {
	h := middleware.Compress(flate.BestSpeed)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = io.WriteString(w, strings.Repeat("<tr></tr>", 1000))
	}))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))
}

func TestCORS_DefaultsAllowHtmxHeaders(t *testing.T) {
	h := middleware.CORS(middleware.CORSOptions{AllowedOrigins: []string{"https://reduce.example"}})(http.NotFoundHandler())

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/upkeep", nil)
	req.Header.Set("Origin", "https://reduce.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodDelete)
	req.Header.Set("Access-Control-Request-Headers", "HX-Request")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, "https://reduce.example", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), http.MethodDelete)
	assert.NotEmpty(t, rec.Header().Get("Access-Control-Allow-Headers"))
}

func TestThrottle_RejectsOverLimit(t *testing.T) {
	release, entered := make(chan struct{}), make(chan struct{})
	h := middleware.Throttle(1)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		close(entered)
		<-release
	}))

	done := make(chan struct{})
	go func() {
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
		close(done)
	}()
	<-entered

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	close(release)
	<-done
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}
