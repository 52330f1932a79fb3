package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	pnet "reduce/internal/platform/net"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &m), buf.String())
	return m
}

func TestParseLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"debug":   zerolog.DebugLevel,
		" WARN ":  zerolog.WarnLevel,
		"warning": zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"trace":   zerolog.TraceLevel,
		"":        zerolog.InfoLevel,
		"loud":    zerolog.InfoLevel,
	}
	for in, want := range cases {
		assert.Equal(t, want, ParseLevel(in), in)
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("LOG_FORMAT", "JSON")
	t.Setenv("LOG_SERVICE", "")
	t.Setenv("LOG_CALLER", "yes")
	t.Setenv("LOG_SAMPLE_EVERY", "4")

	assert.Equal(t, Options{Level: "warn", Format: "json", Service: "reduce", Caller: true, SampleEvery: 4}, FromEnv())
}

func TestNew_JSONFieldsAndLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Level: "warn", Format: "json", Service: "reduce-web", Writer: &buf})

	l.Info().Msg("dropped")
	assert.Zero(t, buf.Len())

	l.Warn().Msg("kept")
	line := decode(t, &buf)
	assert.Equal(t, "reduce-web", line["service"])
	assert.Equal(t, "kept", line["message"])
	assert.Contains(t, line, "time")
}

func TestNew_ConsoleIsNotJSON(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Format: "console", Writer: &buf})
	l.Info().Str("project", "Gym").Msg("saved")
	assert.Contains(t, buf.String(), "project=Gym")
	assert.NotEqual(t, byte('{'), buf.Bytes()[0])
}

func TestC_PrefersContextLoggerAndAddsRequestID(t *testing.T) {
	var buf bytes.Buffer
	ctx := Into(context.Background(), New(Options{Format: "json", Writer: &buf}))
	ctx = pnet.WithRequest(ctx, "rid-9")

	C(ctx).Info().Msg("hello")
	assert.Equal(t, "rid-9", decode(t, &buf)["request_id"])

	buf.Reset()
	C(Into(context.Background(), New(Options{Format: "json", Writer: &buf}))).Info().Msg("no id")
	assert.NotContains(t, decode(t, &buf), "request_id")
}

func TestNamed_AndGetAreStable(t *testing.T) {
	require.Same(t, Get(), Get())
	require.NotNil(t, Named("migrate"))
}
