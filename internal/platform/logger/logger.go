// Package logger owns the process zerolog logger
//
// Code logs through C(ctx) inside a request and Named(component) outside one.
// The root logger is built from LOG_* on first use.
package logger

import (
	"context"
	"io"
	"os"
	"runtime/debug"
	"strings"
	"sync"
	"time"

	"reduce/internal/platform/config/raw"
	pnet "reduce/internal/platform/net"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/pkgerrors"
)

type Logger = zerolog.Logger

// Options describes the root logger
type Options struct {
	Level       string
	Format      string // console or json
	Service     string
	Caller      bool
	SampleEvery int
	Writer      io.Writer
}

// FromEnv reads LOG_LEVEL, LOG_FORMAT, LOG_SERVICE, LOG_CALLER and LOG_SAMPLE_EVERY
func FromEnv() Options {
	env := raw.New().Prefix("LOG_")
	return Options{
		Level:       env.Get("LEVEL", "info"),
		Format:      strings.ToLower(env.Get("FORMAT", "console")),
		Service:     env.Get("SERVICE", "reduce"),
		Caller:      env.GetBool("CALLER", false),
		SampleEvery: env.GetInt("SAMPLE_EVERY", 0),
	}
}

// New builds a logger from opt without touching the root
func New(opt Options) Logger {
	w := opt.Writer
	if w == nil {
		w = os.Stdout
	}
	if opt.Format != "json" {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly}
	}

	lc := zerolog.New(w).Level(ParseLevel(opt.Level)).With().Timestamp()
	if opt.Service != "" {
		lc = lc.Str("service", opt.Service)
	}
	if bi, ok := debug.ReadBuildInfo(); ok {
		lc = lc.Str("go", bi.GoVersion)
	}
	if opt.Caller {
		lc = lc.Caller()
	}
	l := lc.Logger()
	if opt.SampleEvery > 1 {
		l = l.Sample(&zerolog.BasicSampler{N: uint32(opt.SampleEvery)})
	}
	return l
}

// ParseLevel accepts zerolog level names plus "warning", anything else is info
func ParseLevel(s string) zerolog.Level {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "warning" {
		return zerolog.WarnLevel
	}
	lvl, err := zerolog.ParseLevel(s)
	if err != nil || s == "" {
		return zerolog.InfoLevel
	}
	return lvl
}

var (
	rootOnce sync.Once
	root     Logger
)

// Init sets the root logger, only the first call (or first Get) wins
func Init(opt Options) {
	rootOnce.Do(func() {
		zerolog.TimeFieldFormat = time.RFC3339Nano
		zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack
		root = New(opt)
	})
}

// Get returns the root logger
func Get() *Logger {
	Init(FromEnv())
	return &root
}

type ctxKey struct{}

// Into attaches l to ctx, C prefers it over the root
func Into(ctx context.Context, l Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// C is the logger for ctx carrying the request id when there is one
func C(ctx context.Context) *Logger {
	base, ok := ctx.Value(ctxKey{}).(Logger)
	if !ok {
		base = *Get()
	}
	if id := pnet.RequestID(ctx); id != "" {
		base = base.With().Str("request_id", id).Logger()
	}
	return &base
}

// Named is the root logger tagged with component
func Named(component string) *Logger {
	l := Get().With().Str("component", component).Logger()
	return &l
}
