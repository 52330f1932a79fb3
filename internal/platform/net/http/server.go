package http

import (
	"context"
	"errors"
	"net"
	stdhttp "net/http"
	"time"

	"reduce/internal/platform/config"
	"reduce/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

// Server owns the root chi mux and the listener
type Server struct {
	mux      *chi.Mux
	srv      *stdhttp.Server
	shutdown time.Duration
}

// NewServer reads ADDR, READ_HEADER_TIMEOUT and SHUTDOWN_TIMEOUT from cfg
func NewServer(cfg config.Conf) *Server {
	m := chi.NewRouter()
	return &Server{
		mux:      m,
		shutdown: cfg.MayDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
		srv: &stdhttp.Server{
			Addr:              cfg.MayString("ADDR", ":3000"),
			Handler:           m,
			ReadHeaderTimeout: cfg.MayDuration("READ_HEADER_TIMEOUT", 10*time.Second),
		},
	}
}

// Router is the Router view of the root mux
func (s *Server) Router() Router { return AdaptChi(s.mux) }

// Addr is the configured listen address
func (s *Server) Addr() string { return s.srv.Addr }

// Run listens until ctx is done, then drains in-flight requests
// for at most the shutdown timeout
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.srv.Addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve is Run on an existing listener
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	log := logger.Named("http")
	log.Info().Str("addr", ln.Addr().String()).Msg("http listening")

	errc := make(chan error, 1)
	go func() { errc <- s.srv.Serve(ln) }()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	sctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.shutdown)
	defer cancel()
	log.Info().Dur("timeout", s.shutdown).Msg("http draining")
	if err := s.srv.Shutdown(sctx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, stdhttp.ErrServerClosed) {
		return err
	}
	return nil
}
