// @title         reduce API
// @version       0.1.0
// @description   Time reports and upkeep items. Every answer is wrapped in the status envelope.

// Command reduce-web serves the time report and upkeep pages and the JSON api
package main

//go:generate swag init --v3.1 -g main.go -d ./,../../internal/services/timereport/http,../../internal/services/upkeep/http,../../internal/modkit/httpkit,../../internal/platform/net/http --parseInternal --outputTypes go -o ../../internal/services/web/docs

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"reduce/internal/core/version"
	"reduce/internal/modkit/httpkit"
	"reduce/internal/modkit/repokit"
	"reduce/internal/platform/config"
	"reduce/internal/platform/logger"
	"reduce/internal/platform/metrics"
	phttp "reduce/internal/platform/net/http"
	"reduce/internal/platform/net/middleware"
	"reduce/internal/platform/store"

	"reduce/internal/services/web"
)

func main() {
	// service-scoped config for HTTP etc (CORE_WEB_*)
	root := config.New()
	webCfg := root.Prefix("CORE_WEB_")
	pgCfg := root.Prefix("SERVICE_PGSQL_")

	l := logger.Get()
	bi := version.Info("reduce-web")
	l.Info().Str("version", bi.Version).Str("commit", bi.Commit).Str("date", bi.Date).Msg("starting")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	st, err := store.Open(
		ctx,
		store.Config{
			AppName: bi.Service,
			PG: store.PGConfig{
				Enabled:     true,
				URL:         pgCfg.MustString("DBURL"),
				MaxConns:    int32(pgCfg.MayInt("MAX_CONNS", 4)),
				SlowQueryMs: pgCfg.MayInt("SLOW_MS", 500),
				LogSQL:      pgCfg.MayBool("LOG_SQL", false),
			},
		},
		store.WithLogger(*logger.Get()),
	)
	if err != nil {
		l.Panic().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()
	repokit.MustGuard(ctx, st)

	// CORE_WEB_ADDR, CORE_WEB_READ_HEADER_TIMEOUT, CORE_WEB_SHUTDOWN_TIMEOUT
	srv := phttp.NewServer(webCfg)

	if _, err := web.Mount(srv.Router(), web.Options{
		Config:  root,
		Store:   st,
		Metrics: metrics.New(),
		Stack: httpkit.StackOptions{
			CORS:        middleware.CORSOptions{AllowedOrigins: webCfg.MayCSV("CORS_ORIGINS", nil)},
			Timeout:     webCfg.MayDuration("TIMEOUT", 30*time.Second),
			SlowRequest: webCfg.MayDuration("SLOW_REQUEST", time.Second),
			MaxInFlight: webCfg.MayInt("MAX_IN_FLIGHT", 0),
		},
		EnableSwagger:  webCfg.MayBool("SWAGGER", true),
		EnableProfiler: webCfg.MayBool("PROFILER", false),
	}); err != nil {
		l.Panic().Err(err).Msg("web.Mount failed")
	}

	// returns after SIGINT or SIGTERM once in-flight requests drain
	if err := srv.Run(ctx); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
