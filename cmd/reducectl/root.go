package main

import (
	"context"
	"time"

	"reduce/internal/modkit"
	"reduce/internal/platform/config"
	"reduce/internal/platform/logger"
	"reduce/internal/platform/store"
	trdomain "reduce/internal/services/timereport/domain"
	trmod "reduce/internal/services/timereport/module"
	updomain "reduce/internal/services/upkeep/domain"
	upmod "reduce/internal/services/upkeep/module"

	"github.com/spf13/cobra"
)

// app holds what subcommands share, the store is opened lazily
type app struct {
	cfg   config.Conf
	st    *store.Store
	now   func() time.Time
	open  func(ctx context.Context) (*store.Store, error)
	dbURL string
}

func newRootCmd() *cobra.Command {
	a := &app{cfg: config.New(), now: time.Now}
	a.open = a.openStore

	root := &cobra.Command{
		Use:          "reducectl",
		Short:        "Operate a reduce installation",
		Long:         "reducectl applies schema migrations and manages projects, upkeep items and time reports directly against postgres.",
		SilenceUsage: true,
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			if a.st == nil {
				return nil
			}
			return a.st.Close(cmd.Context())
		},
	}
	root.PersistentFlags().StringVar(&a.dbURL, "db", "", "postgres url, defaults to SERVICE_PGSQL_DBURL")

	root.AddCommand(
		newMigrateCmd(a),
		newProjectCmd(a),
		newUpkeepCmd(a),
		newReportCmd(a),
		newVersionCmd(),
	)
	return root
}

func (a *app) openStore(ctx context.Context) (*store.Store, error) {
	pg := a.cfg.Prefix("SERVICE_PGSQL_")
	url := a.dbURL
	if url == "" {
		url = pg.MustString("DBURL")
	}
	return store.Open(ctx, store.Config{
		PG: store.PGConfig{
			Enabled:     true,
			URL:         url,
			MaxConns:    2,
			SlowQueryMs: pg.MayInt("SLOW_MS", 500),
			LogSQL:      pg.MayBool("LOG_SQL", false),
		},
	}, store.WithLogger(*logger.Get()))
}

func (a *app) store(ctx context.Context) (*store.Store, error) {
	if a.st != nil {
		return a.st, nil
	}
	st, err := a.open(ctx)
	if err != nil {
		return nil, err
	}
	a.st = st
	return st, nil
}

// deps builds what the modules need, so the CLI reads the same CORE_* settings as the server
func (a *app) deps(ctx context.Context) (modkit.Deps, error) {
	st, err := a.store(ctx)
	if err != nil {
		return modkit.Deps{}, err
	}
	return modkit.Deps{Cfg: a.cfg, PG: st.PG}, nil
}

func (a *app) timeReports(ctx context.Context) (trdomain.ServicePort, error) {
	deps, err := a.deps(ctx)
	if err != nil {
		return nil, err
	}
	return trmod.New(deps).Ports().Service, nil
}

func (a *app) upkeep(ctx context.Context) (updomain.ServicePort, error) {
	deps, err := a.deps(ctx)
	if err != nil {
		return nil, err
	}
	return upmod.New(deps).Ports().Service, nil
}
