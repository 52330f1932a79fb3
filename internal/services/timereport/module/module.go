// Package module mounts the time report service on the web server
package module

import (
	"reduce/internal/modkit"
	"reduce/internal/modkit/httpkit"
	"reduce/internal/platform/logger"
	"reduce/internal/platform/metrics"
	"reduce/internal/services/timereport/domain"
	trhttp "reduce/internal/services/timereport/http"
	trrepo "reduce/internal/services/timereport/repo"
	trsvc "reduce/internal/services/timereport/service"
)

// Ports is what the time report module offers callers outside http, e.g. reducectl
type Ports struct {
	Service domain.ServicePort
}

type Module struct {
	modkit.Base
	opts    Options
	svc     *trsvc.Svc
	metrics *metrics.TimeReport
}

// New builds the module at /time-reports, opts may rename or move it
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	o := FromConfig(deps.Cfg)

	var tm *metrics.TimeReport
	if deps.Metrics != nil {
		var err error
		if tm, err = metrics.NewTimeReport(deps.Metrics.Registerer()); err != nil {
			logger.Named("timereport").Warn().Err(err).Msg("time report metrics disabled")
		}
	}

	return &Module{
		Base:    modkit.Build([]modkit.Option{modkit.WithName("timereport"), modkit.WithPrefix("/time-reports")}, opts...),
		opts:    o,
		metrics: tm,
		svc: trsvc.New(deps.PG, trrepo.NewPG(), trsvc.Config{
			Unknown:          o.Unknown,
			NamesTTL:         o.NamesTTL,
			StatementTimeout: o.StatementTimeout,
		}, tm),
	}
}

func (m *Module) httpOptions() trhttp.Options {
	return trhttp.Options{
		Base:     m.Prefix(),
		FormMode: m.opts.FormMode,
		APIMode:  m.opts.APIMode,
		AddRows:  m.opts.AddRows,
		Metrics:  m.metrics,
	}
}

func (m *Module) MountRoutes(r httpkit.Router) {
	m.Mount(r, func(r httpkit.Router) { trhttp.Register(r, m.svc, m.httpOptions()) })
}

func (m *Module) MountAPI(r httpkit.Router) {
	m.Base.MountAPI(r, func(r httpkit.Router) { trhttp.RegisterAPI(r, m.svc, m.httpOptions()) })
}

func (m *Module) Title() string    { return "Time report" }
func (m *Module) Ports() Ports     { return Ports{Service: m.svc} }
func (m *Module) Options() Options { return m.opts }
