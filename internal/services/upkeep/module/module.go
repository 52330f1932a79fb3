// Package module mounts the upkeep service on the web server
package module

import (
	"reduce/internal/modkit"
	"reduce/internal/modkit/httpkit"
	"reduce/internal/services/upkeep/domain"
	uphttp "reduce/internal/services/upkeep/http"
	uprepo "reduce/internal/services/upkeep/repo"
	upsvc "reduce/internal/services/upkeep/service"
)

// Ports is what the upkeep module offers callers outside http, e.g. reducectl
type Ports struct {
	Service domain.ServicePort
}

type Module struct {
	modkit.Base
	opts Options
	svc  *upsvc.Svc
}

// New builds the module at /upkeep, opts may rename or move it
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	o := FromConfig(deps.Cfg)
	return &Module{
		Base: modkit.Build([]modkit.Option{modkit.WithName("upkeep"), modkit.WithPrefix("/upkeep")}, opts...),
		opts: o,
		svc:  upsvc.New(deps.PG, uprepo.NewPG(), upsvc.Config{HorizonDays: o.HorizonDays}),
	}
}

func (m *Module) MountRoutes(r httpkit.Router) {
	m.Mount(r, func(r httpkit.Router) { uphttp.Register(r, m.svc, uphttp.Options{Base: m.Prefix()}) })
}

func (m *Module) MountAPI(r httpkit.Router) {
	m.Base.MountAPI(r, func(r httpkit.Router) { uphttp.RegisterAPI(r, m.svc, uphttp.Options{Base: m.Prefix()}) })
}

func (m *Module) Title() string    { return "Upkeep" }
func (m *Module) Ports() Ports     { return Ports{Service: m.svc} }
func (m *Module) Options() Options { return m.opts }
