// Package modkit is how a service plugs into the web server
//
// A module has a page surface mounted at its prefix and, when it implements
// APIModule, a JSON surface mounted at the same prefix under /api/v1.
package modkit

import (
	"net/http"

	"reduce/internal/modkit/httpkit"
	"reduce/internal/modkit/repokit"
	"reduce/internal/platform/config"
	"reduce/internal/platform/metrics"
	str "reduce/internal/platform/strings"
)

type Module interface {
	Name() string
	MountRoutes(r httpkit.Router)
}

type APIModule interface {
	Module
	MountAPI(r httpkit.Router)
}

// Deps is what the web server hands every module
type Deps struct {
	Cfg config.Conf
	PG  repokit.TxRunner
	// nil when metrics are off
	Metrics *metrics.Registry
}

type Option func(*Base)

func WithName(name string) Option { return func(b *Base) { b.name = name } }

func WithPrefix(prefix string) Option { return func(b *Base) { b.prefix = prefix } }

// WithMiddlewares runs mw in front of the module's page routes only
func WithMiddlewares(mw ...func(http.Handler) http.Handler) Option {
	return func(b *Base) { b.mw = append(b.mw, mw...) }
}

// WithRoutes adds routes next to the module's own page routes
func WithRoutes(fn func(httpkit.Router)) Option {
	return func(b *Base) { b.extra = append(b.extra, fn) }
}

// Base carries what every module shares, modules embed it
type Base struct {
	name   string
	prefix string
	mw     []func(http.Handler) http.Handler
	extra  []func(httpkit.Router)
}

// Build applies defaults first, then opts
func Build(defaults []Option, opts ...Option) Base {
	var b Base
	for _, o := range defaults {
		o(&b)
	}
	for _, o := range opts {
		o(&b)
	}
	return b
}

func (b Base) Name() string { return str.MustString(b.name, "module name") }

// Prefix is the normalized mount path, e.g. /upkeep
func (b Base) Prefix() string { return str.MustPrefix(b.prefix) }

// Mount serves routes and any WithRoutes additions under Prefix
func (b Base) Mount(r httpkit.Router, routes func(httpkit.Router)) {
	httpkit.MountUnder(r, b.Prefix(), b.mw, func(sub httpkit.Router) {
		routes(sub)
		for _, fn := range b.extra {
			fn(sub)
		}
	})
}

// MountAPI serves routes under Prefix of the api router
func (b Base) MountAPI(r httpkit.Router, routes func(httpkit.Router)) {
	httpkit.MountUnder(r, b.Prefix(), nil, routes)
}
