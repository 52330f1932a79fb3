// Package web assembles the modules into one HTTP surface
//
// page routes are mounted at the root under each module's prefix and JSON
// routes under /api/v1; the root index lists the navigation built from the
// mounted modules
package web

import (
	"embed"
	"html/template"
	"net/http"

	"reduce/internal/modkit"
	"reduce/internal/modkit/httpkit"
	"reduce/internal/modkit/swaggerkit"
	"reduce/internal/platform/config"
	perr "reduce/internal/platform/errors"
	"reduce/internal/platform/logger"
	"reduce/internal/platform/metrics"
	phttp "reduce/internal/platform/net/http"
	"reduce/internal/platform/store"

	trmod "reduce/internal/services/timereport/module"
	upmod "reduce/internal/services/upkeep/module"
)

//go:embed templates/*.html
var templateFS embed.FS

var views = template.Must(template.New("web").ParseFS(templateFS, "templates/*.html"))

// Options are the web surface options
type Options struct {
	Config         config.Conf
	Store          *store.Store
	Metrics        *metrics.Registry
	Stack          httpkit.StackOptions
	EnableSwagger  bool
	EnableProfiler bool
}

// section is implemented by modules that appear in the navigation
type section interface {
	modkit.Module
	Title() string
	Prefix() string
}

// Mount wires every module onto r and returns the navigation it built
func Mount(r phttp.Router, opt Options) (Navigation, error) {
	log := logger.Named("web")

	deps := modkit.Deps{
		Cfg:     opt.Config,
		Metrics: opt.Metrics,
	}
	if opt.Store != nil {
		deps.PG = opt.Store.PG
	}

	mods := []modkit.Module{
		trmod.New(deps),
		upmod.New(deps),
	}

	var sections []Section
	for _, m := range mods {
		if s, ok := m.(section); ok {
			sections = append(sections, Section{Title: s.Title(), Path: s.Prefix()})
		}
	}
	nav, err := NewNavigation(sections...)
	if err != nil {
		return Navigation{}, err
	}

	r.Use(httpkit.CommonStack(opt.Stack)...)
	if opt.Metrics != nil {
		hm, err := metrics.NewHTTP(opt.Metrics.Registerer())
		if err != nil {
			log.Warn().Err(err).Msg("http metrics disabled")
		} else {
			r.Use(hm.Middleware)
		}
		r.Handle("/metrics", opt.Metrics.Handler())
	}

	swaggerkit.Mount(r, opt.EnableSwagger)
	phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

	if opt.Store != nil {
		r.Get("/ready", httpkit.Handle(func(req *http.Request) httpkit.Response {
			if err := opt.Store.Guard(req.Context()); err != nil {
				return httpkit.Error(perr.Wrap(err, perr.ErrorCodeUnavailable, "store not ready"))
			}
			return httpkit.OK(map[string]string{"status": "ready"})
		}))
	}

	r.Get("/", httpkit.HTML(views, func(*http.Request) (httpkit.View, error) {
		return httpkit.View{Name: "index", Data: struct{ Sections []Section }{nav.Sections()}}, nil
	}))

	for _, m := range mods {
		m.MountRoutes(r)
	}

	httpkit.MountAPIV1(r, nil, func(api httpkit.Router) {
		for _, m := range mods {
			if am, ok := m.(modkit.APIModule); ok {
				am.MountAPI(api)
			}
		}
	})

	log.Info().Int("modules", len(mods)).Int("sections", nav.Len()).Msg("web mounted")
	return nav, nil
}
