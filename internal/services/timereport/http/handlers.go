// Package http provides the htmx and JSON transports for time reports
package http

import (
	stdhttp "net/http"
	"net/url"
	"strconv"
	"time"

	"reduce/internal/modkit/httpkit"
	perr "reduce/internal/platform/errors"
	"reduce/internal/platform/metrics"
	"reduce/internal/platform/net/http/bind"
	"reduce/internal/services/timereport/domain"
	"reduce/internal/services/timereport/form"
)

// MaxAddRows bounds a single add/items request
const MaxAddRows = 50

// Options configures the transports
type Options struct {
	// Base is the public path the HTML routes are mounted under
	Base string
	// FormMode decodes htmx form posts
	FormMode form.Mode
	// APIMode decodes JSON submissions
	APIMode form.Mode
	// AddRows is how many blank rows the add form starts with
	AddRows int
	// Now is the clock used for the default day
	Now func() time.Time
	// Metrics counts submissions that fail to decode, nil records nothing
	Metrics *metrics.TimeReport
}

func (o Options) withDefaults() Options {
	if o.Base == "" {
		o.Base = "/time-reports"
	}
	if o.AddRows <= 0 {
		o.AddRows = 5
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	return o
}

type handlers struct {
	svc domain.ServicePort
	opt Options
}

// Register mounts the htmx routes on r
func Register(r httpkit.Router, s domain.ServicePort, opt Options) {
	h := &handlers{svc: s, opt: opt.withDefaults()}

	r.Get("/", httpkit.HTML(views, h.index))
	r.Post("/", httpkit.HTML(views, h.submit))
	r.Delete("/", httpkit.HTML(views, h.remove))
	r.Get("/picker", httpkit.HTML(views, h.picker))
	r.Get("/schedule", httpkit.HTML(views, h.schedule))
	r.Get("/add", httpkit.HTML(views, h.addRows))
	r.Get("/add/items", httpkit.HTML(views, h.addItems))
}

// dayOrToday reads ?date= and falls back to today when absent or invalid
func (h *handlers) dayOrToday(r *stdhttp.Request) time.Time {
	if d, err := form.ParseDay(r.URL.Query().Get(form.KeyDate)); err == nil {
		return d
	}
	return today(h.opt.Now)
}

func (h *handlers) index(r *stdhttp.Request) (httpkit.View, error) {
	idx, err := h.svc.Index(r.Context(), h.dayOrToday(r))
	if err != nil {
		return httpkit.View{}, err
	}
	return httpkit.View{Name: "page", Data: newPageView(h.opt.Base, idx, h.opt.AddRows)}, nil
}

func (h *handlers) schedule(r *stdhttp.Request) (httpkit.View, error) {
	idx, err := h.svc.Index(r.Context(), h.dayOrToday(r))
	if err != nil {
		return httpkit.View{}, err
	}
	return httpkit.View{Name: "schedule", Data: newPageView(h.opt.Base, idx, h.opt.AddRows)}, nil
}

func (h *handlers) picker(r *stdhttp.Request) (httpkit.View, error) {
	day := h.dayOrToday(r)
	p, err := h.svc.Picker(r.Context(), day)
	if err != nil {
		return httpkit.View{}, err
	}
	push := h.opt.Base + "?" + url.Values{form.KeyDate: {form.FormatDay(day)}}.Encode()
	return httpkit.View{
		Name:   "picker",
		Data:   newPickerView(h.opt.Base, p),
		Header: stdhttp.Header{"HX-Push-Url": {push}},
	}, nil
}

func (h *handlers) submit(r *stdhttp.Request) (httpkit.View, error) {
	values, err := bind.ParseForm(r)
	if err != nil {
		return httpkit.View{}, err
	}
	sub, err := form.DecodeSubmission(values, h.opt.FormMode)
	if err != nil {
		h.opt.Metrics.Rejected(metrics.ReasonValidation)
		return httpkit.View{}, err
	}
	res, err := h.svc.Submit(r.Context(), sub)
	if err != nil {
		return httpkit.View{}, err
	}
	return httpkit.View{
		Name:   "insert-result",
		Data:   res,
		Header: stdhttp.Header{"HX-Trigger": {"saved"}},
	}, nil
}

func (h *handlers) remove(r *stdhttp.Request) (httpkit.View, error) {
	values, err := bind.ParseForm(r)
	if err != nil {
		return httpkit.View{}, err
	}
	del, err := form.DecodeDeletion(values)
	if err != nil {
		return httpkit.View{}, err
	}
	res, err := h.svc.Delete(r.Context(), del)
	if err != nil {
		return httpkit.View{}, err
	}
	return httpkit.View{
		Name:   "delete-result",
		Data:   res,
		Header: stdhttp.Header{"HX-Trigger": {"saved"}},
	}, nil
}

func (h *handlers) addRows(_ *stdhttp.Request) (httpkit.View, error) {
	return httpkit.View{Name: "add-rows", Data: newRowsView(h.opt.Base, 0, h.opt.AddRows)}, nil
}

func (h *handlers) addItems(r *stdhttp.Request) (httpkit.View, error) {
	q := r.URL.Query()
	offset, err := intParam(q, "offset", 0, 0, 1<<15)
	if err != nil {
		return httpkit.View{}, err
	}
	add, err := intParam(q, "add", 1, 1, MaxAddRows)
	if err != nil {
		return httpkit.View{}, err
	}
	return httpkit.View{Name: "add-rows", Data: newRowsView(h.opt.Base, offset, add)}, nil
}

// intParam reads an optional bounded integer query parameter
func intParam(q url.Values, key string, def, lo, hi int) (int, error) {
	raw := q.Get(key)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < lo || n > hi {
		return 0, perr.WithField(
			perr.Newf(perr.ErrorCodeValidation, "%s must be an integer between %d and %d", key, lo, hi), key)
	}
	return n, nil
}

func itoa(n int) string { return strconv.Itoa(n) }
