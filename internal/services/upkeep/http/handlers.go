// Package http provides the htmx and JSON transports for upkeep
package http

import (
	stdhttp "net/http"
	"strconv"
	"time"

	"reduce/internal/modkit/httpkit"
	perr "reduce/internal/platform/errors"
	"reduce/internal/platform/net/http/bind"
	"reduce/internal/services/upkeep/domain"
	"reduce/internal/services/upkeep/service"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// Options configures the transports
type Options struct {
	// Base is the public path the HTML routes are mounted under
	Base string
	// Now is the clock used for today
	Now func() time.Time
}

func (o Options) withDefaults() Options {
	if o.Base == "" {
		o.Base = "/upkeep"
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
	r.Post("/", httpkit.HTML(views, h.add))
	r.Post("/{id}/complete", httpkit.HTML(views, h.complete))
	r.Delete("/{id}", httpkit.HTML(views, h.remove))
}

func (h *handlers) today() time.Time { return service.Date(h.opt.Now()) }

func (h *handlers) list(r *stdhttp.Request, name string, hdr stdhttp.Header) (httpkit.View, error) {
	l, err := h.svc.List(r.Context(), h.today())
	if err != nil {
		return httpkit.View{}, err
	}
	return httpkit.View{Name: name, Data: newListView(h.opt.Base, l), Header: hdr}, nil
}

func (h *handlers) index(r *stdhttp.Request) (httpkit.View, error) {
	return h.list(r, "page", nil)
}

func (h *handlers) add(r *stdhttp.Request) (httpkit.View, error) {
	values, err := bind.ParseForm(r)
	if err != nil {
		return httpkit.View{}, err
	}
	in := domain.AddInput{Description: values["description"], Due: values["due"]}
	if raw := values["cooldown_days"]; raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return httpkit.View{}, perr.WithField(
				perr.Newf(perr.ErrorCodeValidation, "cooldown must be a whole number of days"), "cooldown_days")
		}
		in.CooldownDays = n
	}
	if err := bind.Validate(in); err != nil {
		return httpkit.View{}, err
	}
	if _, err := h.svc.Add(r.Context(), newItem(in), h.today()); err != nil {
		return httpkit.View{}, err
	}
	return h.list(r, "list", stdhttp.Header{"HX-Trigger": {"upkeep-changed"}})
}

func (h *handlers) complete(r *stdhttp.Request) (httpkit.View, error) {
	id, err := itemID(r)
	if err != nil {
		return httpkit.View{}, err
	}
	if _, err := h.svc.Complete(r.Context(), id, h.today()); err != nil {
		return httpkit.View{}, err
	}
	return h.list(r, "list", stdhttp.Header{"HX-Trigger": {"upkeep-changed"}})
}

func (h *handlers) remove(r *stdhttp.Request) (httpkit.View, error) {
	id, err := itemID(r)
	if err != nil {
		return httpkit.View{}, err
	}
	if err := h.svc.Delete(r.Context(), id); err != nil {
		return httpkit.View{}, err
	}
	return h.list(r, "list", stdhttp.Header{"HX-Trigger": {"upkeep-changed"}})
}

// itemID reads the {id} url param
func itemID(r *stdhttp.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return uuid.Nil, perr.WithField(perr.Newf(perr.ErrorCodeValidation, "invalid item id"), "id")
	}
	return id, nil
}

// newItem maps a validated input, an empty due date stays zero
func newItem(in domain.AddInput) domain.NewItem {
	out := domain.NewItem{Description: in.Description, CooldownDays: in.CooldownDays}
	if d, err := time.Parse(time.DateOnly, in.Due); err == nil {
		out.Due = d
	}
	return out
}
