package http

import (
	stdhttp "net/http"

	"reduce/internal/modkit/httpkit"
	"reduce/internal/services/upkeep/domain"
)

// RegisterAPI mounts the JSON routes on r
func RegisterAPI(r httpkit.Router, s domain.ServicePort, opt Options) {
	h := &handlers{svc: s, opt: opt.withDefaults()}

	httpkit.Get(r, "/", h.apiList)
	httpkit.PostJSON[domain.AddInput](r, "/", h.apiAdd)
	httpkit.Post(r, "/{id}/complete", h.apiComplete)
	httpkit.Delete(r, "/{id}", h.apiDelete)
}

// swagger:route GET /upkeep Upkeep upkeepList
// @Summary Due and upcoming items
// @Tags Upkeep
// @Produce json
// @Success 200 {object} httpkit.Envelope{data=domain.List}
// @Router /upkeep [get]
func (h *handlers) apiList(r *stdhttp.Request) (any, error) {
	return h.svc.List(r.Context(), h.today())
}

// swagger:route POST /upkeep Upkeep upkeepAdd
// @Summary Add a recurring item
// @Tags Upkeep
// @Accept json
// @Produce json
// @Param body body domain.AddInput true "item, due defaults to today"
// @Success 201 {object} httpkit.Envelope{data=domain.Item}
// @Router /upkeep [post]
func (h *handlers) apiAdd(r *stdhttp.Request, in domain.AddInput) (any, error) {
	it, err := h.svc.Add(r.Context(), newItem(in), h.today())
	if err != nil {
		return nil, err
	}
	return httpkit.Created(it), nil
}

// swagger:route POST /upkeep/{id}/complete Upkeep upkeepComplete
// @Summary Mark an item done today and reschedule it
// @Tags Upkeep
// @Produce json
// @Param id path string true "item id" format(uuid)
// @Success 200 {object} httpkit.Envelope{data=domain.Item}
// @Failure 404 {object} httpkit.Envelope
// @Router /upkeep/{id}/complete [post]
func (h *handlers) apiComplete(r *stdhttp.Request) (any, error) {
	id, err := itemID(r)
	if err != nil {
		return nil, err
	}
	return h.svc.Complete(r.Context(), id, h.today())
}

// swagger:route DELETE /upkeep/{id} Upkeep upkeepDelete
// @Summary Remove an item
// @Tags Upkeep
// @Param id path string true "item id" format(uuid)
// @Success 204
// @Failure 404 {object} httpkit.Envelope
// @Router /upkeep/{id} [delete]
func (h *handlers) apiDelete(r *stdhttp.Request) (any, error) {
	id, err := itemID(r)
	if err != nil {
		return nil, err
	}
	if err := h.svc.Delete(r.Context(), id); err != nil {
		return nil, err
	}
	return httpkit.NoContent(), nil
}
