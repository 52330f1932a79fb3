package http

import (
	stdhttp "net/http"
	"strconv"

	"reduce/internal/modkit/httpkit"
	"reduce/internal/platform/metrics"
	"reduce/internal/services/timereport/domain"
	"reduce/internal/services/timereport/form"
)

type api struct {
	svc     domain.ServicePort
	mode    form.Mode
	metrics *metrics.TimeReport
}

// RegisterAPI mounts the JSON routes on r
func RegisterAPI(r httpkit.Router, s domain.ServicePort, opt Options) {
	h := &api{svc: s, mode: opt.APIMode, metrics: opt.Metrics}

	httpkit.PostJSON[domain.SubmitInput](r, "/", h.submit)
	httpkit.DeleteJSON[domain.DeleteInput](r, "/", h.remove)
	httpkit.Get(r, "/picker", h.picker)
	httpkit.Get(r, "/projects", h.projects)
	httpkit.PostJSON[domain.ProjectInput](r, "/projects", h.createProject)
}

// swagger:route POST /time-reports TimeReports timeReportSubmit
// @Summary Save the rows and comments of a day
// @Description Rows decode with the api row policy, strict unless CORE_TIMEREPORT_ROW_POLICY says otherwise
// @Tags TimeReports
// @Accept json
// @Produce json
// @Param body body domain.SubmitInput true "day and rows"
// @Success 200 {object} httpkit.Envelope{data=domain.InsertResult}
// @Failure 404 {object} httpkit.Envelope "unknown project when CORE_TIMEREPORT_UNKNOWN_PROJECTS=reject"
// @Router /time-reports [post]
func (h *api) submit(r *stdhttp.Request, in domain.SubmitInput) (any, error) {
	sub, err := form.DecodeSubmission(submitValues(in), h.mode)
	if err != nil {
		h.metrics.Rejected(metrics.ReasonValidation)
		return nil, err
	}
	return h.svc.Submit(r.Context(), sub)
}

// swagger:route DELETE /time-reports TimeReports timeReportDelete
// @Summary Remove the entries of a day starting at the given times
// @Tags TimeReports
// @Accept json
// @Produce json
// @Param body body domain.DeleteInput true "day and start times"
// @Success 200 {object} httpkit.Envelope{data=domain.DeleteResult}
// @Router /time-reports [delete]
func (h *api) remove(r *stdhttp.Request, in domain.DeleteInput) (any, error) {
	values := map[string]string{form.KeyDate: in.Date}
	for i, s := range in.StartTimes {
		values[selectKey(i)] = s
	}
	del, err := form.DecodeDeletion(values)
	if err != nil {
		return nil, err
	}
	return h.svc.Delete(r.Context(), del)
}

// swagger:route GET /time-reports/picker TimeReports timeReportPicker
// @Summary Entries and comments of a day by project
// @Tags TimeReports
// @Produce json
// @Param date query string true "day as YYYY-MM-DD" example(2024-01-31)
// @Success 200 {object} httpkit.Envelope{data=domain.Picker}
// @Router /time-reports/picker [get]
func (h *api) picker(r *stdhttp.Request) (any, error) {
	day, err := form.ParseDay(r.URL.Query().Get(form.KeyDate))
	if err != nil {
		return nil, err
	}
	return h.svc.Picker(r.Context(), day)
}

// swagger:route GET /time-reports/projects TimeReports timeReportProjects
// @Summary Project names in name order
// @Tags TimeReports
// @Produce json
// @Success 200 {object} httpkit.Envelope{data=[]string}
// @Router /time-reports/projects [get]
func (h *api) projects(r *stdhttp.Request) (any, error) {
	names, err := h.svc.ProjectNames(r.Context())
	if err != nil {
		return nil, err
	}
	if names == nil {
		names = []string{}
	}
	return names, nil
}

// swagger:route POST /time-reports/projects TimeReports timeReportCreateProject
// @Summary Create a project
// @Tags TimeReports
// @Accept json
// @Produce json
// @Param body body domain.ProjectInput true "project name"
// @Success 201 {object} httpkit.Envelope{data=domain.Project}
// @Failure 409 {object} httpkit.Envelope "name already taken"
// @Router /time-reports/projects [post]
func (h *api) createProject(r *stdhttp.Request, in domain.ProjectInput) (any, error) {
	p, err := h.svc.CreateProject(r.Context(), in.Name)
	if err != nil {
		return nil, err
	}
	return httpkit.Created(p), nil
}

// submitValues flattens JSON rows into the indexed form keys
func submitValues(in domain.SubmitInput) map[string]string {
	values := map[string]string{form.KeyDate: in.Date}
	for i, row := range in.Rows {
		p := strconv.Itoa(i) + form.Sep
		values[p+form.FieldProject] = row.Project
		values[p+form.FieldStart] = row.StartTime
		values[p+form.FieldEnd] = row.EndTime
		values[p+form.FieldComment] = row.Comment
	}
	return values
}
