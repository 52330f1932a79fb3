package http

import (
	"context"
	"encoding/json"
	stdhttp "net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"reduce/internal/core/clock"
	perr "reduce/internal/platform/errors"
	"reduce/internal/platform/metrics"
	phttp "reduce/internal/platform/net/http"
	"reduce/internal/services/timereport/domain"
	"reduce/internal/services/timereport/form"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSvc struct {
	submitted []form.Submission
	deleted   []form.Deletion
	days      []time.Time
	submitErr error
	names     []string
}

func (f *fakeSvc) Submit(_ context.Context, in form.Submission) (domain.InsertResult, error) {
	f.submitted = append(f.submitted, in)
	if f.submitErr != nil {
		return domain.InsertResult{}, f.submitErr
	}
	return domain.InsertResult{Day: in.Day, Inserted: len(in.Rows)}, nil
}

func (f *fakeSvc) Delete(_ context.Context, in form.Deletion) (domain.DeleteResult, error) {
	f.deleted = append(f.deleted, in)
	return domain.DeleteResult{Day: in.Day, Deleted: len(in.Starts)}, nil
}

func (f *fakeSvc) Picker(_ context.Context, day time.Time) (domain.Picker, error) {
	f.days = append(f.days, day)
	end := clock.MustNew(10, 0)
	return domain.Picker{Day: day, Projects: []domain.PickerProject{{
		Name:    "Work",
		Entries: []domain.Entry{{Project: "Work", Start: clock.MustNew(9, 15), End: &end}},
		Comment: "standup",
	}}}, nil
}

func (f *fakeSvc) Index(ctx context.Context, day time.Time) (domain.Index, error) {
	p, _ := f.Picker(ctx, day)
	return domain.Index{Day: day, Projects: f.names, Picker: p}, nil
}

func (f *fakeSvc) ProjectNames(context.Context) ([]string, error) { return f.names, nil }

func (f *fakeSvc) CreateProject(_ context.Context, name string) (domain.Project, error) {
	return domain.Project{ID: 7, Name: name}, nil
}

var fixedNow = func() time.Time { return time.Date(2024, 5, 6, 15, 4, 5, 0, time.UTC) }

func newRouter(svc *fakeSvc) stdhttp.Handler { return newMeteredRouter(svc, nil) }

func newMeteredRouter(svc *fakeSvc, tm *metrics.TimeReport) stdhttp.Handler {
	m := chi.NewRouter()
	r := phttp.AdaptChi(m)
	opt := Options{Now: fixedNow, FormMode: form.Lenient, APIMode: form.Strict, AddRows: 3, Metrics: tm}
	r.Route("/time-reports", func(rr phttp.Router) { Register(rr, svc, opt) })
	r.Route("/api/v1/time-reports", func(rr phttp.Router) { RegisterAPI(rr, svc, opt) })
	return m
}

func do(h stdhttp.Handler, method, target string, form url.Values) *httptest.ResponseRecorder {
	var body *strings.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	} else {
		body = strings.NewReader("")
	}
	req := httptest.NewRequest(method, target, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func doJSON(h stdhttp.Handler, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestSubmit_LenientFormPost(t *testing.T) {
	svc := &fakeSvc{}
	rec := do(newRouter(svc), stdhttp.MethodPost, "/time-reports", url.Values{
		"date":          {"2024-01-01"},
		"0--project":    {"Work"},
		"0--start-time": {"0915"},
		"1--project":    {"Half"},
		"3--project":    {"Late"},
		"3--start-time": {"1200"},
	})

	require.Equal(t, stdhttp.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), "Saved 2 entries for 2024-01-01")
	assert.Equal(t, "saved", rec.Header().Get("HX-Trigger"))
	require.Len(t, svc.submitted, 1)
	assert.Equal(t, "Work", svc.submitted[0].Rows[0].Project)
	assert.Equal(t, "Late", svc.submitted[0].Rows[1].Project)
}

func TestSubmit_BadTimeIsClientError(t *testing.T) {
	svc := &fakeSvc{}
	tm, err := metrics.NewTimeReport(metrics.New().Registerer())
	require.NoError(t, err)
	h := newMeteredRouter(svc, tm)

	rec := do(h, stdhttp.MethodPost, "/time-reports", url.Values{
		"date":          {"2024-01-01"},
		"0--project":    {"Work"},
		"0--start-time": {"9960"},
	})

	assert.Equal(t, stdhttp.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "row 0 start-time")
	assert.Empty(t, svc.submitted)
	assert.Equal(t, 1.0, testutil.ToFloat64(tm.RejectedCounter(metrics.ReasonValidation)))

	rec = doJSON(h, stdhttp.MethodPost, "/api/v1/time-reports", `{"date": "2024-01-01", "rows": [{"project":"W","start_time":"99:99"}]}`)
	assert.Equal(t, stdhttp.StatusBadRequest, rec.Code)
	assert.Equal(t, 2.0, testutil.ToFloat64(tm.RejectedCounter(metrics.ReasonValidation)))
}

func TestSubmit_ServerErrorIsGeneric(t *testing.T) {
	svc := &fakeSvc{submitErr: perr.DBf("pool exhausted")}
	rec := do(newRouter(svc), stdhttp.MethodPost, "/time-reports", url.Values{
		"date":          {"2024-01-01"},
		"0--project":    {"Work"},
		"0--start-time": {"0915"},
	})

	assert.Equal(t, stdhttp.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), phttp.GenericErrorMessage)
	assert.NotContains(t, rec.Body.String(), "pool exhausted")
}

func TestDelete_FormSelections(t *testing.T) {
	svc := &fakeSvc{}
	rec := do(newRouter(svc), stdhttp.MethodDelete, "/time-reports", url.Values{
		"date":           {"2024-01-01"},
		"0--select-item": {"09:15:00"},
		"1--select-item": {"10:30:00"},
	})

	require.Equal(t, stdhttp.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), "Removed 2 entries")
	require.Len(t, svc.deleted, 1)
	assert.Equal(t, []clock.Time{clock.MustNew(9, 15), clock.MustNew(10, 30)}, svc.deleted[0].Starts)
}

func TestPicker_PushesURL(t *testing.T) {
	svc := &fakeSvc{}
	rec := do(newRouter(svc), stdhttp.MethodGet, "/time-reports/picker?date=2024-01-01", nil)

	require.Equal(t, stdhttp.StatusOK, rec.Code)
	assert.Equal(t, "/time-reports?date=2024-01-01", rec.Header().Get("HX-Push-Url"))
	body := rec.Body.String()
	assert.Contains(t, body, `name="0--select-item"`)
	assert.Contains(t, body, `value="09:15:00"`)
	assert.Contains(t, body, "09:15 - 10:00")
	assert.Contains(t, body, "standup")
}

func TestIndex_BadDateFallsBackToToday(t *testing.T) {
	svc := &fakeSvc{names: []string{"Home", "Work"}}
	rec := do(newRouter(svc), stdhttp.MethodGet, "/time-reports?date=yesterday", nil)

	require.Equal(t, stdhttp.StatusOK, rec.Code)
	require.Len(t, svc.days, 1)
	assert.Equal(t, time.Date(2024, 5, 6, 0, 0, 0, 0, time.UTC), svc.days[0])
	body := rec.Body.String()
	assert.Contains(t, body, `value="2024-05-06"`)
	assert.Contains(t, body, `<option value="Home">`)
	assert.Contains(t, body, `name="2--comment"`)
	assert.NotContains(t, body, `name="3--comment"`)
	assert.Contains(t, body, "htmx:beforeSwap")
}

func TestAddItems(t *testing.T) {
	h := newRouter(&fakeSvc{})

	rec := do(h, stdhttp.MethodGet, "/time-reports/add/items?offset=5&add=2", nil)
	require.Equal(t, stdhttp.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `name="5--project"`)
	assert.Contains(t, rec.Body.String(), `name="6--project"`)
	assert.NotContains(t, rec.Body.String(), `name="7--project"`)

	rec = do(h, stdhttp.MethodGet, "/time-reports/add/items?offset=0&add=51", nil)
	assert.Equal(t, stdhttp.StatusBadRequest, rec.Code)

	rec = do(h, stdhttp.MethodGet, "/time-reports/add", nil)
	require.Equal(t, stdhttp.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `name="2--start-time"`)
}

func TestAPI_SubmitStrict(t *testing.T) {
	svc := &fakeSvc{}
	h := newRouter(svc)

	rec := doJSON(h, stdhttp.MethodPost, "/api/v1/time-reports", `{
		"date": "2024-01-01",
		"rows": [
			{"project": "Work", "start_time": "0915", "end_time": "10:30", "comment": "review"},
			{"project": "Home", "start_time": "930"}
		]
	}`)
	require.Equal(t, stdhttp.StatusOK, rec.Code, rec.Body.String())

	var env struct {
		Data domain.InsertResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.Equal(t, 2, env.Data.Inserted)
	require.Len(t, svc.submitted, 1)
	require.NotNil(t, svc.submitted[0].Rows[0].End)
	assert.Equal(t, clock.MustNew(10, 30), *svc.submitted[0].Rows[0].End)
}

func TestAPI_SubmitValidation(t *testing.T) {
	h := newRouter(&fakeSvc{})

	rec := doJSON(h, stdhttp.MethodPost, "/api/v1/time-reports", `{"date": "2024-01-01", "rows": []}`)
	assert.Equal(t, stdhttp.StatusBadRequest, rec.Code)

	rec = doJSON(h, stdhttp.MethodPost, "/api/v1/time-reports", `{"date": "01/01/2024", "rows": [{"project":"W","start_time":"0900"}]}`)
	assert.Equal(t, stdhttp.StatusBadRequest, rec.Code)

	rec = doJSON(h, stdhttp.MethodPost, "/api/v1/time-reports", `{"date": "2024-01-01", "rows": [{"project":"W","start_time":"99:99"}]}`)
	assert.Equal(t, stdhttp.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid time report")
}

func TestAPI_DeleteAndPicker(t *testing.T) {
	svc := &fakeSvc{}
	h := newRouter(svc)

	rec := doJSON(h, stdhttp.MethodDelete, "/api/v1/time-reports", `{"date":"2024-01-01","start_times":["09:15:00"]}`)
	require.Equal(t, stdhttp.StatusOK, rec.Code, rec.Body.String())
	require.Len(t, svc.deleted, 1)

	rec = doJSON(h, stdhttp.MethodGet, "/api/v1/time-reports/picker?date=nope", "")
	assert.Equal(t, stdhttp.StatusBadRequest, rec.Code)

	rec = doJSON(h, stdhttp.MethodGet, "/api/v1/time-reports/picker?date=2024-01-01", "")
	require.Equal(t, stdhttp.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"start":"09:15"`)
}

func TestAPI_Projects(t *testing.T) {
	h := newRouter(&fakeSvc{})

	rec := doJSON(h, stdhttp.MethodGet, "/api/v1/time-reports/projects", "")
	require.Equal(t, stdhttp.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"data":[]`)

	rec = doJSON(h, stdhttp.MethodPost, "/api/v1/time-reports/projects", `{"name":"Reading"}`)
	assert.Equal(t, stdhttp.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"name":"Reading"`)

	rec = doJSON(h, stdhttp.MethodPost, "/api/v1/time-reports/projects", `{"name":""}`)
	assert.Equal(t, stdhttp.StatusBadRequest, rec.Code)
}
