// Package service coordinates time-report decoding results with storage
package service

import (
	"context"
	"slices"
	"sort"
	"strings"
	"time"

	"reduce/internal/core/comment"
	"reduce/internal/core/normalize"
	"reduce/internal/modkit/repokit"
	perr "reduce/internal/platform/errors"
	"reduce/internal/platform/logger"
	"reduce/internal/platform/metrics"
	"reduce/internal/services/timereport/domain"
	"reduce/internal/services/timereport/form"
	"reduce/internal/services/timereport/repo"

	"github.com/patrickmn/go-cache"
	"golang.org/x/sync/errgroup"
)

const namesKey = "project-names"

// Service defines the service contract for time reports
type Service interface{ domain.ServicePort }

// Config for the time-report service
type Config struct {
	Unknown  domain.UnknownProjectPolicy
	NamesTTL time.Duration

	// StatementTimeout bounds each statement of a submission, zero disables
	StatementTimeout time.Duration
}

// Svc implements the Service interface
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner
	cfg    Config

	names   *cache.Cache
	metrics *metrics.TimeReport
}

// New creates a new time-report service
// m may be nil when metrics are not collected
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo], cfg Config, m *metrics.TimeReport) *Svc {
	if db == nil {
		panic("timereport.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("timereport.Service requires a non nil Repo binder")
	}
	if cfg.NamesTTL <= 0 {
		cfg.NamesTTL = time.Minute
	}
	if cfg.StatementTimeout > 0 {
		db = repokit.WithBeginHooks(db, repokit.StatementTimeout(cfg.StatementTimeout))
	}
	return &Svc{
		Repo:    binder.Bind(db),
		binder:  binder,
		db:      db,
		cfg:     cfg,
		names:   cache.New(cfg.NamesTTL, 2*cfg.NamesTTL),
		metrics: m,
	}
}

// Submit persists decoded rows and their comments for one day
//
// project ids and stored comments are resolved with one read before any
// write; comments, open rows and closed rows are then written in a single
// transaction. Inserted counts time entries only
func (s *Svc) Submit(ctx context.Context, in form.Submission) (domain.InsertResult, error) {
	log := logger.C(ctx).With().
		Str("component", "timereport").
		Str("day", form.FormatDay(in.Day)).
		Logger()

	res := domain.InsertResult{Day: in.Day}
	if len(in.Rows) == 0 {
		return res, nil
	}

	names := form.Projects(in.Rows)
	infos, err := s.Repo.ProjectInfo(ctx, in.Day, names)
	if err != nil {
		s.metrics.Rejected(metrics.ReasonStorage)
		return res, err
	}

	ids := make(map[string]int32, len(infos))
	stored := make(map[string]string, len(infos))
	for _, pi := range infos {
		ids[pi.Name] = pi.ID
		if pi.Comment != nil {
			stored[pi.Name] = *pi.Comment
		}
	}

	rows := in.Rows
	if unknown := missing(names, ids); len(unknown) > 0 {
		if s.cfg.Unknown == domain.RejectUnknown {
			s.metrics.Rejected(metrics.ReasonUnknownProject)
			return res, perr.WithField(
				perr.NotFoundf("unknown projects: %s", strings.Join(unknown, ", ")), form.FieldProject)
		}
		rows = known(rows, ids)
		dropped := len(in.Rows) - len(rows)
		s.metrics.Dropped(dropped)
		res.Dropped = unknown
		log.Warn().Strs("projects", unknown).Int("rows", dropped).Msg("dropping rows for unknown projects")
	}

	merged := form.MergeComments(rows, stored)
	open, closed := form.Classify(rows)

	var inserted int64
	err = repokit.WithTx(ctx, s.db, s.binder, func(r repo.Repo) error {
		if len(merged) > 0 {
			cids, contents := commentBatch(merged, ids)
			if err := r.UpsertComments(ctx, in.Day, cids, contents); err != nil {
				return err
			}
		}
		if len(open) > 0 {
			n, err := r.InsertOpen(ctx, in.Day, rowIDs(open, ids), starts(open))
			if err != nil {
				return err
			}
			inserted += n
		}
		if len(closed) > 0 {
			n, err := r.InsertClosed(ctx, in.Day, rowIDs(closed, ids), starts(closed), ends(closed))
			if err != nil {
				return err
			}
			inserted += n
		}
		return nil
	})
	if err != nil {
		s.metrics.Rejected(metrics.ReasonStorage)
		log.Error().Err(err).Msg("time report transaction rolled back")
		return res, err
	}

	res.Inserted = int(inserted)
	s.metrics.Inserted(res.Inserted)
	log.Info().Int("inserted", res.Inserted).Int("comments", len(merged)).Msg("time report saved")
	return res, nil
}

// Delete removes every entry of the day whose start time was selected
// the match is on start time alone, across projects
func (s *Svc) Delete(ctx context.Context, in form.Deletion) (domain.DeleteResult, error) {
	res := domain.DeleteResult{Day: in.Day}
	if len(in.Starts) == 0 {
		return res, nil
	}

	sel := make([]string, len(in.Starts))
	for i, t := range in.Starts {
		sel[i] = t.SQL()
	}
	n, err := s.Repo.DeleteByStart(ctx, in.Day, sel)
	if err != nil {
		return res, err
	}

	res.Deleted = int(n)
	s.metrics.Deleted(res.Deleted)
	logger.C(ctx).Info().
		Str("component", "timereport").
		Str("day", form.FormatDay(in.Day)).
		Int("deleted", res.Deleted).
		Msg("time entries removed")
	return res, nil
}

// Picker returns the entries and comments of a day grouped by project name
func (s *Svc) Picker(ctx context.Context, day time.Time) (domain.Picker, error) {
	var (
		entries  []domain.Entry
		comments []domain.DayComment
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		entries, err = s.Repo.Entries(gctx, day)
		return err
	})
	g.Go(func() (err error) {
		comments, err = s.Repo.Comments(gctx, day)
		return err
	})
	if err := g.Wait(); err != nil {
		return domain.Picker{Day: day}, err
	}
	return group(day, entries, comments), nil
}

// Index returns the project names and the picker for a day
func (s *Svc) Index(ctx context.Context, day time.Time) (domain.Index, error) {
	out := domain.Index{Day: day}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		out.Projects, err = s.ProjectNames(gctx)
		return err
	})
	g.Go(func() (err error) {
		out.Picker, err = s.Picker(gctx, day)
		return err
	})
	if err := g.Wait(); err != nil {
		return domain.Index{Day: day}, err
	}
	return out, nil
}

// ProjectNames lists project names ordered by name, cached for NamesTTL
func (s *Svc) ProjectNames(ctx context.Context) ([]string, error) {
	if v, ok := s.names.Get(namesKey); ok {
		return slices.Clone(v.([]string)), nil
	}
	names, err := s.Repo.ProjectNames(ctx)
	if err != nil {
		return nil, err
	}
	s.names.Set(namesKey, slices.Clone(names), cache.DefaultExpiration)
	return names, nil
}

// CreateProject adds a project and invalidates the cached name list
func (s *Svc) CreateProject(ctx context.Context, name string) (domain.Project, error) {
	name = normalize.Label(name)
	if name == "" {
		return domain.Project{}, perr.WithField(
			perr.New(perr.ErrorCodeValidation, "project name is required"), "name")
	}
	p, err := s.Repo.CreateProject(ctx, name)
	if err != nil {
		return domain.Project{}, err
	}
	s.names.Delete(namesKey)
	return p, nil
}

// missing returns the names without an id, keeping their order
func missing(names []string, ids map[string]int32) []string {
	var out []string
	for _, n := range names {
		if _, ok := ids[n]; !ok {
			out = append(out, n)
		}
	}
	return out
}

func known(rows []form.Row, ids map[string]int32) []form.Row {
	out := make([]form.Row, 0, len(rows))
	for _, r := range rows {
		if _, ok := ids[r.Project]; ok {
			out = append(out, r)
		}
	}
	return out
}

// commentBatch normalizes merged comments into parallel arrays ordered by name
func commentBatch(merged map[string]string, ids map[string]int32) ([]int32, []string) {
	names := make([]string, 0, len(merged))
	for n := range merged {
		names = append(names, n)
	}
	sort.Strings(names)

	cids := make([]int32, len(names))
	contents := make([]string, len(names))
	for i, n := range names {
		cids[i] = ids[n]
		contents[i] = comment.Normalize(merged[n])
	}
	return cids, contents
}

func rowIDs(rows []form.Row, ids map[string]int32) []int32 {
	out := make([]int32, len(rows))
	for i, r := range rows {
		out[i] = ids[r.Project]
	}
	return out
}

func starts(rows []form.Row) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.Start.SQL()
	}
	return out
}

func ends(rows []form.Row) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.End.SQL()
	}
	return out
}

// group folds name-ordered entries and comments into picker projects
func group(day time.Time, entries []domain.Entry, comments []domain.DayComment) domain.Picker {
	byName := map[string]*domain.PickerProject{}
	var order []string
	get := func(name string) *domain.PickerProject {
		if p, ok := byName[name]; ok {
			return p
		}
		p := &domain.PickerProject{Name: name, Entries: []domain.Entry{}}
		byName[name] = p
		order = append(order, name)
		return p
	}

	for _, e := range entries {
		p := get(e.Project)
		p.Entries = append(p.Entries, e)
	}
	for _, c := range comments {
		get(c.Project).Comment = c.Content
	}

	sort.Strings(order)
	out := domain.Picker{Day: day, Projects: make([]domain.PickerProject, 0, len(order))}
	for _, n := range order {
		out.Projects = append(out.Projects, *byName[n])
	}
	return out
}
