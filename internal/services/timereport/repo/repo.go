// Package repo provides postgres access for time reports
package repo

import (
	"context"
	"time"

	"reduce/internal/core/clock"
	"reduce/internal/modkit/repokit"
	perr "reduce/internal/platform/errors"
	"reduce/internal/platform/store"
	"reduce/internal/services/timereport/domain"
)

// Repo defines the repository contract for time reports
// time values travel as HH:MM:SS text and are cast to time[] server side
type Repo interface {
	ProjectInfo(ctx context.Context, day time.Time, names []string) ([]domain.ProjectInfo, error)
	UpsertComments(ctx context.Context, day time.Time, ids []int32, contents []string) error
	InsertOpen(ctx context.Context, day time.Time, ids []int32, starts []string) (int64, error)
	InsertClosed(ctx context.Context, day time.Time, ids []int32, starts, ends []string) (int64, error)
	DeleteByStart(ctx context.Context, day time.Time, starts []string) (int64, error)
	Entries(ctx context.Context, day time.Time) ([]domain.Entry, error)
	Comments(ctx context.Context, day time.Time) ([]domain.DayComment, error)
	ProjectNames(ctx context.Context) ([]string, error)
	CreateProject(ctx context.Context, name string) (domain.Project, error)
}

type (
	// PG implements the Repo interface using Postgres
	PG struct{}

	// queries holds the database query methods
	queries struct{ q repokit.Queryer }
)

// NewPG creates a new Postgres repository binder
func NewPG() repokit.Binder[Repo] { return PG{} }

// Bind binds a Postgres queryer to the Repo implementation
func (PG) Bind(q repokit.Queryer) Repo { return &queries{q: q} }

func (r *queries) ProjectInfo(ctx context.Context, day time.Time, names []string) ([]domain.ProjectInfo, error) {
	const sql = `
select p.id, p.name, c.content
from projects p
left join time_comments c on c.project_id = p.id and c.day = $1::date
where p.name = any($2::text[])
order by p.name
`
	out, err := store.Many(ctx, r.q, scanProjectInfo, sql, day, names)
	return out, perr.FromPostgres(err, "fetch project info")
}

func (r *queries) UpsertComments(ctx context.Context, day time.Time, ids []int32, contents []string) error {
	const sql = `
insert into time_comments (project_id, day, content)
select u.project_id, $1::date, u.content
from unnest($2::int4[], $3::text[]) as u(project_id, content)
on conflict (project_id, day) do update set content = excluded.content
`
	_, err := store.Affected(ctx, r.q, sql, day, ids, contents)
	return perr.FromPostgres(err, "upsert time comments")
}

func (r *queries) InsertOpen(ctx context.Context, day time.Time, ids []int32, starts []string) (int64, error) {
	const sql = `
insert into time_entries (project_id, day, start_time)
select u.project_id, $1::date, u.start_time
from unnest($2::int4[], $3::time[]) as u(project_id, start_time)
`
	n, err := store.Affected(ctx, r.q, sql, day, ids, starts)
	return n, perr.FromPostgres(err, "insert open time entries")
}

func (r *queries) InsertClosed(ctx context.Context, day time.Time, ids []int32, starts, ends []string) (int64, error) {
	const sql = `
insert into time_entries (project_id, day, start_time, end_time)
select u.project_id, $1::date, u.start_time, u.end_time
from unnest($2::int4[], $3::time[], $4::time[]) as u(project_id, start_time, end_time)
`
	n, err := store.Affected(ctx, r.q, sql, day, ids, starts, ends)
	return n, perr.FromPostgres(err, "insert closed time entries")
}

func (r *queries) DeleteByStart(ctx context.Context, day time.Time, starts []string) (int64, error) {
	const sql = `delete from time_entries where day = $1::date and start_time = any($2::time[])`
	n, err := store.Affected(ctx, r.q, sql, day, starts)
	return n, perr.FromPostgres(err, "delete time entries")
}

func (r *queries) Entries(ctx context.Context, day time.Time) ([]domain.Entry, error) {
	const sql = `
select p.name, te.start_time::text, te.end_time::text
from time_entries te
join projects p on p.id = te.project_id
where te.day = $1::date
order by p.name, te.start_time
`
	out, err := store.Many(ctx, r.q, scanEntry, sql, day)
	return out, perr.FromPostgres(err, "fetch time entries")
}

func (r *queries) Comments(ctx context.Context, day time.Time) ([]domain.DayComment, error) {
	const sql = `
select p.name, c.content
from time_comments c
join projects p on p.id = c.project_id
where c.day = $1::date
order by p.name
`
	out, err := store.Many(ctx, r.q, func(row repokit.Row) (domain.DayComment, error) {
		var c domain.DayComment
		err := row.Scan(&c.Project, &c.Content)
		return c, err
	}, sql, day)
	return out, perr.FromPostgres(err, "fetch time comments")
}

func (r *queries) ProjectNames(ctx context.Context) ([]string, error) {
	out, err := store.Many(ctx, r.q, func(row repokit.Row) (string, error) {
		var name string
		err := row.Scan(&name)
		return name, err
	}, `select name from projects order by name`)
	return out, perr.FromPostgres(err, "fetch project names")
}

func (r *queries) CreateProject(ctx context.Context, name string) (domain.Project, error) {
	const sql = `insert into projects (name) values ($1) returning id, name`
	p, err := store.One(ctx, r.q, func(row repokit.Row) (domain.Project, error) {
		var p domain.Project
		err := row.Scan(&p.ID, &p.Name)
		return p, err
	}, sql, name)
	if err != nil {
		return domain.Project{}, perr.WithField(perr.FromPostgres(err, "create project"), "name")
	}
	return p, nil
}

func scanProjectInfo(row repokit.Row) (domain.ProjectInfo, error) {
	var pi domain.ProjectInfo
	err := row.Scan(&pi.ID, &pi.Name, &pi.Comment)
	return pi, err
}

// scanEntry reads times as text since pgx decodes time into pgtype.Time
func scanEntry(row repokit.Row) (domain.Entry, error) {
	var (
		e     domain.Entry
		start string
		end   *string
	)
	if err := row.Scan(&e.Project, &start, &end); err != nil {
		return e, err
	}
	var err error
	if e.Start, err = clock.ParseSeconds(start); err != nil {
		return e, perr.Wrapf(err, perr.ErrorCodeDB, "stored start time %q", start)
	}
	if end != nil {
		t, err := clock.ParseSeconds(*end)
		if err != nil {
			return e, perr.Wrapf(err, perr.ErrorCodeDB, "stored end time %q", *end)
		}
		e.End = &t
	}
	return e, nil
}
