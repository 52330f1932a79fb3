// Package repo provides postgres access for upkeep items
package repo

import (
	"context"
	"errors"
	"time"

	"reduce/internal/modkit/repokit"
	perr "reduce/internal/platform/errors"
	"reduce/internal/platform/store"
	"reduce/internal/services/upkeep/domain"

	"github.com/google/uuid"
)

// Repo defines the repository contract for upkeep items
type Repo interface {
	List(ctx context.Context) ([]domain.Item, error)
	Insert(ctx context.Context, it domain.Item) error
	// Reschedule sets due to day plus the item's cooldown
	Reschedule(ctx context.Context, id uuid.UUID, day time.Time) (domain.Item, error)
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
}

type (
	// PG implements the Repo interface using Postgres
	PG struct{}

	queries struct{ q repokit.Queryer }
)

// NewPG creates a new Postgres repository binder
func NewPG() repokit.Binder[Repo] { return PG{} }

// Bind binds a Postgres queryer to the Repo implementation
func (PG) Bind(q repokit.Queryer) Repo { return &queries{q: q} }

func (r *queries) List(ctx context.Context) ([]domain.Item, error) {
	const sql = `
select id, description, cooldown_days, due
from upkeep_items
order by due asc, description asc
`
	out, err := store.Many(ctx, r.q, scanItem, sql)
	return out, perr.FromPostgres(err, "list upkeep items")
}

func (r *queries) Insert(ctx context.Context, it domain.Item) error {
	const sql = `
insert into upkeep_items (id, description, cooldown_days, due)
values ($1, $2, $3, $4::date)
`
	return perr.FromPostgres(store.ExecOne(ctx, r.q, sql, it.ID, it.Description, it.CooldownDays, it.Due), "insert upkeep item")
}

func (r *queries) Reschedule(ctx context.Context, id uuid.UUID, day time.Time) (domain.Item, error) {
	const sql = `
update upkeep_items
set due = $2::date + cooldown_days
where id = $1
returning id, description, cooldown_days, due
`
	it, err := store.One(ctx, r.q, scanItem, sql, id, day)
	if errors.Is(err, perr.ErrNotFound) {
		return domain.Item{}, perr.WithField(perr.NotFoundf("upkeep item %s not found", id), "id")
	}
	return it, perr.FromPostgres(err, "complete upkeep item")
}

func (r *queries) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	n, err := store.Affected(ctx, r.q, `delete from upkeep_items where id = $1`, id)
	return n, perr.FromPostgres(err, "delete upkeep item")
}

func scanItem(row repokit.Row) (domain.Item, error) {
	var it domain.Item
	err := row.Scan(&it.ID, &it.Description, &it.CooldownDays, &it.Due)
	return it, err
}
