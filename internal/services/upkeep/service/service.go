// Package service implements upkeep scheduling on top of the repo
package service

import (
	"context"
	"time"
	"unicode/utf8"

	"reduce/internal/core/normalize"
	"reduce/internal/modkit/repokit"
	perr "reduce/internal/platform/errors"
	"reduce/internal/platform/logger"
	"reduce/internal/services/upkeep/domain"
	"reduce/internal/services/upkeep/repo"

	"github.com/google/uuid"
	"golang.org/x/text/message"
)

const day = 24 * time.Hour

// Config for the upkeep service
type Config struct {
	// HorizonDays hides backlog items due further out, 0 shows everything
	HorizonDays int
}

// Svc implements domain.ServicePort
type Svc struct {
	Repo repo.Repo
	cfg  Config

	printer *message.Printer
	newID   func() uuid.UUID
}

// New creates a new upkeep service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo], cfg Config) *Svc {
	if db == nil {
		panic("upkeep.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("upkeep.Service requires a non nil Repo binder")
	}
	if cfg.HorizonDays < 0 {
		cfg.HorizonDays = 0
	}
	return &Svc{
		Repo:    binder.Bind(db),
		cfg:     cfg,
		printer: newPrinter(),
		newID:   uuid.New,
	}
}

// List splits items into due (on or before today) and backlog
func (s *Svc) List(ctx context.Context, today time.Time) (domain.List, error) {
	today = Date(today)
	items, err := s.Repo.List(ctx)
	if err != nil {
		return domain.List{}, err
	}

	out := domain.List{Today: today, Due: []domain.ItemView{}, Backlog: []domain.ItemView{}}
	for _, it := range items {
		v := s.view(it, today)
		switch {
		case v.Days <= 0:
			out.Due = append(out.Due, v)
		case s.cfg.HorizonDays == 0 || v.Days <= s.cfg.HorizonDays:
			out.Backlog = append(out.Backlog, v)
		}
	}
	return out, nil
}

// Add stores a new item, a zero Due means today
func (s *Svc) Add(ctx context.Context, in domain.NewItem, today time.Time) (domain.Item, error) {
	desc := normalize.Label(in.Description)
	if desc == "" {
		return domain.Item{}, perr.WithField(
			perr.Newf(perr.ErrorCodeValidation, "description is required"), "description")
	}
	if utf8.RuneCountInString(desc) > 500 {
		return domain.Item{}, perr.WithField(
			perr.Newf(perr.ErrorCodeValidation, "description is too long"), "description")
	}
	if in.CooldownDays < 1 {
		return domain.Item{}, perr.WithField(
			perr.Newf(perr.ErrorCodeValidation, "cooldown must be at least one day"), "cooldown_days")
	}

	it := domain.Item{
		ID:           s.newID(),
		Description:  desc,
		CooldownDays: in.CooldownDays,
		Due:          Date(in.Due),
	}
	if in.Due.IsZero() {
		it.Due = Date(today)
	}
	if err := s.Repo.Insert(ctx, it); err != nil {
		return domain.Item{}, err
	}

	logger.C(ctx).Info().
		Str("component", "upkeep").
		Str("id", it.ID.String()).
		Int("cooldown_days", it.CooldownDays).
		Msg("upkeep item added")
	return it, nil
}

// Complete reschedules an item to today plus its cooldown
func (s *Svc) Complete(ctx context.Context, id uuid.UUID, today time.Time) (domain.Item, error) {
	it, err := s.Repo.Reschedule(ctx, id, Date(today))
	if err != nil {
		return domain.Item{}, err
	}
	logger.C(ctx).Debug().
		Str("component", "upkeep").
		Str("id", id.String()).
		Time("due", it.Due).
		Msg("upkeep item completed")
	return it, nil
}

// Delete removes an item, NotFound when nothing matched
func (s *Svc) Delete(ctx context.Context, id uuid.UUID) error {
	n, err := s.Repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return perr.WithField(perr.NotFoundf("upkeep item %s not found", id), "id")
	}
	return nil
}

func (s *Svc) view(it domain.Item, today time.Time) domain.ItemView {
	days := int(Date(it.Due).Sub(today) / day)
	return domain.ItemView{
		Item:  it,
		Days:  days,
		Label: dueLabel(s.printer, days),
		Rate:  rateLabel(s.printer, it.CooldownDays),
	}
}

// Date truncates t to its calendar day in UTC
func Date(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
