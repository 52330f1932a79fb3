package http

import (
	"embed"
	"html/template"
	"time"

	"reduce/internal/services/upkeep/domain"
)

//go:embed templates/*.html
var templateFS embed.FS

var views = template.Must(template.New("upkeep").ParseFS(templateFS, "templates/*.html"))

type listView struct {
	Base    string
	Today   string
	Due     []itemView
	Backlog []itemView
}

type itemView struct {
	Base        string
	ID          string
	Description string
	Label       string
	Rate        string
	Overdue     bool
}

func newListView(base string, l domain.List) listView {
	return listView{
		Base:    base,
		Today:   l.Today.Format(time.DateOnly),
		Due:     newItemViews(base, l.Due),
		Backlog: newItemViews(base, l.Backlog),
	}
}

func newItemViews(base string, in []domain.ItemView) []itemView {
	out := make([]itemView, 0, len(in))
	for _, v := range in {
		out = append(out, itemView{
			Base:        base,
			ID:          v.ID.String(),
			Description: v.Description,
			Label:       v.Label,
			Rate:        v.Rate,
			Overdue:     v.Days < 0,
		})
	}
	return out
}
