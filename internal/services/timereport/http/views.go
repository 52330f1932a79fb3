package http

import (
	"embed"
	"html/template"
	"strings"
	"time"

	"reduce/internal/services/timereport/domain"
	"reduce/internal/services/timereport/form"
)

//go:embed templates/*.html
var templateFS embed.FS

var views = template.Must(template.New("timereport").Funcs(template.FuncMap{
	"day":  form.FormatDay,
	"join": strings.Join,
}).ParseFS(templateFS, "templates/*.html"))

type pageView struct {
	Base     string
	Day      string
	Projects []string
	Rows     rowsView
	Picker   pickerView
}

type rowsView struct {
	Base    string
	Indices []int
	Next    int
}

type pickerView struct {
	Base     string
	Day      string
	Projects []pickerProject
}

type pickerProject struct {
	Name    string
	Comment string
	Rows    []pickerRow
}

// pickerRow is one selectable entry, Key is the "<n>--select-item" form key
type pickerRow struct {
	Key   string
	Value string
	Start string
	End   string
}

func newRowsView(base string, offset, n int) rowsView {
	v := rowsView{Base: base, Indices: make([]int, n), Next: offset + n}
	for i := range v.Indices {
		v.Indices[i] = offset + i
	}
	return v
}

func newPickerView(base string, p domain.Picker) pickerView {
	v := pickerView{Base: base, Day: form.FormatDay(p.Day)}
	n := 0
	for _, proj := range p.Projects {
		pp := pickerProject{Name: proj.Name, Comment: proj.Comment}
		for _, e := range proj.Entries {
			row := pickerRow{
				Key:   selectKey(n),
				Value: e.Start.SQL(),
				Start: e.Start.String(),
			}
			if e.End != nil {
				row.End = e.End.String()
			}
			pp.Rows = append(pp.Rows, row)
			n++
		}
		v.Projects = append(v.Projects, pp)
	}
	return v
}

func newPageView(base string, idx domain.Index, rows int) pageView {
	return pageView{
		Base:     base,
		Day:      form.FormatDay(idx.Day),
		Projects: idx.Projects,
		Rows:     newRowsView(base, 0, rows),
		Picker:   newPickerView(base, idx.Picker),
	}
}

func selectKey(n int) string {
	return itoa(n) + form.Sep + form.FieldSelect
}

func today(now func() time.Time) time.Time {
	t := now()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
