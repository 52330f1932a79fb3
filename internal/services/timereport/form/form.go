// Package form decodes the indexed time-report form into ordered rows
//
// fields arrive flat as "<index>--<field>" with field one of project,
// start-time, end-time, comment. decoding happens in two phases: Group
// collects non-empty values per index into a Partial, Aggregate validates
// the partials under a Mode and converts them into Rows
package form

import (
	"strings"
	"time"

	"reduce/internal/core/clock"
	perr "reduce/internal/platform/errors"
)

// Form keys and field names
const (
	KeyDate      = "date"
	Sep          = "--"
	FieldProject = "project"
	FieldStart   = "start-time"
	FieldEnd     = "end-time"
	FieldComment = "comment"
	FieldSelect  = "select-item"
)

// Mode selects how incomplete rows are treated
type Mode uint8

const (
	// Lenient drops rows that lack a project or start time
	Lenient Mode = iota
	// Strict requires contiguous indices from 0 with both required fields and
	// rejects the whole submission otherwise
	Strict
)

// String implements fmt.Stringer
func (m Mode) String() string {
	if m == Strict {
		return "strict"
	}
	return "lenient"
}

// ParseMode maps a config value to a Mode
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "lenient":
		return Lenient, nil
	case "strict":
		return Strict, nil
	}
	return Lenient, perr.InvalidArgf("unknown row policy %q", s)
}

// Partial is the raw per-index accumulator built by Group
// empty strings mean the field was absent or blank
type Partial struct {
	Project string
	Start   string
	End     string
	Comment string
}

func (p *Partial) set(field, value string) bool {
	switch field {
	case FieldProject:
		p.Project = value
	case FieldStart:
		p.Start = value
	case FieldEnd:
		p.End = value
	case FieldComment:
		p.Comment = value
	default:
		return false
	}
	return true
}

// complete reports whether both required fields are present
func (p *Partial) complete() bool { return p.Project != "" && p.Start != "" }

// anchored reports whether at least one required field is present
func (p *Partial) anchored() bool { return p.Project != "" || p.Start != "" }

// present lists the fields that carry a value, in form order
func (p *Partial) present() []string {
	var out []string
	for _, f := range []struct {
		name, v string
	}{
		{FieldProject, p.Project},
		{FieldStart, p.Start},
		{FieldEnd, p.End},
		{FieldComment, p.Comment},
	} {
		if f.v != "" {
			out = append(out, f.name)
		}
	}
	return out
}

// Row is one decoded time-report line
type Row struct {
	Index   int
	Project string
	Start   clock.Time
	End     *clock.Time
	Comment string
}

// Open reports whether the row has no end time yet
func (r Row) Open() bool { return r.End == nil }

// Submission is a decoded POST of the add form
type Submission struct {
	Day  time.Time
	Rows []Row
}

// Deletion is a decoded DELETE of picker selections
type Deletion struct {
	Day    time.Time
	Starts []clock.Time
}
