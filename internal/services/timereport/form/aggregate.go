package form

import (
	"sort"
	"strconv"
	"strings"

	"reduce/internal/core/clock"
)

// Group is phase one: it buckets non-empty "<index>--<field>" values by index
// the date key, keys without a separator and unknown field names are skipped
// an index that is not canonical decimal (x, -1, 01) is skipped in Lenient
// mode and reported in Strict mode, so every field has at most one key
func Group(values map[string]string, mode Mode) (map[int]*Partial, error) {
	out := map[int]*Partial{}
	var errs Errors

	for key, value := range values {
		if key == KeyDate || value == "" {
			continue
		}
		prefix, field, ok := strings.Cut(key, Sep)
		if !ok {
			continue
		}
		idx, ok := parseIndex(prefix)
		if !ok {
			if mode == Strict {
				errs = append(errs, &RowError{Index: -1, Field: key, Err: ErrBadIndex})
			}
			continue
		}
		p := out[idx]
		if p == nil {
			p = &Partial{}
		}
		if p.set(field, value) {
			out[idx] = p
		}
	}

	if len(errs) > 0 {
		sortErrors(errs)
		return nil, errs.asError()
	}
	return out, nil
}

// parseIndex accepts 0 and decimals without a leading zero up to 65535
func parseIndex(s string) (int, bool) {
	n, err := strconv.ParseUint(s, 10, 16)
	if err != nil || strconv.FormatUint(n, 10) != s {
		return 0, false
	}
	return int(n), true
}

// Aggregate decodes values into rows ordered by index
// time tokens of accepted rows are parsed here, a bad token fails the call
func Aggregate(values map[string]string, mode Mode) ([]Row, error) {
	parts, err := Group(values, mode)
	if err != nil {
		return nil, err
	}

	var (
		accepted []int
		errs     Errors
	)
	switch mode {
	case Strict:
		accepted, errs = strictIndices(parts)
	default:
		accepted = lenientIndices(parts)
	}

	rows := make([]Row, 0, len(accepted))
	for _, i := range accepted {
		row, rowErrs := convert(i, parts[i])
		if len(rowErrs) > 0 {
			errs = append(errs, rowErrs...)
			continue
		}
		rows = append(rows, row)
	}

	if len(errs) > 0 {
		sortErrors(errs)
		return nil, errs.asError()
	}
	return rows, nil
}

// lenientIndices keeps every index carrying both required fields
func lenientIndices(parts map[int]*Partial) []int {
	out := make([]int, 0, len(parts))
	for i, p := range parts {
		if p.complete() {
			out = append(out, i)
		}
	}
	sort.Ints(out)
	return out
}

// strictIndices scans 0.. until the first index with neither required field
// everything before the gap must be complete and nothing may follow it
func strictIndices(parts map[int]*Partial) ([]int, Errors) {
	var (
		out  []int
		errs Errors
		gap  int
	)
	for gap = 0; ; gap++ {
		p, ok := parts[gap]
		if !ok || !p.anchored() {
			break
		}
		switch {
		case p.Project == "":
			errs = append(errs, &RowError{Index: gap, Field: FieldProject, Err: ErrMissingField})
		case p.Start == "":
			errs = append(errs, &RowError{Index: gap, Field: FieldStart, Err: ErrMissingField})
		default:
			out = append(out, gap)
		}
	}

	for i, p := range parts {
		if i < gap {
			continue
		}
		for _, f := range p.present() {
			errs = append(errs, &RowError{Index: i, Field: f, Err: ErrOrphanField})
		}
	}
	return out, errs
}

// convert parses the time tokens of one complete partial
func convert(i int, p *Partial) (Row, Errors) {
	var errs Errors
	row := Row{Index: i, Project: p.Project, Comment: p.Comment}

	start, err := clock.Parse(p.Start)
	if err != nil {
		errs = append(errs, &RowError{Index: i, Field: FieldStart, Err: err})
	}
	row.Start = start

	if p.End != "" {
		end, err := clock.Parse(p.End)
		if err != nil {
			errs = append(errs, &RowError{Index: i, Field: FieldEnd, Err: err})
		} else {
			row.End = &end
		}
	}
	return row, errs
}

var fieldOrder = map[string]int{FieldProject: 0, FieldStart: 1, FieldEnd: 2, FieldComment: 3}

func sortErrors(es Errors) {
	sort.SliceStable(es, func(a, b int) bool {
		if es[a].Index != es[b].Index {
			return es[a].Index < es[b].Index
		}
		fa, oka := fieldOrder[es[a].Field]
		fb, okb := fieldOrder[es[b].Field]
		if oka && okb {
			return fa < fb
		}
		return es[a].Field < es[b].Field
	})
}
