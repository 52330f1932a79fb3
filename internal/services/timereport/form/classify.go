package form

import "sort"

// Classify splits rows into open (no end time) and closed ones
// relative order is kept inside each partition
func Classify(rows []Row) (open, closed []Row) {
	for _, r := range rows {
		if r.Open() {
			open = append(open, r)
		} else {
			closed = append(closed, r)
		}
	}
	return open, closed
}

// Projects returns the distinct project names referenced by rows, sorted
func Projects(rows []Row) []string {
	seen := make(map[string]struct{}, len(rows))
	out := make([]string, 0, len(rows))
	for _, r := range rows {
		if _, ok := seen[r.Project]; ok {
			continue
		}
		seen[r.Project] = struct{}{}
		out = append(out, r.Project)
	}
	sort.Strings(out)
	return out
}

// MergeComments folds row comments into the comments already stored for the day
//
// stored is keyed by project name; an empty stored value counts as no comment
// each project's text starts from its stored comment and gets every row
// comment appended with ';', open rows first then closed rows. projects with
// no text from either side are left out
func MergeComments(rows []Row, stored map[string]string) map[string]string {
	out := map[string]string{}
	for name, c := range stored {
		if c != "" {
			out[name] = c
		}
	}

	open, closed := Classify(rows)
	for _, group := range [][]Row{open, closed} {
		for _, r := range group {
			if r.Comment == "" {
				continue
			}
			if prev, ok := out[r.Project]; ok {
				out[r.Project] = prev + ";" + r.Comment
				continue
			}
			out[r.Project] = r.Comment
		}
	}
	return out
}
