package form

import (
	"sort"
	"strings"
	"time"

	"reduce/internal/core/clock"
	perr "reduce/internal/platform/errors"
)

// ParseDay parses an ISO YYYY-MM-DD date as midnight UTC
func ParseDay(raw string) (time.Time, error) {
	d, err := time.Parse(time.DateOnly, strings.TrimSpace(raw))
	if err != nil {
		return time.Time{}, perr.WithField(
			perr.Wrapf(err, perr.ErrorCodeValidation, "invalid date %q", raw), KeyDate)
	}
	return d, nil
}

// FormatDay is the inverse of ParseDay
func FormatDay(d time.Time) string { return d.Format(time.DateOnly) }

// DecodeSubmission decodes the date and rows of an add-form POST
func DecodeSubmission(values map[string]string, mode Mode) (Submission, error) {
	day, err := requireDay(values)
	if err != nil {
		return Submission{}, err
	}
	rows, err := Aggregate(values, mode)
	if err != nil {
		return Submission{}, err
	}
	return Submission{Day: day, Rows: rows}, nil
}

// DecodeDeletion decodes the date and every "--select-item" HH:MM:SS value
// other keys are ignored; selections are returned in key order
func DecodeDeletion(values map[string]string) (Deletion, error) {
	day, err := requireDay(values)
	if err != nil {
		return Deletion{}, err
	}

	keys := make([]string, 0, len(values))
	for k := range values {
		if strings.HasSuffix(k, Sep+FieldSelect) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	var errs Errors
	starts := make([]clock.Time, 0, len(keys))
	for _, k := range keys {
		t, err := clock.ParseSeconds(values[k])
		if err != nil {
			errs = append(errs, &RowError{Index: -1, Field: k, Err: err})
			continue
		}
		starts = append(starts, t)
	}
	if len(errs) > 0 {
		return Deletion{}, errs.asError()
	}
	return Deletion{Day: day, Starts: starts}, nil
}

func requireDay(values map[string]string) (time.Time, error) {
	raw, ok := values[KeyDate]
	if !ok || strings.TrimSpace(raw) == "" {
		return time.Time{}, perr.WithField(perr.Wrap(ErrMissingDate, perr.ErrorCodeValidation, "invalid time report"), KeyDate)
	}
	return ParseDay(raw)
}
