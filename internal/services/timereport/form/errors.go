package form

import (
	"fmt"
	"strings"

	perr "reduce/internal/platform/errors"
)

// RowError pins a decode failure to a row index and field
// Index is -1 for failures that are not tied to a row, such as the date
type RowError struct {
	Index int
	Field string
	Err   error
}

func (e *RowError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("%s: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("row %d %s: %v", e.Index, e.Field, e.Err)
}

func (e *RowError) Unwrap() error { return e.Err }

// Key returns the form key the error refers to
func (e *RowError) Key() string {
	if e.Index < 0 {
		return e.Field
	}
	return fmt.Sprintf("%d%s%s", e.Index, Sep, e.Field)
}

// Errors is every RowError found in one submission
type Errors []*RowError

func (es Errors) Error() string {
	msgs := make([]string, len(es))
	for i, e := range es {
		msgs[i] = e.Error()
	}
	return strings.Join(msgs, "; ")
}

// Unwrap exposes the individual errors to errors.Is and errors.As
func (es Errors) Unwrap() []error {
	out := make([]error, len(es))
	for i, e := range es {
		out[i] = e
	}
	return out
}

// asError wraps collected failures as a validation error, nil when empty
// the first offending key is attached as the error field
func (es Errors) asError() error {
	if len(es) == 0 {
		return nil
	}
	err := perr.Wrap(es, perr.ErrorCodeValidation, "invalid time report")
	return perr.WithField(err, es[0].Key())
}

// Sentinel causes carried by RowError
var (
	ErrMissingField = perr.New(perr.ErrorCodeValidation, "for any index, both project and start time must be defined")
	ErrOrphanField  = perr.New(perr.ErrorCodeValidation, "field references an index past the last complete row")
	ErrBadIndex     = perr.New(perr.ErrorCodeValidation, "row index must be a non-negative integer without leading zeros")
	ErrMissingDate  = perr.New(perr.ErrorCodeValidation, "date was not provided")
)
