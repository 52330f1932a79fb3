package domain

import (
	"context"
	"strings"
	"time"

	perr "reduce/internal/platform/errors"

	"reduce/internal/services/timereport/form"
)

// ServicePort is the time-report service contract
type ServicePort interface {
	Submit(ctx context.Context, in form.Submission) (InsertResult, error)
	Delete(ctx context.Context, in form.Deletion) (DeleteResult, error)
	Picker(ctx context.Context, day time.Time) (Picker, error)
	Index(ctx context.Context, day time.Time) (Index, error)
	ProjectNames(ctx context.Context) ([]string, error)
	CreateProject(ctx context.Context, name string) (Project, error)
}

// UnknownProjectPolicy decides what happens to rows naming a project that
// does not exist
type UnknownProjectPolicy uint8

const (
	// DropUnknown silently drops those rows and their comments
	DropUnknown UnknownProjectPolicy = iota
	// RejectUnknown fails the whole submission with a not found error
	RejectUnknown
)

// String implements fmt.Stringer
func (p UnknownProjectPolicy) String() string {
	if p == RejectUnknown {
		return "reject"
	}
	return "drop"
}

// ParseUnknownProjectPolicy maps a config value to a policy
func ParseUnknownProjectPolicy(s string) (UnknownProjectPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "drop":
		return DropUnknown, nil
	case "reject":
		return RejectUnknown, nil
	}
	return DropUnknown, perr.InvalidArgf("unknown project policy %q", s)
}
