package module

import (
	"time"

	"reduce/internal/platform/config"
	"reduce/internal/services/timereport/domain"
	"reduce/internal/services/timereport/form"
)

// Options holds configuration settings for the time-report module
type Options struct {
	FormMode form.Mode
	APIMode  form.Mode
	Unknown  domain.UnknownProjectPolicy
	AddRows  int
	NamesTTL time.Duration

	StatementTimeout time.Duration
}

// FromConfig reads CORE_TIMEREPORT_ settings
// ROW_POLICY forces one decode mode on both transports, unset keeps lenient
// forms and strict JSON
func FromConfig(cfg config.Conf) Options {
	c := cfg.Prefix("CORE_TIMEREPORT_")

	opts := Options{
		FormMode: form.Lenient,
		APIMode:  form.Strict,
		AddRows:  c.MayInt("ADD_ROWS", 5),
		NamesTTL: c.MayDuration("NAMES_TTL", time.Minute),

		StatementTimeout: c.MayDuration("STATEMENT_TIMEOUT", 0),
	}

	if v := c.MayEnum("ROW_POLICY", "", "lenient", "strict"); v != "" {
		m, _ := form.ParseMode(v)
		opts.FormMode, opts.APIMode = m, m
	}
	opts.Unknown, _ = domain.ParseUnknownProjectPolicy(
		c.MayEnum("UNKNOWN_PROJECTS", "drop", "drop", "reject"))

	return opts
}
