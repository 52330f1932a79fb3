// Package config reads settings from the environment
//
// A Conf is a prefix, e.g. config.New().Prefix("CORE_WEB_"). Must* panics on a
// missing value. May* falls back to the default and logs a warning when the
// value does not parse.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"reduce/internal/platform/logger"
)

type Conf struct{ prefix string }

func New() Conf { return Conf{} }

func (c Conf) Prefix(p string) Conf { return Conf{prefix: c.prefix + p} }

func (c Conf) key(k string) string { return c.prefix + k }

func (c Conf) lookup(k string) string { return strings.TrimSpace(os.Getenv(c.key(k))) }

// MustString panics when key is unset or blank
func (c Conf) MustString(key string) string {
	v := c.lookup(key)
	if v == "" {
		logger.Get().Panic().Str("key", c.key(key)).Msg("missing required env")
	}
	return v
}

func (c Conf) MayString(key, def string) string {
	if v := c.lookup(key); v != "" {
		return v
	}
	return def
}

func (c Conf) MayInt(key string, def int) int { return may(c, key, def, strconv.Atoi) }

func (c Conf) MayBool(key string, def bool) bool { return may(c, key, def, strconv.ParseBool) }

// MayDuration takes time.ParseDuration syntax, 250ms or 2s
func (c Conf) MayDuration(key string, def time.Duration) time.Duration {
	return may(c, key, def, time.ParseDuration)
}

func may[T any](c Conf, key string, def T, parse func(string) (T, error)) T {
	s := c.lookup(key)
	if s == "" {
		return def
	}
	v, err := parse(s)
	if err != nil {
		logger.Get().Warn().Str("key", c.key(key)).Str("value", s).Interface("default", def).Msg("invalid env, using default")
		return def
	}
	return v
}

// MayCSV splits on commas and drops blanks, def when nothing is left
func (c Conf) MayCSV(key string, def []string) []string {
	var out []string
	for _, p := range strings.Split(c.lookup(key), ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}

// MayEnum returns the lowercased value, or def when unset
// a value outside allowed panics
func (c Conf) MayEnum(key, def string, allowed ...string) string {
	v := strings.ToLower(c.lookup(key))
	if v == "" {
		return def
	}
	for _, a := range allowed {
		if v == a {
			return v
		}
	}
	logger.Get().Panic().Str("key", c.key(key)).Str("value", v).Strs("allowed", allowed).Msg("invalid env value")
	return ""
}
