// Package strings holds the few string helpers modules share
package strings

import std "strings"

// IfEmpty returns def when in has no elements
func IfEmpty[T any](in, def []T) []T {
	if len(in) == 0 {
		return def
	}
	return in
}

// Blank reports whether s is empty after trimming
func Blank(s string) bool { return std.TrimSpace(s) == "" }

// MustString panics with "<what> is required" when s is blank
func MustString(s, what string) string {
	if Blank(s) {
		panic(what + " is required")
	}
	return s
}

// MustPrefix normalizes a mount path to one leading slash and no trailing one
// "upkeep/", " /upkeep " and "/upkeep" all give "/upkeep", the root panics
func MustPrefix(s string) string {
	s = "/" + std.Trim(s, " /")
	if s == "/" {
		panic("mount prefix is required")
	}
	return s
}
