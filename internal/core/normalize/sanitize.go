package normalize

import (
	"strings"
	"unicode/utf8"
)

// Sanitize drops bytes that must never reach the database: NUL, ASCII
// controls other than tab and line breaks, DEL, C1 controls and invalid UTF-8
// input that is already clean is returned as is
func Sanitize(s string) string {
	i := cleanPrefix(s)
	if i == len(s) {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	b.WriteString(s[:i])
	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])
		if keep(r, size) {
			b.WriteString(s[i : i+size])
		}
		i += size
	}
	return b.String()
}

// cleanPrefix returns the length of the leading run that needs no cleaning
func cleanPrefix(s string) int {
	i := 0
	for i < len(s) {
		if c := s[i]; c >= 0x20 && c < 0x7f {
			i++
			continue
		}
		r, size := utf8.DecodeRuneInString(s[i:])
		if !keep(r, size) {
			return i
		}
		i += size
	}
	return i
}

func keep(r rune, size int) bool {
	switch {
	case r == utf8.RuneError && size == 1:
		return false
	case r == '\t' || r == '\n' || r == '\r':
		return true
	case r < 0x20 || r == 0x7f:
		return false
	case r >= 0x80 && r <= 0x9f:
		return false
	}
	return true
}
