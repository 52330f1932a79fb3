// Package normalize cleans short user supplied labels such as project names
// and upkeep descriptions before they are stored
//
// pipeline
// 1 drop control bytes and invalid UTF-8
// 2 Unicode NFC composition
// 3 remove format characters (ZWJ, ZWNJ, BOM)
// 4 fold fullwidth and halfwidth forms
// 5 collapse whitespace runs, newlines included, to one space and trim
//
// case is preserved, so "Work" and "work" stay distinct labels
package normalize

import (
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// chains are stateful so each caller takes its own
var chainPool = sync.Pool{
	New: func() any {
		return transform.Chain(
			norm.NFC,
			runes.Remove(runes.In(unicode.Cf)),
			width.Fold,
		)
	},
}

// Label returns the stored form of a one line label
func Label(s string) string {
	if s == "" {
		return ""
	}
	s = Sanitize(s)

	tr := chainPool.Get().(transform.Transformer)
	ns, _, err := transform.String(tr, s)
	tr.Reset()
	chainPool.Put(tr)
	if err != nil {
		ns = s
	}

	return strings.Join(strings.Fields(ns), " ")
}

// Equal reports whether two labels normalize to the same text
func Equal(a, b string) bool { return Label(a) == Label(b) }
