// Package comment canonicalizes free-text day comments so merged text from
// several submissions compares and renders deterministically
package comment

import (
	"sort"
	"strings"
)

// Normalize splits input on ';' and then on newlines, collapses whitespace
// runs inside each line, sorts the lines bytewise and joins them with '\n'
// duplicate lines are kept
func Normalize(input string) string {
	var lines []string
	for _, chunk := range strings.Split(input, ";") {
		for _, line := range strings.Split(chunk, "\n") {
			lines = append(lines, strings.Join(strings.Fields(line), " "))
		}
	}
	sort.Strings(lines)
	return strings.Join(lines, "\n")
}

// Lines returns the normalized lines of input
func Lines(input string) []string {
	return strings.Split(Normalize(input), "\n")
}
