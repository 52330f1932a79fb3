package web

import (
	"fmt"
	"slices"
	"strings"
)

// Section is one entry of the top level navigation
type Section struct {
	Title string
	Path  string
}

// Navigation is the ordered, read only list of sections built once at startup
type Navigation struct {
	sections []Section
}

// NewNavigation validates and freezes sections in the given order
// titles must be non empty and paths absolute and unique
func NewNavigation(sections ...Section) (Navigation, error) {
	seen := make(map[string]struct{}, len(sections))
	for _, s := range sections {
		if strings.TrimSpace(s.Title) == "" {
			return Navigation{}, fmt.Errorf("navigation: empty title for %q", s.Path)
		}
		if !strings.HasPrefix(s.Path, "/") {
			return Navigation{}, fmt.Errorf("navigation: path %q must start with /", s.Path)
		}
		if _, dup := seen[s.Path]; dup {
			return Navigation{}, fmt.Errorf("navigation: duplicate path %q", s.Path)
		}
		seen[s.Path] = struct{}{}
	}
	return Navigation{sections: slices.Clone(sections)}, nil
}

// Sections returns a copy so callers cannot mutate the table
func (n Navigation) Sections() []Section { return slices.Clone(n.sections) }

// Len is the number of sections
func (n Navigation) Len() int { return len(n.sections) }
