package sync

import (
	"fmt"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
)

// Filter decides which paths under the local root are excluded from
// syncing. Patterns use doublestar globs and match against slash-separated
// paths relative to the local root. A nil Filter excludes nothing.
type Filter struct {
	globs []string
}

// NewFilter validates the patterns up front so a bad glob fails at startup
// rather than silently never matching.
func NewFilter(globs []string) (*Filter, error) {
	for _, g := range globs {
		if !doublestar.ValidatePattern(g) {
			return nil, fmt.Errorf("invalid exclude pattern %q", g)
		}
	}

	return &Filter{globs: globs}, nil
}

// Excluded reports whether the relative path matches any exclude pattern.
func (f *Filter) Excluded(relPath string) bool {
	if f == nil {
		return false
	}

	relPath = filepath.ToSlash(relPath)
	for _, g := range f.globs {
		// Patterns are pre-validated; Match cannot fail here.
		if ok, _ := doublestar.Match(g, relPath); ok {
			return true
		}
	}

	return false
}
