package engine

import "path"

// IgnoreSet holds full template identifiers (source root included, e.g.
// "templates/base.html") that are neither rendered nor descended into.
type IgnoreSet map[string]struct{}

func NewIgnoreSet(paths ...string) IgnoreSet {
	set := make(IgnoreSet, len(paths))
	for _, p := range paths {
		set[path.Clean(p)] = struct{}{}
	}
	return set
}

// Contains reports whether p is ignored. A nil set ignores nothing.
func (s IgnoreSet) Contains(p string) bool {
	_, ok := s[path.Clean(p)]
	return ok
}
