package naming

import (
	"fmt"
	"path/filepath"
	"strings"
)

// UsedNameSet tracks the filenames claimed so far in one batch, compared
// case-insensitively. It starts empty, grows monotonically, and is
// discarded when the batch ends.
type UsedNameSet struct {
	names map[string]struct{}
}

// NewUsedNameSet returns an empty set.
func NewUsedNameSet() *UsedNameSet {
	return &UsedNameSet{names: make(map[string]struct{})}
}

// Contains reports whether name has been claimed (case-insensitive).
func (s *UsedNameSet) Contains(name string) bool {
	_, ok := s.names[strings.ToLower(name)]
	return ok
}

// Add claims name.
func (s *UsedNameSet) Add(name string) {
	s.names[strings.ToLower(name)] = struct{}{}
}

// Len returns the number of claimed names.
func (s *UsedNameSet) Len() int { return len(s.names) }

// ExistsFunc reports whether a candidate filename already exists in the
// destination scope. It is a read-only probe supplied by the caller; a nil
// probe means nothing pre-exists.
type ExistsFunc func(name string) bool

// ResolveCollision returns candidate unchanged when it is free in both the
// batch set and the destination, otherwise the first free
// "base (n)extension" variant for n = 1, 2, 3, ... The returned name is
// claimed in used before returning. Callers must resolve names strictly in
// input order: that order decides which item keeps the un-suffixed name.
func ResolveCollision(candidate string, used *UsedNameSet, exists ExistsFunc) string {
	taken := func(name string) bool {
		if used.Contains(name) {
			return true
		}
		return exists != nil && exists(name)
	}

	if !taken(candidate) {
		used.Add(candidate)
		return candidate
	}

	ext := filepath.Ext(candidate)
	base := strings.TrimSuffix(candidate, ext)
	for n := 1; ; n++ {
		variant := fmt.Sprintf("%s (%d)%s", base, n, ext)
		if !taken(variant) {
			used.Add(variant)
			return variant
		}
	}
}
