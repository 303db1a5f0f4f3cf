package models

// EmbeddedKey identifies one embedded widget occurrence on one page.
type EmbeddedKey string

// NewEmbeddedKey builds the key for a normalized widget tag on a source page.
func NewEmbeddedKey(src, tag string) EmbeddedKey {
	return EmbeddedKey(src + "/" + tag)
}

// EmbeddedSet records the widget occurrences already emitted during a run.
type EmbeddedSet map[EmbeddedKey]struct{}

// NewEmbeddedSet returns an empty set.
func NewEmbeddedSet() EmbeddedSet {
	return make(EmbeddedSet)
}

// Add records k and reports whether it was new.
func (s EmbeddedSet) Add(k EmbeddedKey) bool {
	if _, seen := s[k]; seen {
		return false
	}
	s[k] = struct{}{}
	return true
}

// Len returns the number of distinct widget occurrences recorded.
func (s EmbeddedSet) Len() int {
	return len(s)
}
