package compiler

// ImportSet is an ordered, deduplicated collection of the custom type names
// a declaration references. Built-in scalar names are rejected on insertion,
// so a set's contents can be handed to the import-statement formatter as-is.
//
// A set is owned by the call that created it. Parents take their children's
// sets by Merge, never by sharing a set across sibling branches.
type ImportSet struct {
	names []string
	seen  map[string]struct{}
}

// NewImportSet returns an empty import set.
func NewImportSet() *ImportSet {
	return &ImportSet{seen: make(map[string]struct{})}
}

// Add records a referenced custom type name. Built-in scalar names and
// already-present names are ignored, preserving first-seen order.
func (s *ImportSet) Add(name string) {
	if IsBuiltinScalar(name) {
		return
	}
	if _, ok := s.seen[name]; ok {
		return
	}
	s.seen[name] = struct{}{}
	s.names = append(s.names, name)
}

// Merge unions other into s, keeping s's first-seen order.
func (s *ImportSet) Merge(other *ImportSet) {
	if other == nil {
		return
	}
	for _, name := range other.names {
		s.Add(name)
	}
}

// Names returns the collected names in first-seen order. The returned slice
// is a copy; mutating it does not affect the set.
func (s *ImportSet) Names() []string {
	if len(s.names) == 0 {
		return nil
	}
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

// Len returns the number of collected names.
func (s *ImportSet) Len() int {
	return len(s.names)
}
