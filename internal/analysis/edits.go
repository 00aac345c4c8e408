package analysis

// Edit is a user-accepted AI rewrite of one bullet point, awaiting reflection
// in the rendered preview.
type Edit struct {
	Original string
	Enhanced string
}

// EditSet accumulates applied edits with at most one enhanced value per
// distinct original: accepting a new rewrite for the same original replaces
// the prior entry instead of duplicating it. Iteration order is insertion
// order, so patching the same set against the same document is
// deterministic.
type EditSet struct {
	order []string
	byOrg map[string]string
}

// NewEditSet returns an empty edit collection.
func NewEditSet() *EditSet {
	return &EditSet{byOrg: make(map[string]string)}
}

// Apply records an accepted rewrite. An empty original is ignored; a repeat
// original replaces the previous enhancement in place.
func (s *EditSet) Apply(original, enhanced string) {
	if original == "" {
		return
	}
	if _, exists := s.byOrg[original]; !exists {
		s.order = append(s.order, original)
	}
	s.byOrg[original] = enhanced
}

// Edits returns the collection in insertion order.
func (s *EditSet) Edits() []Edit {
	edits := make([]Edit, 0, len(s.order))
	for _, original := range s.order {
		edits = append(edits, Edit{Original: original, Enhanced: s.byOrg[original]})
	}
	return edits
}

// Len reports the number of distinct originals with an enhancement.
func (s *EditSet) Len() int { return len(s.order) }

// Clear drops every edit. Called when the results view is torn down.
func (s *EditSet) Clear() {
	s.order = nil
	s.byOrg = make(map[string]string)
}
