// Package mol: ordered label sets.
package mol

// LabelSet is an insertion-ordered set of strings. Typing rules append the
// labels they grant; iteration order is grant order, which keeps type
// resolution reproducible.
//
// The zero value is not usable; construct with NewLabelSet.
type LabelSet struct {
	order []string
	seen  map[string]struct{}
}

// NewLabelSet returns an empty LabelSet.
func NewLabelSet() *LabelSet {
	return &LabelSet{seen: make(map[string]struct{})}
}

// Add inserts label and reports whether it was newly added.
func (s *LabelSet) Add(label string) bool {
	if _, ok := s.seen[label]; ok {
		return false
	}
	s.seen[label] = struct{}{}
	s.order = append(s.order, label)

	return true
}

// AddAll inserts every label, keeping first-seen order.
func (s *LabelSet) AddAll(labels ...string) {
	for _, l := range labels {
		s.Add(l)
	}
}

// Has reports whether label is in the set.
func (s *LabelSet) Has(label string) bool {
	_, ok := s.seen[label]

	return ok
}

// Len returns the number of labels.
func (s *LabelSet) Len() int {
	return len(s.order)
}

// Values returns the labels in insertion order. The slice is a copy.
func (s *LabelSet) Values() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)

	return out
}
