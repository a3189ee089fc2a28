package tagselect

// Selection is an ordered set of tags. Insertion order is kept and values
// are unique. Mutations copy the backing slice so earlier Model values
// are never affected.
type Selection struct {
	tags []string
}

// NewSelection creates a Selection from tags, dropping duplicates.
func NewSelection(tags ...string) Selection {
	var s Selection
	for _, t := range tags {
		s.Add(t)
	}
	return s
}

// Add appends tag if it is not already selected.
// Returns true if the selection changed.
func (s *Selection) Add(tag string) bool {
	if s.Contains(tag) {
		return false
	}
	next := make([]string, len(s.tags), len(s.tags)+1)
	copy(next, s.tags)
	s.tags = append(next, tag)
	return true
}

// Remove deletes tag wherever it is.
// Returns true if the selection changed.
func (s *Selection) Remove(tag string) bool {
	for i, t := range s.tags {
		if t == tag {
			next := make([]string, 0, len(s.tags)-1)
			next = append(next, s.tags[:i]...)
			s.tags = append(next, s.tags[i+1:]...)
			return true
		}
	}
	return false
}

// Pop removes and returns the most recently added tag.
func (s *Selection) Pop() (string, bool) {
	if len(s.tags) == 0 {
		return "", false
	}
	last := s.tags[len(s.tags)-1]
	s.tags = s.tags[:len(s.tags)-1:len(s.tags)-1]
	return last, true
}

// Contains reports whether tag is selected.
func (s Selection) Contains(tag string) bool {
	for _, t := range s.tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Len returns the number of selected tags.
func (s Selection) Len() int {
	return len(s.tags)
}

// Values returns a copy of the tags in insertion order.
func (s Selection) Values() []string {
	out := make([]string, len(s.tags))
	copy(out, s.tags)
	return out
}
