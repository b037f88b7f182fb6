package pet

import "strings"

// ActiveSet is the ordered, duplicate-free list of country ids the user tracks.
// Order determines render order. Revision increments on every effective change
type ActiveSet struct {
	ids      []string
	revision uint64
}

// NewActiveSet creates a set from ids, lowercased, dropping duplicates
func NewActiveSet(ids ...string) *ActiveSet {
	s := &ActiveSet{}
	for _, id := range ids {
		s.Add(id)
	}
	s.revision = 0
	return s
}

// Add appends id if absent. Returns true when the set changed
func (s *ActiveSet) Add(id string) bool {
	id = normalizeID(id)
	if id == "" || s.Contains(id) {
		return false
	}
	s.ids = append(s.ids, id)
	s.revision++
	return true
}

// Remove deletes id if present. Returns true when the set changed
func (s *ActiveSet) Remove(id string) bool {
	id = normalizeID(id)
	for i, v := range s.ids {
		if v == id {
			s.ids = append(s.ids[:i], s.ids[i+1:]...)
			s.revision++
			return true
		}
	}
	return false
}

// Toggle flips membership. Returns true if id is active afterwards
func (s *ActiveSet) Toggle(id string) bool {
	if s.Remove(id) {
		return false
	}
	return s.Add(id)
}

// Contains reports membership, case-insensitively
func (s *ActiveSet) Contains(id string) bool {
	id = normalizeID(id)
	for _, v := range s.ids {
		if v == id {
			return true
		}
	}
	return false
}

// IDs returns a copy of the ordered ids
func (s *ActiveSet) IDs() []string {
	out := make([]string, len(s.ids))
	copy(out, s.ids)
	return out
}

// Len returns the number of active ids
func (s *ActiveSet) Len() int {
	return len(s.ids)
}

// Revision changes whenever the membership or order changes
func (s *ActiveSet) Revision() uint64 {
	return s.revision
}

func normalizeID(id string) string {
	return strings.ToLower(strings.TrimSpace(id))
}
