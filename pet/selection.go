package pet

// Selection is a weak reference to the focused pet, held by id only
type Selection struct {
	id string
}

// Select focuses the pet with id
func (s *Selection) Select(id string) {
	s.id = id
}

// Clear drops the selection
func (s *Selection) Clear() {
	s.id = ""
}

// ID returns the selected id and whether anything is selected
func (s *Selection) ID() (string, bool) {
	return s.id, s.id != ""
}

// Reconcile re-resolves the selection against a fresh pet list, clearing it when
// the id vanished. Returns the selected pet or nil
func (s *Selection) Reconcile(pets []Pet) *Pet {
	if s.id == "" {
		return nil
	}
	p := Find(pets, s.id)
	if p == nil {
		s.id = ""
	}
	return p
}
