package weather

import "strings"

// Snapshot is an immutable, ordered country → observation mapping.
// A feed tick replaces the whole snapshot; holders never observe a partial update
type Snapshot struct {
	names   []string
	obs     map[string]Observation
	byID    map[string]string // lowercased name -> name
	version uint64
}

// NewSnapshot copies names and observations into a new snapshot.
// Names missing from obs are dropped; duplicate names keep their first position
func NewSnapshot(names []string, obs map[string]Observation, version uint64) *Snapshot {
	s := &Snapshot{
		names:   make([]string, 0, len(names)),
		obs:     make(map[string]Observation, len(names)),
		byID:    make(map[string]string, len(names)),
		version: version,
	}
	for _, n := range names {
		o, ok := obs[n]
		if !ok {
			continue
		}
		if _, dup := s.obs[n]; dup {
			continue
		}
		s.names = append(s.names, n)
		s.obs[n] = o
		s.byID[strings.ToLower(n)] = n
	}
	return s
}

// Names returns country names in feed order
func (s *Snapshot) Names() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

// Get returns the observation for an exact country name
func (s *Snapshot) Get(name string) (Observation, bool) {
	o, ok := s.obs[name]
	return o, ok
}

// Lookup resolves a country by id or name, case-insensitively
func (s *Snapshot) Lookup(id string) (Observation, bool) {
	name, ok := s.byID[strings.ToLower(id)]
	if !ok {
		return Observation{}, false
	}
	return s.obs[name], true
}

// Len returns the number of countries
func (s *Snapshot) Len() int {
	return len(s.names)
}

// Version increments once per feed tick
func (s *Snapshot) Version() uint64 {
	return s.version
}

// mapObservations returns a new snapshot with fn applied to every observation
func (s *Snapshot) mapObservations(fn func(Observation) Observation) *Snapshot {
	next := &Snapshot{
		names:   s.names,
		obs:     make(map[string]Observation, len(s.obs)),
		byID:    s.byID,
		version: s.version + 1,
	}
	for _, n := range s.names {
		next.obs[n] = fn(s.obs[n])
	}
	return next
}
