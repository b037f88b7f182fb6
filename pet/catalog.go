package pet

import (
	"strings"

	"github.com/lixenwraith/weatherpets/constant"
	"github.com/lixenwraith/weatherpets/vmath"
)

// CatalogEntry is static per-country metadata; ID is the join key with the feed
type CatalogEntry struct {
	ID              string
	DisplayName     string
	DefaultPosition vmath.Vec2
}

// Catalog is the ordered list of countries a pet can be created for
type Catalog struct {
	entries []CatalogEntry
	byID    map[string]int
}

// BuildCatalog derives entries from feed names in order.
// Default positions are spread with a deterministic modular pattern
func BuildCatalog(names []string) *Catalog {
	c := &Catalog{
		entries: make([]CatalogEntry, 0, len(names)),
		byID:    make(map[string]int, len(names)),
	}
	for i, name := range names {
		id := strings.ToLower(name)
		if _, dup := c.byID[id]; dup {
			continue
		}
		c.byID[id] = len(c.entries)
		c.entries = append(c.entries, CatalogEntry{
			ID:          id,
			DisplayName: name,
			DefaultPosition: vmath.Vec2{
				X: constant.DefaultPosBase + float64((i*constant.DefaultPosStepX)%constant.DefaultPosSpan),
				Y: constant.DefaultPosBase + float64((i*constant.DefaultPosStepY)%constant.DefaultPosSpan),
			},
		})
	}
	return c
}

// Entries returns the catalog in order
func (c *Catalog) Entries() []CatalogEntry {
	out := make([]CatalogEntry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Lookup finds an entry by id, case-insensitively
func (c *Catalog) Lookup(id string) (CatalogEntry, bool) {
	i, ok := c.byID[strings.ToLower(id)]
	if !ok {
		return CatalogEntry{}, false
	}
	return c.entries[i], true
}

// Resolve matches a geographic feature name against ids and display names
func (c *Catalog) Resolve(name string) (CatalogEntry, bool) {
	if e, ok := c.Lookup(name); ok {
		return e, true
	}
	for _, e := range c.entries {
		if strings.EqualFold(e.DisplayName, name) {
			return e, true
		}
	}
	return CatalogEntry{}, false
}

// Len returns the number of entries
func (c *Catalog) Len() int {
	return len(c.entries)
}
