package pet

import (
	"github.com/lixenwraith/weatherpets/weather"
)

// Recompute derives the pet list for the active ids in their order.
// Ids missing from either the catalog or the snapshot are dropped silently.
// A pet present in prev keeps its position, a new pet starts at its catalog default
func Recompute(active []string, catalog *Catalog, snap *weather.Snapshot, prev []Pet) []Pet {
	if catalog == nil || snap == nil {
		return nil
	}

	prevPos := make(map[string]int, len(prev))
	for i := range prev {
		prevPos[prev[i].ID] = i
	}

	pets := make([]Pet, 0, len(active))
	for _, id := range active {
		entry, ok := catalog.Lookup(id)
		if !ok {
			continue
		}
		obs, ok := snap.Lookup(entry.ID)
		if !ok {
			continue
		}

		position := entry.DefaultPosition
		if i, found := prevPos[entry.ID]; found {
			position = prev[i].Position
		}

		pets = append(pets, Pet{
			ID:       entry.ID,
			Name:     entry.DisplayName,
			Country:  entry.DisplayName,
			Weather:  obs,
			Mood:     MoodFor(obs.Condition),
			Position: position,
		})
	}
	return pets
}
