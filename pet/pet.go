// Package pet derives the live set of country pets from the weather feed and the
// user's active countries, preserving each pet's position across refreshes
package pet

import (
	"fmt"

	"github.com/lixenwraith/weatherpets/vmath"
	"github.com/lixenwraith/weatherpets/weather"
)

// Mood is derived from the pet's weather condition
type Mood int

const (
	Happy Mood = iota
	Gloomy
)

func (m Mood) String() string {
	if m == Happy {
		return "Happy"
	}
	return "Gloomy"
}

// MarshalText encodes the mood by name
func (m Mood) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *Mood) UnmarshalText(b []byte) error {
	switch string(b) {
	case "Happy":
		*m = Happy
	case "Gloomy":
		*m = Gloomy
	default:
		return fmt.Errorf("unknown mood %q", b)
	}
	return nil
}

// MoodFor is Happy for clear skies and Gloomy for everything else
func MoodFor(c weather.Condition) Mood {
	if c == weather.Clear {
		return Happy
	}
	return Gloomy
}

// Pet is one tracked country. Position is in percentage-of-viewport units
type Pet struct {
	ID       string              `json:"id"`
	Name     string              `json:"name"`
	Country  string              `json:"country"`
	Weather  weather.Observation `json:"weather"`
	Mood     Mood                `json:"mood"`
	Position vmath.Vec2          `json:"position"`
}

// Find returns the pet with id, or nil
func Find(pets []Pet, id string) *Pet {
	for i := range pets {
		if pets[i].ID == id {
			return &pets[i]
		}
	}
	return nil
}
