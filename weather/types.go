// Package weather provides the mock weather feed that drives the pets
package weather

import (
	"fmt"
	"strings"
)

// Condition is a coarse sky condition
type Condition int

const (
	Clear Condition = iota
	Clouds
	Rain
	Snow
	Thunderstorm
	Drizzle
	Mist
	PartlyCloudy
	Windy
	Haze
	Dust
	Overcast
	Fog
	Sleet
	Wind
)

var conditionNames = [...]string{
	Clear:        "Clear",
	Clouds:       "Clouds",
	Rain:         "Rain",
	Snow:         "Snow",
	Thunderstorm: "Thunderstorm",
	Drizzle:      "Drizzle",
	Mist:         "Mist",
	PartlyCloudy: "PartlyCloudy",
	Windy:        "Windy",
	Haze:         "Haze",
	Dust:         "Dust",
	Overcast:     "Overcast",
	Fog:          "Fog",
	Sleet:        "Sleet",
	Wind:         "Wind",
}

// Conditions lists every condition in declaration order
func Conditions() []Condition {
	out := make([]Condition, len(conditionNames))
	for i := range conditionNames {
		out[i] = Condition(i)
	}
	return out
}

func (c Condition) String() string {
	if c < 0 || int(c) >= len(conditionNames) {
		return fmt.Sprintf("Condition(%d)", int(c))
	}
	return conditionNames[c]
}

// MarshalText encodes the condition by name
func (c Condition) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Condition) UnmarshalText(b []byte) error {
	v, err := ParseCondition(string(b))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// ParseCondition resolves a condition name case-insensitively
func ParseCondition(s string) (Condition, error) {
	for i, name := range conditionNames {
		if strings.EqualFold(name, s) {
			return Condition(i), nil
		}
	}
	return 0, fmt.Errorf("unknown weather condition %q", s)
}

// Observation is an immutable weather snapshot for one location
type Observation struct {
	Location    string    `json:"location"`
	TempC       float64   `json:"temp_c"`
	Condition   Condition `json:"condition"`
	Humidity    int       `json:"humidity"`
	WindMPS     float64   `json:"wind_mps"`
	Description string    `json:"description"`
}
