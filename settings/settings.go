// Package settings holds user display preferences and the unit conversions they imply
package settings

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/weatherpets/constant"
)

// UnitSystem selects how temperatures and wind speeds are displayed
type UnitSystem int

const (
	Metric UnitSystem = iota
	Imperial
)

func (u UnitSystem) String() string {
	if u == Imperial {
		return "imperial"
	}
	return "metric"
}

// ParseUnitSystem accepts "metric" or "imperial", case-insensitively
func ParseUnitSystem(s string) (UnitSystem, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "metric", "":
		return Metric, nil
	case "imperial":
		return Imperial, nil
	}
	return Metric, fmt.Errorf("unknown unit system %q", s)
}

// ToDisplayTemp converts Celsius to the display unit
func ToDisplayTemp(celsius float64, unit UnitSystem) float64 {
	if unit == Imperial {
		return celsius*9/5 + 32
	}
	return celsius
}

// ToDisplayWind converts metres per second to the display unit
func ToDisplayWind(mps float64, unit UnitSystem) float64 {
	if unit == Imperial {
		return mps * constant.MPSToMPH
	}
	return mps
}

// TempUnit returns the temperature suffix for unit
func TempUnit(unit UnitSystem) string {
	if unit == Imperial {
		return "°F"
	}
	return "°C"
}

// WindUnit returns the wind speed suffix for unit
func WindUnit(unit UnitSystem) string {
	if unit == Imperial {
		return "mph"
	}
	return "m/s"
}

// Settings are the process-lifetime display preferences. Owned by the app, never persisted
type Settings struct {
	Units     UnitSystem
	ShowFlags bool
}

// Default returns metric units with flags shown
func Default() Settings {
	return Settings{Units: Metric, ShowFlags: true}
}

func (s *Settings) ToggleUnits() {
	if s.Units == Imperial {
		s.Units = Metric
	} else {
		s.Units = Imperial
	}
}

func (s *Settings) ToggleFlags() {
	s.ShowFlags = !s.ShowFlags
}

// FormatTemp renders a Celsius value in the current unit, one decimal
func (s Settings) FormatTemp(celsius float64) string {
	return fmt.Sprintf("%.1f%s", ToDisplayTemp(celsius, s.Units), TempUnit(s.Units))
}

// FormatWind renders a m/s value in the current unit, one decimal
func (s Settings) FormatWind(mps float64) string {
	return fmt.Sprintf("%.1f %s", ToDisplayWind(mps, s.Units), WindUnit(s.Units))
}
