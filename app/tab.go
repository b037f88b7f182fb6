package app

import (
	"fmt"
	"strings"
)

// Tab is the main view selected in the sidebar
type Tab int

const (
	TabHome Tab = iota
	TabStats
	TabSettings
	TabAbout
)

var tabNames = [...]string{"home", "pets", "settings", "about"}

// Tabs returns every tab in sidebar order
func Tabs() []Tab {
	return []Tab{TabHome, TabStats, TabSettings, TabAbout}
}

func (t Tab) String() string {
	if t < 0 || int(t) >= len(tabNames) {
		return "unknown"
	}
	return tabNames[t]
}

// Label is the sidebar caption
func (t Tab) Label() string {
	switch t {
	case TabHome:
		return "Home"
	case TabStats:
		return "Statistics"
	case TabSettings:
		return "Settings"
	case TabAbout:
		return "About"
	}
	return "?"
}

// MarshalText encodes the tab by name
func (t Tab) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText decodes a tab name
func (t *Tab) UnmarshalText(b []byte) error {
	v, err := ParseTab(string(b))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// ParseTab accepts a tab name, case-insensitive. "stats" is an alias of "pets"
func ParseTab(s string) (Tab, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "stats" {
		return TabStats, nil
	}
	for i, name := range tabNames {
		if name == s {
			return Tab(i), nil
		}
	}
	return TabHome, fmt.Errorf("unknown tab %q", s)
}
