package input

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Rune aliases for keys that can't be written as a bare character in a binding list
var runeAliases = map[string]rune{
	"space": ' ',
	"comma": ',',
	"equal": '=',
}

// keyByName resolves tcell key names ("F5", "Backtab", "Ctrl-A") case-insensitively
var keyByName = func() map[string]tcell.Key {
	m := make(map[string]tcell.Key, len(tcell.KeyNames))
	for k, name := range tcell.KeyNames {
		m[strings.ToLower(name)] = k
	}
	return m
}()

// ParseBindings parses a comma-separated "key=action" list into a sparse override
// table. Keys are single characters, rune aliases or tcell key names.
// Returns error on unknown action names or key names
func ParseBindings(list string) (*KeyTable, error) {
	kt := &KeyTable{
		SpecialKeys: make(map[tcell.Key]IntentType),
		Runes:       make(map[rune]IntentType),
	}
	if strings.TrimSpace(list) == "" {
		return kt, nil
	}

	for _, pair := range strings.Split(list, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		keyStr, action, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, fmt.Errorf("binding %q: expected key=action", pair)
		}
		keyStr = strings.TrimSpace(keyStr)

		intent, err := resolveAction(action)
		if err != nil {
			return nil, fmt.Errorf("binding %q: %w", pair, err)
		}

		if r, ok := resolveRune(keyStr); ok {
			kt.Runes[r] = intent
			continue
		}
		k, ok := keyByName[strings.ToLower(keyStr)]
		if !ok {
			return nil, fmt.Errorf("binding %q: unknown key name %q", pair, keyStr)
		}
		kt.SpecialKeys[k] = intent
	}
	return kt, nil
}

func resolveRune(s string) (rune, bool) {
	if r, ok := runeAliases[strings.ToLower(s)]; ok {
		return r, true
	}
	runes := []rune(s)
	if len(runes) == 1 {
		return runes[0], true
	}
	return 0, false
}

func resolveAction(name string) (IntentType, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	it, ok := ActionIntent(name)
	if !ok {
		return IntentNone, fmt.Errorf("unknown action: %q", name)
	}
	return it, nil
}

// MergeKeyTable returns a new KeyTable with base values overridden by override.
// Override entries bound to "none" delete the key from the result
func MergeKeyTable(base, override *KeyTable) *KeyTable {
	result := base.Clone()
	if override == nil {
		return result
	}
	for k, v := range override.Runes {
		if v == IntentNone {
			delete(result.Runes, k)
		} else {
			result.Runes[k] = v
		}
	}
	for k, v := range override.SpecialKeys {
		if v == IntentNone {
			delete(result.SpecialKeys, k)
		} else {
			result.SpecialKeys[k] = v
		}
	}
	return result
}
