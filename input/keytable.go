package input

import (
	"maps"

	"github.com/gdamore/tcell/v2"
)

// KeyTable maps keys to intents in normal mode
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, function keys)
	SpecialKeys map[tcell.Key]IntentType

	// Rune bindings
	Runes map[rune]IntentType
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]IntentType{
			tcell.KeyCtrlC:   IntentQuit,
			tcell.KeyEscape:  IntentEscape,
			tcell.KeyTab:     IntentSelectNext,
			tcell.KeyBacktab: IntentSelectPrev,
			tcell.KeyDown:    IntentSelectNext,
			tcell.KeyUp:      IntentSelectPrev,
			tcell.KeyDelete:  IntentRemoveSelected,
			tcell.KeyF1:      IntentTabHome,
			tcell.KeyF2:      IntentTabStats,
			tcell.KeyF3:      IntentTabSettings,
			tcell.KeyF4:      IntentTabAbout,
		},
		Runes: map[rune]IntentType{
			'q': IntentQuit,
			'j': IntentSelectNext,
			'k': IntentSelectPrev,
			'x': IntentClearSelection,
			'd': IntentRemoveSelected,
			'1': IntentTabHome,
			'2': IntentTabStats,
			'3': IntentTabSettings,
			'4': IntentTabAbout,
			'+': IntentPanelGrow,
			'-': IntentPanelShrink,
			'u': IntentToggleUnits,
			'f': IntentToggleFlags,
			'r': IntentToggleAutoRotate,
			'p': IntentRadioPlayPause,
			' ': IntentRadioPlayPause,
			'n': IntentRadioNextStation,
			']': IntentVolumeUp,
			'[': IntentVolumeDown,
			'm': IntentToggleMute,
			'b': IntentBoing,
			'/': IntentSearchStart,
		},
	}
}

// Clone returns a deep copy
func (kt *KeyTable) Clone() *KeyTable {
	return &KeyTable{
		SpecialKeys: maps.Clone(kt.SpecialKeys),
		Runes:       maps.Clone(kt.Runes),
	}
}

// Lookup resolves a key event in normal mode
func (kt *KeyTable) Lookup(ev *tcell.EventKey) IntentType {
	if ev.Key() == tcell.KeyRune {
		return kt.Runes[ev.Rune()]
	}
	return kt.SpecialKeys[ev.Key()]
}
