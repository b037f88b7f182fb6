// Package input turns terminal key events into semantic intents and tracks
// pointer drag gestures
package input

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System
	IntentQuit   // Ctrl+C, q
	IntentEscape // ESC (context-dependent)

	// Pets
	IntentSelectNext     // Tab, j
	IntentSelectPrev     // Shift+Tab, k
	IntentClearSelection // x
	IntentRemoveSelected // Delete, d

	// Views
	IntentTabHome     // 1
	IntentTabStats    // 2
	IntentTabSettings // 3
	IntentTabAbout    // 4
	IntentPanelGrow   // +
	IntentPanelShrink // -

	// Settings
	IntentToggleUnits      // u
	IntentToggleFlags      // f
	IntentToggleAutoRotate // r

	// Radio and antenna
	IntentRadioPlayPause   // p, space
	IntentRadioNextStation // n
	IntentVolumeUp         // ]
	IntentVolumeDown       // [
	IntentToggleMute       // m
	IntentBoing            // b

	// Country search
	IntentSearchStart   // /
	IntentTextChar      // printable rune while searching
	IntentTextBackspace // Backspace while searching
	IntentTextConfirm   // Enter while searching
)

// Intent is one parsed user action
type Intent struct {
	Type IntentType
	Char rune // IntentTextChar only
}
