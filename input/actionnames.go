package input

// actionRegistry maps canonical action names to intents.
// Used by the keymap override parser to resolve action strings
var actionRegistry = map[string]IntentType{
	// Unbind sentinel
	"none": IntentNone,

	"quit":   IntentQuit,
	"escape": IntentEscape,

	"select_next":     IntentSelectNext,
	"select_prev":     IntentSelectPrev,
	"clear_selection": IntentClearSelection,
	"remove_selected": IntentRemoveSelected,

	"tab_home":     IntentTabHome,
	"tab_stats":    IntentTabStats,
	"tab_settings": IntentTabSettings,
	"tab_about":    IntentTabAbout,
	"panel_grow":   IntentPanelGrow,
	"panel_shrink": IntentPanelShrink,

	"toggle_units":       IntentToggleUnits,
	"toggle_flags":       IntentToggleFlags,
	"toggle_auto_rotate": IntentToggleAutoRotate,

	"radio_play_pause":   IntentRadioPlayPause,
	"radio_next_station": IntentRadioNextStation,
	"volume_up":          IntentVolumeUp,
	"volume_down":        IntentVolumeDown,
	"toggle_mute":        IntentToggleMute,
	"boing":              IntentBoing,

	"search": IntentSearchStart,
}

// ActionIntent resolves a canonical action name
func ActionIntent(name string) (IntentType, bool) {
	it, ok := actionRegistry[name]
	return it, ok
}

// ActionNames returns all registered action names except the unbind sentinel
func ActionNames() []string {
	names := make([]string, 0, len(actionRegistry))
	for name := range actionRegistry {
		if name != "none" {
			names = append(names, name)
		}
	}
	return names
}
