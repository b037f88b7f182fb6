package input

import (
	"github.com/gdamore/tcell/v2"
)

// InputMode selects how keys are interpreted
type InputMode uint8

const (
	ModeNormal InputMode = iota
	ModeSearch
)

// Machine parses key events into intents. In search mode printable keys become
// text input until Enter or Escape returns to normal mode
type Machine struct {
	mode     InputMode
	keyTable *KeyTable
}

// NewMachine creates a machine with the given bindings, or the defaults when nil
func NewMachine(kt *KeyTable) *Machine {
	if kt == nil {
		kt = DefaultKeyTable()
	}
	return &Machine{keyTable: kt}
}

// Mode returns the current mode
func (m *Machine) Mode() InputMode {
	return m.mode
}

// SetMode forces a mode, e.g. when the search box is clicked
func (m *Machine) SetMode(mode InputMode) {
	m.mode = mode
}

// Process converts one key event into an intent
func (m *Machine) Process(ev *tcell.EventKey) Intent {
	if ev.Key() == tcell.KeyCtrlC {
		return Intent{Type: IntentQuit}
	}

	if m.mode == ModeSearch {
		switch ev.Key() {
		case tcell.KeyEscape:
			m.mode = ModeNormal
			return Intent{Type: IntentEscape}
		case tcell.KeyEnter:
			m.mode = ModeNormal
			return Intent{Type: IntentTextConfirm}
		case tcell.KeyBackspace, tcell.KeyBackspace2:
			return Intent{Type: IntentTextBackspace}
		case tcell.KeyRune:
			return Intent{Type: IntentTextChar, Char: ev.Rune()}
		}
		return Intent{}
	}

	it := m.keyTable.Lookup(ev)
	if it == IntentSearchStart {
		m.mode = ModeSearch
	}
	return Intent{Type: it}
}
