package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/weatherpets/vmath"
)

func runeKey(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func key(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func TestDrag_Lifecycle(t *testing.T) {
	var d Drag
	_, _, ok := d.Move(1, 1)
	assert.False(t, ok)

	d.Start(10, 20)
	assert.True(t, d.Active())

	total, step, ok := d.Move(13, 18)
	require.True(t, ok)
	assert.Equal(t, vmath.Vec2{X: 3, Y: -2}, total)
	assert.Equal(t, vmath.Vec2{X: 3, Y: -2}, step)

	total, step, _ = d.Move(15, 18)
	assert.Equal(t, vmath.Vec2{X: 5, Y: -2}, total)
	assert.Equal(t, vmath.Vec2{X: 2, Y: 0}, step)

	assert.True(t, d.End())
	assert.False(t, d.End())
	assert.False(t, d.Active())
}

func TestMachine_NormalBindings(t *testing.T) {
	m := NewMachine(nil)
	assert.Equal(t, IntentToggleUnits, m.Process(runeKey('u')).Type)
	assert.Equal(t, IntentSelectNext, m.Process(key(tcell.KeyTab)).Type)
	assert.Equal(t, IntentQuit, m.Process(key(tcell.KeyCtrlC)).Type)
	assert.Equal(t, IntentNone, m.Process(runeKey('z')).Type)
}

func TestMachine_SearchMode(t *testing.T) {
	m := NewMachine(nil)
	assert.Equal(t, IntentSearchStart, m.Process(runeKey('/')).Type)
	assert.Equal(t, ModeSearch, m.Mode())

	// Bound runes become text while searching
	it := m.Process(runeKey('u'))
	assert.Equal(t, IntentTextChar, it.Type)
	assert.Equal(t, 'u', it.Char)

	assert.Equal(t, IntentTextBackspace, m.Process(key(tcell.KeyBackspace2)).Type)
	assert.Equal(t, IntentTextConfirm, m.Process(key(tcell.KeyEnter)).Type)
	assert.Equal(t, ModeNormal, m.Mode())

	m.SetMode(ModeSearch)
	assert.Equal(t, IntentEscape, m.Process(key(tcell.KeyEscape)).Type)
	assert.Equal(t, ModeNormal, m.Mode())
}

func TestParseBindings_MergeOverrides(t *testing.T) {
	override, err := ParseBindings("z=boing, space=none, F5=tab_stats")
	require.NoError(t, err)

	kt := MergeKeyTable(DefaultKeyTable(), override)
	assert.Equal(t, IntentBoing, kt.Runes['z'])
	_, bound := kt.Runes[' ']
	assert.False(t, bound)
	assert.Equal(t, IntentTabStats, kt.SpecialKeys[tcell.KeyF5])

	// Base table untouched
	assert.Equal(t, IntentRadioPlayPause, DefaultKeyTable().Runes[' '])
}

func TestParseBindings_Errors(t *testing.T) {
	_, err := ParseBindings("z=fly")
	assert.ErrorContains(t, err, "unknown action")

	_, err = ParseBindings("hyperkey=boing")
	assert.ErrorContains(t, err, "unknown key name")

	_, err = ParseBindings("zboing")
	assert.ErrorContains(t, err, "expected key=action")

	kt, err := ParseBindings("  ")
	require.NoError(t, err)
	assert.Empty(t, kt.Runes)
}

func TestActionNames_AllResolve(t *testing.T) {
	for _, name := range ActionNames() {
		it, ok := ActionIntent(name)
		assert.True(t, ok)
		assert.NotEqual(t, IntentNone, it, name)
	}
}
