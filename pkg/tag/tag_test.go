package tag

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodesRoundTrip(t *testing.T) {
	for _, a := range Actions() {
		assert.Equal(t, a, ActionOf(a.Code()), a.String())
		assert.Equal(t, a, ParseAction(a.String()))
		assert.LessOrEqual(t, a.Code(), uint16(ActionMask))
	}
	for _, c := range Components() {
		assert.Equal(t, c, ComponentOf(c.Code()), c.String())
		assert.Equal(t, c, ParseComponent(c.String()))
	}
	for _, s := range States() {
		assert.Equal(t, s, StateOf(s.Code()), s.String())
		assert.Equal(t, s, ParseState(s.String()))
		assert.Zero(t, s.Code()&^StateMask, "state %s must only use the top nibble", s)
	}
	for _, m := range Modes() {
		assert.Equal(t, m, ModeOf(m.Code()), m.String())
		assert.Equal(t, m, ParseMode(m.String()))
		assert.Zero(t, m.Code()&0x00ff, "mode %s must be a multiple of 0x0100", m)
	}
}

func TestUnknownFallsBackToDefault(t *testing.T) {
	assert.Equal(t, ActionNone, ActionOf(0x0fff))
	assert.Equal(t, ComponentGeneric, ComponentOf(0xbeef))
	assert.Equal(t, StateNeutral, StateOf(0xe000))
	assert.Equal(t, ModeStill, ModeOf(0x0700))

	assert.Equal(t, ActionNone, ParseAction("teleport"))
	assert.Equal(t, ComponentGeneric, ParseComponent(""))
	assert.Equal(t, StateNeutral, ParseState("limbo"))
	assert.Equal(t, ModeStill, ParseMode("warp"))

	_, ok := LookupMode("warp")
	assert.False(t, ok)
	m, ok := LookupMode("flowing")
	assert.True(t, ok)
	assert.Equal(t, ModeFlowing, m)
}

func TestActionOfIgnoresBitsAboveField(t *testing.T) {
	assert.Equal(t, ActionClick, ActionOf(0x9005))
}

func TestParseIsLenient(t *testing.T) {
	assert.Equal(t, ModeFlowInward, ParseMode("Flow-Inward"))
	assert.Equal(t, ModeZeroPointField, ParseMode(" zero point field "))
	assert.Equal(t, StateActive, ParseState("ACTIVE"))
}

func TestModeFamilies(t *testing.T) {
	families := map[Mode][]Mode{}
	for _, m := range Modes() {
		if m == ModeStill {
			continue
		}
		families[m.Family()] = append(families[m.Family()], m)
	}
	require.Len(t, families, 5)
	for top, members := range families {
		assert.Len(t, members, 5, "family %s", top)
		assert.Equal(t, top, members[0])
	}
	assert.Equal(t, ModeEnergy, ModeEnergyRaw.Family())
	assert.Equal(t, ModeStill, ModeStill.Family())
}

func TestDefaults(t *testing.T) {
	d := Defaults()
	assert.Equal(t, ActionNone, d.Action)
	assert.Equal(t, ComponentGeneric, d.Component)
	assert.Equal(t, StateNeutral, d.State)
	assert.Equal(t, ModeStill, d.Mode)
	assert.Equal(t, d, ParseSet("", "", "", ""))
	assert.Equal(t, "action=none component=generic state=neutral vortex_mode=still", d.String())
}
