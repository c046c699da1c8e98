package tag

// Mode is the vortex mode. Codes are spaced 0x0100 apart across the whole
// 16-bit range and grouped in families of five: a top-level mode whose low
// byte is zero followed by four sub-modes.
type Mode uint16

// FamilyMask selects the top-level mode of a family.
const FamilyMask = 0xf000

const (
	ModeStill Mode = 0x0000

	ModeFlowing      Mode = 0x2000
	ModeFlowInward   Mode = 0x2100
	ModeFlowOutward  Mode = 0x2200
	ModeFlowSpiral   Mode = 0x2300
	ModeFlowToroidal Mode = 0x2400

	ModeResonating           Mode = 0x4000
	ModeResonanceHarmonic    Mode = 0x4100
	ModeResonanceStanding    Mode = 0x4200
	ModeResonanceSympathetic Mode = 0x4300
	ModeResonanceFeedback    Mode = 0x4400

	ModeConsciousness         Mode = 0x6000
	ModeConsciousnessAware    Mode = 0x6100
	ModeConsciousnessFocused  Mode = 0x6200
	ModeConsciousnessExpanded Mode = 0x6300
	ModeConsciousnessUnified  Mode = 0x6400

	ModeEnergy          Mode = 0x9000
	ModeEnergyRaw       Mode = 0x9100
	ModeEnergyKinetic   Mode = 0x9200
	ModeEnergyPotential Mode = 0x9300
	ModeEnergyRadiant   Mode = 0x9400

	ModeZeroPoint            Mode = 0xf000
	ModeZeroPointVacuum      Mode = 0xf100
	ModeZeroPointFluctuation Mode = 0xf200
	ModeZeroPointField       Mode = 0xf300
	ModeZeroPointSingularity Mode = 0xf400
)

var modes = newTable(ModeStill,
	entry[Mode]{ModeStill, "still"},
	entry[Mode]{ModeFlowing, "flowing"},
	entry[Mode]{ModeFlowInward, "flow_inward"},
	entry[Mode]{ModeFlowOutward, "flow_outward"},
	entry[Mode]{ModeFlowSpiral, "flow_spiral"},
	entry[Mode]{ModeFlowToroidal, "flow_toroidal"},
	entry[Mode]{ModeResonating, "resonating"},
	entry[Mode]{ModeResonanceHarmonic, "resonance_harmonic"},
	entry[Mode]{ModeResonanceStanding, "resonance_standing"},
	entry[Mode]{ModeResonanceSympathetic, "resonance_sympathetic"},
	entry[Mode]{ModeResonanceFeedback, "resonance_feedback"},
	entry[Mode]{ModeConsciousness, "consciousness"},
	entry[Mode]{ModeConsciousnessAware, "consciousness_aware"},
	entry[Mode]{ModeConsciousnessFocused, "consciousness_focused"},
	entry[Mode]{ModeConsciousnessExpanded, "consciousness_expanded"},
	entry[Mode]{ModeConsciousnessUnified, "consciousness_unified"},
	entry[Mode]{ModeEnergy, "energy"},
	entry[Mode]{ModeEnergyRaw, "energy_raw"},
	entry[Mode]{ModeEnergyKinetic, "energy_kinetic"},
	entry[Mode]{ModeEnergyPotential, "energy_potential"},
	entry[Mode]{ModeEnergyRadiant, "energy_radiant"},
	entry[Mode]{ModeZeroPoint, "zero_point"},
	entry[Mode]{ModeZeroPointVacuum, "zero_point_vacuum"},
	entry[Mode]{ModeZeroPointFluctuation, "zero_point_fluctuation"},
	entry[Mode]{ModeZeroPointField, "zero_point_field"},
	entry[Mode]{ModeZeroPointSingularity, "zero_point_singularity"},
)

// Code returns the numeric code.
func (m Mode) Code() uint16 { return uint16(m) }

// Step returns the 8-bit index of m (its code shifted down by 8).
func (m Mode) Step() uint8 { return uint8(m >> 8) }

// Family returns the top-level mode of m's family. ModeStill is its own
// family.
func (m Mode) Family() Mode { return modes.of(m & FamilyMask) }

func (m Mode) String() string { return modes.symbol(m) }

// Known reports whether m is a registered Mode.
func (m Mode) Known() bool { return modes.known(m) }

// ModeOf maps a code back to its Mode, or ModeStill.
func ModeOf(code uint16) Mode { return modes.of(Mode(code)) }

// ParseMode resolves a symbol, falling back to ModeStill.
func ParseMode(symbol string) Mode {
	m, _ := modes.lookup(symbol)
	return m
}

// LookupMode resolves a symbol and reports whether it was registered.
func LookupMode(symbol string) (Mode, bool) { return modes.lookup(symbol) }

// Modes lists every registered Mode in code order.
func Modes() []Mode { return modes.all() }
