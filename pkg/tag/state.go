package tag

// State is the lifecycle state of the tagged thing. Each code occupies only
// the top nibble of a 16-bit field.
type State uint16

// StateMask selects the State nibble.
const StateMask = 0xf000

const (
	StateNeutral    State = 0x0000
	StatePending    State = 0x1000
	StateActive     State = 0x2000
	StateProcessing State = 0x3000
	StateWaiting    State = 0x4000
	StateComplete   State = 0x5000
	StateSuspended  State = 0x6000
	StateFailed     State = 0x7000
	StateArchived   State = 0x8000
)

var states = newTable(StateNeutral,
	entry[State]{StateNeutral, "neutral"},
	entry[State]{StatePending, "pending"},
	entry[State]{StateActive, "active"},
	entry[State]{StateProcessing, "processing"},
	entry[State]{StateWaiting, "waiting"},
	entry[State]{StateComplete, "complete"},
	entry[State]{StateSuspended, "suspended"},
	entry[State]{StateFailed, "failed"},
	entry[State]{StateArchived, "archived"},
)

// Code returns the numeric code.
func (s State) Code() uint16 { return uint16(s) }

// Nibble returns the 4-bit index of s (its code shifted down by 12).
func (s State) Nibble() uint8 { return uint8(s >> 12) }

func (s State) String() string { return states.symbol(s) }

// Known reports whether s is a registered State.
func (s State) Known() bool { return states.known(s) }

// StateOf maps a code back to its State, or StateNeutral.
func StateOf(code uint16) State { return states.of(State(code)) }

// ParseState resolves a symbol, falling back to StateNeutral.
func ParseState(symbol string) State {
	s, _ := states.lookup(symbol)
	return s
}

// LookupState resolves a symbol and reports whether it was registered.
func LookupState(symbol string) (State, bool) { return states.lookup(symbol) }

// States lists every registered State in code order.
func States() []State { return states.all() }
