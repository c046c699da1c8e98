package tag

// Action is what happened. Codes fit in 12 bits.
type Action uint16

// ActionMask is the width of an Action code inside an identifier.
const ActionMask = 0x0fff

const (
	ActionNone      Action = 0x000
	ActionCreate    Action = 0x001
	ActionRead      Action = 0x002
	ActionUpdate    Action = 0x003
	ActionDelete    Action = 0x004
	ActionClick     Action = 0x005
	ActionSubmit    Action = 0x006
	ActionNavigate  Action = 0x007
	ActionSearch    Action = 0x008
	ActionUpload    Action = 0x009
	ActionDownload  Action = 0x00a
	ActionSync      Action = 0x00b
	ActionTransform Action = 0x00c
	ActionObserve   Action = 0x00d
)

var actions = newTable(ActionNone,
	entry[Action]{ActionNone, "none"},
	entry[Action]{ActionCreate, "create"},
	entry[Action]{ActionRead, "read"},
	entry[Action]{ActionUpdate, "update"},
	entry[Action]{ActionDelete, "delete"},
	entry[Action]{ActionClick, "click"},
	entry[Action]{ActionSubmit, "submit"},
	entry[Action]{ActionNavigate, "navigate"},
	entry[Action]{ActionSearch, "search"},
	entry[Action]{ActionUpload, "upload"},
	entry[Action]{ActionDownload, "download"},
	entry[Action]{ActionSync, "sync"},
	entry[Action]{ActionTransform, "transform"},
	entry[Action]{ActionObserve, "observe"},
)

// Code returns the numeric code.
func (a Action) Code() uint16 { return uint16(a) }

func (a Action) String() string { return actions.symbol(a) }

// Known reports whether a is a registered Action.
func (a Action) Known() bool { return actions.known(a) }

// ActionOf maps a code back to its Action. Bits above the 12-bit field are
// ignored; unregistered codes yield ActionNone.
func ActionOf(code uint16) Action { return actions.of(Action(code & ActionMask)) }

// ParseAction resolves a symbol, falling back to ActionNone.
func ParseAction(symbol string) Action {
	a, _ := actions.lookup(symbol)
	return a
}

// LookupAction resolves a symbol and reports whether it was registered.
func LookupAction(symbol string) (Action, bool) { return actions.lookup(symbol) }

// Actions lists every registered Action in code order.
func Actions() []Action { return actions.all() }
