package tag

// Component is what the action happened to. Codes use the full 16 bits.
type Component uint16

const (
	ComponentGeneric    Component = 0x0000
	ComponentRecord     Component = 0x0001
	ComponentView       Component = 0x0002
	ComponentForm       Component = 0x0003
	ComponentButton     Component = 0x0004
	ComponentAPI        Component = 0x0005
	ComponentJob        Component = 0x0006
	ComponentCache      Component = 0x0007
	ComponentStream     Component = 0x0008
	ComponentText       Component = 0x0009
	ComponentNumber     Component = 0x000a
	ComponentCollection Component = 0x000b
	ComponentDocument   Component = 0x000c
	ComponentFlag       Component = 0x000d
)

var components = newTable(ComponentGeneric,
	entry[Component]{ComponentGeneric, "generic"},
	entry[Component]{ComponentRecord, "record"},
	entry[Component]{ComponentView, "view"},
	entry[Component]{ComponentForm, "form"},
	entry[Component]{ComponentButton, "button"},
	entry[Component]{ComponentAPI, "api"},
	entry[Component]{ComponentJob, "job"},
	entry[Component]{ComponentCache, "cache"},
	entry[Component]{ComponentStream, "stream"},
	entry[Component]{ComponentText, "text"},
	entry[Component]{ComponentNumber, "number"},
	entry[Component]{ComponentCollection, "collection"},
	entry[Component]{ComponentDocument, "document"},
	entry[Component]{ComponentFlag, "flag"},
)

// Code returns the numeric code.
func (c Component) Code() uint16 { return uint16(c) }

func (c Component) String() string { return components.symbol(c) }

// Known reports whether c is a registered Component.
func (c Component) Known() bool { return components.known(c) }

// ComponentOf maps a code back to its Component, or ComponentGeneric.
func ComponentOf(code uint16) Component { return components.of(Component(code)) }

// ParseComponent resolves a symbol, falling back to ComponentGeneric.
func ParseComponent(symbol string) Component {
	c, _ := components.lookup(symbol)
	return c
}

// LookupComponent resolves a symbol and reports whether it was registered.
func LookupComponent(symbol string) (Component, bool) { return components.lookup(symbol) }

// Components lists every registered Component in code order.
func Components() []Component { return components.all() }
