// Package tag is the registry of the four semantic tag dimensions that a
// pattern identifier can carry: Action, Component, State and VortexMode.
//
// Every tag is a symbol bound to a fixed numeric code. Identifiers are long
// lived and decoding depends on those codes, so a published code is never
// reassigned; new tags only ever take unused codes.
//
// Lookups never fail. An unknown code or symbol resolves to the documented
// default of its dimension:
//
//	Action     none     0x000
//	Component  generic  0x0000
//	State      neutral  0x0000
//	VortexMode still    0x0000
//
// The tables are built at init and are read-only afterwards, so every
// function here is safe for concurrent use without locking.
package tag

import "fmt"

// Set is one value from each tag dimension. The zero Set holds the defaults.
type Set struct {
	Action    Action
	Component Component
	State     State
	Mode      Mode
}

// Defaults returns the all-defaults Set.
func Defaults() Set { return Set{} }

// ParseSet resolves four symbols leniently. Empty or unknown symbols become
// the dimension default.
func ParseSet(action, component, state, mode string) Set {
	return Set{
		Action:    ParseAction(action),
		Component: ParseComponent(component),
		State:     ParseState(state),
		Mode:      ParseMode(mode),
	}
}

func (s Set) String() string {
	return fmt.Sprintf("action=%s component=%s state=%s vortex_mode=%s",
		s.Action, s.Component, s.State, s.Mode)
}
