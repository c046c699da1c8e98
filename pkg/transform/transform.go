// Package transform derives new identifiers from existing ones. Inputs are
// never modified; every operation returns a new value.
package transform

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"

	"github.com/ceccec/zeropoint/pkg/generator"
	"github.com/ceccec/zeropoint/pkg/identifier"
	"github.com/ceccec/zeropoint/pkg/tag"
)

// Transformer applies vortex modes to identifiers.
type Transformer struct {
	src    generator.Source
	random *generator.RandomGenerator
}

// New creates a Transformer. Only the WithSource option is read.
func New(opts ...generator.Option) *Transformer {
	src := generator.SourceFrom(opts...)
	return &Transformer{
		src:    src,
		random: generator.NewRandomGenerator(generator.WithSource(src)),
	}
}

// ApplyMode returns a derived identifier (version d) for id under mode.
//
// group1/group2 keep the input timestamp when the input carries one and take
// the current time otherwise. group3/group4 keep the input Action and
// Component bits when the input is tagged and are zero otherwise. group5
// holds mode>>8 in bits 40-47 above 40 random bits mixed with a hash of the
// input and the mode.
//
// ModeEnergyRaw ignores the input entirely and returns a new random
// identifier.
func (t *Transformer) ApplyMode(id identifier.ID, mode tag.Mode) identifier.ID {
	if mode == tag.ModeEnergyRaw {
		return t.random.Next()
	}

	v := id.Version()
	ts := t.src.Unix()
	if v.TimeBearing() {
		ts = id.Timestamp()
	}

	var action, component uint16
	if v.Tagged() {
		action = id.Group3() & tag.ActionMask
		component = id.Group4()
	}

	var buf [18]byte
	copy(buf[:16], id[:])
	binary.BigEndian.PutUint16(buf[16:], mode.Code())
	mix := xxhash.Sum64(buf[:])

	tail := (t.src.Uint64() ^ mix) & (1<<identifier.DerivedRandomBits - 1)
	g5 := uint64(mode.Step())<<identifier.DerivedModeShift | tail

	g3 := identifier.Marker(identifier.VersionDerived, action)
	return identifier.WithTimestamp(ts, g3, component, g5)
}

// CollapseToVoid returns the void identifier whatever the input.
func (t *Transformer) CollapseToVoid(identifier.ID) identifier.ID {
	return identifier.Void()
}

// CollapseToVoid is the package-level form of Transformer.CollapseToVoid.
func CollapseToVoid(identifier.ID) identifier.ID {
	return identifier.Void()
}
