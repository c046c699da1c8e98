package generator

import (
	"github.com/ceccec/zeropoint/pkg/identifier"
)

// TimeOrderedGenerator generates identifiers that sort by their one-second
// timestamp. group4/group5 hold a 64-bit node value drawn once per
// generator, so identifiers from one generator within the same second differ
// only in the 12 random bits of group3. Such collisions are possible and are
// not prevented.
type TimeOrderedGenerator struct {
	src  Source
	node uint64
}

// NewTimeOrderedGenerator creates a new TimeOrderedGenerator with a fresh
// random node.
func NewTimeOrderedGenerator(opts ...Option) *TimeOrderedGenerator {
	src := buildOptions(opts).src
	return &TimeOrderedGenerator{src: src, node: src.Uint64()}
}

func (g *TimeOrderedGenerator) Version() identifier.Version { return identifier.VersionTimeOrdered }

// Generate honours req.Timestamp.
func (g *TimeOrderedGenerator) Generate(req Request) identifier.ID {
	ts := timestamp(req, g.src)
	g3 := identifier.Marker(identifier.VersionTimeOrdered, uint16(g.src.Bits(12)))
	return identifier.WithTimestamp(ts, g3, uint16(g.node>>48), g.node)
}

func (g *TimeOrderedGenerator) GenerateBatch(req Request, count int) []identifier.ID {
	return generateBatch(g, req, count)
}

func (g *TimeOrderedGenerator) Validate(id string) (bool, string) {
	return validateVersion(id, identifier.VersionTimeOrdered)
}

// TimeOrderedRandomGenerator places the timestamp like TimeOrderedGenerator
// but redraws every low-order bit on each call. Uniqueness within a second
// is probabilistic only.
type TimeOrderedRandomGenerator struct {
	src Source
}

// NewTimeOrderedRandomGenerator creates a new TimeOrderedRandomGenerator.
func NewTimeOrderedRandomGenerator(opts ...Option) *TimeOrderedRandomGenerator {
	return &TimeOrderedRandomGenerator{src: buildOptions(opts).src}
}

func (g *TimeOrderedRandomGenerator) Version() identifier.Version {
	return identifier.VersionTimeOrderedRandom
}

// Generate honours req.Timestamp.
func (g *TimeOrderedRandomGenerator) Generate(req Request) identifier.ID {
	ts := timestamp(req, g.src)
	r := g.src.Uint64()
	g3 := identifier.Marker(identifier.VersionTimeOrderedRandom, uint16(r>>52))
	return identifier.WithTimestamp(ts, g3, uint16(r>>36), g.src.Bits(48))
}

func (g *TimeOrderedRandomGenerator) GenerateBatch(req Request, count int) []identifier.ID {
	return generateBatch(g, req, count)
}

func (g *TimeOrderedRandomGenerator) Validate(id string) (bool, string) {
	return validateVersion(id, identifier.VersionTimeOrderedRandom)
}
