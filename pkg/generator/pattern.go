package generator

import (
	"strings"

	"github.com/ceccec/zeropoint/pkg/identifier"
	"github.com/ceccec/zeropoint/pkg/tag"
)

// Layout selects how State and Mode are packed into group5.
type Layout int

const (
	// LayoutCompat ORs State, Mode and 12 random bits into the low 16 bits
	// of group5 (version 9). The State and Mode ranges intersect, so only
	// Action and Component survive a round trip exactly. This is the layout
	// every previously issued pattern identifier uses.
	LayoutCompat Layout = iota
	// LayoutLossless gives Mode and State their own windows at the top of
	// group5 (version b) and round-trips all four tags.
	LayoutLossless
)

// ParseLayout maps "compat"/"lossless" to a Layout; anything else is
// LayoutCompat.
func ParseLayout(s string) Layout {
	if strings.EqualFold(strings.TrimSpace(s), "lossless") {
		return LayoutLossless
	}
	return LayoutCompat
}

func (l Layout) String() string {
	if l == LayoutLossless {
		return "lossless"
	}
	return "compat"
}

// PatternGenerator embeds tags and a timestamp into the identifier bits.
//
// Compatible layout:
//
//	group1  ts bits 0-31
//	group2  ts bits 32-47
//	group3  9 | action & 0x0fff
//	group4  component
//	group5  state | mode | rand12
//
// Lossless layout differs in the marker (b) and group5:
//
//	group5  mode>>8 << 40 | state>>12 << 36 | rand36
type PatternGenerator struct {
	src    Source
	layout Layout
}

// NewPatternGenerator creates a new PatternGenerator.
func NewPatternGenerator(opts ...Option) *PatternGenerator {
	o := buildOptions(opts)
	return &PatternGenerator{src: o.src, layout: o.layout}
}

// Layout returns the configured layout.
func (g *PatternGenerator) Layout() Layout { return g.layout }

func (g *PatternGenerator) Version() identifier.Version {
	if g.layout == LayoutLossless {
		return identifier.VersionPatternLossless
	}
	return identifier.VersionPattern
}

// Generate encodes req.Tags at req.Timestamp (or now).
func (g *PatternGenerator) Generate(req Request) identifier.ID {
	return g.Encode(req.Tags, timestamp(req, g.src))
}

// Encode embeds set at the given unix-seconds timestamp.
func (g *PatternGenerator) Encode(set tag.Set, ts int64) identifier.ID {
	g4 := set.Component.Code()
	if g.layout == LayoutLossless {
		g3 := identifier.Marker(identifier.VersionPatternLossless, set.Action.Code())
		g5 := uint64(set.Mode.Step())<<identifier.LosslessModeShift |
			uint64(set.State.Nibble())<<identifier.LosslessStateShift |
			g.src.Bits(identifier.LosslessRandomBits)
		return identifier.WithTimestamp(ts, g3, g4, g5)
	}
	g3 := identifier.Marker(identifier.VersionPattern, set.Action.Code())
	g5 := uint64(set.State.Code()|set.Mode.Code()) | g.src.Bits(12)
	return identifier.WithTimestamp(ts, g3, g4, g5)
}

func (g *PatternGenerator) GenerateBatch(req Request, count int) []identifier.ID {
	return generateBatch(g, req, count)
}

// Validate accepts both pattern layouts.
func (g *PatternGenerator) Validate(id string) (bool, string) {
	return validateVersion(id, g.Version(), identifier.VersionPattern, identifier.VersionPatternLossless)
}
