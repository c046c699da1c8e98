// Package decoder recovers what an identifier carries: its version marker,
// the embedded tags and timestamp when present, and a set of heuristic
// quality scores.
//
// Tags are only meaningful when Analysis.Tagged is true. For every other
// version the tags are the registry defaults, because an untagged identifier
// and one whose tags happen to equal the defaults look the same.
package decoder

import (
	"time"

	"github.com/ceccec/zeropoint/pkg/identifier"
	"github.com/ceccec/zeropoint/pkg/tag"
)

// Compatible-layout decode masks. They do not mirror the encode ranges:
// the State mask keeps the top nibble, the Mode mask only bits 13-14.
const (
	compatStateMask = 0xf000
	compatModeMask  = 0x6000
)

// Analysis is the result of decoding one identifier.
type Analysis struct {
	ID        identifier.ID
	Version   identifier.Version
	Scheme    string
	Tagged    bool
	Tags      tag.Set
	Timestamp *time.Time
	Scores    Scores
}

// Decode parses text and analyzes it. The only error is one wrapping
// identifier.ErrMalformedIdentifier.
func Decode(text string) (Analysis, error) {
	id, err := identifier.Parse(text)
	if err != nil {
		return Analysis{}, err
	}
	return Analyze(id), nil
}

// Analyze inspects an already parsed identifier.
func Analyze(id identifier.ID) Analysis {
	v := id.Version()
	a := Analysis{
		ID:      id,
		Version: v,
		Scheme:  id.Scheme(),
		Tagged:  v.Tagged(),
		Tags:    Tags(id),
		Scores:  ScoresFor(v),
	}
	if v.TimeBearing() {
		ts := time.Unix(id.Timestamp(), 0).UTC()
		a.Timestamp = &ts
	}
	return a
}

// Tags extracts the tag set according to the version marker. Untagged
// versions yield tag.Defaults().
func Tags(id identifier.ID) tag.Set {
	switch id.Version() {
	case identifier.VersionPattern:
		g5 := uint16(id.Group5())
		return tag.Set{
			Action:    tag.ActionOf(id.Group3()),
			Component: tag.ComponentOf(id.Group4()),
			State:     tag.StateOf(g5 & compatStateMask),
			Mode:      tag.ModeOf(g5 & compatModeMask),
		}
	case identifier.VersionPatternLossless:
		g5 := id.Group5()
		return tag.Set{
			Action:    tag.ActionOf(id.Group3()),
			Component: tag.ComponentOf(id.Group4()),
			State:     tag.StateOf(uint16(g5>>identifier.LosslessStateShift&0xf) << 12),
			Mode:      tag.ModeOf(uint16(g5>>identifier.LosslessModeShift&0xff) << 8),
		}
	case identifier.VersionDerived:
		return tag.Set{
			Action:    tag.ActionOf(id.Group3()),
			Component: tag.ComponentOf(id.Group4()),
			Mode:      tag.ModeOf(uint16(id.Group5()>>identifier.DerivedModeShift&0xff) << 8),
		}
	default:
		return tag.Defaults()
	}
}
