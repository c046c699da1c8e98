package generator

import (
	"fmt"

	"github.com/cespare/xxhash/v2"

	"github.com/ceccec/zeropoint/pkg/identifier"
)

// CustomGenerator mixes a hash of caller data into a time-bearing
// identifier. The timestamp and random tail change per call, so unlike
// NameBased the same data does not give the same identifier.
type CustomGenerator struct {
	src Source
}

// NewCustomGenerator creates a new CustomGenerator.
func NewCustomGenerator(opts ...Option) *CustomGenerator {
	return &CustomGenerator{src: buildOptions(opts).src}
}

func (g *CustomGenerator) Version() identifier.Version { return identifier.VersionCustom }

// Generate hashes req.Data and honours req.Timestamp.
func (g *CustomGenerator) Generate(req Request) identifier.ID {
	h := xxhash.Sum64(DataBytes(req.Data))
	ts := timestamp(req, g.src)
	g3 := identifier.Marker(identifier.VersionCustom, uint16(h))
	return identifier.WithTimestamp(ts, g3, uint16(h>>12), g.src.Bits(48))
}

func (g *CustomGenerator) GenerateBatch(req Request, count int) []identifier.ID {
	return generateBatch(g, req, count)
}

func (g *CustomGenerator) Validate(id string) (bool, string) {
	return validateVersion(id, identifier.VersionCustom)
}

// DataBytes renders an arbitrary value for hashing. Byte slices and strings
// are used as-is, everything else goes through fmt's %v, which also covers
// Stringers with a nil receiver.
func DataBytes(v any) []byte {
	switch d := v.(type) {
	case nil:
		return nil
	case []byte:
		return d
	case string:
		return []byte(d)
	default:
		return fmt.Appendf(nil, "%v", d)
	}
}
