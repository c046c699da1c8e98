package generator

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/ceccec/zeropoint/pkg/identifier"
)

// RandomGenerator generates fully random identifiers (version 4).
type RandomGenerator struct {
	src Source
}

// NewRandomGenerator creates a new RandomGenerator.
func NewRandomGenerator(opts ...Option) *RandomGenerator {
	return &RandomGenerator{src: buildOptions(opts).src}
}

func (g *RandomGenerator) Version() identifier.Version { return identifier.VersionRandom }

// Generate ignores req.
func (g *RandomGenerator) Generate(Request) identifier.ID {
	return g.Next()
}

// Next returns a fresh random identifier.
func (g *RandomGenerator) Next() identifier.ID {
	id, err := uuid.NewRandomFromReader(g.src.Rand)
	if err != nil {
		panic(fmt.Errorf("generator: failed to generate random identifier: %w", err))
	}
	return identifier.ID(id)
}

func (g *RandomGenerator) GenerateBatch(req Request, count int) []identifier.ID {
	return generateBatch(g, req, count)
}

func (g *RandomGenerator) Validate(id string) (bool, string) {
	return validateVersion(id, identifier.VersionRandom)
}
