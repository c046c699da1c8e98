// Package engine is the entry point to the identifier engine. It wires one
// generator per strategy, the decoder and the transformer behind the
// operations callers rely on:
//
//	Generate(tags)            -> ID (never fails)
//	Decode(text)              -> Analysis | ErrMalformedIdentifier
//	FormatValid(text)         -> bool
//	ApplyMode(id, mode)       -> ID
//	CollapseToVoid(id)        -> ID
//	IsVoid(id)                -> bool
//
// An Engine holds only values fixed at construction and is safe for
// concurrent use.
package engine

import (
	"fmt"
	"sort"

	"github.com/ceccec/zeropoint/pkg/decoder"
	"github.com/ceccec/zeropoint/pkg/generator"
	"github.com/ceccec/zeropoint/pkg/identifier"
	"github.com/ceccec/zeropoint/pkg/infer"
	"github.com/ceccec/zeropoint/pkg/tag"
	"github.com/ceccec/zeropoint/pkg/transform"
)

// Strategy names a generation strategy.
type Strategy string

const (
	StrategyRandom            Strategy = "random"
	StrategyTimeOrdered       Strategy = "time-ordered"
	StrategyTimeOrderedRandom Strategy = "time-ordered-random"
	StrategyNameMD5           Strategy = "name-md5"
	StrategyNameSHA1          Strategy = "name-sha1"
	StrategyCustom            Strategy = "custom"
	StrategyPattern           Strategy = "pattern"

	// StrategyName is not registered itself. It stands for name-md5 or
	// name-sha1 once a Hash is chosen, see NameStrategy.
	StrategyName Strategy = "name"
)

// NameStrategy returns the name-based strategy for h.
func NameStrategy(h generator.Hash) Strategy {
	if h == generator.HashMD5 {
		return StrategyNameMD5
	}
	return StrategyNameSHA1
}

// Engine is the identifier engine.
type Engine struct {
	generators  map[Strategy]generator.Generator
	pattern     *generator.PatternGenerator
	transformer *transform.Transformer
}

// New assembles an Engine. The options are passed to every strategy, so
// WithSource, WithLayout and WithNamespace apply engine-wide.
func New(opts ...generator.Option) *Engine {
	pattern := generator.NewPatternGenerator(opts...)
	return &Engine{
		generators: map[Strategy]generator.Generator{
			StrategyRandom:            generator.NewRandomGenerator(opts...),
			StrategyTimeOrdered:       generator.NewTimeOrderedGenerator(opts...),
			StrategyTimeOrderedRandom: generator.NewTimeOrderedRandomGenerator(opts...),
			StrategyNameMD5:           generator.NewNameBasedGenerator(generator.HashMD5, opts...),
			StrategyNameSHA1:          generator.NewNameBasedGenerator(generator.HashSHA1, opts...),
			StrategyCustom:            generator.NewCustomGenerator(opts...),
			StrategyPattern:           pattern,
		},
		pattern:     pattern,
		transformer: transform.New(opts...),
	}
}

// Strategies lists the registered strategy names, sorted.
func (e *Engine) Strategies() []Strategy {
	out := make([]Strategy, 0, len(e.generators))
	for s := range e.generators {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Generator returns the generator for a strategy.
func (e *Engine) Generator(s Strategy) (generator.Generator, error) {
	g, ok := e.generators[s]
	if !ok {
		return nil, fmt.Errorf("unknown strategy: %q", s)
	}
	return g, nil
}

// PatternLayout reports the layout used by Generate.
func (e *Engine) PatternLayout() generator.Layout { return e.pattern.Layout() }

// Generate embeds tags at the current time.
func (e *Engine) Generate(tags tag.Set) identifier.ID {
	return e.pattern.Generate(generator.Request{Tags: tags})
}

// GenerateAt embeds tags at the given unix-seconds timestamp.
func (e *Engine) GenerateAt(tags tag.Set, ts int64) identifier.ID {
	return e.pattern.Encode(tags, ts)
}

// GenerateFor embeds the tags inferred from v.
func (e *Engine) GenerateFor(v any) identifier.ID {
	return e.Generate(infer.TagsFor(v))
}

// GenerateWith runs one strategy.
func (e *Engine) GenerateWith(s Strategy, req generator.Request) (identifier.ID, error) {
	g, err := e.Generator(s)
	if err != nil {
		return identifier.ID{}, err
	}
	return g.Generate(req), nil
}

// GenerateBatch runs one strategy count times.
func (e *Engine) GenerateBatch(s Strategy, req generator.Request, count int) ([]identifier.ID, error) {
	g, err := e.Generator(s)
	if err != nil {
		return nil, err
	}
	return g.GenerateBatch(req, count), nil
}

// GenerateRandom returns a fully random identifier.
func (e *Engine) GenerateRandom() identifier.ID {
	return e.generators[StrategyRandom].Generate(generator.Request{})
}

// GenerateDeterministic is the pure name-based strategy.
func (e *Engine) GenerateDeterministic(ns identifier.ID, name string, h generator.Hash) identifier.ID {
	return generator.NameBased(ns, name, h)
}

// Decode parses and analyzes text.
func (e *Engine) Decode(text string) (decoder.Analysis, error) {
	return decoder.Decode(text)
}

// FormatValid reports whether text has the identifier shape.
func (e *Engine) FormatValid(text string) bool {
	return identifier.FormatValid(text)
}

// ApplyMode derives a new identifier from id under mode.
func (e *Engine) ApplyMode(id identifier.ID, mode tag.Mode) identifier.ID {
	return e.transformer.ApplyMode(id, mode)
}

// CollapseToVoid always returns the void identifier.
func (e *Engine) CollapseToVoid(id identifier.ID) identifier.ID {
	return e.transformer.CollapseToVoid(id)
}

// IsVoid reports whether id is the void identifier.
func (e *Engine) IsVoid(id identifier.ID) bool {
	return identifier.IsVoid(id)
}
