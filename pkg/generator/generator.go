// Package generator holds the identifier generation strategies. Every
// strategy renders the same 8-4-4-4-12 text form and differs only in the
// version marker and in how the 128 bits are filled.
//
// Generation never fails. Unknown tags have already resolved to their
// defaults in package tag, and a randomness read failure is treated like
// uuid.New treats it: as a panic, since the process cannot continue to mint
// identifiers safely.
package generator

import (
	"fmt"
	"time"

	"github.com/ceccec/zeropoint/pkg/identifier"
	"github.com/ceccec/zeropoint/pkg/tag"
)

// Generator defines the interface shared by every strategy.
type Generator interface {
	Version() identifier.Version
	Generate(req Request) identifier.ID
	GenerateBatch(req Request, count int) []identifier.ID
	Validate(id string) (bool, string) // (valid, reason)
}

// Request carries every input a strategy may read. Each strategy ignores
// the fields it has no use for.
type Request struct {
	Tags      tag.Set
	Timestamp *int64 // unix seconds; nil means now
	Namespace identifier.ID
	Name      string
	Data      any
}

// At returns a copy of r pinned to the given unix-seconds timestamp.
func (r Request) At(ts int64) Request {
	r.Timestamp = &ts
	return r
}

// Option configures a strategy.
type Option func(*options)

type options struct {
	src       Source
	layout    Layout
	namespace identifier.ID
}

func buildOptions(opts []Option) options {
	o := options{
		src:       DefaultSource(),
		layout:    LayoutCompat,
		namespace: identifier.NamespaceURL,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithSource overrides the clock and randomness.
func WithSource(src Source) Option {
	return func(o *options) {
		if src.Now == nil {
			src.Now = time.Now
		}
		if src.Rand == nil {
			src.Rand = DefaultSource().Rand
		}
		o.src = src
	}
}

// WithLayout selects the pattern-tag bit layout.
func WithLayout(l Layout) Option {
	return func(o *options) { o.layout = l }
}

// WithNamespace sets the namespace a name-based strategy falls back to when
// a request carries the void namespace.
func WithNamespace(ns identifier.ID) Option {
	return func(o *options) { o.namespace = ns }
}

func generateBatch(g Generator, req Request, count int) []identifier.ID {
	if count < 0 {
		count = 0
	}
	ids := make([]identifier.ID, 0, count)
	for i := 0; i < count; i++ {
		ids = append(ids, g.Generate(req))
	}
	return ids
}

func validateVersion(id string, want ...identifier.Version) (bool, string) {
	parsed, err := identifier.Parse(id)
	if err != nil {
		return false, err.Error()
	}
	got := parsed.Version()
	for _, v := range want {
		if got == v {
			return true, ""
		}
	}
	return false, fmt.Sprintf("expected version %s, got %s", want[0].Hex(), got.Hex())
}

func timestamp(req Request, src Source) int64 {
	if req.Timestamp != nil {
		return *req.Timestamp
	}
	return src.Unix()
}

// SourceFrom returns the Source that opts resolve to.
func SourceFrom(opts ...Option) Source { return buildOptions(opts).src }
