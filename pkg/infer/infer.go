// Package infer picks a default tag set for an arbitrary value. Values are
// first classified into a closed set of Input variants; each variant owns
// its own mapping to tags.
package infer

import (
	"reflect"

	"github.com/ceccec/zeropoint/pkg/tag"
)

// Input is one of Absent, Text, Number, Flag, Record, Collection or
// Document. The unexported method seals the set.
type Input interface {
	Tags() tag.Set
	sealed()
}

// Absent is a missing value.
type Absent struct{}

// Text is a string value.
type Text string

// Number is any integer or floating point value.
type Number float64

// Flag is a boolean value.
type Flag bool

// Record is a keyed value: a map or a struct. Fields is the key count.
type Record struct{ Fields int }

// Collection is a slice or array. Len is its length.
type Collection struct{ Len int }

// Document is a raw byte payload.
type Document []byte

func (Absent) sealed()     {}
func (Text) sealed()       {}
func (Number) sealed()     {}
func (Flag) sealed()       {}
func (Record) sealed()     {}
func (Collection) sealed() {}
func (Document) sealed()   {}

func (Absent) Tags() tag.Set {
	return tag.Set{Action: tag.ActionNone, Component: tag.ComponentGeneric, State: tag.StateNeutral, Mode: tag.ModeZeroPointVacuum}
}

func (t Text) Tags() tag.Set {
	s := tag.Set{Action: tag.ActionRead, Component: tag.ComponentText, State: tag.StateActive, Mode: tag.ModeFlowing}
	if t == "" {
		s.State = tag.StateWaiting
		s.Mode = tag.ModeStill
	}
	return s
}

func (n Number) Tags() tag.Set {
	s := tag.Set{Action: tag.ActionUpdate, Component: tag.ComponentNumber, State: tag.StateActive, Mode: tag.ModeResonating}
	switch {
	case n == 0:
		s.Mode = tag.ModeZeroPoint
	case n < 0:
		s.Mode = tag.ModeFlowInward
	}
	return s
}

func (f Flag) Tags() tag.Set {
	if f {
		return tag.Set{Action: tag.ActionUpdate, Component: tag.ComponentFlag, State: tag.StateActive, Mode: tag.ModeResonanceStanding}
	}
	return tag.Set{Action: tag.ActionUpdate, Component: tag.ComponentFlag, State: tag.StateSuspended, Mode: tag.ModeStill}
}

func (r Record) Tags() tag.Set {
	s := tag.Set{Action: tag.ActionCreate, Component: tag.ComponentRecord, State: tag.StatePending, Mode: tag.ModeConsciousness}
	if r.Fields == 0 {
		s.Mode = tag.ModeConsciousnessAware
	}
	return s
}

func (c Collection) Tags() tag.Set {
	if c.Len == 0 {
		return tag.Set{Action: tag.ActionRead, Component: tag.ComponentCollection, State: tag.StateWaiting, Mode: tag.ModeStill}
	}
	return tag.Set{Action: tag.ActionSync, Component: tag.ComponentCollection, State: tag.StateProcessing, Mode: tag.ModeFlowToroidal}
}

func (Document) Tags() tag.Set {
	return tag.Set{Action: tag.ActionUpload, Component: tag.ComponentDocument, State: tag.StateProcessing, Mode: tag.ModeEnergy}
}

// From classifies v. Pointers are followed; kinds with no variant of their
// own (channels, funcs, ...) are Absent.
func From(v any) Input {
	switch x := v.(type) {
	case nil:
		return Absent{}
	case Input:
		return x
	case string:
		return Text(x)
	case []byte:
		return Document(x)
	case bool:
		return Flag(x)
	}

	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return Absent{}
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.String:
		return Text(rv.String())
	case reflect.Bool:
		return Flag(rv.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Number(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return Number(rv.Uint())
	case reflect.Float32, reflect.Float64:
		return Number(rv.Float())
	case reflect.Map:
		return Record{Fields: rv.Len()}
	case reflect.Struct:
		return Record{Fields: rv.NumField()}
	case reflect.Slice:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return Document(rv.Bytes())
		}
		return Collection{Len: rv.Len()}
	case reflect.Array:
		return Collection{Len: rv.Len()}
	default:
		return Absent{}
	}
}

// TagsFor is From(v).Tags().
func TagsFor(v any) tag.Set { return From(v).Tags() }
