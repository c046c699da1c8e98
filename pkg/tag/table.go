package tag

import (
	"sort"
	"strings"
)

type entry[T ~uint16] struct {
	code   T
	symbol string
}

// table is a read-only bidirectional code/symbol index. It is built once at
// package init and never written afterwards.
type table[T ~uint16] struct {
	def      T
	bySymbol map[string]T
	byCode   map[T]string
	codes    []T
}

func newTable[T ~uint16](def T, entries ...entry[T]) *table[T] {
	t := &table[T]{
		def:      def,
		bySymbol: make(map[string]T, len(entries)),
		byCode:   make(map[T]string, len(entries)),
		codes:    make([]T, 0, len(entries)),
	}
	for _, e := range entries {
		if _, dup := t.byCode[e.code]; dup {
			panic("tag: duplicate code for " + e.symbol)
		}
		if _, dup := t.bySymbol[e.symbol]; dup {
			panic("tag: duplicate symbol " + e.symbol)
		}
		t.byCode[e.code] = e.symbol
		t.bySymbol[e.symbol] = e.code
		t.codes = append(t.codes, e.code)
	}
	sort.Slice(t.codes, func(i, j int) bool { return t.codes[i] < t.codes[j] })
	return t
}

func (t *table[T]) of(code T) T {
	if _, ok := t.byCode[code]; ok {
		return code
	}
	return t.def
}

func (t *table[T]) lookup(symbol string) (T, bool) {
	c, ok := t.bySymbol[normalize(symbol)]
	if !ok {
		return t.def, false
	}
	return c, true
}

func (t *table[T]) symbol(code T) string {
	if s, ok := t.byCode[code]; ok {
		return s
	}
	return t.byCode[t.def]
}

func (t *table[T]) known(code T) bool {
	_, ok := t.byCode[code]
	return ok
}

func (t *table[T]) all() []T {
	out := make([]T, len(t.codes))
	copy(out, t.codes)
	return out
}

// normalize folds case and treats '-' and ' ' as '_', so "Flow-Inward" and
// "flow_inward" name the same tag.
func normalize(symbol string) string {
	s := strings.ToLower(strings.TrimSpace(symbol))
	return strings.NewReplacer("-", "_", " ", "_").Replace(s)
}
