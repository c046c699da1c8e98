package generator

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"io"
	"time"
)

// Source is the clock and randomness a strategy draws from. Tests swap in
// fixed values; production uses DefaultSource.
type Source struct {
	Now  func() time.Time
	Rand io.Reader
}

// DefaultSource reads the wall clock and crypto/rand.
func DefaultSource() Source {
	return Source{Now: time.Now, Rand: rand.Reader}
}

// Unix returns the current time in whole seconds.
func (s Source) Unix() int64 { return s.Now().Unix() }

// Fill reads len(b) random bytes into b.
func (s Source) Fill(b []byte) {
	if _, err := io.ReadFull(s.Rand, b); err != nil {
		panic(fmt.Errorf("generator: failed to read random bytes: %w", err))
	}
}

// Uint64 returns 64 random bits.
func (s Source) Uint64() uint64 {
	var b [8]byte
	s.Fill(b[:])
	return binary.BigEndian.Uint64(b[:])
}

// Bits returns n random low-order bits, n <= 64.
func (s Source) Bits(n uint) uint64 {
	if n >= 64 {
		return s.Uint64()
	}
	return s.Uint64() & (1<<n - 1)
}
