// Package identifier defines the 128-bit identifier shared by every
// generation strategy, its textual form and the format validator.
//
// # Format
//
// An ID is 16 bytes rendered as 32 lowercase hex digits in five
// hyphen-separated groups of 8-4-4-4-12 digits:
//
//	gggggggg-gggg-Vggg-gggg-gggggggggggg
//	 group1   g2   g3   g4     group5
//
// Byte ranges: group1 = [0,4), group2 = [4,6), group3 = [6,8),
// group4 = [8,10), group5 = [10,16), each big-endian. V, the first hex digit
// of group3, is the version marker that selects how the remaining bits are
// interpreted.
//
// Input text is accepted in either case; output is always lowercase.
package identifier

import (
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
)

// ErrMalformedIdentifier is returned when text is not a well-formed
// identifier. It is the only error the engine produces.
var ErrMalformedIdentifier = errors.New("malformed identifier")

// TextLen is the length of the textual form.
const TextLen = 36

// ID is an immutable 128-bit identifier. Compare with ==.
type ID [16]byte

// String returns the canonical lowercase grouped-hex form.
func (id ID) String() string {
	var buf [TextLen]byte
	hex.Encode(buf[0:8], id[0:4])
	buf[8] = '-'
	hex.Encode(buf[9:13], id[4:6])
	buf[13] = '-'
	hex.Encode(buf[14:18], id[6:8])
	buf[18] = '-'
	hex.Encode(buf[19:23], id[8:10])
	buf[23] = '-'
	hex.Encode(buf[24:], id[10:])
	return string(buf[:])
}

// MarshalText implements encoding.TextMarshaler.
func (id ID) MarshalText() ([]byte, error) { return []byte(id.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (id *ID) UnmarshalText(b []byte) error {
	parsed, err := Parse(string(b))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// Bytes returns a copy of the raw 16 bytes.
func (id ID) Bytes() []byte {
	b := make([]byte, 16)
	copy(b, id[:])
	return b
}

// Version returns the version marker.
func (id ID) Version() Version { return Version(id[6] >> 4) }

// Group1 returns the first 32-bit group.
func (id ID) Group1() uint32 { return binary.BigEndian.Uint32(id[0:4]) }

// Group2 returns the second 16-bit group.
func (id ID) Group2() uint16 { return binary.BigEndian.Uint16(id[4:6]) }

// Group3 returns the third 16-bit group, version marker included.
func (id ID) Group3() uint16 { return binary.BigEndian.Uint16(id[6:8]) }

// Group4 returns the fourth 16-bit group.
func (id ID) Group4() uint16 { return binary.BigEndian.Uint16(id[8:10]) }

// Group5 returns the trailing 48-bit group.
func (id ID) Group5() uint64 {
	var b [8]byte
	copy(b[2:], id[10:16])
	return binary.BigEndian.Uint64(b[:])
}

// Timestamp returns the 48-bit unix-seconds value carried in group1 (low 32
// bits) and group2 (high 16 bits). It is only meaningful when
// Version().TimeBearing() is true.
func (id ID) Timestamp() int64 {
	return int64(uint64(id.Group2())<<32 | uint64(id.Group1()))
}

// IsVoid reports whether id is the all-zero identifier.
func (id ID) IsVoid() bool { return id == ID{} }

// Groups assembles an ID from its five groups. The version marker is taken
// from g3 as given; group5 is truncated to 48 bits.
func Groups(g1 uint32, g2, g3, g4 uint16, g5 uint64) ID {
	var id ID
	binary.BigEndian.PutUint32(id[0:4], g1)
	binary.BigEndian.PutUint16(id[4:6], g2)
	binary.BigEndian.PutUint16(id[6:8], g3)
	binary.BigEndian.PutUint16(id[8:10], g4)
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], g5)
	copy(id[10:16], b[2:])
	return id
}

// WithTimestamp assembles an ID whose group1/group2 carry ts (unix seconds,
// low 48 bits).
func WithTimestamp(ts int64, g3, g4 uint16, g5 uint64) ID {
	u := uint64(ts)
	return Groups(uint32(u), uint16(u>>32), g3, g4, g5)
}

// Marker returns group3 with the version nibble set to v and the low 12 bits
// taken from low.
func Marker(v Version, low uint16) uint16 {
	return uint16(v)<<12 | low&0x0fff
}

// FromBytes builds an ID from exactly 16 bytes.
func FromBytes(b []byte) (ID, error) {
	var id ID
	if len(b) != 16 {
		return id, fmt.Errorf("%w: expected 16 bytes, got %d", ErrMalformedIdentifier, len(b))
	}
	copy(id[:], b)
	return id, nil
}

// MustParse is like Parse but panics on malformed input. It is meant for
// package-level literals.
func MustParse(s string) ID {
	id, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return id
}

// Parse decodes the grouped-hex text form, in either case.
func Parse(s string) (ID, error) {
	var id ID
	if ok, reason := validate(s); !ok {
		return id, fmt.Errorf("%w: %s", ErrMalformedIdentifier, reason)
	}
	h := s[0:8] + s[9:13] + s[14:18] + s[19:23] + s[24:]
	if _, err := hex.Decode(id[:], []byte(h)); err != nil {
		return ID{}, fmt.Errorf("%w: %v", ErrMalformedIdentifier, err)
	}
	return id, nil
}
