// Package codec renders an identifier in alternate text encodings. The
// grouped-hex form stays the only interchange format; these renderings are
// for systems that index ULIDs or KSUIDs and carry the same 128 bits.
package codec

import (
	"fmt"
	"math"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/segmentio/ksuid"

	"github.com/ceccec/zeropoint/pkg/identifier"
)

// ULID returns the 26-character Crockford base32 form of id's 16 bytes.
func ULID(id identifier.ID) string {
	return ulid.ULID(id).String()
}

// FromULID reverses ULID.
func FromULID(s string) (identifier.ID, error) {
	u, err := ulid.ParseStrict(s)
	if err != nil {
		return identifier.ID{}, fmt.Errorf("%w: invalid ULID: %v", identifier.ErrMalformedIdentifier, err)
	}
	return identifier.ID(u), nil
}

// ksuidEpoch is the KSUID time origin in unix seconds. KSUID timestamps are
// 32-bit offsets from it.
const ksuidEpoch = 1400000000

// KSUID wraps id's 16 bytes as the payload of a KSUID stamped with t.
// t must fall inside the KSUID range (2014-05-13 onwards, 32-bit seconds).
func KSUID(id identifier.ID, t time.Time) (string, error) {
	if off := t.Unix() - ksuidEpoch; off < 0 || off > math.MaxUint32 {
		return "", fmt.Errorf("time %s is outside the KSUID range", t.UTC().Format(time.RFC3339))
	}
	k, err := ksuid.FromParts(t, id[:])
	if err != nil {
		return "", fmt.Errorf("failed to build KSUID: %w", err)
	}
	return k.String(), nil
}

// FromKSUID returns the identifier held in a KSUID payload and the KSUID
// timestamp.
func FromKSUID(s string) (identifier.ID, time.Time, error) {
	k, err := ksuid.Parse(s)
	if err != nil {
		return identifier.ID{}, time.Time{}, fmt.Errorf("%w: invalid KSUID: %v", identifier.ErrMalformedIdentifier, err)
	}
	id, err := identifier.FromBytes(k.Payload())
	if err != nil {
		return identifier.ID{}, time.Time{}, err
	}
	return id, k.Time(), nil
}

// Encodings groups every rendering of one identifier.
type Encodings struct {
	Canonical string `json:"canonical"`
	ULID      string `json:"ulid"`
	KSUID     string `json:"ksuid,omitempty"`
}

// All renders id in every encoding. The KSUID is stamped with t and left
// empty when t is outside the KSUID range.
func All(id identifier.ID, t time.Time) Encodings {
	e := Encodings{Canonical: id.String(), ULID: ULID(id)}
	if k, err := KSUID(id, t); err == nil {
		e.KSUID = k
	}
	return e
}
