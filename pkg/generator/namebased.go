package generator

import (
	"crypto/md5"
	"crypto/sha1"
	"strings"

	"github.com/ceccec/zeropoint/pkg/identifier"
)

// Hash selects the digest used by name-based generation. Neither digest is
// used for security, only for deterministic spreading.
type Hash int

const (
	// HashMD5 is the 128-bit digest (version 3).
	HashMD5 Hash = iota
	// HashSHA1 is the 160-bit digest (version 5), truncated to 128 bits.
	HashSHA1
)

// ParseHash maps "md5" or "3" to HashMD5 and "sha1", "sha-1" or "5" to
// HashSHA1 (any case). Empty input is HashSHA1. The boolean is false for
// anything else, which also yields HashSHA1.
func ParseHash(s string) (Hash, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "md5", "3":
		return HashMD5, true
	case "", "sha1", "sha-1", "5":
		return HashSHA1, true
	default:
		return HashSHA1, false
	}
}

func (h Hash) String() string {
	if h == HashMD5 {
		return "md5"
	}
	return "sha1"
}

// Version returns the marker written by h.
func (h Hash) Version() identifier.Version {
	if h == HashMD5 {
		return identifier.VersionNameMD5
	}
	return identifier.VersionNameSHA1
}

// NameBased derives an identifier from the textual namespace concatenated
// with name. It is a pure function of its three inputs.
func NameBased(ns identifier.ID, name string, h Hash) identifier.ID {
	data := []byte(ns.String() + name)

	var id identifier.ID
	switch h {
	case HashMD5:
		sum := md5.Sum(data)
		copy(id[:], sum[:])
	default:
		sum := sha1.Sum(data)
		copy(id[:], sum[:16])
	}
	id[6] = id[6]&0x0f | byte(h.Version())<<4
	return id
}

// NameBasedGenerator is the Generator form of NameBased.
type NameBasedGenerator struct {
	hash      Hash
	namespace identifier.ID
}

// NewNameBasedGenerator creates a new NameBasedGenerator. Requests with the
// void namespace use the WithNamespace option, url by default.
func NewNameBasedGenerator(h Hash, opts ...Option) *NameBasedGenerator {
	return &NameBasedGenerator{hash: h, namespace: buildOptions(opts).namespace}
}

func (g *NameBasedGenerator) Version() identifier.Version { return g.hash.Version() }

// Generate reads req.Namespace and req.Name.
func (g *NameBasedGenerator) Generate(req Request) identifier.ID {
	ns := req.Namespace
	if ns.IsVoid() {
		ns = g.namespace
	}
	return NameBased(ns, req.Name, g.hash)
}

// GenerateBatch returns count copies of the same identifier, since the
// strategy is deterministic.
func (g *NameBasedGenerator) GenerateBatch(req Request, count int) []identifier.ID {
	return generateBatch(g, req, count)
}

func (g *NameBasedGenerator) Validate(id string) (bool, string) {
	return validateVersion(id, g.hash.Version())
}
