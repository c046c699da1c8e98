package identifier

// Version is the 4-bit version marker held in the high nibble of group3.
// Assigned markers are never reused for a different scheme.
type Version uint8

const (
	VersionVoid              Version = 0x0
	VersionTimeOrdered       Version = 0x1
	VersionNameMD5           Version = 0x3
	VersionRandom            Version = 0x4
	VersionNameSHA1          Version = 0x5
	VersionTimeOrderedRandom Version = 0x7
	VersionCustom            Version = 0x8
	VersionPattern           Version = 0x9
	VersionPatternLossless   Version = 0xb
	VersionDerived           Version = 0xd
)

var versionNames = map[Version]string{
	VersionVoid:              "void",
	VersionTimeOrdered:       "time-ordered",
	VersionNameMD5:           "name-md5",
	VersionRandom:            "random",
	VersionNameSHA1:          "name-sha1",
	VersionTimeOrderedRandom: "time-ordered-random",
	VersionCustom:            "custom",
	VersionPattern:           "pattern",
	VersionPatternLossless:   "pattern-lossless",
	VersionDerived:           "derived",
}

// SchemeUnknown names markers with no assigned scheme.
const SchemeUnknown = "unknown"

// String returns the scheme name, or SchemeUnknown.
func (v Version) String() string {
	if s, ok := versionNames[v]; ok {
		return s
	}
	return SchemeUnknown
}

// Scheme names the scheme id was produced by. Marker 0 is void only for the
// all-zero identifier; any other identifier carrying it is unknown.
func (id ID) Scheme() string {
	v := id.Version()
	if v == VersionVoid && !id.IsVoid() {
		return SchemeUnknown
	}
	return v.String()
}

// Hex returns the marker as it appears in text.
func (v Version) Hex() string { return string("0123456789abcdef"[v&0xf]) }

// TimeBearing reports whether group1/group2 carry a unix-seconds timestamp.
func (v Version) TimeBearing() bool {
	switch v {
	case VersionTimeOrdered, VersionTimeOrderedRandom, VersionCustom,
		VersionPattern, VersionPatternLossless, VersionDerived:
		return true
	}
	return false
}

// Tagged reports whether identifiers of this version carry pattern tags.
func (v Version) Tagged() bool {
	switch v {
	case VersionPattern, VersionPatternLossless, VersionDerived:
		return true
	}
	return false
}

// Bit positions inside group5 for the layouts that keep tags in fixed,
// non-overlapping windows.
const (
	// LosslessModeShift places Mode.Step() in group5 bits 40-47.
	LosslessModeShift = 40
	// LosslessStateShift places State.Nibble() in group5 bits 36-39.
	LosslessStateShift = 36
	// LosslessRandomBits is the width of the random tail below the tags.
	LosslessRandomBits = 36

	// DerivedModeShift places Mode.Step() in group5 bits 40-47 of a derived
	// identifier.
	DerivedModeShift = 40
	// DerivedRandomBits is the width of the mixed random tail.
	DerivedRandomBits = 40
)
