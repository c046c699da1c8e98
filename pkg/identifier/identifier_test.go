package identifier

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatValid(t *testing.T) {
	valid := "6553f100-0000-9005-0001-000000006abc"

	tests := []struct {
		name string
		in   string
		want bool
	}{
		{"canonical", valid, true},
		{"uppercase", strings.ToUpper(valid), true},
		{"void", VoidText, true},
		{"empty", "", false},
		{"31 chars", valid[:31], false},
		{"non-hex substituted", "6553f100-0000-9005-0001-000000006abg", false},
		{"short first group", "6553f10-00000-9005-0001-000000006abc", false},
		{"long last group", "6553f100-0000-9005-0001-000000006abc0", false},
		{"no hyphens", "6553f10000009005000100000000000000ab", false},
		{"braces", "{6553f100-0000-9005-0001-000000006a}", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatValid(tt.in))
		})
	}
}

func TestParseRejectsMalformed(t *testing.T) {
	_, err := Parse("not-an-identifier")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMalformedIdentifier))

	_, reason := Validate("6553f100-0000-9005-0001-00000000zabc")
	assert.Contains(t, reason, "non-hex")
}

func TestParseStringRoundTrip(t *testing.T) {
	in := "6553F100-0000-9005-0001-000000006ABC"
	id, err := Parse(in)
	require.NoError(t, err)
	assert.Equal(t, strings.ToLower(in), id.String())
	assert.Equal(t, VersionPattern, id.Version())
	assert.Equal(t, uint32(0x6553f100), id.Group1())
	assert.Equal(t, uint16(0), id.Group2())
	assert.Equal(t, uint16(0x9005), id.Group3())
	assert.Equal(t, uint16(0x0001), id.Group4())
	assert.Equal(t, uint64(0x6abc), id.Group5())
	assert.Equal(t, int64(1700000000), id.Timestamp())
}

func TestGroupsLayout(t *testing.T) {
	id := Groups(0xdeadbeef, 0x1234, Marker(VersionPattern, 0xfabc), 0xffff, 0x1_0000_0000_0000|0xabcdef012345)
	assert.Equal(t, "deadbeef-1234-9abc-ffff-abcdef012345", id.String())

	ts := WithTimestamp(0x0000_0102_0304_0506, 0, 0, 0)
	assert.Equal(t, "03040506-0102-0000-0000-000000000000", ts.String())
	assert.Equal(t, int64(0x0102_0304_0506), ts.Timestamp())
}

func TestVoid(t *testing.T) {
	assert.Equal(t, VoidText, Void().String())
	assert.True(t, IsVoid(Void()))
	assert.True(t, Void().IsVoid())
	assert.False(t, IsVoid(MustParse("00000000-0000-0000-0000-000000000001")))
	assert.Equal(t, VersionVoid, Void().Version())
}

func TestTextMarshaling(t *testing.T) {
	var id ID
	require.NoError(t, id.UnmarshalText([]byte("6BA7B810-9DAD-11D1-80B4-00C04FD430C8")))
	assert.Equal(t, NamespaceDNS, id)

	b, err := id.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "6ba7b810-9dad-11d1-80b4-00c04fd430c8", string(b))

	assert.Error(t, id.UnmarshalText([]byte("nope")))
}

func TestFromBytes(t *testing.T) {
	_, err := FromBytes([]byte{1, 2, 3})
	assert.ErrorIs(t, err, ErrMalformedIdentifier)

	id, err := FromBytes(NamespaceURL.Bytes())
	require.NoError(t, err)
	assert.Equal(t, NamespaceURL, id)
}

func TestNamespaces(t *testing.T) {
	names := NamespaceNames()
	assert.Equal(t, []string{"action", "component", "dns", "oid", "state", "url", "vortex", "x500"}, names)

	seen := map[ID]string{}
	for _, n := range names {
		ns, ok := NamespaceByName(n)
		require.True(t, ok, n)
		assert.False(t, ns.IsVoid())
		if prev, dup := seen[ns]; dup {
			t.Fatalf("namespace %s duplicates %s", n, prev)
		}
		seen[ns] = n
	}

	ns, ok := NamespaceByName(" URL ")
	assert.True(t, ok)
	assert.Equal(t, "6ba7b811-9dad-11d1-80b4-00c04fd430c8", ns.String())

	_, ok = NamespaceByName("galaxy")
	assert.False(t, ok)
}

func TestVersion(t *testing.T) {
	assert.Equal(t, "pattern", VersionPattern.String())
	assert.Equal(t, "unknown", Version(0xe).String())
	assert.Equal(t, "b", VersionPatternLossless.Hex())
	assert.True(t, VersionCustom.TimeBearing())
	assert.False(t, VersionNameSHA1.TimeBearing())
	assert.True(t, VersionDerived.Tagged())
	assert.False(t, VersionTimeOrdered.Tagged())
}

func TestScheme(t *testing.T) {
	assert.Equal(t, "void", Void().Scheme())
	assert.Equal(t, SchemeUnknown, MustParse("12345678-0000-0abc-0000-000000000000").Scheme())
	assert.Equal(t, SchemeUnknown, MustParse("00000000-0000-0000-0000-000000000001").Scheme())
	assert.Equal(t, "pattern", MustParse("6553f100-0000-9005-0001-000000002000").Scheme())
}
