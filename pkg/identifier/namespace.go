package identifier

import (
	"sort"
	"strings"

	"github.com/google/uuid"
)

// Well-known namespaces used as salt by name-based generation. The four
// standard ones carry the RFC 4122 values.
var (
	NamespaceDNS  = ID(uuid.NameSpaceDNS)
	NamespaceURL  = ID(uuid.NameSpaceURL)
	NamespaceOID  = ID(uuid.NameSpaceOID)
	NamespaceX500 = ID(uuid.NameSpaceX500)

	NamespaceAction    = MustParse("a3c10e01-369a-4c7e-9d1f-000000000001")
	NamespaceComponent = MustParse("a3c10e01-369a-4c7e-9d1f-000000000002")
	NamespaceState     = MustParse("a3c10e01-369a-4c7e-9d1f-000000000003")
	NamespaceVortex    = MustParse("a3c10e01-369a-4c7e-9d1f-000000000004")
)

var namespaces = map[string]ID{
	"dns":       NamespaceDNS,
	"url":       NamespaceURL,
	"oid":       NamespaceOID,
	"x500":      NamespaceX500,
	"action":    NamespaceAction,
	"component": NamespaceComponent,
	"state":     NamespaceState,
	"vortex":    NamespaceVortex,
}

// NamespaceByName looks up a predefined namespace, case-insensitively.
func NamespaceByName(name string) (ID, bool) {
	ns, ok := namespaces[strings.ToLower(strings.TrimSpace(name))]
	return ns, ok
}

// NamespaceNames lists the predefined namespace names, sorted.
func NamespaceNames() []string {
	out := make([]string, 0, len(namespaces))
	for k := range namespaces {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
