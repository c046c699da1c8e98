package identifier

// VoidText is the textual form of the void identifier.
const VoidText = "00000000-0000-0000-0000-000000000000"

// Void returns the all-zero identifier, which stands for the absence of
// identity.
func Void() ID { return ID{} }

// IsVoid reports whether id is the void identifier.
func IsVoid(id ID) bool { return id == ID{} }
