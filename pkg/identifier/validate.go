package identifier

import "fmt"

var groupLens = [5]int{8, 4, 4, 4, 12}

// FormatValid reports whether s is exactly 32 hex digits (either case) laid
// out as 8-4-4-4-12 hyphen-separated groups. No semantic check is made: any
// well-shaped text passes, whoever produced it.
func FormatValid(s string) bool {
	ok, _ := validate(s)
	return ok
}

// Validate is FormatValid with a human-readable reason on failure.
func Validate(s string) (bool, string) { return validate(s) }

func validate(s string) (bool, string) {
	if len(s) != TextLen {
		return false, fmt.Sprintf("expected length %d, got %d", TextLen, len(s))
	}
	pos := 0
	for g, n := range groupLens {
		if g > 0 {
			if s[pos] != '-' {
				return false, fmt.Sprintf("expected '-' at offset %d", pos)
			}
			pos++
		}
		for i := 0; i < n; i++ {
			if !isHex(s[pos]) {
				return false, fmt.Sprintf("non-hex character %q at offset %d", s[pos], pos)
			}
			pos++
		}
	}
	return true, ""
}

func isHex(c byte) bool {
	return '0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}
