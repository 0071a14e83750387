package utf8

import (
	stdlib "unicode/utf8"

	"github.com/mhr3/fixstr/ascii"
)

// ValidString reports whether s is entirely valid UTF-8.
func ValidString(s string) bool {
	// speed up the common case
	if ascii.ValidString(s) {
		return true
	}
	return stdlib.ValidString(s)
}

// Valid reports whether b is entirely valid UTF-8.
func Valid(b []byte) bool {
	idx := ascii.IndexMask(b, 0x80)
	if idx == -1 {
		return true
	}

	return stdlib.Valid(b[idx:])
}
