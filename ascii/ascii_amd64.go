//go:build !noasm

package ascii

import (
	segascii "github.com/segmentio/asm/ascii"
	"golang.org/x/sys/cpu"
)

var hasAVX2 = cpu.X86.HasAVX2

// ValidString reports whether s consists of 7-bit ASCII bytes only.
func ValidString(s string) bool {
	if hasAVX2 {
		return segascii.ValidString(s)
	}

	return isAsciiGo(s)
}

// Valid is ValidString for byte slices.
func Valid(b []byte) bool {
	if hasAVX2 {
		return segascii.Valid(b)
	}

	return isAsciiGo(b)
}

// IndexMask returns the index of the first byte in s that has any bit of
// mask set, or -1.
func IndexMask(s []byte, mask byte) int {
	return indexMaskGo(s, mask)
}
