// Package bytealg provides the substring search primitive shared by the
// string kernels. Haystacks and needles are raw element bytes made of
// fixed-size code units: 1 byte for byte-oriented encodings, 4 bytes
// (little-endian) for the wide encoding. All positions are byte offsets.
package bytealg

import (
	"bytes"
	"encoding/binary"
)

// Mode selects what Search reports.
type Mode int

const (
	// Forward reports the offset of the first match.
	Forward Mode = iota
	// Reverse reports the offset of the last match.
	Reverse
	// Count reports the number of non-overlapping matches.
	Count
)

// Search looks for needle in haystack on unit-aligned offsets. It returns
// a byte offset (or -1) for Forward and Reverse, and a match count for Count.
// unit must be 1 or 4, and len(needle) must be a multiple of unit.
func Search(haystack, needle []byte, unit int, mode Mode) int {
	switch mode {
	case Forward:
		return Index(haystack, needle, unit)
	case Reverse:
		return LastIndex(haystack, needle, unit)
	case Count:
		return CountAll(haystack, needle, unit)
	}
	panic("bytealg: unknown search mode")
}

// Index returns the offset of the first unit-aligned occurrence of needle.
func Index(haystack, needle []byte, unit int) int {
	n := len(needle)
	if n == 0 {
		return 0
	}
	if len(haystack) < n {
		return -1
	}
	if unit == 1 {
		return bytes.Index(haystack, needle)
	}

	// Quick check for position-0 match
	if bytes.Equal(haystack[:n], needle) {
		return 0
	}

	// Filter on the first and last code unit, then verify.
	first := binary.LittleEndian.Uint32(needle)
	last := binary.LittleEndian.Uint32(needle[n-4:])
	for off := 0; off+n <= len(haystack); {
		idx := IndexUnit32(haystack[off:len(haystack)-n+4], first)
		if idx < 0 {
			return -1
		}
		off += idx
		if binary.LittleEndian.Uint32(haystack[off+n-4:]) == last && bytes.Equal(haystack[off:off+n], needle) {
			return off
		}
		off += 4
	}
	return -1
}

// LastIndex returns the offset of the last unit-aligned occurrence of needle.
func LastIndex(haystack, needle []byte, unit int) int {
	n := len(needle)
	if n == 0 {
		return len(haystack) - len(haystack)%unit
	}
	if len(haystack) < n {
		return -1
	}
	if unit == 1 {
		return bytes.LastIndex(haystack, needle)
	}

	limit := len(haystack) - len(haystack)%4
	for limit >= n {
		idx := bytes.LastIndex(haystack[:limit], needle)
		if idx < 0 {
			return -1
		}
		if idx%4 == 0 {
			return idx
		}
		// only starts before idx remain candidates
		limit = idx + n - 1
	}
	return -1
}

// CountAll returns the number of non-overlapping unit-aligned occurrences of
// needle. An empty needle matches between every unit.
func CountAll(haystack, needle []byte, unit int) int {
	if len(needle) == 0 {
		return len(haystack)/unit + 1
	}
	if unit == 1 {
		return bytes.Count(haystack, needle)
	}

	count := 0
	for off := 0; off+len(needle) <= len(haystack); {
		idx := Index(haystack[off:], needle, unit)
		if idx < 0 {
			break
		}
		count++
		off += idx + len(needle)
	}
	return count
}
