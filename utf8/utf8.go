// Package utf8 holds the UTF-8 boundary and counting helpers used by the
// variable-width string kernels. Unlike unicode/utf8 the helpers work on
// positions inside one element buffer and never step outside it.
package utf8

import (
	stdlib "unicode/utf8"

	"github.com/mhr3/fixstr/ascii"
)

// CharWidth returns the length of the sequence introduced by lead byte b,
// judged from the lead byte alone. Continuation and invalid lead bytes
// count as 1 so that a forward walk always makes progress.
func CharWidth(b byte) int {
	switch {
	case b < 0xC0:
		return 1
	case b < 0xE0:
		return 2
	case b < 0xF0:
		return 3
	case b < 0xF8:
		return 4
	}
	return 1
}

// NextCharStart returns the position following the character starting at
// pos, clamped to len(b).
func NextCharStart(b []byte, pos int) int {
	if pos >= len(b) {
		return len(b)
	}
	pos += CharWidth(b[pos])
	if pos > len(b) {
		return len(b)
	}
	return pos
}

// PreviousCharStart walks back n characters from pos and returns the start
// of the n-th preceding character. It stops at 0.
func PreviousCharStart(b []byte, pos, n int) int {
	if pos > len(b) {
		pos = len(b)
	}
	for ; n > 0 && pos > 0; n-- {
		pos--
		for pos > 0 && !stdlib.RuneStart(b[pos]) {
			pos--
		}
	}
	return pos
}

// ByteOffset returns the byte position of the character with index chars
// counted from the start of b, clamped to len(b).
func ByteOffset(b []byte, chars int) int {
	// ASCII prefixes map one to one
	idx := ascii.IndexMask(b, 0x80)
	if idx == -1 || idx >= chars {
		return max(0, min(chars, len(b)))
	}
	pos := idx
	for chars -= idx; chars > 0 && pos < len(b); chars-- {
		pos = NextCharStart(b, pos)
	}
	return pos
}

// RuneCount returns the number of characters in b. Every byte range that
// starts a sequence counts once; a truncated trailing sequence counts as
// one character.
func RuneCount(b []byte) int {
	idx := ascii.IndexMask(b, 0x80)
	if idx == -1 {
		return len(b)
	}
	n := idx
	for pos := idx; pos < len(b); pos = NextCharStart(b, pos) {
		n++
	}
	return n
}

// CharIndex converts byte offset byteIdx inside b into a character index.
func CharIndex(b []byte, byteIdx int) int {
	if byteIdx <= 0 {
		return 0
	}
	return RuneCount(b[:min(byteIdx, len(b))])
}
