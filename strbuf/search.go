package strbuf

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/mhr3/fixstr/internal/bytealg"
)

// Side selects the end of a string an operation anchors to.
type Side int

const (
	Front Side = iota
	Back
)

// adjustOffsets resolves host-language slice offsets against a string of n
// characters. Negative offsets count from the end. The result may still
// have end < start.
func adjustOffsets(start, end, n int64) (int64, int64) {
	if end > n {
		end = n
	} else if end < 0 {
		end = max(end+n, 0)
	}
	if start < 0 {
		start = max(start+n, 0)
	}
	return start, end
}

// search runs the byte-level search for needle in hay. Single-unit needles
// take the unit scan instead of the substring search.
func search(hay, needle []byte, unit int, mode bytealg.Mode) int {
	if len(needle) == unit && mode != bytealg.Count {
		switch {
		case unit == 1 && mode == bytealg.Forward:
			return bytealg.IndexByte(hay, needle[0])
		case unit == 1:
			return bytealg.LastIndexByte(hay, needle[0])
		case mode == bytealg.Forward:
			return bytealg.IndexUnit32(hay, binary.LittleEndian.Uint32(needle))
		default:
			return bytealg.LastIndexUnit32(hay, binary.LittleEndian.Uint32(needle))
		}
	}
	return bytealg.Search(hay, needle, unit, mode)
}

// window returns the bytes of characters [start, end) of buf1 and the
// significant bytes of the pattern buf2 of n2 characters.
func window[E Codec](buf1, buf2 Cursor[E], start, end int64, n2 int) (hay, needle []byte) {
	lo, hi := buf1.span(int(start), int(end))
	return buf1.b[lo:hi], buf2.units(buf2.size(n2))
}

func find[E Codec](buf1, buf2 Cursor[E], start, end int64, mode bytealg.Mode) int64 {
	n1 := int64(buf1.CodepointCount())
	n2 := buf2.CodepointCount()

	start, end = adjustOffsets(start, end, n1)
	if end-start < int64(n2) {
		return -1
	}
	if n2 == 0 {
		if mode == bytealg.Reverse {
			return end
		}
		return start
	}

	var e E
	hay, needle := window(buf1, buf2, start, end, n2)
	pos := search(hay, needle, e.unitSize(), mode)
	if pos < 0 {
		return -1
	}
	return start + int64(charIndex[E](hay, pos))
}

// Find returns the character index of the first occurrence of buf2 within
// characters [start, end) of buf1, or -1. Offsets follow slice notation.
// An empty pattern is found at start.
func Find[E Codec](buf1, buf2 Cursor[E], start, end int64) int64 {
	return find(buf1, buf2, start, end, bytealg.Forward)
}

// RFind is like Find but returns the last occurrence. An empty pattern is
// found at end.
func RFind[E Codec](buf1, buf2 Cursor[E], start, end int64) int64 {
	return find(buf1, buf2, start, end, bytealg.Reverse)
}

// Index is like Find but reports a missing pattern as ErrValueNotFound,
// returning -2.
func Index[E Codec](buf1, buf2 Cursor[E], start, end int64) (int64, error) {
	pos := Find(buf1, buf2, start, end)
	if pos == -1 {
		tracer().Debugf("index: pattern not in [%d:%d]", start, end)
		return -2, fmt.Errorf("%w: substring not found", ErrValueNotFound)
	}
	return pos, nil
}

// RIndex is like RFind but reports a missing pattern as ErrValueNotFound,
// returning -2.
func RIndex[E Codec](buf1, buf2 Cursor[E], start, end int64) (int64, error) {
	pos := RFind(buf1, buf2, start, end)
	if pos == -1 {
		tracer().Debugf("rindex: pattern not in [%d:%d]", start, end)
		return -2, fmt.Errorf("%w: substring not found", ErrValueNotFound)
	}
	return pos, nil
}

// Count returns the number of non-overlapping occurrences of buf2 within
// characters [start, end) of buf1. An empty pattern matches end-start+1
// times.
func Count[E Codec](buf1, buf2 Cursor[E], start, end int64) int64 {
	n1 := int64(buf1.CodepointCount())
	n2 := buf2.CodepointCount()

	start, end = adjustOffsets(start, end, n1)
	if end < start || end-start < int64(n2) {
		return 0
	}
	if n2 == 0 {
		if end-start == math.MaxInt64 {
			return math.MaxInt64
		}
		return end - start + 1
	}

	var e E
	hay, needle := window(buf1, buf2, start, end, n2)
	return int64(max(search(hay, needle, e.unitSize(), bytealg.Count), 0))
}

// TailMatch reports whether buf2 occurs at the start (Front) or at the end
// (Back) of characters [start, end) of buf1.
func TailMatch[E Codec](buf1, buf2 Cursor[E], start, end int64, side Side) bool {
	n1 := int64(buf1.CodepointCount())
	n2 := buf2.CodepointCount()

	start, end = adjustOffsets(start, end, n1)
	end -= int64(n2)
	if end < start {
		return false
	}
	if n2 == 0 {
		return true
	}

	offset := start
	if side == Back {
		offset = end
	}
	first := buf1.Add(int(offset))
	last := first.Add(n2 - 1)
	if first.Char() != buf2.Char() || last.Char() != buf2.Add(n2-1).Char() {
		return false
	}
	return first.CompareRaw(buf2, buf2.size(n2)) == 0
}

// StartsWith reports whether characters [start, end) of buf1 begin with
// buf2.
func StartsWith[E Codec](buf1, buf2 Cursor[E], start, end int64) bool {
	return TailMatch(buf1, buf2, start, end, Front)
}

// EndsWith reports whether characters [start, end) of buf1 end with buf2.
func EndsWith[E Codec](buf1, buf2 Cursor[E], start, end int64) bool {
	return TailMatch(buf1, buf2, start, end, Back)
}
