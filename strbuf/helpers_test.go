package strbuf

import (
	"encoding/binary"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// runAll runs one generic test body once per encoding.
func runAll(t *testing.T, fa, fw, fu func(*testing.T)) {
	t.Run("ascii", fa)
	t.Run("utf32", fw)
	t.Run("utf8", fu)
}

// elem encodes s as an element of encoding E. Fixed-width elements are NUL
// padded to size characters; UTF8 elements take exactly the bytes of s.
func elem[E Codec](s string, size int) Cursor[E] {
	var e E
	switch e.Encoding() {
	case FixedByte:
		b := make([]byte, max(size, len(s)))
		copy(b, s)
		return New[E](b)
	case FixedWide:
		rs := []rune(s)
		b := make([]byte, 4*max(size, len(rs)))
		for i, r := range rs {
			binary.LittleEndian.PutUint32(b[4*i:], uint32(r))
		}
		return New[E](b)
	}
	return New[E]([]byte(s))
}

// str is elem without padding.
func str[E Codec](s string) Cursor[E] {
	return elem[E](s, 0)
}

// output returns an output element with room for chars characters, filled
// with garbage so that missing NUL padding shows up.
func output[E Codec](chars int) Cursor[E] {
	var e E
	b := make([]byte, chars*4)
	if e.Encoding() == FixedByte {
		b = b[:chars]
	}
	for i := range b {
		b[i] = 0x7E
	}
	return New[E](b)
}

// decode returns the string held in b. Trailing NULs of fixed-width
// elements are dropped.
func decode[E Codec](b []byte) string {
	var e E
	switch e.Encoding() {
	case FixedByte:
		return strings.TrimRight(string(b), "\x00")
	case FixedWide:
		var sb strings.Builder
		for i := 0; i+4 <= len(b); i += 4 {
			sb.WriteRune(rune(binary.LittleEndian.Uint32(b[i:])))
		}
		return strings.TrimRight(sb.String(), "\x00")
	}
	return string(b)
}

// result returns the first n storage units of out as a string.
func result[E Codec](out Cursor[E], n int) string {
	var e E
	return decode[E](out.b[:n*e.unitSize()])
}

// padded reports whether every byte of out after n storage units is NUL.
// It always holds for UTF8, which is not padded.
func padded[E Codec](out Cursor[E], n int) bool {
	var e E
	if e.Encoding() == VariableUTF8 {
		return true
	}
	return isZero(out.b[n*e.unitSize():])
}

// units returns the storage units of s in encoding E.
func units[E Codec](s string) int {
	var e E
	switch e.Encoding() {
	case FixedByte:
		return len(s)
	case FixedWide:
		return len([]rune(s))
	}
	return len(s)
}

// redirectTracing routes the package tracer to t at debug level until the
// test ends.
func redirectTracing(t *testing.T) {
	tracer := gotestingadapter.New(t)
	tracer.SetTraceLevel(tracing.LevelDebug)
	tracing.SetTraceSelector(tracing.SelectorForAdapter(func() tracing.Trace { return tracer }))
	t.Cleanup(func() { tracing.SetTraceSelector(nil) })
}
