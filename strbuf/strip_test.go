package strbuf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testStrip[E Codec](t *testing.T) {
	tests := []struct {
		in   string
		st   StripType
		want string
	}{
		{"  hello  ", BothStrip, "hello"},
		{"  hello  ", LeftStrip, "hello  "},
		{"  hello  ", RightStrip, "  hello"},
		{"\t\n hi there \r\v\f", BothStrip, "hi there"},
		{"nothing", BothStrip, "nothing"},
		{"     ", BothStrip, ""},
		{"     ", LeftStrip, ""},
		{"     ", RightStrip, ""},
		{"", BothStrip, ""},
		{"x", BothStrip, "x"},
	}
	for _, tt := range tests {
		out := output[E](16)
		n := Strip(elem[E](tt.in, 12), out, tt.st)
		assert.Equal(t, units[E](tt.want), n, "strip %q", tt.in)
		assert.Equal(t, tt.want, result(out, n), "strip %q", tt.in)
		assert.True(t, padded(out, n), "strip %q leaves garbage", tt.in)
	}
}

func TestStrip(t *testing.T) {
	runAll(t, testStrip[ASCII], testStrip[UTF32], testStrip[UTF8])
}

func TestStripIdempotent(t *testing.T) {
	for _, s := range []string{"  a b  ", " x ", "", "  ", "abc"} {
		out := output[UTF8](16)
		n := Strip(str[UTF8](s), out, BothStrip)
		once := result(out, n)

		again := output[UTF8](16)
		m := Strip(str[UTF8](once), again, BothStrip)
		assert.Equal(t, once, result(again, m))
	}
}

func TestStripUnicodeSpace(t *testing.T) {
	in := "\u2003\u3000hi\u00a0\u2029"

	out := output[UTF8](16)
	n := Strip(str[UTF8](in), out, BothStrip)
	assert.Equal(t, "hi", result(out, n))

	wide := output[UTF32](16)
	n = Strip(elem[UTF32](in, 12), wide, BothStrip)
	assert.Equal(t, 2, n)
	assert.Equal(t, "hi", result(wide, n))

	// only C-locale whitespace counts for single-byte strings
	byt := output[ASCII](8)
	raw := New[ASCII]([]byte{0xA0, 'h', 'i', ' '})
	n = Strip(raw, byt, BothStrip)
	assert.Equal(t, []byte{0xA0, 'h', 'i'}, byt.b[:n])
}

func TestStripTrailingNULs(t *testing.T) {
	out := output[UTF8](8)
	n := Strip(str[UTF8]("hi\x00\x00"), out, RightStrip)
	assert.Equal(t, "hi", result(out, n))

	// leading NULs are not whitespace
	n = Strip(str[UTF8]("\x00hi"), out, LeftStrip)
	assert.Equal(t, "\x00hi", result(out, n))
}

func testStripChars[E Codec](t *testing.T) {
	tests := []struct {
		in, chars string
		st        StripType
		want      string
	}{
		{"xxhixx", "x", BothStrip, "hi"},
		{"xyxhiyx", "xy", LeftStrip, "hiyx"},
		{"xyxhiyx", "xy", RightStrip, "xyxhi"},
		{"ax", "x", RightStrip, "a"},
		{"xa", "x", LeftStrip, "a"},
		{"abab", "ab", BothStrip, ""},
		{"hello", "", BothStrip, "hello"},
		{"", "x", BothStrip, ""},
		{"", "", BothStrip, ""},
		{"  hi  ", "x", BothStrip, "  hi  "},
	}
	for _, tt := range tests {
		out := output[E](16)
		n := StripChars(elem[E](tt.in, 10), str[E](tt.chars), out, tt.st)
		assert.Equal(t, units[E](tt.want), n, "strip %q from %q", tt.chars, tt.in)
		assert.Equal(t, tt.want, result(out, n), "strip %q from %q", tt.chars, tt.in)
		assert.True(t, padded(out, n), "strip %q from %q leaves garbage", tt.chars, tt.in)
	}
}

func TestStripChars(t *testing.T) {
	runAll(t, testStripChars[ASCII], testStripChars[UTF32], testStripChars[UTF8])
}

func TestStripCharsUnicode(t *testing.T) {
	out := output[UTF8](16)
	n := StripChars(str[UTF8]("€€a€b€"), str[UTF8]("€"), out, BothStrip)
	assert.Equal(t, "a€b", result(out, n))

	// a character sharing the lead byte with the set is kept
	n = StripChars(str[UTF8]("₤a€"), str[UTF8]("€"), out, BothStrip)
	assert.Equal(t, "₤a", result(out, n))

	wide := output[UTF32](16)
	n = StripChars(elem[UTF32]("日x本日", 8), str[UTF32]("日本"), wide, BothStrip)
	assert.Equal(t, "x", result(wide, n))
}
