package utf8

import (
	"strings"
	"testing"
	stdlib "unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCharWidth(t *testing.T) {
	for _, s := range []string{"a", "\x00", "ß", "€", "😀", "߿", "￿", "\U0010ffff"} {
		assert.Equal(t, len(s), CharWidth(s[0]), "CharWidth(%q)", s)
	}
	// continuation bytes and invalid leads always make progress
	for _, b := range []byte{0x80, 0xBF, 0xF8, 0xFF} {
		assert.Equal(t, 1, CharWidth(b), "CharWidth(%#x)", b)
	}
}

func TestRuneCount(t *testing.T) {
	examples := []string{
		"",
		"abc",
		"€€ab",
		"日本語日本語日本語日",
		strings.Repeat("a", 37) + "☺☻☹" + strings.Repeat("b", 9),
		"a\x00b\x00",
		"😀😀😀",
	}
	for _, s := range examples {
		assert.Equal(t, stdlib.RuneCountInString(s), RuneCount([]byte(s)), "RuneCount(%q)", s)
	}
}

func TestNextPreviousCharStart(t *testing.T) {
	b := []byte("a€😀b")
	var starts []int
	for pos := 0; pos < len(b); pos = NextCharStart(b, pos) {
		starts = append(starts, pos)
	}
	require.Equal(t, []int{0, 1, 4, 8}, starts)
	assert.Equal(t, len(b), NextCharStart(b, len(b)))

	assert.Equal(t, 8, PreviousCharStart(b, len(b), 1))
	assert.Equal(t, 4, PreviousCharStart(b, len(b), 2))
	assert.Equal(t, 1, PreviousCharStart(b, 4, 1))
	assert.Equal(t, 0, PreviousCharStart(b, len(b), 4))
	assert.Equal(t, 0, PreviousCharStart(b, len(b), 10))
	assert.Equal(t, 0, PreviousCharStart(b, 0, 1))
}

func TestByteOffsetCharIndex(t *testing.T) {
	s := "ab€€c😀"
	b := []byte(s)
	offsets := []int{0, 1, 2, 5, 8, 9, 13}
	for chars, want := range offsets {
		assert.Equal(t, want, ByteOffset(b, chars), "ByteOffset(%d)", chars)
		assert.Equal(t, chars, CharIndex(b, want), "CharIndex(%d)", want)
	}
	assert.Equal(t, len(b), ByteOffset(b, 100))
	assert.Equal(t, 0, ByteOffset(b, -1))
	assert.Equal(t, 3, ByteOffset([]byte("abcdef"), 3))
	assert.Equal(t, 0, CharIndex(b, 0))
}
