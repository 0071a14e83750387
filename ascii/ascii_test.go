package ascii

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"
	"unicode"

	segascii "github.com/segmentio/asm/ascii"
	"github.com/stretchr/testify/assert"
)

func randomASCII(rng *rand.Rand, n int) []byte {
	data := make([]byte, n)
	for i := range data {
		data[i] = byte(rng.Intn(0x80))
	}
	return data
}

func TestValid(t *testing.T) {
	tests := map[string]bool{
		"":                 true,
		"a":                true,
		"hellowor":         true,
		"\x00\x00\x00\x00": true,
		"tab\there":        true,
		"Ж":                false,
		"☺☻☹":              false,
		"aa\xe2":           false,
		"hellowo\xff":      false,
		"\xc0\x80":         false,
		"\x7f\x80":         false,
	}
	for in, want := range tests {
		for _, prefix := range []string{"", "0123456789ab", strings.Repeat("x", 33)} {
			s := prefix + in
			assert.Equal(t, want, ValidString(s), "ValidString(%q)", s)
			assert.Equal(t, want, Valid([]byte(s)), "Valid(%q)", s)
		}
	}
}

func TestValidMatchesSegment(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for n := 0; n < 300; n++ {
		data := randomASCII(rng, n)
		if n > 0 && n%3 == 0 {
			data[rng.Intn(n)] |= 0x80
		}
		want := segascii.Valid(data)
		assert.Equal(t, want, Valid(data), "Valid([%d])", n)
		assert.Equal(t, want, isAsciiGo(data), "isAsciiGo([%d])", n)
		assert.Equal(t, want, isAsciiGo(string(data)), "isAsciiGo(%d bytes)", n)
	}
}

func TestIndexMask(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for n := 1; n < 600; n++ {
		data := randomASCII(rng, n)
		assert.Equal(t, -1, IndexMask(data, 0x80))

		idx := rng.Intn(n)
		data[idx] |= 0x80
		if !assert.Equal(t, idx, IndexMask(data, 0x80), "IndexMask([%d])", n) {
			return
		}
	}

	// any bit of the mask hits
	assert.Equal(t, 2, IndexMask([]byte("\x01\x02\x0c\x10"), 0x0c))
	assert.Equal(t, 9, IndexMask([]byte("aaaaaaaaa\x80"), 0x80))
	assert.Equal(t, -1, IndexMask(nil, 0xff))
}

func TestCharSet(t *testing.T) {
	tests := []struct {
		chars string
		in    string
		out   string
	}{
		{"", "", "a\x00\xff"},
		{" \t", " \t", "\n\v"},
		{"\x00", "\x00", "0"},
		{"\xff\x80", "\xff\x80", "\x7f\xfe"},
	}
	for _, tt := range tests {
		cs := MakeCharSet(tt.chars)
		for i := 0; i < len(tt.in); i++ {
			assert.True(t, cs.Contains(tt.in[i]), "MakeCharSet(%q).Contains(%#x)", tt.chars, tt.in[i])
		}
		for i := 0; i < len(tt.out); i++ {
			assert.False(t, cs.Contains(tt.out[i]), "MakeCharSet(%q).Contains(%#x)", tt.chars, tt.out[i])
		}
	}

	var cs CharSet
	cs.Add('a')
	cs.Add('c')
	for c := 0; c < 256; c++ {
		assert.Equal(t, c == 'a' || c == 'c', cs.Contains(byte(c)), "Contains(%#x)", c)
	}
	assert.Equal(t, cs, MakeCharSet([]byte("cac")))
}

func TestClass(t *testing.T) {
	for r := rune(0); r < 0x80; r++ {
		assert.Equal(t, unicode.IsLetter(r), IsAlpha(r), "IsAlpha(%q)", r)
		assert.Equal(t, unicode.IsDigit(r), IsDigit(r), "IsDigit(%q)", r)
		assert.Equal(t, unicode.IsUpper(r), IsUpper(r), "IsUpper(%q)", r)
		assert.Equal(t, unicode.IsLower(r), IsLower(r), "IsLower(%q)", r)
		assert.Equal(t, unicode.IsLetter(r) || unicode.IsDigit(r), IsAlnum(r), "IsAlnum(%q)", r)
		assert.Equal(t, r == ' ' || (r >= '\t' && r <= '\r'), IsSpace(r), "IsSpace(%q)", r)
	}

	// outside the C locale nothing is classified
	for _, r := range []rune{0x80, 0xAA, 0xC0, 0xE9, 0xA0, 0x85, -1, 'Ж'} {
		assert.False(t, IsAlpha(r) || IsSpace(r) || IsUpper(r) || IsLower(r) || IsDigit(r), "class(%#x)", r)
	}
}

func BenchmarkValid(b *testing.B) {
	rng := rand.New(rand.NewSource(3))
	for _, n := range []int{7, 44, 1000} {
		s := string(randomASCII(rng, n))
		b.Run(fmt.Sprintf("go-%d", n), func(b *testing.B) {
			b.SetBytes(int64(n))
			for i := 0; i < b.N; i++ {
				isAsciiGo(s)
			}
		})
		b.Run(fmt.Sprintf("dispatch-%d", n), func(b *testing.B) {
			b.SetBytes(int64(n))
			for i := 0; i < b.N; i++ {
				ValidString(s)
			}
		})
	}
}
