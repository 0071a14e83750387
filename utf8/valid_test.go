package utf8

import (
	"strings"
	"testing"
	stdlib "unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestValid(t *testing.T) {
	tests := map[string]string{
		"empty":           "",
		"ascii":           "key=value",
		"two byte":        "brэд",
		"three byte":      "日本語",
		"four byte":       "😀",
		"max code point":  "\xF4\x8F\xBF\xBF",
		"past max":        "\xF4\x90\x80\x80",
		"overlong nul":    "\xc0\x80",
		"overlong three":  "\xE0\x80\x80",
		"high surrogate":  "\xed\xa0\x80",
		"low surrogate":   "\xed\xbf\xbf",
		"truncated":       "aa\xE2",
		"stray cont":      "a\x80b",
		"invalid lead":    "B\xfaC",
		"five byte lead":  "\xFB\xBF\xBF\xBF\xBF",
		"replacement":     "a�b",
		"late invalid":    strings.Repeat("0", 127) + "\xc60",
		"late truncated":  strings.Repeat("a", 63) + "\xE2",
		"late valid":      strings.Repeat("a", 61) + "☺☻☹",
		"mixed long tail": strings.Repeat("0123456789", 7) + "߀訨",
	}
	for name, s := range tests {
		t.Run(name, func(t *testing.T) {
			want := stdlib.ValidString(s)
			assert.Equal(t, want, ValidString(s))
			assert.Equal(t, want, Valid([]byte(s)))
		})
	}
}

func TestValidTwoByteSweep(t *testing.T) {
	// every lead byte followed by a representative second byte, behind an
	// ASCII prefix of varying length
	for lead := 0; lead < 256; lead++ {
		for _, second := range []byte{0x00, 0x41, 0x80, 0x9F, 0xA0, 0xBF, 0xC0, 0xFF} {
			for _, prefix := range []int{0, 7, 31, 32} {
				s := strings.Repeat("x", prefix) + string([]byte{byte(lead), second})
				assert.Equal(t, stdlib.ValidString(s), ValidString(s), "%q", s)
				assert.Equal(t, stdlib.Valid([]byte(s)), Valid([]byte(s)), "%q", s)
			}
		}
	}
}

var mostlyASCII = func() string {
	var b strings.Builder
	for i := 0; b.Len() < 100_000; i++ {
		if i%100 == 0 {
			b.WriteString("日本語")
		} else {
			b.WriteString("0123456789")
		}
	}
	return b.String()
}()

func BenchmarkValidString(b *testing.B) {
	inputs := map[string]string{
		"ascii":        strings.Repeat("0123456789", 10_000),
		"mostly-ascii": mostlyASCII,
		"japanese":     strings.Repeat("日本語", 10_000),
	}
	for name, s := range inputs {
		b.Run(name+"/std", func(b *testing.B) {
			b.SetBytes(int64(len(s)))
			for i := 0; i < b.N; i++ {
				stdlib.ValidString(s)
			}
		})
		b.Run(name+"/fixstr", func(b *testing.B) {
			b.SetBytes(int64(len(s)))
			for i := 0; i < b.N; i++ {
				ValidString(s)
			}
		})
	}
}
