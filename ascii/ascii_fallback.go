package ascii

import "math/bits"

const lsb64 = 0x0101010101010101

// load64 reads 8 bytes of s as a little-endian word.
func load64[T string | []byte](s T) uint64 {
	_ = s[7]
	return uint64(s[0]) | uint64(s[1])<<8 | uint64(s[2])<<16 | uint64(s[3])<<24 |
		uint64(s[4])<<32 | uint64(s[5])<<40 | uint64(s[6])<<48 | uint64(s[7])<<56
}

func indexMaskGo[T string | []byte](s T, mask byte) int {
	mask64 := uint64(mask) * lsb64

	pos := 0
	for ; len(s)-pos >= 8; pos += 8 {
		if w := load64(s[pos:]) & mask64; w != 0 {
			return pos + bits.TrailingZeros64(w)/8
		}
	}
	for ; pos < len(s); pos++ {
		if s[pos]&mask != 0 {
			return pos
		}
	}
	return -1
}

func isAsciiGo[T string | []byte](s T) bool {
	return indexMaskGo(s, 0x80) == -1
}
