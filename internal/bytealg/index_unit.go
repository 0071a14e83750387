package bytealg

import (
	"bytes"
	"encoding/binary"
)

// IndexByte returns the offset of the first c in b, or -1.
func IndexByte(b []byte, c byte) int {
	return bytes.IndexByte(b, c)
}

// LastIndexByte returns the offset of the last c in b, or -1.
func LastIndexByte(b []byte, c byte) int {
	return bytes.LastIndexByte(b, c)
}

// IndexUnit32 returns the byte offset of the first 4-byte code unit equal
// to u, or -1. Trailing bytes that do not form a full unit are ignored.
func IndexUnit32(b []byte, u uint32) int {
	// the low byte is the most selective one for text
	lo := byte(u)
	for off := 0; off+4 <= len(b); {
		idx := bytes.IndexByte(b[off:len(b)-len(b)%4], lo)
		if idx < 0 {
			return -1
		}
		off += idx - idx%4
		if idx%4 == 0 && binary.LittleEndian.Uint32(b[off:]) == u {
			return off
		}
		off += 4
	}
	return -1
}

// LastIndexUnit32 returns the byte offset of the last 4-byte code unit equal
// to u, or -1.
func LastIndexUnit32(b []byte, u uint32) int {
	for off := len(b) - len(b)%4 - 4; off >= 0; off -= 4 {
		if binary.LittleEndian.Uint32(b[off:]) == u {
			return off
		}
	}
	return -1
}
