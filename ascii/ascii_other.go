//go:build !amd64 || noasm

package ascii

func ValidString(s string) bool {
	return isAsciiGo(s)
}

func Valid(b []byte) bool {
	return isAsciiGo(b)
}

func IndexMask(s []byte, mask byte) int {
	return indexMaskGo(s, mask)
}
