package ascii

// Character classes of the C locale. Bytes with the high bit set belong to
// no class.
const (
	classAlpha uint8 = 1 << iota
	classDigit
	classSpace
	classUpper
	classLower
)

var classTable = func() (t [256]uint8) {
	for c := 'a'; c <= 'z'; c++ {
		t[c] |= classAlpha | classLower
	}
	for c := 'A'; c <= 'Z'; c++ {
		t[c] |= classAlpha | classUpper
	}
	for c := '0'; c <= '9'; c++ {
		t[c] |= classDigit
	}
	for _, c := range []byte{' ', '\t', '\n', '\v', '\f', '\r'} {
		t[c] |= classSpace
	}
	return t
}()

func is(r rune, class uint8) bool {
	if r < 0 || r > 0x7F {
		return false
	}
	return classTable[r]&class != 0
}

func IsAlpha(r rune) bool { return is(r, classAlpha) }
func IsDigit(r rune) bool { return is(r, classDigit) }
func IsSpace(r rune) bool { return is(r, classSpace) }
func IsUpper(r rune) bool { return is(r, classUpper) }
func IsLower(r rune) bool { return is(r, classLower) }
func IsAlnum(r rune) bool { return is(r, classAlpha|classDigit) }
