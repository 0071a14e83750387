package ascii

// CharSet is a membership set over the 256 byte values.
type CharSet [4]uint64

// MakeCharSet returns the set of the bytes of chars.
func MakeCharSet[T string | []byte](chars T) CharSet {
	var cs CharSet
	for i := 0; i < len(chars); i++ {
		cs.Add(chars[i])
	}
	return cs
}

// Add inserts c.
func (cs *CharSet) Add(c byte) {
	cs[c>>6] |= 1 << (c & 63)
}

// Contains reports whether c is in the set.
func (cs *CharSet) Contains(c byte) bool {
	return cs[c>>6]&(1<<(c&63)) != 0
}

