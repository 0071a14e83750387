package strbuf

// Compare compares the strings at a and b by code point and returns -1, 0
// or +1. Trailing NULs never make a difference. With rstrip set, trailing
// ASCII whitespace is ignored as well.
func Compare[E Codec](a, b Cursor[E], rstrip bool) int {
	if rstrip {
		a, b = a.rstrip(), b.rstrip()
	}

	for a.pos < len(a.b) && b.pos < len(b.b) {
		ca, cb := a.Char(), b.Char()
		if ca < cb {
			return -1
		}
		if ca > cb {
			return 1
		}
		a.Advance(1)
		b.Advance(1)
	}
	for ; a.pos < len(a.b); a.Advance(1) {
		if a.Char() != 0 {
			return 1
		}
	}
	for ; b.pos < len(b.b); b.Advance(1) {
		if b.Char() != 0 {
			return -1
		}
	}
	return 0
}
