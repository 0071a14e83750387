package strbuf

import "github.com/mhr3/fixstr/ascii"

// StripType selects which ends of a string Strip and StripChars trim.
type StripType int

const (
	LeftStrip StripType = iota
	RightStrip
	BothStrip
)

// Strip writes buf with leading and/or trailing whitespace removed to out
// and returns the result length in storage units. Trailing NULs count as
// whitespace. Fixed-width outputs are NUL padded to their limit.
func Strip[E Codec](buf, out Cursor[E], st StripType) int {
	return strip(buf, out, st, func(c Cursor[E], trailing bool) bool {
		if trailing && c.Char() == 0 {
			return true
		}
		return c.firstCharIsSpace()
	})
}

// StripChars is like Strip but removes characters found in chars. An empty
// chars copies buf unchanged.
func StripChars[E Codec](buf, chars, out Cursor[E], st StripType) int {
	n := chars.CodepointCount()
	if n == 0 && buf.CodepointCount() > 0 {
		var e E
		size := buf.size(buf.CodepointCount())
		copied := buf.CopyTo(out, size)
		if e.Encoding() != VariableUTF8 {
			out.ZeroFillFrom(copied)
		}
		return size
	}
	set := makeCharSet(chars, n)
	return strip(buf, out, st, func(c Cursor[E], _ bool) bool {
		return set.contains(c.Char())
	})
}

// strip trims the characters strippable reports true for. The trailing
// flag is set during the right-hand scan.
func strip[E Codec](buf, out Cursor[E], st StripType, strippable func(c Cursor[E], trailing bool) bool) int {
	var e E
	isUTF8 := e.Encoding() == VariableUTF8

	n := buf.CodepointCount()
	if n == 0 {
		if !isUTF8 {
			out.ZeroFillFrom(0)
		}
		return 0
	}

	numBytes := buf.Limit() - buf.Pos()
	i := 0
	trav := buf
	if st != RightStrip {
		for i < n && strippable(trav, false) {
			numBytes -= trav.NextCharWidth()
			trav.Advance(1)
			i++
		}
	}

	// j may go negative when the whole string is stripped
	j := n - 1
	if isUTF8 {
		trav = buf.end().Sub(1)
	} else {
		trav = buf.Add(j)
	}
	if st != LeftStrip {
		for j >= i && strippable(trav, true) {
			numBytes -= trav.NextCharWidth()
			trav.Retreat(1)
			j--
		}
	}

	from := buf.Add(i)
	if isUTF8 {
		from.CopyTo(out, numBytes)
		return numBytes
	}
	from.CopyTo(out, j-i+1)
	out.ZeroFillFrom(j - i + 1)
	return j - i + 1
}

// charSet answers membership for the characters of a StripChars argument.
// Sets of byte-sized characters use a bitmap, others a linear scan.
type charSet struct {
	small  bool
	bitmap ascii.CharSet
	runes  []rune
}

func makeCharSet[E Codec](chars Cursor[E], n int) charSet {
	var s charSet
	s.small = true
	for ; n > 0; n-- {
		r := chars.Char()
		s.runes = append(s.runes, r)
		if r >= 0 && r <= 0xFF {
			s.bitmap.Add(byte(r))
		} else {
			s.small = false
		}
		chars.Advance(1)
	}
	return s
}

func (s charSet) contains(r rune) bool {
	if s.small {
		return r >= 0 && r <= 0xFF && s.bitmap.Contains(byte(r))
	}
	for _, x := range s.runes {
		if x == r {
			return true
		}
	}
	return false
}
