package strbuf

import (
	"bytes"

	"github.com/mhr3/fixstr/ascii"
	"github.com/mhr3/fixstr/utf8"
)

// Cursor is a position inside one element's byte range, bound to encoding E.
//
// A Cursor does not own the bytes it points into; it is a view whose
// lifetime is bounded by the caller's element buffer. The limit is len of
// the viewed range. The position is always between 0 and the limit; moves
// that would leave the range stop at its edge.
type Cursor[E Codec] struct {
	b   []byte
	pos int
}

// New returns a Cursor at the start of element b.
func New[E Codec](b []byte) Cursor[E] {
	return Cursor[E]{b: b}
}

// Encoding returns the encoding the cursor is bound to.
func (c Cursor[E]) Encoding() Encoding {
	var e E
	return e.Encoding()
}

// Pos returns the byte position of the cursor.
func (c Cursor[E]) Pos() int { return c.pos }

// Limit returns the byte position one past the end of the element.
func (c Cursor[E]) Limit() int { return len(c.b) }

// Bytes returns the bytes from the cursor position to the limit.
func (c Cursor[E]) Bytes() []byte { return c.b[c.pos:] }

func (c Cursor[E]) end() Cursor[E] {
	return Cursor[E]{b: c.b, pos: len(c.b)}
}

// CodepointCount returns the number of characters from the cursor to the
// limit. For the fixed-width encodings trailing NUL code units are padding
// and are not counted.
func (c Cursor[E]) CodepointCount() int {
	var e E
	if e.Encoding() == VariableUTF8 {
		return utf8.RuneCount(c.b[c.pos:])
	}

	unit := e.unitSize()
	end := len(c.b) - (len(c.b)-c.pos)%unit
	for end > c.pos && isZero(c.b[end-unit:end]) {
		end -= unit
	}
	return (end - c.pos) / unit
}

func isZero(b []byte) bool {
	for _, x := range b {
		if x != 0 {
			return false
		}
	}
	return true
}

// Advance moves the cursor n characters forward.
func (c *Cursor[E]) Advance(n int) {
	if n < 0 {
		c.Retreat(-n)
		return
	}
	var e E
	if e.Encoding() == VariableUTF8 {
		for ; n > 0 && c.pos < len(c.b); n-- {
			c.pos = utf8.NextCharStart(c.b, c.pos)
		}
		return
	}
	c.pos = min(c.pos+n*e.unitSize(), len(c.b))
}

// Retreat moves the cursor n characters backward.
func (c *Cursor[E]) Retreat(n int) {
	if n < 0 {
		c.Advance(-n)
		return
	}
	var e E
	if e.Encoding() == VariableUTF8 {
		c.pos = utf8.PreviousCharStart(c.b, c.pos, n)
		return
	}
	c.pos = max(c.pos-n*e.unitSize(), 0)
}

// Add returns a copy of c advanced by n characters.
func (c Cursor[E]) Add(n int) Cursor[E] {
	c.Advance(n)
	return c
}

// Sub returns a copy of c moved back by n characters.
func (c Cursor[E]) Sub(n int) Cursor[E] {
	c.Retreat(n)
	return c
}

// AdvanceUnits moves the cursor n storage units forward: characters for
// the fixed-width encodings, bytes for UTF-8.
func (c *Cursor[E]) AdvanceUnits(n int) {
	var e E
	c.pos = max(0, min(c.pos+n*e.unitSize(), len(c.b)))
}

// Char decodes the character at the cursor. At the limit it returns 0.
func (c Cursor[E]) Char() rune {
	if c.pos >= len(c.b) {
		return 0
	}
	var e E
	r, _ := e.decode(c.b[c.pos:])
	return r
}

// NextCharWidth returns the byte width of the character at the cursor.
func (c Cursor[E]) NextCharWidth() int {
	if c.pos >= len(c.b) {
		return 0
	}
	var e E
	return e.charWidth(c.b[c.pos:])
}

// Distance returns the number of storage units from o to c. Both cursors
// must view the same element.
func (c Cursor[E]) Distance(o Cursor[E]) int {
	var e E
	return (c.pos - o.pos) / e.unitSize()
}

// units returns the next n storage units, clamped to the limit.
func (c Cursor[E]) units(n int) []byte {
	var e E
	end := c.pos + max(n, 0)*e.unitSize()
	return c.b[c.pos:min(end, len(c.b))]
}

// CompareRaw compares the next n storage units of c and o bytewise. The
// unit is a byte for ASCII and UTF-8 and a code unit for UTF32.
func (c Cursor[E]) CompareRaw(o Cursor[E], n int) int {
	if n <= 0 {
		return 0
	}
	return bytes.Compare(c.units(n), o.units(n))
}

// CopyTo copies the next n storage units of c to the position of out and
// returns the number of units copied. The copy stops at out's limit.
func (c Cursor[E]) CopyTo(out Cursor[E], n int) int {
	if n <= 0 {
		return 0
	}
	var e E
	unit := e.unitSize()
	src := c.units(n)
	dst := out.b[out.pos:]
	m := min(len(src), len(dst))
	m -= m % unit
	return copy(dst[:m], src[:m]) / unit
}

// Fill writes n copies of r at the cursor and returns the number of
// storage units written. Only whole characters are written and the fill
// stops at the limit.
func (c Cursor[E]) Fill(r rune, n int) int {
	var e E
	var enc [4]byte
	w := e.encode(enc[:], r)
	if w == 0 {
		return 0
	}
	dst := c.b[c.pos:]
	written := 0
	for ; n > 0 && written+w <= len(dst); n-- {
		copy(dst[written:], enc[:w])
		written += w
	}
	return written / e.unitSize()
}

// ZeroFillFrom clears every byte from the character with index start
// (relative to the cursor) up to the limit.
func (c Cursor[E]) ZeroFillFrom(start int) {
	clear(c.b[c.Add(start).pos:])
}

// Equal reports whether c and o are at the same position.
func (c Cursor[E]) Equal(o Cursor[E]) bool { return c.pos == o.pos }

// Less reports whether c is before o.
func (c Cursor[E]) Less(o Cursor[E]) bool { return c.pos < o.pos }

// LessEqual reports whether c is not after o.
func (c Cursor[E]) LessEqual(o Cursor[E]) bool { return c.pos <= o.pos }

// span returns the byte positions of the characters with indices start and
// end, counted from the cursor.
func (c Cursor[E]) span(start, end int) (int, int) {
	var e E
	if e.Encoding() == VariableUTF8 {
		b := c.b[c.pos:]
		lo := utf8.ByteOffset(b, start)
		hi := lo + utf8.ByteOffset(b[lo:], end-start)
		return c.pos + lo, c.pos + hi
	}
	unit := e.unitSize()
	return min(c.pos+start*unit, len(c.b)), min(c.pos+end*unit, len(c.b))
}

// charIndex converts byte offset off inside b into a character index.
func charIndex[E Codec](b []byte, off int) int {
	var e E
	if e.Encoding() == VariableUTF8 {
		return utf8.CharIndex(b, off)
	}
	return off / e.unitSize()
}

// size returns the storage units of the string at the cursor given its
// codepoint count n: n itself for the fixed encodings, the byte length of
// the whole range for UTF-8.
func (c Cursor[E]) size(n int) int {
	var e E
	if e.Encoding() == VariableUTF8 {
		return len(c.b) - c.pos
	}
	return n
}

// rstrip returns c with trailing NULs and ASCII whitespace cut off the end
// of the viewed range.
func (c Cursor[E]) rstrip() Cursor[E] {
	end := c.end()
	for end.pos > c.pos {
		prev := end.Sub(1)
		if r := prev.Char(); r != 0 && !ascii.IsSpace(r) {
			break
		}
		end = prev
	}
	return Cursor[E]{b: c.b[:end.pos], pos: c.pos}
}

func (c Cursor[E]) firstCharIsSpace() bool {
	var e E
	return e.classifier().IsSpace(c.Char())
}
