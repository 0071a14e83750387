package strbuf

import (
	"fmt"
	"math"
	stdutf8 "unicode/utf8"
)

// Justify selects where Pad places the original string.
type Justify int

const (
	Left Justify = iota
	Right
	Center
)

// split returns the fill counts on each side for padding n characters to
// width.
func split(pad, width int64, just Justify) (left, right int64) {
	switch just {
	case Left:
		return 0, pad
	case Right:
		return pad, 0
	}
	// odd pads go left only when width is odd too
	left = pad/2 + (pad & width & 1)
	return left, pad - left
}

// fillWidth returns the storage units taken by one fill character.
func fillWidth[E Codec](fill rune) int64 {
	var e E
	if e.Encoding() != VariableUTF8 {
		return 1
	}
	if n := stdutf8.RuneLen(fill); n > 0 {
		return int64(n)
	}
	return 3
}

// PadLength returns the storage units needed for the result of Pad.
func PadLength[E Codec](buf Cursor[E], width int64, fill rune) (int64, error) {
	width = max(width, 0)
	n := int64(buf.CodepointCount())
	size := int64(buf.size(int(n)))
	if n >= width {
		return size, nil
	}
	w := fillWidth[E](fill)
	if width-n > (math.MaxInt64-size)/w {
		return -1, padOverflow(width)
	}
	return size + (width-n)*w, nil
}

func padOverflow(width int64) error {
	tracer().Debugf("pad: width %d overflows", width)
	return fmt.Errorf("%w: padded string is too long", ErrOverflow)
}

// Pad writes buf padded with fill to width characters to out. When buf is
// at least width characters long it is copied unchanged and its length in
// storage units is returned; otherwise the result is width. Center places
// the extra fill character of an odd pad on the left only if width is odd.
// Fixed-width outputs are NUL padded to their limit.
func Pad[E Codec](buf Cursor[E], width int64, fill rune, just Justify, out Cursor[E]) (int64, error) {
	var e E
	width = max(width, 0)
	n := int64(buf.CodepointCount())
	size := buf.size(int(n))

	if n >= width {
		copied := buf.CopyTo(out, size)
		if e.Encoding() != VariableUTF8 {
			out.ZeroFillFrom(copied)
		}
		return int64(size), nil
	}
	if _, err := PadLength(buf, width, fill); err != nil {
		return -1, err
	}

	left, right := split(width-n, width, just)
	if left > 0 {
		out.AdvanceUnits(out.Fill(fill, int(left)))
	}
	buf.CopyTo(out, size)
	out.Advance(int(n))
	if right > 0 {
		out.AdvanceUnits(out.Fill(fill, int(right)))
	}
	if e.Encoding() != VariableUTF8 {
		out.ZeroFillFrom(0)
	}
	return width, nil
}

// ZFill writes buf padded on the left with '0' to width characters to out.
// A leading sign moves in front of the zeros.
func ZFill[E Codec](buf Cursor[E], width int64, out Cursor[E]) (int64, error) {
	n, err := Pad(buf, width, '0', Right, out)
	if err != nil {
		return -1, err
	}

	offset := max(max(width, 0)-int64(buf.CodepointCount()), 0)
	sign := out.Add(int(offset))
	if c := sign.Char(); c == '+' || c == '-' {
		sign.Fill('0', 1)
		out.Fill(c, 1)
	}
	return n, nil
}
