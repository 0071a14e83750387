package strbuf

import (
	"fmt"
	"math"
)

// expandTabs walks buf the way ExpandTabs does and calls emit for each run
// of output: n copies of r. emit returns the storage units it produced.
func expandTabs[E Codec](buf Cursor[E], tabSize int64, emit func(r rune, n int64, c Cursor[E]) int64) (int64, error) {
	var newLen, linePos int64
	for i := buf.CodepointCount(); i > 0; i-- {
		ch := buf.Char()
		var add int64
		if ch == '\t' {
			if tabSize > 0 {
				incr := tabSize - linePos%tabSize
				if incr >= math.MaxInt64-newLen {
					return -1, expandOverflow(i)
				}
				linePos += incr
				add = emit(' ', incr, buf)
			}
		} else {
			linePos++
			add = emit(ch, 1, buf)
			if ch == '\n' || ch == '\r' {
				linePos = 0
			}
		}
		newLen += add
		if newLen == math.MaxInt64 || newLen < 0 {
			return -1, expandOverflow(i)
		}
		buf.Advance(1)
	}
	return newLen, nil
}

func expandOverflow(remaining int) error {
	tracer().Debugf("expandtabs: length overflow with %d characters left", remaining)
	return fmt.Errorf("%w: new string is too long", ErrOverflow)
}

// ExpandTabsLength returns the length in storage units of buf with every
// tab replaced by spaces up to the next multiple of tabSize. Columns reset
// after '\n' and '\r'. A tabSize of 0 or less removes tabs. The result is
// exactly what ExpandTabs returns.
func ExpandTabsLength[E Codec](buf Cursor[E], tabSize int64) (int64, error) {
	var e E
	unit := int64(e.unitSize())
	return expandTabs(buf, tabSize, func(_ rune, n int64, c Cursor[E]) int64 {
		if n == 1 {
			return int64(c.NextCharWidth()) / unit
		}
		return n
	})
}

// ExpandTabs writes buf with tabs expanded to out and returns the result
// length in storage units. Fixed-width outputs are NUL padded to their
// limit.
func ExpandTabs[E Codec](buf Cursor[E], tabSize int64, out Cursor[E]) (int64, error) {
	var e E
	n, err := expandTabs(buf, tabSize, func(r rune, n int64, _ Cursor[E]) int64 {
		written := out.Fill(r, int(min(n, math.MaxInt32)))
		out.AdvanceUnits(written)
		return int64(written)
	})
	if err != nil {
		return -1, err
	}
	if e.Encoding() != VariableUTF8 {
		out.ZeroFillFrom(0)
	}
	return n, nil
}
