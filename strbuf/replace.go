package strbuf

import "github.com/mhr3/fixstr/internal/bytealg"

// replaceable reports whether Replace has any work to do.
func replaceable[E Codec](count int64, n1, n2, n3 int, pat, rep Cursor[E]) bool {
	switch {
	case count <= 0, n1 < n2:
		return false
	case n2 == 0 && n3 == 0:
		return false
	case n2 == n3 && Compare(pat, rep, false) == 0:
		return false
	}
	return true
}

// Replace writes buf with up to count non-overlapping occurrences of pat
// replaced by rep to out, scanning left to right, and returns the result
// length in storage units. An empty pat inserts rep before every character
// and at the end, at most count times in total. Fixed-width outputs are
// NUL padded to their limit.
func Replace[E Codec](buf, pat, rep Cursor[E], count int64, out Cursor[E]) int {
	var e E
	unit := e.unitSize()
	n1, n2, n3 := buf.CodepointCount(), pat.CodepointCount(), rep.CodepointCount()
	end := buf.Pos() + buf.size(n1)*unit
	span2, span3 := pat.size(n2), rep.size(n3)

	ret := 0
	if replaceable(count, n1, n2, n3, pat, rep) {
		if n2 > 0 {
			needle := pat.units(span2)
			for ; count > 0; count-- {
				pos := search(buf.b[buf.pos:end], needle, unit, bytealg.Forward)
				if pos < 0 {
					break
				}
				pos /= unit
				buf.CopyTo(out, pos)
				ret += pos
				out.AdvanceUnits(pos)
				buf.AdvanceUnits(pos)

				rep.CopyTo(out, span3)
				ret += span3
				out.AdvanceUnits(span3)
				buf.AdvanceUnits(span2)
			}
		} else {
			for count > 0 {
				rep.CopyTo(out, span3)
				ret += span3
				out.AdvanceUnits(span3)

				if count--; count <= 0 || buf.pos >= end {
					break
				}
				w := buf.NextCharWidth() / unit
				buf.CopyTo(out, w)
				ret += w
				buf.Advance(1)
				out.Advance(1)
			}
		}
	}

	rest := (end - buf.pos) / unit
	buf.CopyTo(out, rest)
	ret += rest
	if e.Encoding() != VariableUTF8 {
		out.ZeroFillFrom(rest)
	}
	return ret
}

// ReplaceLength returns the length in storage units of the result of
// Replace with the same arguments.
func ReplaceLength[E Codec](buf, pat, rep Cursor[E], count int64) int {
	var e E
	n1, n2, n3 := buf.CodepointCount(), pat.CodepointCount(), rep.CodepointCount()
	size1 := buf.size(n1)
	if !replaceable(count, n1, n2, n3, pat, rep) {
		return size1
	}

	span2, span3 := pat.size(n2), rep.size(n3)
	if n2 == 0 {
		return size1 + int(min(count, int64(n1)+1))*span3
	}
	hay := buf.units(size1)
	matches := int64(bytealg.Search(hay, pat.units(span2), e.unitSize(), bytealg.Count))
	return size1 + int(min(count, matches))*(span3-span2)
}
