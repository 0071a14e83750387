package strbuf

import (
	"fmt"
	"math"
)

// Partition splits buf around the separator sep found at character index
// idx into before, sep and after, written to out1, out2 and out3, and
// returns their lengths in characters. A negative idx means sep was not
// found: the whole string goes to out1 for Front and to out3 for Back.
// An empty sep fails with ErrInvalidArgument and lengths of -1.
//
// Partition works on the fixed-width encodings only and panics for UTF8.
func Partition[E Codec](buf, sep Cursor[E], idx int64, side Side, out1, out2, out3 Cursor[E]) (n1, n2, n3 int64, err error) {
	var e E
	if e.Encoding() == VariableUTF8 {
		panic("strbuf: Partition called on variable-width strings")
	}

	size := int64(buf.CodepointCount())
	sepSize := int64(sep.CodepointCount())
	if sepSize == 0 {
		tracer().Debugf("partition: empty separator")
		return -1, -1, -1, fmt.Errorf("%w: empty separator", ErrInvalidArgument)
	}

	if idx < 0 {
		out2.ZeroFillFrom(0)
		if side == Front {
			copyPart(buf, out1, size)
			out3.ZeroFillFrom(0)
			return size, 0, 0, nil
		}
		copyPart(buf, out3, size)
		out1.ZeroFillFrom(0)
		return 0, 0, size, nil
	}

	idx = min(idx, size)
	n3 = max(size-idx-sepSize, 0)
	copyPart(buf, out1, idx)
	copyPart(sep, out2, sepSize)
	copyPart(buf.Add(int(idx+sepSize)), out3, n3)
	return idx, sepSize, n3, nil
}

// copyPart copies n characters of from to out and NUL pads the rest.
func copyPart[E Codec](from, out Cursor[E], n int64) {
	from.CopyTo(out, int(n))
	out.ZeroFillFrom(int(n))
}

// PartitionFront splits buf at the first occurrence of sep.
func PartitionFront[E Codec](buf, sep, out1, out2, out3 Cursor[E]) (n1, n2, n3 int64, err error) {
	idx := Find(buf, sep, 0, math.MaxInt64)
	return Partition(buf, sep, idx, Front, out1, out2, out3)
}

// PartitionBack splits buf at the last occurrence of sep.
func PartitionBack[E Codec](buf, sep, out1, out2, out3 Cursor[E]) (n1, n2, n3 int64, err error) {
	idx := RFind(buf, sep, 0, math.MaxInt64)
	return Partition(buf, sep, idx, Back, out1, out2, out3)
}
