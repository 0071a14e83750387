package strarray

import (
	"bytes"
	"encoding/binary"
	"slices"

	"github.com/mhr3/fixstr/strbuf"
	"github.com/segmentio/asm/qsort"
)

// Sort returns a copy of a with its elements in ascending code point order,
// together with the permutation applied: element k of the result is element
// perm[k] of a. Equal fixed-width elements may be reordered; UTF-8 arrays
// are sorted stably.
func Sort(a *Array) (*Array, []int) {
	perm := make([]int, a.Len())
	for i := range perm {
		perm[i] = i
	}

	if a.enc == strbuf.VariableUTF8 {
		slices.SortStableFunc(perm, func(i, j int) int {
			return bytes.Compare(a.Item(i), a.Item(j))
		})
		return a.gather(perm), perm
	}

	// qsort orders big-endian keys; wide code units are stored little-endian
	keys := bytes.Clone(a.data)
	if a.enc == strbuf.FixedWide {
		swapUnits(keys)
	}
	if len(keys) > 0 {
		qsort.Sort(keys, a.itemsize, func(i, j int) {
			perm[i], perm[j] = perm[j], perm[i]
		})
	}
	if a.enc == strbuf.FixedWide {
		swapUnits(keys)
	}
	tracer().Debugf("strarray: sorted %d elements of %d bytes", len(perm), a.itemsize)
	return &Array{enc: a.enc, itemsize: a.itemsize, data: keys}, perm
}

// swapUnits reverses the byte order of every 4-byte unit of b.
func swapUnits(b []byte) {
	for i := 0; i+4 <= len(b); i += 4 {
		binary.BigEndian.PutUint32(b[i:], binary.LittleEndian.Uint32(b[i:]))
	}
}
