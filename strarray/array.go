package strarray

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
	"strings"
	stdutf8 "unicode/utf8"

	"github.com/mhr3/fixstr/strbuf"
	"github.com/mhr3/fixstr/utf8"
)

// Array is a flat array of strings of one encoding.
type Array struct {
	enc      strbuf.Encoding
	itemsize int // bytes per element; 0 for VariableUTF8
	data     []byte
	offsets  []int // VariableUTF8 only; element i is data[offsets[i]:offsets[i+1]]
}

func unitSize(enc strbuf.Encoding) int {
	if enc == strbuf.FixedWide {
		return 4
	}
	return 1
}

// New wraps data as an array of fixed-width elements of itemsize bytes.
// data is not copied.
func New(enc strbuf.Encoding, itemsize int, data []byte) (*Array, error) {
	switch {
	case enc == strbuf.VariableUTF8:
		return nil, fmt.Errorf("%w: variable-width arrays need offsets", ErrInvalidArray)
	case itemsize <= 0 || itemsize%unitSize(enc) != 0:
		return nil, fmt.Errorf("%w: itemsize %d for %v", ErrInvalidArray, itemsize, enc)
	case len(data)%itemsize != 0:
		return nil, fmt.Errorf("%w: %d bytes is not a multiple of itemsize %d", ErrInvalidArray, len(data), itemsize)
	}
	return &Array{enc: enc, itemsize: itemsize, data: data}, nil
}

// NewUTF8 wraps data as an array of UTF-8 elements delimited by offsets,
// which must start at 0, never decrease and end within data. Every element
// must be valid UTF-8. Neither slice is copied.
func NewUTF8(data []byte, offsets []int) (*Array, error) {
	if len(offsets) == 0 || offsets[0] != 0 {
		return nil, fmt.Errorf("%w: offsets must start at 0", ErrInvalidArray)
	}
	for i := 1; i < len(offsets); i++ {
		if offsets[i] < offsets[i-1] {
			return nil, fmt.Errorf("%w: offsets decrease at %d", ErrInvalidArray, i)
		}
	}
	if offsets[len(offsets)-1] > len(data) {
		return nil, fmt.Errorf("%w: offsets reach past data", ErrInvalidArray)
	}
	for i := 1; i < len(offsets); i++ {
		if !utf8.Valid(data[offsets[i-1]:offsets[i]]) {
			return nil, fmt.Errorf("%w: element %d is not valid UTF-8", ErrInvalidArray, i-1)
		}
	}
	return &Array{enc: strbuf.VariableUTF8, data: data, offsets: offsets}, nil
}

// FromStrings encodes strs into a new array. For the fixed-width encodings
// an itemsize of 0 picks the smallest size that fits every element; the
// itemsize is ignored for VariableUTF8. FixedByte stores the bytes of each
// string as they are; the other encodings require valid UTF-8 input.
func FromStrings(enc strbuf.Encoding, itemsize int, strs []string) (*Array, error) {
	for i, s := range strs {
		if enc != strbuf.FixedByte && !utf8.ValidString(s) {
			return nil, fmt.Errorf("%w: element %d is not valid UTF-8", ErrInvalidArray, i)
		}
	}

	if enc == strbuf.VariableUTF8 {
		offsets := make([]int, len(strs)+1)
		var data []byte
		for i, s := range strs {
			data = append(data, s...)
			offsets[i+1] = len(data)
		}
		return NewUTF8(data, offsets)
	}

	need := unitSize(enc)
	for _, s := range strs {
		need = max(need, encodedLen(enc, s))
	}
	if itemsize == 0 {
		itemsize = need
	}
	if itemsize < need {
		return nil, fmt.Errorf("%w: itemsize %d is too small, need %d", ErrInvalidArray, itemsize, need)
	}

	a, err := New(enc, itemsize, make([]byte, itemsize*len(strs)))
	if err != nil {
		return nil, err
	}
	for i, s := range strs {
		encode(enc, a.Item(i), s)
	}
	return a, nil
}

// encodedLen returns the bytes s takes in encoding enc.
func encodedLen(enc strbuf.Encoding, s string) int {
	if enc == strbuf.FixedWide {
		return 4 * stdutf8.RuneCountInString(s)
	}
	return len(s)
}

// encode writes s to dst in encoding enc.
func encode(enc strbuf.Encoding, dst []byte, s string) {
	if enc != strbuf.FixedWide {
		copy(dst, s)
		return
	}
	i := 0
	for _, r := range s {
		binary.LittleEndian.PutUint32(dst[i:], uint32(r))
		i += 4
	}
}

// encodePattern returns s encoded as a standalone element of encoding enc.
func encodePattern(enc strbuf.Encoding, s string) []byte {
	b := make([]byte, encodedLen(enc, s))
	encode(enc, b, s)
	return b
}

// Encoding returns the encoding of the elements.
func (a *Array) Encoding() strbuf.Encoding { return a.enc }

// ItemSize returns the bytes per element, or 0 for VariableUTF8 arrays.
func (a *Array) ItemSize() int { return a.itemsize }

// Len returns the number of elements.
func (a *Array) Len() int {
	if a.enc == strbuf.VariableUTF8 {
		return len(a.offsets) - 1
	}
	return len(a.data) / a.itemsize
}

// Item returns the bytes of element i, including padding.
func (a *Array) Item(i int) []byte {
	if a.enc == strbuf.VariableUTF8 {
		return a.data[a.offsets[i]:a.offsets[i+1]:a.offsets[i+1]]
	}
	lo := i * a.itemsize
	return a.data[lo : lo+a.itemsize : lo+a.itemsize]
}

// String decodes element i. Padding NULs are dropped.
func (a *Array) String(i int) string {
	item := a.Item(i)
	switch a.enc {
	case strbuf.FixedByte:
		return string(bytes.TrimRight(item, "\x00"))
	case strbuf.FixedWide:
		var sb strings.Builder
		for off := 0; off+4 <= len(item); off += 4 {
			sb.WriteRune(rune(binary.LittleEndian.Uint32(item[off:])))
		}
		return strings.TrimRight(sb.String(), "\x00")
	}
	return string(item)
}

// Strings decodes every element.
func (a *Array) Strings() []string {
	strs := make([]string, a.Len())
	for i := range strs {
		strs[i] = a.String(i)
	}
	return strs
}

// maxDataBytes bounds the data of arrays allocated for results.
const maxDataBytes = min(1<<40, math.MaxInt)

// layoutSize returns the data bytes layout(enc, lengths) allocates. Every
// length must be at most maxDataBytes/unitSize(enc); the sum saturates at
// maxDataBytes+1.
func layoutSize(enc strbuf.Encoding, lengths []int) int64 {
	unit := int64(unitSize(enc))
	if enc != strbuf.VariableUTF8 {
		widest := int64(1)
		for _, n := range lengths {
			widest = max(widest, int64(n))
		}
		if int64(len(lengths)) > maxDataBytes/(widest*unit) {
			return maxDataBytes + 1
		}
		return widest * unit * int64(len(lengths))
	}

	var total int64
	for _, n := range lengths {
		if total += int64(n); total > maxDataBytes {
			return maxDataBytes + 1
		}
	}
	return total
}

// layout allocates an output array of encoding enc whose element i holds
// lengths[i] storage units. Fixed-width elements all get the largest size.
func layout(enc strbuf.Encoding, lengths []int) *Array {
	unit := unitSize(enc)
	if enc != strbuf.VariableUTF8 {
		widest := 1
		for _, n := range lengths {
			widest = max(widest, n)
		}
		itemsize := widest * unit
		return &Array{enc: enc, itemsize: itemsize, data: make([]byte, itemsize*len(lengths))}
	}

	offsets := make([]int, len(lengths)+1)
	for i, n := range lengths {
		offsets[i+1] = offsets[i] + n
	}
	return &Array{enc: enc, data: make([]byte, offsets[len(lengths)]), offsets: offsets}
}

// like allocates an empty array with the same element slots as a.
func like(a *Array) *Array {
	out := &Array{enc: a.enc, itemsize: a.itemsize, data: make([]byte, len(a.data))}
	if a.enc == strbuf.VariableUTF8 {
		out.offsets = a.offsets
	}
	return out
}

// trimmed returns a copy of a UTF-8 array keeping the first lengths[i]
// bytes of each element. Fixed-width arrays are returned as they are.
func trimmed(a *Array, lengths []int) *Array {
	if a.enc != strbuf.VariableUTF8 {
		return a
	}
	out := layout(a.enc, lengths)
	for i, n := range lengths {
		copy(out.Item(i), a.Item(i)[:n])
	}
	return out
}

// gather returns a new array holding the elements of a in the order perm.
func (a *Array) gather(perm []int) *Array {
	if a.enc != strbuf.VariableUTF8 {
		out := &Array{enc: a.enc, itemsize: a.itemsize, data: make([]byte, 0, len(a.data))}
		for _, i := range perm {
			out.data = append(out.data, a.Item(i)...)
		}
		return out
	}
	lengths := make([]int, len(perm))
	for k, i := range perm {
		lengths[k] = len(a.Item(i))
	}
	out := layout(a.enc, lengths)
	for k, i := range perm {
		copy(out.Item(k), a.Item(i))
	}
	return out
}
