package strarray

import (
	"context"
	"fmt"
	"math"

	"github.com/mhr3/fixstr/strbuf"
	"github.com/mhr3/fixstr/utf8"
)

// Partition splits every element around the first (Front) or last (Back)
// occurrence of sep. It returns the parts before, the separators, and the
// parts after. Elements lacking sep end up whole in the first array for
// Front and in the last array for Back. An empty sep fails with
// strbuf.ErrInvalidArgument.
func (r *Runner) Partition(ctx context.Context, a *Array, sep string, side strbuf.Side) ([3]*Array, error) {
	if sep == "" {
		return [3]*Array{}, fmt.Errorf("%w: empty separator", strbuf.ErrInvalidArgument)
	}
	if a.enc == strbuf.VariableUTF8 {
		return r.partitionUTF8(ctx, a, sep, side)
	}

	k := kernelFor(a.enc)
	s := encodePattern(a.enc, sep)
	parts := [3]*Array{
		like(a),
		{enc: a.enc, itemsize: len(s), data: make([]byte, len(s)*a.Len())},
		like(a),
	}
	err := r.forEach(ctx, a.Len(), func(i int) error {
		_, _, _, err := k.partition(a.Item(i), s, side, parts[0].Item(i), parts[1].Item(i), parts[2].Item(i))
		return err
	})
	if err != nil {
		return [3]*Array{}, err
	}
	return parts, nil
}

// partitionUTF8 splits variable-width elements at byte positions derived
// from the character index of the separator.
func (r *Runner) partitionUTF8(ctx context.Context, a *Array, sep string, side strbuf.Side) ([3]*Array, error) {
	k := kernelFor(a.enc)
	s := []byte(sep)
	// byte offset of the separator per element, -1 if absent
	cuts := make([]int, a.Len())
	err := r.forEach(ctx, a.Len(), func(i int) error {
		item := a.Item(i)
		idx := k.find(item, s, 0, math.MaxInt64, side)
		cuts[i] = -1
		if idx >= 0 {
			cuts[i] = utf8.ByteOffset(item, int(idx))
		}
		return nil
	})
	if err != nil {
		return [3]*Array{}, err
	}

	var lengths [3][]int
	for p := range lengths {
		lengths[p] = make([]int, a.Len())
	}
	for i, cut := range cuts {
		n := len(a.Item(i))
		switch {
		case cut >= 0:
			lengths[0][i], lengths[1][i], lengths[2][i] = cut, len(s), n-cut-len(s)
		case side == strbuf.Front:
			lengths[0][i] = n
		default:
			lengths[2][i] = n
		}
	}

	var parts [3]*Array
	for p := range parts {
		parts[p] = layout(a.enc, lengths[p])
	}
	for i, cut := range cuts {
		item := a.Item(i)
		switch {
		case cut >= 0:
			copy(parts[0].Item(i), item[:cut])
			copy(parts[1].Item(i), s)
			copy(parts[2].Item(i), item[cut+len(s):])
		case side == strbuf.Front:
			copy(parts[0].Item(i), item)
		default:
			copy(parts[2].Item(i), item)
		}
	}
	return parts, nil
}
