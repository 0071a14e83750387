package strarray

import (
	"context"
	"fmt"
	"math"

	"github.com/mhr3/fixstr/strbuf"
)

// StrLen returns the number of characters of every element.
func (r *Runner) StrLen(ctx context.Context, a *Array) ([]int, error) {
	k := kernelFor(a.enc)
	res := make([]int, a.Len())
	err := r.forEach(ctx, len(res), func(i int) error {
		res[i] = k.strlen(a.Item(i))
		return nil
	})
	return res, err
}

func (r *Runner) find(ctx context.Context, a *Array, pat string, start, end int64, side strbuf.Side) ([]int64, error) {
	k := kernelFor(a.enc)
	p := encodePattern(a.enc, pat)
	res := make([]int64, a.Len())
	err := r.forEach(ctx, len(res), func(i int) error {
		res[i] = k.find(a.Item(i), p, start, end, side)
		return nil
	})
	return res, err
}

// Find returns for every element the character index of the first
// occurrence of pat within [start, end), or -1.
func (r *Runner) Find(ctx context.Context, a *Array, pat string, start, end int64) ([]int64, error) {
	return r.find(ctx, a, pat, start, end, strbuf.Front)
}

// RFind is like Find but reports the last occurrence.
func (r *Runner) RFind(ctx context.Context, a *Array, pat string, start, end int64) ([]int64, error) {
	return r.find(ctx, a, pat, start, end, strbuf.Back)
}

func (r *Runner) index(ctx context.Context, a *Array, pat string, start, end int64, side strbuf.Side) ([]int64, error) {
	res, err := r.find(ctx, a, pat, start, end, side)
	if err != nil {
		return nil, err
	}
	for i, pos := range res {
		if pos < 0 {
			return nil, fmt.Errorf("element %d: %w", i, strbuf.ErrValueNotFound)
		}
	}
	return res, nil
}

// Index is like Find but fails with strbuf.ErrValueNotFound if any
// element lacks pat.
func (r *Runner) Index(ctx context.Context, a *Array, pat string, start, end int64) ([]int64, error) {
	return r.index(ctx, a, pat, start, end, strbuf.Front)
}

// RIndex is like RFind but fails with strbuf.ErrValueNotFound if any
// element lacks pat.
func (r *Runner) RIndex(ctx context.Context, a *Array, pat string, start, end int64) ([]int64, error) {
	return r.index(ctx, a, pat, start, end, strbuf.Back)
}

// Count returns the number of non-overlapping occurrences of pat within
// [start, end) of every element.
func (r *Runner) Count(ctx context.Context, a *Array, pat string, start, end int64) ([]int64, error) {
	k := kernelFor(a.enc)
	p := encodePattern(a.enc, pat)
	res := make([]int64, a.Len())
	err := r.forEach(ctx, len(res), func(i int) error {
		res[i] = k.count(a.Item(i), p, start, end)
		return nil
	})
	return res, err
}

func (r *Runner) tailMatch(ctx context.Context, a *Array, pat string, start, end int64, side strbuf.Side) ([]bool, error) {
	k := kernelFor(a.enc)
	p := encodePattern(a.enc, pat)
	res := make([]bool, a.Len())
	err := r.forEach(ctx, len(res), func(i int) error {
		res[i] = k.tailMatch(a.Item(i), p, start, end, side)
		return nil
	})
	return res, err
}

// StartsWith reports for every element whether [start, end) begins with
// pat.
func (r *Runner) StartsWith(ctx context.Context, a *Array, pat string, start, end int64) ([]bool, error) {
	return r.tailMatch(ctx, a, pat, start, end, strbuf.Front)
}

// EndsWith reports for every element whether [start, end) ends with pat.
func (r *Runner) EndsWith(ctx context.Context, a *Array, pat string, start, end int64) ([]bool, error) {
	return r.tailMatch(ctx, a, pat, start, end, strbuf.Back)
}

// Is reports for every element whether it is non-empty and matches class c.
func (r *Runner) Is(ctx context.Context, a *Array, c Class) ([]bool, error) {
	k := kernelFor(a.enc)
	res := make([]bool, a.Len())
	err := r.forEach(ctx, len(res), func(i int) error {
		res[i] = k.is(a.Item(i), c)
		return nil
	})
	return res, err
}

// Compare compares a and b element by element.
func (r *Runner) Compare(ctx context.Context, a, b *Array, rstrip bool) ([]int, error) {
	if a.enc != b.enc || a.Len() != b.Len() {
		return nil, fmt.Errorf("%w: cannot compare %d %v elements with %d %v elements",
			ErrInvalidArray, a.Len(), a.enc, b.Len(), b.enc)
	}
	k := kernelFor(a.enc)
	res := make([]int, a.Len())
	err := r.forEach(ctx, len(res), func(i int) error {
		res[i] = k.compare(a.Item(i), b.Item(i), rstrip)
		return nil
	})
	return res, err
}

// Strip removes leading and/or trailing whitespace from every element.
func (r *Runner) Strip(ctx context.Context, a *Array, st strbuf.StripType) (*Array, error) {
	k := kernelFor(a.enc)
	return r.shrink(ctx, a, func(item, out []byte) int {
		return k.strip(item, out, st)
	})
}

// StripChars removes leading and/or trailing characters found in chars
// from every element.
func (r *Runner) StripChars(ctx context.Context, a *Array, chars string, st strbuf.StripType) (*Array, error) {
	k := kernelFor(a.enc)
	c := encodePattern(a.enc, chars)
	return r.shrink(ctx, a, func(item, out []byte) int {
		return k.stripChars(item, c, out, st)
	})
}

// shrink runs a transform whose results never outgrow their input. The
// output reuses the input slots and UTF-8 results are compacted.
func (r *Runner) shrink(ctx context.Context, a *Array, fn func(item, out []byte) int) (*Array, error) {
	out := like(a)
	lengths := make([]int, a.Len())
	err := r.forEach(ctx, len(lengths), func(i int) error {
		lengths[i] = fn(a.Item(i), out.Item(i))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return trimmed(out, lengths), nil
}

// grow runs the two passes of a transform: size computes each result's
// length in storage units, fill writes it into a slot of that size.
func (r *Runner) grow(ctx context.Context, a *Array, size func(item []byte) (int64, error), fill func(item, out []byte) error) (*Array, error) {
	unit := int64(unitSize(a.enc))
	lengths := make([]int, a.Len())
	err := r.forEach(ctx, len(lengths), func(i int) error {
		n, err := size(a.Item(i))
		if err != nil {
			return fmt.Errorf("element %d: %w", i, err)
		}
		if n > maxDataBytes/unit {
			tracer().Debugf("strarray: element %d needs %d units", i, n)
			return fmt.Errorf("element %d: %w: result is too long", i, strbuf.ErrOverflow)
		}
		lengths[i] = int(n)
		return nil
	})
	if err != nil {
		return nil, err
	}
	if total := layoutSize(a.enc, lengths); total > maxDataBytes {
		tracer().Debugf("strarray: results need %d bytes", total)
		return nil, fmt.Errorf("%w: results need %d bytes", strbuf.ErrOverflow, total)
	}

	out := layout(a.enc, lengths)
	tracer().Debugf("strarray: %d %v results, itemsize %d", len(lengths), out.enc, out.itemsize)
	err = r.forEach(ctx, len(lengths), func(i int) error {
		if err := fill(a.Item(i), out.Item(i)); err != nil {
			return fmt.Errorf("element %d: %w", i, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Replace replaces up to count occurrences of pat with rep in every
// element. A negative count replaces all occurrences.
func (r *Runner) Replace(ctx context.Context, a *Array, pat, rep string, count int64) (*Array, error) {
	k := kernelFor(a.enc)
	p, q := encodePattern(a.enc, pat), encodePattern(a.enc, rep)
	if count < 0 {
		count = math.MaxInt64
	}
	return r.grow(ctx, a,
		func(item []byte) (int64, error) {
			return int64(k.replaceLength(item, p, q, count)), nil
		},
		func(item, out []byte) error {
			k.replace(item, p, q, count, out)
			return nil
		})
}

// ExpandTabs replaces the tabs of every element with spaces up to the next
// multiple of tabSize.
func (r *Runner) ExpandTabs(ctx context.Context, a *Array, tabSize int64) (*Array, error) {
	k := kernelFor(a.enc)
	return r.grow(ctx, a,
		func(item []byte) (int64, error) {
			return k.expandTabsLength(item, tabSize)
		},
		func(item, out []byte) error {
			_, err := k.expandTabs(item, tabSize, out)
			return err
		})
}

// Pad pads every element with fill to width characters.
func (r *Runner) Pad(ctx context.Context, a *Array, width int64, fill rune, just strbuf.Justify) (*Array, error) {
	k := kernelFor(a.enc)
	return r.grow(ctx, a,
		func(item []byte) (int64, error) {
			return k.padLength(item, width, fill)
		},
		func(item, out []byte) error {
			_, err := k.pad(item, width, fill, just, out)
			return err
		})
}

// ZFill pads every element on the left with zeros to width characters,
// keeping a leading sign in front.
func (r *Runner) ZFill(ctx context.Context, a *Array, width int64) (*Array, error) {
	k := kernelFor(a.enc)
	return r.grow(ctx, a,
		func(item []byte) (int64, error) {
			return k.padLength(item, width, '0')
		},
		func(item, out []byte) error {
			_, err := k.zfill(item, width, out)
			return err
		})
}
