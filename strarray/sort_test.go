package strarray

import (
	"testing"

	"github.com/mhr3/fixstr/strbuf"
	"github.com/stretchr/testify/assert"
)

func TestSort(t *testing.T) {
	for _, enc := range encodings {
		t.Run(enc.String(), func(t *testing.T) {
			a := mustArray(t, enc, "b", "a", "日", "ab")
			sorted, perm := Sort(a)
			assert.Equal(t, []string{"a", "ab", "b", "日"}, sorted.Strings())
			assert.Equal(t, []int{1, 3, 0, 2}, perm)
			assert.Equal(t, []string{"b", "a", "日", "ab"}, a.Strings(), "input is left alone")
		})
	}
}

func TestSortWideOrder(t *testing.T) {
	// U+0100 sorts after U+00FF even though its low byte is smaller
	a := mustArray(t, strbuf.FixedWide, "Ā", "ÿ", "z")
	sorted, perm := Sort(a)
	assert.Equal(t, []string{"z", "ÿ", "Ā"}, sorted.Strings())
	assert.Equal(t, []int{2, 1, 0}, perm)
}

func TestSortStableUTF8(t *testing.T) {
	a := mustArray(t, strbuf.VariableUTF8, "x", "a", "x", "a", "")
	sorted, perm := Sort(a)
	assert.Equal(t, []string{"", "a", "a", "x", "x"}, sorted.Strings())
	assert.Equal(t, []int{4, 1, 3, 0, 2}, perm)
}

func TestSortTrivial(t *testing.T) {
	sorted, perm := Sort(mustArray(t, strbuf.FixedByte, "only"))
	assert.Equal(t, []string{"only"}, sorted.Strings())
	assert.Equal(t, []int{0}, perm)

	sorted, perm = Sort(mustArray(t, strbuf.FixedByte))
	assert.Equal(t, 0, sorted.Len())
	assert.Empty(t, perm)
}
