package strarray

import (
	"fmt"
	"strings"

	"github.com/mhr3/fixstr/strbuf"
)

// Class names a character class predicate.
type Class int

const (
	Alpha Class = iota
	Digit
	Space
	Alnum
	Numeric
	Decimal
	Lower
	Upper
	Title
)

var classNames = [...]string{"alpha", "digit", "space", "alnum", "numeric", "decimal", "lower", "upper", "title"}

func (c Class) String() string {
	if c < 0 || int(c) >= len(classNames) {
		return fmt.Sprintf("Class(%d)", int(c))
	}
	return classNames[c]
}

// ParseClass maps a class name such as "alpha" or "isalpha" to its Class.
func ParseClass(name string) (Class, error) {
	name = strings.TrimPrefix(strings.ToLower(name), "is")
	for i, n := range classNames {
		if n == name {
			return Class(i), nil
		}
	}
	return 0, fmt.Errorf("unknown character class %q", name)
}

// ParseEncoding maps an encoding name to its strbuf.Encoding.
func ParseEncoding(name string) (strbuf.Encoding, error) {
	switch strings.ToLower(name) {
	case "ascii", "bytes", "fixedbyte":
		return strbuf.FixedByte, nil
	case "utf32", "ucs4", "fixedwide":
		return strbuf.FixedWide, nil
	case "utf8", "variableutf8":
		return strbuf.VariableUTF8, nil
	}
	return 0, fmt.Errorf("unknown encoding %q", name)
}

// kernel is the strbuf API over raw element bytes for one encoding.
type kernel interface {
	strlen(item []byte) int
	find(item, pat []byte, start, end int64, side strbuf.Side) int64
	count(item, pat []byte, start, end int64) int64
	tailMatch(item, pat []byte, start, end int64, side strbuf.Side) bool
	is(item []byte, c Class) bool
	compare(a, b []byte, rstrip bool) int
	strip(item, out []byte, st strbuf.StripType) int
	stripChars(item, chars, out []byte, st strbuf.StripType) int
	replaceLength(item, pat, rep []byte, count int64) int
	replace(item, pat, rep []byte, count int64, out []byte) int
	expandTabsLength(item []byte, tabSize int64) (int64, error)
	expandTabs(item []byte, tabSize int64, out []byte) (int64, error)
	padLength(item []byte, width int64, fill rune) (int64, error)
	pad(item []byte, width int64, fill rune, just strbuf.Justify, out []byte) (int64, error)
	zfill(item []byte, width int64, out []byte) (int64, error)
	partition(item, sep []byte, side strbuf.Side, out1, out2, out3 []byte) (int64, int64, int64, error)
}

// kernelFor binds the runtime encoding tag to its generic kernels.
func kernelFor(enc strbuf.Encoding) kernel {
	switch enc {
	case strbuf.FixedByte:
		return kernels[strbuf.ASCII]{}
	case strbuf.FixedWide:
		return kernels[strbuf.UTF32]{}
	}
	return kernels[strbuf.UTF8]{}
}

type kernels[E strbuf.Codec] struct{}

func cur[E strbuf.Codec](b []byte) strbuf.Cursor[E] { return strbuf.New[E](b) }

func (kernels[E]) strlen(item []byte) int {
	return strbuf.StrLen(cur[E](item))
}

func (kernels[E]) find(item, pat []byte, start, end int64, side strbuf.Side) int64 {
	if side == strbuf.Back {
		return strbuf.RFind(cur[E](item), cur[E](pat), start, end)
	}
	return strbuf.Find(cur[E](item), cur[E](pat), start, end)
}

func (kernels[E]) count(item, pat []byte, start, end int64) int64 {
	return strbuf.Count(cur[E](item), cur[E](pat), start, end)
}

func (kernels[E]) tailMatch(item, pat []byte, start, end int64, side strbuf.Side) bool {
	return strbuf.TailMatch(cur[E](item), cur[E](pat), start, end, side)
}

func (kernels[E]) is(item []byte, c Class) bool {
	buf := cur[E](item)
	switch c {
	case Alpha:
		return strbuf.IsAlpha(buf)
	case Digit:
		return strbuf.IsDigit(buf)
	case Space:
		return strbuf.IsSpace(buf)
	case Alnum:
		return strbuf.IsAlnum(buf)
	case Numeric:
		return strbuf.IsNumeric(buf)
	case Decimal:
		return strbuf.IsDecimal(buf)
	case Lower:
		return strbuf.IsLower(buf)
	case Upper:
		return strbuf.IsUpper(buf)
	case Title:
		return strbuf.IsTitle(buf)
	}
	panic(fmt.Sprintf("strarray: unknown class %v", c))
}

func (kernels[E]) compare(a, b []byte, rstrip bool) int {
	return strbuf.Compare(cur[E](a), cur[E](b), rstrip)
}

func (kernels[E]) strip(item, out []byte, st strbuf.StripType) int {
	return strbuf.Strip(cur[E](item), cur[E](out), st)
}

func (kernels[E]) stripChars(item, chars, out []byte, st strbuf.StripType) int {
	return strbuf.StripChars(cur[E](item), cur[E](chars), cur[E](out), st)
}

func (kernels[E]) replaceLength(item, pat, rep []byte, count int64) int {
	return strbuf.ReplaceLength(cur[E](item), cur[E](pat), cur[E](rep), count)
}

func (kernels[E]) replace(item, pat, rep []byte, count int64, out []byte) int {
	return strbuf.Replace(cur[E](item), cur[E](pat), cur[E](rep), count, cur[E](out))
}

func (kernels[E]) expandTabsLength(item []byte, tabSize int64) (int64, error) {
	return strbuf.ExpandTabsLength(cur[E](item), tabSize)
}

func (kernels[E]) expandTabs(item []byte, tabSize int64, out []byte) (int64, error) {
	return strbuf.ExpandTabs(cur[E](item), tabSize, cur[E](out))
}

func (kernels[E]) padLength(item []byte, width int64, fill rune) (int64, error) {
	return strbuf.PadLength(cur[E](item), width, fill)
}

func (kernels[E]) pad(item []byte, width int64, fill rune, just strbuf.Justify, out []byte) (int64, error) {
	return strbuf.Pad(cur[E](item), width, fill, just, cur[E](out))
}

func (kernels[E]) zfill(item []byte, width int64, out []byte) (int64, error) {
	return strbuf.ZFill(cur[E](item), width, cur[E](out))
}

func (kernels[E]) partition(item, sep []byte, side strbuf.Side, out1, out2, out3 []byte) (int64, int64, int64, error) {
	if side == strbuf.Back {
		return strbuf.PartitionBack(cur[E](item), cur[E](sep), cur[E](out1), cur[E](out2), cur[E](out3))
	}
	return strbuf.PartitionFront(cur[E](item), cur[E](sep), cur[E](out1), cur[E](out2), cur[E](out3))
}
