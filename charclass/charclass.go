// Package charclass is the per-codepoint classification oracle used by the
// string kernels. Two classifiers exist: ASCII, restricted to the C locale
// and used for single-byte strings, and Unicode, following the character
// properties behind the host string predicates.
//
// All tables are built once at package initialization and are read-only
// afterwards, so both classifiers are safe for concurrent use.
package charclass

import (
	"unicode"

	"github.com/mhr3/fixstr/ascii"
	"golang.org/x/text/unicode/rangetable"
)

// Classifier answers character class questions for one codepoint.
type Classifier interface {
	IsAlpha(r rune) bool
	IsDigit(r rune) bool
	IsSpace(r rune) bool
	IsAlnum(r rune) bool
	IsUpper(r rune) bool
	IsLower(r rune) bool
	IsTitle(r rune) bool
	IsNumeric(r rune) bool
	IsDecimal(r rune) bool
}

var (
	// ASCII classifies by the C locale; titlecase never applies.
	ASCII Classifier = asciiClassifier{}
	// Unicode classifies by Unicode character properties.
	Unicode Classifier = unicodeClassifier{}
)

var (
	// White_Space plus the information separators U+001C..U+001F, which
	// carry the segment/paragraph separator bidi classes.
	spaceTable = rangetable.Merge(unicode.White_Space, rangetable.New(0x1C, 0x1D, 0x1E, 0x1F))

	// Decimal digits plus the characters whose numeric type is Digit
	// (superscripts, subscripts, circled and parenthesized digits).
	digitTable = rangetable.Merge(unicode.Nd, &unicode.RangeTable{
		R16: []unicode.Range16{
			{Lo: 0x00B2, Hi: 0x00B3, Stride: 1},
			{Lo: 0x00B9, Hi: 0x00B9, Stride: 1},
			{Lo: 0x1369, Hi: 0x1371, Stride: 1},
			{Lo: 0x19DA, Hi: 0x19DA, Stride: 1},
			{Lo: 0x2070, Hi: 0x2070, Stride: 1},
			{Lo: 0x2074, Hi: 0x2079, Stride: 1},
			{Lo: 0x2080, Hi: 0x2089, Stride: 1},
			{Lo: 0x2460, Hi: 0x2468, Stride: 1},
			{Lo: 0x2474, Hi: 0x247C, Stride: 1},
			{Lo: 0x2488, Hi: 0x2490, Stride: 1},
			{Lo: 0x24EA, Hi: 0x24EA, Stride: 1},
			{Lo: 0x24F5, Hi: 0x24FD, Stride: 1},
			{Lo: 0x24FF, Hi: 0x24FF, Stride: 1},
			{Lo: 0x2776, Hi: 0x277E, Stride: 1},
			{Lo: 0x2780, Hi: 0x2788, Stride: 1},
			{Lo: 0x278A, Hi: 0x2792, Stride: 1},
		},
		R32: []unicode.Range32{
			{Lo: 0x10A40, Hi: 0x10A43, Stride: 1},
			{Lo: 0x1F100, Hi: 0x1F10A, Stride: 1},
		},
	})

	// All number categories plus ideographs with a numeric value.
	numericTable = rangetable.Merge(unicode.Number, digitTable, rangetable.New(
		0x3405, 0x3483, 0x382A, 0x3B4D, 0x4E00, 0x4E03, 0x4E07, 0x4E09,
		0x4E5D, 0x4E8C, 0x4E94, 0x4E96, 0x4EBF, 0x4EC0, 0x4EDF, 0x4EE8,
		0x4F0D, 0x4F70, 0x5104, 0x5146, 0x5169, 0x516B, 0x516D, 0x5341,
		0x5343, 0x5344, 0x5345, 0x534C, 0x53C1, 0x53C2, 0x53C3, 0x53C4,
		0x56DB, 0x58F1, 0x58F9, 0x5E7A, 0x5EFE, 0x5EFF, 0x5F0C, 0x5F0D,
		0x5F0E, 0x5F10, 0x62FE, 0x634C, 0x67D2, 0x6F06, 0x7396, 0x767E,
		0x8086, 0x842C, 0x8CAE, 0x8CB3, 0x8D30, 0x9621, 0x9646, 0x964C,
		0x9678, 0x96F6,
	))

	upperTable = rangetable.Merge(unicode.Upper, unicode.Other_Uppercase)
	lowerTable = rangetable.Merge(unicode.Lower, unicode.Other_Lowercase)
)

type asciiClassifier struct{}

func (asciiClassifier) IsAlpha(r rune) bool   { return ascii.IsAlpha(r) }
func (asciiClassifier) IsDigit(r rune) bool   { return ascii.IsDigit(r) }
func (asciiClassifier) IsSpace(r rune) bool   { return ascii.IsSpace(r) }
func (asciiClassifier) IsAlnum(r rune) bool   { return ascii.IsAlnum(r) }
func (asciiClassifier) IsUpper(r rune) bool   { return ascii.IsUpper(r) }
func (asciiClassifier) IsLower(r rune) bool   { return ascii.IsLower(r) }
func (asciiClassifier) IsTitle(rune) bool     { return false }
func (asciiClassifier) IsNumeric(r rune) bool { return IsNumeric(r) }
func (asciiClassifier) IsDecimal(r rune) bool { return IsDecimal(r) }

type unicodeClassifier struct{}

func (unicodeClassifier) IsAlpha(r rune) bool   { return unicode.IsLetter(r) }
func (unicodeClassifier) IsDigit(r rune) bool   { return unicode.Is(digitTable, r) }
func (unicodeClassifier) IsSpace(r rune) bool   { return IsSpace(r) }
func (unicodeClassifier) IsUpper(r rune) bool   { return unicode.Is(upperTable, r) }
func (unicodeClassifier) IsLower(r rune) bool   { return unicode.Is(lowerTable, r) }
func (unicodeClassifier) IsTitle(r rune) bool   { return unicode.IsTitle(r) }
func (unicodeClassifier) IsNumeric(r rune) bool { return IsNumeric(r) }
func (unicodeClassifier) IsDecimal(r rune) bool { return IsDecimal(r) }

func (u unicodeClassifier) IsAlnum(r rune) bool {
	return u.IsAlpha(r) || u.IsDigit(r) || IsNumeric(r)
}

// IsSpace reports whether r is whitespace in the Unicode sense.
func IsSpace(r rune) bool {
	if r < 0x80 {
		return ascii.IsSpace(r) || (r >= 0x1C && r <= 0x1F)
	}
	return unicode.Is(spaceTable, r)
}

// IsNumeric reports whether r has a numeric value. Both classifiers share it.
func IsNumeric(r rune) bool {
	return unicode.Is(numericTable, r)
}

// IsDecimal reports whether r is a decimal digit (category Nd). Both
// classifiers share it.
func IsDecimal(r rune) bool {
	return unicode.IsDigit(r)
}
