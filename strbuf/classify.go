package strbuf

import "github.com/mhr3/fixstr/charclass"

// StrLen returns the number of characters of the string at buf.
func StrLen[E Codec](buf Cursor[E]) int {
	return buf.CodepointCount()
}

// all reports whether pred holds for every character of a non-empty string.
func all[E Codec](buf Cursor[E], pred func(charclass.Classifier, rune) bool) bool {
	n := buf.CodepointCount()
	if n == 0 {
		return false
	}
	var e E
	cls := e.classifier()
	for ; n > 0; n-- {
		if !pred(cls, buf.Char()) {
			return false
		}
		buf.Advance(1)
	}
	return true
}

// IsAlpha reports whether the string is non-empty and all letters.
func IsAlpha[E Codec](buf Cursor[E]) bool {
	return all(buf, charclass.Classifier.IsAlpha)
}

// IsDigit reports whether the string is non-empty and all digits.
func IsDigit[E Codec](buf Cursor[E]) bool {
	return all(buf, charclass.Classifier.IsDigit)
}

// IsSpace reports whether the string is non-empty and all whitespace.
func IsSpace[E Codec](buf Cursor[E]) bool {
	return all(buf, charclass.Classifier.IsSpace)
}

// IsAlnum reports whether the string is non-empty and all letters or
// digits.
func IsAlnum[E Codec](buf Cursor[E]) bool {
	return all(buf, charclass.Classifier.IsAlnum)
}

// IsNumeric reports whether the string is non-empty and all numeric
// characters. The result does not depend on the encoding.
func IsNumeric[E Codec](buf Cursor[E]) bool {
	return all(buf, charclass.Classifier.IsNumeric)
}

// IsDecimal reports whether the string is non-empty and all decimal
// characters. The result does not depend on the encoding.
func IsDecimal[E Codec](buf Cursor[E]) bool {
	return all(buf, charclass.Classifier.IsDecimal)
}

// IsLower reports whether the string has at least one cased character and
// no uppercase or titlecase ones.
func IsLower[E Codec](buf Cursor[E]) bool {
	var e E
	cls := e.classifier()
	cased := false
	for n := buf.CodepointCount(); n > 0; n-- {
		r := buf.Char()
		if cls.IsUpper(r) || cls.IsTitle(r) {
			return false
		}
		if !cased && cls.IsLower(r) {
			cased = true
		}
		buf.Advance(1)
	}
	return cased
}

// IsUpper reports whether the string has at least one cased character and
// no lowercase or titlecase ones.
func IsUpper[E Codec](buf Cursor[E]) bool {
	var e E
	cls := e.classifier()
	cased := false
	for n := buf.CodepointCount(); n > 0; n-- {
		r := buf.Char()
		if cls.IsLower(r) || cls.IsTitle(r) {
			return false
		}
		if !cased && cls.IsUpper(r) {
			cased = true
		}
		buf.Advance(1)
	}
	return cased
}

// IsTitle reports whether the string is titlecased: uppercase and titlecase
// characters only follow uncased ones, lowercase characters only follow
// cased ones, and there is at least one cased character.
func IsTitle[E Codec](buf Cursor[E]) bool {
	var e E
	cls := e.classifier()
	cased, previousCased := false, false
	for n := buf.CodepointCount(); n > 0; n-- {
		r := buf.Char()
		switch {
		case cls.IsUpper(r) || cls.IsTitle(r):
			if previousCased {
				return false
			}
			previousCased = true
			cased = true
		case cls.IsLower(r):
			if !previousCased {
				return false
			}
			previousCased = true
			cased = true
		default:
			previousCased = false
		}
		buf.Advance(1)
	}
	return cased
}
