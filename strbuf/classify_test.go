package strbuf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testClassify[E Codec](t *testing.T) {
	check := func(name string, pred func(Cursor[E]) bool, yes, no []string) {
		for _, s := range yes {
			assert.True(t, pred(elem[E](s, 8)), "%s(%q)", name, s)
		}
		for _, s := range no {
			assert.False(t, pred(elem[E](s, 8)), "%s(%q)", name, s)
		}
	}
	check("isalpha", IsAlpha[E], []string{"abc", "Z"}, []string{"", "ab1", "a b"})
	check("isdigit", IsDigit[E], []string{"0123"}, []string{"", "12a", "-1"})
	check("isspace", IsSpace[E], []string{" ", " \t\r\n\v\f"}, []string{"", " a "})
	check("isalnum", IsAlnum[E], []string{"a1", "9", "Zz"}, []string{"", "a_1", " "})
	check("isnumeric", IsNumeric[E], []string{"123"}, []string{"", "1.5", "x"})
	check("isdecimal", IsDecimal[E], []string{"42"}, []string{"", "4 2"})
	check("islower", IsLower[E], []string{"abc", "abc1", "a b"}, []string{"", "123", "aBc", "ABC"})
	check("isupper", IsUpper[E], []string{"ABC", "A1 B"}, []string{"", "123", "AbC", "abc"})
	check("istitle", IsTitle[E], []string{"Hello World", "A", "Hello 2Nd", "X-Ray"}, []string{"", "Hello world", "HeLLo", "hello", "123"})
}

func TestClassify(t *testing.T) {
	runAll(t, testClassify[ASCII], testClassify[UTF32], testClassify[UTF8])
}

func TestClassifyUnicode(t *testing.T) {
	assert.True(t, IsAlpha(str[UTF8]("héllo")))
	assert.True(t, IsAlpha(elem[UTF32]("日本", 4)))
	assert.True(t, IsNumeric(str[UTF8]("½⅓")))
	assert.False(t, IsDecimal(str[UTF8]("½")))
	assert.True(t, IsDecimal(str[UTF8]("٣٤")))
	assert.True(t, IsDigit(str[UTF8]("²")))
	assert.False(t, IsDecimal(str[UTF8]("²")))
	assert.True(t, IsSpace(str[UTF8]("\u3000\u00a0")))
	assert.True(t, IsUpper(str[UTF8]("ÀÉ")))
	assert.True(t, IsLower(str[UTF8]("ßé")))
	assert.True(t, IsTitle(str[UTF8]("ǅungla")))
	assert.False(t, IsLower(str[UTF8]("ǅ")))

	// single-byte strings use the C locale
	latin := New[ASCII]([]byte{0xE9, 'a'})
	assert.False(t, IsAlpha(latin))
	assert.False(t, IsLower(New[ASCII]([]byte{0xE9})))
	// but numeric classes do not depend on the encoding
	assert.Equal(t, IsNumeric(elem[UTF32]("123", 3)), IsNumeric(elem[ASCII]("123", 3)))
}

func TestStrLen(t *testing.T) {
	assert.Equal(t, 4, StrLen(str[UTF8]("€€ab")))
	assert.Equal(t, 4, StrLen(elem[UTF32]("€€ab", 10)))
	assert.Equal(t, 2, StrLen(elem[ASCII]("ab", 10)))
	assert.Equal(t, 0, StrLen(str[UTF8]("")))
}
