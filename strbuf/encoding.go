package strbuf

import (
	"encoding/binary"
	stdutf8 "unicode/utf8"

	"github.com/mhr3/fixstr/charclass"
	"github.com/mhr3/fixstr/utf8"
)

// Encoding is the physical representation of an element.
type Encoding uint8

const (
	// FixedByte stores one byte per character; values are raw code units.
	FixedByte Encoding = iota
	// FixedWide stores one 4-byte code unit per character.
	FixedWide
	// VariableUTF8 stores 1 to 4 byte UTF-8 sequences.
	VariableUTF8
)

func (e Encoding) String() string {
	switch e {
	case FixedByte:
		return "FixedByte"
	case FixedWide:
		return "FixedWide"
	case VariableUTF8:
		return "VariableUTF8"
	}
	return "Encoding(?)"
}

// Codec is the closed set of encodings a Cursor can be bound to.
type Codec interface {
	ASCII | UTF32 | UTF8

	// Encoding returns the runtime tag of the codec.
	Encoding() Encoding

	unitSize() int
	decode(b []byte) (rune, int)
	encode(dst []byte, r rune) int
	charWidth(b []byte) int
	classifier() charclass.Classifier
}

// ASCII is the FixedByte codec.
type ASCII struct{}

// UTF32 is the FixedWide codec.
type UTF32 struct{}

// UTF8 is the VariableUTF8 codec.
type UTF8 struct{}

func (ASCII) Encoding() Encoding { return FixedByte }
func (UTF32) Encoding() Encoding { return FixedWide }
func (UTF8) Encoding() Encoding  { return VariableUTF8 }

func (ASCII) unitSize() int { return 1 }
func (UTF32) unitSize() int { return 4 }
func (UTF8) unitSize() int  { return 1 }

func (ASCII) decode(b []byte) (rune, int) {
	return rune(b[0]), 1
}

func (UTF32) decode(b []byte) (rune, int) {
	if len(b) < 4 {
		return 0, len(b)
	}
	return rune(binary.LittleEndian.Uint32(b)), 4
}

func (UTF8) decode(b []byte) (rune, int) {
	r, n := stdutf8.DecodeRune(b)
	if w := utf8.CharWidth(b[0]); w > n && w <= len(b) {
		// keep decode and advance in step on malformed input
		n = w
	}
	return r, n
}

// encode writes r to dst and returns the number of bytes written. Nothing is
// written if dst cannot hold the whole character.
func (ASCII) encode(dst []byte, r rune) int {
	if len(dst) < 1 {
		return 0
	}
	dst[0] = byte(r)
	return 1
}

func (UTF32) encode(dst []byte, r rune) int {
	if len(dst) < 4 {
		return 0
	}
	binary.LittleEndian.PutUint32(dst, uint32(r))
	return 4
}

func (UTF8) encode(dst []byte, r rune) int {
	n := stdutf8.RuneLen(r)
	if n < 0 {
		r, n = stdutf8.RuneError, 3
	}
	if len(dst) < n {
		return 0
	}
	return stdutf8.EncodeRune(dst, r)
}

func (ASCII) charWidth([]byte) int { return 1 }
func (UTF32) charWidth([]byte) int { return 4 }

func (UTF8) charWidth(b []byte) int {
	return min(utf8.CharWidth(b[0]), len(b))
}

func (ASCII) classifier() charclass.Classifier { return charclass.ASCII }
func (UTF32) classifier() charclass.Classifier { return charclass.Unicode }
func (UTF8) classifier() charclass.Classifier  { return charclass.Unicode }
