/*
Package strbuf implements string operations over single elements of a flat
string array, with the semantics of the host language's str methods.

An element is a fixed byte range owned by the caller. It is viewed through a
Cursor bound to one of three encodings:

	ASCII  fixed width, one byte per character, NUL padded
	UTF32  fixed width, one 4-byte little-endian code unit per character, NUL padded
	UTF8   variable width, no padding; the whole range is the string

Every operation is a generic function over the encoding, so all three share one
algorithm. Operations that produce strings write into a caller-provided output
Cursor and never write past its limit; most have a length-only companion so
callers can size the output first.

Lengths passed to and returned from the raw buffer primitives are measured in
storage units: characters for ASCII and UTF32, bytes for UTF8.
*/
package strbuf

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'fixstr'
func tracer() tracing.Trace {
	return tracing.Select("fixstr")
}
