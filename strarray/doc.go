/*
Package strarray runs the strbuf kernels over whole arrays of strings.

An Array stores its elements back to back in one byte slice. Elements of the
fixed-width encodings all take itemsize bytes and are NUL padded; UTF-8
elements are delimited by an offsets table. The encoding is a runtime value
here and is mapped once per call onto the generic kernels of package strbuf.

Element-wise operations are spread over a bounded set of goroutines (see
Config). Operations producing strings first compute every result length,
lay out the output array, and then fill it; each element owns its own slot,
so the fill needs no locking.
*/
package strarray

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'fixstr'
func tracer() tracing.Trace {
	return tracing.Select("fixstr")
}
