package strarray

import "errors"

// ErrInvalidArray is returned for malformed array geometry: a bad itemsize,
// inconsistent offsets, elements that do not fit, or arrays of different
// encodings or lengths combined in one call.
var ErrInvalidArray = errors.New("strarray: invalid array")
