package strbuf

import "errors"

// Failures reported by the string operations. Returned errors wrap one of
// these; test with errors.Is.
var (
	// ErrValueNotFound is returned by Index and RIndex when the pattern
	// does not occur in the searched range.
	ErrValueNotFound = errors.New("strbuf: value not found")

	// ErrOverflow is returned when a result length would not fit in int64.
	ErrOverflow = errors.New("strbuf: result too long")

	// ErrInvalidArgument is returned for arguments the operation rejects,
	// such as an empty partition separator.
	ErrInvalidArgument = errors.New("strbuf: invalid argument")
)
