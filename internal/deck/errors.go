package deck

import "errors"

// Common errors for deck operations.
var (
	ErrSlideNotFound   = errors.New("slide not found")
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrUnknownShape    = errors.New("unknown shape type")
	ErrDuplicateID     = errors.New("duplicate slide id")
	ErrInvalidEncoding = errors.New("invalid slide encoding")
)
