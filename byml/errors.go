package byml

import (
	"fmt"

	"github.com/joshuapare/bymlkit/internal/format"
)

// Error sentinels. Every error returned by this package wraps exactly one of
// these, so callers can branch with errors.Is.
var (
	// ErrFormatMismatch indicates a wrong magic or a wrong type tag at an
	// offset that must hold a specific node kind.
	ErrFormatMismatch = format.ErrFormatMismatch
	// ErrOutOfBounds indicates an index or offset outside the valid range.
	ErrOutOfBounds = format.ErrOutOfBounds
	// ErrNotFound indicates a named lookup found no entry.
	ErrNotFound = format.ErrNotFound
	// ErrTypeMismatch indicates the node is not of the kind the operation needs.
	ErrTypeMismatch = format.ErrTypeMismatch
	// ErrUnsupported indicates an array, path, path table or unknown node.
	ErrUnsupported = format.ErrUnsupported
)

// UnsupportedError reports an unimplemented node kind at a buffer offset.
type UnsupportedError struct {
	Kind   Kind
	Offset int
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("byml: unsupported node kind %s at 0x%x", e.Kind, e.Offset)
}

// Is makes errors.Is(err, ErrUnsupported) hold for *UnsupportedError.
func (e *UnsupportedError) Is(target error) bool {
	return target == ErrUnsupported
}
