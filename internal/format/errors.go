package format

import (
	"errors"

	"github.com/joshuapare/bymlkit/internal/buf"
)

var (
	// ErrFormatMismatch indicates a wrong magic or an unexpected type tag at an
	// offset that must hold a specific node kind.
	ErrFormatMismatch = errors.New("format: mismatch")
	// ErrOutOfBounds indicates an index or offset outside the valid range.
	ErrOutOfBounds = buf.ErrOutOfBounds
	// ErrNotFound indicates a named lookup exhausted its candidates.
	ErrNotFound = errors.New("format: not found")
	// ErrTypeMismatch indicates an operation required a different node kind.
	ErrTypeMismatch = errors.New("format: type mismatch")
	// ErrUnsupported indicates a node kind this package does not implement
	// (arrays, paths, path tables, unknown tags). It is not a format error.
	ErrUnsupported = errors.New("format: unsupported node kind")
)
