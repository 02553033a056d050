package format

import (
	"fmt"

	"github.com/joshuapare/bymlkit/internal/buf"
)

// Header captures the fixed file header. Offsets are absolute from the start
// of the buffer.
type Header struct {
	Magic            uint16
	Version          uint16
	NameTableOffset  uint32
	ValueTableOffset uint32
	RootOffset       uint32
}

// HasValueTable reports whether the header points at a value string table.
func (h Header) HasValueTable() bool { return h.ValueTableOffset != 0 }

// HasRoot reports whether the document has a root node.
func (h Header) HasRoot() bool { return h.RootOffset != 0 }

// KnownVersion reports whether Version is one this package has seen in the
// wild.
func (h Header) KnownVersion() bool {
	return h.Version >= MinKnownVersion && h.Version <= MaxKnownVersion
}

// ParseHeader validates the magic and then extracts the remaining fields.
//
// The magic is checked before anything else is trusted: a buffer with a bad
// magic fails with ErrFormatMismatch even when it is also too short to hold a
// full header.
func ParseHeader(b []byte) (Header, error) {
	if len(b) < 2 {
		return Header{}, fmt.Errorf("header: magic: %w", ErrOutOfBounds)
	}
	magic := buf.U16LE(b[HeaderMagicOffset:])
	if magic != Magic {
		return Header{}, fmt.Errorf("header: magic 0x%04x, want 0x%04x: %w", magic, Magic, ErrFormatMismatch)
	}
	if len(b) < HeaderSize {
		return Header{}, fmt.Errorf("header: have %d bytes, need %d: %w", len(b), HeaderSize, ErrOutOfBounds)
	}
	return Header{
		Magic:            magic,
		Version:          ReadU16(b, HeaderVersionOffset),
		NameTableOffset:  ReadU32(b, HeaderNameTableOffset),
		ValueTableOffset: ReadU32(b, HeaderValueTableOffset),
		RootOffset:       ReadU32(b, HeaderRootOffset),
	}, nil
}

// PutHeader encodes h into the first HeaderSize bytes of b.
func PutHeader(b []byte, h Header) error {
	if len(b) < HeaderSize {
		return fmt.Errorf("header: have %d bytes, need %d: %w", len(b), HeaderSize, ErrOutOfBounds)
	}
	PutU16(b, HeaderMagicOffset, h.Magic)
	PutU16(b, HeaderVersionOffset, h.Version)
	PutU32(b, HeaderNameTableOffset, h.NameTableOffset)
	PutU32(b, HeaderValueTableOffset, h.ValueTableOffset)
	PutU32(b, HeaderRootOffset, h.RootOffset)
	return nil
}
