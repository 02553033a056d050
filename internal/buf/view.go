package buf

import (
	"bytes"
	"fmt"
)

// View is a non-owning, bounds-checked window over a byte buffer. All offsets
// passed to its methods are relative to the start of the view; sub-views share
// the underlying storage, so writes through any view are visible to all of them.
//
// The zero View is empty and every accessor on it fails with ErrOutOfBounds.
type View struct {
	b    []byte
	base int // absolute offset of b[0] within the root buffer
}

// NewView wraps b without copying it.
func NewView(b []byte) View {
	return View{b: b}
}

// Len returns the number of bytes visible through the view.
func (v View) Len() int { return len(v.b) }

// Base returns the absolute offset of the view's first byte in the buffer the
// root view was created from.
func (v View) Base() int { return v.base }

// Bytes exposes the viewed bytes. The returned slice aliases the buffer.
func (v View) Bytes() []byte { return v.b }

func (v View) check(off, n int) error {
	if _, ok := Slice(v.b, off, n); !ok {
		return fmt.Errorf("%d bytes at 0x%x (len 0x%x): %w", n, v.base+off, v.base+len(v.b), ErrOutOfBounds)
	}
	return nil
}

// At returns the byte at off.
func (v View) At(off int) (byte, error) {
	if err := v.check(off, 1); err != nil {
		return 0, err
	}
	return v.b[off], nil
}

// Slice returns the sub-view [off, off+n).
func (v View) Slice(off, n int) (View, error) {
	sub, ok := Slice(v.b, off, n)
	if !ok {
		return View{}, v.check(off, n)
	}
	return View{b: sub, base: v.base + off}, nil
}

// From returns the sub-view starting at off and running to the end of v.
func (v View) From(off int) (View, error) {
	if off < 0 || off > len(v.b) {
		return View{}, v.check(off, 0)
	}
	return View{b: v.b[off:], base: v.base + off}, nil
}

// U16LE reads a little-endian uint16 at off.
func (v View) U16LE(off int) (uint16, error) {
	if err := v.check(off, 2); err != nil {
		return 0, err
	}
	return U16LE(v.b[off:]), nil
}

// U24LE reads a packed little-endian 24-bit value at off.
func (v View) U24LE(off int) (uint32, error) {
	if err := v.check(off, 3); err != nil {
		return 0, err
	}
	return U24LE(v.b[off:]), nil
}

// U32LE reads a little-endian uint32 at off.
func (v View) U32LE(off int) (uint32, error) {
	if err := v.check(off, 4); err != nil {
		return 0, err
	}
	return U32LE(v.b[off:]), nil
}

// CString reads a NUL-terminated string starting at off. The terminator must
// lie inside the view.
func (v View) CString(off int) (string, error) {
	if err := v.check(off, 0); err != nil {
		return "", err
	}
	n := bytes.IndexByte(v.b[off:], 0)
	if n < 0 {
		return "", fmt.Errorf("unterminated string at 0x%x: %w", v.base+off, ErrOutOfBounds)
	}
	return string(v.b[off : off+n]), nil
}

// PutU32LE overwrites the four bytes at off with v in little-endian order.
func (v View) PutU32LE(off int, val uint32) error {
	if err := v.check(off, 4); err != nil {
		return err
	}
	PutU32LE(v.b[off:], val)
	return nil
}

// Put copies p into the view at off. Nothing is written unless all of p fits.
func (v View) Put(off int, p []byte) error {
	if err := v.check(off, len(p)); err != nil {
		return err
	}
	copy(v.b[off:], p)
	return nil
}
