package byml

import (
	"fmt"

	"github.com/joshuapare/bymlkit/internal/buf"
	"github.com/joshuapare/bymlkit/internal/format"
)

// Header is the decoded file header.
type Header struct {
	Version          uint16
	NameTableOffset  uint32
	ValueTableOffset uint32
	RootOffset       uint32
}

// KnownVersion reports whether the version is one seen in the wild (1..7).
func (h Header) KnownVersion() bool {
	return h.Version >= format.MinKnownVersion && h.Version <= format.MaxKnownVersion
}

// ReadHeader validates the magic and decodes the header without touching
// anything else in b.
func ReadHeader(b []byte) (Header, error) {
	h, err := format.ParseHeader(b)
	if err != nil {
		return Header{}, err
	}
	return Header{
		Version:          h.Version,
		NameTableOffset:  h.NameTableOffset,
		ValueTableOffset: h.ValueTableOffset,
		RootOffset:       h.RootOffset,
	}, nil
}

// Document is one parse session over a caller-owned buffer. The buffer must
// not be resized or reallocated while the document is in use.
type Document struct {
	data   []byte
	header Header
	sess   *session
	root   *DictNode
}

// Open validates data and binds a dictionary tree to it. The root node must be
// a dictionary: an array root fails with an *UnsupportedError, anything else
// with ErrFormatMismatch.
func Open(data []byte, opts ...Option) (*Document, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	hdr, err := ReadHeader(data)
	if err != nil {
		return nil, fmt.Errorf("byml: %w", err)
	}
	v := buf.NewView(data)

	names, err := NewStringTable(v, int(hdr.NameTableOffset))
	if err != nil {
		return nil, fmt.Errorf("byml: name table: %w", err)
	}
	sess := &session{names: names, tracker: o.tracker, nameIndex: o.nameIndex}
	if hdr.ValueTableOffset != 0 {
		// Some writers leave junk in this slot. Only string entries need the
		// table, so a bad one is recorded and surfaces when one is read.
		values, err := NewStringTable(v, int(hdr.ValueTableOffset))
		if err != nil {
			sess.valuesErr = fmt.Errorf("value table at 0x%x: %w", hdr.ValueTableOffset, err)
		} else {
			sess.values = values
		}
	}

	if hdr.RootOffset == 0 {
		return nil, fmt.Errorf("byml: document has no root: %w", ErrNotFound)
	}
	rootOff := int(hdr.RootOffset)
	tag, err := v.At(rootOff)
	if err != nil {
		return nil, fmt.Errorf("byml: root: %w", err)
	}
	if k := Kind(tag); k == KindArray || k == KindPathTable {
		return nil, fmt.Errorf("byml: root: %w", &UnsupportedError{Kind: k, Offset: rootOff})
	}
	root, err := newDict(v, rootOff, sess)
	if err != nil {
		return nil, fmt.Errorf("byml: root: %w", err)
	}

	return &Document{data: data, header: hdr, sess: sess, root: root}, nil
}

// Header returns the decoded header.
func (d *Document) Header() Header { return d.header }

// Root returns the root dictionary.
func (d *Document) Root() *DictNode { return d.root }

// Names returns the shared name table.
func (d *Document) Names() *StringTable { return d.sess.names }

// Values returns the value string table, or nil when the document has none
// or the header points at something that is not a string table.
func (d *Document) Values() *StringTable { return d.sess.values }

// ValueTableErr reports why a non-zero value table offset could not be
// resolved. It is nil when Values is usable or the offset is zero.
func (d *Document) ValueTableErr() error { return d.sess.valuesErr }

// Bytes returns the underlying buffer, including any in-place edits.
func (d *Document) Bytes() []byte { return d.data }
