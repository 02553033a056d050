package byml

import (
	"fmt"

	"github.com/joshuapare/bymlkit/internal/buf"
	"github.com/joshuapare/bymlkit/internal/format"
)

// StringTable is a view over a count-prefixed array of offsets, each relative
// to the table start and pointing at a NUL-terminated string.
//
//	Offset        Size  Field
//	0x00          1     Tag (0xc2)
//	0x01          3     Count n
//	0x04          4*n   String offsets, relative to the table start
//	...                 String bytes
//
// Lookups are not cached: each Get re-reads the buffer.
type StringTable struct {
	v     buf.View
	off   int
	count int
}

// NewStringTable validates the tag at off and the extent of the offset array.
// v must cover the whole document; off is absolute.
func NewStringTable(v buf.View, off int) (*StringTable, error) {
	hv, err := v.Slice(off, format.NodeHeaderSize)
	if err != nil {
		return nil, fmt.Errorf("string table at 0x%x: %w", off, err)
	}
	hdr, err := format.DecodeContainerHeader(hv.Bytes(), format.TagStringTable)
	if err != nil {
		return nil, fmt.Errorf("string table at 0x%x: %w", off, err)
	}
	count := int(hdr.Count)
	if _, err := buf.CheckListBounds(v.Len(), off+format.NodeHeaderSize, count, format.StringOffsetSize); err != nil {
		return nil, fmt.Errorf("string table at 0x%x: offsets: %w", off, err)
	}
	return &StringTable{v: v, off: off, count: count}, nil
}

// Offset returns the absolute offset of the table.
func (t *StringTable) Offset() int { return t.off }

// Count returns the number of strings in the table.
func (t *StringTable) Count() int { return t.count }

// EntryOffset returns the absolute offset of the i-th string's first byte.
func (t *StringTable) EntryOffset(i int) (int, error) {
	if i < 0 || i >= t.count {
		return 0, fmt.Errorf("string table at 0x%x: index %d of %d: %w", t.off, i, t.count, ErrOutOfBounds)
	}
	rel, err := t.v.U32LE(t.off + format.NodeHeaderSize + i*format.StringOffsetSize)
	if err != nil {
		return 0, fmt.Errorf("string table at 0x%x: %w", t.off, err)
	}
	abs, ok := buf.AddOverflowSafe(t.off, int(rel))
	if !ok {
		return 0, fmt.Errorf("string table at 0x%x: offset 0x%x overflows: %w", t.off, rel, ErrOutOfBounds)
	}
	return abs, nil
}

// Get returns the i-th string.
func (t *StringTable) Get(i int) (string, error) {
	abs, err := t.EntryOffset(i)
	if err != nil {
		return "", err
	}
	s, err := t.v.CString(abs)
	if err != nil {
		return "", fmt.Errorf("string table at 0x%x: string %d: %w", t.off, i, err)
	}
	return s, nil
}

// Strings returns every string in table order.
func (t *StringTable) Strings() ([]string, error) {
	out := make([]string, 0, t.count)
	for i := 0; i < t.count; i++ {
		s, err := t.Get(i)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}
