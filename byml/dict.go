package byml

import (
	"fmt"

	"github.com/joshuapare/bymlkit/internal/buf"
	"github.com/joshuapare/bymlkit/internal/format"
)

// session is shared by every dictionary reached from one root. It carries
// the tables and hooks that would otherwise have to be threaded through each
// constructor.
type session struct {
	names     *StringTable
	values    *StringTable // nil when the document has no usable value table
	valuesErr error
	tracker   Tracker
	nameIndex bool
}

// DictNode is a view over a dictionary node.
//
//	Offset   Size  Field
//	0x00     1     Tag (0xc1)
//	0x01     3     Count n
//	0x04     8*n   Entries: name index (3), tag (1), payload (4)
//
// Named lookups scan linearly unless the document was opened WithNameIndex,
// in which case a name→index map is built on the first named lookup. Entry
// count and order never change, so the map is never invalidated.
type DictNode struct {
	v     buf.View
	off   int
	count int
	sess  *session

	byName map[string]int
}

// NewDictNode wraps the dictionary at off, resolving names through names.
// v must cover the whole document; off is absolute.
func NewDictNode(v buf.View, off int, names *StringTable) (*DictNode, error) {
	if names == nil {
		return nil, fmt.Errorf("dict at 0x%x: nil name table: %w", off, ErrFormatMismatch)
	}
	return newDict(v, off, &session{names: names})
}

// NewRootDict wraps the dictionary at off and builds the name table at
// nameTableOff, which every descendant then shares.
func NewRootDict(v buf.View, off, nameTableOff int) (*DictNode, error) {
	names, err := NewStringTable(v, nameTableOff)
	if err != nil {
		return nil, fmt.Errorf("name table: %w", err)
	}
	return newDict(v, off, &session{names: names})
}

func newDict(v buf.View, off int, sess *session) (*DictNode, error) {
	hv, err := v.Slice(off, format.NodeHeaderSize)
	if err != nil {
		return nil, fmt.Errorf("dict at 0x%x: %w", off, err)
	}
	hdr, err := format.DecodeContainerHeader(hv.Bytes(), format.TagDict)
	if err != nil {
		return nil, fmt.Errorf("dict at 0x%x: %w", off, err)
	}
	count := int(hdr.Count)
	if _, err := buf.CheckListBounds(v.Len(), off+format.NodeHeaderSize, count, format.EntrySize); err != nil {
		return nil, fmt.Errorf("dict at 0x%x: entries: %w", off, err)
	}
	return &DictNode{v: v, off: off, count: count, sess: sess}, nil
}

func (d *DictNode) names() *StringTable  { return d.sess.names }
func (d *DictNode) values() (*StringTable, error) { return d.sess.values, d.sess.valuesErr }

// Offset returns the absolute offset of the dictionary node.
func (d *DictNode) Offset() int { return d.off }

// Len returns the number of entries.
func (d *DictNode) Len() int { return d.count }

// Names returns the name table shared by this dictionary's tree.
func (d *DictNode) Names() *StringTable { return d.sess.names }

func (d *DictNode) slot(i int) (int, error) {
	if i < 0 || i >= d.count {
		return 0, fmt.Errorf("dict at 0x%x: entry %d of %d: %w", d.off, i, d.count, ErrOutOfBounds)
	}
	return d.off + format.NodeHeaderSize + i*format.EntrySize, nil
}

// Entry returns the i-th entry.
func (d *DictNode) Entry(i int) (ValueNode, error) {
	slot, err := d.slot(i)
	if err != nil {
		return ValueNode{}, err
	}
	sv, err := d.v.Slice(slot, format.EntrySize)
	if err != nil {
		return ValueNode{}, fmt.Errorf("dict at 0x%x: %w", d.off, err)
	}
	rec, err := format.DecodeEntry(sv.Bytes())
	if err != nil {
		return ValueNode{}, fmt.Errorf("dict at 0x%x: %w", d.off, err)
	}
	return ValueNode{
		dict:      d,
		index:     i,
		slot:      slot,
		nameIndex: rec.NameIndex,
		kind:      Kind(rec.Tag),
	}, nil
}

// NameOf resolves the name of the i-th entry.
func (d *DictNode) NameOf(i int) (string, error) {
	slot, err := d.slot(i)
	if err != nil {
		return "", err
	}
	idx, err := d.v.U24LE(slot + format.EntryNameIndexOffset)
	if err != nil {
		return "", fmt.Errorf("dict at 0x%x: %w", d.off, err)
	}
	name, err := d.sess.names.Get(int(idx))
	if err != nil {
		return "", fmt.Errorf("dict at 0x%x: entry %d name: %w", d.off, i, err)
	}
	return name, nil
}

// EntryNamed returns the first entry called name. Any error resolving a name
// along the way aborts the lookup.
func (d *DictNode) EntryNamed(name string) (ValueNode, error) {
	i, err := d.IndexOf(name)
	if err != nil {
		return ValueNode{}, err
	}
	return d.Entry(i)
}

// IndexOf returns the index of the first entry called name.
func (d *DictNode) IndexOf(name string) (int, error) {
	if d.sess.nameIndex {
		if err := d.buildIndex(); err != nil {
			return 0, err
		}
		if i, ok := d.byName[name]; ok {
			return i, nil
		}
		return 0, fmt.Errorf("dict at 0x%x: %q: %w", d.off, name, ErrNotFound)
	}
	for i := 0; i < d.count; i++ {
		n, err := d.NameOf(i)
		if err != nil {
			return 0, err
		}
		if n == name {
			return i, nil
		}
	}
	return 0, fmt.Errorf("dict at 0x%x: %q: %w", d.off, name, ErrNotFound)
}

func (d *DictNode) buildIndex() error {
	if d.byName != nil {
		return nil
	}
	m := make(map[string]int, d.count)
	for i := 0; i < d.count; i++ {
		n, err := d.NameOf(i)
		if err != nil {
			return err
		}
		if _, dup := m[n]; !dup {
			m[n] = i
		}
	}
	d.byName = m
	return nil
}

// Child follows a dict-typed entry to the nested dictionary. The child shares
// this dictionary's tables.
func (d *DictNode) Child(n ValueNode) (*DictNode, error) {
	if n.kind != KindDict {
		return nil, fmt.Errorf("entry at 0x%x is %s: %w", n.slot, n.kind, ErrTypeMismatch)
	}
	off, err := n.Offset()
	if err != nil {
		return nil, err
	}
	return newDict(d.v, off, d.sess)
}

// ChildNamed is EntryNamed followed by Child.
func (d *DictNode) ChildNamed(name string) (*DictNode, error) {
	n, err := d.EntryNamed(name)
	if err != nil {
		return nil, err
	}
	return d.Child(n)
}
