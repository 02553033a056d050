package byml

// Node is the tagged variant an entry resolves to. Exactly one accessor is
// meaningful, selected by Kind:
//
//	KindDict               Dict
//	KindStringTable        StringTable
//	KindBool/Int/Float     Value (inline payload)
//	KindString             Value (index into the value table)
//	anything else          Unsupported reports true
//
// Value is always populated, so callers can still name or locate an
// unsupported entry.
type Node struct {
	value ValueNode
	dict  *DictNode
	table *StringTable
}

// Kind returns the variant tag.
func (n Node) Kind() Kind { return n.value.kind }

// Value returns the underlying entry.
func (n Node) Value() ValueNode { return n.value }

// Dict returns the nested dictionary for KindDict nodes.
func (n Node) Dict() (*DictNode, bool) { return n.dict, n.dict != nil }

// StringTable returns the nested table for KindStringTable nodes.
func (n Node) StringTable() (*StringTable, bool) { return n.table, n.table != nil }

// Unsupported reports whether the node is of a kind this package does not
// implement.
func (n Node) Unsupported() bool { return !n.value.kind.IsSupported() }

// Err returns an *UnsupportedError for unsupported nodes and nil otherwise.
func (n Node) Err() error {
	if n.Unsupported() {
		return &UnsupportedError{Kind: n.value.kind, Offset: n.value.slot}
	}
	return nil
}

// Node resolves the i-th entry into its variant. Containers are constructed
// (and validated) here; unsupported kinds are returned as a variant, not an
// error.
func (d *DictNode) Node(i int) (Node, error) {
	v, err := d.Entry(i)
	if err != nil {
		return Node{}, err
	}
	return d.resolve(v)
}

func (d *DictNode) resolve(v ValueNode) (Node, error) {
	switch v.kind {
	case KindDict:
		child, err := d.Child(v)
		if err != nil {
			return Node{}, err
		}
		return Node{value: v, dict: child}, nil
	case KindStringTable:
		off, err := v.Offset()
		if err != nil {
			return Node{}, err
		}
		t, err := NewStringTable(d.v, off)
		if err != nil {
			return Node{}, err
		}
		return Node{value: v, table: t}, nil
	default:
		return Node{value: v}, nil
	}
}
