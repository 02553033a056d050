package byml

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/joshuapare/bymlkit/internal/format"
)

// Raw is the 4-byte payload of a dictionary entry exactly as stored.
type Raw [format.EntryPayloadSize]byte

// BoolRaw encodes b the way bool entries store it (1 or 0, widened).
func BoolRaw(b bool) Raw {
	if b {
		return Raw{1, 0, 0, 0}
	}
	return Raw{}
}

// IntRaw encodes a signed 32-bit integer payload.
func IntRaw(v int32) Raw {
	var r Raw
	binary.LittleEndian.PutUint32(r[:], uint32(v))
	return r
}

// FloatRaw encodes an IEEE-754 single precision payload.
func FloatRaw(v float32) Raw {
	var r Raw
	binary.LittleEndian.PutUint32(r[:], math.Float32bits(v))
	return r
}

// Uint32 reinterprets the payload as an unsigned little-endian integer.
func (r Raw) Uint32() uint32 { return binary.LittleEndian.Uint32(r[:]) }

// Bool reinterprets the payload as a bool. Any non-zero value is true.
func (r Raw) Bool() bool { return r.Uint32() != 0 }

// Int reinterprets the payload as a signed integer.
func (r Raw) Int() int32 { return int32(r.Uint32()) }

// Float reinterprets the payload as a float.
func (r Raw) Float() float32 { return math.Float32frombits(r.Uint32()) }

// ValueNode is a view of one dictionary entry: its type tag, name index and
// 4-byte payload. It stays bound to the dictionary it came from, which is how
// its name and any nested offsets are resolved.
type ValueNode struct {
	dict      *DictNode
	index     int
	slot      int // absolute offset of the 8-byte slot
	nameIndex uint32
	kind      Kind
}

// Kind returns the entry's type tag.
func (n ValueNode) Kind() Kind { return n.kind }

// Index returns the entry's position within its dictionary.
func (n ValueNode) Index() int { return n.index }

// Dict returns the dictionary that owns the entry.
func (n ValueNode) Dict() *DictNode { return n.dict }

// NameIndex returns the packed index into the name table.
func (n ValueNode) NameIndex() uint32 { return n.nameIndex }

// SlotOffset returns the absolute offset of the entry's 8-byte slot.
func (n ValueNode) SlotOffset() int { return n.slot }

// PayloadOffset returns the absolute offset of the entry's 4-byte payload.
func (n ValueNode) PayloadOffset() int { return n.slot + format.EntryPayloadOffset }

// Name resolves the entry name through the dictionary's name table.
func (n ValueNode) Name() (string, error) {
	if n.dict == nil {
		return "", fmt.Errorf("value node: unbound: %w", ErrOutOfBounds)
	}
	return n.dict.names().Get(int(n.nameIndex))
}

// Raw returns the current payload bytes. It re-reads the buffer, so it reflects
// earlier writes through any view.
func (n ValueNode) Raw() Raw {
	var r Raw
	if n.dict == nil {
		return r
	}
	pv, err := n.dict.v.Slice(n.PayloadOffset(), format.EntryPayloadSize)
	if err != nil {
		return r
	}
	copy(r[:], pv.Bytes())
	return r
}

func (n ValueNode) expect(k Kind) error {
	if n.kind != k {
		return fmt.Errorf("entry at 0x%x is %s, want %s: %w", n.slot, n.kind, k, ErrTypeMismatch)
	}
	return nil
}

// Bool returns the payload of a bool entry.
func (n ValueNode) Bool() (bool, error) {
	if err := n.expect(KindBool); err != nil {
		return false, err
	}
	return n.Raw().Bool(), nil
}

// Int returns the payload of an int entry.
func (n ValueNode) Int() (int32, error) {
	if err := n.expect(KindInt); err != nil {
		return 0, err
	}
	return n.Raw().Int(), nil
}

// Float returns the payload of a float entry.
func (n ValueNode) Float() (float32, error) {
	if err := n.expect(KindFloat); err != nil {
		return 0, err
	}
	return n.Raw().Float(), nil
}

// Offset returns the payload of an offset-carrying entry: an absolute buffer
// offset for containers, or a table index for strings and paths. Inline
// scalars fail with ErrTypeMismatch.
func (n ValueNode) Offset() (int, error) {
	if n.kind.IsScalar() {
		return 0, fmt.Errorf("entry at 0x%x is inline %s: %w", n.slot, n.kind, ErrTypeMismatch)
	}
	return int(n.Raw().Uint32()), nil
}

// StringValue resolves a string entry through the document's value table.
// Without a usable table it fails with an *UnsupportedError; when the header
// offset was bad the error also wraps the reason.
func (n ValueNode) StringValue() (string, error) {
	if err := n.expect(KindString); err != nil {
		return "", err
	}
	values, err := n.dict.values()
	if err != nil {
		return "", fmt.Errorf("%w: %w", &UnsupportedError{Kind: KindString, Offset: n.slot}, err)
	}
	if values == nil {
		return "", &UnsupportedError{Kind: KindString, Offset: n.slot}
	}
	return values.Get(int(n.Raw().Uint32()))
}

// SetRaw overwrites the payload in place. Only bool, int and float entries may
// be written; for every other kind the payload encodes layout and writing it
// would corrupt the tree, so the call fails with ErrTypeMismatch and leaves the
// buffer untouched.
func (n ValueNode) SetRaw(r Raw) error {
	if !n.kind.IsScalar() {
		return fmt.Errorf("entry at 0x%x: cannot overwrite %s payload: %w", n.slot, n.kind, ErrTypeMismatch)
	}
	if n.dict == nil {
		return fmt.Errorf("value node: unbound: %w", ErrOutOfBounds)
	}
	off := n.PayloadOffset()
	if err := n.dict.v.Put(off, r[:]); err != nil {
		return fmt.Errorf("entry at 0x%x: %w", n.slot, err)
	}
	if t := n.dict.sess.tracker; t != nil {
		t.Add(off, format.EntryPayloadSize)
	}
	return nil
}

// SetBool writes a bool entry.
func (n ValueNode) SetBool(b bool) error {
	if err := n.expect(KindBool); err != nil {
		return err
	}
	return n.SetRaw(BoolRaw(b))
}

// SetInt writes an int entry.
func (n ValueNode) SetInt(v int32) error {
	if err := n.expect(KindInt); err != nil {
		return err
	}
	return n.SetRaw(IntRaw(v))
}

// SetFloat writes a float entry.
func (n ValueNode) SetFloat(v float32) error {
	if err := n.expect(KindFloat); err != nil {
		return err
	}
	return n.SetRaw(FloatRaw(v))
}
