package format

import "fmt"

// ContainerHeader is the 4-byte header at the start of dictionaries and
// string tables: a type tag followed by a packed 24-bit entry count.
type ContainerHeader struct {
	Tag   byte
	Count uint32
}

// DecodeContainerHeader decodes the node header at the start of b and checks
// that its tag equals want.
func DecodeContainerHeader(b []byte, want byte) (ContainerHeader, error) {
	if len(b) < NodeHeaderSize {
		return ContainerHeader{}, fmt.Errorf("node header: have %d bytes, need %d: %w", len(b), NodeHeaderSize, ErrOutOfBounds)
	}
	if b[NodeTagOffset] != want {
		return ContainerHeader{}, fmt.Errorf("node header: tag 0x%02x, want 0x%02x: %w", b[NodeTagOffset], want, ErrFormatMismatch)
	}
	return ContainerHeader{
		Tag:   b[NodeTagOffset],
		Count: ReadU24(b, NodeCountOffset),
	}, nil
}

// EntryRecord is one decoded dictionary slot. Payload is kept raw; its meaning
// depends on Tag.
type EntryRecord struct {
	NameIndex uint32
	Tag       byte
	Payload   [EntryPayloadSize]byte
}

// DecodeEntry decodes one 8-byte dictionary slot.
func DecodeEntry(b []byte) (EntryRecord, error) {
	if len(b) < EntrySize {
		return EntryRecord{}, fmt.Errorf("entry: have %d bytes, need %d: %w", len(b), EntrySize, ErrOutOfBounds)
	}
	var rec EntryRecord
	rec.NameIndex = ReadU24(b, EntryNameIndexOffset)
	rec.Tag = b[EntryTagOffset]
	copy(rec.Payload[:], b[EntryPayloadOffset:EntrySize])
	return rec, nil
}

// IsInlineScalar reports whether tag carries its value inline in the payload.
func IsInlineScalar(tag byte) bool {
	switch tag {
	case TagBool, TagInt, TagFloat:
		return true
	default:
		return false
	}
}

// TagName returns a short human-readable name for tag.
func TagName(tag byte) string {
	switch tag {
	case TagString:
		return "string"
	case TagPath:
		return "path"
	case TagArray:
		return "array"
	case TagDict:
		return "dict"
	case TagStringTable:
		return "string_table"
	case TagPathTable:
		return "path_table"
	case TagBool:
		return "bool"
	case TagInt:
		return "int"
	case TagFloat:
		return "float"
	default:
		return fmt.Sprintf("unknown(0x%02x)", tag)
	}
}
