// Package format houses low-level decoders for the BYML binary tree format.
// The goal is to keep the parsing focused, allocation-free where possible, and
// independent from the public API so higher-level packages can orchestrate the
// data in a more ergonomic form.
package format

// Magic is the little-endian marker at offset 0 of every supported file.
// On disk the two bytes read 'Y' 'B'; the big-endian variant ('B' 'Y') is not
// supported.
const Magic uint16 = 0x4259

// Node type tags. Every node (and every dictionary entry) carries exactly one
// of these in its tag byte.
const (
	TagString      = 0xa0
	TagPath        = 0xa1
	TagArray       = 0xc0
	TagDict        = 0xc1
	TagStringTable = 0xc2
	TagPathTable   = 0xc3
	TagBool        = 0xd0
	TagInt         = 0xd1
	TagFloat       = 0xd2
)

// ============================================================================
// Header
// ============================================================================
//
//	Offset  Size  Field
//	0x00    2     Magic ("YB")
//	0x02    2     Version
//	0x04    4     Name (key) table offset
//	0x08    4     Value string table offset (0 when absent)
//	0x0C    4     Root node offset (0 for an empty document)
const (
	HeaderMagicOffset      = 0x00
	HeaderVersionOffset    = 0x02
	HeaderNameTableOffset  = 0x04
	HeaderValueTableOffset = 0x08
	HeaderRootOffset       = 0x0C

	HeaderSize = 0x10
)

// Versions seen in the wild. Every one of them uses 8-byte dictionary entries.
const (
	MinKnownVersion = 1
	MaxKnownVersion = 7
)

// ============================================================================
// Container nodes
// ============================================================================
//
// Dictionaries and string tables share a 4-byte node header:
//
//	Offset  Size  Field
//	0x00    1     Type tag
//	0x01    3     Entry count (packed little-endian)
const (
	NodeTagOffset   = 0x00
	NodeCountOffset = 0x01
	NodeHeaderSize  = 0x04

	// MaxCount is the largest count a 24-bit field can carry.
	MaxCount = 1<<24 - 1
)

// String tables follow the node header with count 4-byte offsets, each
// relative to the start of the table.
const StringOffsetSize = 4

// Dictionary entries follow the node header, one 8-byte slot each:
//
//	Offset  Size  Field
//	0x00    3     Name table index (packed little-endian)
//	0x03    1     Type tag
//	0x04    4     Payload: inline scalar, or absolute offset for containers
const (
	EntryNameIndexOffset = 0x00
	EntryTagOffset       = 0x03
	EntryPayloadOffset   = 0x04

	EntryHeaderSize  = 0x04
	EntryPayloadSize = 0x04
	EntrySize        = EntryHeaderSize + EntryPayloadSize
)
