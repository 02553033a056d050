package byml

import "github.com/joshuapare/bymlkit/internal/format"

// Kind is the one-byte type tag carried by every node and dictionary entry.
type Kind uint8

const (
	KindString      Kind = format.TagString
	KindPath        Kind = format.TagPath
	KindArray       Kind = format.TagArray
	KindDict        Kind = format.TagDict
	KindStringTable Kind = format.TagStringTable
	KindPathTable   Kind = format.TagPathTable
	KindBool        Kind = format.TagBool
	KindInt         Kind = format.TagInt
	KindFloat       Kind = format.TagFloat
)

func (k Kind) String() string { return format.TagName(byte(k)) }

// IsScalar reports whether values of this kind are stored inline in the
// entry payload and may be overwritten in place.
func (k Kind) IsScalar() bool { return format.IsInlineScalar(byte(k)) }

// IsSupported reports whether this package can interpret the kind.
func (k Kind) IsSupported() bool {
	switch k {
	case KindString, KindDict, KindStringTable, KindBool, KindInt, KindFloat:
		return true
	default:
		return false
	}
}
