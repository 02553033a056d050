package byml

import (
	"fmt"
	"strconv"
	"strings"

	core "github.com/joshuapare/bymlkit/byml"
)

// ParseKind maps a user-facing type name to a writable kind.
func ParseKind(s string) (core.Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bool":
		return core.KindBool, nil
	case "int", "s32", "int32":
		return core.KindInt, nil
	case "float", "f32", "float32":
		return core.KindFloat, nil
	default:
		return 0, fmt.Errorf("unknown value type %q (want bool, int or float)", s)
	}
}

// ParseValue encodes s as the 4-byte payload of kind. Ints accept decimal,
// 0x hex and negative values in the signed 32-bit range; bools accept the
// strconv spellings.
func ParseValue(kind core.Kind, s string) (core.Raw, error) {
	s = strings.TrimSpace(s)
	switch kind {
	case core.KindBool:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return core.Raw{}, fmt.Errorf("invalid bool %q: %w", s, err)
		}
		return core.BoolRaw(b), nil
	case core.KindInt:
		v, err := strconv.ParseInt(s, 0, 32)
		if err != nil {
			return core.Raw{}, fmt.Errorf("invalid int %q: %w", s, err)
		}
		return core.IntRaw(int32(v)), nil
	case core.KindFloat:
		v, err := strconv.ParseFloat(s, 32)
		if err != nil {
			return core.Raw{}, fmt.Errorf("invalid float %q: %w", s, err)
		}
		return core.FloatRaw(float32(v)), nil
	default:
		return core.Raw{}, fmt.Errorf("%s: %w", kind, core.ErrUnsupported)
	}
}

// FormatRaw renders raw as a value of kind, the inverse of ParseValue.
func FormatRaw(kind core.Kind, raw core.Raw) string {
	switch kind {
	case core.KindBool:
		return strconv.FormatBool(raw.Bool())
	case core.KindInt:
		return strconv.FormatInt(int64(raw.Int()), 10)
	case core.KindFloat:
		return strconv.FormatFloat(float64(raw.Float()), 'g', -1, 32)
	default:
		return fmt.Sprintf("0x%08x", raw.Uint32())
	}
}
