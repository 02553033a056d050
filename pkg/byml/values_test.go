package byml_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	core "github.com/joshuapare/bymlkit/byml"
	"github.com/joshuapare/bymlkit/pkg/byml"
)

func TestParseValue(t *testing.T) {
	tests := []struct {
		name    string
		kind    core.Kind
		in      string
		want    core.Raw
		wantErr bool
	}{
		{"int", core.KindInt, "42", core.IntRaw(42), false},
		{"negative int", core.KindInt, "-7", core.IntRaw(-7), false},
		{"hex int", core.KindInt, "0x10", core.IntRaw(16), false},
		{"int overflow", core.KindInt, "4294967296", core.Raw{}, true},
		{"int garbage", core.KindInt, "ten", core.Raw{}, true},
		{"float", core.KindFloat, "1.5", core.FloatRaw(1.5), false},
		{"float padded", core.KindFloat, " -0.25 ", core.FloatRaw(-0.25), false},
		{"float garbage", core.KindFloat, "fast", core.Raw{}, true},
		{"bool true", core.KindBool, "true", core.BoolRaw(true), false},
		{"bool 0", core.KindBool, "0", core.BoolRaw(false), false},
		{"bool garbage", core.KindBool, "maybe", core.Raw{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := byml.ParseValue(tt.kind, tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseValueUnsupportedKind(t *testing.T) {
	_, err := byml.ParseValue(core.KindString, "x")
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrUnsupported)
}

func TestParseKind(t *testing.T) {
	for in, want := range map[string]core.Kind{
		"int":   core.KindInt,
		"S32":   core.KindInt,
		"float": core.KindFloat,
		"f32":   core.KindFloat,
		"bool":  core.KindBool,
	} {
		got, err := byml.ParseKind(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := byml.ParseKind("string")
	require.Error(t, err)
}

func TestFormatRaw(t *testing.T) {
	assert.Equal(t, "-3", byml.FormatRaw(core.KindInt, core.IntRaw(-3)))
	assert.Equal(t, "1.5", byml.FormatRaw(core.KindFloat, core.FloatRaw(1.5)))
	assert.Equal(t, "true", byml.FormatRaw(core.KindBool, core.BoolRaw(true)))
	assert.Equal(t, "0x00000007", byml.FormatRaw(core.KindString, core.IntRaw(7)))
}
