package byml_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/bymlkit/byml"
	"github.com/joshuapare/bymlkit/internal/format"
	"github.com/joshuapare/bymlkit/internal/testutil"
)

func TestNodeVariants(t *testing.T) {
	data := testutil.Build(testutil.D(
		testutil.Int("I", 7),
		testutil.Sub("D", testutil.D(testutil.Bool("B", true))),
		testutil.Table("T", "x", "y"),
		testutil.Array("A"),
		testutil.Raw("P", format.TagPath, 0),
	))
	doc, err := byml.Open(data)
	require.NoError(t, err)
	root := doc.Root()

	get := func(name string) byml.Node {
		i, err := root.IndexOf(name)
		require.NoError(t, err)
		n, err := root.Node(i)
		require.NoError(t, err)
		return n
	}

	n := get("I")
	require.Equal(t, byml.KindInt, n.Kind())
	require.False(t, n.Unsupported())
	require.NoError(t, n.Err())
	_, ok := n.Dict()
	require.False(t, ok)

	n = get("D")
	d, ok := n.Dict()
	require.True(t, ok)
	require.Equal(t, 1, d.Len())

	n = get("T")
	st, ok := n.StringTable()
	require.True(t, ok)
	strs, err := st.Strings()
	require.NoError(t, err)
	require.Equal(t, []string{"x", "y"}, strs)

	for _, name := range []string{"A", "P"} {
		n = get(name)
		require.True(t, n.Unsupported(), name)
		var ue *byml.UnsupportedError
		require.True(t, errors.As(n.Err(), &ue), name)
		require.Equal(t, n.Value().SlotOffset(), ue.Offset)
		require.True(t, errors.Is(n.Err(), byml.ErrUnsupported))
	}
}

func TestNodeDanglingChild(t *testing.T) {
	data := testutil.Build(testutil.D(testutil.Raw("D", format.TagDict, 0xfffff0)))
	doc, err := byml.Open(data)
	require.NoError(t, err)
	_, err = doc.Root().Node(0)
	require.True(t, errors.Is(err, byml.ErrOutOfBounds), "got %v", err)
}

func TestKindString(t *testing.T) {
	require.Equal(t, "dict", byml.KindDict.String())
	require.True(t, byml.KindFloat.IsScalar())
	require.False(t, byml.KindString.IsScalar())
	require.False(t, byml.KindArray.IsSupported())
	require.True(t, byml.KindStringTable.IsSupported())
}
