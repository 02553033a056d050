package byml_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/bymlkit/byml"
	"github.com/joshuapare/bymlkit/internal/buf"
	"github.com/joshuapare/bymlkit/internal/testutil"
)

func openSample(t *testing.T, opts ...byml.Option) *byml.Document {
	t.Helper()
	doc, err := byml.Open(testutil.Build(testutil.Sample()), opts...)
	require.NoError(t, err)
	return doc
}

func TestDictEntryOrderAndNames(t *testing.T) {
	root := openSample(t).Root()
	require.Equal(t, 4, root.Len())

	want := []string{"Name", "Level", "Stats", "World"}
	for i, name := range want {
		got, err := root.NameOf(i)
		require.NoError(t, err)
		require.Equal(t, name, got)

		e, err := root.Entry(i)
		require.NoError(t, err)
		require.Equal(t, i, e.Index())
		n, err := e.Name()
		require.NoError(t, err)
		require.Equal(t, name, n)
	}
}

func TestDictEntryBounds(t *testing.T) {
	root := openSample(t).Root()
	for _, i := range []int{-1, root.Len(), 1 << 20} {
		_, err := root.Entry(i)
		require.True(t, errors.Is(err, byml.ErrOutOfBounds), "Entry(%d): %v", i, err)
		_, err = root.NameOf(i)
		require.True(t, errors.Is(err, byml.ErrOutOfBounds), "NameOf(%d): %v", i, err)
		_, err = root.Node(i)
		require.True(t, errors.Is(err, byml.ErrOutOfBounds), "Node(%d): %v", i, err)
	}
}

func TestDictEntryNamed(t *testing.T) {
	for _, tc := range []struct {
		name string
		opts []byml.Option
	}{
		{"linear", nil},
		{"indexed", []byml.Option{byml.WithNameIndex()}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			root := openSample(t, tc.opts...).Root()

			e, err := root.EntryNamed("Level")
			require.NoError(t, err)
			require.Equal(t, byml.KindInt, e.Kind())
			require.Equal(t, 1, e.Index())

			_, err = root.EntryNamed("Missing")
			require.True(t, errors.Is(err, byml.ErrNotFound), "got %v", err)

			// Names exist in the shared table but not in this dict.
			_, err = root.EntryNamed("Speed")
			require.True(t, errors.Is(err, byml.ErrNotFound), "got %v", err)

			stats, err := root.ChildNamed("Stats")
			require.NoError(t, err)
			speed, err := stats.EntryNamed("Speed")
			require.NoError(t, err)
			f, err := speed.Float()
			require.NoError(t, err)
			require.Equal(t, float32(1.5), f)
		})
	}
}

func TestDictDuplicateNameFirstWins(t *testing.T) {
	data := testutil.Build(testutil.D(
		testutil.Int("A", 1),
		testutil.Int("A", 2),
	))
	for _, opts := range [][]byml.Option{nil, {byml.WithNameIndex()}} {
		doc, err := byml.Open(data, opts...)
		require.NoError(t, err)
		e, err := doc.Root().EntryNamed("A")
		require.NoError(t, err)
		require.Equal(t, 0, e.Index())
	}
}

func TestDictBadNameIndexAbortsLookup(t *testing.T) {
	data := testutil.Build(testutil.D(
		testutil.Int("A", 1),
		testutil.Int("B", 2),
	))
	doc, err := byml.Open(data)
	require.NoError(t, err)
	root := doc.Root()

	// Corrupt entry 0's name index to point past the name table.
	e, err := root.Entry(0)
	require.NoError(t, err)
	data[e.SlotOffset()] = 0x7f

	_, err = root.NameOf(0)
	require.True(t, errors.Is(err, byml.ErrOutOfBounds), "got %v", err)
	_, err = root.EntryNamed("B")
	require.True(t, errors.Is(err, byml.ErrOutOfBounds), "got %v", err)
}

func TestDictChild(t *testing.T) {
	root := openSample(t).Root()

	world, err := root.ChildNamed("World")
	require.NoError(t, err)
	require.Equal(t, 2, world.Len())
	require.Same(t, root.Names(), world.Names())

	level, err := root.EntryNamed("Level")
	require.NoError(t, err)
	_, err = root.Child(level)
	require.True(t, errors.Is(err, byml.ErrTypeMismatch), "got %v", err)
}

func TestNewDictNode(t *testing.T) {
	data := scenarioBytes()
	v := buf.NewView(data)

	names, err := byml.NewStringTable(v, 0x20)
	require.NoError(t, err)
	d, err := byml.NewDictNode(v, 0x40, names)
	require.NoError(t, err)
	require.Equal(t, 1, d.Len())
	require.Equal(t, 0x40, d.Offset())

	_, err = byml.NewDictNode(v, 0x40, nil)
	require.True(t, errors.Is(err, byml.ErrFormatMismatch), "got %v", err)

	_, err = byml.NewDictNode(v, 0x20, names)
	require.True(t, errors.Is(err, byml.ErrFormatMismatch), "got %v", err)

	root, err := byml.NewRootDict(v, 0x40, 0x20)
	require.NoError(t, err)
	n, err := root.NameOf(0)
	require.NoError(t, err)
	require.Equal(t, "bar", n)
}
