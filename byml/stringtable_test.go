package byml_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/bymlkit/byml"
	"github.com/joshuapare/bymlkit/internal/buf"
	"github.com/joshuapare/bymlkit/internal/testutil"
)

func TestStringTableGet(t *testing.T) {
	v := buf.NewView(scenarioBytes())
	st, err := byml.NewStringTable(v, 0x20)
	require.NoError(t, err)
	require.Equal(t, 2, st.Count())
	require.Equal(t, 0x20, st.Offset())

	s, err := st.Get(0)
	require.NoError(t, err)
	require.Equal(t, "foo", s)

	off, err := st.EntryOffset(1)
	require.NoError(t, err)
	require.Equal(t, 0x30, off)

	all, err := st.Strings()
	require.NoError(t, err)
	require.Equal(t, []string{"foo", "bar"}, all)
}

// requireRoundTrip checks that every entry offset points at exactly the bytes
// Get returns, followed by a terminator.
func requireRoundTrip(t *testing.T, data []byte, st *byml.StringTable) []string {
	t.Helper()
	got := make([]string, 0, st.Count())
	for i := 0; i < st.Count(); i++ {
		s, err := st.Get(i)
		require.NoError(t, err, "Get(%d)", i)
		off, err := st.EntryOffset(i)
		require.NoError(t, err, "EntryOffset(%d)", i)
		require.Less(t, off+len(s), len(data), "string %d runs off the end", i)
		require.Equal(t, s, string(data[off:off+len(s)]), "string %d", i)
		require.Zero(t, data[off+len(s)], "string %d is not terminated", i)
		got = append(got, s)
	}
	return got
}

func TestStringTableRoundTrip(t *testing.T) {
	t.Run("scenario", func(t *testing.T) {
		data := scenarioBytes()
		st, err := byml.NewStringTable(buf.NewView(data), 0x20)
		require.NoError(t, err)
		require.Equal(t, []string{"foo", "bar"}, requireRoundTrip(t, data, st))
	})

	t.Run("many names", func(t *testing.T) {
		root := testutil.D()
		want := make([]string, 0, 64)
		for i := 0; i < 64; i++ {
			name := fmt.Sprintf("%s%02d", strings.Repeat("n", i%7+1), i)
			want = append(want, name)
			root.Entries = append(root.Entries, testutil.Int(name, int32(i)))
		}
		data := testutil.Build(root)

		hdr, err := byml.ReadHeader(data)
		require.NoError(t, err)
		st, err := byml.NewStringTable(buf.NewView(data), int(hdr.NameTableOffset))
		require.NoError(t, err)
		require.Equal(t, len(want), st.Count())
		require.ElementsMatch(t, want, requireRoundTrip(t, data, st))
	})
}

func TestStringTableIndexBounds(t *testing.T) {
	st, err := byml.NewStringTable(buf.NewView(scenarioBytes()), 0x20)
	require.NoError(t, err)

	for _, i := range []int{-1, st.Count(), st.Count() + 100} {
		_, err := st.Get(i)
		require.True(t, errors.Is(err, byml.ErrOutOfBounds), "index %d: %v", i, err)
		_, err = st.EntryOffset(i)
		require.True(t, errors.Is(err, byml.ErrOutOfBounds), "index %d: %v", i, err)
	}
}

func TestStringTableMalformed(t *testing.T) {
	t.Run("wrong tag", func(t *testing.T) {
		_, err := byml.NewStringTable(buf.NewView(scenarioBytes()), 0x40)
		require.True(t, errors.Is(err, byml.ErrFormatMismatch), "got %v", err)
	})

	t.Run("offset past end", func(t *testing.T) {
		_, err := byml.NewStringTable(buf.NewView(scenarioBytes()), 0x1000)
		require.True(t, errors.Is(err, byml.ErrOutOfBounds), "got %v", err)
	})

	t.Run("count past end", func(t *testing.T) {
		data := scenarioBytes()
		data[0x22] = 0x01 // count becomes 0x10002
		_, err := byml.NewStringTable(buf.NewView(data), 0x20)
		require.True(t, errors.Is(err, byml.ErrOutOfBounds), "got %v", err)
	})

	t.Run("string offset past end", func(t *testing.T) {
		data := scenarioBytes()
		data[0x25] = 0x10 // entry 0 now points 0x100c past the table
		st, err := byml.NewStringTable(buf.NewView(data), 0x20)
		require.NoError(t, err)
		_, err = st.Get(0)
		require.True(t, errors.Is(err, byml.ErrOutOfBounds), "got %v", err)
		// The other entry is unaffected.
		s, err := st.Get(1)
		require.NoError(t, err)
		require.Equal(t, "bar", s)
	})

	t.Run("unterminated string", func(t *testing.T) {
		data := scenarioBytes()[:0x33] // cuts "bar" before its NUL
		st, err := byml.NewStringTable(buf.NewView(data), 0x20)
		require.NoError(t, err)
		_, err = st.Get(1)
		require.True(t, errors.Is(err, byml.ErrOutOfBounds), "got %v", err)
	})
}
