//go:build linux || freebsd || darwin

package dirty_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/bymlkit/byml"
	"github.com/joshuapare/bymlkit/byml/dirty"
	"github.com/joshuapare/bymlkit/byml/edit"
	"github.com/joshuapare/bymlkit/internal/mmfile"
	"github.com/joshuapare/bymlkit/internal/testutil"
)

func TestCommitMappedEdit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.byml")
	require.NoError(t, os.WriteFile(path, testutil.Build(testutil.Sample()), 0o644))

	m, err := mmfile.MapRW(path)
	require.NoError(t, err)
	defer m.Close()

	tr := dirty.NewTracker()
	doc, err := byml.Open(m.Data, byml.WithTracker(tr))
	require.NoError(t, err)

	ok, err := edit.DeepReplace(doc.Root(), "Level", byml.IntRaw(77))
	require.NoError(t, err)
	require.True(t, ok)
	require.True(t, tr.Dirty())
	require.Len(t, tr.Ranges(), 1)

	require.NoError(t, tr.Commit(context.Background(), m.Data, m.Fd(), dirty.FlushAuto))
	require.False(t, tr.Dirty())

	reread, err := byml.Open(testutil.ReadFile(t, path))
	require.NoError(t, err)
	v, err := reread.Root().EntryNamed("Level")
	require.NoError(t, err)
	got, err := v.Int()
	require.NoError(t, err)
	require.Equal(t, int32(77), got)
}

func TestFlushDataOnlyMapped(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.byml")
	require.NoError(t, os.WriteFile(path, testutil.Build(testutil.Sample()), 0o644))

	m, err := mmfile.MapRW(path)
	require.NoError(t, err)
	defer m.Close()

	tr := dirty.NewTracker()
	tr.Add(0x10, 4)
	require.NoError(t, tr.Commit(context.Background(), m.Data, m.Fd(), dirty.FlushDataOnly))
	require.False(t, tr.Dirty())
}
