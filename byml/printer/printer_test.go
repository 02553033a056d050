package printer

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/japanese"

	"github.com/joshuapare/bymlkit/byml"
	"github.com/joshuapare/bymlkit/internal/testutil"
)

func openSample(t *testing.T) *byml.Document {
	t.Helper()
	doc, err := byml.Open(testutil.Build(testutil.Sample()))
	require.NoError(t, err)
	return doc
}

func TestPrinter_PrintDocument_Text(t *testing.T) {
	var buf bytes.Buffer
	p := New(&buf, DefaultOptions())
	require.NoError(t, p.PrintDocument(context.Background(), openSample(t)))

	output := buf.String()
	t.Logf("Text output:\n%s", output)

	lines := strings.Split(strings.TrimRight(output, "\n"), "\n")
	require.Len(t, lines, 11)
	require.True(t, strings.HasPrefix(lines[0], "BYML v2  names: 9  values: 1  root: 0x"), lines[0])
	require.Equal(t, []string{
		`Name [string] = "player"`,
		`Level [int] = 3`,
		`Stats [dict] {2 entries}`,
		`  Speed [float] = 1.5`,
		`  Hidden [bool] = false`,
		`World [dict] {2 entries}`,
		`  Area [dict] {1 entries}`,
		`    Boss [dict] {1 entries}`,
		`      Speed [float] = 9`,
	}, lines[1:10])
	require.True(t, strings.HasPrefix(lines[10], "  Tags [array] = <unsupported array @0x"), lines[10])
}

func TestPrinter_MaxDepth(t *testing.T) {
	var buf bytes.Buffer
	opts := DefaultOptions()
	opts.MaxDepth = 1
	opts.ShowTypes = false
	p := New(&buf, opts)
	require.NoError(t, p.PrintDict(context.Background(), openSample(t).Root()))

	require.Equal(t, "Name = \"player\"\nLevel = 3\nStats {2 entries}\nWorld {2 entries}\n", buf.String())
}

func TestPrinter_SharedDict(t *testing.T) {
	shared := testutil.D(testutil.Int("X", 1))
	doc, err := byml.Open(testutil.Build(testutil.D(
		testutil.Sub("A", shared),
		testutil.Sub("B", shared),
	)))
	require.NoError(t, err)

	var buf bytes.Buffer
	opts := DefaultOptions()
	opts.ShowTypes = false
	require.NoError(t, New(&buf, opts).PrintDict(context.Background(), doc.Root()))
	out := buf.String()
	require.Equal(t, 1, strings.Count(out, "X = 1"))
	require.Contains(t, out, "B {1 entries}\n  <shared dict @0x")

	buf.Reset()
	opts.Format = FormatJSON
	require.NoError(t, New(&buf, opts).PrintDict(context.Background(), doc.Root()))
	var entries []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entries))
	require.Len(t, entries, 2)
	require.Nil(t, entries[0]["shared"])
	require.Equal(t, true, entries[1]["shared"])
}

func TestPrinter_PrintDocument_JSON(t *testing.T) {
	var buf bytes.Buffer
	opts := DefaultOptions()
	opts.Format = FormatJSON
	opts.ShowOffsets = true
	require.NoError(t, New(&buf, opts).PrintDocument(context.Background(), openSample(t)))

	var result map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &result))
	require.Equal(t, float64(2), result["version"])
	require.Equal(t, float64(1), result["values"])

	root := result["root"].([]any)
	require.Len(t, root, 4)

	name := root[0].(map[string]any)
	require.Equal(t, "Name", name["name"])
	require.Equal(t, "string", name["type"])
	require.Equal(t, "player", name["value"])
	require.NotNil(t, name["offset"])

	stats := root[2].(map[string]any)
	require.Equal(t, float64(2), stats["count"])
	children := stats["children"].([]any)
	require.Len(t, children, 2)
	hidden := children[1].(map[string]any)
	require.Equal(t, false, hidden["value"])

	world := root[3].(map[string]any)
	area := world["children"].([]any)[0].(map[string]any)
	boss := area["children"].([]any)[0].(map[string]any)
	speed := boss["children"].([]any)[0].(map[string]any)
	require.Equal(t, float64(9), speed["value"])
}

func TestPrinter_PrintValue(t *testing.T) {
	doc := openSample(t)
	stats, err := doc.Root().ChildNamed("Stats")
	require.NoError(t, err)
	v, err := stats.EntryNamed("Speed")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, New(&buf, DefaultOptions()).PrintValue("Stats/Speed", v))
	require.Equal(t, "Stats/Speed [float] = 1.5\n", buf.String())

	buf.Reset()
	opts := DefaultOptions()
	opts.Format = FormatJSON
	require.NoError(t, New(&buf, opts).PrintValue("Stats/Speed", v))
	var e map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &e))
	require.Equal(t, "Stats/Speed", e["name"])
	require.Equal(t, 1.5, e["value"])
}

func TestPrinter_StringTableAndMissingValueTable(t *testing.T) {
	data := testutil.BuildWith(testutil.D(
		testutil.Table("Tags", "a", "b"),
		testutil.Str("Label", "x"),
	), testutil.Options{Version: 2, NoValueTable: true})
	doc, err := byml.Open(data)
	require.NoError(t, err)

	var buf bytes.Buffer
	opts := DefaultOptions()
	opts.ShowTypes = false
	require.NoError(t, New(&buf, opts).PrintDict(context.Background(), doc.Root()))
	require.Equal(t, "Tags = [\"a\" \"b\"]\nLabel = #0\n", buf.String())
}

func TestDecodeString(t *testing.T) {
	require.Equal(t, "plain", DecodeString("plain"))
	require.Equal(t, "ボス", DecodeString("ボス"))

	sjis, err := japanese.ShiftJIS.NewEncoder().String("ボス")
	require.NoError(t, err)
	require.False(t, utf8.ValidString(sjis))
	require.Equal(t, "ボス", DecodeString(sjis))
}
