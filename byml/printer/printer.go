// Package printer renders BYML documents as indented text or JSON.
package printer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"unicode/utf8"

	"golang.org/x/text/encoding/japanese"

	"github.com/joshuapare/bymlkit/byml"
)

const (
	DefaultIndentSize = 2
	DefaultMaxDepth   = 0
)

// Format specifies the output format for printing.
type Format string

const (
	// FormatText outputs human-readable indented text.
	FormatText Format = "text"

	// FormatJSON outputs JSON.
	FormatJSON Format = "json"
)

// Options controls printing behavior.
type Options struct {
	// Format specifies output format (text, json).
	// Default: FormatText
	Format Format

	// IndentSize is the number of spaces per indent level.
	// Default: 2
	IndentSize int

	// MaxDepth limits how many dictionary levels are printed (0 = unlimited).
	// With 1, only the starting dictionary's own entries are shown.
	// Default: 0
	MaxDepth int

	// ShowTypes includes the kind of every entry.
	// Default: true
	ShowTypes bool

	// ShowOffsets includes the absolute slot offset of every entry.
	// Default: false
	ShowOffsets bool
}

// DefaultOptions returns sensible defaults for printing.
func DefaultOptions() Options {
	return Options{
		Format:     FormatText,
		IndentSize: DefaultIndentSize,
		MaxDepth:   DefaultMaxDepth,
		ShowTypes:  true,
	}
}

// Printer handles formatted output of BYML trees.
type Printer struct {
	opts   Options
	writer io.Writer
}

// New creates a new Printer.
//
// Example:
//
//	doc, _ := byml.Open(data)
//	p := printer.New(os.Stdout, printer.DefaultOptions())
//	p.PrintDocument(ctx, doc)
func New(w io.Writer, opts Options) *Printer {
	if opts.IndentSize <= 0 {
		opts.IndentSize = DefaultIndentSize
	}
	return &Printer{writer: w, opts: opts}
}

// PrintDocument prints the header summary followed by the whole tree.
func (p *Printer) PrintDocument(ctx context.Context, doc *byml.Document) error {
	switch p.opts.Format {
	case FormatJSON:
		return p.printDocumentJSON(ctx, doc)
	default:
		return p.printDocumentText(ctx, doc)
	}
}

// PrintDict prints a dictionary subtree.
func (p *Printer) PrintDict(ctx context.Context, d *byml.DictNode) error {
	switch p.opts.Format {
	case FormatJSON:
		return p.printDictJSON(ctx, d)
	default:
		return p.printDictText(ctx, d)
	}
}

// PrintValue prints a single entry found at path.
func (p *Printer) PrintValue(path string, v byml.ValueNode) error {
	switch p.opts.Format {
	case FormatJSON:
		return p.printValueJSON(path, v)
	default:
		return p.printValueText(path, v)
	}
}

// DecodeString converts raw string bytes to UTF-8. Strings that are not
// valid UTF-8 are assumed to be Shift-JIS, which older files use.
func DecodeString(s string) string {
	if utf8.ValidString(s) {
		return s
	}
	decoded, err := japanese.ShiftJIS.NewDecoder().String(s)
	if err != nil {
		return strconv.Quote(s)
	}
	return decoded
}

// scalar returns a display value for an entry that has no children: a Go
// value for JSON and its text rendering.
func scalar(v byml.ValueNode) (any, string, error) {
	switch v.Kind() {
	case byml.KindBool:
		b := v.Raw().Bool()
		return b, strconv.FormatBool(b), nil
	case byml.KindInt:
		i := v.Raw().Int()
		return i, strconv.FormatInt(int64(i), 10), nil
	case byml.KindFloat:
		f := v.Raw().Float()
		return f, strconv.FormatFloat(float64(f), 'g', -1, 32), nil
	case byml.KindString:
		s, err := v.StringValue()
		if errors.Is(err, byml.ErrUnsupported) {
			idx := v.Raw().Uint32()
			return idx, fmt.Sprintf("#%d", idx), nil
		}
		if err != nil {
			return nil, "", err
		}
		s = DecodeString(s)
		return s, strconv.Quote(s), nil
	case byml.KindStringTable:
		n, err := v.Dict().Node(v.Index())
		if err != nil {
			return nil, "", err
		}
		st, _ := n.StringTable()
		strs, err := st.Strings()
		if err != nil {
			return nil, "", err
		}
		for i := range strs {
			strs[i] = DecodeString(strs[i])
		}
		return strs, fmt.Sprintf("%q", strs), nil
	default:
		off := v.Raw().Uint32()
		return nil, fmt.Sprintf("<unsupported %s @0x%x>", v.Kind(), off), nil
	}
}
