package printer

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/joshuapare/bymlkit/byml"
	"github.com/joshuapare/bymlkit/byml/walker"
)

// jsonEntry represents one dictionary entry in JSON format. Entries are kept
// as an ordered list because dictionary order is significant and names may
// repeat.
type jsonEntry struct {
	Name     string       `json:"name"`
	Type     string       `json:"type,omitempty"`
	Offset   *int         `json:"offset,omitempty"`
	Value    any          `json:"value,omitempty"`
	Shared   bool         `json:"shared,omitempty"`
	Count    *int         `json:"count,omitempty"`
	Children []*jsonEntry `json:"children,omitempty"`
}

// jsonDocument is the top-level JSON object for a whole document.
type jsonDocument struct {
	Version    uint16       `json:"version"`
	Names      int          `json:"names"`
	Values     int          `json:"values"`
	RootOffset uint32       `json:"root_offset"`
	Root       []*jsonEntry `json:"root"`
}

func (p *Printer) printDocumentJSON(ctx context.Context, doc *byml.Document) error {
	root, err := p.buildJSON(ctx, doc.Root())
	if err != nil {
		return err
	}
	h := doc.Header()
	out := jsonDocument{
		Version:    h.Version,
		Names:      doc.Names().Count(),
		RootOffset: h.RootOffset,
		Root:       root,
	}
	if vt := doc.Values(); vt != nil {
		out.Values = vt.Count()
	}
	return p.encode(out)
}

func (p *Printer) printDictJSON(ctx context.Context, d *byml.DictNode) error {
	entries, err := p.buildJSON(ctx, d)
	if err != nil {
		return err
	}
	return p.encode(entries)
}

func (p *Printer) printValueJSON(path string, v byml.ValueNode) error {
	e, err := p.jsonLeaf(path, v)
	if err != nil {
		return err
	}
	return p.encode(e)
}

func (p *Printer) encode(v any) error {
	enc := json.NewEncoder(p.writer)
	enc.SetIndent("", strings.Repeat(" ", p.opts.IndentSize))
	return enc.Encode(v)
}

// buildJSON walks d once and assembles the nested entry lists. stack[i] is
// the dict entry whose children receive entries at depth i.
func (p *Printer) buildJSON(ctx context.Context, d *byml.DictNode) ([]*jsonEntry, error) {
	top := &jsonEntry{}
	stack := []*jsonEntry{top}

	w := walker.New(d, walker.Options{
		OnRevisit: func(e walker.Entry) {
			if len(stack) > e.Depth+1 {
				stack[e.Depth+1].Shared = true
			}
		},
	})
	err := w.Walk(ctx, func(e walker.Entry) error {
		stack = stack[:e.Depth+1]
		node, err := p.jsonLeaf(e.Name, e.Value)
		if err != nil {
			return err
		}
		parent := stack[e.Depth]
		parent.Children = append(parent.Children, node)

		if e.Value.Kind() == byml.KindDict {
			stack = append(stack, node)
			if p.opts.MaxDepth > 0 && e.Depth+1 >= p.opts.MaxDepth {
				return walker.SkipDict
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if top.Children == nil {
		return []*jsonEntry{}, nil
	}
	return top.Children, nil
}

func (p *Printer) jsonLeaf(name string, v byml.ValueNode) (*jsonEntry, error) {
	e := &jsonEntry{Name: name}
	if p.opts.ShowTypes {
		e.Type = v.Kind().String()
	}
	if p.opts.ShowOffsets {
		off := v.SlotOffset()
		e.Offset = &off
	}
	if v.Kind() == byml.KindDict {
		child, err := v.Dict().Child(v)
		if err != nil {
			return nil, err
		}
		n := child.Len()
		e.Count = &n
		return e, nil
	}
	val, text, err := scalar(v)
	if err != nil {
		return nil, err
	}
	if val == nil {
		val = text
	}
	e.Value = val
	return e, nil
}
