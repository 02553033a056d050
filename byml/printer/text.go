package printer

import (
	"context"
	"fmt"
	"strings"

	"github.com/joshuapare/bymlkit/byml"
	"github.com/joshuapare/bymlkit/byml/walker"
)

func (p *Printer) printDocumentText(ctx context.Context, doc *byml.Document) error {
	h := doc.Header()
	values := 0
	if vt := doc.Values(); vt != nil {
		values = vt.Count()
	}
	fmt.Fprintf(p.writer, "BYML v%d  names: %d  values: %d  root: 0x%x\n",
		h.Version, doc.Names().Count(), values, h.RootOffset)
	return p.printDictText(ctx, doc.Root())
}

func (p *Printer) printDictText(ctx context.Context, d *byml.DictNode) error {
	w := walker.New(d, walker.Options{
		OnRevisit: func(e walker.Entry) {
			indent := strings.Repeat(" ", (e.Depth+1)*p.opts.IndentSize)
			off, _ := e.Value.Offset()
			fmt.Fprintf(p.writer, "%s<shared dict @0x%x>\n", indent, off)
		},
	})
	return w.Walk(ctx, func(e walker.Entry) error {
		indent := strings.Repeat(" ", e.Depth*p.opts.IndentSize)
		fmt.Fprintf(p.writer, "%s%s", indent, e.Name)
		p.textSuffix(e.Value)

		if e.Value.Kind() == byml.KindDict {
			child, err := e.Dict.Child(e.Value)
			if err != nil {
				return err
			}
			fmt.Fprintf(p.writer, " {%d entries}\n", child.Len())
			if p.opts.MaxDepth > 0 && e.Depth+1 >= p.opts.MaxDepth {
				return walker.SkipDict
			}
			return nil
		}

		_, text, err := scalar(e.Value)
		if err != nil {
			return err
		}
		fmt.Fprintf(p.writer, " = %s\n", text)
		return nil
	})
}

func (p *Printer) textSuffix(v byml.ValueNode) {
	if p.opts.ShowTypes {
		fmt.Fprintf(p.writer, " [%s]", v.Kind())
	}
	if p.opts.ShowOffsets {
		fmt.Fprintf(p.writer, " @0x%x", v.SlotOffset())
	}
}

func (p *Printer) printValueText(path string, v byml.ValueNode) error {
	fmt.Fprint(p.writer, path)
	p.textSuffix(v)
	if v.Kind() == byml.KindDict {
		child, err := v.Dict().Child(v)
		if err != nil {
			return err
		}
		fmt.Fprintf(p.writer, " {%d entries}\n", child.Len())
		return nil
	}
	_, text, err := scalar(v)
	if err != nil {
		return err
	}
	fmt.Fprintf(p.writer, " = %s\n", text)
	return nil
}
