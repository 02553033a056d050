package walker

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/joshuapare/bymlkit/byml"
)

// initialStackCapacity covers the nesting of typical documents without
// reallocating.
const initialStackCapacity = 32

var (
	// SkipDict, returned by a visitor for a dict entry, skips its subtree.
	SkipDict = errors.New("walker: skip dict")

	// ErrMaxDepth is returned when nesting exceeds Options.MaxDepth.
	ErrMaxDepth = errors.New("walker: maximum depth exceeded")
)

// Entry is one visited dictionary entry.
type Entry struct {
	// Dict owns the entry.
	Dict *byml.DictNode
	// Value is the entry itself.
	Value byml.ValueNode
	// Name is the resolved entry name.
	Name string
	// Path holds the names of the dict entries leading from the root to Dict.
	// The slice is reused between callbacks; copy it to keep it.
	Path []string
	// Depth is the nesting level of Dict; the root is 0.
	Depth int
}

// PathString joins Path and Name with '/'.
func (e Entry) PathString() string {
	if len(e.Path) == 0 {
		return e.Name
	}
	return strings.Join(e.Path, "/") + "/" + e.Name
}

// VisitFunc is called once per entry.
type VisitFunc func(Entry) error

// Options tunes a Walker.
type Options struct {
	// MaxDepth bounds dictionary nesting. Zero means unlimited; the visited
	// set already stops cycles.
	MaxDepth int
	// OnRevisit is called for a dict entry whose target was already walked.
	OnRevisit func(Entry)
}

// DefaultOptions returns the options used by Walk.
func DefaultOptions() Options {
	return Options{}
}

type frame struct {
	dict  *byml.DictNode
	next  int
	depth int
}

// Walker holds the traversal state. It can be reused after Reset.
type Walker struct {
	root    *byml.DictNode
	opts    Options
	visited *roaring.Bitmap
	stack   []frame
	path    []string
}

// New creates a walker rooted at root.
func New(root *byml.DictNode, opts Options) *Walker {
	return &Walker{
		root:    root,
		opts:    opts,
		visited: roaring.New(),
		stack:   make([]frame, 0, initialStackCapacity),
	}
}

// Walk walks root with DefaultOptions.
func Walk(ctx context.Context, root *byml.DictNode, fn VisitFunc) error {
	return New(root, DefaultOptions()).Walk(ctx, fn)
}

// Walk visits every reachable entry. It checks ctx before each entry.
func (w *Walker) Walk(ctx context.Context, fn VisitFunc) error {
	w.Reset()
	w.visited.Add(uint32(w.root.Offset()))
	w.stack = append(w.stack, frame{dict: w.root})

	for len(w.stack) > 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		top := &w.stack[len(w.stack)-1]
		if top.next >= top.dict.Len() {
			w.stack = w.stack[:len(w.stack)-1]
			if len(w.path) > 0 {
				w.path = w.path[:len(w.path)-1]
			}
			continue
		}
		i := top.next
		top.next++
		dict, depth := top.dict, top.depth

		v, err := dict.Entry(i)
		if err != nil {
			return err
		}
		name, err := dict.NameOf(i)
		if err != nil {
			return err
		}
		e := Entry{Dict: dict, Value: v, Name: name, Path: w.path, Depth: depth}

		if err := fn(e); err != nil {
			if errors.Is(err, SkipDict) {
				continue
			}
			return err
		}
		if v.Kind() != byml.KindDict {
			continue
		}

		off, err := v.Offset()
		if err != nil {
			return err
		}
		if w.visited.Contains(uint32(off)) {
			if w.opts.OnRevisit != nil {
				w.opts.OnRevisit(e)
			}
			continue
		}
		if w.opts.MaxDepth > 0 && depth+1 > w.opts.MaxDepth {
			return fmt.Errorf("%s at depth %d: %w", e.PathString(), depth+1, ErrMaxDepth)
		}
		child, err := dict.Child(v)
		if err != nil {
			return err
		}
		w.visited.Add(uint32(off))
		w.path = append(w.path, name)
		w.stack = append(w.stack, frame{dict: child, depth: depth + 1})
	}
	return nil
}

// Visited reports how many distinct dictionaries the last walk entered,
// including the root.
func (w *Walker) Visited() uint64 { return w.visited.GetCardinality() }

// Reset clears the visited set and the stack, keeping their capacity.
func (w *Walker) Reset() {
	w.visited.Clear()
	w.stack = w.stack[:0]
	w.path = w.path[:0]
}
