package walker

import (
	"context"
	"fmt"

	"github.com/joshuapare/bymlkit/byml"
)

// Stats summarizes a document's reachable entries.
type Stats struct {
	Entries  uint64
	Dicts    uint64 // distinct dictionaries entered, root included
	MaxDepth int

	// By kind
	Strings      uint64
	StringTables uint64
	Bools        uint64
	Ints         uint64
	Floats       uint64
	DictRefs     uint64 // dict-typed entries, shared targets counted per reference
	Revisits     uint64 // dict references to an already-walked dictionary
	Unsupported  uint64 // arrays, paths, path tables, unknown tags
}

// Count walks root and tallies every entry by kind.
func Count(ctx context.Context, root *byml.DictNode) (*Stats, error) {
	var s Stats
	w := New(root, Options{
		OnRevisit: func(Entry) { s.Revisits++ },
	})
	err := w.Walk(ctx, func(e Entry) error {
		s.Entries++
		if e.Depth > s.MaxDepth {
			s.MaxDepth = e.Depth
		}
		switch e.Value.Kind() {
		case byml.KindString:
			s.Strings++
		case byml.KindStringTable:
			s.StringTables++
		case byml.KindBool:
			s.Bools++
		case byml.KindInt:
			s.Ints++
		case byml.KindFloat:
			s.Floats++
		case byml.KindDict:
			s.DictRefs++
		default:
			s.Unsupported++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.Dicts = w.Visited()
	return &s, nil
}

// String returns a human-readable summary.
func (s *Stats) String() string {
	return fmt.Sprintf(
		"Entries: %d (max depth %d)\n"+
			"Dictionaries: %d (%d references, %d revisits)\n"+
			"Scalars: bool %d, int %d, float %d\n"+
			"Strings: %d, string tables: %d\n"+
			"Unsupported: %d",
		s.Entries, s.MaxDepth,
		s.Dicts, s.DictRefs, s.Revisits,
		s.Bools, s.Ints, s.Floats,
		s.Strings, s.StringTables,
		s.Unsupported,
	)
}
