// Package walker provides iterative traversal of a BYML dictionary tree.
//
// # Overview
//
// Walk visits every entry reachable from a root dictionary in entry order,
// depth-first, pre-order on dictionaries: a dict-typed entry is reported to
// the visitor and its children are walked before its next sibling.
//
// The traversal is iterative (an explicit frame stack, no recursion) and
// remembers every dictionary offset it has entered in a roaring bitmap. A
// dict entry that points at an already-walked dictionary is reported through
// Options.OnRevisit and not entered again, so shared subtrees are walked once
// and self-referencing input terminates.
//
// # Quick Start
//
//	doc, _ := byml.Open(data)
//	err := walker.Walk(ctx, doc.Root(), func(e walker.Entry) error {
//	    fmt.Println(e.PathString(), e.Value.Kind())
//	    return nil
//	})
//
// Return SkipDict from the visitor to keep the walker out of a dict entry's
// subtree. Any other non-nil error stops the walk and is returned as is.
//
// # Errors
//
// Bounds and format errors from the underlying nodes abort the walk. Entries
// of unsupported kinds (arrays, paths, path tables, unknown tags) are visited
// like any other leaf and never descended into; callers decide what to do
// with them.
//
// Nesting is unbounded unless Options.MaxDepth is set; deeper nesting then
// fails with ErrMaxDepth.
package walker
