// Package edit implements name-based search and in-place replacement over a
// BYML dictionary tree.
//
// # Overview
//
// DeepReplace walks every dictionary reachable from a root and overwrites the
// payload of each bool, int or float entry with the given name. Dict entries
// are descended into and never matched by name. Entries of any other kind
// that carry the name are skipped and reported as Unsupported diagnostics;
// they never abort the pass.
//
//	doc, _ := byml.Open(data)
//	ok, err := edit.DeepReplace(doc.Root(), "Speed", byml.FloatRaw(2))
//
// Writes go straight into the document buffer, four bytes per match. The
// buffer length never changes.
//
// # Replacer
//
// Replacer exposes the full result (every match with its old and new
// payload, plus diagnostics) and lets callers restrict writes to one kind,
// do a dry run, or bound nesting depth:
//
//	r := edit.Replacer{Kind: byml.KindInt, Logger: log}
//	res, err := r.Replace(ctx, doc.Root(), "Level", byml.IntRaw(10))
//
// # Errors
//
// Format and bounds errors abort the pass and are returned along with the
// partial result: matches before the failure have already been written.
// A dictionary reached a second time through a shared offset is not walked
// again; the skip is recorded as an informational diagnostic.
package edit
