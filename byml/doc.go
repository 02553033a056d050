// Package byml reads and edits BYML binary tree documents in place.
//
// A document is one contiguous buffer: a 16-byte header, a shared name
// (key) string table, an optional value string table, and a tree of
// dictionaries whose entries are fixed 8-byte slots. Every type in this package
// is a view into that buffer; nothing is copied and nothing owns memory.
//
// # Opening
//
//	doc, err := byml.Open(data)
//	if err != nil {
//	    return err
//	}
//	root := doc.Root()
//
// The magic is validated before any other header field is trusted, so a
// buffer that is not BYML fails with ErrFormatMismatch rather than a bounds
// error further in.
//
// # Reading
//
//	v, err := root.EntryNamed("Speed")
//	if err != nil {
//	    return err
//	}
//	f, err := v.Float()
//
// Nested dictionaries are reached through DictNode.Child, which shares the
// parent's string tables.
//
// # Editing
//
// Only inline scalars (bool, int, float) can be written, and only in place:
//
//	err := v.SetFloat(2.5)
//
// Writing any other kind fails with ErrTypeMismatch because its payload
// encodes layout rather than a free value. The buffer never changes length.
//
// # Unsupported kinds
//
// Arrays, paths and path tables are recognised but not implemented. They are
// surfaced as a Node whose Unsupported method reports true, or as an
// *UnsupportedError when an operation needs a supported kind; callers decide
// whether to skip or abort.
//
// # Thread Safety
//
// Documents are not safe for concurrent use. Concurrent mutation of one buffer
// is undefined; callers must serialise access (one buffer per worker, or an
// external lock per file).
package byml
