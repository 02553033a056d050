// Package dirty tracks which bytes of a BYML buffer were written in place and
// flushes just those pages when the buffer is a shared file mapping.
//
// # Usage
//
//	m, _ := mmfile.MapRW(path)
//	tr := dirty.NewTracker()
//	doc, _ := byml.Open(m.Data, byml.WithTracker(tr))
//	// ... SetRaw / edit.DeepReplace ...
//	err := tr.Commit(ctx, m.Data, m.Fd(), dirty.FlushAuto)
//
// A Tracker satisfies byml.Tracker, so every successful scalar write is
// recorded automatically.
//
// # Page-Level Granularity
//
// Ranges are rounded out to page boundaries and merged when they overlap or
// touch, so a 4-byte payload write flushes one page:
//
//	Dirty: [0x1004+4, 0x1010+4, 0x3000+4] → Ranges: [0x1000-0x2000, 0x3000-0x4000]
//
// BYML files are usually a few pages long, so unlike a paged database there
// is no header page to hold back: every coalesced range is flushed.
//
// # Thread Safety
//
// Tracker instances are not thread-safe. Use one per document.
package dirty
