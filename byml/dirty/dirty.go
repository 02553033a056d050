package dirty

import (
	"context"
	"os"
	"sort"
)

const (
	// defaultRangeCapacity is the pre-allocated capacity for dirty ranges.
	defaultRangeCapacity = 16
)

// FlushMode controls durability guarantees for Commit.
type FlushMode int

const (
	// FlushAuto msyncs dirty pages, then fdatasyncs the descriptor.
	FlushAuto FlushMode = iota

	// FlushDataOnly only msyncs dirty pages. The caller is responsible for
	// syncing the descriptor later.
	FlushDataOnly

	// FlushFull is FlushAuto plus F_FULLFSYNC on macOS.
	FlushFull
)

// Range is a dirty byte range in absolute buffer offsets.
type Range struct {
	Off int64
	Len int64
}

// End returns the offset one past the range.
func (r Range) End() int64 { return r.Off + r.Len }

// Tracker accumulates dirty ranges and flushes them.
//
// NOT thread-safe. Only one goroutine should use it at a time.
type Tracker struct {
	ranges   []Range // raw, coalesced at flush time
	pageSize int64
}

// NewTracker creates a tracker using the OS page size.
func NewTracker() *Tracker {
	return NewTrackerWithPageSize(os.Getpagesize())
}

// NewTrackerWithPageSize creates a tracker with an explicit page size, which
// must be a positive power of two.
func NewTrackerWithPageSize(pageSize int) *Tracker {
	if pageSize <= 0 || pageSize&(pageSize-1) != 0 {
		pageSize = 4096
	}
	return &Tracker{
		ranges:   make([]Range, 0, defaultRangeCapacity),
		pageSize: int64(pageSize),
	}
}

// Add records a dirty range. Non-positive lengths are ignored.
func (t *Tracker) Add(off, length int) {
	if length <= 0 || off < 0 {
		return
	}
	t.ranges = append(t.ranges, Range{Off: int64(off), Len: int64(length)})
}

// Dirty reports whether anything was recorded since the last flush or reset.
func (t *Tracker) Dirty() bool { return len(t.ranges) > 0 }

// Bytes returns the total number of bytes recorded, overlaps counted twice.
func (t *Tracker) Bytes() int64 {
	var n int64
	for _, r := range t.ranges {
		n += r.Len
	}
	return n
}

// Reset clears all tracked ranges.
func (t *Tracker) Reset() { t.ranges = t.ranges[:0] }

// RawRanges returns a copy of the uncoalesced ranges in recording order.
func (t *Tracker) RawRanges() []Range {
	out := make([]Range, len(t.ranges))
	copy(out, t.ranges)
	return out
}

// Ranges returns the page-aligned, sorted, merged ranges a flush would sync.
func (t *Tracker) Ranges() []Range { return t.coalesce() }

// Flush msyncs the dirty pages of data, which must be the shared mapping the
// recorded offsets refer to, and clears the ranges on success.
//
// If ctx is cancelled during flushing, some ranges may have been flushed while
// others have not; the ranges are kept so the flush can be retried.
func (t *Tracker) Flush(ctx context.Context, data []byte) error {
	if len(t.ranges) == 0 || len(data) == 0 {
		t.Reset()
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := t.flushRanges(ctx, data); err != nil {
		return err
	}
	t.Reset()
	return nil
}

// Commit flushes dirty pages and, unless mode is FlushDataOnly, syncs fd.
func (t *Tracker) Commit(ctx context.Context, data []byte, fd int, mode FlushMode) error {
	wasDirty := t.Dirty()
	if err := t.Flush(ctx, data); err != nil {
		return err
	}
	if !wasDirty || mode == FlushDataOnly {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return fdatasync(fd, mode == FlushFull)
}

// coalesce page-aligns all ranges, sorts them, and merges overlapping or
// adjacent ones.
func (t *Tracker) coalesce() []Range {
	if len(t.ranges) == 0 {
		return nil
	}

	aligned := make([]Range, len(t.ranges))
	for i, r := range t.ranges {
		start := (r.Off / t.pageSize) * t.pageSize
		end := r.End()
		if end%t.pageSize != 0 {
			end = (end/t.pageSize + 1) * t.pageSize
		}
		aligned[i] = Range{Off: start, Len: end - start}
	}

	sort.Slice(aligned, func(i, j int) bool {
		return aligned[i].Off < aligned[j].Off
	})

	merged := make([]Range, 0, len(aligned))
	current := aligned[0]
	for _, next := range aligned[1:] {
		if next.Off <= current.End() {
			if next.End() > current.End() {
				current.Len = next.End() - current.Off
			}
			continue
		}
		merged = append(merged, current)
		current = next
	}
	return append(merged, current)
}

// clip bounds r to a buffer of length n.
func clip(r Range, n int) (int, int, bool) {
	start, end := int(r.Off), int(r.End())
	if start >= n {
		return 0, 0, false
	}
	if end > n {
		end = n
	}
	return start, end, true
}
