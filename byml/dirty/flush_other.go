//go:build !linux && !freebsd && !darwin

package dirty

import "context"

// Nothing is mapped read-write on these platforms (see mmfile.MapRW), so
// there are no pages to sync; edited buffers are written back whole.
func (t *Tracker) flushRanges(context.Context, []byte) error { return nil }

func fdatasync(int, bool) error { return nil }
