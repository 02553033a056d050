package buf

import (
	"errors"
	"fmt"
	"math"
)

// ErrOutOfBounds indicates an offset, length or index outside the valid range
// of the buffer being read.
var ErrOutOfBounds = errors.New("out of bounds")

// AddOverflowSafe adds a and b, returning ok = false when the result would
// overflow int.
func AddOverflowSafe(a, b int) (int, bool) {
	if (b > 0 && a > math.MaxInt-b) || (b < 0 && a < math.MinInt-b) {
		return 0, false
	}
	return a + b, true
}

// MulOverflowSafe multiplies two non-negative ints, returning ok = false when
// either is negative or the product would overflow. Counts read from a file
// are 24 bits wide, but entry sizes multiply them before any bounds check.
func MulOverflowSafe(a, b int) (int, bool) {
	if a < 0 || b < 0 {
		return 0, false
	}
	if a != 0 && b > math.MaxInt/a {
		return 0, false
	}
	return a * b, true
}

// CheckListBounds validates that count records of size bytes, starting at
// off, lie inside a buffer of bufLen bytes, and returns the offset just past
// the last record:
//
//	end, err := buf.CheckListBounds(v.Len(), off+4, count, 8)
//	if err != nil {
//	    return fmt.Errorf("dict entries: %w", err)
//	}
func CheckListBounds(bufLen, off, count, size int) (int, error) {
	if off < 0 || count < 0 || size < 0 {
		return 0, fmt.Errorf("list at %d: count=%d size=%d: %w", off, count, size, ErrOutOfBounds)
	}
	total, ok := MulOverflowSafe(count, size)
	if !ok {
		return 0, fmt.Errorf("list at %d: %d*%d overflows: %w", off, count, size, ErrOutOfBounds)
	}
	end, ok := AddOverflowSafe(off, total)
	if !ok || end > bufLen {
		return 0, fmt.Errorf("list at %d: ends past %d: %w", off, bufLen, ErrOutOfBounds)
	}
	return end, nil
}

// Slice returns b[off:off+n] if it fits within len(b).
func Slice(b []byte, off, n int) ([]byte, bool) {
	if off < 0 || n < 0 {
		return nil, false
	}
	end, ok := AddOverflowSafe(off, n)
	if !ok || end > len(b) {
		return nil, false
	}
	return b[off:end], true
}
