package mmfile

import "errors"

// ErrNotSupported is returned by MapRW on platforms without a shared
// read-write mapping; callers fall back to reading the file into memory.
var ErrNotSupported = errors.New("mmfile: read-write mapping not supported on this platform")

// Mapping is a shared read-write view of a whole file. Writes to Data reach
// the file through the page cache; use a dirty tracker to msync them.
type Mapping struct {
	Data []byte
	fd   int
	path string
	impl closer
}

type closer interface {
	close(m *Mapping) error
}

// Path returns the mapped file's path.
func (m *Mapping) Path() string { return m.path }

// Fd returns the descriptor backing the mapping, for fdatasync.
func (m *Mapping) Fd() int { return m.fd }

// Close unmaps the file and closes its descriptor. It is safe to call twice.
func (m *Mapping) Close() error {
	if m == nil || m.impl == nil {
		return nil
	}
	err := m.impl.close(m)
	m.impl = nil
	m.Data = nil
	return err
}
