//go:build !linux && !freebsd && !darwin

package mmfile

// MapRW is not available here; see ErrNotSupported.
func MapRW(path string) (*Mapping, error) {
	return nil, ErrNotSupported
}
