//go:build linux || freebsd || darwin

package mmfile

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

type unixMapping struct {
	f *os.File
}

// MapRW maps path read-write and shared, so edits to Data land in the file.
// Empty files cannot be mapped and fail.
func MapRW(path string) (*Mapping, error) {
	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return nil, err
	}
	size, err := mappableSize(f)
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	if size == 0 {
		_ = f.Close()
		return nil, fmt.Errorf("mmfile: empty file: %s", path)
	}

	data, err := unix.Mmap(int(f.Fd()), 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("mmfile: mmap %s: %w", path, err)
	}
	return &Mapping{
		Data: data,
		fd:   int(f.Fd()),
		path: path,
		impl: &unixMapping{f: f},
	}, nil
}

func (u *unixMapping) close(m *Mapping) error {
	var errs []error
	if m.Data != nil {
		if err := unix.Munmap(m.Data); err != nil && !errors.Is(err, unix.EINVAL) {
			errs = append(errs, fmt.Errorf("mmfile: munmap: %w", err))
		}
	}
	if u.f != nil {
		if err := u.f.Close(); err != nil {
			errs = append(errs, err)
		}
		u.f = nil
	}
	return errors.Join(errs...)
}
