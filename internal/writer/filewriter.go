// Package writer replaces files on disk atomically.
package writer

import (
	"fmt"
	"os"
	"path/filepath"
)

// DefaultMode is used when the destination does not exist yet.
const DefaultMode os.FileMode = 0o644

// FileWriter writes document bytes to a filesystem path via a temp file in
// the same directory and a rename, so readers never see a partial file.
type FileWriter struct {
	Path string
}

// Write replaces the configured path with buf. An existing file's permission
// bits are carried over.
func (w *FileWriter) Write(buf []byte) error {
	mode := DefaultMode
	if st, err := os.Stat(w.Path); err == nil {
		mode = st.Mode().Perm()
	}

	tmpFile, err := os.CreateTemp(filepath.Dir(w.Path), "."+filepath.Base(w.Path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	// Clean up temp file on error
	defer func() {
		if tmpFile != nil {
			_ = tmpFile.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err := tmpFile.Write(buf); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmpFile.Sync(); err != nil {
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmpFile.Chmod(mode); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	tmpFile = nil

	if err := os.Rename(tmpPath, w.Path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}
