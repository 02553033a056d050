package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// Sample returns the tree most tests share:
//
//	root
//	├── Name    "player"       (string)
//	├── Level   3              (int)
//	├── Stats   {Speed 1.5, Hidden false}
//	└── World   {Area {Boss {Speed 9.0}}, Tags []}
func Sample() *Dict {
	return D(
		Str("Name", "player"),
		Int("Level", 3),
		Sub("Stats", D(
			Float("Speed", 1.5),
			Bool("Hidden", false),
		)),
		Sub("World", D(
			Sub("Area", D(
				Sub("Boss", D(
					Float("Speed", 9.0),
				)),
			)),
			Array("Tags"),
		)),
	)
}

// WriteTemp writes data to name inside a fresh temp directory and returns the
// full path.
func WriteTemp(t testing.TB, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

// ReadFile reads path, failing the test on error.
func ReadFile(t testing.TB, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return data
}

// DiffOffsets returns the offsets at which a and b differ. Lengths must match.
func DiffOffsets(t testing.TB, a, b []byte) []int {
	t.Helper()
	if len(a) != len(b) {
		t.Fatalf("length changed: %d != %d", len(a), len(b))
	}
	var diff []int
	for i := range a {
		if a[i] != b[i] {
			diff = append(diff, i)
		}
	}
	return diff
}
