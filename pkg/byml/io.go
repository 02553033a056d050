package byml

import (
	"fmt"
	"os"

	"github.com/joshuapare/bymlkit/internal/compress"
	"github.com/joshuapare/bymlkit/internal/writer"
)

// LoadBuffer reads path into memory, unwrapping a zstd or lz4 container.
// The container is chosen by extension, or by the leading magic when the
// extension names none.
func LoadBuffer(path string) ([]byte, error) {
	data, _, err := loadBuffer(path)
	return data, err
}

func loadBuffer(path string) ([]byte, compress.Codec, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, compress.None, fmt.Errorf("failed to read %s: %w", path, err)
	}
	codec := compress.ForPath(path)
	if codec == compress.None {
		codec = compress.Sniff(raw)
	}
	data, err := codec.Decode(raw)
	if err != nil {
		return nil, codec, fmt.Errorf("failed to decompress %s: %w", path, err)
	}
	return data, codec, nil
}

// SaveBuffer writes data to path, re-wrapping it in the container the
// extension calls for. The file is replaced atomically; an existing file's
// permissions are kept.
func SaveBuffer(path string, data []byte) error {
	return saveBuffer(path, data, compress.ForPath(path))
}

func saveBuffer(path string, data []byte, codec compress.Codec) error {
	out, err := codec.Encode(data)
	if err != nil {
		return fmt.Errorf("failed to compress %s: %w", path, err)
	}

	w := &writer.FileWriter{Path: path}
	if err := w.Write(out); err != nil {
		return fmt.Errorf("failed to save %s: %w", path, err)
	}
	return nil
}
