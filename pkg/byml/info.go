package byml

import (
	"context"
	"fmt"

	core "github.com/joshuapare/bymlkit/byml"
	"github.com/joshuapare/bymlkit/byml/walker"
	"github.com/joshuapare/bymlkit/internal/compress"
	"github.com/joshuapare/bymlkit/internal/mmfile"
)

// FileInfo summarizes a BYML file without modifying it.
type FileInfo struct {
	Path   string
	Codec  compress.Codec
	Size   int // decoded document size in bytes
	Header core.Header
	Names  int
	Values int
	Stats  *walker.Stats
}

// Info reads path and tallies its document. Uncompressed files are mapped
// read-only.
func Info(ctx context.Context, path string) (*FileInfo, error) {
	data, codec, release, err := readOnly(path)
	if err != nil {
		return nil, err
	}
	defer release()

	doc, err := core.Open(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	stats, err := walker.Count(ctx, doc.Root())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	info := &FileInfo{
		Path:   path,
		Codec:  codec,
		Size:   len(data),
		Header: doc.Header(),
		Names:  doc.Names().Count(),
		Stats:  stats,
	}
	if vt := doc.Values(); vt != nil {
		info.Values = vt.Count()
	}
	return info, nil
}

func readOnly(path string) ([]byte, compress.Codec, func(), error) {
	if compress.ForPath(path) == compress.None {
		data, unmap, err := mmfile.Map(path)
		if err == nil {
			if compress.Sniff(data) == compress.None {
				return data, compress.None, func() { _ = unmap() }, nil
			}
			_ = unmap()
		}
	}
	data, codec, err := loadBuffer(path)
	if err != nil {
		return nil, compress.None, nil, err
	}
	return data, codec, func() {}, nil
}
