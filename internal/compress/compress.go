// Package compress handles the container formats BYML files ship in: raw,
// zstd (".zs") and lz4 frame (".lz4").
package compress

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"sync"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Codec identifies a container format.
type Codec uint8

const (
	// None is an uncompressed file.
	None Codec = iota
	// Zstd is a zstd frame, conventionally ".zs".
	Zstd
	// LZ4 is an lz4 frame, conventionally ".lz4".
	LZ4
)

var (
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
	lz4Magic  = []byte{0x04, 0x22, 0x4d, 0x18}
)

// MaxDecodedSize caps the output of Decode. Retail BYML files are a few
// megabytes at most; a frame claiming more is treated as hostile.
const MaxDecodedSize = 256 << 20

var (
	// ErrCorrupt is returned when data does not carry the codec's frame magic.
	ErrCorrupt = errors.New("compress: not a valid frame")

	// ErrTooLarge is returned when a frame decodes past MaxDecodedSize.
	ErrTooLarge = errors.New("compress: decoded size exceeds limit")
)

func (c Codec) String() string {
	switch c {
	case Zstd:
		return "zstd"
	case LZ4:
		return "lz4"
	default:
		return "none"
	}
}

// Ext returns the file extension conventionally used for c.
func (c Codec) Ext() string {
	switch c {
	case Zstd:
		return ".zs"
	case LZ4:
		return ".lz4"
	default:
		return ""
	}
}

// ForPath picks the codec from the path's extension.
func ForPath(path string) Codec {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".zs", ".zst", ".zstd":
		return Zstd
	case ".lz4":
		return LZ4
	default:
		return None
	}
}

// Sniff picks the codec from the frame magic at the start of data.
func Sniff(data []byte) Codec {
	switch {
	case bytes.HasPrefix(data, zstdMagic):
		return Zstd
	case bytes.HasPrefix(data, lz4Magic):
		return LZ4
	default:
		return None
	}
}

// ZSTD encoder/decoder pools for efficiency
var (
	zstdEncoderPool sync.Pool
	zstdDecoderPool sync.Pool
)

func getZstdEncoder() (*zstd.Encoder, error) {
	if v := zstdEncoderPool.Get(); v != nil {
		return v.(*zstd.Encoder), nil
	}
	return zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
}

func getZstdDecoder() (*zstd.Decoder, error) {
	if v := zstdDecoderPool.Get(); v != nil {
		return v.(*zstd.Decoder), nil
	}
	return zstd.NewReader(nil,
		zstd.WithDecoderMaxMemory(MaxDecodedSize),
		zstd.WithDecoderMaxWindow(MaxDecodedSize))
}

// Decode unwraps data. None returns data unchanged. Output larger than
// MaxDecodedSize fails with ErrTooLarge.
func (c Codec) Decode(data []byte) ([]byte, error) {
	return c.decode(data, MaxDecodedSize)
}

func (c Codec) decode(data []byte, limit int) ([]byte, error) {
	switch c {
	case None:
		return data, nil
	case Zstd:
		if !bytes.HasPrefix(data, zstdMagic) {
			return nil, fmt.Errorf("zstd: %w", ErrCorrupt)
		}
		dec, err := getZstdDecoder()
		if err != nil {
			return nil, err
		}
		defer zstdDecoderPool.Put(dec)
		out, err := dec.DecodeAll(data, nil)
		if errors.Is(err, zstd.ErrDecoderSizeExceeded) || errors.Is(err, zstd.ErrWindowSizeExceeded) {
			return nil, fmt.Errorf("zstd: %w: %w", ErrTooLarge, err)
		}
		if err != nil {
			return nil, fmt.Errorf("zstd: %w", err)
		}
		if len(out) > limit {
			return nil, fmt.Errorf("zstd: %w", ErrTooLarge)
		}
		return out, nil
	case LZ4:
		if !bytes.HasPrefix(data, lz4Magic) {
			return nil, fmt.Errorf("lz4: %w", ErrCorrupt)
		}
		r := io.LimitReader(lz4.NewReader(bytes.NewReader(data)), int64(limit)+1)
		out, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("lz4: %w", err)
		}
		if len(out) > limit {
			return nil, fmt.Errorf("lz4: %w", ErrTooLarge)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("compress: unknown codec %d", c)
	}
}

// Encode wraps data. None returns data unchanged.
func (c Codec) Encode(data []byte) ([]byte, error) {
	switch c {
	case None:
		return data, nil
	case Zstd:
		enc, err := getZstdEncoder()
		if err != nil {
			return nil, err
		}
		defer zstdEncoderPool.Put(enc)
		return enc.EncodeAll(data, nil), nil
	case LZ4:
		var buf bytes.Buffer
		w := lz4.NewWriter(&buf)
		if _, err := w.Write(data); err != nil {
			return nil, fmt.Errorf("lz4: %w", err)
		}
		if err := w.Close(); err != nil {
			return nil, fmt.Errorf("lz4: %w", err)
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("compress: unknown codec %d", c)
	}
}
