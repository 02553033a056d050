package byml

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	core "github.com/joshuapare/bymlkit/byml"
	"github.com/joshuapare/bymlkit/byml/dirty"
	"github.com/joshuapare/bymlkit/internal/compress"
	"github.com/joshuapare/bymlkit/internal/logger"
	"github.com/joshuapare/bymlkit/internal/mmfile"
)

var (
	// ErrReadOnly is returned by Commit when a read-only File was written to.
	ErrReadOnly = errors.New("byml: file opened read-only")

	// ErrClosed is returned by operations on a closed File.
	ErrClosed = errors.New("byml: file closed")
)

// File is an editing session on one BYML file on disk.
type File struct {
	path    string
	codec   compress.Codec
	doc     *core.Document
	mapping *mmfile.Mapping
	tracker *dirty.Tracker
	opts    OpenOptions
	log     *slog.Logger
	closed  bool
}

// OpenFile loads path and opens its document. Uncompressed files are mapped
// read-write where the platform allows it; everything else is loaded into
// memory. A nil opts uses the defaults.
func OpenFile(path string, opts *OpenOptions) (*File, error) {
	var o OpenOptions
	if opts != nil {
		o = *opts
	}
	f := &File{
		path:    path,
		opts:    o,
		log:     logger.OrDefault(o.Logger),
		tracker: dirty.NewTracker(),
	}

	data, err := f.load()
	if err != nil {
		return nil, err
	}

	coreOpts := []core.Option{core.WithTracker(f.tracker)}
	if o.NameIndex {
		coreOpts = append(coreOpts, core.WithNameIndex())
	}
	doc, err := core.Open(data, coreOpts...)
	if err != nil {
		_ = f.mapping.Close()
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	f.doc = doc

	hdr := doc.Header()
	if !hdr.KnownVersion() {
		f.log.Warn("unrecognized BYML version", "path", path, "version", hdr.Version)
	}
	if err := doc.ValueTableErr(); err != nil {
		f.log.Warn("ignoring unreadable value table", "path", path, "err", err)
	}
	f.log.Debug("opened document",
		"path", path,
		"version", hdr.Version,
		"codec", f.codec.String(),
		"mapped", f.mapping != nil,
		"size", len(data))
	return f, nil
}

func (f *File) load() ([]byte, error) {
	if !f.opts.ReadOnly && !f.opts.NoMmap && compress.ForPath(f.path) == compress.None {
		m, err := mmfile.MapRW(f.path)
		switch {
		case err == nil:
			if c := compress.Sniff(m.Data); c != compress.None {
				// Compressed content under a plain name: edit a decoded copy.
				_ = m.Close()
				break
			}
			f.mapping = m
			return m.Data, nil
		case errors.Is(err, mmfile.ErrNotSupported):
			f.log.Debug("read-write mapping unavailable, loading into memory", "path", f.path)
		default:
			return nil, err
		}
	}

	data, codec, err := loadBuffer(f.path)
	if err != nil {
		return nil, err
	}
	f.codec = codec
	return data, nil
}

// Path returns the file's path.
func (f *File) Path() string { return f.path }

// Doc returns the open document.
func (f *File) Doc() *core.Document { return f.doc }

// Root returns the document's root dictionary.
func (f *File) Root() *core.DictNode { return f.doc.Root() }

// Mapped reports whether edits go straight to a shared mapping.
func (f *File) Mapped() bool { return f.mapping != nil }

// Codec returns the container the file was stored in.
func (f *File) Codec() compress.Codec { return f.codec }

// Dirty reports whether anything was written since open or the last Commit.
func (f *File) Dirty() bool { return f.tracker.Dirty() }

// Commit makes every edit durable. For a mapped file only the touched pages
// are flushed; otherwise the whole buffer is written back in its original
// container. Committing a clean file is a no-op.
func (f *File) Commit(ctx context.Context) error {
	if f.closed {
		return ErrClosed
	}
	if !f.tracker.Dirty() {
		return nil
	}
	if f.opts.ReadOnly {
		return fmt.Errorf("%s: %w", f.path, ErrReadOnly)
	}

	if f.mapping != nil {
		bytes := f.tracker.Bytes()
		if err := f.tracker.Commit(ctx, f.mapping.Data, f.mapping.Fd(), f.opts.FlushMode); err != nil {
			return fmt.Errorf("%s: %w", f.path, err)
		}
		f.log.Debug("committed mapped edits", "path", f.path, "bytes", bytes)
		return nil
	}

	if err := ctx.Err(); err != nil {
		return err
	}
	if err := saveBuffer(f.path, f.doc.Bytes(), f.codec); err != nil {
		return err
	}
	f.tracker.Reset()
	f.log.Debug("rewrote file", "path", f.path, "codec", f.codec.String())
	return nil
}

// Close releases the mapping, if any. Uncommitted edits to a mapped file may
// still reach disk through the page cache; uncommitted edits to an in-memory
// file are discarded.
func (f *File) Close() error {
	if f.closed {
		return nil
	}
	f.closed = true
	if f.mapping != nil {
		err := f.mapping.Close()
		f.mapping = nil
		return err
	}
	return nil
}
