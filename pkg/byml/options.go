package byml

import (
	"log/slog"
	"runtime"

	core "github.com/joshuapare/bymlkit/byml"
	"github.com/joshuapare/bymlkit/byml/dirty"
)

// OpenOptions controls how OpenFile loads a document.
type OpenOptions struct {
	// NameIndex builds per-dictionary name maps on first named lookup.
	NameIndex bool

	// ReadOnly loads the file into private memory and makes Commit fail if
	// anything was written.
	ReadOnly bool

	// NoMmap loads uncompressed files into memory instead of mapping them.
	// Commit then rewrites the whole file.
	NoMmap bool

	// FlushMode controls durability of Commit for mapped files.
	// Default: dirty.FlushAuto
	FlushMode dirty.FlushMode

	// Logger receives load warnings. Nil uses the process logger.
	Logger *slog.Logger
}

// SetOptions controls a replacement pass on one file.
type SetOptions struct {
	// Kind restricts writes to entries of this kind. Zero accepts any
	// bool, int or float entry.
	Kind core.Kind

	// DryRun reports matches without writing or committing.
	DryRun bool

	// MaxDepth bounds dictionary nesting. Zero means unlimited.
	MaxDepth int

	// Open is passed to OpenFile.
	Open OpenOptions
}

// BatchOptions controls ReplaceInFiles.
type BatchOptions struct {
	SetOptions

	// Concurrency is the number of files processed at once.
	// Default: runtime.GOMAXPROCS(0)
	Concurrency int

	// OnResult, if set, is called as each file finishes. It may be called
	// from several goroutines at once.
	OnResult func(FileResult)
}

// DefaultBatchOptions returns sensible defaults for batch replacement.
func DefaultBatchOptions() BatchOptions {
	return BatchOptions{Concurrency: runtime.GOMAXPROCS(0)}
}
