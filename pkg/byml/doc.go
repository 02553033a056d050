/*
Package byml provides file-level operations on BYML documents: loading and
saving (with transparent zstd/lz4 containers), editing sessions backed by a
shared memory mapping, and batch replacement across explicit file lists.

# Quick Start

Replace a value everywhere it appears in one file:

	res, err := byml.ReplaceInFile(ctx, "ActorInfo.byml", "Speed", core.FloatRaw(2), nil)

Replace across many files, four at a time:

	opts := byml.DefaultBatchOptions()
	opts.Concurrency = 4
	results, err := byml.ReplaceInFiles(ctx, paths, "Hp", core.IntRaw(100), &opts)
	for _, r := range results {
	    if r.Err != nil {
	        fmt.Printf("%s: %v\n", r.Path, r.Err)
	    }
	}

# Editing Sessions

OpenFile returns a File whose Document can be read and edited with the core
packages. Uncompressed files are mapped read-write, so edits land directly
in the page cache and Commit only msyncs the touched pages. Compressed files
are decompressed into memory and Commit writes the whole file back through
a temp file and rename.

	f, err := byml.OpenFile("Enemy.byml.zs", nil)
	if err != nil {
	    return err
	}
	defer f.Close()
	ok, err := edit.DeepReplace(f.Root(), "Attack", core.IntRaw(40))
	...
	err = f.Commit(ctx)

# Error Handling

Errors wrap the core sentinels, so a batch caller can tell a file that failed
to load (errors.Is(err, core.ErrFormatMismatch)) from one that simply has no
entry with the requested name (errors.Is(err, core.ErrNotFound)).

# Thread Safety

A File is not safe for concurrent use. ReplaceInFiles runs each file in its
own goroutine with its own buffer and never opens the same path twice.
*/
package byml
