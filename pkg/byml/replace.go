package byml

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"

	"golang.org/x/sync/errgroup"

	core "github.com/joshuapare/bymlkit/byml"
	"github.com/joshuapare/bymlkit/byml/edit"
	"github.com/joshuapare/bymlkit/internal/logger"
)

// FileResult is the outcome of a replacement on one file of a batch.
type FileResult struct {
	Path   string
	Result *edit.Result // nil if the file could not be opened
	Err    error
}

// ReplaceInFile overwrites every bool, int or float entry called name in the
// file at path and commits the change. When nothing matches the file is left
// untouched and the error wraps core.ErrNotFound. A nil opts uses the
// defaults.
func ReplaceInFile(ctx context.Context, path, name string, raw core.Raw, opts *SetOptions) (*edit.Result, error) {
	var o SetOptions
	if opts != nil {
		o = *opts
	}
	log := logger.OrDefault(o.Open.Logger)

	f, err := OpenFile(path, &o.Open)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := edit.Replacer{
		Logger:   log.With("path", path),
		MaxDepth: o.MaxDepth,
		Kind:     o.Kind,
		DryRun:   o.DryRun,
	}
	res, err := r.Replace(ctx, f.Root(), name, raw)
	if err != nil {
		return res, fmt.Errorf("%s: %w", path, err)
	}
	if !res.Replaced {
		return res, fmt.Errorf("%s: %q: %w", path, name, core.ErrNotFound)
	}
	if o.DryRun {
		return res, nil
	}
	if err := f.Commit(ctx); err != nil {
		return res, err
	}
	log.Info("replaced value", "path", path, "name", name, "matches", len(res.Matches))
	return res, nil
}

// ReplaceInFiles runs ReplaceInFile over paths with bounded concurrency.
// A failure on one file is recorded in its FileResult and does not stop the
// others. Paths naming the same file are processed once. The returned error
// is non-nil only when ctx was cancelled.
func ReplaceInFiles(ctx context.Context, paths []string, name string, raw core.Raw, opts *BatchOptions) ([]FileResult, error) {
	o := DefaultBatchOptions()
	if opts != nil {
		o = *opts
	}
	if o.Concurrency <= 0 {
		o.Concurrency = DefaultBatchOptions().Concurrency
	}

	paths = uniquePaths(paths)
	results := make([]FileResult, len(paths))
	for i, p := range paths {
		results[i].Path = p
	}

	var mu sync.Mutex
	report := func(r FileResult) {
		if o.OnResult == nil {
			return
		}
		mu.Lock()
		defer mu.Unlock()
		o.OnResult(r)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.Concurrency)
	for i, p := range paths {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				results[i] = FileResult{Path: p, Err: err}
				return nil
			}
			set := o.SetOptions
			res, err := ReplaceInFile(gctx, p, name, raw, &set)
			results[i] = FileResult{Path: p, Result: res, Err: err}
			report(results[i])
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		for i := range results {
			if results[i].Result == nil && results[i].Err == nil {
				results[i].Err = err
			}
		}
	}
	return results, ctx.Err()
}

func uniquePaths(paths []string) []string {
	seen := make(map[string]struct{}, len(paths))
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		key := filepath.Clean(p)
		if abs, err := filepath.Abs(p); err == nil {
			key = abs
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, p)
	}
	return out
}

// Find returns every entry called name in the file at path with its
// rendered value. Strings resolve through the value table when present.
func Find(ctx context.Context, path, name string) ([]Found, error) {
	f, err := OpenFile(path, &OpenOptions{ReadOnly: true})
	if err != nil {
		return nil, err
	}
	defer f.Close()

	hits, err := edit.Find(ctx, f.Root(), name)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	out := make([]Found, 0, len(hits))
	for _, h := range hits {
		out = append(out, describe(h))
	}
	return out, nil
}

// Found is one entry located by Find.
type Found struct {
	Path   string
	Kind   core.Kind
	Offset int // absolute offset of the entry's payload
	Value  string
}

func describe(h edit.Hit) Found {
	v := h.Value
	fd := Found{Path: h.Path, Kind: v.Kind(), Offset: v.PayloadOffset()}
	switch {
	case v.Kind().IsScalar():
		fd.Value = FormatRaw(v.Kind(), v.Raw())
	case v.Kind() == core.KindString:
		if s, err := v.StringValue(); err == nil {
			fd.Value = s
		} else {
			fd.Value = fmt.Sprintf("#%d", v.Raw().Uint32())
		}
	default:
		if off, err := v.Offset(); err == nil {
			fd.Value = fmt.Sprintf("@0x%x", off)
		}
	}
	return fd
}
