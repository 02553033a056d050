package edit

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/joshuapare/bymlkit/byml"
	"github.com/joshuapare/bymlkit/byml/walker"
	"github.com/joshuapare/bymlkit/internal/logger"
)

// ErrSharedDict is wrapped by the diagnostic recorded for a dictionary that
// was reached again through another entry and not walked twice.
var ErrSharedDict = errors.New("edit: dictionary already visited")

// Replacer configures a replacement pass. The zero value is ready to use.
type Replacer struct {
	// Logger receives per-match debug records and diagnostics. Nil uses the
	// process logger.
	Logger *slog.Logger
	// MaxDepth bounds dictionary nesting. Zero means unlimited.
	MaxDepth int
	// Kind, when set, restricts writes to entries of that kind. Scalar
	// entries of another kind are reported as TypeMismatch diagnostics.
	Kind byml.Kind
	// DryRun records matches without writing.
	DryRun bool
}

// DeepReplace overwrites every bool, int or float entry called name beneath
// root with raw, and reports whether anything was replaced.
func DeepReplace(root *byml.DictNode, name string, raw byml.Raw) (bool, error) {
	var r Replacer
	res, err := r.Replace(context.Background(), root, name, raw)
	return res.Replaced, err
}

// Replace runs one pass. The result is never nil, even on error. A pass that
// fails part way restores every payload it already wrote and reports no
// matches, so the buffer is either fully updated or left as it was.
func (r *Replacer) Replace(ctx context.Context, root *byml.DictNode, name string, raw byml.Raw) (*Result, error) {
	log := logger.OrDefault(r.Logger)
	res := &Result{}

	diag := func(sev Severity, e walker.Entry, err error) {
		d := Diagnostic{
			Severity: sev,
			Path:     e.PathString(),
			Offset:   e.Value.SlotOffset(),
			Kind:     e.Value.Kind(),
			Err:      err,
		}
		res.Diagnostics = append(res.Diagnostics, d)
		level := slog.LevelDebug
		if sev == SeverityWarn {
			level = slog.LevelWarn
		}
		log.Log(ctx, level, "skipped entry", "path", d.Path, "offset", d.Offset, "kind", d.Kind.String(), "error", err)
	}

	w := walker.New(root, walker.Options{
		MaxDepth: r.MaxDepth,
		OnRevisit: func(e walker.Entry) {
			diag(SeverityInfo, e, ErrSharedDict)
		},
	})

	var applied []byml.ValueNode
	err := w.Walk(ctx, func(e walker.Entry) error {
		k := e.Value.Kind()
		if k == byml.KindDict || e.Name != name {
			return nil
		}
		switch {
		case !k.IsScalar():
			diag(SeverityWarn, e, &byml.UnsupportedError{Kind: k, Offset: e.Value.SlotOffset()})
			return nil
		case r.Kind != 0 && k != r.Kind:
			diag(SeverityWarn, e, fmt.Errorf("%s entry, want %s: %w", k, r.Kind, byml.ErrTypeMismatch))
			return nil
		}

		m := Match{
			Path:   e.PathString(),
			Offset: e.Value.PayloadOffset(),
			Kind:   k,
			Old:    e.Value.Raw(),
			New:    raw,
		}
		if !r.DryRun {
			if err := e.Value.SetRaw(raw); err != nil {
				return fmt.Errorf("%s: %w", m.Path, err)
			}
			applied = append(applied, e.Value)
		}
		res.Matches = append(res.Matches, m)
		log.Debug("replaced entry", "path", m.Path, "offset", m.Offset, "kind", k.String(), "dry_run", r.DryRun)
		return nil
	})
	if err != nil {
		if rerr := rollback(applied, res.Matches); rerr != nil {
			err = errors.Join(err, rerr)
		}
		log.Debug("rolled back replacement", "name", name, "entries", len(applied), "error", err)
		res.Matches = nil
		return res, fmt.Errorf("replace %q: %w", name, err)
	}
	res.Replaced = len(res.Matches) > 0
	return res, nil
}

// rollback restores the payloads written so far, newest first. applied[i]
// was written by matches[i].
func rollback(applied []byml.ValueNode, matches []Match) error {
	var errs []error
	for i := len(applied) - 1; i >= 0; i-- {
		if err := applied[i].SetRaw(matches[i].Old); err != nil {
			errs = append(errs, fmt.Errorf("restore %s: %w", matches[i].Path, err))
		}
	}
	return errors.Join(errs...)
}

// Find returns every entry called name beneath root, dictionaries included,
// in walk order. It never writes.
func Find(ctx context.Context, root *byml.DictNode, name string) ([]Hit, error) {
	var hits []Hit
	err := walker.Walk(ctx, root, func(e walker.Entry) error {
		if e.Name == name {
			hits = append(hits, Hit{Path: e.PathString(), Value: e.Value})
		}
		return nil
	})
	if err != nil {
		return hits, fmt.Errorf("find %q: %w", name, err)
	}
	return hits, nil
}
