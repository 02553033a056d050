package edit

import (
	"fmt"

	"github.com/joshuapare/bymlkit/byml"
)

// Severity grades a diagnostic.
type Severity uint8

const (
	SeverityInfo Severity = iota
	SeverityWarn
)

func (s Severity) String() string {
	if s == SeverityWarn {
		return "warn"
	}
	return "info"
}

// Diagnostic is a non-fatal finding recorded during a pass.
type Diagnostic struct {
	Severity Severity
	Path     string    // slash-joined entry path
	Offset   int       // absolute offset of the entry slot
	Kind     byml.Kind // kind of the entry
	Err      error     // wraps a byml sentinel
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s at 0x%x: %v", d.Severity, d.Path, d.Offset, d.Err)
}

// Match is one replaced (or, in a dry run, replaceable) entry.
type Match struct {
	Path   string
	Offset int // absolute offset of the 4-byte payload
	Kind   byml.Kind
	Old    byml.Raw
	New    byml.Raw
}

// Result collects everything a pass found.
type Result struct {
	// Replaced reports whether at least one entry matched.
	Replaced    bool
	Matches     []Match
	Diagnostics []Diagnostic
}

// Warnings returns the warn-level diagnostics.
func (r *Result) Warnings() []Diagnostic {
	var out []Diagnostic
	for _, d := range r.Diagnostics {
		if d.Severity == SeverityWarn {
			out = append(out, d)
		}
	}
	return out
}

// Hit is one entry returned by Find.
type Hit struct {
	Path  string
	Value byml.ValueNode
}
