// Package diag provides the warning side channel for the filter. Warnings
// describe document problems (duplicate IDs, unresolved references, bad
// bracket usage); they never abort a run and never end up in the output
// document.
package diag

import (
	"fmt"
	"io"
	"os"
)

// prefix matches the tool name so warning lines are greppable in pandoc's
// stderr stream.
const prefix = "pandoc-xref:"

// Reporter writes prefixed warning lines to a single destination and keeps
// a count. The zero value is not usable; use New.
type Reporter struct {
	w io.Writer
	n int
}

// New returns a Reporter writing to w. Pass nil to write to stderr.
func New(w io.Writer) *Reporter {
	if w == nil {
		w = os.Stderr
	}
	return &Reporter{w: w}
}

// Warnf emits one warning line.
func (r *Reporter) Warnf(format string, args ...any) {
	r.n++
	fmt.Fprintf(r.w, "%s %s\n", prefix, fmt.Sprintf(format, args...))
}

// Count reports how many warnings were emitted so far.
func (r *Reporter) Count() int { return r.n }
