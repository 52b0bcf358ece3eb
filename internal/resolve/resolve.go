// Package resolve implements pass 2 of the filter: it scans every
// inline-run of the document for marker tokens, validates them against the
// bracket-group state of that run, computes the rendered prefix, and
// splices replacement nodes back into the run.
package resolve

import (
	"pandoc-xref/internal/ast"
	"pandoc-xref/internal/config"
	"pandoc-xref/internal/diag"
	"pandoc-xref/internal/marker"
	"pandoc-xref/internal/plural"
	"pandoc-xref/internal/refs"
)

// Resolver resolves markers against a completed (deduplicated) registry.
// The registry must not be mutated while Apply runs.
type Resolver struct {
	reg      *refs.Registry
	prefixes config.Prefixes
	plural   *plural.Service
	rep      *diag.Reporter
}

// New returns a Resolver. svc and rep must be non-nil.
func New(reg *refs.Registry, prefixes config.Prefixes, svc *plural.Service, rep *diag.Reporter) *Resolver {
	return &Resolver{reg: reg, prefixes: prefixes, plural: svc, rep: rep}
}

// candidate is one parsed marker during resolution. It lives only for the
// iteration that created it.
type candidate struct {
	tok            *marker.Token
	kind           refs.Kind
	prefix         string
	startsSentence bool
	valid          bool
	unresolved     bool
}

// Apply rewrites the document tree, resolving markers in every node whose
// content is a sequence. Each such sequence is an independent bracket
// scope.
func (r *Resolver) Apply(doc any) any {
	return ast.Transform(doc, func(t string, c any) any {
		elts, ok := c.([]any)
		if !ok {
			return nil
		}
		return ast.Elem(t, r.processInlines(elts))
	})
}

// processInlines resolves all markers in one sibling run. Bracket state is
// reset at the start and cannot leak into other runs.
func (r *Resolver) processInlines(elts []any) []any {
	st := &GroupState{}
	out := make([]any, 0, len(elts))
	out = append(out, elts...)
	var lastRaw string
	seen := false

	for i := 0; i < len(out); i++ {
		s, ok := ast.StrContent(out[i])
		if !ok {
			continue
		}
		tok, ok := marker.Parse(s)
		if !ok {
			continue
		}
		lastRaw = tok.Raw
		seen = true

		c := &candidate{tok: tok}
		r.validate(c, st)
		c.startsSentence = startsSentence(out[:i])
		c.prefix = r.prefixFor(c, st)
		st.apply(c)

		var repl []any
		switch {
		case c.valid:
			repl = r.render(c)
		case c.unresolved:
			repl = []any{errorMarker()}
		default:
			// Malformed bracket usage keeps the raw text in place.
			continue
		}
		out = append(out[:i], append(repl, out[i+1:]...)...)
		i += len(repl) - 1
	}

	if st.InsideBrackets && seen {
		r.rep.Warnf("Missing closing bracket after cross-reference: %s", lastRaw)
	}
	return out
}
