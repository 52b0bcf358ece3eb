// Package refs maintains the registry of cross-referenceable identifiers
// declared in a document. Pass 1 collects identifiers per reference kind in
// document order; Dedupe then removes every identifier that was declared
// more than once anywhere, so lookups during pass 2 resolve to at most one
// kind.
package refs

import (
	"regexp"
	"strings"

	"pandoc-xref/internal/ast"
	"pandoc-xref/internal/diag"
)

// Kind is the reference type an identifier was declared as.
type Kind int

const (
	None Kind = iota
	Section
	Equation
	Figure
	Table
)

// String returns the canonical prefix word for the kind.
func (k Kind) String() string {
	switch k {
	case Section:
		return "section"
	case Equation:
		return "equation"
	case Figure:
		return "figure"
	case Table:
		return "table"
	default:
		return "none"
	}
}

// Equation labels become HTML ids, so they must follow the same grammar as
// marker identifiers: a letter followed by letters, digits, hyphens,
// underscores, colons, or periods, not ending in a separator.
var labelRe = regexp.MustCompile(`\\label\{([a-zA-Z](?:[a-zA-Z0-9_:.-]*[a-zA-Z0-9])?)\}`)

// figTitlePrefix marks an image the converter considers a captioned figure
// (pandoc encodes this in the title attribute).
const figTitlePrefix = "fig:"

// Registry holds the declared identifiers, one ordered sequence per kind.
// Duplicates are permitted until Dedupe runs.
type Registry struct {
	Sections  []string
	Equations []string
	Figures   []string
	Tables    []string
}

// Add appends an identifier to the sequence for kind. Kind None is ignored.
func (r *Registry) Add(k Kind, id string) {
	switch k {
	case Section:
		r.Sections = append(r.Sections, id)
	case Equation:
		r.Equations = append(r.Equations, id)
	case Figure:
		r.Figures = append(r.Figures, id)
	case Table:
		r.Tables = append(r.Tables, id)
	}
}

// Lookup returns the kind an identifier was declared as, or None. After
// Dedupe an identifier occurs in at most one sequence; sequences are
// checked in declaration-kind order regardless.
func (r *Registry) Lookup(id string) Kind {
	for _, seq := range []struct {
		kind Kind
		ids  []string
	}{
		{Section, r.Sections},
		{Equation, r.Equations},
		{Figure, r.Figures},
		{Table, r.Tables},
	} {
		for _, v := range seq.ids {
			if v == id {
				return seq.kind
			}
		}
	}
	return None
}

// Collect walks the whole document once and fills the registry:
//   - Header: always has an identifier (the converter auto-generates one).
//   - Math: display equations with a \label{...} whose id matches the
//     identifier grammar; inline math and unlabeled display math yield
//     nothing.
//   - Image: only with a non-empty identifier and a title marked as a
//     captioned figure.
//   - Table: only with a non-empty identifier.
func Collect(doc any) *Registry {
	reg := &Registry{}
	ast.Walk(doc, func(t string, c any) {
		switch t {
		case "Header":
			if id, ok := ast.HeaderID(c); ok {
				reg.Add(Section, id)
			}
		case "Math":
			src, display, ok := ast.MathSource(c)
			if !ok || !display {
				return
			}
			if m := labelRe.FindStringSubmatch(src); m != nil {
				reg.Add(Equation, m[1])
			}
		case "Image":
			id, title, ok := ast.ImageIDTitle(c)
			if ok && id != "" && strings.HasPrefix(title, figTitlePrefix) {
				reg.Add(Figure, id)
			}
		case "Table":
			if id, ok := ast.TableID(c); ok && id != "" {
				reg.Add(Table, id)
			}
		}
	})
	return reg
}

// Dedupe finds identifiers declared more than once across all four
// sequences combined, warns once per distinct duplicate, and removes every
// occurrence of each duplicate. Relative order of survivors is preserved.
// It must run after Collect and before any Lookup; running it again on the
// result is a no-op.
func (r *Registry) Dedupe(rep *diag.Reporter) {
	counts := make(map[string]int)
	var order []string
	for _, seq := range [][]string{r.Sections, r.Equations, r.Figures, r.Tables} {
		for _, id := range seq {
			if counts[id] == 0 {
				order = append(order, id)
			}
			counts[id]++
		}
	}

	dup := make(map[string]bool)
	for _, id := range order {
		if counts[id] > 1 {
			dup[id] = true
			rep.Warnf("ID %s was defined more than once!", id)
		}
	}
	if len(dup) == 0 {
		return
	}

	filter := func(seq []string) []string {
		out := seq[:0]
		for _, id := range seq {
			if !dup[id] {
				out = append(out, id)
			}
		}
		return out
	}
	r.Sections = filter(r.Sections)
	r.Equations = filter(r.Equations)
	r.Figures = filter(r.Figures)
	r.Tables = filter(r.Tables)
}
