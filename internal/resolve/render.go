package resolve

import (
	"fmt"

	"pandoc-xref/internal/ast"
)

// linkClass marks resolved links in the rendered HTML.
const linkClass = "cross-ref"

// render builds the replacement sequence for a valid token: an optional
// leading abbreviation text node, the anchor, and an optional trailing
// punctuation text node. For a group-opening token the prefix is rendered
// outside the anchor and the tag pair stays empty-bodied.
func (r *Resolver) render(c *candidate) []any {
	prefix := c.prefix
	if c.startsSentence && c.tok.KnownAbbreviation == "" {
		prefix = capitalize(prefix)
	}

	openTag := fmt.Sprintf("<a href=#%s class=%q>", c.tok.ID, linkClass)
	var html string
	if c.tok.OpeningBracket {
		html = prefix + openTag + "</a>"
	} else {
		html = openTag + prefix + "</a>"
	}

	nodes := make([]any, 0, 3)
	if c.tok.KnownAbbreviation != "" {
		nodes = append(nodes, ast.Str(c.tok.KnownAbbreviation))
	}
	nodes = append(nodes, ast.RawInline("html", html))
	if c.tok.Punctuation != "" {
		nodes = append(nodes, ast.Str(c.tok.Punctuation))
	}
	return nodes
}

// errorMarker is spliced in place of a marker whose identifier could not
// be resolved. The original marker text is discarded.
func errorMarker() map[string]any {
	return ast.Strong([]any{
		ast.Str("unable"), ast.Space(),
		ast.Str("to"), ast.Space(),
		ast.Str("resolve"), ast.Space(),
		ast.Str("cross-reference!"),
	})
}
