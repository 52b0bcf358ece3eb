package resolve

import "pandoc-xref/internal/ast"

// startsSentence reports whether a token hosted after the given preceding
// siblings starts a new sentence: true when nothing (or only whitespace
// nodes) precedes it, otherwise decided by the nearest preceding non-space
// node. Only plain text nodes are inspected; formatted inline content
// (emphasis, inline math, ...) is not unwrapped, so a marker after such a
// node is treated as continuing the sentence. Known limitation of the
// heuristic.
func startsSentence(prev []any) bool {
	for i := len(prev) - 1; i >= 0; i-- {
		if ast.IsSpacer(prev[i]) {
			continue
		}
		s, ok := ast.StrContent(prev[i])
		if !ok {
			return false
		}
		return endsSentence(s)
	}
	return true
}

func endsSentence(s string) bool {
	if s == "" {
		return false
	}
	switch s[len(s)-1] {
	case '.', '!', '?', ':':
		return true
	}
	return false
}
