package resolve

import (
	"testing"

	"pandoc-xref/internal/ast"
)

func TestStartsSentence(t *testing.T) {
	cases := []struct {
		name string
		prev []any
		want bool
	}{
		{"no predecessors", nil, true},
		{"only spaces", []any{ast.Space(), ast.Space()}, true},
		{"after period", words("A", "test."), true},
		{"after bang", words("A", "test!"), true},
		{"after question mark", words("A", "test?"), true},
		{"after colon", words("A", "test:"), true},
		{"mid sentence", words("Also"), false},
		{"after comma", words("Well,"), false},
		{"after soft break", append(words("line."), ast.Elem("SoftBreak", nil)), true},
		// Formatted inline content is not unwrapped by the heuristic.
		{"after emphasis", []any{ast.Elem("Emph", words("done."))}, false},
	}
	for _, c := range cases {
		if got := startsSentence(c.prev); got != c.want {
			t.Errorf("%s: startsSentence = %v, want %v", c.name, got, c.want)
		}
	}
}

func TestCapitalize(t *testing.T) {
	if got := capitalize("figure "); got != "Figure " {
		t.Fatalf("capitalize got %q", got)
	}
	if got := capitalize(""); got != "" {
		t.Fatalf("capitalize empty got %q", got)
	}
}
