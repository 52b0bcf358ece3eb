package diag

import (
	"bytes"
	"strings"
	"testing"
)

func TestWarnfPrefixesAndCounts(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf)
	r.Warnf("something %s happened", "odd")
	r.Warnf("again")

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 warning lines, got %d: %q", len(lines), buf.String())
	}
	for _, l := range lines {
		if !strings.HasPrefix(l, "pandoc-xref: ") {
			t.Fatalf("missing prefix on %q", l)
		}
	}
	if r.Count() != 2 {
		t.Fatalf("Count = %d", r.Count())
	}
}
