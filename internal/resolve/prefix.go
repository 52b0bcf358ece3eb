package resolve

import (
	"unicode"
	"unicode/utf8"

	"pandoc-xref/internal/refs"
)

// prefixFor computes the rendered prefix from the resolved kind, the
// suppressor flag, and the bracket state as it stands before this token's
// transition: the opening token of a group still gets the (pluralized)
// prefix, later members of the group get none.
func (r *Resolver) prefixFor(c *candidate, st *GroupState) string {
	if c.kind == refs.None {
		return ""
	}
	if c.tok.PrefixSuppressor || st.InsideBrackets {
		return ""
	}
	word := r.prefixes.Word(c.kind)
	if c.tok.OpeningBracket {
		word = r.plural.Pluralize(word)
	}
	return word + " "
}

// capitalize upper-cases the first letter of s.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	ch, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(ch)) + s[size:]
}
