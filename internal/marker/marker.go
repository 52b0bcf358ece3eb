// Package marker parses cross-reference marker tokens out of raw text
// content. The grammar, anchored to both ends of the text:
//
//	[known_abbreviation] [prefix_suppressor] [opening_bracket] "@#" identifier [closing_bracket] punctuation
//
// where the known abbreviation is a run of non-space characters ended by a
// non-breaking space (the converter substitutes one after a recognized
// abbreviation), the suppressor is a single "-", brackets are literal "["
// and "]", the identifier starts with a letter and continues with letters,
// digits, hyphens, underscores, colons, or periods but must not end in a
// separator, and punctuation is the trailing run of non-alphanumeric,
// non-bracket characters.
//
// Parsing is purely syntactic. A hand-written scanner is used instead of a
// pattern engine so the identifier's backtracking tail rule stays
// auditable.
package marker

import (
	"strings"
	"unicode"
)

// nbsp is the non-breaking space that terminates a known abbreviation.
const nbsp = " "

// Token is one parsed marker occurrence. All fields are verbatim slices of
// the matched text; Raw is the full text node content.
type Token struct {
	Raw               string
	KnownAbbreviation string // includes the trailing non-breaking space
	PrefixSuppressor  bool
	OpeningBracket    bool
	ClosingBracket    bool
	ID                string
	Punctuation       string
}

// Parse matches s against the marker grammar. Text that does not match the
// whole grammar yields (nil, false) and is left untouched by callers.
func Parse(s string) (*Token, bool) {
	if tok, ok := parseBody(s, ""); ok {
		return tok, true
	}
	// Retry with a leading known abbreviation: everything up to the first
	// non-breaking space, which itself must contain no whitespace.
	j := strings.Index(s, nbsp)
	if j < 0 {
		return nil, false
	}
	if strings.IndexFunc(s[:j], unicode.IsSpace) >= 0 {
		return nil, false
	}
	return parseBody(s[j+len(nbsp):], s[:j+len(nbsp)])
}

func parseBody(s, abbr string) (*Token, bool) {
	tok := &Token{Raw: abbr + s, KnownAbbreviation: abbr}
	i := 0
	if i < len(s) && s[i] == '-' {
		tok.PrefixSuppressor = true
		i++
	}
	if i < len(s) && s[i] == '[' {
		tok.OpeningBracket = true
		i++
	}
	if !strings.HasPrefix(s[i:], "@#") {
		return nil, false
	}
	i += 2

	// Identifier: greedy scan, then back off until it ends in a letter or
	// digit so trailing sentence punctuation is not absorbed.
	start := i
	if i >= len(s) || !isLetter(s[i]) {
		return nil, false
	}
	i++
	for i < len(s) && isIDChar(s[i]) {
		i++
	}
	for i > start && !isAlnum(s[i-1]) {
		i--
	}
	tok.ID = s[start:i]

	if i < len(s) && s[i] == ']' {
		tok.ClosingBracket = true
		i++
	}

	// Punctuation: whatever remains, as long as it contains no
	// alphanumerics and no brackets. Multi-byte runes are fine; their
	// bytes never collide with the ASCII checks.
	for k := i; k < len(s); k++ {
		if isAlnum(s[k]) || s[k] == '[' || s[k] == ']' {
			return nil, false
		}
	}
	tok.Punctuation = s[i:]
	return tok, true
}

// Reconstruct reassembles the matched text from the token's fields. For
// any token produced by Parse it equals Raw.
func (t *Token) Reconstruct() string {
	var b strings.Builder
	b.WriteString(t.KnownAbbreviation)
	if t.PrefixSuppressor {
		b.WriteByte('-')
	}
	if t.OpeningBracket {
		b.WriteByte('[')
	}
	b.WriteString("@#")
	b.WriteString(t.ID)
	if t.ClosingBracket {
		b.WriteByte(']')
	}
	b.WriteString(t.Punctuation)
	return b.String()
}

func isLetter(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z'
}

func isAlnum(b byte) bool {
	return isLetter(b) || b >= '0' && b <= '9'
}

func isIDChar(b byte) bool {
	return isAlnum(b) || b == '-' || b == '_' || b == ':' || b == '.'
}
