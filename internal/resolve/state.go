package resolve

import "pandoc-xref/internal/refs"

// GroupState is the bracket-group state of one inline run: whether the run
// is currently inside a bracketed group and which reference kind the group
// has committed to. The zero value is the reset state.
type GroupState struct {
	InsideBrackets bool
	CommittedType  refs.Kind
}

// validate applies the validation rules in order; the first failing rule
// wins and emits one warning naming the offending raw text. Lookup against
// the registry happens here, after the bracket-shape rules.
func (r *Resolver) validate(c *candidate, st *GroupState) {
	tok := c.tok

	if tok.PrefixSuppressor && (tok.OpeningBracket || tok.ClosingBracket || st.InsideBrackets) {
		r.rep.Warnf("A prefix suppressor (-) cannot be used in combination with brackets: %s", tok.Raw)
		return
	}
	if tok.OpeningBracket && tok.ClosingBracket {
		r.rep.Warnf("Opening and closing brackets cannot both be present in the same cross-reference: %s", tok.Raw)
		return
	}
	if tok.OpeningBracket && st.InsideBrackets {
		r.rep.Warnf("Another opening bracket cannot be used before the previous opening bracket has been closed: %s", tok.Raw)
		return
	}

	c.kind = r.reg.Lookup(tok.ID)
	if c.kind == refs.None {
		r.rep.Warnf("Id %s was either not found in document or defined more than once!", tok.ID)
		c.unresolved = true
		return
	}

	if st.CommittedType != refs.None && st.CommittedType != c.kind {
		r.rep.Warnf("%s ID %s is inside brackets, but is not of the same type as the previous bracketed cross-reference (which was a %s)!",
			capitalize(c.kind.String()), tok.ID, st.CommittedType)
		return
	}

	c.valid = true
}

// apply performs the state transition for a token. It runs regardless of
// validity, after validation and prefix calculation.
func (st *GroupState) apply(c *candidate) {
	if c.tok.OpeningBracket {
		st.InsideBrackets = true
	}
	if c.tok.ClosingBracket {
		st.InsideBrackets = false
		st.CommittedType = refs.None
	}
	// A group can recover a committed type even if its first member failed
	// to resolve.
	if st.InsideBrackets && c.kind != refs.None {
		st.CommittedType = c.kind
	}
}
