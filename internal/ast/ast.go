// Package ast provides helpers over pandoc's JSON document tree as decoded
// by encoding/json: elements are map[string]any values with a "t" tag and
// an optional "c" content field, sequences are []any. The package carries
// the traversal protocol (Walk for read-only passes, Transform for
// rewriting passes) plus constructors and kind-specific accessors for the
// node shapes the filter cares about.
package ast

import "sort"

// Element reports whether v is a tagged document element and unpacks it.
// Elements without content (Space, SoftBreak, ...) yield c == nil.
func Element(v any) (t string, c any, ok bool) {
	m, ok := v.(map[string]any)
	if !ok {
		return "", nil, false
	}
	tag, ok := m["t"].(string)
	if !ok {
		return "", nil, false
	}
	return tag, m["c"], true
}

// Elem builds a tagged element. A nil content produces a content-free
// element, matching pandoc's encoding of Space and friends.
func Elem(t string, c any) map[string]any {
	if c == nil {
		return map[string]any{"t": t}
	}
	return map[string]any{"t": t, "c": c}
}

// Str builds a plain text inline.
func Str(s string) map[string]any { return Elem("Str", s) }

// Space builds a word-separating space inline.
func Space() map[string]any { return Elem("Space", nil) }

// RawInline builds a raw inline in the given output format.
func RawInline(format, text string) map[string]any {
	return Elem("RawInline", []any{format, text})
}

// Strong builds a bold inline wrapping the given children.
func Strong(children []any) map[string]any {
	return Elem("Strong", children)
}

// Walk visits every tagged element of the tree in document order and calls
// visit with its tag and content. The tree is not modified. Map keys are
// visited in sorted order so traversal order is deterministic.
func Walk(x any, visit func(t string, c any)) {
	switch v := x.(type) {
	case []any:
		for _, item := range v {
			if t, c, ok := Element(item); ok {
				visit(t, c)
			}
			Walk(item, visit)
		}
	case map[string]any:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			Walk(v[k], visit)
		}
	}
}

// Transform rebuilds the tree, calling fn on every tagged element that
// occurs inside a sequence. fn returns nil to keep the element (children
// are still transformed), a []any to splice a replacement sequence in its
// place, or a single replacement value. Replacements are transformed
// before insertion.
func Transform(x any, fn func(t string, c any) any) any {
	switch v := x.(type) {
	case []any:
		out := make([]any, 0, len(v))
		for _, item := range v {
			t, c, ok := Element(item)
			if !ok {
				out = append(out, Transform(item, fn))
				continue
			}
			switch res := fn(t, c).(type) {
			case nil:
				out = append(out, Transform(item, fn))
			case []any:
				for _, z := range res {
					out = append(out, Transform(z, fn))
				}
			default:
				out = append(out, Transform(res, fn))
			}
		}
		return out
	case map[string]any:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		out := make(map[string]any, len(v))
		for _, k := range keys {
			out[k] = Transform(v[k], fn)
		}
		return out
	default:
		return x
	}
}

// attrID pulls the identifier out of a pandoc Attr value [id, classes, kvs].
func attrID(v any) (string, bool) {
	attr, ok := v.([]any)
	if !ok || len(attr) < 1 {
		return "", false
	}
	id, ok := attr[0].(string)
	return id, ok
}

// HeaderID returns the identifier of a Header content value
// [level, attr, inlines].
func HeaderID(c any) (string, bool) {
	parts, ok := c.([]any)
	if !ok || len(parts) < 2 {
		return "", false
	}
	return attrID(parts[1])
}

// MathSource unpacks a Math content value [mathType, source] and reports
// whether it is a display (block) equation.
func MathSource(c any) (src string, display bool, ok bool) {
	parts, okl := c.([]any)
	if !okl || len(parts) < 2 {
		return "", false, false
	}
	src, ok = parts[1].(string)
	if !ok {
		return "", false, false
	}
	mt, _, okt := Element(parts[0])
	return src, okt && mt == "DisplayMath", true
}

// ImageIDTitle returns the identifier and title of an Image content value
// [attr, inlines, [url, title]].
func ImageIDTitle(c any) (id, title string, ok bool) {
	parts, okl := c.([]any)
	if !okl || len(parts) < 3 {
		return "", "", false
	}
	id, ok = attrID(parts[0])
	if !ok {
		return "", "", false
	}
	target, okt := parts[2].([]any)
	if !okt || len(target) < 2 {
		return "", "", false
	}
	title, ok = target[1].(string)
	return id, title, ok
}

// TableID returns the identifier of a Table content value [attr, ...].
func TableID(c any) (string, bool) {
	parts, ok := c.([]any)
	if !ok || len(parts) < 1 {
		return "", false
	}
	return attrID(parts[0])
}

// StrContent returns the text of a Str element.
func StrContent(v any) (string, bool) {
	t, c, ok := Element(v)
	if !ok || t != "Str" {
		return "", false
	}
	s, ok := c.(string)
	return s, ok
}

// IsSpacer reports whether v is a pure whitespace inline (Space or
// SoftBreak).
func IsSpacer(v any) bool {
	t, _, ok := Element(v)
	return ok && (t == "Space" || t == "SoftBreak")
}
