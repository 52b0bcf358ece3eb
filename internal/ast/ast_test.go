package ast

import (
	"reflect"
	"testing"
)

func TestElement(t *testing.T) {
	tag, c, ok := Element(Str("hi"))
	if !ok || tag != "Str" || c != "hi" {
		t.Fatalf("Element(Str) = %q %v %v", tag, c, ok)
	}
	tag, c, ok = Element(Space())
	if !ok || tag != "Space" || c != nil {
		t.Fatalf("Element(Space) = %q %v %v", tag, c, ok)
	}
	if _, _, ok := Element("plain string"); ok {
		t.Fatalf("plain string should not be an element")
	}
	if _, _, ok := Element(map[string]any{"c": 1}); ok {
		t.Fatalf("map without tag should not be an element")
	}
}

func TestWalkVisitsNestedElements(t *testing.T) {
	doc := map[string]any{
		"blocks": []any{
			Elem("Para", []any{Str("a"), Space(), Elem("Emph", []any{Str("b")})}),
			Elem("Header", []any{1, []any{"sec1", []any{}, []any{}}, []any{Str("h")}}),
		},
	}
	var tags []string
	Walk(doc, func(tag string, _ any) { tags = append(tags, tag) })
	want := []string{"Para", "Str", "Space", "Emph", "Str", "Header", "Str"}
	if !reflect.DeepEqual(tags, want) {
		t.Fatalf("visited %v, want %v", tags, want)
	}
}

func TestTransformSplices(t *testing.T) {
	in := []any{Str("keep"), Str("split")}
	out := Transform(in, func(tag string, c any) any {
		if s, _ := c.(string); s == "split" {
			return []any{Str("a"), Space(), Str("b")}
		}
		return nil
	}).([]any)
	want := []any{Str("keep"), Str("a"), Space(), Str("b")}
	if !reflect.DeepEqual(out, want) {
		t.Fatalf("Transform = %v, want %v", out, want)
	}
}

func TestTransformReplacesSingleNode(t *testing.T) {
	in := []any{Elem("Emph", []any{Str("x")})}
	out := Transform(in, func(tag string, c any) any {
		if tag == "Emph" {
			return Strong(c.([]any))
		}
		return nil
	}).([]any)
	tag, _, _ := Element(out[0])
	if tag != "Strong" {
		t.Fatalf("expected Strong, got %s", tag)
	}
}

func TestAccessors(t *testing.T) {
	id, ok := HeaderID([]any{1, []any{"sec1", []any{}, []any{}}, []any{}})
	if !ok || id != "sec1" {
		t.Fatalf("HeaderID = %q %v", id, ok)
	}

	src, display, ok := MathSource([]any{Elem("DisplayMath", nil), "E=mc^2"})
	if !ok || !display || src != "E=mc^2" {
		t.Fatalf("MathSource = %q %v %v", src, display, ok)
	}
	_, display, _ = MathSource([]any{Elem("InlineMath", nil), "x"})
	if display {
		t.Fatalf("inline math reported as display")
	}

	id, title, ok := ImageIDTitle([]any{[]any{"fig1", []any{}, []any{}}, []any{}, []any{"u.jpg", "fig:cap"}})
	if !ok || id != "fig1" || title != "fig:cap" {
		t.Fatalf("ImageIDTitle = %q %q %v", id, title, ok)
	}

	id, ok = TableID([]any{[]any{"tab1", []any{}, []any{}}, nil})
	if !ok || id != "tab1" {
		t.Fatalf("TableID = %q %v", id, ok)
	}
}

func TestIsSpacer(t *testing.T) {
	if !IsSpacer(Space()) || !IsSpacer(Elem("SoftBreak", nil)) {
		t.Fatalf("Space/SoftBreak should be spacers")
	}
	if IsSpacer(Str(" ")) {
		t.Fatalf("Str is not a spacer")
	}
}
