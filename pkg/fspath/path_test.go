package fspath

import (
	"testing"
)

func TestValidate(t *testing.T) {
	for _, name := range []string{"", ".", "..", "a/b", "/", "foo/"} {
		if err := Validate(name); err == nil {
			t.Fatalf("expected error for component '%s'", name)
		}
		if IsValid(name) {
			t.Fatalf("component '%s' must not be valid", name)
		}
	}
	for _, name := range []string{"a", "foo.txt", "...", "a b", "-", "..."} {
		if err := Validate(name); err != nil {
			t.Fatalf("unexpected error for component '%s': %v", name, err)
		}
	}
}

func TestPath(t *testing.T) {
	root := Root()
	if !root.IsAbs() || root.Len() != 0 {
		t.Fatalf("root must be empty and absolute")
	}
	if root.String() != "/" {
		t.Fatalf("invalid root rendering '%s'", root.String())
	}

	p := root.Append("foo").Append("bar")
	if p.String() != "/foo/bar" {
		t.Fatalf("invalid rendering '%s'", p.String())
	}
	if p.Base() != "bar" {
		t.Fatalf("invalid base '%s'", p.Base())
	}
	if !p.Parent().Equal(root.Append("foo")) {
		t.Fatalf("invalid parent '%s'", p.Parent().String())
	}
	if p.Equal(root.Append("foo").Append("baz")) {
		t.Fatal("paths with different components must not be equal")
	}
	if p.Equal(Rel("foo", "bar")) {
		t.Fatal("absolute and relative paths must not be equal")
	}

	rel := Rel("foo", "bar")
	if rel.IsAbs() {
		t.Fatal("Rel must create a relative path")
	}
	if rel.String() != "foo/bar" {
		t.Fatalf("invalid rendering '%s'", rel.String())
	}
	if Up().String() != ".." {
		t.Fatalf("invalid ascent rendering '%s'", Up().String())
	}

	// Append must not share backing storage with the receiver
	base := Rel("a")
	first := base.Append("b")
	second := base.Append("c")
	if !first.Equal(Rel("a", "b")) || !second.Equal(Rel("a", "c")) {
		t.Fatalf("append aliasing: '%s' / '%s'", first.String(), second.String())
	}
}
