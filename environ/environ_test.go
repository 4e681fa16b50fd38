package environ

import (
	"errors"
	"testing"
)

func TestResolve(t *testing.T) {
	env := Empty[int]()
	env.Define("answer", 42)
	got, err := env.Resolve("answer")
	if err != nil {
		t.Errorf("unexpected error: %s", err)
		return
	}
	if got != 42 {
		t.Errorf("resolve: want 42, got %d", got)
	}
	if _, err := env.Resolve("missing"); !errors.Is(err, ErrDefined) {
		t.Errorf("missing identifier should give ErrDefined, got %v", err)
	}
}

func TestEnclosed(t *testing.T) {
	outer := Empty[string]()
	outer.Define("shared", "outer")
	outer.Define("only", "outer")

	inner := Enclosed(outer)
	inner.Define("shared", "inner")

	got, _ := inner.Resolve("shared")
	if got != "inner" {
		t.Errorf("inner binding should shadow outer, got %q", got)
	}
	got, _ = inner.Resolve("only")
	if got != "outer" {
		t.Errorf("outer binding should stay visible, got %q", got)
	}
	if !inner.Exists("only") {
		t.Errorf("exists should look through enclosing scopes")
	}
	got, _ = outer.Resolve("shared")
	if got != "outer" {
		t.Errorf("inner definitions should not leak, got %q", got)
	}
}

func TestNames(t *testing.T) {
	env := Empty[int]()
	env.Define("b", 2)
	env.Define("a", 1)
	names := env.Names()
	if len(names) != 2 || names[0] != "a" || names[1] != "b" {
		t.Errorf("names should be sorted, got %v", names)
	}
}
