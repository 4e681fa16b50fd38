package eval

import (
	"testing"

	"github.com/midbel/xdm/seq"
)

func TestVariable(t *testing.T) {
	ctx := NewContext(nil)
	ctx.Define("x", NewValueFromLiteral(int64(7)))

	it, err := Variable("x").Iterate(ctx)
	if err != nil {
		t.Errorf("unexpected error: %s", err)
		return
	}
	items, _ := seq.Drain(it)
	if !sameValues(values(items), []any{int64(7)}) {
		t.Errorf("variable: want 7, got %v", values(items))
	}
	if _, err := Variable("y").Iterate(ctx); err == nil {
		t.Errorf("unbound variable should fail")
	}
}

func TestNest(t *testing.T) {
	ctx := NewContext(nil)
	ctx.Define("x", NewValueFromLiteral("outer"))

	sub := ctx.Nest()
	sub.Define("x", NewValueFromLiteral("inner"))

	it, _ := Variable("x").Iterate(sub)
	items, _ := seq.Drain(it)
	if !sameValues(values(items), []any{"inner"}) {
		t.Errorf("nested binding should shadow, got %v", values(items))
	}
	it, _ = Variable("x").Iterate(ctx)
	items, _ = seq.Drain(it)
	if !sameValues(values(items), []any{"outer"}) {
		t.Errorf("outer binding should survive nesting, got %v", values(items))
	}
}

func TestValueRestart(t *testing.T) {
	expr := NewValue(seq.NewLiteral(int64(1)), seq.NewLiteral(int64(2)))
	it, err := expr.Iterate(NewContext(nil))
	if err != nil {
		t.Errorf("unexpected error: %s", err)
		return
	}
	it.Next()
	items, _ := seq.Drain(it.Restart())
	if !sameValues(values(items), []any{int64(1), int64(2)}) {
		t.Errorf("restart should replay the value, got %v", values(items))
	}
}
