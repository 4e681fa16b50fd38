package seq

import (
	"testing"
)

func fromInts(values ...int64) Iterator {
	var items Sequence
	for _, v := range values {
		items.Append(NewLiteral(v))
	}
	return FromSequence(items)
}

func drainInts(t *testing.T, it Iterator) []int64 {
	t.Helper()
	items, err := Drain(it)
	if err != nil {
		t.Errorf("unexpected error: %s", err)
		return nil
	}
	var got []int64
	for i := range items {
		n, ok := items[i].Value().(int64)
		if !ok {
			t.Errorf("unexpected item type %T", items[i].Value())
			return nil
		}
		got = append(got, n)
	}
	return got
}

func sameInts(a, b []int64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestIteratorProtocol(t *testing.T) {
	it := fromInts(10, 20)
	if it.Position() != 0 {
		t.Errorf("position before first next: want 0, got %d", it.Position())
	}
	item, err := it.Next()
	if err != nil || item == nil {
		t.Errorf("fail to get first item")
		return
	}
	if it.Position() != 1 {
		t.Errorf("position after first next: want 1, got %d", it.Position())
	}
	if it.Current() != item {
		t.Errorf("current item does not match last next")
	}
	it.Next()
	item, err = it.Next()
	if err != nil || item != nil {
		t.Errorf("exhausted iterator should give nil item")
	}
	if it.Position() != Exhausted {
		t.Errorf("position after exhaustion: want %d, got %d", Exhausted, it.Position())
	}
	item, _ = it.Next()
	if item != nil {
		t.Errorf("exhausted iterator should stay exhausted")
	}
}

func TestRestartIndependent(t *testing.T) {
	it := fromInts(1, 2, 3)
	it.Next()
	other := it.Restart()
	if other.Position() != 0 {
		t.Errorf("restarted iterator should not have started")
	}
	got := drainInts(t, other)
	if !sameInts(got, []int64{1, 2, 3}) {
		t.Errorf("restart should replay from the start, got %v", got)
	}
	rest := drainInts(t, it)
	if !sameInts(rest, []int64{2, 3}) {
		t.Errorf("origin should keep its own cursor, got %v", rest)
	}
}

func TestWindow(t *testing.T) {
	tests := []struct {
		From int
		To   int
		Want []int64
	}{
		{From: 2, To: 4, Want: []int64{2, 3, 4}},
		{From: 1, To: -1, Want: []int64{1, 2, 3, 4, 5}},
		{From: 4, To: -1, Want: []int64{4, 5}},
		{From: 3, To: 2, Want: nil},
		{From: 9, To: -1, Want: nil},
	}
	for _, tt := range tests {
		it := Window(fromInts(1, 2, 3, 4, 5), tt.From, tt.To)
		got := drainInts(t, it)
		if !sameInts(got, tt.Want) {
			t.Errorf("window(%d, %d): want %v, got %v", tt.From, tt.To, tt.Want, got)
		}
	}
}

func TestWindowPassthrough(t *testing.T) {
	src := fromInts(1, 2, 3)
	if Window(src, 1, -1) != src {
		t.Errorf("full window should give back the source unchanged")
	}
}

func TestConcatRestart(t *testing.T) {
	it := Concat(fromInts(1, 2), fromInts(3))
	it.Next()
	it.Next()
	got := drainInts(t, it.Restart())
	if !sameInts(got, []int64{1, 2, 3}) {
		t.Errorf("restart of concat: want [1 2 3], got %v", got)
	}
}

func TestReverse(t *testing.T) {
	got := drainInts(t, Reverse(fromInts(1, 2, 3)))
	if !sameInts(got, []int64{3, 2, 1}) {
		t.Errorf("reverse: want [3 2 1], got %v", got)
	}
	got = drainInts(t, Reverse(Reverse(fromInts(1, 2, 3))))
	if !sameInts(got, []int64{1, 2, 3}) {
		t.Errorf("reverse twice should give the source back, got %v", got)
	}
	got = drainInts(t, Reverse(Empty()))
	if len(got) != 0 {
		t.Errorf("reverse of empty should be empty, got %v", got)
	}
}

func TestMapFilter(t *testing.T) {
	double := func(item Item) (Item, error) {
		n, _ := item.Value().(int64)
		return NewLiteral(n * 2), nil
	}
	odd := func(item Item) (bool, error) {
		n, _ := item.Value().(int64)
		return n%2 == 1, nil
	}
	got := drainInts(t, Map(Filter(fromInts(1, 2, 3, 4), odd), double))
	if !sameInts(got, []int64{2, 6}) {
		t.Errorf("map over filter: want [2 6], got %v", got)
	}
}

func TestValues(t *testing.T) {
	var got []int64
	for item, err := range Values(fromInts(7, 8)) {
		if err != nil {
			t.Errorf("unexpected error: %s", err)
			return
		}
		n, _ := item.Value().(int64)
		got = append(got, n)
	}
	if !sameInts(got, []int64{7, 8}) {
		t.Errorf("values: want [7 8], got %v", got)
	}
}
