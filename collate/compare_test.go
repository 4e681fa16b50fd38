package collate

import (
	"errors"
	"math"
	"testing"
	"time"
)

func codepointComparer() *Comparer {
	coll, _ := NewRegistry().Lookup(CodepointURI)
	return NewComparer(coll)
}

func TestComparer(t *testing.T) {
	cmp := codepointComparer()
	tests := []struct {
		Left  any
		Right any
		Want  int
	}{
		{Left: int64(1), Right: int64(2), Want: -1},
		{Left: int64(2), Right: 1.5, Want: 1},
		{Left: 2.0, Right: int64(2), Want: 0},
		{Left: "abc", Right: "abd", Want: -1},
		{Left: false, Right: true, Want: -1},
		{Left: true, Right: true, Want: 0},
	}
	for _, tt := range tests {
		got, err := cmp.Compare(tt.Left, tt.Right)
		if err != nil {
			t.Errorf("compare(%v, %v): unexpected error: %s", tt.Left, tt.Right, err)
			continue
		}
		if got != tt.Want {
			t.Errorf("compare(%v, %v): want %d, got %d", tt.Left, tt.Right, tt.Want, got)
		}
	}
}

func TestComparerNaN(t *testing.T) {
	cmp := codepointComparer()
	got, err := cmp.Compare(math.NaN(), 1.0)
	if err != nil || got != -1 {
		t.Errorf("NaN sorts before every number, got %d (%v)", got, err)
	}
	ok, _ := cmp.Equal(math.NaN(), math.NaN())
	if !ok {
		t.Errorf("NaN is equal to itself under the total order")
	}
	ok, _ = cmp.Equal(math.NaN(), 1.0)
	if ok {
		t.Errorf("NaN is not equal to a number")
	}
}

func TestComparerMismatch(t *testing.T) {
	cmp := codepointComparer()
	pairs := [][2]any{
		{int64(1), "1"},
		{"true", true},
		{time.Now(), "now"},
		{nil, int64(0)},
	}
	for _, p := range pairs {
		if _, err := cmp.Compare(p[0], p[1]); !errors.Is(err, ErrType) {
			t.Errorf("compare(%v, %v): want ErrType, got %v", p[0], p[1], err)
		}
	}
}

func TestComparerDescending(t *testing.T) {
	cmp := codepointComparer().Descending()
	got, err := cmp.Compare(int64(1), int64(2))
	if err != nil {
		t.Errorf("unexpected error: %s", err)
		return
	}
	if got != 1 {
		t.Errorf("descending compare(1, 2): want 1, got %d", got)
	}
	ok, err := cmp.Equal("a", "a")
	if err != nil || !ok {
		t.Errorf("equality should survive the flip")
	}
}
