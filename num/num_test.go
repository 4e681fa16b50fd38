package num

import (
	"math"
	"testing"
)

func TestCoerce(t *testing.T) {
	tests := []struct {
		Input any
		Want  float64
	}{
		{Input: int64(42), Want: 42},
		{Input: 1.5, Want: 1.5},
		{Input: true, Want: 1},
		{Input: false, Want: 0},
		{Input: " 12.5 ", Want: 12.5},
		{Input: "-1e3", Want: -1000},
		{Input: "INF", Want: math.Inf(1)},
		{Input: "-INF", Want: math.Inf(-1)},
	}
	for _, tt := range tests {
		if got := Coerce(tt.Input); got != tt.Want {
			t.Errorf("coerce(%v): want %v, got %v", tt.Input, tt.Want, got)
		}
	}
}

func TestCoerceNaN(t *testing.T) {
	inputs := []any{"abc", "", "0x10", "1_000", "Infinity", nil}
	for _, in := range inputs {
		if got := Coerce(in); !math.IsNaN(got) {
			t.Errorf("coerce(%v): want NaN, got %v", in, got)
		}
	}
	if !math.IsNaN(Coerce("NaN")) {
		t.Errorf("coerce(NaN) should give NaN")
	}
}

func TestToFloatError(t *testing.T) {
	if _, err := ToFloat("abc"); err == nil {
		t.Errorf("structural conversion of abc should fail")
	}
	if _, err := ToFloat(nil); err == nil {
		t.Errorf("structural conversion of nil should fail")
	}
	f, err := ToFloat("2.5")
	if err != nil || f != 2.5 {
		t.Errorf("structural conversion of 2.5: got %v, %v", f, err)
	}
}

func TestRound(t *testing.T) {
	tests := []struct {
		Input float64
		Want  float64
	}{
		{Input: 2.5, Want: 3},
		{Input: 2.4999, Want: 2},
		{Input: -2.5, Want: -2},
		{Input: -2.51, Want: -3},
		{Input: 0, Want: 0},
	}
	for _, tt := range tests {
		got, err := Round(tt.Input)
		if err != nil {
			t.Errorf("round(%v): unexpected error: %s", tt.Input, err)
			continue
		}
		if got != tt.Want {
			t.Errorf("round(%v): want %v, got %v", tt.Input, tt.Want, got)
		}
	}
	got, _ := Round(int64(7))
	if got != int64(7) {
		t.Errorf("round of an integer should keep its type, got %T", got)
	}
	got, _ = Round(math.NaN())
	if f, ok := got.(float64); !ok || !math.IsNaN(f) {
		t.Errorf("round(NaN) should give NaN, got %v", got)
	}
}

func TestRoundHalfToEven(t *testing.T) {
	tests := []struct {
		Input float64
		Scale int
		Want  float64
	}{
		{Input: 0.5, Scale: 0, Want: 0},
		{Input: 1.5, Scale: 0, Want: 2},
		{Input: 2.5, Scale: 0, Want: 2},
		{Input: 3.567812e3, Scale: 2, Want: 3567.81},
		{Input: 4.7564e-3, Scale: 2, Want: 0},
	}
	for _, tt := range tests {
		got, err := RoundHalfToEven(tt.Input, tt.Scale)
		if err != nil {
			t.Errorf("round-half-to-even(%v, %d): unexpected error: %s", tt.Input, tt.Scale, err)
			continue
		}
		if got != tt.Want {
			t.Errorf("round-half-to-even(%v, %d): want %v, got %v", tt.Input, tt.Scale, tt.Want, got)
		}
	}
	got, _ := RoundHalfToEven(int64(35600), -2)
	if got != int64(35600) {
		t.Errorf("round-half-to-even(35600, -2): want 35600, got %v", got)
	}
	got, _ = RoundHalfToEven(int64(150), -2)
	if got != int64(200) {
		t.Errorf("round-half-to-even(150, -2): want 200, got %v", got)
	}
}

func TestAbs(t *testing.T) {
	got, _ := Abs(math.Copysign(0, -1))
	f, ok := got.(float64)
	if !ok || math.Signbit(f) {
		t.Errorf("abs(-0) should give positive zero, got %v", got)
	}
	got, _ = Abs(int64(-5))
	if got != int64(5) {
		t.Errorf("abs(-5): want 5, got %v", got)
	}
}

func TestFloorCeiling(t *testing.T) {
	got, _ := Floor(-1.5)
	if got != -2.0 {
		t.Errorf("floor(-1.5): want -2, got %v", got)
	}
	got, _ = Ceiling(-1.5)
	if got != -1.0 {
		t.Errorf("ceiling(-1.5): want -1, got %v", got)
	}
}

func TestFormatFloat(t *testing.T) {
	tests := []struct {
		Input float64
		Want  string
	}{
		{Input: math.NaN(), Want: "NaN"},
		{Input: math.Inf(1), Want: "INF"},
		{Input: math.Inf(-1), Want: "-INF"},
		{Input: 1.5, Want: "1.5"},
		{Input: -3, Want: "-3"},
	}
	for _, tt := range tests {
		if got := FormatFloat(tt.Input); got != tt.Want {
			t.Errorf("format(%v): want %q, got %q", tt.Input, tt.Want, got)
		}
	}
}
