package chars

import (
	"testing"
)

func TestLength(t *testing.T) {
	tests := []struct {
		Input string
		Want  int
	}{
		{Input: "", Want: 0},
		{Input: "hello", Want: 5},
		{Input: "héllo", Want: 5},
		{Input: "a\U0001D11Eb", Want: 3},
	}
	for _, tt := range tests {
		if got := Length(tt.Input); got != tt.Want {
			t.Errorf("length(%q): want %d, got %d", tt.Input, tt.Want, got)
		}
	}
}

func TestSlice(t *testing.T) {
	tests := []struct {
		Input string
		Start int
		End   int
		Want  string
	}{
		{Input: "motive", Start: 2, End: 5, Want: "oti"},
		{Input: "motive", Start: 1, End: 7, Want: "motive"},
		{Input: "motive", Start: -3, End: 3, Want: "mo"},
		{Input: "motive", Start: 5, End: 3, Want: ""},
		{Input: "motive", Start: 10, End: 20, Want: ""},
		{Input: "a\U0001D11Eb", Start: 2, End: 3, Want: "\U0001D11E"},
		{Input: "a\U0001D11Eb", Start: 3, End: 4, Want: "b"},
	}
	for _, tt := range tests {
		if got := Slice(tt.Input, tt.Start, tt.End); got != tt.Want {
			t.Errorf("slice(%q, %d, %d): want %q, got %q", tt.Input, tt.Start, tt.End, tt.Want, got)
		}
	}
}

func TestTranslate(t *testing.T) {
	tests := []struct {
		Input string
		From  string
		To    string
		Want  string
	}{
		{Input: "bar", From: "abc", To: "ABC", Want: "BAr"},
		{Input: "--aaa--", From: "abc-", To: "ABC", Want: "AAA"},
		{Input: "abcdabc", From: "abc", To: "AB", Want: "ABdAB"},
		{Input: "abc", From: "", To: "xyz", Want: "abc"},
		{Input: "a\U0001D11Eb", From: "\U0001D11E", To: "-", Want: "a-b"},
	}
	for _, tt := range tests {
		if got := Translate(tt.Input, tt.From, tt.To); got != tt.Want {
			t.Errorf("translate(%q, %q, %q): want %q, got %q", tt.Input, tt.From, tt.To, tt.Want, got)
		}
	}
}
