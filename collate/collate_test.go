package collate

import (
	"errors"
	"testing"
)

func TestRegistryLookup(t *testing.T) {
	reg := NewRegistry()
	tests := []struct {
		Uri  string
		Want string
	}{
		{Uri: "", Want: CodepointURI},
		{Uri: CodepointURI, Want: CodepointURI},
		{Uri: CaseBlindURI, Want: CaseBlindURI},
		{Uri: UcaURI + "?lang=fr&strength=primary", Want: UcaURI + "?lang=fr&strength=primary"},
	}
	for _, tt := range tests {
		coll, err := reg.Lookup(tt.Uri)
		if err != nil {
			t.Errorf("lookup(%q): unexpected error: %s", tt.Uri, err)
			continue
		}
		if coll.Uri() != tt.Want {
			t.Errorf("lookup(%q): want uri %q, got %q", tt.Uri, tt.Want, coll.Uri())
		}
	}
}

func TestRegistryUnknown(t *testing.T) {
	reg := NewRegistry()
	_, err := reg.Lookup("http://example.com/no-such-collation")
	if !errors.Is(err, ErrUnknown) {
		t.Errorf("unknown uri should give ErrUnknown, got %v", err)
	}
}

func TestCodepoint(t *testing.T) {
	coll, _ := NewRegistry().Lookup(CodepointURI)
	if coll.Compare("abc", "abd") >= 0 {
		t.Errorf("abc should sort before abd")
	}
	if coll.Compare("abc", "ABC") <= 0 {
		t.Errorf("codepoint comparison is case sensitive")
	}
	m, err := Substring(coll)
	if err != nil {
		t.Errorf("codepoint collation should match substrings: %s", err)
		return
	}
	if !m.Contains("tattoo", "att") {
		t.Errorf("tattoo should contain att")
	}
	before, ok := m.CutBefore("tattoo", "tt")
	if !ok || before != "ta" {
		t.Errorf("cut before tt: want ta, got %q", before)
	}
	after, ok := m.CutAfter("tattoo", "tt")
	if !ok || after != "oo" {
		t.Errorf("cut after tt: want oo, got %q", after)
	}
	if _, ok := m.CutBefore("tattoo", "x"); ok {
		t.Errorf("cut should report a missing substring")
	}
}

func TestCaseBlind(t *testing.T) {
	coll, _ := NewRegistry().Lookup(CaseBlindURI)
	if coll.Compare("HELLO", "hello") != 0 {
		t.Errorf("ascii letters should compare caseless")
	}
	if coll.Compare("héllo", "HÉLLO") == 0 {
		t.Errorf("folding is restricted to ascii")
	}
	m, err := Substring(coll)
	if err != nil {
		t.Errorf("caseblind collation should match substrings: %s", err)
		return
	}
	if !m.StartsWith("Tattoo", "tAT") {
		t.Errorf("caseless prefix should match")
	}
	before, ok := m.CutBefore("Tattoo", "TT")
	if !ok || before != "Ta" {
		t.Errorf("cut positions apply to the original input, got %q", before)
	}
}

func TestUcaStrength(t *testing.T) {
	reg := NewRegistry()
	coll, err := reg.Lookup(UcaURI + "?strength=primary")
	if err != nil {
		t.Errorf("fail to build uca collation: %s", err)
		return
	}
	if coll.Compare("HELLO", "hello") != 0 {
		t.Errorf("primary strength should ignore case")
	}
	if _, err := Substring(coll); err == nil {
		t.Errorf("uca collations do not match substrings")
	}
}

func TestUcaNumeric(t *testing.T) {
	coll, err := NewRegistry().Lookup(UcaURI + "?numeric=yes")
	if err != nil {
		t.Errorf("fail to build uca collation: %s", err)
		return
	}
	if coll.Compare("item9", "item10") >= 0 {
		t.Errorf("numeric ordering should sort item9 before item10")
	}
}

func TestUcaBadLang(t *testing.T) {
	_, err := NewRegistry().Lookup(UcaURI + "?lang=!!")
	if !errors.Is(err, ErrUnknown) {
		t.Errorf("invalid language tag should give ErrUnknown, got %v", err)
	}
}
