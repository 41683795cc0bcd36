package reciter

import (
	"errors"
	"testing"
)

func TestParseRule(t *testing.T) {
	r, err := ParseRule("#:^[ED] =D", DefaultDialect())
	if err != nil {
		t.Fatal(err)
	}
	if string(r.Core) != "ED" || r.Replacement != "D" {
		t.Errorf("unexpected core/replacement: %q/%q", string(r.Core), r.Replacement)
	}
	// left context is stored nearest-first
	want := []SymbolKind{SymConsonant, SymConsonantRun, SymVowel}
	if len(r.Left) != len(want) {
		t.Fatalf("expected %d left symbols, have %d", len(want), len(r.Left))
	}
	for i, k := range want {
		if r.Left[i].Kind != k {
			t.Errorf("left symbol #%d: expected %v, got %v", i, k, r.Left[i].Kind)
		}
	}
	if len(r.Right) != 1 || r.Right[0].Kind != SymBoundary {
		t.Errorf("expected a boundary as right context, got %v", r.Right)
	}
	if r.String() != "#:^[ED] =D" {
		t.Errorf("rule should print as its source, is %q", r.String())
	}
}

func TestParseRuleKeepsReplacementVerbatim(t *testing.T) {
	r, err := ParseRule(" [A.]=EH4Y. ", nil)
	if err != nil {
		t.Fatal(err)
	}
	if string(r.Core) != "A." || r.Replacement != "EH4Y. " {
		t.Errorf("unexpected core/replacement: %q/%q", string(r.Core), r.Replacement)
	}
	r, err = ParseRule("[]]=X", nil)
	if err != nil || string(r.Core) != "]" {
		t.Errorf("expected core ']', got %v, %v", r, err)
	}
}

func TestParseRuleErrors(t *testing.T) {
	tests := []struct {
		text string
		d    *Dialect
	}{
		{"A]=X", nil},
		{"[A=X", nil},
		{"[A]", nil},
		{"[A]B", nil},
		{"[A]!=X", nil},
		{"[A]?=X", nil},
		{"%[A]=X", nil},
		{"[A]*=X", &Dialect{Name: "none"}},
	}
	for _, tt := range tests {
		_, err := ParseRule(tt.text, tt.d)
		if !errors.Is(err, ErrRuleTable) {
			t.Errorf("%q: expected rule table error, got %v", tt.text, err)
			continue
		}
		var rterr *RuleTableError
		if errors.As(err, &rterr) && rterr.Rule != tt.text {
			t.Errorf("%q: error should name the rule, names %q", tt.text, rterr.Rule)
		}
	}
}

func TestDoubleVowelSymbol(t *testing.T) {
	more := &Dialect{Name: "more", Vowels: OneOrMoreVowels}
	r, err := ParseRule("##[A]###=X", more)
	if err != nil {
		t.Fatal(err)
	}
	if len(r.Left) != 1 || r.Left[0].Min != 2 {
		t.Errorf("left '##' should be one symbol with Min 2, is %v", r.Left)
	}
	if len(r.Right) != 2 || r.Right[0].Min != 2 || r.Right[1].Min != 1 {
		t.Errorf("right '###' should be '##' then '#', is %v", r.Right)
	}
	if r.Right.String() != "###" {
		t.Errorf("pattern should print as ###, is %q", r.Right.String())
	}
	r, _ = ParseRule("[A]##=X", DefaultDialect())
	if len(r.Right) != 2 {
		t.Errorf("single vowel dialect keeps '##' as two symbols, has %d", len(r.Right))
	}
}

func TestIsCatchAll(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"[A]=AE", true},
		{" [A]=AE", false},
		{"[AB]=AE", false},
		{"[A]#=AE", false},
	}
	for _, tt := range tests {
		r, err := ParseRule(tt.text, nil)
		if err != nil {
			t.Fatal(err)
		}
		if r.IsCatchAll() != tt.want {
			t.Errorf("%q: IsCatchAll should be %v", tt.text, tt.want)
		}
	}
}
