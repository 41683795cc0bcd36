package reciter

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

var numberRules = []string{
	"[.]= POYNT",
	"[1]=WAHN",
	"[5]=FAYV",
	"[A]=AY",
	"[B]=BIY",
}

func process(t *testing.T, table *Table, text string, p Policy) (string, PhraseResult, error) {
	t.Helper()
	var out OutputStream
	res, err := ProcessPhrase(table, NewPhrase(text), &out, p)
	return out.String(), res, err
}

func TestDecimalPoint(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "reciter.mainloop")
	defer teardown()
	//
	table := mustTable(t, nil, numberRules...)
	if out, _, _ := process(t, table, "1.5", StrictPolicy); out != "WAHN POYNTFAYV" {
		t.Errorf("expected decimal point, got %q", out)
	}
	if out, _, _ := process(t, table, "A.B", StrictPolicy); out != "AY.BIY" {
		t.Errorf("expected pause, got %q", out)
	}
	if out, _, _ := process(t, table, "A.", StrictPolicy); out != "AY." {
		t.Errorf("expected trailing pause, got %q", out)
	}
}

func TestPeriodQuirk(t *testing.T) {
	quirk := &Dialect{Name: "quirk", PeriodQuirk: true}
	table := mustTable(t, quirk, numberRules...)
	if out, _, _ := process(t, table, "1.5", StrictPolicy); out != "WAHNFAYV" {
		t.Errorf("period before digit should be dropped, got %q", out)
	}
	if out, _, _ := process(t, table, "A.BA", StrictPolicy); out != "AY.AY" {
		t.Errorf("period should swallow the next character, got %q", out)
	}
	if out, _, err := process(t, table, "A.", StrictPolicy); err != nil || out != "AY." {
		t.Errorf("pause at end of phrase should stop at the terminator, got %q, %v", out, err)
	}
}

func TestUnclassifiedCharacters(t *testing.T) {
	table := mustTable(t, nil, numberRules...)
	out, _, err := process(t, table, "A B\tAé", StrictPolicy)
	if err != nil {
		t.Fatal(err)
	}
	if out != "AY BIY AY " {
		t.Errorf("expected boundaries for unclassified characters, got %q", out)
	}
}

func TestStrictPolicy(t *testing.T) {
	table := mustTable(t, nil, numberRules...)
	_, _, err := process(t, table, "AC", StrictPolicy)
	if !errors.Is(err, ErrNoRuleMatched) {
		t.Fatalf("expected no-match error, got %v", err)
	}
	var nomatch *NoRuleMatchedError
	if !errors.As(err, &nomatch) {
		t.Fatalf("expected *NoRuleMatchedError, got %T", err)
	}
	if nomatch.Pos != 2 || nomatch.Char != 'C' || nomatch.Bucket.String() != "C" {
		t.Errorf("unexpected error details: %v", nomatch)
	}
}

func TestLenientPolicy(t *testing.T) {
	table := mustTable(t, nil, numberRules...)
	out, res, err := process(t, table, "ACB", LenientPolicy)
	if err != nil {
		t.Fatal(err)
	}
	if out != "AY BIY" {
		t.Errorf("expected placeholder for C, got %q", out)
	}
	if len(res.Warnings) != 1 || res.Warnings[0].Char != 'C' {
		t.Errorf("expected one warning for C, got %v", res.Warnings)
	}
	custom := Policy{Placeholder: "?"}
	if out, _, _ := process(t, table, "CC", custom); out != "??" {
		t.Errorf("expected custom placeholders, got %q", out)
	}
}

func TestInvalidBuffer(t *testing.T) {
	table := mustTable(t, nil, numberRules...)
	var out OutputStream
	_, err := ProcessPhrase(table, &InputBuffer{chars: []rune("AB")}, &out, StrictPolicy)
	if !errors.Is(err, ErrBufferInvariant) {
		t.Errorf("expected buffer invariant error, got %v", err)
	}
	if _, err := ProcessPhrase(nil, NewPhrase("A"), &out, StrictPolicy); err == nil {
		t.Errorf("expected error for missing table")
	}
}

type mapLexicon map[string]string

func (m mapLexicon) Lookup(word string) (string, bool) {
	r, ok := m[word]
	return r, ok
}

func TestLexiconAtWordStart(t *testing.T) {
	table := mustTable(t, nil, numberRules...)
	lex := mapLexicon{"AB": "EXCEPTION"}
	var out OutputStream
	if _, err := processPhrase(table, lex, NewPhrase("AB BAB ABA"), &out, StrictPolicy); err != nil {
		t.Fatal(err)
	}
	if out.String() != "EXCEPTION BIYAYBIY AYBIYAY" {
		t.Errorf("lexicon should only replace whole words, got %q", out.String())
	}
}

func TestDeterminism(t *testing.T) {
	table := mustTable(t, nil, numberRules...)
	first, _, _ := process(t, table, "AB 1.5 BA.", LenientPolicy)
	for i := 0; i < 10; i++ {
		if out, _, _ := process(t, table, "AB 1.5 BA.", LenientPolicy); out != first {
			t.Fatalf("run %d differs: %q vs %q", i, out, first)
		}
	}
}
