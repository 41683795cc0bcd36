package lextext

import (
	"strings"
	"testing"

	"github.com/npillmayer/reciter"
)

func TestLoadExceptions(t *testing.T) {
	src := `\message{lexicon}
\rules{A}
[A]=AE
}
\exceptions{
% brand names
commodore=KAA4MAHDOHR
ATARI=AHTAA4RIY

}
`
	lex := reciter.NewTrieLexicon()
	if err := LoadExceptions(lex, strings.NewReader(src)); err != nil {
		t.Fatal(err)
	}
	if lex.Len() != 2 {
		t.Fatalf("expected 2 exceptions, have %d", lex.Len())
	}
	if repl, ok := lex.Lookup("COMMODORE"); !ok || repl != "KAA4MAHDOHR" {
		t.Errorf("COMMODORE should map to KAA4MAHDOHR, is %q (%v)", repl, ok)
	}
	if _, ok := lex.Lookup("[A]"); ok {
		t.Errorf("rules must not be loaded as exceptions")
	}
}

func TestMalformedException(t *testing.T) {
	src := `\exceptions{
NOSEPARATOR
}
`
	lex := reciter.NewTrieLexicon()
	if err := LoadExceptions(lex, strings.NewReader(src)); err == nil {
		t.Fatalf("expected error for entry without '='")
	}
}

func TestUnclosedExceptions(t *testing.T) {
	lex := reciter.NewTrieLexicon()
	err := LoadExceptions(lex, strings.NewReader("\\exceptions{\nA=B\n"))
	if err == nil {
		t.Fatalf("expected error for unclosed block")
	}
	if lex.Len() != 1 {
		t.Errorf("entries before the error should be kept, have %d", lex.Len())
	}
}
