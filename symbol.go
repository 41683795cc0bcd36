package reciter

import "fmt"

// SymbolKind enumerates the context pattern symbols.
type SymbolKind uint8

// Pattern symbols. The rule notation character is given in parentheses;
// symbols marked optional must be enabled by the dialect.
const (
	SymLiteral        SymbolKind = iota // a letter or apostrophe, matched exactly
	SymBoundary                         // ( ) any non-letter
	SymVowel                            // (#) vowel(s), see VowelMode
	SymConsonant                        // (^) exactly one consonant
	SymVoiced                           // (.) one voiced consonant
	SymSibilant                         // (&) one sibilant, or CH/SH
	SymUnvAffricate                     // (@) one unvoiced affricate, or TH/CH/SH
	SymFrontVowel                       // (+) one of E, I, Y
	SymConsonantRun                     // (:) zero or more consonants
	SymSuffix                           // (%) E, ER, ES, ED, ELY, EFUL, ING; right context only
	SymConsonantRun1                    // (*) one or more consonants, optional
	SymConsonantIorE                    // ($) consonant followed by I or E, optional
	SymDigit                            // (?) one digit, optional
	SymDigitRun                         // (_) one or more digits, optional
)

var symbolChars = map[rune]SymbolKind{
	' ': SymBoundary,
	'#': SymVowel,
	'^': SymConsonant,
	'.': SymVoiced,
	'&': SymSibilant,
	'@': SymUnvAffricate,
	'+': SymFrontVowel,
	':': SymConsonantRun,
	'%': SymSuffix,
	'*': SymConsonantRun1,
	'$': SymConsonantIorE,
	'?': SymDigit,
	'_': SymDigitRun,
}

// optionalSymbols must be enabled by a dialect.
const optionalSymbols = "*$?_"

// Symbol is one parsed element of a context pattern.
type Symbol struct {
	Kind SymbolKind
	Char rune // for SymLiteral
	Min  int  // for SymVowel in one-or-more mode: 1 for '#', 2 for '##'
}

func (s Symbol) String() string {
	if s.Kind == SymLiteral {
		return string(s.Char)
	}
	for c, k := range symbolChars {
		if k == s.Kind {
			if s.Kind == SymVowel && s.Min == 2 {
				return "##"
			}
			return string(c)
		}
	}
	return fmt.Sprintf("<symbol %d>", s.Kind)
}

// Pattern is a context pattern, stored in scan order: for a left context
// the symbol next to the core comes first.
type Pattern []Symbol

func (p Pattern) String() string {
	s := make([]byte, 0, len(p))
	for _, sym := range p {
		s = append(s, sym.String()...)
	}
	return string(s)
}
