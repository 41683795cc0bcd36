package reciter

import (
	"strings"

	"github.com/npillmayer/reciter/pagemap"
)

// Features is the feature bitset of an input character.
type Features uint8

// Character features. A character may carry several of them.
const (
	FDigit   Features = 1 << iota // 0-9
	FPunct                        // punctuation that does not end a word, digits included
	FUnvAff                       // '@' unvoiced affricate (non-palate): DJLNRSTZ
	FVoiced                       // '.' voiced consonant: BDGJLMNRVWZ
	FSibilant                     // '&' sibilant: CGJSXZ
	FConsonant                    // '^' consonant: BCDFGHJKLMNPQRSTVWXZ
	FVowel                        // '#' vowel: AEIOUY
	FLetter                       // letters and the apostrophe; every letter has a bucket
)

// Sentinel characters of an InputBuffer.
const (
	Boundary   rune = ' '    // leading word boundary of every phrase
	Terminator rune = '\x1b' // end of phrase; never part of normal text
)

// features is built once and never written afterwards.
var features = buildFeatures()

func buildFeatures() *pagemap.Map {
	m := &pagemap.Map{}
	const punct = "!\"#$%'*+,-./0123456789:;<=>?@^`~"
	upper := "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	both := func(s string) string { return s + strings.ToLower(s) }
	m.Or(punct, uint8(FPunct))
	m.Or("0123456789", uint8(FDigit))
	m.Or(both(upper)+"'", uint8(FLetter))
	m.Or(both("AEIOUY"), uint8(FVowel))
	m.Or(both("BCDFGHJKLMNPQRSTVWXZ"), uint8(FConsonant))
	m.Or(both("CGJSXZ"), uint8(FSibilant))
	m.Or(both("BDGJLMNRVWZ"), uint8(FVoiced))
	m.Or(both("DJLNRSTZ"), uint8(FUnvAff))
	return m
}

// Classify returns the feature set of r. Characters outside the feature
// table, including space, brackets and the terminator, have no features.
func Classify(r rune) Features {
	return Features(features.Lookup(r))
}

// Has reports whether all bits of f2 are set in f.
func (f Features) Has(f2 Features) bool {
	return f&f2 == f2
}

// IsDigit reports whether r is a digit.
func IsDigit(r rune) bool { return Classify(r).Has(FDigit) }

// IsPunct reports whether r is word-internal punctuation (digits included).
func IsPunct(r rune) bool { return Classify(r).Has(FPunct) }

// IsLetter reports whether r is a letter or the apostrophe.
func IsLetter(r rune) bool { return Classify(r).Has(FLetter) }

// IsVowel reports whether r is a vowel.
func IsVowel(r rune) bool { return Classify(r).Has(FVowel) }

// IsConsonant reports whether r is a consonant.
func IsConsonant(r rune) bool { return Classify(r).Has(FConsonant) }

// IsVoiced reports whether r is a voiced consonant.
func IsVoiced(r rune) bool { return Classify(r).Has(FVoiced) }

// IsSibilant reports whether r is a sibilant.
func IsSibilant(r rune) bool { return Classify(r).Has(FSibilant) }

// IsUnvoicedAffricate reports whether r is an unvoiced affricate.
func IsUnvoicedAffricate(r rune) bool { return Classify(r).Has(FUnvAff) }

// IsFrontVowel reports whether r is one of E, I, Y.
func IsFrontVowel(r rune) bool {
	switch r {
	case 'E', 'I', 'Y', 'e', 'i', 'y':
		return true
	}
	return false
}

func (f Features) String() string {
	if f == 0 {
		return "none"
	}
	names := []string{"digit", "punct", "unvaff", "voiced", "sibilant", "consonant", "vowel", "letter"}
	var parts []string
	for i, n := range names {
		if f&(1<<i) != 0 {
			parts = append(parts, n)
		}
	}
	return strings.Join(parts, "|")
}
