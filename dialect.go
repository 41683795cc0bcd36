package reciter

import "strings"

// VowelMode selects the semantics of the '#' pattern symbol.
type VowelMode uint8

const (
	// SingleVowel: '#' matches exactly one vowel (Reciter, S.A.M.).
	SingleVowel VowelMode = iota
	// OneOrMoreVowels: '#' matches one or more vowels greedily, '##' two or
	// more (NRL Report 7948 notation).
	OneOrMoreVowels
)

func (m VowelMode) String() string {
	if m == OneOrMoreVowels {
		return "one-or-more"
	}
	return "single"
}

// DigraphMode selects how '&' and '@' recognize the digraphs CH, SH and TH.
type DigraphMode uint8

const (
	// DigraphsFixed checks digraphs correctly. In right contexts the
	// two-letter forms are tested before the single-letter classes, since
	// C, S and T are sibilants/affricates themselves.
	DigraphsFixed DigraphMode = iota
	// DigraphsOriginal reproduces the defects of the shipped Reciter
	// binaries: '@' never matches a digraph (the H is compared with T/C/S
	// without reading the next character), and right-context '&' tests the
	// class first and then looks for the reversed pairs HC and HS.
	DigraphsOriginal
)

func (m DigraphMode) String() string {
	if m == DigraphsOriginal {
		return "original"
	}
	return "fixed"
}

// Dialect bundles the matcher behavior toggles belonging to one historical
// rule table. A Dialect must not be modified once a Table has been built
// with it.
type Dialect struct {
	Name    string
	Vowels  VowelMode
	Digraph DigraphMode
	// Symbols lists the optional pattern symbols accepted in contexts,
	// any of "*$?_".
	Symbols string
	// PeriodQuirk reproduces the legacy period handling: a period before a
	// digit is dropped, a period before anything else also swallows the
	// following character.
	PeriodQuirk bool
}

// Enables reports whether the optional symbol c is enabled.
func (d *Dialect) Enables(c rune) bool {
	return d != nil && strings.ContainsRune(d.Symbols, c)
}

func (d *Dialect) String() string {
	if d == nil {
		return "<nil dialect>"
	}
	return d.Name + "(vowels=" + d.Vowels.String() + ",digraphs=" + d.Digraph.String() +
		",symbols=" + d.Symbols + ")"
}

// DefaultDialect returns a fresh Reciter dialect without any historical
// defects.
func DefaultDialect() *Dialect {
	return &Dialect{
		Name:    "default",
		Vowels:  SingleVowel,
		Digraph: DigraphsFixed,
		Symbols: "*$",
	}
}
