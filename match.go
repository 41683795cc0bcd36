package reciter

import (
	"github.com/npillmayer/schuko/tracing"
)

// Match is the outcome of a successful rule search.
type Match struct {
	Rule        *Rule
	Consumed    int // always len(Rule.Core)
	Replacement string
}

// MatchAt searches bucket b for the first rule matching input in at
// position pos, interpreting context symbols according to dialect d.
//
// Each rule is tested in bucket order in three phases: the core literally
// at pos, the left context scanning backwards from pos-1, and the right
// context scanning forward from just past the core. The first rule passing
// all three phases wins. Context matches only gate a rule; the number of
// characters consumed is always the core length.
func MatchAt(b *Bucket, in *InputBuffer, pos int, d *Dialect) (Match, bool) {
	if b == nil || in == nil || pos <= 0 || pos >= in.End() {
		return Match{}, false
	}
	if d == nil {
		d = DefaultDialect()
	}
	m := matcher{
		d:       d,
		in:      in,
		search:  catTracer(CatSearch),
		search2: catTracer(CatSearch2),
		erules:  catTracer(CatERules),
	}
	for _, rule := range b.Rules {
		m.search.Debugf("trying rule %s at position %d", rule, pos)
		if !in.HasPrefixAt(pos, rule.Core) {
			continue
		}
		m.search2.Debugf("core of %s matches at %d", rule, pos)
		if !m.matchLeft(rule.Left, pos-1) {
			continue
		}
		if !m.matchRight(rule.Right, pos+len(rule.Core)) {
			continue
		}
		catTracer(CatRules).Debugf("%s", rule)
		return Match{
			Rule:        rule,
			Consumed:    len(rule.Core),
			Replacement: rule.Replacement,
		}, true
	}
	return Match{}, false
}

type matcher struct {
	d       *Dialect
	in      *InputBuffer
	search  tracing.Trace
	search2 tracing.Trace
	erules  tracing.Trace
}

// matchLeft matches p, given in scan order, against the input from
// position i backwards.
func (m *matcher) matchLeft(p Pattern, i int) bool {
	in := m.in
	for s, sym := range p {
		c := in.At(i)
		m.search2.Debugf("left symbol %s vs %q at %d", sym, c, i)
		switch sym.Kind {
		case SymLiteral:
			if c != sym.Char {
				return false
			}
			i--
		case SymBoundary:
			if IsLetter(c) {
				return false
			}
			i--
		case SymVowel:
			if m.d.Vowels == SingleVowel {
				if !IsVowel(c) {
					return false
				}
				i--
				break
			}
			if sym.Min > 1 {
				m.erules.Debugf("left context with '##' at %d", i)
			}
			n := 0
			for IsVowel(in.At(i)) {
				i--
				n++
			}
			if n < sym.Min {
				return false
			}
		case SymConsonant:
			if !IsConsonant(c) {
				return false
			}
			i--
		case SymVoiced:
			if !IsVoiced(c) {
				return false
			}
			i--
		case SymFrontVowel:
			if !IsFrontVowel(c) {
				return false
			}
			i--
		case SymSibilant:
			// reading backwards the H of CH/SH comes first
			if IsSibilant(c) {
				i--
			} else if c == 'H' && (in.At(i-1) == 'C' || in.At(i-1) == 'S') {
				i -= 2
			} else {
				return false
			}
		case SymUnvAffricate:
			if IsUnvoicedAffricate(c) {
				i--
			} else if c == 'H' && m.d.Digraph == DigraphsFixed &&
				(in.At(i-1) == 'T' || in.At(i-1) == 'C' || in.At(i-1) == 'S') {
				i -= 2
			} else {
				return false
			}
		case SymConsonantRun:
			n := 0
			for IsConsonant(in.At(i)) {
				i--
				n++
			}
			if n > 0 && s+1 < len(p) && p[s+1].Kind == SymConsonant {
				m.erules.Debugf("left context '^:' leaves one consonant at %d", i+1)
				i++
			}
		case SymConsonantRun1:
			n := 0
			for IsConsonant(in.At(i)) {
				i--
				n++
			}
			if n == 0 {
				return false
			}
		case SymConsonantIorE:
			if (c != 'E' && c != 'I') || !IsConsonant(in.At(i-1)) {
				return false
			}
			i -= 2
		case SymDigit:
			if !IsDigit(c) {
				return false
			}
			i--
		case SymDigitRun:
			n := 0
			for IsDigit(in.At(i)) {
				i--
				n++
			}
			if n == 0 {
				return false
			}
		default:
			assert(false, "unexpected symbol in left context")
		}
	}
	return true
}

// matchRight matches p against the input from position i forward.
func (m *matcher) matchRight(p Pattern, i int) bool {
	in := m.in
	for s, sym := range p {
		c := in.At(i)
		m.search2.Debugf("right symbol %s vs %q at %d", sym, c, i)
		switch sym.Kind {
		case SymLiteral:
			if c != sym.Char {
				return false
			}
			i++
		case SymBoundary:
			if IsLetter(c) {
				return false
			}
			i++
		case SymVowel:
			if m.d.Vowels == SingleVowel {
				if !IsVowel(c) {
					return false
				}
				i++
				break
			}
			if sym.Min > 1 {
				m.erules.Debugf("right context with '##' at %d", i)
			}
			n := 0
			for IsVowel(in.At(i)) {
				i++
				n++
			}
			if n < sym.Min {
				return false
			}
		case SymConsonant:
			if !IsConsonant(c) {
				return false
			}
			i++
		case SymVoiced:
			if !IsVoiced(c) {
				return false
			}
			i++
		case SymFrontVowel:
			if !IsFrontVowel(c) {
				return false
			}
			i++
		case SymSibilant:
			next := in.At(i + 1)
			if m.d.Digraph == DigraphsOriginal {
				if IsSibilant(c) {
					i++
				} else if c == 'H' && (next == 'C' || next == 'S') {
					i += 2
				} else {
					return false
				}
				break
			}
			if (c == 'C' || c == 'S') && next == 'H' {
				i += 2
			} else if IsSibilant(c) {
				i++
			} else {
				return false
			}
		case SymUnvAffricate:
			next := in.At(i + 1)
			if m.d.Digraph == DigraphsFixed && (c == 'T' || c == 'C' || c == 'S') && next == 'H' {
				i += 2
			} else if IsUnvoicedAffricate(c) {
				i++
			} else {
				return false
			}
		case SymConsonantRun:
			n := 0
			for IsConsonant(in.At(i)) {
				i++
				n++
			}
			if n > 0 && s+1 < len(p) && p[s+1].Kind == SymConsonant {
				m.erules.Debugf("right context ':^' leaves one consonant at %d", i-1)
				i--
			}
		case SymConsonantRun1:
			n := 0
			for IsConsonant(in.At(i)) {
				i++
				n++
			}
			if n == 0 {
				return false
			}
		case SymConsonantIorE:
			if next := in.At(i + 1); !IsConsonant(c) || (next != 'E' && next != 'I') {
				return false
			}
			i += 2
		case SymDigit:
			if !IsDigit(c) {
				return false
			}
			i++
		case SymDigitRun:
			n := 0
			for IsDigit(in.At(i)) {
				i++
				n++
			}
			if n == 0 {
				return false
			}
		case SymSuffix:
			n, ok := matchSuffix(in, i)
			if !ok {
				return false
			}
			i += n
		default:
			assert(false, "unexpected symbol in right context")
		}
	}
	return true
}

// matchSuffix matches one of E, ER, ES, ED, ELY, EFUL or ING at position i
// and returns the number of characters it spans. A bare E must end the
// word; an E followed by another letter has to continue as one of the
// longer suffixes.
func matchSuffix(in *InputBuffer, i int) (int, bool) {
	switch c := in.At(i); c {
	case 'E':
		next := in.At(i + 1)
		if !IsLetter(next) {
			return 1, true
		}
		switch next {
		case 'R', 'S', 'D':
			return 2, true
		case 'L':
			if in.At(i+2) == 'Y' {
				return 3, true
			}
		case 'F':
			if in.At(i+2) == 'U' && in.At(i+3) == 'L' {
				return 4, true
			}
		}
	case 'I':
		if in.At(i+1) == 'N' && in.At(i+2) == 'G' {
			return 3, true
		}
	}
	return 0, false
}
