package reciter

import (
	"strings"
)

// Rule is a parsed letter-to-sound rule
//
//	LEFT[CORE]RIGHT=REPLACEMENT
//
// Left is stored in scan order, i.e., reversed with respect to the source
// text: Left[0] is the symbol adjacent to the core.
type Rule struct {
	Left        Pattern
	Core        []rune // literal, at least one character
	Right       Pattern
	Replacement string
	Source      string // rule text as loaded
}

// ParseRule parses one rule in the notation of dialect d. It fails with a
// *RuleTableError if the core delimiters or the separator are missing, the
// core is empty, or a context character is not a symbol enabled by d.
func ParseRule(text string, d *Dialect) (*Rule, error) {
	if d == nil {
		d = DefaultDialect()
	}
	fail := func(reason string) (*Rule, error) {
		return nil, &RuleTableError{Rule: text, Reason: reason}
	}
	lparen := strings.IndexByte(text, '[')
	if lparen < 0 {
		return fail("missing '['")
	}
	// the core is never empty, so "[]]" has a core of "]"
	rparen := -1
	if lparen+2 <= len(text) {
		if i := strings.IndexByte(text[lparen+2:], ']'); i >= 0 {
			rparen = lparen + 2 + i
		}
	}
	if rparen < 0 {
		return fail("missing ']'")
	}
	equals := strings.IndexByte(text[rparen+1:], '=')
	if equals < 0 {
		return fail("missing '='")
	}
	equals += rparen + 1
	rule := &Rule{
		Core:        []rune(text[lparen+1 : rparen]),
		Replacement: text[equals+1:],
		Source:      text,
	}
	var err error
	if rule.Left, err = parsePattern(reverse([]rune(text[:lparen])), d, false); err != nil {
		return fail(err.Error())
	}
	if rule.Right, err = parsePattern([]rune(text[rparen+1:equals]), d, true); err != nil {
		return fail(err.Error())
	}
	return rule, nil
}

type patternError string

func (e patternError) Error() string { return string(e) }

// parsePattern converts context characters, given in scan order, to
// symbols.
func parsePattern(ctx []rune, d *Dialect, right bool) (Pattern, error) {
	if len(ctx) == 0 {
		return nil, nil
	}
	p := make(Pattern, 0, len(ctx))
	for i := 0; i < len(ctx); i++ {
		c := ctx[i]
		if IsLetter(c) {
			p = append(p, Symbol{Kind: SymLiteral, Char: c})
			continue
		}
		kind, ok := symbolChars[c]
		if !ok {
			return nil, patternError("invalid context character " + quoteRune(c))
		}
		if strings.ContainsRune(optionalSymbols, c) && !d.Enables(c) {
			return nil, patternError("context symbol " + quoteRune(c) + " not enabled in dialect " + d.Name)
		}
		if kind == SymSuffix && !right {
			return nil, patternError("suffix symbol '%' in left context")
		}
		sym := Symbol{Kind: kind}
		if kind == SymVowel {
			sym.Min = 1
			if d.Vowels == OneOrMoreVowels && i+1 < len(ctx) && ctx[i+1] == '#' {
				sym.Min = 2 // '##': two or more vowels
				i++
			}
		}
		p = append(p, sym)
	}
	return p, nil
}

func quoteRune(c rune) string {
	return "'" + string(c) + "'"
}

func reverse(rs []rune) []rune {
	for i, j := 0, len(rs)-1; i < j; i, j = i+1, j-1 {
		rs[i], rs[j] = rs[j], rs[i]
	}
	return rs
}

// IsCatchAll reports whether r has no context and consists of a single
// letter, i.e., it matches its own bare letter unconditionally.
func (r *Rule) IsCatchAll() bool {
	return len(r.Left) == 0 && len(r.Right) == 0 && len(r.Core) == 1
}

func (r *Rule) String() string {
	if r.Source != "" {
		return r.Source
	}
	left := make(Pattern, len(r.Left))
	for i, sym := range r.Left {
		left[len(left)-1-i] = sym
	}
	return left.String() + "[" + string(r.Core) + "]" + r.Right.String() + "=" + r.Replacement
}
