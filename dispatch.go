package reciter

import (
	"fmt"
)

// Policy decides what happens when a bucket is exhausted without a match.
type Policy struct {
	// Strict aborts the phrase with a *NoRuleMatchedError, as the
	// historical engines did.
	Strict bool
	// Placeholder is emitted for the unmatched character in lenient mode.
	Placeholder string
}

// StrictPolicy aborts on the first unmatched character.
var StrictPolicy = Policy{Strict: true}

// LenientPolicy emits a space for unmatched characters and continues.
var LenientPolicy = Policy{Placeholder: " "}

// Lexicon maps whole words to replacements, overriding the rules.
type Lexicon interface {
	Lookup(word string) (replacement string, found bool)
}

// PhraseResult reports lenient-mode warnings of one phrase.
type PhraseResult struct {
	Warnings []*NoRuleMatchedError
}

// ProcessPhrase translates one phrase from its first character up to the
// terminator, appending the replacements to out.
//
// At every position:
//   - a period before a digit is a decimal point and is dispatched like
//     any other punctuation character;
//   - any other period is a pause and emits ".";
//   - punctuation and digits are matched against the shared bucket;
//   - letters are matched against their own bucket;
//   - characters without features emit a space.
//
// On a match the cursor advances by the length of the rule core. On an
// exhausted bucket p decides: strict mode returns a *NoRuleMatchedError,
// lenient mode emits p.Placeholder, records a warning and advances by one.
func ProcessPhrase(t *Table, in *InputBuffer, out *OutputStream, p Policy) (PhraseResult, error) {
	return processPhrase(t, nil, in, out, p)
}

func processPhrase(t *Table, lex Lexicon, in *InputBuffer, out *OutputStream, p Policy) (PhraseResult, error) {
	var result PhraseResult
	if t == nil || in == nil || out == nil {
		return result, fmt.Errorf("process phrase: missing table, input or output")
	}
	if in.Len() < 2 || in.At(0) != Boundary || in.At(in.End()) != Terminator {
		return result, &BufferInvariantError{Pos: in.End(), Reason: "phrase lacks boundary or terminator"}
	}
	trace := catTracer(CatMainLoop)
	trace.Debugf("processing phrase %q with %d positions", in.Text(), in.Len())
	d := t.Dialect
	pos := 1
	for pos < in.End() {
		c := in.At(pos)
		trace.Debugf("position %d (%q)", pos, c)
		if c == '.' {
			if d.PeriodQuirk {
				if IsDigit(in.At(pos + 1)) {
					trace.Debugf("period before digit, dispatching the digit")
					pos++ // the period itself is lost
				} else {
					trace.Debugf("period is a pause")
					out.WriteString(".")
					pos += 2 // the next character is lost as well
					continue
				}
			} else if IsDigit(in.At(pos + 1)) {
				trace.Debugf("period is a decimal point")
			} else {
				trace.Debugf("period is a pause")
				out.WriteString(".")
				pos++
				continue
			}
			c = in.At(pos)
		}
		f := Classify(c)
		var key BucketKey
		switch {
		case f.Has(FPunct):
			key = SharedKey
		case f.Has(FLetter):
			if lex != nil && !IsLetter(in.At(pos-1)) {
				if n, ok := lookupWord(lex, in, pos, out); ok {
					trace.Debugf("word of length %d found in lexicon", n)
					pos += n
					continue
				}
			}
			key = BucketKeyFor(c)
		default:
			trace.Debugf("no features, emitting a boundary")
			out.WriteRune(Boundary)
			pos++
			continue
		}
		m, ok := MatchAt(t.Bucket(key), in, pos, d)
		if !ok {
			err := &NoRuleMatchedError{Pos: pos, Char: c, Bucket: key, Phrase: in.Text()}
			if p.Strict {
				return result, err
			}
			trace.Infof("warning: %v", err)
			result.Warnings = append(result.Warnings, err)
			out.WriteString(p.Placeholder)
			pos++
			continue
		}
		assert(m.Consumed > 0, "rule consumed nothing")
		out.WriteString(m.Replacement)
		pos += m.Consumed
	}
	return result, nil
}

// lookupWord looks up the letter run starting at pos in lex. On a hit it
// writes the replacement and returns the length of the word.
func lookupWord(lex Lexicon, in *InputBuffer, pos int, out *OutputStream) (int, bool) {
	end := pos
	for IsLetter(in.At(end)) {
		end++
	}
	word := string(in.chars[pos:end])
	repl, ok := lex.Lookup(word)
	if !ok {
		return 0, false
	}
	out.WriteString(repl)
	return end - pos, true
}
