/*
Package normalize prepares raw text for the reciter dispatcher.

Every function returns input buffers that honor the buffer layout
required by the matcher: a leading boundary, the uppercased phrase and a
trailing terminator.

Legacy reproduces the byte-oriented preprocessor of the historical reciter.
Unicode folds accented input to plain capitals first, which makes text like
"Café" usable with the English rule tables. NRLPhrases splits text into
phrases the way the NRL report front end did.
*/
package normalize

import (
	"strings"
	"unicode"

	"github.com/npillmayer/reciter"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// tracer writes to trace with key 'reciter.parse'
func tracer() tracing.Trace {
	return tracing.Select("reciter.parse")
}

// PhraseMark separates phrases in NRL input.
const PhraseMark = '#'

// Legacy builds a buffer from raw bytes: a leading space, ASCII uppercase of
// every byte, and the terminator. Bytes outside ASCII are kept as Latin-1
// code points; they have no features and translate to a boundary.
func Legacy(raw []byte) *reciter.InputBuffer {
	chars := make([]rune, 0, len(raw)+2)
	chars = append(chars, reciter.Boundary)
	for _, b := range raw {
		c := rune(b)
		switch {
		case c >= 'a' && c <= 'z':
			c -= 'a' - 'A'
		case c == reciter.Terminator:
			c = ' '
		}
		chars = append(chars, c)
	}
	chars = append(chars, reciter.Terminator)
	return mustBuffer(chars)
}

// Fold decomposes text and strips combining marks, e.g. "naïve café"
// becomes "naive cafe". Characters without an ASCII base are kept.
func Fold(text string) string {
	fold := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(fold, text)
	if err != nil {
		tracer().Errorf("cannot fold %q: %v", text, err)
		return text
	}
	return folded
}

// Unicode folds text and uppercases the result with full Unicode case
// mapping, e.g. "straße" becomes "STRASSE".
func Unicode(text string) *reciter.InputBuffer {
	return reciter.NewPhrase(cases.Upper(language.Und).String(Fold(text)))
}

// nrlPunct are the punctuation characters the NRL front end surrounds with
// spaces.
const nrlPunct = ",.?;:+*\"$%&-<>!()='"

// nrlDropped are removed from NRL input.
const nrlDropped = `[]\/`

// NRLPhrases splits text at PhraseMark and normalizes every phrase:
// letters and digits are uppercased, punctuation is surrounded by spaces,
// the characters [ ] \ / are dropped, and runs of white space collapse to
// a single space. Other characters are dropped with a trace message.
// Phrases without any content are skipped.
func NRLPhrases(text string) []*reciter.InputBuffer {
	var phrases []*reciter.InputBuffer
	for _, p := range strings.Split(text, string(PhraseMark)) {
		if in := nrlPhrase(p); in != nil {
			phrases = append(phrases, in)
		}
	}
	return phrases
}

func nrlPhrase(text string) *reciter.InputBuffer {
	chars := []rune{reciter.Boundary}
	space := func() {
		if chars[len(chars)-1] != ' ' {
			chars = append(chars, ' ')
		}
	}
	content := false
	for _, c := range text {
		switch {
		case strings.ContainsRune(nrlDropped, c):
			continue
		case strings.ContainsRune(nrlPunct, c):
			chars = append(chars, ' ', c, ' ')
			content = true
		case unicode.IsSpace(c):
			space()
		case c < 0x80 && (unicode.IsLetter(c) || unicode.IsDigit(c)):
			chars = append(chars, unicode.ToUpper(c))
			content = true
		default:
			tracer().Debugf("unknown character %U in input stream", c)
		}
	}
	if !content {
		return nil
	}
	chars = append(chars, reciter.Terminator)
	return mustBuffer(chars)
}

func mustBuffer(chars []rune) *reciter.InputBuffer {
	in, err := reciter.NewInputBuffer(chars)
	if err != nil {
		panic(err) // layout is constructed above
	}
	return in
}
