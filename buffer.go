package reciter

import (
	"strings"
	"unicode"
)

// InputBuffer is one normalized phrase: a leading Boundary, the uppercased
// text, and a trailing Terminator. It is read-only while matching.
//
// All reads go through At, which never fails: positions before the buffer
// read as Boundary, positions past the end read as Terminator. Matching
// therefore never reads outside the buffer, whatever a pattern demands.
type InputBuffer struct {
	chars []rune
}

// NewInputBuffer wraps chars, which must start with Boundary and end with
// the only Terminator of the sequence. chars is not copied.
func NewInputBuffer(chars []rune) (*InputBuffer, error) {
	if len(chars) < 2 {
		return nil, &BufferInvariantError{Pos: len(chars) - 1, Reason: "buffer too short for sentinels"}
	}
	if chars[0] != Boundary {
		return nil, &BufferInvariantError{Pos: 0, Reason: "missing leading boundary"}
	}
	last := len(chars) - 1
	if chars[last] != Terminator {
		return nil, &BufferInvariantError{Pos: last, Reason: "missing trailing terminator"}
	}
	for i, c := range chars[:last] {
		if c == Terminator {
			return nil, &BufferInvariantError{Pos: i, Reason: "terminator inside phrase"}
		}
	}
	return &InputBuffer{chars: chars}, nil
}

// NewPhrase builds an input buffer the way the historical reciter
// preprocessor did: a leading space, every character uppercased, and a
// terminator. Terminator characters within text are replaced by spaces.
func NewPhrase(text string) *InputBuffer {
	chars := make([]rune, 0, len(text)+2)
	chars = append(chars, Boundary)
	for _, r := range text {
		if r == Terminator {
			r = ' '
		}
		chars = append(chars, unicode.ToUpper(r))
	}
	chars = append(chars, Terminator)
	return &InputBuffer{chars: chars}
}

// Len returns the length of the buffer including both sentinels.
func (in *InputBuffer) Len() int {
	return len(in.chars)
}

// End returns the position of the terminator.
func (in *InputBuffer) End() int {
	return len(in.chars) - 1
}

// At returns the character at position i, Boundary for i < 0 and
// Terminator for i beyond the end.
func (in *InputBuffer) At(i int) rune {
	if i < 0 {
		return Boundary
	}
	if i >= len(in.chars) {
		return Terminator
	}
	return in.chars[i]
}

// HasPrefixAt reports whether the buffer contains s starting at position i.
func (in *InputBuffer) HasPrefixAt(i int, s []rune) bool {
	if i < 0 || i+len(s) > in.End() {
		return false
	}
	for k, c := range s {
		if in.chars[i+k] != c {
			return false
		}
	}
	return true
}

// Text returns the phrase without sentinels.
func (in *InputBuffer) Text() string {
	if len(in.chars) < 2 {
		return ""
	}
	return string(in.chars[1 : len(in.chars)-1])
}

func (in *InputBuffer) String() string {
	var b strings.Builder
	b.WriteString("InputBuffer(")
	for _, c := range in.chars {
		if c == Terminator {
			b.WriteString("<ESC>")
			continue
		}
		b.WriteRune(c)
	}
	b.WriteString(")")
	return b.String()
}

// OutputStream collects the replacement text produced for a phrase.
type OutputStream struct {
	b strings.Builder
}

// WriteString appends s.
func (out *OutputStream) WriteString(s string) {
	out.b.WriteString(s)
}

// WriteRune appends r.
func (out *OutputStream) WriteRune(r rune) {
	out.b.WriteRune(r)
}

// Len returns the number of bytes written.
func (out *OutputStream) Len() int {
	return out.b.Len()
}

func (out *OutputStream) String() string {
	return out.b.String()
}
