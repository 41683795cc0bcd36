package reciter

import (
	"errors"
	"fmt"
)

// Sentinel errors. The typed errors below wrap them, so callers can test
// with errors.Is and extract details with errors.As.
var (
	ErrRuleTable       = errors.New("malformed rule table")
	ErrNoRuleMatched   = errors.New("no rule matched")
	ErrBufferInvariant = errors.New("input buffer invariant violated")
)

// RuleTableError reports a rule that cannot be parsed or placed in a
// table. It is raised at load time only, never while matching.
type RuleTableError struct {
	Rule   string // offending rule text
	Line   int    // 1-based source line, 0 if unknown
	Reason string
}

func (e *RuleTableError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("rule table: line %d: %s: %q", e.Line, e.Reason, e.Rule)
	}
	return fmt.Sprintf("rule table: %s: %q", e.Reason, e.Rule)
}

func (e *RuleTableError) Unwrap() error { return ErrRuleTable }

// NoRuleMatchedError reports an exhausted bucket.
type NoRuleMatchedError struct {
	Pos    int       // position in the input buffer
	Char   rune      // input character at Pos
	Bucket BucketKey // bucket that was searched
	Phrase string    // the phrase, without sentinels
}

func (e *NoRuleMatchedError) Error() string {
	return fmt.Sprintf("no rule in bucket %s matches %q at position %d of %q",
		e.Bucket, e.Char, e.Pos, e.Phrase)
}

func (e *NoRuleMatchedError) Unwrap() error { return ErrNoRuleMatched }

// BufferInvariantError reports an input buffer lacking its leading
// boundary or trailing terminator, or containing a stray terminator.
type BufferInvariantError struct {
	Pos    int // offending position, -1 if the buffer is empty
	Reason string
}

func (e *BufferInvariantError) Error() string {
	return fmt.Sprintf("input buffer: %s (position %d)", e.Reason, e.Pos)
}

func (e *BufferInvariantError) Unwrap() error { return ErrBufferInvariant }
