package reciter

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// BucketKey identifies one of the 27 buckets of a table: 0..25 for the
// letters A..Z, SharedKey for punctuation and digits.
type BucketKey uint8

// SharedKey is the key of the bucket shared by punctuation and digits.
const SharedKey BucketKey = 26

// NumBuckets is the number of buckets of every table.
const NumBuckets = 27

func (k BucketKey) String() string {
	if k < SharedKey {
		return string(rune('A' + k))
	}
	if k == SharedKey {
		return "punct"
	}
	return fmt.Sprintf("<bucket %d>", uint8(k))
}

// ParseBucketKey parses a section name as used in rule files: a single
// letter or "punct".
func ParseBucketKey(s string) (BucketKey, bool) {
	if strings.EqualFold(s, "punct") {
		return SharedKey, true
	}
	if len(s) == 1 {
		c := rune(s[0])
		if c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		if c >= 'A' && c <= 'Z' {
			return BucketKey(c - 'A'), true
		}
	}
	return 0, false
}

// BucketKeyFor returns the dispatch key for an input character: the
// letter's own bucket for A..Z (either case), the shared bucket otherwise.
func BucketKeyFor(r rune) BucketKey {
	switch {
	case r >= 'A' && r <= 'Z':
		return BucketKey(r - 'A')
	case r >= 'a' && r <= 'z':
		return BucketKey(r - 'a')
	}
	return SharedKey
}

// Bucket is the ordered rule list of one dispatch key. Order is priority.
type Bucket struct {
	Key   BucketKey
	Rules []*Rule
}

// Len returns the number of rules in the bucket.
func (b *Bucket) Len() int {
	if b == nil {
		return 0
	}
	return len(b.Rules)
}

// HasCatchAll reports whether the bucket contains a rule that matches its
// own bare letter unconditionally.
func (b *Bucket) HasCatchAll() bool {
	if b == nil {
		return false
	}
	for _, r := range b.Rules {
		if r.IsCatchAll() && b.Key < SharedKey && BucketKeyFor(r.Core[0]) == b.Key {
			return true
		}
	}
	return false
}

// Table is a complete rule table of one dialect. Once built, a table is
// never modified and may be used by concurrent goroutines.
type Table struct {
	Dialect    *Dialect
	Identifier string
	buckets    [NumBuckets]Bucket
	frozen     bool
}

// NewTable creates an empty table for dialect d. Rules are added with Add
// and the table is sealed with Freeze.
func NewTable(name string, d *Dialect) *Table {
	if d == nil {
		d = DefaultDialect()
	}
	t := &Table{Dialect: d, Identifier: name}
	for i := range t.buckets {
		t.buckets[i].Key = BucketKey(i)
	}
	return t
}

// Add parses text and appends it to the bucket with key k, preserving
// load order.
func (t *Table) Add(k BucketKey, text string) (*Rule, error) {
	assert(!t.frozen, "rule added to frozen table")
	if k >= NumBuckets {
		return nil, &RuleTableError{Rule: text, Reason: fmt.Sprintf("invalid bucket key %d", k)}
	}
	rule, err := ParseRule(text, t.Dialect)
	if err != nil {
		return nil, err
	}
	t.buckets[k].Rules = append(t.buckets[k].Rules, rule)
	return rule, nil
}

// Freeze seals the table. Adding rules afterwards panics.
func (t *Table) Freeze() {
	t.frozen = true
}

// BuildTable parses texts in dialect d and groups them into buckets keyed
// by the first character of each rule's core. Source order is preserved
// within each bucket.
func BuildTable(d *Dialect, texts []string) (*Table, error) {
	t := NewTable("", d)
	for _, text := range texts {
		rule, err := ParseRule(text, t.Dialect)
		if err != nil {
			return nil, err
		}
		k := BucketKeyFor(rule.Core[0])
		t.buckets[k].Rules = append(t.buckets[k].Rules, rule)
	}
	t.Freeze()
	return t, nil
}

// RuleReader yields rule source lines one-by-one, each with the bucket it
// belongs to and its source line number.
// It should return io.EOF when the stream is exhausted.
type RuleReader interface {
	Next() (key BucketKey, text string, line int, err error)
}

// LoadTable compiles a rule table from a streaming, format-agnostic source.
//
// File format parsing is intentionally outside the base package. Use
// adapters like package ruletext to parse concrete formats and feed this API.
func LoadTable(name string, d *Dialect, reader RuleReader) (*Table, error) {
	t := NewTable(name, d)
	for {
		key, text, line, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if _, err = t.Add(key, text); err != nil {
			var rte *RuleTableError
			if errors.As(err, &rte) && rte.Line == 0 {
				rte.Line = line
			}
			return nil, fmt.Errorf("loading table %q: %w", name, err)
		}
	}
	t.Freeze()
	stats := t.Stats()
	tracer().Infof("rule table %q dialect=%s rules=%d buckets without catch-all=%v",
		name, t.Dialect.Name, stats.Rules, stats.MissingCatchAll)
	return t, nil
}

// Bucket returns the bucket with key k.
func (t *Table) Bucket(k BucketKey) *Bucket {
	if k >= NumBuckets {
		return nil
	}
	return &t.buckets[k]
}

// SelectBucket returns the bucket consulted for input character r: the
// letter's own bucket, or the shared bucket for digits and punctuation.
func (t *Table) SelectBucket(r rune) *Bucket {
	return &t.buckets[BucketKeyFor(r)]
}

// TableStats summarizes a table.
type TableStats struct {
	Rules           int
	PerBucket       [NumBuckets]int
	MissingCatchAll []BucketKey // letter buckets that can run dry
}

// Stats returns rule counts and the letter buckets lacking a catch-all.
func (t *Table) Stats() TableStats {
	var s TableStats
	for i := range t.buckets {
		n := t.buckets[i].Len()
		s.PerBucket[i] = n
		s.Rules += n
		if BucketKey(i) < SharedKey && !t.buckets[i].HasCatchAll() {
			s.MissingCatchAll = append(s.MissingCatchAll, BucketKey(i))
		}
	}
	return s
}

// Validate checks that every letter bucket has a catch-all rule, so that
// matching a letter can never exhaust its bucket.
func (t *Table) Validate() error {
	missing := t.Stats().MissingCatchAll
	if len(missing) == 0 {
		return nil
	}
	keys := make([]string, len(missing))
	for i, k := range missing {
		keys[i] = k.String()
	}
	return &RuleTableError{
		Rule:   t.Identifier,
		Reason: "buckets without catch-all rule: " + strings.Join(keys, ","),
	}
}
