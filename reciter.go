package reciter

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultCacheSize is the number of translated phrases a Reciter keeps.
const DefaultCacheSize = 4096

// Reciter translates text with one rule table, an optional exception
// lexicon and a no-match policy. Its methods may be called from concurrent
// goroutines: table and lexicon are read-only, the phrase cache is
// synchronized internally.
type Reciter struct {
	table   *Table
	lexicon *TrieLexicon
	policy  Policy
	cache   *lru.Cache[string, Result] // nil if caching is disabled
}

// Result is the translation of one phrase.
type Result struct {
	Phonemes string
	Warnings []*NoRuleMatchedError
}

// Option configures a Reciter.
type Option func(*Reciter) error

// WithPolicy sets the no-match policy. The default is LenientPolicy.
func WithPolicy(p Policy) Option {
	return func(r *Reciter) error {
		r.policy = p
		return nil
	}
}

// WithLexicon installs a whole-word exception lexicon.
func WithLexicon(lex *TrieLexicon) Option {
	return func(r *Reciter) error {
		r.lexicon = lex
		return nil
	}
}

// WithCacheSize sets the number of cached phrases; 0 disables the cache.
func WithCacheSize(n int) Option {
	return func(r *Reciter) error {
		if n < 0 {
			return fmt.Errorf("negative cache size %d", n)
		}
		if n == 0 {
			r.cache = nil
			return nil
		}
		c, err := lru.New[string, Result](n)
		if err != nil {
			return err
		}
		r.cache = c
		return nil
	}
}

// New creates a Reciter for table t.
func New(t *Table, opts ...Option) (*Reciter, error) {
	if t == nil {
		return nil, fmt.Errorf("reciter: missing rule table")
	}
	r := &Reciter{table: t, policy: LenientPolicy}
	if err := WithCacheSize(DefaultCacheSize)(r); err != nil {
		return nil, err
	}
	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Table returns the rule table of r.
func (r *Reciter) Table() *Table {
	return r.table
}

// Lexicon returns the exception lexicon of r, or nil.
func (r *Reciter) Lexicon() *TrieLexicon {
	return r.lexicon
}

// Translate preprocesses text with NewPhrase and translates it.
//
// Example:
//
//	"CITY" => "SIHTIY" (Reciter rules).
func (r *Reciter) Translate(text string) (string, error) {
	res, err := r.TranslatePhrase(NewPhrase(text))
	return res.Phonemes, err
}

// TranslatePhrase translates one prepared input buffer.
func (r *Reciter) TranslatePhrase(in *InputBuffer) (Result, error) {
	if in == nil {
		return Result{}, &BufferInvariantError{Pos: -1, Reason: "nil buffer"}
	}
	key := string(in.chars)
	if r.cache != nil {
		if res, ok := r.cache.Get(key); ok {
			return res, nil
		}
	}
	var out OutputStream
	var lex Lexicon
	if r.lexicon.Len() > 0 {
		lex = r.lexicon
	}
	pr, err := processPhrase(r.table, lex, in, &out, r.policy)
	if err != nil {
		return Result{}, err
	}
	res := Result{Phonemes: out.String(), Warnings: pr.Warnings}
	if r.cache != nil {
		r.cache.Add(key, res)
	}
	return res, nil
}
