package reciter

import (
	"io"
	"strings"

	"github.com/derekparker/trie"
)

// ExceptionReader yields whole-word pronunciation exceptions one-by-one.
// It should return io.EOF when the stream is exhausted.
type ExceptionReader interface {
	Next() (word string, replacement string, err error)
}

// TrieLexicon is a Lexicon backed by a prefix trie. Words are stored
// uppercased. It is filled during construction and read-only afterwards.
type TrieLexicon struct {
	words *trie.Trie
	size  int
}

// NewTrieLexicon creates an empty lexicon.
func NewTrieLexicon() *TrieLexicon {
	return &TrieLexicon{words: trie.New()}
}

// Add registers replacement for word, replacing an earlier entry.
func (lex *TrieLexicon) Add(word, replacement string) {
	word = strings.ToUpper(word)
	if _, found := lex.words.Find(word); !found {
		lex.size++
	}
	lex.words.Add(word, replacement)
}

// Load adds all entries of reader.
func (lex *TrieLexicon) Load(reader ExceptionReader) error {
	for {
		word, repl, err := reader.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		lex.Add(word, repl)
	}
}

// Lookup returns the replacement for word.
func (lex *TrieLexicon) Lookup(word string) (string, bool) {
	if lex == nil || lex.size == 0 {
		return "", false
	}
	node, found := lex.words.Find(word)
	if !found {
		return "", false
	}
	repl, ok := node.Meta().(string)
	return repl, ok
}

// Len returns the number of entries.
func (lex *TrieLexicon) Len() int {
	if lex == nil {
		return 0
	}
	return lex.size
}

// WordsWithPrefix lists the entries starting with prefix.
func (lex *TrieLexicon) WordsWithPrefix(prefix string) []string {
	if lex == nil || lex.size == 0 {
		return nil
	}
	return lex.words.PrefixSearch(strings.ToUpper(prefix))
}
