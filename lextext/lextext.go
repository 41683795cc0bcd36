package lextext

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/reciter"
)

// Reader streams pronunciation exceptions from \exceptions{...} blocks.
//
//	\exceptions{
//	COMMODORE=KAA4MAHDOHR
//	ATARI=AHTAA4RIY
//	}
//
// Each entry is WORD=REPLACEMENT. The word is trimmed and uppercased, the
// replacement is taken verbatim.
type Reader struct {
	scanner *bufio.Scanner
	inBlock bool
	line    int
}

// LoadExceptions parses exception data from reader and adds all
// \exceptions{...} entries to lex.
func LoadExceptions(lex *reciter.TrieLexicon, reader io.Reader) error {
	return lex.Load(NewReader(reader))
}

// NewReader creates an exception reader on top of reader.
func NewReader(reader io.Reader) *Reader {
	return &Reader{
		scanner: bufio.NewScanner(reader),
	}
}

// Next returns the next exception as (word, replacement).
// It returns io.EOF when exhausted.
func (r *Reader) Next() (string, string, error) {
	for r.scanner.Scan() {
		r.line++
		line := strings.TrimSuffix(r.scanner.Text(), "\r")
		if !r.inBlock {
			trimmed := strings.TrimSpace(line)
			if strings.HasPrefix(trimmed, `\rules{`) {
				skipBlock(r.scanner, &r.line)
				continue
			}
			if strings.HasPrefix(trimmed, `\exceptions{`) {
				r.inBlock = true
			}
			continue
		}
		if strings.HasPrefix(line, "}") {
			r.inBlock = false
			continue
		}
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "%") {
			continue
		}
		word, repl, ok := strings.Cut(line, "=")
		word = strings.TrimSpace(word)
		if !ok || word == "" {
			return "", "", fmt.Errorf("line %d: malformed exception %q", r.line, line)
		}
		return strings.ToUpper(word), repl, nil
	}
	if err := r.scanner.Err(); err != nil {
		return "", "", err
	}
	if r.inBlock {
		return "", "", errors.New("unexpected end of file (unclosed \\exceptions block)")
	}
	return "", "", io.EOF
}

func skipBlock(scanner *bufio.Scanner, line *int) {
	for scanner.Scan() {
		*line++
		if strings.HasPrefix(scanner.Text(), "}") {
			return
		}
	}
}
