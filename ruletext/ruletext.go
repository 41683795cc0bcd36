package ruletext

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/reciter"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'reciter.parse'
func tracer() tracing.Trace {
	return tracing.Select("reciter.parse")
}

// Reader streams letter-to-sound rules from rule source files.
type Reader struct {
	scanner    *bufio.Scanner
	identifier string
	line       int
	inBlock    bool
	key        reciter.BucketKey
}

// LoadTable parses rule source data and returns a ready-to-use table.
//
// Rules are enclosed in blocks, one per bucket:
//
//	\message{Reciter English rules}
//	\rules{C} % a comment
//	 [CH]^=K
//	^E[CH]=K
//	[CH]=CH
//	 ...
//	[C]=K
//	}
//
// Bucket keys are the letters A to Z and "punct" for the bucket shared by
// punctuation and digits. Lines starting with '%' are comments. Rule lines
// are taken verbatim: leading and trailing spaces are part of the rule.
// A block may appear more than once; its rules are appended in file order.
//
// Exceptions from \exceptions{...} are intentionally not loaded here.
func LoadTable(name string, d *reciter.Dialect, reader io.Reader) (*reciter.Table, error) {
	r := NewReader(reader)
	t, err := reciter.LoadTable(name, d, r)
	if err != nil {
		return nil, err
	}
	if r.Identifier() != "" {
		tracer().Infof("%s: %s", name, r.Identifier())
	}
	return t, nil
}

// NewReader creates a rule reader on top of reader.
func NewReader(reader io.Reader) *Reader {
	return &Reader{
		scanner: bufio.NewScanner(reader),
	}
}

// Identifier returns the \message{...} text seen so far.
func (r *Reader) Identifier() string {
	return r.identifier
}

// Next returns the next rule with its bucket key and line number.
// It returns io.EOF when exhausted.
func (r *Reader) Next() (reciter.BucketKey, string, int, error) {
	for r.scanner.Scan() {
		r.line++
		line := strings.TrimSuffix(r.scanner.Text(), "\r")
		if r.inBlock {
			if strings.HasPrefix(line, "}") {
				r.inBlock = false
				continue
			}
			if line == "" || strings.HasPrefix(line, "%") {
				continue
			}
			return r.key, line, r.line, nil
		}
		trimmed := strings.TrimSpace(line)
		switch {
		case trimmed == "" || strings.HasPrefix(trimmed, "%"):
			continue
		case strings.HasPrefix(trimmed, `\message{`):
			r.identifier = strings.TrimSuffix(trimmed[len(`\message{`):], "}")
			continue
		case strings.HasPrefix(trimmed, `\exceptions{`):
			skipBlock(r.scanner, &r.line)
			continue
		case strings.HasPrefix(trimmed, `\rules{`):
			arg, _, ok := strings.Cut(trimmed[len(`\rules{`):], "}")
			key, valid := reciter.ParseBucketKey(strings.TrimSpace(arg))
			if !ok || !valid {
				return 0, "", r.line, &reciter.RuleTableError{
					Rule: line, Line: r.line, Reason: "invalid bucket section",
				}
			}
			tracer().Debugf("rules for bucket %s start at line %d", key, r.line)
			r.key = key
			r.inBlock = true
			continue
		}
		return 0, "", r.line, &reciter.RuleTableError{
			Rule: line, Line: r.line, Reason: "rule outside of a \\rules block",
		}
	}
	if err := r.scanner.Err(); err != nil {
		return 0, "", r.line, fmt.Errorf("reading rules: %w", err)
	}
	if r.inBlock {
		return 0, "", r.line, errors.New("unexpected end of file (unclosed \\rules block)")
	}
	return 0, "", r.line, io.EOF
}

func skipBlock(scanner *bufio.Scanner, line *int) {
	for scanner.Scan() {
		*line++
		if strings.HasPrefix(scanner.Text(), "}") {
			return
		}
	}
}
