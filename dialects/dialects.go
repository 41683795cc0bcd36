/*
Package dialects ships the rule tables of the historical letter-to-sound
engines, ready to use.

	rc, err := dialects.Load("reciter")
	phonemes, err := rc.Translate("CITY")  // "SIHTIY"

Available dialects are

	reciter   Reciter rules, Apple II variant with the C64 additions
	c64       Reciter rules as transcribed for the Commodore 64
	nrl       NRL Report 7948 rules

The c64 dialect keeps the defects of its original transcription: the
digraph checks of '&' and '@' behave as they did on that machine, and a
period consumes the character after it.
*/
package dialects

import (
	"bytes"
	"embed"
	"fmt"
	"io"
	"sort"

	"github.com/npillmayer/reciter"
	"github.com/npillmayer/reciter/ruletext"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'reciter.param'
func tracer() tracing.Trace {
	return tracing.Select("reciter.param")
}

//go:embed data/*.rules
var tables embed.FS

var dialects = map[string]reciter.Dialect{
	"reciter": {
		Name:    "reciter",
		Vowels:  reciter.SingleVowel,
		Digraph: reciter.DigraphsFixed,
		Symbols: "*$",
	},
	"c64": {
		Name:        "c64",
		Vowels:      reciter.SingleVowel,
		Digraph:     reciter.DigraphsOriginal,
		PeriodQuirk: true,
	},
	"nrl": {
		Name:    "nrl",
		Vowels:  reciter.OneOrMoreVowels,
		Digraph: reciter.DigraphsFixed,
		Symbols: "*$",
	},
}

// Names returns the names of all shipped dialects, sorted.
func Names() []string {
	names := make([]string, 0, len(dialects))
	for name := range dialects {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the configuration of a shipped dialect. Every call returns
// a fresh copy.
func Lookup(name string) (*reciter.Dialect, error) {
	d, ok := dialects[name]
	if !ok {
		return nil, fmt.Errorf("unknown dialect %q", name)
	}
	return &d, nil
}

// LoadTable loads the shipped rule table of a dialect.
func LoadTable(name string) (*reciter.Table, error) {
	d, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	data, err := tables.ReadFile("data/" + name + ".rules")
	if err != nil {
		return nil, fmt.Errorf("dialect %q has no rule table: %w", name, err)
	}
	return LoadFrom(d, bytes.NewReader(data))
}

// LoadFrom loads a rule table in dialect d from rule source data.
func LoadFrom(d *reciter.Dialect, reader io.Reader) (*reciter.Table, error) {
	if d == nil {
		d = reciter.DefaultDialect()
	}
	t, err := ruletext.LoadTable(d.Name, d, reader)
	if err != nil {
		return nil, err
	}
	tracer().Debugf("loaded %s", t.Dialect)
	return t, nil
}

// Load creates a Reciter for a shipped dialect.
func Load(name string, opts ...reciter.Option) (*reciter.Reciter, error) {
	t, err := LoadTable(name)
	if err != nil {
		return nil, err
	}
	return reciter.New(t, opts...)
}
