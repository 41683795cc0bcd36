package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/npillmayer/reciter"
	"github.com/npillmayer/reciter/dialects"
	"github.com/npillmayer/reciter/lextext"
	"github.com/npillmayer/reciter/normalize"
	"github.com/npillmayer/schuko/tracing"
)

func main() {
	verbosity := flag.String("v", "0", "verbosity bit mask (decimal or 0x hex)")
	dialect := flag.String("d", "reciter", "dialect, one of c64, nrl, reciter")
	strict := flag.Bool("strict", false, "abort on characters no rule matches")
	lexfile := flag.String("x", "", "file with \\exceptions{...} pronunciation overrides")
	unicode := flag.Bool("unicode", false, "fold accented input to plain capitals")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: reciter [options] <input-file>")
		fmt.Fprintln(os.Stderr, "  Translates English text to phonemes with letter-to-sound rules.")
		fmt.Fprintln(os.Stderr)
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	mask, err := strconv.ParseUint(*verbosity, 0, 32)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid verbosity %q: %v\n", *verbosity, err)
		os.Exit(2)
	}
	reciter.SetVerbosity(uint32(mask))
	param := tracing.Select(reciter.CatParam.TraceKey())
	param.Debugf("verbosity=%#x dialect=%s strict=%v unicode=%v", mask, *dialect, *strict, *unicode)
	param.Debugf("input file %s", flag.Arg(0))

	if err := run(flag.Arg(0), *dialect, *lexfile, *strict, *unicode); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(path, dialect, lexfile string, strict, unicode bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var opts []reciter.Option
	if strict {
		opts = append(opts, reciter.WithPolicy(reciter.StrictPolicy))
	}
	if lexfile != "" {
		f, err := os.Open(lexfile)
		if err != nil {
			return err
		}
		lex := reciter.NewTrieLexicon()
		err = lextext.LoadExceptions(lex, f)
		f.Close()
		if err != nil {
			return fmt.Errorf("%s: %w", lexfile, err)
		}
		tracing.Select(reciter.CatParam.TraceKey()).Debugf("%d exceptions loaded", lex.Len())
		opts = append(opts, reciter.WithLexicon(lex))
	}
	rc, err := dialects.Load(dialect, opts...)
	if err != nil {
		return err
	}

	var phrases []*reciter.InputBuffer
	switch {
	case dialect == "nrl":
		text := string(data)
		if unicode {
			text = normalize.Fold(text)
		}
		phrases = normalize.NRLPhrases(text)
	case unicode:
		phrases = append(phrases, normalize.Unicode(string(data)))
	default:
		phrases = append(phrases, normalize.Legacy(data))
	}
	for _, in := range phrases {
		res, err := rc.TranslatePhrase(in)
		if err != nil {
			return err
		}
		for _, w := range res.Warnings {
			fmt.Fprintf(os.Stderr, "warning: %v\n", w)
		}
		fmt.Println(res.Phonemes)
	}
	return nil
}
