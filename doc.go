/*
Package reciter converts normalized text into a stream of phoneme mnemonics
by applying ordered, context-sensitive letter-to-sound rules, in the manner
of the historical text-to-speech "reciter" engines (Don't Ask Software's
Reciter, the NRL rule set of Elovitz et al.).

A rule has the form

	LEFT[CORE]RIGHT=REPLACEMENT

and fires if CORE matches the input literally at the current position and
the symbolic context patterns LEFT and RIGHT match the characters around it.
Rules are grouped into 27 buckets, one per letter plus one shared bucket for
punctuation and digits. Within a bucket the first matching rule wins, so
rule order is priority.

Rule tables are data. Package ruletext reads them from TeX-flavoured source
files, package dialects embeds the historical tables together with the
matcher toggles each of them needs (vowel quantifier semantics, digraph
checks with or without the original defects, optional symbols).

Tables and dialects are immutable after construction and may be shared by
any number of goroutines. Input buffers and output streams are owned by a
single call.

Further Reading

	H. S. Elovitz, R. Johnson, A. McHugh, J. E. Shore: "Automatic Translation
	of English Text to Phonetics by Means of Letter-to-Sound Rules",
	NRL Report 7948, 1976.

----------------------------------------------------------------------

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer@com>

All rights reserved.

License information is available in the LICENSE file.
*/
package reciter

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'reciter'
func tracer() tracing.Trace {
	return tracing.Select("reciter")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
