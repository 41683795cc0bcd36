package reciter

import "github.com/npillmayer/schuko/tracing"

// Category is one bit of the historical verbosity mask. Each category is
// traced with its own key, so categories can be switched independently.
type Category uint32

// Diagnostic categories, in bit order of the legacy '-v' mask.
const (
	CatParam    Category = 1 << iota // command line parameters
	CatParse                         // reading and preprocessing input
	CatMainLoop                      // per-position dispatcher decisions
	CatSearch                        // every rule tried by the matcher
	CatSearch2                       // per-symbol context comparisons
	CatRules                         // every rule that fired
	CatERules                        // special-case symbol handling
)

var categoryKeys = []struct {
	cat Category
	key string
}{
	{CatParam, "reciter.param"},
	{CatParse, "reciter.parse"},
	{CatMainLoop, "reciter.mainloop"},
	{CatSearch, "reciter.search"},
	{CatSearch2, "reciter.search2"},
	{CatRules, "reciter.rules"},
	{CatERules, "reciter.erules"},
}

// TraceKey returns the tracing key for a single category. For unknown or
// combined categories it returns the root key "reciter".
func (c Category) TraceKey() string {
	for _, ck := range categoryKeys {
		if ck.cat == c {
			return ck.key
		}
	}
	return "reciter"
}

// TraceKeys lists the tracing keys of all categories in bit order.
func TraceKeys() []string {
	keys := make([]string, len(categoryKeys))
	for i, ck := range categoryKeys {
		keys[i] = ck.key
	}
	return keys
}

// SetVerbosity enables debug tracing for every category whose bit is set in
// mask and restricts all other categories to errors.
func SetVerbosity(mask uint32) {
	for _, ck := range categoryKeys {
		level := tracing.LevelError
		if mask&uint32(ck.cat) != 0 {
			level = tracing.LevelDebug
		}
		tracing.Select(ck.key).SetTraceLevel(level)
	}
}

func catTracer(c Category) tracing.Trace {
	return tracing.Select(c.TraceKey())
}
