package reciter

import (
	"errors"
	"io"
	"testing"
)

func TestBucketSelection(t *testing.T) {
	table := mustTable(t, nil, "[A]=AE")
	for c := 'A'; c <= 'Z'; c++ {
		if table.SelectBucket(c) != table.Bucket(BucketKey(c-'A')) {
			t.Errorf("letter %c should select its own bucket", c)
		}
		if table.SelectBucket(c+'a'-'A').Key != BucketKey(c-'A') {
			t.Errorf("lowercase %c should select bucket %c", c+'a'-'A', c)
		}
	}
	for _, c := range "0123456789.,;:!?'-" {
		if table.SelectBucket(c) != table.Bucket(SharedKey) {
			t.Errorf("%q should select the shared bucket", c)
		}
	}
	if table.Bucket(NumBuckets) != nil {
		t.Errorf("out of range key should yield no bucket")
	}
}

func TestBuildTablePreservesOrder(t *testing.T) {
	table := mustTable(t, nil, "[B]=B", "[AB]=X", "[1]=WAHN", "[A]=AE", "[.]=.", "[A]A=Y")
	a := table.Bucket(0)
	if a.Len() != 3 {
		t.Fatalf("expected 3 rules for A, have %d", a.Len())
	}
	for i, src := range []string{"[AB]=X", "[A]=AE", "[A]A=Y"} {
		if a.Rules[i].Source != src {
			t.Errorf("rule #%d of A should be %q, is %q", i, src, a.Rules[i].Source)
		}
	}
	if table.Bucket(SharedKey).Len() != 2 {
		t.Errorf("expected 2 rules in shared bucket")
	}
}

func TestParseBucketKey(t *testing.T) {
	if k, ok := ParseBucketKey("punct"); !ok || k != SharedKey {
		t.Errorf("punct should be the shared key")
	}
	if k, ok := ParseBucketKey("q"); !ok || k.String() != "Q" {
		t.Errorf("q should be bucket Q, is %v", k)
	}
	for _, s := range []string{"", "AB", "1", "digits"} {
		if _, ok := ParseBucketKey(s); ok {
			t.Errorf("%q should not be a bucket key", s)
		}
	}
}

type sliceRuleReader struct {
	keys  []BucketKey
	rules []string
	index int
}

func (r *sliceRuleReader) Next() (BucketKey, string, int, error) {
	if r.index >= len(r.rules) {
		return 0, "", r.index, io.EOF
	}
	r.index++
	return r.keys[r.index-1], r.rules[r.index-1], r.index, nil
}

func TestLoadTable(t *testing.T) {
	reader := &sliceRuleReader{
		keys:  []BucketKey{SharedKey, SharedKey, 1},
		rules: []string{"[A]=EY4", "[.]=.", "[B]=B"},
	}
	table, err := LoadTable("stream", nil, reader)
	if err != nil {
		t.Fatal(err)
	}
	if table.Identifier != "stream" {
		t.Errorf("identifier should be 'stream', is %q", table.Identifier)
	}
	// rules stay in the bucket they were loaded into
	if table.Bucket(SharedKey).Len() != 2 || table.Bucket(0).Len() != 0 {
		t.Errorf("[A] rule should live in the shared bucket")
	}
	stats := table.Stats()
	if stats.Rules != 3 || stats.PerBucket[1] != 1 {
		t.Errorf("unexpected stats %+v", stats)
	}
	if len(stats.MissingCatchAll) != 25 {
		t.Errorf("expected 25 letter buckets without catch-all, have %d", len(stats.MissingCatchAll))
	}
	if err := table.Validate(); !errors.Is(err, ErrRuleTable) {
		t.Errorf("validation should fail for incomplete table, got %v", err)
	}
}

func TestLoadTableReportsLine(t *testing.T) {
	reader := &sliceRuleReader{
		keys:  []BucketKey{0, 0},
		rules: []string{"[A]=AE", "[A]!=X"},
	}
	_, err := LoadTable("broken", nil, reader)
	var rterr *RuleTableError
	if !errors.As(err, &rterr) {
		t.Fatalf("expected *RuleTableError, got %v", err)
	}
	if rterr.Line != 2 {
		t.Errorf("expected error at line 2, got %d", rterr.Line)
	}
}

func TestValidateCompleteTable(t *testing.T) {
	var rules []string
	for c := 'A'; c <= 'Z'; c++ {
		rules = append(rules, "["+string(c)+"]="+string(c))
	}
	table := mustTable(t, nil, rules...)
	if err := table.Validate(); err != nil {
		t.Errorf("complete table should validate, got %v", err)
	}
}

func TestFrozenTable(t *testing.T) {
	table := mustTable(t, nil, "[A]=AE")
	defer func() {
		if recover() == nil {
			t.Errorf("adding to a frozen table should panic")
		}
	}()
	table.Add(0, "[A]=X")
}
