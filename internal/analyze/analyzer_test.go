package analyze

import (
	"testing"

	"tenet/internal/diag"
	"tenet/internal/parser"
	"tenet/internal/ruleset"
	"tenet/internal/source"
)

func runChecks(t *testing.T, src string, rs *ruleset.Ruleset) []diag.Diagnostic {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.c", []byte(src))
	interner := source.NewInterner()

	parseBag := diag.NewBag(100)
	res := parser.ParseFile(fs.Get(id), interner, parser.Options{
		Reporter: diag.BagReporter{Bag: parseBag},
	})
	if parseBag.HasErrors() {
		t.Fatalf("fixture does not parse: %v", parseBag.Items())
	}

	bag := diag.NewBag(100)
	ctx := NewContext(fs, interner, res.Builder, rs.Limits, diag.BagReporter{Bag: bag})
	New(rs).Analyze(ctx, res.File)
	return bag.Items()
}

func ruleCodes(diags []diag.Diagnostic) []diag.Code {
	codes := make([]diag.Code, len(diags))
	for i, d := range diags {
		codes[i] = d.Code
	}
	return codes
}

func onlyRule(code diag.Code) *ruleset.Ruleset {
	rs := &ruleset.Ruleset{
		Limits: ruleset.Limits{MaxFunctionLines: ruleset.DefaultMaxFunctionLines},
	}
	switch code {
	case diag.RuleGoto:
		rs.RuleSet.RestrictGoto = true
	case diag.RuleSetjmp:
		rs.RuleSet.RestrictSetjmp = true
	case diag.RuleLongjmp:
		rs.RuleSet.RestrictLongjmp = true
	case diag.RuleRecursion:
		rs.RuleSet.RestrictRecursion = true
	case diag.RuleLoopBounds:
		rs.RuleSet.FixedLoopBounds = true
	case diag.RuleHeapAlloc:
		rs.RuleSet.RestrictHeapAllocation = true
	case diag.RuleFunctionSize:
		rs.RuleSet.RestrictFunctionSize = true
	case diag.RuleReturnValue:
		rs.RuleSet.CheckReturnValue = true
	}
	return rs
}

func wantCodes(t *testing.T, got []diag.Diagnostic, want ...diag.Code) {
	t.Helper()
	codes := ruleCodes(got)
	if len(codes) != len(want) {
		t.Fatalf("got %v, want %v", codes, want)
	}
	for i := range want {
		if codes[i] != want[i] {
			t.Fatalf("got %v, want %v", codes, want)
		}
	}
}

const gotoSrc = `
void f(int x) {
    if (x) {
        goto out;
    }
out:
    return;
}
`

func TestGotoFlagged(t *testing.T) {
	wantCodes(t, runChecks(t, gotoSrc, onlyRule(diag.RuleGoto)), diag.RuleGoto)
}

func TestDisabledRuleIsSilent(t *testing.T) {
	rs := &ruleset.Ruleset{Limits: ruleset.Limits{MaxFunctionLines: 60}}
	wantCodes(t, runChecks(t, gotoSrc, rs))
}

func TestSetjmpAndLongjmp(t *testing.T) {
	src := `
int setjmp(int env);
void longjmp(int env, int val);
int env;
void f(void) {
    if (setjmp(env)) {
        return;
    }
    longjmp(env, 1);
}
`
	wantCodes(t, runChecks(t, src, onlyRule(diag.RuleSetjmp)), diag.RuleSetjmp)
	wantCodes(t, runChecks(t, src, onlyRule(diag.RuleLongjmp)), diag.RuleLongjmp)
}

func TestDirectRecursionFlagged(t *testing.T) {
	src := `
int fact(int n) {
    if (n < 2) {
        return 1;
    }
    return n * fact(n - 1);
}
`
	wantCodes(t, runChecks(t, src, onlyRule(diag.RuleRecursion)), diag.RuleRecursion)
}

func TestMutualRecursionNotTraced(t *testing.T) {
	src := `
int odd(int n);
int even(int n) {
    if (n == 0) { return 1; }
    return odd(n - 1);
}
int odd(int n) {
    if (n == 0) { return 0; }
    return even(n - 1);
}
`
	wantCodes(t, runChecks(t, src, onlyRule(diag.RuleRecursion)))
}

func TestLoopBounds(t *testing.T) {
	tests := []struct {
		name string
		cond string
		want int
	}{
		{"literal upper bound", "i < 10", 0},
		{"literal on the left", "10 > i", 0},
		{"negative literal", "i > -1", 0},
		{"parenthesized", "(i) < (10)", 0},
		{"equality with literal", "i != 0", 0},
		{"constant true", "1", 1},
		{"bare flag", "running", 1},
		{"two variables", "i < n", 1},
		{"call in comparison", "x == next()", 1},
		{"conjunction", "i < 10 && running", 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			src := `
int next(void);
int i; int n; int x; int running;
void f(void) {
    while (` + tc.cond + `) {
        i = i + 1;
    }
}
`
			got := runChecks(t, src, onlyRule(diag.RuleLoopBounds))
			if len(got) != tc.want {
				t.Errorf("while (%s): got %d findings, want %d", tc.cond, len(got), tc.want)
			}
		})
	}
}

func TestDoWhileBoundsChecked(t *testing.T) {
	src := `
void f(void) {
    int i = 0;
    do {
        i = i + 1;
    } while (i);
}
`
	wantCodes(t, runChecks(t, src, onlyRule(diag.RuleLoopBounds)), diag.RuleLoopBounds)
}

func TestForLoopNotExamined(t *testing.T) {
	src := `
void f(int n) {
    int i;
    for (i = 0; i < n; i++) {
    }
    for (;;) {
    }
}
`
	wantCodes(t, runChecks(t, src, onlyRule(diag.RuleLoopBounds)))
}

func TestHeapAllocation(t *testing.T) {
	src := `
void *malloc(int n);
void free(void *p);
void *my_alloc(int n);
void f(void) {
    void *p = malloc(8);
    void *q = my_alloc(8);
    free(p);
}
`
	wantCodes(t, runChecks(t, src, onlyRule(diag.RuleHeapAlloc)),
		diag.RuleHeapAlloc, diag.RuleHeapAlloc)
}

func TestFunctionSizeBoundary(t *testing.T) {
	// Three lines, specifiers through closing brace.
	src := `
int f(void) {
    return 0;
}
`
	rs := onlyRule(diag.RuleFunctionSize)
	rs.Limits.MaxFunctionLines = 3
	wantCodes(t, runChecks(t, src, rs))

	rs.Limits.MaxFunctionLines = 2
	wantCodes(t, runChecks(t, src, rs), diag.RuleFunctionSize)
}

func TestReturnValue(t *testing.T) {
	src := `
int get(void);
void put(int x);
void f(void) {
    int x;
    get();
    (void)get();
    x = get();
    put(x);
    if (get()) { return; }
    unknown();
}
`
	wantCodes(t, runChecks(t, src, onlyRule(diag.RuleReturnValue)), diag.RuleReturnValue)
}

func TestReturnValueForwardReference(t *testing.T) {
	src := `
void f(void) {
    get();
}
int get(void) {
    return 1;
}
`
	wantCodes(t, runChecks(t, src, onlyRule(diag.RuleReturnValue)), diag.RuleReturnValue)
}

func TestRedeclarationLastWins(t *testing.T) {
	src := `
int report(void);
void report(void) {
}
void f(void) {
    report();
}
`
	// The definition overwrites the earlier prototype, so the call
	// discards nothing.
	wantCodes(t, runChecks(t, src, onlyRule(diag.RuleReturnValue)))
}

func TestCommaOperandsChecked(t *testing.T) {
	src := `
int get(void);
void f(void) {
    get(), get();
}
`
	wantCodes(t, runChecks(t, src, onlyRule(diag.RuleReturnValue)),
		diag.RuleReturnValue, diag.RuleReturnValue)
}

func TestDeterministicOutput(t *testing.T) {
	src := `
void *malloc(int n);
int work(int n) {
    while (1) {
        goto out;
    }
out:
    return work(n);
}
`
	first := ruleCodes(runChecks(t, src, ruleset.Default()))
	if len(first) == 0 {
		t.Fatal("fixture produced no findings")
	}
	for run := 0; run < 5; run++ {
		again := ruleCodes(runChecks(t, src, ruleset.Default()))
		if len(again) != len(first) {
			t.Fatalf("run %d: got %v, want %v", run, again, first)
		}
		for i := range first {
			if again[i] != first[i] {
				t.Fatalf("run %d: got %v, want %v", run, again, first)
			}
		}
	}
}

func TestSymbolTableLastWriteWins(t *testing.T) {
	interner := source.NewInterner()
	st := NewSymbolTable()
	name := interner.Intern("f")

	st.Register(Symbol{Name: name, Kind: SymbolFunction, ReturnsVoid: false})
	st.Register(Symbol{Name: name, Kind: SymbolFunction, ReturnsVoid: true})

	sym, ok := st.Lookup(name)
	if !ok || !sym.ReturnsVoid {
		t.Error("second registration did not overwrite the first")
	}
	if st.Len() != 1 {
		t.Errorf("table holds %d entries, want 1", st.Len())
	}
}
