package parser

import (
	"testing"

	"tenet/internal/ast"
	"tenet/internal/diag"
	"tenet/internal/source"
)

type parseResult struct {
	res      Result
	bag      *diag.Bag
	interner *source.Interner
	fs       *source.FileSet
}

func parse(t *testing.T, src string) parseResult {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.c", []byte(src))
	bag := diag.NewBag(100)
	interner := source.NewInterner()
	res := ParseFile(fs.Get(id), interner, Options{
		Reporter: diag.BagReporter{Bag: bag},
	})
	return parseResult{res: res, bag: bag, interner: interner, fs: fs}
}

func mustParseClean(t *testing.T, src string) parseResult {
	t.Helper()
	pr := parse(t, src)
	if pr.bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", pr.bag.Items())
	}
	return pr
}

func (pr parseResult) items() []ast.ItemID {
	return pr.res.Builder.Files.Get(pr.res.File).Items
}

func (pr parseResult) function(t *testing.T, idx int) *ast.FunctionData {
	t.Helper()
	items := pr.items()
	if idx >= len(items) {
		t.Fatalf("want item %d, file has %d", idx, len(items))
	}
	fn, ok := pr.res.Builder.Items.Function(items[idx])
	if !ok {
		t.Fatalf("item %d is not a function", idx)
	}
	return fn
}

func TestParseFunctionDefinition(t *testing.T) {
	pr := mustParseClean(t, `
int add(int a, int b) {
    return a + b;
}
`)
	items := pr.items()
	if len(items) != 1 {
		t.Fatalf("got %d items, want 1", len(items))
	}
	fn := pr.function(t, 0)
	if got := pr.interner.MustLookup(fn.Name); got != "add" {
		t.Errorf("name = %q, want add", got)
	}
	if len(fn.Params) != 2 {
		t.Fatalf("got %d params, want 2", len(fn.Params))
	}
	if got := pr.interner.MustLookup(fn.Params[1].Name); got != "b" {
		t.Errorf("param 1 = %q, want b", got)
	}
	if fn.Ret.IsVoidValue() {
		t.Error("int return reduced to void")
	}

	block, ok := pr.res.Builder.Stmts.Block(fn.Body)
	if !ok {
		t.Fatal("body is not a block")
	}
	if len(block.Stmts) != 1 {
		t.Fatalf("got %d body statements, want 1", len(block.Stmts))
	}
	if pr.res.Builder.Stmts.Get(block.Stmts[0]).Kind != ast.StmtReturn {
		t.Error("body statement is not a return")
	}
}

func TestParsePrototypeAndGlobal(t *testing.T) {
	pr := mustParseClean(t, `
void log_message(const char *msg);
static int counter = 0;
int table[16];
`)
	items := pr.items()
	if len(items) != 3 {
		t.Fatalf("got %d items, want 3", len(items))
	}

	proto, ok := pr.res.Builder.Items.Decl(items[0])
	if !ok || !proto.IsPrototype {
		t.Fatal("item 0 is not a prototype")
	}
	if proto.Type.Pointer != 0 || !proto.Type.Void {
		t.Error("prototype return type is not void")
	}

	global, ok := pr.res.Builder.Items.Decl(items[1])
	if !ok || global.IsPrototype {
		t.Fatal("item 1 is not a variable declaration")
	}
	if !global.Init.IsValid() {
		t.Error("initialized global lost its initializer")
	}

	arr, ok := pr.res.Builder.Items.Decl(items[2])
	if !ok {
		t.Fatal("item 2 is not a declaration")
	}
	if got := pr.interner.MustLookup(arr.Name); got != "table" {
		t.Errorf("array name = %q", got)
	}
}

func TestParseCommaDeclarators(t *testing.T) {
	pr := mustParseClean(t, "int a, *b, c = 3;\n")
	items := pr.items()
	if len(items) != 3 {
		t.Fatalf("got %d items, want 3", len(items))
	}
	b, _ := pr.res.Builder.Items.Decl(items[1])
	if b.Type.Pointer != 1 {
		t.Errorf("b pointer depth = %d, want 1", b.Type.Pointer)
	}
	c, _ := pr.res.Builder.Items.Decl(items[2])
	if !c.Init.IsValid() {
		t.Error("c lost its initializer")
	}
}

func TestParseControlFlow(t *testing.T) {
	pr := mustParseClean(t, `
void run(int n) {
    int i;
    for (i = 0; i < n; i++) {
        if (i % 2) {
            continue;
        }
    }
    while (i > 0) {
        i--;
    }
    do {
        i++;
    } while (i < 5);
    switch (n) {
    case 0:
        break;
    default:
        break;
    }
}
`)
	fn := pr.function(t, 0)
	block, _ := pr.res.Builder.Stmts.Block(fn.Body)

	want := []ast.StmtKind{
		ast.StmtDecl, ast.StmtFor, ast.StmtWhile, ast.StmtDoWhile, ast.StmtSwitch,
	}
	if len(block.Stmts) != len(want) {
		t.Fatalf("got %d statements, want %d", len(block.Stmts), len(want))
	}
	for i, w := range want {
		if got := pr.res.Builder.Stmts.Get(block.Stmts[i]).Kind; got != w {
			t.Errorf("statement %d kind = %v, want %v", i, got, w)
		}
	}

	while, ok := pr.res.Builder.Stmts.While(block.Stmts[2])
	if !ok {
		t.Fatal("while payload missing")
	}
	bin, ok := pr.res.Builder.Exprs.Binary(while.Cond)
	if !ok || bin.Op != ast.ExprBinaryGreater {
		t.Error("while condition is not i > 0")
	}
}

func TestParseGotoAndLabel(t *testing.T) {
	pr := mustParseClean(t, `
void f(void) {
cleanup:
    return;
}
void g(void) {
    goto cleanup;
}
`)
	f := pr.function(t, 0)
	block, _ := pr.res.Builder.Stmts.Block(f.Body)
	label, ok := pr.res.Builder.Stmts.Label(block.Stmts[0])
	if !ok {
		t.Fatal("labeled statement missing")
	}
	if got := pr.interner.MustLookup(label.Name); got != "cleanup" {
		t.Errorf("label = %q", got)
	}
	if !label.Stmt.IsValid() {
		t.Error("label lost its inner statement")
	}

	g := pr.function(t, 1)
	gBlock, _ := pr.res.Builder.Stmts.Block(g.Body)
	gt, ok := pr.res.Builder.Stmts.Goto(gBlock.Stmts[0])
	if !ok {
		t.Fatal("goto statement missing")
	}
	if got := pr.interner.MustLookup(gt.Label); got != "cleanup" {
		t.Errorf("goto label = %q", got)
	}
}

func TestParseCallAndCast(t *testing.T) {
	pr := mustParseClean(t, `
void f(void) {
    (void)printf("%d", 42);
    int *p = (int *)malloc(sizeof(int));
}
`)
	fn := pr.function(t, 0)
	block, _ := pr.res.Builder.Stmts.Block(fn.Body)

	exprStmt, _ := pr.res.Builder.Stmts.Expr(block.Stmts[0])
	cast, ok := pr.res.Builder.Exprs.Cast(exprStmt.Expr)
	if !ok {
		t.Fatal("(void) did not parse as a cast")
	}
	if !cast.Type.IsVoidValue() {
		t.Error("cast type is not plain void")
	}
	call, ok := pr.res.Builder.Exprs.Call(cast.Operand)
	if !ok {
		t.Fatal("cast operand is not a call")
	}
	if len(call.Args) != 2 {
		t.Errorf("got %d args, want 2", len(call.Args))
	}

	decl, _ := pr.res.Builder.Stmts.Decl(block.Stmts[1])
	if len(decl.Decls) != 1 {
		t.Fatalf("got %d declarators, want 1", len(decl.Decls))
	}
	ptrCast, ok := pr.res.Builder.Exprs.Cast(decl.Decls[0].Init)
	if !ok {
		t.Fatal("initializer is not a cast")
	}
	if ptrCast.Type.Pointer != 1 || ptrCast.Type.IsVoidValue() {
		t.Error("cast type is not int*")
	}
	if _, ok := pr.res.Builder.Exprs.Call(ptrCast.Operand); !ok {
		t.Error("cast operand is not the malloc call")
	}
}

func TestParsePrecedence(t *testing.T) {
	pr := mustParseClean(t, "int x = 1 + 2 * 3;\n")
	decl, _ := pr.res.Builder.Items.Decl(pr.items()[0])
	add, ok := pr.res.Builder.Exprs.Binary(decl.Init)
	if !ok || add.Op != ast.ExprBinaryAdd {
		t.Fatal("top operator is not +")
	}
	mul, ok := pr.res.Builder.Exprs.Binary(add.Right)
	if !ok || mul.Op != ast.ExprBinaryMul {
		t.Error("* does not bind tighter than +")
	}
}

func TestParseAssignmentIsRightAssociative(t *testing.T) {
	pr := mustParseClean(t, `
void f(void) {
    int a;
    int b;
    a = b = 1;
}
`)
	fn := pr.function(t, 0)
	block, _ := pr.res.Builder.Stmts.Block(fn.Body)
	exprStmt, _ := pr.res.Builder.Stmts.Expr(block.Stmts[2])
	outer, ok := pr.res.Builder.Exprs.Binary(exprStmt.Expr)
	if !ok || outer.Op != ast.ExprBinaryAssign {
		t.Fatal("top operator is not =")
	}
	inner, ok := pr.res.Builder.Exprs.Binary(outer.Right)
	if !ok || inner.Op != ast.ExprBinaryAssign {
		t.Error("right operand of = is not the nested assignment")
	}
}

func TestParseStructDefinitionSkipped(t *testing.T) {
	pr := mustParseClean(t, `
struct point {
    int x;
    int y;
};
struct point origin;
`)
	items := pr.items()
	if len(items) != 2 {
		t.Fatalf("got %d items, want 2", len(items))
	}
	def, _ := pr.res.Builder.Items.Decl(items[0])
	if def.Name != source.NoStringID {
		t.Error("bare type declaration should have no declarator name")
	}
	v, _ := pr.res.Builder.Items.Decl(items[1])
	if got := pr.interner.MustLookup(v.Name); got != "origin" {
		t.Errorf("variable name = %q", got)
	}
}

func TestParsePreprocessorIgnored(t *testing.T) {
	pr := mustParseClean(t, `
#include <stdlib.h>
#define LIMIT 10

int x;
`)
	if len(pr.items()) != 1 {
		t.Fatalf("got %d items, want 1", len(pr.items()))
	}
}

func TestParseRecoversFromBadItem(t *testing.T) {
	pr := parse(t, `
@@@
int ok(void) { return 0; }
`)
	if !pr.bag.HasErrors() {
		t.Fatal("expected diagnostics for the garbage line")
	}
	var functions int
	for _, id := range pr.items() {
		if _, ok := pr.res.Builder.Items.Function(id); ok {
			functions++
		}
	}
	if functions != 1 {
		t.Errorf("recovery lost the following function, got %d", functions)
	}
}

func TestParseMissingSemicolonRecovers(t *testing.T) {
	pr := parse(t, `
void f(void) {
    int a = 1
    a = 2;
}
`)
	if !pr.bag.HasErrors() {
		t.Fatal("expected a diagnostic for the missing ';'")
	}
	if len(pr.items()) != 1 {
		t.Fatalf("got %d items, want 1", len(pr.items()))
	}
	if _, ok := pr.res.Builder.Items.Function(pr.items()[0]); !ok {
		t.Error("function lost during recovery")
	}
}

func TestParseSpansResolve(t *testing.T) {
	pr := mustParseClean(t, "int x;\nint yy;\n")
	second, _ := pr.res.Builder.Items.Decl(pr.items()[1])
	start, _ := pr.fs.Resolve(second.NameSpan)
	if start.Line != 2 || start.Col != 5 {
		t.Errorf("yy starts at %d:%d, want 2:5", start.Line, start.Col)
	}
}
