package analyze

import (
	"tenet/internal/ast"
	"tenet/internal/diag"
	"tenet/internal/ruleset"
	"tenet/internal/source"
)

// Context carries everything a rule may inspect during one walk.
type Context struct {
	FileSet  *source.FileSet
	Interner *source.Interner
	Builder  *ast.Builder
	Symbols  *SymbolTable
	Limits   ruleset.Limits

	reporter diag.Reporter
	state    walkState
}

// NewContext prepares a context for analyzing one parsed file.
func NewContext(fs *source.FileSet, interner *source.Interner, builder *ast.Builder,
	limits ruleset.Limits, reporter diag.Reporter) *Context {
	if reporter == nil {
		reporter = diag.NopReporter{}
	}
	return &Context{
		FileSet:  fs,
		Interner: interner,
		Builder:  builder,
		Symbols:  NewSymbolTable(),
		Limits:   limits,
		reporter: reporter,
	}
}

// Report emits one rule finding.
func (ctx *Context) Report(code diag.Code, span source.Span, msg string) {
	ctx.reporter.Report(code, diag.SevError, span, msg, nil)
}

// CurrentFunction returns the function whose body is being walked, or
// nil outside function bodies.
func (ctx *Context) CurrentFunction() *ast.FunctionData {
	return ctx.state.currentFn
}

// Name renders an interned name for messages.
func (ctx *Context) Name(id source.StringID) string {
	s, _ := ctx.Interner.Lookup(id)
	return s
}

// ItemRule inspects external declarations.
type ItemRule interface {
	CheckItem(ctx *Context, id ast.ItemID)
}

// StmtRule inspects every statement of every function body, pre-order.
type StmtRule interface {
	CheckStmt(ctx *Context, id ast.StmtID)
}

// ExprRule inspects every expression of every function body, pre-order.
type ExprRule interface {
	CheckExpr(ctx *Context, id ast.ExprID)
}

// stripGroups unwraps redundant parentheses.
func stripGroups(ctx *Context, id ast.ExprID) ast.ExprID {
	for id.IsValid() {
		group, ok := ctx.Builder.Exprs.Group(id)
		if !ok {
			return id
		}
		id = group.Inner
	}
	return ast.NoExprID
}

// calleeName resolves the identifier a call targets, seeing through
// grouping parentheses. Calls through pointers, members, or computed
// expressions have no static name and return false.
func calleeName(ctx *Context, callee ast.ExprID) (source.StringID, source.Span, bool) {
	callee = stripGroups(ctx, callee)
	if !callee.IsValid() {
		return source.NoStringID, source.Span{}, false
	}
	ident, ok := ctx.Builder.Exprs.Ident(callee)
	if !ok {
		return source.NoStringID, source.Span{}, false
	}
	return ident.Name, ctx.Builder.Exprs.Get(callee).Span, true
}
