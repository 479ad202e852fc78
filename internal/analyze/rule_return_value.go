package analyze

import (
	"fmt"

	"tenet/internal/ast"
	"tenet/internal/diag"
)

// returnValueRule flags expression statements that call a function with
// a non-void return type and drop the result. Wrapping the call in a
// cast, "(void)printf(...)", marks the result as deliberately ignored
// and silences the check. Calls to unknown names are skipped: without a
// declaration the return type is anyone's guess.
type returnValueRule struct{}

func (r returnValueRule) CheckStmt(ctx *Context, id ast.StmtID) {
	data, ok := ctx.Builder.Stmts.Expr(id)
	if !ok {
		return
	}
	r.checkDiscarded(ctx, data.Expr)
}

// checkDiscarded inspects one discarded-value expression. Comma chains
// discard every operand, so both sides are checked.
func (r returnValueRule) checkDiscarded(ctx *Context, id ast.ExprID) {
	id = stripGroups(ctx, id)
	if !id.IsValid() {
		return
	}

	if bin, ok := ctx.Builder.Exprs.Binary(id); ok && bin.Op == ast.ExprBinaryComma {
		r.checkDiscarded(ctx, bin.Left)
		r.checkDiscarded(ctx, bin.Right)
		return
	}

	call, ok := ctx.Builder.Exprs.Call(id)
	if !ok {
		return
	}
	name, _, ok := calleeName(ctx, call.Callee)
	if !ok {
		return
	}
	sym, ok := ctx.Symbols.Lookup(name)
	if !ok || sym.Kind != SymbolFunction || sym.ReturnsVoid {
		return
	}
	span := ctx.Builder.Exprs.Get(id).Span
	ctx.Report(diag.RuleReturnValue, span,
		fmt.Sprintf("return value of '%s' is ignored", ctx.Name(name)))
}
