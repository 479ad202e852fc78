package analyze

import (
	"fmt"

	"tenet/internal/ast"
	"tenet/internal/diag"
)

// recursionRule flags functions that call themselves directly. Cycles
// through other functions are not traced.
type recursionRule struct{}

func (recursionRule) CheckExpr(ctx *Context, id ast.ExprID) {
	fn := ctx.CurrentFunction()
	if fn == nil {
		return
	}
	call, ok := ctx.Builder.Exprs.Call(id)
	if !ok {
		return
	}
	name, _, ok := calleeName(ctx, call.Callee)
	if !ok || name != fn.Name {
		return
	}
	span := ctx.Builder.Exprs.Get(id).Span
	ctx.Report(diag.RuleRecursion, span,
		fmt.Sprintf("function '%s' calls itself", ctx.Name(fn.Name)))
}
