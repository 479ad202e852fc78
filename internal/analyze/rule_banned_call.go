package analyze

import (
	"fmt"

	"tenet/internal/ast"
	"tenet/internal/diag"
)

// bannedCallRule flags every call to one fixed function name. The
// setjmp and longjmp checks are two instances of it.
type bannedCallRule struct {
	name string
	code diag.Code
}

func newSetjmpRule() bannedCallRule {
	return bannedCallRule{name: "setjmp", code: diag.RuleSetjmp}
}

func newLongjmpRule() bannedCallRule {
	return bannedCallRule{name: "longjmp", code: diag.RuleLongjmp}
}

func (r bannedCallRule) CheckExpr(ctx *Context, id ast.ExprID) {
	call, ok := ctx.Builder.Exprs.Call(id)
	if !ok {
		return
	}
	name, _, ok := calleeName(ctx, call.Callee)
	if !ok || ctx.Name(name) != r.name {
		return
	}
	span := ctx.Builder.Exprs.Get(id).Span
	ctx.Report(r.code, span,
		fmt.Sprintf("call to '%s' is not allowed", r.name))
}
