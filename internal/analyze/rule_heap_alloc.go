package analyze

import (
	"fmt"

	"tenet/internal/ast"
	"tenet/internal/diag"
)

// heapFunctions are the libc entry points the heap check bans.
var heapFunctions = map[string]struct{}{
	"malloc":  {},
	"calloc":  {},
	"realloc": {},
	"free":    {},
}

// heapAllocRule flags any call into the libc heap allocator.
type heapAllocRule struct{}

func (heapAllocRule) CheckExpr(ctx *Context, id ast.ExprID) {
	call, ok := ctx.Builder.Exprs.Call(id)
	if !ok {
		return
	}
	name, _, ok := calleeName(ctx, call.Callee)
	if !ok {
		return
	}
	text := ctx.Name(name)
	if _, banned := heapFunctions[text]; !banned {
		return
	}
	span := ctx.Builder.Exprs.Get(id).Span
	ctx.Report(diag.RuleHeapAlloc, span,
		fmt.Sprintf("call to '%s' uses the heap", text))
}
