package analyze

import (
	"fmt"

	"tenet/internal/ast"
	"tenet/internal/diag"
)

// gotoRule flags every goto statement.
type gotoRule struct{}

func (gotoRule) CheckStmt(ctx *Context, id ast.StmtID) {
	data, ok := ctx.Builder.Stmts.Goto(id)
	if !ok {
		return
	}
	span := ctx.Builder.Stmts.Get(id).Span
	ctx.Report(diag.RuleGoto, span,
		fmt.Sprintf("goto '%s' is not allowed", ctx.Name(data.Label)))
}
