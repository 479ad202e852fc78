package analyze

import (
	"tenet/internal/ast"
	"tenet/internal/diag"
)

// loopBoundsRule requires while and do/while conditions to compare
// against a numeric constant, so the loop has a syntactically visible
// bound. for loops are left to their header and not examined.
type loopBoundsRule struct{}

func (loopBoundsRule) CheckStmt(ctx *Context, id ast.StmtID) {
	stmt := ctx.Builder.Stmts.Get(id)
	if stmt == nil || (stmt.Kind != ast.StmtWhile && stmt.Kind != ast.StmtDoWhile) {
		return
	}
	data, _ := ctx.Builder.Stmts.While(id)
	if isBoundedCondition(ctx, data.Cond) {
		return
	}

	span := stmt.Span
	if cond := stripGroups(ctx, data.Cond); cond.IsValid() {
		span = ctx.Builder.Exprs.Get(cond).Span
	}
	ctx.Report(diag.RuleLoopBounds, span,
		"loop condition does not compare against a fixed bound")
}

// isBoundedCondition accepts a relational comparison with a numeric
// literal on either side. Anything else, a bare counter, a flag, a
// call, or a comparison of two variables, counts as unbounded.
func isBoundedCondition(ctx *Context, cond ast.ExprID) bool {
	cond = stripGroups(ctx, cond)
	if !cond.IsValid() {
		return false
	}
	bin, ok := ctx.Builder.Exprs.Binary(cond)
	if !ok || !bin.Op.IsRelational() {
		return false
	}
	return isNumericConstant(ctx, bin.Left) || isNumericConstant(ctx, bin.Right)
}

// isNumericConstant matches a numeric literal, optionally signed and
// optionally parenthesized.
func isNumericConstant(ctx *Context, id ast.ExprID) bool {
	id = stripGroups(ctx, id)
	if !id.IsValid() {
		return false
	}
	if unary, ok := ctx.Builder.Exprs.Unary(id); ok {
		if unary.Op == ast.ExprUnaryNeg || unary.Op == ast.ExprUnaryPlus {
			return isNumericConstant(ctx, unary.Operand)
		}
		return false
	}
	lit, ok := ctx.Builder.Exprs.Literal(id)
	return ok && lit.Kind.IsNumeric()
}
