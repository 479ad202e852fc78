package analyze

import (
	"fmt"

	"tenet/internal/ast"
	"tenet/internal/diag"
)

// functionSizeRule bounds the number of source lines a function
// definition may span, specifiers through closing brace.
type functionSizeRule struct{}

func (functionSizeRule) CheckItem(ctx *Context, id ast.ItemID) {
	fn, ok := ctx.Builder.Items.Function(id)
	if !ok {
		return
	}
	span := ctx.Builder.Items.Get(id).Span
	start, end := ctx.FileSet.Resolve(span)

	lines := int(end.Line) - int(start.Line) + 1
	limit := ctx.Limits.MaxFunctionLines
	if lines <= limit {
		return
	}
	ctx.Report(diag.RuleFunctionSize, fn.NameSpan,
		fmt.Sprintf("function '%s' spans %d lines, limit is %d",
			ctx.Name(fn.Name), lines, limit))
}
