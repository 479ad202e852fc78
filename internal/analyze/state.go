package analyze

import (
	"tenet/internal/ast"
)

// walkState tracks where in the tree the walk currently is. Rules read
// it through Context accessors.
type walkState struct {
	currentFn *ast.FunctionData
}

// pushFunction sets the active function and returns a restore closure.
func (ctx *Context) pushFunction(fn *ast.FunctionData) func() {
	prev := ctx.state.currentFn
	ctx.state.currentFn = fn
	return func() {
		ctx.state.currentFn = prev
	}
}
