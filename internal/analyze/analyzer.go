package analyze

import (
	"tenet/internal/ast"
	"tenet/internal/ruleset"
	"tenet/internal/source"
)

// Analyzer holds the checks one policy enables. Checks run in a fixed
// registration order so repeated runs over the same input produce
// identical diagnostics.
type Analyzer struct {
	itemRules []ItemRule
	stmtRules []StmtRule
	exprRules []ExprRule
}

// New builds an analyzer from the policy toggles.
func New(rs *ruleset.Ruleset) *Analyzer {
	a := &Analyzer{}
	t := rs.RuleSet

	if t.RestrictGoto {
		a.stmtRules = append(a.stmtRules, gotoRule{})
	}
	if t.RestrictSetjmp {
		a.exprRules = append(a.exprRules, newSetjmpRule())
	}
	if t.RestrictLongjmp {
		a.exprRules = append(a.exprRules, newLongjmpRule())
	}
	if t.RestrictRecursion {
		a.exprRules = append(a.exprRules, recursionRule{})
	}
	if t.FixedLoopBounds {
		a.stmtRules = append(a.stmtRules, loopBoundsRule{})
	}
	if t.RestrictHeapAllocation {
		a.exprRules = append(a.exprRules, heapAllocRule{})
	}
	if t.RestrictFunctionSize {
		a.itemRules = append(a.itemRules, functionSizeRule{})
	}
	if t.CheckReturnValue {
		a.stmtRules = append(a.stmtRules, returnValueRule{})
	}
	return a
}

// Analyze runs the enabled checks over one parsed file. Pass one
// indexes every top-level declaration, so calls may reference functions
// declared further down; pass two walks the tree.
func (a *Analyzer) Analyze(ctx *Context, file ast.FileID) {
	f := ctx.Builder.Files.Get(file)
	if f == nil {
		return
	}
	a.collectDeclarations(ctx, f.Items)

	for _, itemID := range f.Items {
		a.checkItem(ctx, itemID)
	}
}

func (a *Analyzer) collectDeclarations(ctx *Context, items []ast.ItemID) {
	for _, id := range items {
		if fn, ok := ctx.Builder.Items.Function(id); ok {
			ctx.Symbols.Register(Symbol{
				Name:        fn.Name,
				Kind:        SymbolFunction,
				ReturnsVoid: fn.Ret.IsVoidValue(),
				Span:        fn.NameSpan,
			})
			continue
		}
		if decl, ok := ctx.Builder.Items.Decl(id); ok && decl.Name != source.NoStringID {
			kind := SymbolVariable
			returnsVoid := false
			if decl.IsPrototype {
				kind = SymbolFunction
				returnsVoid = decl.Type.IsVoidValue()
			}
			ctx.Symbols.Register(Symbol{
				Name:        decl.Name,
				Kind:        kind,
				ReturnsVoid: returnsVoid,
				Span:        decl.NameSpan,
			})
		}
	}
}

func (a *Analyzer) checkItem(ctx *Context, id ast.ItemID) {
	for _, rule := range a.itemRules {
		rule.CheckItem(ctx, id)
	}

	fn, ok := ctx.Builder.Items.Function(id)
	if !ok {
		return
	}
	restore := ctx.pushFunction(fn)
	defer restore()
	a.walkStmt(ctx, fn.Body)
}

func (a *Analyzer) walkStmt(ctx *Context, id ast.StmtID) {
	if !id.IsValid() {
		return
	}
	for _, rule := range a.stmtRules {
		rule.CheckStmt(ctx, id)
	}

	stmt := ctx.Builder.Stmts.Get(id)
	if stmt == nil {
		return
	}
	switch stmt.Kind {
	case ast.StmtBlock:
		block, _ := ctx.Builder.Stmts.Block(id)
		for _, child := range block.Stmts {
			a.walkStmt(ctx, child)
		}
	case ast.StmtExpr:
		data, _ := ctx.Builder.Stmts.Expr(id)
		a.walkExpr(ctx, data.Expr)
	case ast.StmtDecl:
		data, _ := ctx.Builder.Stmts.Decl(id)
		for _, decl := range data.Decls {
			a.walkExpr(ctx, decl.Init)
		}
	case ast.StmtIf:
		data, _ := ctx.Builder.Stmts.If(id)
		a.walkExpr(ctx, data.Cond)
		a.walkStmt(ctx, data.Then)
		a.walkStmt(ctx, data.Else)
	case ast.StmtWhile, ast.StmtDoWhile:
		data, _ := ctx.Builder.Stmts.While(id)
		a.walkExpr(ctx, data.Cond)
		a.walkStmt(ctx, data.Body)
	case ast.StmtFor:
		data, _ := ctx.Builder.Stmts.For(id)
		a.walkStmt(ctx, data.Init)
		a.walkExpr(ctx, data.Cond)
		a.walkExpr(ctx, data.Post)
		a.walkStmt(ctx, data.Body)
	case ast.StmtReturn:
		data, _ := ctx.Builder.Stmts.Return(id)
		a.walkExpr(ctx, data.Value)
	case ast.StmtLabel:
		data, _ := ctx.Builder.Stmts.Label(id)
		a.walkStmt(ctx, data.Stmt)
	case ast.StmtSwitch:
		data, _ := ctx.Builder.Stmts.Switch(id)
		a.walkExpr(ctx, data.Cond)
		a.walkStmt(ctx, data.Body)
	case ast.StmtCase:
		data, _ := ctx.Builder.Stmts.Case(id)
		a.walkExpr(ctx, data.Value)
		a.walkStmt(ctx, data.Stmt)
	case ast.StmtGoto, ast.StmtBreak, ast.StmtContinue, ast.StmtEmpty, ast.StmtBad:
		// leaves
	}
}

func (a *Analyzer) walkExpr(ctx *Context, id ast.ExprID) {
	if !id.IsValid() {
		return
	}
	for _, rule := range a.exprRules {
		rule.CheckExpr(ctx, id)
	}

	expr := ctx.Builder.Exprs.Get(id)
	if expr == nil {
		return
	}
	switch expr.Kind {
	case ast.ExprCall:
		data, _ := ctx.Builder.Exprs.Call(id)
		a.walkExpr(ctx, data.Callee)
		for _, arg := range data.Args {
			a.walkExpr(ctx, arg)
		}
	case ast.ExprBinary:
		data, _ := ctx.Builder.Exprs.Binary(id)
		a.walkExpr(ctx, data.Left)
		a.walkExpr(ctx, data.Right)
	case ast.ExprUnary:
		data, _ := ctx.Builder.Exprs.Unary(id)
		a.walkExpr(ctx, data.Operand)
	case ast.ExprCast:
		data, _ := ctx.Builder.Exprs.Cast(id)
		a.walkExpr(ctx, data.Operand)
	case ast.ExprGroup:
		data, _ := ctx.Builder.Exprs.Group(id)
		a.walkExpr(ctx, data.Inner)
	case ast.ExprIndex:
		data, _ := ctx.Builder.Exprs.Index(id)
		a.walkExpr(ctx, data.Target)
		a.walkExpr(ctx, data.Index)
	case ast.ExprMember:
		data, _ := ctx.Builder.Exprs.Member(id)
		a.walkExpr(ctx, data.Target)
	case ast.ExprTernary:
		data, _ := ctx.Builder.Exprs.Ternary(id)
		a.walkExpr(ctx, data.Cond)
		a.walkExpr(ctx, data.Then)
		a.walkExpr(ctx, data.Else)
	case ast.ExprSizeof:
		data, _ := ctx.Builder.Exprs.Sizeof(id)
		a.walkExpr(ctx, data.Operand)
	case ast.ExprIdent, ast.ExprLit, ast.ExprBad:
		// leaves
	}
}
