package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"tenet/internal/ast"
	"tenet/internal/source"
)

// astPrinter renders the parsed tree one node per line, children
// indented beneath their parent. Used by "parse --format pretty".
type astPrinter struct {
	w        io.Writer
	builder  *ast.Builder
	interner *source.Interner
	fs       *source.FileSet
}

// DumpAST writes an indented dump of one parsed file.
func DumpAST(w io.Writer, builder *ast.Builder, interner *source.Interner,
	fs *source.FileSet, file ast.FileID) {
	p := &astPrinter{w: w, builder: builder, interner: interner, fs: fs}

	f := builder.Files.Get(file)
	srcFile := fs.Get(f.Span.File)
	fmt.Fprintf(w, "file %s (%d items)\n", srcFile.Path, len(f.Items))
	for _, item := range f.Items {
		p.item(item, 1)
	}
}

func (p *astPrinter) line(depth int, format string, args ...any) {
	fmt.Fprintf(p.w, "%s%s\n", strings.Repeat("  ", depth), fmt.Sprintf(format, args...))
}

func (p *astPrinter) name(id source.StringID) string {
	if id == source.NoStringID {
		return "_"
	}
	s, _ := p.interner.Lookup(id)
	return s
}

func (p *astPrinter) typeRef(t ast.TypeRef) string {
	base := p.name(t.Name)
	if t.Void {
		base = "void"
	}
	if base == "_" {
		base = "?"
	}
	return base + strings.Repeat("*", int(t.Pointer))
}

func (p *astPrinter) item(id ast.ItemID, depth int) {
	item := p.builder.Items.Get(id)
	if item == nil {
		return
	}
	switch item.Kind {
	case ast.ItemFunction:
		fn, _ := p.builder.Items.Function(id)
		params := make([]string, len(fn.Params))
		for i, param := range fn.Params {
			params[i] = p.typeRef(param.Type) + " " + p.name(param.Name)
		}
		p.line(depth, "function %s(%s) -> %s",
			p.name(fn.Name), strings.Join(params, ", "), p.typeRef(fn.Ret))
		p.stmt(fn.Body, depth+1)

	case ast.ItemDecl:
		decl, _ := p.builder.Items.Decl(id)
		switch {
		case decl.IsPrototype:
			p.line(depth, "prototype %s -> %s", p.name(decl.Name), p.typeRef(decl.Type))
		case decl.Name == source.NoStringID:
			p.line(depth, "type-decl %s", p.typeRef(decl.Type))
		default:
			p.line(depth, "decl %s: %s", p.name(decl.Name), p.typeRef(decl.Type))
			p.expr(decl.Init, depth+1)
		}

	case ast.ItemBad:
		p.line(depth, "bad-item")
	}
}

func (p *astPrinter) stmt(id ast.StmtID, depth int) {
	if !id.IsValid() {
		return
	}
	stmt := p.builder.Stmts.Get(id)
	if stmt == nil {
		return
	}
	switch stmt.Kind {
	case ast.StmtBlock:
		data, _ := p.builder.Stmts.Block(id)
		p.line(depth, "block")
		for _, child := range data.Stmts {
			p.stmt(child, depth+1)
		}
	case ast.StmtExpr:
		data, _ := p.builder.Stmts.Expr(id)
		p.line(depth, "expr-stmt")
		p.expr(data.Expr, depth+1)
	case ast.StmtDecl:
		data, _ := p.builder.Stmts.Decl(id)
		for _, decl := range data.Decls {
			p.line(depth, "local %s: %s", p.name(decl.Name), p.typeRef(decl.Type))
			p.expr(decl.Init, depth+1)
		}
	case ast.StmtIf:
		data, _ := p.builder.Stmts.If(id)
		p.line(depth, "if")
		p.expr(data.Cond, depth+1)
		p.stmt(data.Then, depth+1)
		if data.Else.IsValid() {
			p.line(depth, "else")
			p.stmt(data.Else, depth+1)
		}
	case ast.StmtWhile:
		data, _ := p.builder.Stmts.While(id)
		p.line(depth, "while")
		p.expr(data.Cond, depth+1)
		p.stmt(data.Body, depth+1)
	case ast.StmtDoWhile:
		data, _ := p.builder.Stmts.While(id)
		p.line(depth, "do-while")
		p.stmt(data.Body, depth+1)
		p.expr(data.Cond, depth+1)
	case ast.StmtFor:
		data, _ := p.builder.Stmts.For(id)
		p.line(depth, "for")
		p.stmt(data.Init, depth+1)
		p.expr(data.Cond, depth+1)
		p.expr(data.Post, depth+1)
		p.stmt(data.Body, depth+1)
	case ast.StmtReturn:
		data, _ := p.builder.Stmts.Return(id)
		p.line(depth, "return")
		p.expr(data.Value, depth+1)
	case ast.StmtGoto:
		data, _ := p.builder.Stmts.Goto(id)
		p.line(depth, "goto %s", p.name(data.Label))
	case ast.StmtLabel:
		data, _ := p.builder.Stmts.Label(id)
		p.line(depth, "label %s", p.name(data.Name))
		p.stmt(data.Stmt, depth+1)
	case ast.StmtSwitch:
		data, _ := p.builder.Stmts.Switch(id)
		p.line(depth, "switch")
		p.expr(data.Cond, depth+1)
		p.stmt(data.Body, depth+1)
	case ast.StmtCase:
		data, _ := p.builder.Stmts.Case(id)
		if data.Value.IsValid() {
			p.line(depth, "case")
			p.expr(data.Value, depth+1)
		} else {
			p.line(depth, "default")
		}
		p.stmt(data.Stmt, depth+1)
	case ast.StmtBreak:
		p.line(depth, "break")
	case ast.StmtContinue:
		p.line(depth, "continue")
	case ast.StmtEmpty:
		p.line(depth, "empty")
	case ast.StmtBad:
		p.line(depth, "bad-stmt")
	}
}

func (p *astPrinter) expr(id ast.ExprID, depth int) {
	if !id.IsValid() {
		return
	}
	expr := p.builder.Exprs.Get(id)
	if expr == nil {
		return
	}
	switch expr.Kind {
	case ast.ExprIdent:
		data, _ := p.builder.Exprs.Ident(id)
		p.line(depth, "ident %s", p.name(data.Name))
	case ast.ExprLit:
		data, _ := p.builder.Exprs.Literal(id)
		p.line(depth, "lit %s", p.name(data.Value))
	case ast.ExprCall:
		data, _ := p.builder.Exprs.Call(id)
		p.line(depth, "call (%d args)", len(data.Args))
		p.expr(data.Callee, depth+1)
		for _, arg := range data.Args {
			p.expr(arg, depth+1)
		}
	case ast.ExprBinary:
		data, _ := p.builder.Exprs.Binary(id)
		p.line(depth, "binary %s", data.Op)
		p.expr(data.Left, depth+1)
		p.expr(data.Right, depth+1)
	case ast.ExprUnary:
		data, _ := p.builder.Exprs.Unary(id)
		p.line(depth, "unary %s", data.Op)
		p.expr(data.Operand, depth+1)
	case ast.ExprCast:
		data, _ := p.builder.Exprs.Cast(id)
		p.line(depth, "cast (%s)", p.typeRef(data.Type))
		p.expr(data.Operand, depth+1)
	case ast.ExprGroup:
		data, _ := p.builder.Exprs.Group(id)
		p.line(depth, "group")
		p.expr(data.Inner, depth+1)
	case ast.ExprIndex:
		data, _ := p.builder.Exprs.Index(id)
		p.line(depth, "index")
		p.expr(data.Target, depth+1)
		p.expr(data.Index, depth+1)
	case ast.ExprMember:
		data, _ := p.builder.Exprs.Member(id)
		op := "."
		if data.Arrow {
			op = "->"
		}
		p.line(depth, "member %s%s", op, p.name(data.Name))
		p.expr(data.Target, depth+1)
	case ast.ExprTernary:
		data, _ := p.builder.Exprs.Ternary(id)
		p.line(depth, "ternary")
		p.expr(data.Cond, depth+1)
		p.expr(data.Then, depth+1)
		p.expr(data.Else, depth+1)
	case ast.ExprSizeof:
		data, _ := p.builder.Exprs.Sizeof(id)
		if data.Operand.IsValid() {
			p.line(depth, "sizeof")
			p.expr(data.Operand, depth+1)
		} else {
			p.line(depth, "sizeof (%s)", p.typeRef(data.Type))
		}
	case ast.ExprBad:
		p.line(depth, "bad-expr")
	}
}
