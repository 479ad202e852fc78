package ast

import (
	"testing"

	"tenet/internal/source"
)

func TestArenaIDsAreOneBased(t *testing.T) {
	a := NewArena[int](4)
	if a.Get(0) != nil {
		t.Fatal("index 0 must be the invalid handle")
	}
	first := a.Allocate(42)
	if first != 1 {
		t.Fatalf("first allocation = %d, want 1", first)
	}
	if got := a.Get(first); got == nil || *got != 42 {
		t.Fatalf("Get(%d) = %v", first, got)
	}
	if a.Get(99) != nil {
		t.Fatal("out-of-range Get must return nil")
	}
}

func TestPayloadAccessorsRejectWrongKind(t *testing.T) {
	b := NewBuilder(Hints{})
	sp := source.Span{}

	id := b.Exprs.NewIdent(sp, source.StringID(1))
	if _, ok := b.Exprs.Call(id); ok {
		t.Fatal("Call accessor accepted an ident node")
	}
	if data, ok := b.Exprs.Ident(id); !ok || data.Name != source.StringID(1) {
		t.Fatal("Ident accessor failed on an ident node")
	}

	loop := b.Stmts.NewWhile(sp, NoExprID, NoStmtID)
	if _, ok := b.Stmts.While(loop); !ok {
		t.Fatal("While accessor failed on a while node")
	}
	doLoop := b.Stmts.NewDoWhile(sp, NoExprID, NoStmtID)
	if _, ok := b.Stmts.While(doLoop); !ok {
		t.Fatal("While accessor must also serve do/while nodes")
	}
	if _, ok := b.Stmts.Goto(loop); ok {
		t.Fatal("Goto accessor accepted a while node")
	}
}

func TestRelationalAndAssignOps(t *testing.T) {
	for _, op := range []ExprBinaryOp{ExprBinaryEq, ExprBinaryNotEq, ExprBinaryLess,
		ExprBinaryLessEq, ExprBinaryGreater, ExprBinaryGreaterEq} {
		if !op.IsRelational() {
			t.Errorf("op %d must be relational", op)
		}
	}
	if ExprBinaryAdd.IsRelational() || ExprBinaryAssign.IsRelational() {
		t.Error("non-comparison ops must not be relational")
	}
	if !ExprBinaryAddAssign.IsAssign() || ExprBinaryAdd.IsAssign() {
		t.Error("IsAssign range check broken")
	}
}
