package ast

import (
	"tenet/internal/source"
)

// StmtKind enumerates the statement variants the parser produces.
type StmtKind uint8

const (
	StmtBlock StmtKind = iota
	StmtExpr
	StmtDecl
	StmtIf
	StmtWhile
	StmtDoWhile
	StmtFor
	StmtReturn
	StmtGoto
	StmtLabel
	StmtSwitch
	StmtCase
	StmtBreak
	StmtContinue
	StmtEmpty
	// StmtBad stands in for a statement the parser recovered over.
	StmtBad
)

// Stmt represents a statement node.
type Stmt struct {
	Kind    StmtKind
	Span    source.Span
	Payload PayloadID
}

// StmtBlockData is the payload of StmtBlock.
type StmtBlockData struct {
	Stmts []StmtID
}

// StmtExprData is the payload of StmtExpr.
type StmtExprData struct {
	Expr ExprID
}

// LocalDecl is one declarator of a local declaration statement.
type LocalDecl struct {
	Name     source.StringID
	NameSpan source.Span
	Type     TypeRef
	Init     ExprID
}

// StmtDeclData is the payload of StmtDecl. One statement may declare
// several names ("int a, b;").
type StmtDeclData struct {
	Decls []LocalDecl
}

// StmtIfData is the payload of StmtIf.
type StmtIfData struct {
	Cond ExprID
	Then StmtID
	Else StmtID // NoStmtID when absent
}

// StmtWhileData is the payload of StmtWhile and StmtDoWhile.
type StmtWhileData struct {
	Cond ExprID
	Body StmtID
}

// StmtForData is the payload of StmtFor. Every clause is optional.
type StmtForData struct {
	Init StmtID // declaration or expression statement, NoStmtID when empty
	Cond ExprID
	Post ExprID
	Body StmtID
}

// StmtReturnData is the payload of StmtReturn.
type StmtReturnData struct {
	Value ExprID // NoExprID for bare return
}

// StmtGotoData is the payload of StmtGoto.
type StmtGotoData struct {
	Label     source.StringID
	LabelSpan source.Span
}

// StmtLabelData is the payload of StmtLabel.
type StmtLabelData struct {
	Name source.StringID
	Stmt StmtID
}

// StmtSwitchData is the payload of StmtSwitch.
type StmtSwitchData struct {
	Cond ExprID
	Body StmtID
}

// StmtCaseData is the payload of StmtCase. Value is NoExprID for
// the default label.
type StmtCaseData struct {
	Value ExprID
	Stmt  StmtID
}

// Stmts manages allocation of statements.
type Stmts struct {
	Arena    *Arena[Stmt]
	Blocks   *Arena[StmtBlockData]
	Exprs    *Arena[StmtExprData]
	Decls    *Arena[StmtDeclData]
	Ifs      *Arena[StmtIfData]
	Whiles   *Arena[StmtWhileData] // shared by StmtWhile and StmtDoWhile
	Fors     *Arena[StmtForData]
	Returns  *Arena[StmtReturnData]
	Gotos    *Arena[StmtGotoData]
	Labels   *Arena[StmtLabelData]
	Switches *Arena[StmtSwitchData]
	Cases    *Arena[StmtCaseData]
}

func NewStmts(capHint uint) *Stmts {
	if capHint == 0 {
		capHint = 1 << 8
	}
	return &Stmts{
		Arena:    NewArena[Stmt](capHint),
		Blocks:   NewArena[StmtBlockData](capHint),
		Exprs:    NewArena[StmtExprData](capHint),
		Decls:    NewArena[StmtDeclData](capHint),
		Ifs:      NewArena[StmtIfData](capHint),
		Whiles:   NewArena[StmtWhileData](capHint),
		Fors:     NewArena[StmtForData](capHint),
		Returns:  NewArena[StmtReturnData](capHint),
		Gotos:    NewArena[StmtGotoData](capHint),
		Labels:   NewArena[StmtLabelData](capHint),
		Switches: NewArena[StmtSwitchData](capHint),
		Cases:    NewArena[StmtCaseData](capHint),
	}
}

func (s *Stmts) new(kind StmtKind, span source.Span, payload PayloadID) StmtID {
	return StmtID(s.Arena.Allocate(Stmt{
		Kind:    kind,
		Span:    span,
		Payload: payload,
	}))
}

// Get returns the statement with the given ID.
func (s *Stmts) Get(id StmtID) *Stmt {
	return s.Arena.Get(uint32(id))
}

func (s *Stmts) NewBlock(span source.Span, stmts []StmtID) StmtID {
	payload := s.Blocks.Allocate(StmtBlockData{Stmts: stmts})
	return s.new(StmtBlock, span, PayloadID(payload))
}

func (s *Stmts) Block(id StmtID) (*StmtBlockData, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtBlock {
		return nil, false
	}
	return s.Blocks.Get(uint32(stmt.Payload)), true
}

func (s *Stmts) NewExpr(span source.Span, expr ExprID) StmtID {
	payload := s.Exprs.Allocate(StmtExprData{Expr: expr})
	return s.new(StmtExpr, span, PayloadID(payload))
}

func (s *Stmts) Expr(id StmtID) (*StmtExprData, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtExpr {
		return nil, false
	}
	return s.Exprs.Get(uint32(stmt.Payload)), true
}

func (s *Stmts) NewDecl(span source.Span, decls []LocalDecl) StmtID {
	payload := s.Decls.Allocate(StmtDeclData{Decls: decls})
	return s.new(StmtDecl, span, PayloadID(payload))
}

func (s *Stmts) Decl(id StmtID) (*StmtDeclData, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtDecl {
		return nil, false
	}
	return s.Decls.Get(uint32(stmt.Payload)), true
}

func (s *Stmts) NewIf(span source.Span, cond ExprID, then, els StmtID) StmtID {
	payload := s.Ifs.Allocate(StmtIfData{Cond: cond, Then: then, Else: els})
	return s.new(StmtIf, span, PayloadID(payload))
}

func (s *Stmts) If(id StmtID) (*StmtIfData, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtIf {
		return nil, false
	}
	return s.Ifs.Get(uint32(stmt.Payload)), true
}

func (s *Stmts) NewWhile(span source.Span, cond ExprID, body StmtID) StmtID {
	payload := s.Whiles.Allocate(StmtWhileData{Cond: cond, Body: body})
	return s.new(StmtWhile, span, PayloadID(payload))
}

func (s *Stmts) NewDoWhile(span source.Span, cond ExprID, body StmtID) StmtID {
	payload := s.Whiles.Allocate(StmtWhileData{Cond: cond, Body: body})
	return s.new(StmtDoWhile, span, PayloadID(payload))
}

// While returns the loop payload for StmtWhile or StmtDoWhile nodes.
func (s *Stmts) While(id StmtID) (*StmtWhileData, bool) {
	stmt := s.Get(id)
	if stmt == nil || (stmt.Kind != StmtWhile && stmt.Kind != StmtDoWhile) {
		return nil, false
	}
	return s.Whiles.Get(uint32(stmt.Payload)), true
}

func (s *Stmts) NewFor(span source.Span, init StmtID, cond, post ExprID, body StmtID) StmtID {
	payload := s.Fors.Allocate(StmtForData{Init: init, Cond: cond, Post: post, Body: body})
	return s.new(StmtFor, span, PayloadID(payload))
}

func (s *Stmts) For(id StmtID) (*StmtForData, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtFor {
		return nil, false
	}
	return s.Fors.Get(uint32(stmt.Payload)), true
}

func (s *Stmts) NewReturn(span source.Span, value ExprID) StmtID {
	payload := s.Returns.Allocate(StmtReturnData{Value: value})
	return s.new(StmtReturn, span, PayloadID(payload))
}

func (s *Stmts) Return(id StmtID) (*StmtReturnData, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtReturn {
		return nil, false
	}
	return s.Returns.Get(uint32(stmt.Payload)), true
}

func (s *Stmts) NewGoto(span source.Span, label source.StringID, labelSpan source.Span) StmtID {
	payload := s.Gotos.Allocate(StmtGotoData{Label: label, LabelSpan: labelSpan})
	return s.new(StmtGoto, span, PayloadID(payload))
}

func (s *Stmts) Goto(id StmtID) (*StmtGotoData, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtGoto {
		return nil, false
	}
	return s.Gotos.Get(uint32(stmt.Payload)), true
}

func (s *Stmts) NewLabel(span source.Span, name source.StringID, inner StmtID) StmtID {
	payload := s.Labels.Allocate(StmtLabelData{Name: name, Stmt: inner})
	return s.new(StmtLabel, span, PayloadID(payload))
}

func (s *Stmts) Label(id StmtID) (*StmtLabelData, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtLabel {
		return nil, false
	}
	return s.Labels.Get(uint32(stmt.Payload)), true
}

func (s *Stmts) NewSwitch(span source.Span, cond ExprID, body StmtID) StmtID {
	payload := s.Switches.Allocate(StmtSwitchData{Cond: cond, Body: body})
	return s.new(StmtSwitch, span, PayloadID(payload))
}

func (s *Stmts) Switch(id StmtID) (*StmtSwitchData, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtSwitch {
		return nil, false
	}
	return s.Switches.Get(uint32(stmt.Payload)), true
}

func (s *Stmts) NewCase(span source.Span, value ExprID, inner StmtID) StmtID {
	payload := s.Cases.Allocate(StmtCaseData{Value: value, Stmt: inner})
	return s.new(StmtCase, span, PayloadID(payload))
}

func (s *Stmts) Case(id StmtID) (*StmtCaseData, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtCase {
		return nil, false
	}
	return s.Cases.Get(uint32(stmt.Payload)), true
}

func (s *Stmts) NewBreak(span source.Span) StmtID {
	return s.new(StmtBreak, span, NoPayloadID)
}

func (s *Stmts) NewContinue(span source.Span) StmtID {
	return s.new(StmtContinue, span, NoPayloadID)
}

func (s *Stmts) NewEmpty(span source.Span) StmtID {
	return s.new(StmtEmpty, span, NoPayloadID)
}

func (s *Stmts) NewBad(span source.Span) StmtID {
	return s.new(StmtBad, span, NoPayloadID)
}
