package ast

import (
	"tenet/internal/source"
)

// ItemKind enumerates external declarations.
type ItemKind uint8

const (
	// ItemFunction is a function definition with a body.
	ItemFunction ItemKind = iota
	// ItemDecl is a top-level declaration: a prototype, a global
	// variable, or a type declaration (struct/union/enum/typedef).
	ItemDecl
	// ItemBad stands in for an external declaration the parser could
	// not make sense of. Rules pass it through unexamined.
	ItemBad
)

// Item represents one external declaration.
type Item struct {
	Kind    ItemKind
	Span    source.Span
	Payload PayloadID
}

// Param is a single parameter of a function declarator.
type Param struct {
	Name source.StringID // NoStringID for unnamed parameters
	Type TypeRef
	Span source.Span
}

// FunctionData is the payload of ItemFunction.
type FunctionData struct {
	Name     source.StringID
	NameSpan source.Span
	Ret      TypeRef
	Params   []Param
	Body     StmtID
}

// DeclData is the payload of ItemDecl.
type DeclData struct {
	Name        source.StringID // NoStringID for bare type declarations
	NameSpan    source.Span
	Type        TypeRef
	Init        ExprID // valid only for initialized globals
	IsPrototype bool   // declarator carried a parameter list
}

// Items manages allocation of external declarations.
type Items struct {
	Arena     *Arena[Item]
	Functions *Arena[FunctionData]
	Decls     *Arena[DeclData]
}

func NewItems(capHint uint) *Items {
	if capHint == 0 {
		capHint = 1 << 7
	}
	return &Items{
		Arena:     NewArena[Item](capHint),
		Functions: NewArena[FunctionData](capHint),
		Decls:     NewArena[DeclData](capHint),
	}
}

func (it *Items) new(kind ItemKind, span source.Span, payload PayloadID) ItemID {
	return ItemID(it.Arena.Allocate(Item{
		Kind:    kind,
		Span:    span,
		Payload: payload,
	}))
}

// Get returns the item with the given ID.
func (it *Items) Get(id ItemID) *Item {
	return it.Arena.Get(uint32(id))
}

// NewFunction creates a function definition item.
func (it *Items) NewFunction(span source.Span, data FunctionData) ItemID {
	payload := it.Functions.Allocate(data)
	return it.new(ItemFunction, span, PayloadID(payload))
}

// Function returns the function payload for id.
func (it *Items) Function(id ItemID) (*FunctionData, bool) {
	item := it.Get(id)
	if item == nil || item.Kind != ItemFunction {
		return nil, false
	}
	return it.Functions.Get(uint32(item.Payload)), true
}

// NewDecl creates a top-level declaration item.
func (it *Items) NewDecl(span source.Span, data DeclData) ItemID {
	payload := it.Decls.Allocate(data)
	return it.new(ItemDecl, span, PayloadID(payload))
}

// Decl returns the declaration payload for id.
func (it *Items) Decl(id ItemID) (*DeclData, bool) {
	item := it.Get(id)
	if item == nil || item.Kind != ItemDecl {
		return nil, false
	}
	return it.Decls.Get(uint32(item.Payload)), true
}

// NewBad creates a placeholder for unparseable input.
func (it *Items) NewBad(span source.Span) ItemID {
	return it.new(ItemBad, span, NoPayloadID)
}
