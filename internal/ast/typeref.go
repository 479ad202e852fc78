package ast

import (
	"tenet/internal/source"
)

// TypeRef is the reduced form of a declaration specifier list: one
// leading type specifier plus pointer depth. Compound or unsupported
// specifier lists reduce to void so downstream checks underclaim
// instead of guessing.
type TypeRef struct {
	Name    source.StringID // interned specifier spelling ("int", "FILE", ...)
	Pointer uint8           // number of '*' in the declarator
	Void    bool
	Span    source.Span
}

// VoidType returns the descriptor used for missing or unsupported
// specifier lists.
func VoidType(span source.Span) TypeRef {
	return TypeRef{Void: true, Span: span}
}

// IsVoidValue reports whether an expression of this type carries no
// value (plain void; void* is a value).
func (t TypeRef) IsVoidValue() bool {
	return t.Void && t.Pointer == 0
}
