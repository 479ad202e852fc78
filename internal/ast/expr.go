package ast

import (
	"tenet/internal/source"
)

// ExprKind enumerates the expression variants.
type ExprKind uint8

const (
	// ExprIdent represents an identifier expression.
	ExprIdent ExprKind = iota
	// ExprLit represents a literal expression.
	ExprLit
	// ExprCall represents a function call expression.
	ExprCall
	// ExprBinary represents a binary expression (assignments included).
	ExprBinary
	// ExprUnary represents a prefix or postfix unary expression.
	ExprUnary
	// ExprCast represents an explicit cast expression.
	ExprCast
	// ExprGroup represents a parenthesized expression.
	ExprGroup
	ExprIndex
	ExprMember
	ExprTernary
	ExprSizeof
	// ExprBad stands in for an expression the parser recovered over.
	ExprBad
)

// Expr represents an expression node in the AST.
type Expr struct {
	Kind    ExprKind
	Span    source.Span
	Payload PayloadID
}

// LitKind classifies literal expressions.
type LitKind uint8

const (
	LitInt LitKind = iota
	LitFloat
	LitChar
	LitString
)

// IsNumeric reports whether the literal is a numeric constant
// (int, float, or char; chars are integer constants in C).
func (k LitKind) IsNumeric() bool {
	return k == LitInt || k == LitFloat || k == LitChar
}

// ExprBinaryOp enumerates binary operator kinds.
type ExprBinaryOp uint8

const (
	// Arithmetic

	ExprBinaryAdd ExprBinaryOp = iota
	ExprBinarySub
	ExprBinaryMul
	ExprBinaryDiv
	ExprBinaryMod

	// Bitwise

	ExprBinaryBitAnd
	ExprBinaryBitOr
	ExprBinaryBitXor
	ExprBinaryShiftLeft
	ExprBinaryShiftRight

	// Logical

	ExprBinaryLogicalAnd
	ExprBinaryLogicalOr

	// Comparison

	ExprBinaryEq
	ExprBinaryNotEq
	ExprBinaryLess
	ExprBinaryLessEq
	ExprBinaryGreater
	ExprBinaryGreaterEq

	// Assignment (C treats these as expressions)

	ExprBinaryAssign
	ExprBinaryAddAssign
	ExprBinarySubAssign
	ExprBinaryMulAssign
	ExprBinaryDivAssign
	ExprBinaryModAssign
	ExprBinaryAndAssign
	ExprBinaryOrAssign
	ExprBinaryXorAssign
	ExprBinaryShlAssign
	ExprBinaryShrAssign

	// Sequencing

	ExprBinaryComma
)

var binaryOpNames = map[ExprBinaryOp]string{
	ExprBinaryAdd:        "+",
	ExprBinarySub:        "-",
	ExprBinaryMul:        "*",
	ExprBinaryDiv:        "/",
	ExprBinaryMod:        "%",
	ExprBinaryBitAnd:     "&",
	ExprBinaryBitOr:      "|",
	ExprBinaryBitXor:     "^",
	ExprBinaryShiftLeft:  "<<",
	ExprBinaryShiftRight: ">>",
	ExprBinaryLogicalAnd: "&&",
	ExprBinaryLogicalOr:  "||",
	ExprBinaryEq:         "==",
	ExprBinaryNotEq:      "!=",
	ExprBinaryLess:       "<",
	ExprBinaryLessEq:     "<=",
	ExprBinaryGreater:    ">",
	ExprBinaryGreaterEq:  ">=",
	ExprBinaryAssign:     "=",
	ExprBinaryAddAssign:  "+=",
	ExprBinarySubAssign:  "-=",
	ExprBinaryMulAssign:  "*=",
	ExprBinaryDivAssign:  "/=",
	ExprBinaryModAssign:  "%=",
	ExprBinaryAndAssign:  "&=",
	ExprBinaryOrAssign:   "|=",
	ExprBinaryXorAssign:  "^=",
	ExprBinaryShlAssign:  "<<=",
	ExprBinaryShrAssign:  ">>=",
	ExprBinaryComma:      ",",
}

func (op ExprBinaryOp) String() string {
	if s, ok := binaryOpNames[op]; ok {
		return s
	}
	return "?"
}

// IsRelational reports whether the operator compares two operands
// (==, !=, <, <=, >, >=).
func (op ExprBinaryOp) IsRelational() bool {
	switch op {
	case ExprBinaryEq, ExprBinaryNotEq, ExprBinaryLess, ExprBinaryLessEq,
		ExprBinaryGreater, ExprBinaryGreaterEq:
		return true
	default:
		return false
	}
}

// IsAssign reports whether the operator stores into its left operand.
func (op ExprBinaryOp) IsAssign() bool {
	return op >= ExprBinaryAssign && op <= ExprBinaryShrAssign
}

// ExprUnaryOp enumerates unary operator kinds.
type ExprUnaryOp uint8

const (
	ExprUnaryPlus ExprUnaryOp = iota
	ExprUnaryNeg
	ExprUnaryNot
	ExprUnaryBitNot
	ExprUnaryDeref
	ExprUnaryAddrOf
	ExprUnaryPreInc
	ExprUnaryPreDec
	ExprUnaryPostInc
	ExprUnaryPostDec
)

var unaryOpNames = map[ExprUnaryOp]string{
	ExprUnaryPlus:    "+",
	ExprUnaryNeg:     "-",
	ExprUnaryNot:     "!",
	ExprUnaryBitNot:  "~",
	ExprUnaryDeref:   "*",
	ExprUnaryAddrOf:  "&",
	ExprUnaryPreInc:  "++",
	ExprUnaryPreDec:  "--",
	ExprUnaryPostInc: "post++",
	ExprUnaryPostDec: "post--",
}

func (op ExprUnaryOp) String() string {
	if s, ok := unaryOpNames[op]; ok {
		return s
	}
	return "?"
}

// ExprIdentData is the payload of ExprIdent.
type ExprIdentData struct {
	Name source.StringID
}

// ExprLitData is the payload of ExprLit. Value holds the raw spelling.
type ExprLitData struct {
	Kind  LitKind
	Value source.StringID
}

// ExprCallData is the payload of ExprCall.
type ExprCallData struct {
	Callee ExprID
	Args   []ExprID
}

// ExprBinaryData is the payload of ExprBinary.
type ExprBinaryData struct {
	Op    ExprBinaryOp
	Left  ExprID
	Right ExprID
}

// ExprUnaryData is the payload of ExprUnary.
type ExprUnaryData struct {
	Op      ExprUnaryOp
	Operand ExprID
}

// ExprCastData is the payload of ExprCast.
type ExprCastData struct {
	Type    TypeRef
	Operand ExprID
}

// ExprGroupData is the payload of ExprGroup.
type ExprGroupData struct {
	Inner ExprID
}

// ExprIndexData is the payload of ExprIndex.
type ExprIndexData struct {
	Target ExprID
	Index  ExprID
}

// ExprMemberData is the payload of ExprMember.
type ExprMemberData struct {
	Target ExprID
	Name   source.StringID
	Arrow  bool // true for '->', false for '.'
}

// ExprTernaryData is the payload of ExprTernary.
type ExprTernaryData struct {
	Cond ExprID
	Then ExprID
	Else ExprID
}

// ExprSizeofData is the payload of ExprSizeof. Exactly one of Type and
// Operand is meaningful.
type ExprSizeofData struct {
	Type    TypeRef
	Operand ExprID
}
