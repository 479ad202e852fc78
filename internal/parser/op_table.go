package parser

import (
	"tenet/internal/ast"
	"tenet/internal/token"
)

type binOpInfo struct {
	op   ast.ExprBinaryOp
	prec uint8
}

// binOps drives precedence climbing for left-associative binary
// operators. Assignment, ternary, and the comma operator live in their
// own layers above this table.
var binOps = map[token.Kind]binOpInfo{
	token.OrOr:   {ast.ExprBinaryLogicalOr, 1},
	token.AndAnd: {ast.ExprBinaryLogicalAnd, 2},

	token.Pipe:  {ast.ExprBinaryBitOr, 3},
	token.Caret: {ast.ExprBinaryBitXor, 4},
	token.Amp:   {ast.ExprBinaryBitAnd, 5},

	token.EqEq:   {ast.ExprBinaryEq, 6},
	token.BangEq: {ast.ExprBinaryNotEq, 6},

	token.Lt:   {ast.ExprBinaryLess, 7},
	token.LtEq: {ast.ExprBinaryLessEq, 7},
	token.Gt:   {ast.ExprBinaryGreater, 7},
	token.GtEq: {ast.ExprBinaryGreaterEq, 7},

	token.Shl: {ast.ExprBinaryShiftLeft, 8},
	token.Shr: {ast.ExprBinaryShiftRight, 8},

	token.Plus:  {ast.ExprBinaryAdd, 9},
	token.Minus: {ast.ExprBinarySub, 9},

	token.Star:    {ast.ExprBinaryMul, 10},
	token.Slash:   {ast.ExprBinaryDiv, 10},
	token.Percent: {ast.ExprBinaryMod, 10},
}

// assignOps maps assignment tokens; all are right-associative.
var assignOps = map[token.Kind]ast.ExprBinaryOp{
	token.Assign:        ast.ExprBinaryAssign,
	token.PlusAssign:    ast.ExprBinaryAddAssign,
	token.MinusAssign:   ast.ExprBinarySubAssign,
	token.StarAssign:    ast.ExprBinaryMulAssign,
	token.SlashAssign:   ast.ExprBinaryDivAssign,
	token.PercentAssign: ast.ExprBinaryModAssign,
	token.AmpAssign:     ast.ExprBinaryAndAssign,
	token.PipeAssign:    ast.ExprBinaryOrAssign,
	token.CaretAssign:   ast.ExprBinaryXorAssign,
	token.ShlAssign:     ast.ExprBinaryShlAssign,
	token.ShrAssign:     ast.ExprBinaryShrAssign,
}

var prefixOps = map[token.Kind]ast.ExprUnaryOp{
	token.Plus:       ast.ExprUnaryPlus,
	token.Minus:      ast.ExprUnaryNeg,
	token.Bang:       ast.ExprUnaryNot,
	token.Tilde:      ast.ExprUnaryBitNot,
	token.Star:       ast.ExprUnaryDeref,
	token.Amp:        ast.ExprUnaryAddrOf,
	token.PlusPlus:   ast.ExprUnaryPreInc,
	token.MinusMinus: ast.ExprUnaryPreDec,
}
