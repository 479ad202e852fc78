package token

import (
	"tenet/internal/source"
)

// Token represents a single source token with its location and trivia.
type Token struct {
	Kind    Kind
	Span    source.Span
	Text    string
	Leading []Trivia
}

// IsLiteral reports whether the token is a numeric, character, or string literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case IntLit, FloatLit, CharLit, StringLit:
		return true
	default:
		return false
	}
}

// IsKeyword reports whether the token is a language keyword.
func (t Token) IsKeyword() bool {
	switch t.Kind {
	case KwVoid, KwChar, KwShort, KwInt, KwLong, KwFloat, KwDouble,
		KwSigned, KwUnsigned, KwConst, KwVolatile, KwStatic, KwExtern,
		KwStruct, KwUnion, KwEnum, KwTypedef, KwIf, KwElse, KwWhile,
		KwDo, KwFor, KwReturn, KwGoto, KwBreak, KwContinue, KwSwitch,
		KwCase, KwDefault, KwSizeof:
		return true
	default:
		return false
	}
}

// IsTypeSpecifier reports whether the token can begin a declaration
// specifier list (type keywords plus the qualifiers we track).
func (t Token) IsTypeSpecifier() bool {
	switch t.Kind {
	case KwVoid, KwChar, KwShort, KwInt, KwLong, KwFloat, KwDouble,
		KwSigned, KwUnsigned, KwConst, KwVolatile, KwStatic, KwExtern,
		KwStruct, KwUnion, KwEnum, KwTypedef:
		return true
	default:
		return false
	}
}

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }
