package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents an identifier token.
	Ident

	// KwVoid represents the 'void' keyword.
	KwVoid
	// KwChar represents the 'char' keyword.
	KwChar
	// KwShort represents the 'short' keyword.
	KwShort
	// KwInt represents the 'int' keyword.
	KwInt
	// KwLong represents the 'long' keyword.
	KwLong
	// KwFloat represents the 'float' keyword.
	KwFloat
	// KwDouble represents the 'double' keyword.
	KwDouble
	// KwSigned represents the 'signed' keyword.
	KwSigned
	// KwUnsigned represents the 'unsigned' keyword.
	KwUnsigned
	// KwConst represents the 'const' keyword.
	KwConst
	// KwVolatile represents the 'volatile' keyword.
	KwVolatile
	// KwStatic represents the 'static' keyword.
	KwStatic
	// KwExtern represents the 'extern' keyword.
	KwExtern
	// KwStruct represents the 'struct' keyword.
	KwStruct
	// KwUnion represents the 'union' keyword.
	KwUnion
	// KwEnum represents the 'enum' keyword.
	KwEnum
	// KwTypedef represents the 'typedef' keyword.
	KwTypedef
	// KwIf represents the 'if' keyword.
	KwIf
	// KwElse represents the 'else' keyword.
	KwElse
	// KwWhile represents the 'while' keyword.
	KwWhile
	// KwDo represents the 'do' keyword.
	KwDo
	// KwFor represents the 'for' keyword.
	KwFor
	// KwReturn represents the 'return' keyword.
	KwReturn
	// KwGoto represents the 'goto' keyword.
	KwGoto
	// KwBreak represents the 'break' keyword.
	KwBreak
	// KwContinue represents the 'continue' keyword.
	KwContinue
	// KwSwitch represents the 'switch' keyword.
	KwSwitch
	// KwCase represents the 'case' keyword.
	KwCase
	// KwDefault represents the 'default' keyword.
	KwDefault
	// KwSizeof represents the 'sizeof' keyword.
	KwSizeof

	// IntLit represents an integer literal.
	IntLit
	// FloatLit represents a floating-point literal.
	FloatLit
	// CharLit represents a character literal.
	CharLit
	// StringLit represents a string literal.
	StringLit

	Plus    // +
	Minus   // -
	Star    // *
	Slash   // /
	Percent // %

	Amp   // &
	Pipe  // |
	Caret // ^
	Tilde // ~
	Bang  // !
	Shl   // <<
	Shr   // >>

	Lt     // <
	LtEq   // <=
	Gt     // >
	GtEq   // >=
	EqEq   // ==
	BangEq // !=

	AndAnd // &&
	OrOr   // ||

	Assign        // =
	PlusAssign    // +=
	MinusAssign   // -=
	StarAssign    // *=
	SlashAssign   // /=
	PercentAssign // %=
	AmpAssign     // &=
	PipeAssign    // |=
	CaretAssign   // ^=
	ShlAssign     // <<=
	ShrAssign     // >>=

	PlusPlus   // ++
	MinusMinus // --

	Question  // ?
	Colon     // :
	Semicolon // ;
	Comma     // ,
	Dot       // .
	Arrow     // ->
	Ellipsis  // ...

	LParen   // (
	RParen   // )
	LBrace   // {
	RBrace   // }
	LBracket // [
	RBracket // ]
)

var kindNames = map[Kind]string{
	Invalid:       "invalid",
	EOF:           "eof",
	Ident:         "ident",
	KwVoid:        "void",
	KwChar:        "char",
	KwShort:       "short",
	KwInt:         "int",
	KwLong:        "long",
	KwFloat:       "float",
	KwDouble:      "double",
	KwSigned:      "signed",
	KwUnsigned:    "unsigned",
	KwConst:       "const",
	KwVolatile:    "volatile",
	KwStatic:      "static",
	KwExtern:      "extern",
	KwStruct:      "struct",
	KwUnion:       "union",
	KwEnum:        "enum",
	KwTypedef:     "typedef",
	KwIf:          "if",
	KwElse:        "else",
	KwWhile:       "while",
	KwDo:          "do",
	KwFor:         "for",
	KwReturn:      "return",
	KwGoto:        "goto",
	KwBreak:       "break",
	KwContinue:    "continue",
	KwSwitch:      "switch",
	KwCase:        "case",
	KwDefault:     "default",
	KwSizeof:      "sizeof",
	IntLit:        "int_lit",
	FloatLit:      "float_lit",
	CharLit:       "char_lit",
	StringLit:     "string_lit",
	Plus:          "+",
	Minus:         "-",
	Star:          "*",
	Slash:         "/",
	Percent:       "%",
	Amp:           "&",
	Pipe:          "|",
	Caret:         "^",
	Tilde:         "~",
	Bang:          "!",
	Shl:           "<<",
	Shr:           ">>",
	Lt:            "<",
	LtEq:          "<=",
	Gt:            ">",
	GtEq:          ">=",
	EqEq:          "==",
	BangEq:        "!=",
	AndAnd:        "&&",
	OrOr:          "||",
	Assign:        "=",
	PlusAssign:    "+=",
	MinusAssign:   "-=",
	StarAssign:    "*=",
	SlashAssign:   "/=",
	PercentAssign: "%=",
	AmpAssign:     "&=",
	PipeAssign:    "|=",
	CaretAssign:   "^=",
	ShlAssign:     "<<=",
	ShrAssign:     ">>=",
	PlusPlus:      "++",
	MinusMinus:    "--",
	Question:      "?",
	Colon:         ":",
	Semicolon:     ";",
	Comma:         ",",
	Dot:           ".",
	Arrow:         "->",
	Ellipsis:      "...",
	LParen:        "(",
	RParen:        ")",
	LBrace:        "{",
	RBrace:        "}",
	LBracket:      "[",
	RBracket:      "]",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "unknown"
}
