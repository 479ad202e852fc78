package diag

import (
	"fmt"
)

type Code uint16

const (
	UnknownCode Code = 0

	// Lexical
	LexUnknownChar              Code = 1001
	LexUnterminatedString       Code = 1002
	LexUnterminatedChar         Code = 1003
	LexUnterminatedBlockComment Code = 1004
	LexBadNumber                Code = 1005
	LexBadCharConstant          Code = 1006

	// Syntax
	SynUnexpectedToken  Code = 2001
	SynExpectSemicolon  Code = 2002
	SynExpectIdentifier Code = 2003
	SynExpectExpression Code = 2004
	SynUnclosedParen    Code = 2005
	SynUnclosedBrace    Code = 2006
	SynUnclosedBracket  Code = 2007
	SynExpectDeclarator Code = 2008
	SynExpectWhile      Code = 2009
	SynExpectColon      Code = 2010

	// Rules
	RuleGoto         Code = 3001
	RuleSetjmp       Code = 3002
	RuleLongjmp      Code = 3003
	RuleRecursion    Code = 3004
	RuleLoopBounds   Code = 3005
	RuleHeapAlloc    Code = 3006
	RuleFunctionSize Code = 3007
	RuleReturnValue  Code = 3008

	// I/O
	IOLoadFileError Code = 4001
)

var codeDescription = map[Code]string{
	UnknownCode: "unknown error",

	LexUnknownChar:              "unknown character",
	LexUnterminatedString:       "unterminated string literal",
	LexUnterminatedChar:         "unterminated character literal",
	LexUnterminatedBlockComment: "unterminated block comment",
	LexBadNumber:                "malformed numeric literal",
	LexBadCharConstant:          "malformed character constant",

	SynUnexpectedToken:  "unexpected token",
	SynExpectSemicolon:  "expected ';'",
	SynExpectIdentifier: "expected identifier",
	SynExpectExpression: "expected expression",
	SynUnclosedParen:    "unclosed '('",
	SynUnclosedBrace:    "unclosed '{'",
	SynUnclosedBracket:  "unclosed '['",
	SynExpectDeclarator: "expected declarator",
	SynExpectWhile:      "expected 'while'",
	SynExpectColon:      "expected ':'",

	RuleGoto:         "goto statement",
	RuleSetjmp:       "call to setjmp",
	RuleLongjmp:      "call to longjmp",
	RuleRecursion:    "direct recursion",
	RuleLoopBounds:   "unbounded loop condition",
	RuleHeapAlloc:    "heap allocation",
	RuleFunctionSize: "function exceeds size limit",
	RuleReturnValue:  "unchecked return value",

	IOLoadFileError: "failed to load file",
}

// ID renders the short stable identifier, e.g. RUL3001.
func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("RUL%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	}
	return "E0000"
}

// IsRule reports whether the code belongs to the rule range, i.e. the
// finding is a lint violation rather than a lex/parse/IO failure.
func (c Code) IsRule() bool {
	return c >= 3000 && c < 4000
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
