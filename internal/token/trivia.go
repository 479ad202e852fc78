package token

import "tenet/internal/source"

// TriviaKind classifies the non-token source material between tokens.
type TriviaKind uint8

const (
	TriviaSpace TriviaKind = iota
	TriviaNewline
	TriviaLineComment
	TriviaBlockComment
	// TriviaPreprocessor covers a whole '#...' line, including backslash
	// continuations. Directives are not expanded; swallowing them keeps
	// line numbers exact without running a preprocessor.
	TriviaPreprocessor
)

var triviaNames = map[TriviaKind]string{
	TriviaSpace:        "space",
	TriviaNewline:      "newline",
	TriviaLineComment:  "line_comment",
	TriviaBlockComment: "block_comment",
	TriviaPreprocessor: "preprocessor",
}

func (k TriviaKind) String() string {
	if s, ok := triviaNames[k]; ok {
		return s
	}
	return "unknown"
}

// Trivia is one run of whitespace, comment, or preprocessor text.
type Trivia struct {
	Kind TriviaKind
	Span source.Span
	Text string
}
