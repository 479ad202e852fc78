package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"tenet/internal/diag"
	"tenet/internal/source"
)

// Short renders one line per diagnostic:
//
//	Error: <message> at line <N>
//
// The heap and return-value checks carry the offending expression, so
// for those the span's source text follows, caret-underlined.
func Short(w io.Writer, bag *diag.Bag, fs *source.FileSet) {
	for _, d := range bag.Items() {
		start, _ := fs.Resolve(d.Primary)
		fmt.Fprintf(w, "%s: %s at line %d\n", d.Severity.Word(), d.Message, start.Line)

		if wantsExcerpt(d.Code) {
			printExcerpt(w, fs, d.Primary)
		}
	}
}

func wantsExcerpt(code diag.Code) bool {
	return code == diag.RuleHeapAlloc || code == diag.RuleReturnValue
}

// printExcerpt writes the literal source the span covers and a caret
// underline of equal display width. Multi-line spans keep their first
// line only.
func printExcerpt(w io.Writer, fs *source.FileSet, span source.Span) {
	text := fs.Text(span)
	if idx := strings.IndexByte(text, '\n'); idx >= 0 {
		text = text[:idx]
	}
	if text == "" {
		return
	}
	width := runewidth.StringWidth(text)
	fmt.Fprintf(w, "  %s\n", text)
	fmt.Fprintf(w, "  %s\n", strings.Repeat("^", width))
}
