package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"tenet/internal/diag"
	"tenet/internal/source"
)

// Pretty renders diagnostics for humans. It walks bag.Items() in order
// (callers sort the bag first) and prints, per diagnostic:
//
//	<path>:<line>:<col>: <SEV> [<CODE>]: <message>
//
// followed by the source line with a ^~~~ underline, then any notes.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	for _, d := range bag.Items() {
		printDiagnostic(w, d, fs, opts)
	}
}

func printDiagnostic(w io.Writer, d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts) {
	file := fs.Get(d.Primary.File)
	start, _ := fs.Resolve(d.Primary)

	sev := d.Severity.String()
	code := "[" + d.Code.ID() + "]"
	if opts.Color {
		sev = severityColor(d.Severity).Sprint(sev)
		code = color.New(color.FgCyan).Sprint(code)
	}

	fmt.Fprintf(w, "%s:%d:%d: %s %s: %s\n",
		file.DisplayPath(opts.FullPath), start.Line, start.Col, sev, code, d.Message)
	printUnderline(w, fs, d.Primary, opts)

	for _, note := range d.Notes {
		noteStart, _ := fs.Resolve(note.Span)
		noteFile := fs.Get(note.Span.File)
		fmt.Fprintf(w, "%s:%d:%d: note: %s\n",
			noteFile.DisplayPath(opts.FullPath), noteStart.Line, noteStart.Col, note.Msg)
		printUnderline(w, fs, note.Span, opts)
	}
}

// printUnderline prints the first source line a span covers with a
// caret underline aligned beneath the spanned text.
func printUnderline(w io.Writer, fs *source.FileSet, span source.Span, opts PrettyOpts) {
	file := fs.Get(span.File)
	start, end := fs.Resolve(span)

	line := file.GetLine(start.Line)
	if line == "" && span.Empty() {
		return
	}
	expanded := strings.ReplaceAll(line, "\t", "    ")
	fmt.Fprintf(w, "  | %s\n", expanded)

	prefix := sliceCols(line, 0, start.Col-1)
	pad := runewidth.StringWidth(strings.ReplaceAll(prefix, "\t", "    "))

	underLen := 1
	if end.Line == start.Line && end.Col > start.Col {
		covered := sliceCols(line, start.Col-1, end.Col-1)
		underLen = runewidth.StringWidth(covered)
	} else if end.Line > start.Line {
		// Span continues past this line; underline the rest of it.
		rest := sliceCols(line, start.Col-1, uint32(len(line)))
		underLen = runewidth.StringWidth(rest)
	}
	if underLen < 1 {
		underLen = 1
	}

	marker := "^" + strings.Repeat("~", underLen-1)
	if opts.Color {
		marker = color.New(color.FgGreen, color.Bold).Sprint(marker)
	}
	fmt.Fprintf(w, "  | %s%s\n", strings.Repeat(" ", pad), marker)
}

// sliceCols cuts [from, to) in byte columns, clamped to the line.
func sliceCols(line string, from, to uint32) string {
	if from > uint32(len(line)) {
		from = uint32(len(line))
	}
	if to > uint32(len(line)) {
		to = uint32(len(line))
	}
	if to < from {
		to = from
	}
	return line[from:to]
}

func severityColor(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return color.New(color.FgRed, color.Bold)
	case diag.SevWarning:
		return color.New(color.FgYellow, color.Bold)
	default:
		return color.New(color.FgBlue)
	}
}
