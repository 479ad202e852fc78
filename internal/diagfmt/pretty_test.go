package diagfmt

import (
	"strings"
	"testing"

	"tenet/internal/diag"
	"tenet/internal/source"
)

func fixtureBag(t *testing.T) (*diag.Bag, *source.FileSet) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("main.c", []byte("void f(void) {\n    goto out;\n}\n"))

	bag := diag.NewBag(10)
	bag.Add(diag.NewError(diag.RuleGoto, source.Span{File: id, Start: 19, End: 28},
		"goto 'out' is not allowed"))
	return bag, fs
}

func TestPrettyFormat(t *testing.T) {
	bag, fs := fixtureBag(t)
	var sb strings.Builder
	Pretty(&sb, bag, fs, PrettyOpts{})
	out := sb.String()

	if !strings.Contains(out, "main.c:2:5: ERROR [RUL3001]: goto 'out' is not allowed") {
		t.Errorf("header line missing or wrong:\n%s", out)
	}
	if !strings.Contains(out, "goto out;") {
		t.Errorf("source line missing:\n%s", out)
	}
	if !strings.Contains(out, "^~~~~~~~") {
		t.Errorf("underline missing:\n%s", out)
	}
}

func TestPrettyUnderlineAlignment(t *testing.T) {
	bag, fs := fixtureBag(t)
	var sb strings.Builder
	Pretty(&sb, bag, fs, PrettyOpts{})

	lines := strings.Split(sb.String(), "\n")
	if len(lines) < 3 {
		t.Fatalf("expected at least 3 lines:\n%s", sb.String())
	}
	srcLine, caretLine := lines[1], lines[2]
	caretCol := strings.IndexByte(caretLine, '^')
	if caretCol < 0 {
		t.Fatalf("no caret in %q", caretLine)
	}
	if caretCol >= len(srcLine) || srcLine[caretCol] != 'g' {
		t.Errorf("caret at column %d does not point at 'goto':\n%s\n%s", caretCol, srcLine, caretLine)
	}
}

func TestShortFormat(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("main.c", []byte("void f(void) {\n    p = malloc(8);\n    q = 0;\n}\n"))

	bag := diag.NewBag(10)
	bag.Add(diag.NewError(diag.RuleHeapAlloc, source.Span{File: id, Start: 23, End: 32},
		"call to 'malloc' uses the heap"))

	var sb strings.Builder
	Short(&sb, bag, fs)
	out := sb.String()

	if !strings.Contains(out, "Error: call to 'malloc' uses the heap at line 2") {
		t.Errorf("summary line missing:\n%s", out)
	}
	// Heap findings carry the spanned source and an underline of the
	// same width.
	if !strings.Contains(out, "  malloc(8)\n") {
		t.Errorf("source excerpt missing:\n%s", out)
	}
	if !strings.Contains(out, "  ^^^^^^^^^\n") {
		t.Errorf("caret underline missing or wrong width:\n%s", out)
	}
}

func TestShortNoExcerptForGoto(t *testing.T) {
	bag, fs := fixtureBag(t)
	var sb strings.Builder
	Short(&sb, bag, fs)
	out := sb.String()

	if !strings.Contains(out, "at line 2") {
		t.Errorf("summary line missing:\n%s", out)
	}
	if strings.Contains(out, "^") {
		t.Errorf("goto findings should not carry an excerpt:\n%s", out)
	}
}
