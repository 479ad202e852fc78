package diagfmt

import (
	"encoding/json"
	"strings"
	"testing"

	"tenet/internal/diag"
)

func TestJSONOutput(t *testing.T) {
	bag, fs := fixtureBag(t)

	var sb strings.Builder
	if err := JSON(&sb, bag, fs, JSONOpts{IncludePositions: true}); err != nil {
		t.Fatal(err)
	}

	var out DiagnosticsOutput
	if err := json.Unmarshal([]byte(sb.String()), &out); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if out.Count != 1 || len(out.Diagnostics) != 1 {
		t.Fatalf("count = %d, diagnostics = %d", out.Count, len(out.Diagnostics))
	}

	d := out.Diagnostics[0]
	if d.Code != "RUL3001" {
		t.Errorf("code = %q, want RUL3001", d.Code)
	}
	if d.Severity != "ERROR" {
		t.Errorf("severity = %q, want ERROR", d.Severity)
	}
	if d.Location.File != "main.c" {
		t.Errorf("file = %q, want main.c", d.Location.File)
	}
	if d.Location.StartLine != 2 || d.Location.StartCol != 5 {
		t.Errorf("position = %d:%d, want 2:5", d.Location.StartLine, d.Location.StartCol)
	}
}

func TestJSONWithoutPositions(t *testing.T) {
	bag, fs := fixtureBag(t)

	var sb strings.Builder
	if err := JSON(&sb, bag, fs, JSONOpts{}); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(sb.String(), "start_line") {
		t.Errorf("positions emitted without IncludePositions:\n%s", sb.String())
	}
}

func TestJSONEmptyBag(t *testing.T) {
	_, fs := fixtureBag(t)

	var sb strings.Builder
	emptyBag := diag.NewBag(10)
	if err := JSON(&sb, emptyBag, fs, JSONOpts{}); err != nil {
		t.Fatal(err)
	}
	var out DiagnosticsOutput
	if err := json.Unmarshal([]byte(sb.String()), &out); err != nil {
		t.Fatal(err)
	}
	if out.Count != 0 {
		t.Errorf("count = %d, want 0", out.Count)
	}
	// The diagnostics key must be a JSON array even when empty.
	if !strings.Contains(sb.String(), `"diagnostics": []`) {
		t.Errorf("empty bag did not serialize an array:\n%s", sb.String())
	}
}
