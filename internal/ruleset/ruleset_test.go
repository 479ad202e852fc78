package ruleset

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const fullManifest = `
[rule_set]
restrict_goto = true
restrict_setjmp = false
restrict_longjmp = true
restrict_recursion = true
fixed_loop_bounds = false
restrict_heap_allocation = true
restrict_function_size = true
check_return_value = false
`

func TestParseFullManifest(t *testing.T) {
	rs, err := Parse([]byte(fullManifest))
	if err != nil {
		t.Fatal(err)
	}
	if !rs.RuleSet.RestrictGoto || rs.RuleSet.RestrictSetjmp {
		t.Error("toggles did not round-trip")
	}
	if rs.Limits.MaxFunctionLines != DefaultMaxFunctionLines {
		t.Errorf("default limit = %d, want %d", rs.Limits.MaxFunctionLines, DefaultMaxFunctionLines)
	}
}

func TestParseMissingKeyIsRejected(t *testing.T) {
	manifest := strings.Replace(fullManifest, "restrict_recursion = true\n", "", 1)
	_, err := Parse([]byte(manifest))
	if err == nil {
		t.Fatal("expected an error for a missing mandatory key")
	}
	if !strings.Contains(err.Error(), "restrict_recursion") {
		t.Errorf("error does not name the missing key: %v", err)
	}
}

func TestParseMissingTableIsRejected(t *testing.T) {
	if _, err := Parse([]byte("[limits]\nmax_function_lines = 10\n")); err == nil {
		t.Fatal("expected an error for a missing [rule_set] table")
	}
}

func TestParseUnknownKeyIsRejected(t *testing.T) {
	manifest := fullManifest + "restrict_pointers = true\n"
	_, err := Parse([]byte(manifest))
	if err == nil {
		t.Fatal("expected an error for an unknown key")
	}
}

func TestParseLimitOverride(t *testing.T) {
	manifest := fullManifest + "\n[limits]\nmax_function_lines = 25\n"
	rs, err := Parse([]byte(manifest))
	if err != nil {
		t.Fatal(err)
	}
	if rs.Limits.MaxFunctionLines != 25 {
		t.Errorf("limit = %d, want 25", rs.Limits.MaxFunctionLines)
	}
}

func TestParseNonPositiveLimitIsRejected(t *testing.T) {
	manifest := fullManifest + "\n[limits]\nmax_function_lines = 0\n"
	if _, err := Parse([]byte(manifest)); err == nil {
		t.Fatal("expected an error for a zero limit")
	}
}

func TestParseBadTOML(t *testing.T) {
	if _, err := Parse([]byte("[rule_set\n")); err == nil {
		t.Fatal("expected a parse error")
	}
}

func TestDefaultTOMLRoundTrips(t *testing.T) {
	rs, err := Parse([]byte(DefaultTOML))
	if err != nil {
		t.Fatal(err)
	}
	if *rs != *Default() {
		t.Error("DefaultTOML does not parse to Default()")
	}
}

func TestHashChangesWithPolicy(t *testing.T) {
	a := Default()
	b := Default()
	if a.Hash() != b.Hash() {
		t.Error("identical policies hash differently")
	}
	b.RuleSet.RestrictGoto = false
	if a.Hash() == b.Hash() {
		t.Error("different toggles share a hash")
	}
	c := Default()
	c.Limits.MaxFunctionLines = 10
	if a.Hash() == c.Hash() {
		t.Error("different limits share a hash")
	}
}

func TestFindManifestWalksUp(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "src", "core")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}
	manifest := filepath.Join(root, ManifestName)
	if err := os.WriteFile(manifest, []byte(DefaultTOML), 0o644); err != nil {
		t.Fatal(err)
	}

	found, ok, err := FindManifest(nested)
	if err != nil {
		t.Fatal(err)
	}
	if !ok || found != manifest {
		t.Errorf("found %q (ok=%v), want %q", found, ok, manifest)
	}

	projRoot, ok, err := FindProjectRoot(nested)
	if err != nil || !ok {
		t.Fatalf("project root not found: %v", err)
	}
	if projRoot != root {
		t.Errorf("root = %q, want %q", projRoot, root)
	}
}

func TestFindManifestMissing(t *testing.T) {
	_, ok, err := FindManifest(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Error("manifest reported found in an empty tree")
	}
}
