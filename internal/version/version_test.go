package version

import (
	"testing"

	"github.com/fatih/color"
)

func TestRenderWithoutColor(t *testing.T) {
	prev := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = prev }()

	if got := Render(); got != "0.1.0-dev" {
		t.Errorf("Render() = %q, want 0.1.0-dev", got)
	}
}

func TestOptionalMetadataDefaultsEmpty(t *testing.T) {
	if GitCommit != "" || GitMessage != "" || BuildDate != "" {
		t.Errorf("build metadata should default empty, got %q %q %q",
			GitCommit, GitMessage, BuildDate)
	}
	if Version == "" {
		t.Error("Version must have a default value")
	}
}
