package version

import "github.com/fatih/color"

// Build metadata for the tenet CLI, overridable at build time via
// -ldflags "-X tenet/internal/version.<var>=...".
var (
	major = "0"
	minor = "1"
	patch = "0"
	pre   = "-dev"

	// Version is the semantic version of the CLI, each segment tinted
	// when the terminal supports it.
	Version = Render()

	// GitCommit is an optional git commit hash.
	GitCommit = ""

	// GitMessage is an optional git commit message.
	GitMessage = ""

	// BuildDate is an optional build date in ISO-8601.
	BuildDate = ""
)

// Render assembles the version string from its segments.
func Render() string {
	return color.New(color.FgYellow, color.Bold).Sprint(major) + "." +
		color.New(color.FgGreen, color.Bold).Sprint(minor) + "." +
		color.New(color.FgBlue, color.Bold).Sprint(patch) + pre
}
