package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"tenet/internal/diag"
	"tenet/internal/diagfmt"
	"tenet/internal/driver"
	"tenet/internal/ruleset"
	"tenet/internal/source"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] <file.c|directory>",
	Short: "Check C sources against the configured rule set",
	Long: `Check runs every enabled safety rule over a single C file or over all
*.c/*.h files under a directory. The rule set is read from ruleset.toml,
discovered by walking up from the target unless --ruleset is given.

Exit codes: 0 when the sources are clean, 1 when findings were reported,
2 on configuration errors, unparsable files, or internal failures.`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().String("ruleset", "", "path to ruleset.toml (default: discover from target)")
	checkCmd.Flags().String("format", "pretty", "output format (pretty|short|json)")
	checkCmd.Flags().Int("jobs", 0, "max parallel workers for directory processing (0=auto)")
	checkCmd.Flags().Bool("cache", false, "enable persistent results cache (experimental)")
	checkCmd.Flags().Bool("fullpath", false, "emit absolute file paths in output")
}

func runCheck(cmd *cobra.Command, args []string) error {
	target := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	switch format {
	case "pretty", "short", "json":
	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	useCache, err := cmd.Flags().GetBool("cache")
	if err != nil {
		return fmt.Errorf("failed to get cache flag: %w", err)
	}
	fullPath, err := cmd.Flags().GetBool("fullpath")
	if err != nil {
		return fmt.Errorf("failed to get fullpath flag: %w", err)
	}
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}

	st, err := os.Stat(target)
	if err != nil {
		return fmt.Errorf("cannot stat %q: %w", target, err)
	}

	rs, err := resolveRuleset(cmd, target, st.IsDir())
	if err != nil {
		return err
	}

	var cache *driver.DiskCache
	if useCache {
		cache, err = driver.OpenDiskCache("tenet")
		if err != nil {
			return fmt.Errorf("failed to open disk cache: %w", err)
		}
	}

	var fileSet *source.FileSet
	merged := diag.NewBag(maxDiagnostics)
	if st.IsDir() {
		var results []driver.CheckResult
		fileSet, results, err = driver.CheckDir(cmd.Context(), target, rs, driver.Options{
			MaxDiagnostics: maxDiagnostics,
			Jobs:           jobs,
			Cache:          cache,
		})
		if err != nil {
			return fmt.Errorf("check failed: %w", err)
		}
		for _, res := range results {
			merged.Merge(res.Bag)
		}
		merged.Sort()
	} else {
		fileSet = source.NewFileSet()
		res := driver.CheckFile(fileSet, target, rs, maxDiagnostics)
		merged.Merge(res.Bag)
	}

	if err := renderBag(cmd, format, merged, fileSet, fullPath); err != nil {
		return err
	}

	switch {
	case merged.HasBlockers():
		return silentExit(cmd, 2)
	case merged.HasErrors():
		return silentExit(cmd, 1)
	}
	return nil
}

// resolveRuleset loads the manifest named by --ruleset, or discovers
// one by walking up from the target. A target with no manifest in
// reach is a configuration error.
func resolveRuleset(cmd *cobra.Command, target string, isDir bool) (*ruleset.Ruleset, error) {
	explicit, err := cmd.Flags().GetString("ruleset")
	if err != nil {
		return nil, fmt.Errorf("failed to get ruleset flag: %w", err)
	}
	if explicit != "" {
		return ruleset.Load(explicit)
	}

	startDir := target
	if !isDir {
		startDir = filepath.Dir(target)
	}
	path, ok, err := ruleset.FindManifest(startDir)
	if err != nil {
		return nil, fmt.Errorf("manifest discovery failed: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("no %s found from %q upward; run 'tenet init' or pass --ruleset",
			ruleset.ManifestName, startDir)
	}
	return ruleset.Load(path)
}

func renderBag(cmd *cobra.Command, format string, bag *diag.Bag, fs *source.FileSet, fullPath bool) error {
	switch format {
	case "json":
		return diagfmt.JSON(os.Stdout, bag, fs, diagfmt.JSONOpts{
			IncludePositions: true,
			FullPath:         fullPath,
		})
	case "short":
		diagfmt.Short(os.Stdout, bag, fs)
	default:
		diagfmt.Pretty(os.Stdout, bag, fs, diagfmt.PrettyOpts{
			Color:    useColor(cmd, os.Stdout),
			FullPath: fullPath,
		})
	}
	return nil
}

// silentExit suppresses cobra's usage/error echo; the diagnostics were
// already rendered.
func silentExit(cmd *cobra.Command, code int) error {
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	return &exitCodeError{code: code}
}
