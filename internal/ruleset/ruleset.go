package ruleset

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// ManifestName is the file the checker looks for when no explicit
// ruleset path is given.
const ManifestName = "ruleset.toml"

// DefaultMaxFunctionLines bounds function bodies when the manifest does
// not override limits.max_function_lines.
const DefaultMaxFunctionLines = 60

// Toggles mirrors the mandatory [rule_set] table. Every check is
// switched explicitly; a manifest that omits a key is rejected rather
// than defaulted, so a checked-in ruleset always states the full policy.
type Toggles struct {
	RestrictGoto           bool `toml:"restrict_goto"`
	RestrictSetjmp         bool `toml:"restrict_setjmp"`
	RestrictLongjmp        bool `toml:"restrict_longjmp"`
	RestrictRecursion      bool `toml:"restrict_recursion"`
	FixedLoopBounds        bool `toml:"fixed_loop_bounds"`
	RestrictHeapAllocation bool `toml:"restrict_heap_allocation"`
	RestrictFunctionSize   bool `toml:"restrict_function_size"`
	CheckReturnValue       bool `toml:"check_return_value"`
}

// Limits holds the numeric thresholds behind the size checks. Unlike
// [rule_set], the whole table is optional.
type Limits struct {
	MaxFunctionLines int `toml:"max_function_lines"`
}

// Ruleset is one parsed manifest.
type Ruleset struct {
	RuleSet Toggles `toml:"rule_set"`
	Limits  Limits  `toml:"limits"`
}

var mandatoryKeys = []string{
	"restrict_goto",
	"restrict_setjmp",
	"restrict_longjmp",
	"restrict_recursion",
	"fixed_loop_bounds",
	"restrict_heap_allocation",
	"restrict_function_size",
	"check_return_value",
}

// Load reads and validates a manifest from disk.
func Load(path string) (*Ruleset, error) {
	// #nosec G304 -- path is provided by the caller
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read ruleset: %w", err)
	}
	rs, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return rs, nil
}

// Parse decodes and validates manifest bytes.
func Parse(data []byte) (*Ruleset, error) {
	rs := &Ruleset{
		Limits: Limits{MaxFunctionLines: DefaultMaxFunctionLines},
	}
	md, err := toml.Decode(string(data), rs)
	if err != nil {
		return nil, fmt.Errorf("parse ruleset: %w", err)
	}

	if !md.IsDefined("rule_set") {
		return nil, fmt.Errorf("ruleset: missing mandatory table [rule_set]")
	}
	for _, key := range mandatoryKeys {
		if !md.IsDefined("rule_set", key) {
			return nil, fmt.Errorf("ruleset: missing mandatory key rule_set.%s", key)
		}
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("ruleset: unknown key %q", undecoded[0].String())
	}
	if rs.Limits.MaxFunctionLines <= 0 {
		return nil, fmt.Errorf("ruleset: limits.max_function_lines must be positive, got %d",
			rs.Limits.MaxFunctionLines)
	}
	return rs, nil
}

// Default returns the policy used by "tenet init": everything on, the
// stock function-size limit.
func Default() *Ruleset {
	return &Ruleset{
		RuleSet: Toggles{
			RestrictGoto:           true,
			RestrictSetjmp:         true,
			RestrictLongjmp:        true,
			RestrictRecursion:      true,
			FixedLoopBounds:        true,
			RestrictHeapAllocation: true,
			RestrictFunctionSize:   true,
			CheckReturnValue:       true,
		},
		Limits: Limits{MaxFunctionLines: DefaultMaxFunctionLines},
	}
}

// DefaultTOML is the manifest "tenet init" writes.
const DefaultTOML = `# Safety ruleset manifest.
# Every key under [rule_set] is mandatory.

[rule_set]
restrict_goto = true
restrict_setjmp = true
restrict_longjmp = true
restrict_recursion = true
fixed_loop_bounds = true
restrict_heap_allocation = true
restrict_function_size = true
check_return_value = true

[limits]
max_function_lines = 60
`

// AnyEnabled reports whether at least one check is switched on.
func (t Toggles) AnyEnabled() bool {
	return t.RestrictGoto || t.RestrictSetjmp || t.RestrictLongjmp ||
		t.RestrictRecursion || t.FixedLoopBounds || t.RestrictHeapAllocation ||
		t.RestrictFunctionSize || t.CheckReturnValue
}
