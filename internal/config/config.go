package config

import (
	"errors"
	"fmt"
)

type Config struct {
	// MAINTAINER NOTE: If you add/change/remove config fields that affect the
	// build, keep the CLI flags in internal/cli/build.go and the file overlay
	// in internal/config/file.go in sync.
	Inputs     Inputs
	Output     Output
	Thresholds Thresholds
	Runtime    Runtime
}

type Inputs struct {
	// ExtensionSummary is the extension conformance summary JSON
	// (see --extension-summary). Required.
	ExtensionSummary string

	// ExtensionEvents is the line-delimited extension events file
	// (see --extension-events). Optional: absence degrades per-extension
	// detail but is not fatal.
	ExtensionEvents string

	// ScenarioSummary is the scenario conformance summary JSON
	// (see --scenario-summary). Required.
	ScenarioSummary string
}

type Output struct {
	// Path is where the inventory document is written (see --out).
	Path string

	// NoConsole suppresses the console summary (see --no-console).
	NoConsole bool
}

// Thresholds is the regression thresholds block carried verbatim into the
// inventory document. The builder never gates on these; they are
// informational for a downstream regression-gate consumer.
type Thresholds struct {
	Tier1PassRateMinPct    float64 `json:"tier1_pass_rate_min_pct" yaml:"tier1_pass_rate_min_pct"`
	Tier2PassRateMinPct    float64 `json:"tier2_pass_rate_min_pct" yaml:"tier2_pass_rate_min_pct"`
	OverallPassRateMinPct  float64 `json:"overall_pass_rate_min_pct" yaml:"overall_pass_rate_min_pct"`
	ScenarioPassRateMinPct float64 `json:"scenario_pass_rate_min_pct" yaml:"scenario_pass_rate_min_pct"`
	MaxNewFailures         int     `json:"max_new_failures" yaml:"max_new_failures"`
}

type Runtime struct {
	// Verbose enables more detailed diagnostics.
	Verbose bool
}

// Default paths mirror the harness report layout.
const (
	DefaultExtensionSummary = "tests/ext_conformance/reports/conformance/conformance_report.json"
	DefaultExtensionEvents  = "tests/ext_conformance/reports/conformance/conformance_events.jsonl"
	DefaultScenarioSummary  = "tests/ext_conformance/reports/scenario_conformance.json"
	DefaultOutputPath       = "tests/ext_conformance/reports/inventory.json"
)

func New() *Config {
	return &Config{
		Inputs: Inputs{
			ExtensionSummary: DefaultExtensionSummary,
			ExtensionEvents:  DefaultExtensionEvents,
			ScenarioSummary:  DefaultScenarioSummary,
		},
		Output: Output{
			Path: DefaultOutputPath,
		},
		Thresholds: Thresholds{
			Tier1PassRateMinPct:    100.0,
			Tier2PassRateMinPct:    95.0,
			OverallPassRateMinPct:  80.0,
			ScenarioPassRateMinPct: 85.0,
			MaxNewFailures:         3,
		},
	}
}

func (c *Config) Validate() error {
	if c.Inputs.ExtensionSummary == "" {
		return errors.New("--extension-summary must not be empty")
	}
	if c.Inputs.ScenarioSummary == "" {
		return errors.New("--scenario-summary must not be empty")
	}
	if c.Output.Path == "" {
		return errors.New("--out must not be empty")
	}

	for name, pct := range map[string]float64{
		"tier1_pass_rate_min_pct":    c.Thresholds.Tier1PassRateMinPct,
		"tier2_pass_rate_min_pct":    c.Thresholds.Tier2PassRateMinPct,
		"overall_pass_rate_min_pct":  c.Thresholds.OverallPassRateMinPct,
		"scenario_pass_rate_min_pct": c.Thresholds.ScenarioPassRateMinPct,
	} {
		if pct < 0 || pct > 100 {
			return fmt.Errorf("threshold %s must be between 0 and 100, got %v", name, pct)
		}
	}
	if c.Thresholds.MaxNewFailures < 0 {
		return errors.New("threshold max_new_failures must be >= 0")
	}

	return nil
}
