package config

import (
	"fmt"
	"os"

	"extinv/internal/flags"

	"gopkg.in/yaml.v3"
)

// FileConfig is the optional YAML overlay (see --config). Fields are
// pointers so the caller can tell "unset" from a zero value and leave
// explicitly set flags alone.
type FileConfig struct {
	Inputs struct {
		ExtensionSummary *string `yaml:"extension_summary"`
		ExtensionEvents  *string `yaml:"extension_events"`
		ScenarioSummary  *string `yaml:"scenario_summary"`
	} `yaml:"inputs"`
	Output struct {
		Path      *string `yaml:"path"`
		NoConsole *bool   `yaml:"no_console"`
	} `yaml:"output"`
	Thresholds struct {
		Tier1PassRateMinPct    *float64 `yaml:"tier1_pass_rate_min_pct"`
		Tier2PassRateMinPct    *float64 `yaml:"tier2_pass_rate_min_pct"`
		OverallPassRateMinPct  *float64 `yaml:"overall_pass_rate_min_pct"`
		ScenarioPassRateMinPct *float64 `yaml:"scenario_pass_rate_min_pct"`
		MaxNewFailures         *int     `yaml:"max_new_failures"`
	} `yaml:"thresholds"`
}

// LoadFile parses a YAML config file.
func LoadFile(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	var fc FileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return &fc, nil
}

// Apply copies every set field of the overlay onto c. isSet reports whether
// the corresponding CLI flag was set explicitly; flags win over the file.
func (fc *FileConfig) Apply(c *Config, isSet func(flag string) bool) {
	setString := func(flag string, dst *string, src *string) {
		if src != nil && !isSet(flag) {
			*dst = *src
		}
	}
	setBool := func(flag string, dst *bool, src *bool) {
		if src != nil && !isSet(flag) {
			*dst = *src
		}
	}
	setFloat := func(dst *float64, src *float64) {
		if src != nil {
			*dst = *src
		}
	}

	setString(flags.FlagExtensionSummary, &c.Inputs.ExtensionSummary, fc.Inputs.ExtensionSummary)
	setString(flags.FlagExtensionEvents, &c.Inputs.ExtensionEvents, fc.Inputs.ExtensionEvents)
	setString(flags.FlagScenarioSummary, &c.Inputs.ScenarioSummary, fc.Inputs.ScenarioSummary)
	setString(flags.FlagOut, &c.Output.Path, fc.Output.Path)
	setBool(flags.FlagNoConsole, &c.Output.NoConsole, fc.Output.NoConsole)

	// Thresholds have no flag counterpart; the file always wins over defaults.
	setFloat(&c.Thresholds.Tier1PassRateMinPct, fc.Thresholds.Tier1PassRateMinPct)
	setFloat(&c.Thresholds.Tier2PassRateMinPct, fc.Thresholds.Tier2PassRateMinPct)
	setFloat(&c.Thresholds.OverallPassRateMinPct, fc.Thresholds.OverallPassRateMinPct)
	setFloat(&c.Thresholds.ScenarioPassRateMinPct, fc.Thresholds.ScenarioPassRateMinPct)
	if fc.Thresholds.MaxNewFailures != nil {
		c.Thresholds.MaxNewFailures = *fc.Thresholds.MaxNewFailures
	}
}
