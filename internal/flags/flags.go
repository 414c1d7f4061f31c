package flags

// Package flags defines canonical CLI flag names shared across the CLI and
// the config file overlay. Keeping these as constants helps avoid drift
// between Cobra flag wiring and other code paths that reference flags.
// IMPORTANT: These are flag *names* without leading dashes.
// Example usage:
//
//	cmd.Flags().StringVar(&cfg.Inputs.ExtensionSummary, flags.FlagExtensionSummary, "", "...")
//	arg := "--" + flags.FlagExtensionSummary
const (
	// Inputs
	FlagExtensionSummary = "extension-summary"
	FlagExtensionEvents  = "extension-events"
	FlagScenarioSummary  = "scenario-summary"

	// Output
	FlagOut       = "out"
	FlagNoConsole = "no-console"

	// Config
	FlagConfig = "config"
)
