package cli

import (
	"fmt"
	"time"

	"extinv/internal/config"
	"extinv/internal/flags"
	"extinv/internal/inventory"
	"extinv/internal/output"
	"extinv/internal/report"

	"github.com/spf13/cobra"
)

var cfg = config.New()

var buildConfigFile string

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the consolidated inventory from conformance reports",
	Long: `Build the consolidated inventory from conformance reports.

Inputs:
	--extension-summary   extension conformance summary JSON (required file)
	--extension-events    extension events JSONL (optional; absence degrades
	                      per-extension detail but is not fatal)
	--scenario-summary    scenario conformance summary JSON (required file)

All three are produced by the external conformance harness. ExtInv reads
them once, classifies every failing entry into a fixed cause taxonomy, and
writes one consolidated JSON document.

Exit codes:
	0 = inventory written (regardless of how many failures were found)
	1 = a required report is missing or unreadable; nothing is written

Examples:
	# Default harness report layout
	extinv build

	# Explicit paths
	extinv build --extension-summary reports/conformance_report.json \
		--scenario-summary reports/scenario_conformance.json \
		--out reports/inventory.json

	# Machine consumers: write the document only
	extinv build --no-console
`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if buildConfigFile != "" {
			fc, err := config.LoadFile(buildConfigFile)
			if err != nil {
				return err
			}
			fc.Apply(cfg, cmd.Flags().Changed)
		}

		if err := cfg.Validate(); err != nil {
			return err
		}

		if cfg.Runtime.Verbose {
			fmt.Fprintf(cmd.ErrOrStderr(), "reading extension summary %s\n", cfg.Inputs.ExtensionSummary)
			fmt.Fprintf(cmd.ErrOrStderr(), "reading extension events %s (optional)\n", cfg.Inputs.ExtensionEvents)
			fmt.Fprintf(cmd.ErrOrStderr(), "reading scenario summary %s\n", cfg.Inputs.ScenarioSummary)
		}

		doc, err := runBuild(cfg)
		if err != nil {
			return err
		}

		if err := output.WriteDocument(cfg.Output.Path, doc); err != nil {
			return err
		}

		if !cfg.Output.NoConsole {
			return output.PrintSummary(cmd.OutOrStdout(), cfg.Output.Path, doc)
		}
		return nil
	},
}

// runBuild loads the three reports sequentially and assembles the document.
// Any missing required report or malformed JSON aborts before output.
func runBuild(cfg *config.Config) (*inventory.Document, error) {
	extSummary, err := report.LoadExtensionSummary(cfg.Inputs.ExtensionSummary)
	if err != nil {
		return nil, err
	}
	events, err := report.LoadExtensionEvents(cfg.Inputs.ExtensionEvents)
	if err != nil {
		return nil, err
	}
	scnSummary, err := report.LoadScenarioSummary(cfg.Inputs.ScenarioSummary)
	if err != nil {
		return nil, err
	}
	return inventory.Build(extSummary, events, scnSummary, cfg.Thresholds, time.Now().UTC()), nil
}

func init() {
	rootCmd.AddCommand(buildCmd)

	// Inputs
	buildCmd.Flags().StringVar(&cfg.Inputs.ExtensionSummary, flags.FlagExtensionSummary, cfg.Inputs.ExtensionSummary, "Path to the extension conformance summary JSON")
	buildCmd.Flags().StringVar(&cfg.Inputs.ExtensionEvents, flags.FlagExtensionEvents, cfg.Inputs.ExtensionEvents, "Path to the extension events JSONL (optional)")
	buildCmd.Flags().StringVar(&cfg.Inputs.ScenarioSummary, flags.FlagScenarioSummary, cfg.Inputs.ScenarioSummary, "Path to the scenario conformance summary JSON")

	// Output
	buildCmd.Flags().StringVar(&cfg.Output.Path, flags.FlagOut, cfg.Output.Path, "Path to write the inventory document")
	buildCmd.Flags().BoolVar(&cfg.Output.NoConsole, flags.FlagNoConsole, false, "Suppress the console summary")

	// Config file overlay
	buildCmd.Flags().StringVar(&buildConfigFile, flags.FlagConfig, "", "Path to a YAML config file (paths and regression thresholds; explicit flags win)")
}
