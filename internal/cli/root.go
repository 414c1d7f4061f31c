package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	buildVersion = "dev"
	buildCommit  = "unknown"
	buildDate    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "extinv",
	Short: "Build a consolidated conformance inventory from extension and scenario reports",
	Long: `ExtInv consolidates extension-level and scenario-level conformance reports
into a single machine-readable inventory with a cause taxonomy for all failures.

ExtInv is report-only: it classifies and counts failures, it does not gate.

Examples:
	# Show available commands and global flags
	extinv --help

	# Build the inventory from the default report layout
	extinv build

	# List failure causes
	extinv causes list

	# Print build info
	extinv version

Output:
	The build command writes one JSON inventory document and prints a short
	human-readable summary to stdout.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&cfg.Runtime.Verbose, "verbose", false, "Enable verbose diagnostics")
}

func SetBuildInfo(version, commit, date string) {
	if version != "" {
		buildVersion = version
	}
	if commit != "" {
		buildCommit = commit
	}
	if date != "" {
		buildDate = date
	}

	rootCmd.Version = fmt.Sprintf("%s (%s) %s", buildVersion, buildCommit, buildDate)
	rootCmd.SetVersionTemplate("{{.Version}}\n")
}

func BuildInfo() (version, commit, date string) {
	return buildVersion, buildCommit, buildDate
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
