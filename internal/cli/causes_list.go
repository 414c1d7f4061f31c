package cli

import (
	"fmt"
	"io"

	"extinv/internal/cause"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var causesListQuiet bool

var causesCmd = &cobra.Command{
	Use:   "causes",
	Short: "Browse the failure cause taxonomy",
	Long: `Browse the failure cause taxonomy.

Every failing inventory entry is classified into exactly one of these
causes. The taxonomy is fixed for a given build.

Examples:
  # List all causes
  extinv causes list
`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var causesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List failure causes",
	Long: `List the failure causes this build classifies against.

Causes are printed in taxonomy order, the same order they appear in the
inventory document.

Examples:
  extinv causes list

Output:
  A vertical list of causes:
    ----------------------------------------
    CAUSE: {CODE}
    ----------------------------------------
    {DESCRIPTION}
    Remediation: {REMEDIATION}
    Severity:    {SEVERITY}
`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, d := range cause.Taxonomy() {
			if causesListQuiet {
				fmt.Fprintln(cmd.OutOrStdout(), d.Code)
			} else {
				printCause(cmd.OutOrStdout(), d)
			}
		}
		return nil
	},
}

var causesShowCmd = &cobra.Command{
	Use:   "show [cause-code]",
	Short: "Show details of a specific cause",
	Long: `Show details of a specific cause by its code.

Examples:
  extinv causes show manifest_mismatch
`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, ok := cause.Lookup(args[0])
		if !ok {
			return fmt.Errorf("cause not found: %s", args[0])
		}
		printCause(cmd.OutOrStdout(), d)
		return nil
	},
}

func printCause(w io.Writer, d cause.Descriptor) {
	bold := color.New(color.Bold)
	fmt.Fprintln(w, "----------------------------------------")
	bold.Fprintf(w, "CAUSE: %s\n", d.Code)
	fmt.Fprintln(w, "----------------------------------------")
	fmt.Fprintln(w, d.Description)
	fmt.Fprintf(w, "Remediation: %s\n", d.Remediation)
	fmt.Fprintf(w, "Severity:    %s\n", d.Severity)
	fmt.Fprintln(w)
}

func init() {
	rootCmd.AddCommand(causesCmd)
	causesCmd.AddCommand(causesListCmd)
	causesListCmd.Flags().BoolVarP(&causesListQuiet, "quiet", "q", false, "Only print cause codes")
	causesCmd.AddCommand(causesShowCmd)
}
