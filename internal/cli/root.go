// Package cli wires the suitenorm command tree.
package cli

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "suitenorm",
	Short:         "Normalize legacy braille test-suite documents",
	Long:          "Converts braille-translation test-suite documents written in any of the historical schema revisions into one canonical form. Malformed or unrecognized input is rejected, never repaired.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", color.RedString("error:"), err)
		os.Exit(1)
	}
}
