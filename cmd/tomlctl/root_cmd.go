// Package tomlctl implements the informative command-line surface over
// the toml package: parse-and-print, parse-to-JSON, and base/override
// config merging.
package tomlctl

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tomlctl",
	Short: "tomlctl inspects and merges TOML documents",
	// Execute prints the single diagnostic line itself.
	SilenceErrors: true,
	SilenceUsage:  true,
}

func init() {
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(parseStdinCmd)
	rootCmd.AddCommand(tomlConfCmd)
}

// Execute runs the root command, exiting the process with status 1 on
// failure, matching the teacher's root_cmd.go single entry point.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
