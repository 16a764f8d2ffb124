package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "roomgeo",
	Short: "Roomgeo - Floor-plan geometry inspector",
	Long: `Roomgeo inspects persisted wall lists: it traces room boundaries,
resolves nested rooms, triangulates floor meshes, and reports room shape
metrics and validation errors. Input is the wall-list JSON produced by the
room editor.`,
	SilenceUsage:      true,
	DisableAutoGenTag: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
