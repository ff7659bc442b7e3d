// Package commands defines the releve CLI.
package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/releve-dev/releve/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "releve",
		Short:   "Reconcile statement exports into the operations workbook",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newRunCommand())
	rootCmd.AddCommand(newInitCommand())

	return rootCmd
}
