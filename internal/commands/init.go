package commands

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/releve-dev/releve/internal/config"
	"github.com/releve-dev/releve/internal/rules"
)

func newInitCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Write the default releve.yaml and rules.yaml",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}
			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}
			return runInit(absDir)
		},
	}

	return cmd
}

func runInit(dir string) error {
	cfg := config.Default()
	cfg.RulesFile = "rules.yaml"
	if err := config.Save(filepath.Join(dir, "releve.yaml"), cfg); err != nil {
		return err
	}
	if err := rules.Save(filepath.Join(dir, "rules.yaml"), rules.Default()); err != nil {
		return err
	}
	fmt.Printf("Initialized releve configuration at %s\n", dir)
	return nil
}
