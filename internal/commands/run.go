package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/releve-dev/releve/internal/config"
	"github.com/releve-dev/releve/internal/logger"
	"github.com/releve-dev/releve/internal/pipeline"
	"github.com/releve-dev/releve/internal/rules"
)

func newRunCommand() *cobra.Command {
	var configFile string

	cmd := &cobra.Command{
		Use:   "run [directory]",
		Short: "Run the bank, card and account pipelines against a directory",
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
			return runPipelines(absDir, configFile)
		},
	}

	cmd.Flags().StringVar(&configFile, "config", "releve.yaml", "configuration file (relative to the directory)")

	return cmd
}

func runPipelines(dir, configFile string) error {
	log := logger.New()

	cfg := config.Default()
	cfgPath := filepath.Join(dir, configFile)
	if _, err := os.Stat(cfgPath); err == nil {
		loaded, err := config.Load(cfgPath)
		if err != nil {
			return err
		}
		cfg = loaded
		log.Info().Str("config", cfgPath).Msg("configuration loaded")
	} else {
		log.Info().Str("config", cfgPath).Msg("no configuration file, using defaults")
	}

	tables := rules.Default()
	if cfg.RulesFile != "" {
		var err error
		tables, err = rules.Load(filepath.Join(dir, cfg.RulesFile))
		if err != nil {
			return err
		}
		log.Info().Str("rules", cfg.RulesFile).Msg("rule tables loaded")
	}

	pipeline.New(dir, cfg, tables, log).Run()
	return nil
}
