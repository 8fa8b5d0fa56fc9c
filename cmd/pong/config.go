package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/pong-clone/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Prints the configuration pong would run with, after the config file
search and command line overrides, as YAML.

Search order:
  --config <path>
  ~/.pong/config.yaml
  ./configs/pong.yaml
  built-in defaults`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if _, err := out.Write([]byte("# source: " + cfg.Source + "\n")); err != nil {
		return err
	}
	_, err = out.Write(data)
	return err
}
