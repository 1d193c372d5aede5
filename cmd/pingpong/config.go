package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pingpong/internal/config"
)

var flagDefault bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration a match would use, after the config file,
preset and flags are applied, as YAML.

Config search order:
  --config <path>
  ~/.arcade/configs/pingpong.yaml (or .toml)
  ./configs/pingpong.yaml (or .toml)
  built-in defaults

Examples:
  pingpong config
  pingpong config --preset hard
  pingpong config --default > ~/.arcade/configs/pingpong.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefault, "default", false, "Print the built-in default config file")
}

func runConfig(cmd *cobra.Command, args []string) {
	if flagDefault {
		os.Stdout.Write(config.DefaultYAML())
		return
	}

	cfg, err := loadConfig()
	if err != nil {
		fail("%v", err)
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		fail("%v", err)
	}
	os.Stdout.Write(data)
}
