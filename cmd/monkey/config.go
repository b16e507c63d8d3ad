package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/monkey-arcade/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration the game would run with, as YAML.

Search order: --config, ~/.monkey/configs/monkey.yaml,
./configs/monkey.yaml, then the built-in defaults.

Examples:
  monkey config
  monkey config --defaults > configs/monkey.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in defaults instead")
}

func runConfig(cmd *cobra.Command, _ []string) {
	out := cmd.OutOrStdout()
	if flagDefaults {
		fmt.Fprint(out, string(config.DefaultYAML()))
		return
	}

	cfg, path, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if flagAssets != "" {
		cfg.Assets.Dir = flagAssets
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if path == "" {
		path = "built-in defaults"
	}
	fmt.Fprintf(out, "# source: %s\n%s", path, data)
}
