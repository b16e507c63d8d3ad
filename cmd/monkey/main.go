// monkey is a side-scrolling arcade game: keep the monkey airborne between
// drifting clouds for as long as you can.
//
// Usage:
//
//	monkey play              - Play in the terminal
//	monkey window            - Play in a desktop window
//	monkey serve             - Start SSH server for remote play
//	monkey snapshot          - Simulate headlessly and save a PNG frame
//	monkey config            - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--config <path>     - Use a specific config file
//	--assets <dir>      - Override the asset directory
//	--watch             - Reload the config file on change (applies on restart)
//	--log-level <lvl>   - debug, info, warn, error
//	--log-file <path>   - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagAssets   string
	flagWatch    bool
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "monkey",
	Short: "Monkey - dodge the clouds",
	Long: `Monkey is a one-button arcade game. Gravity pulls the monkey down,
each jump lifts it, and pairs of clouds scroll in from the right.
The score grows with every frame survived; touching a cloud ends the run.

Available commands:
  play      - Play in the terminal
  window    - Play in a desktop window
  serve     - Start SSH server for remote play
  snapshot  - Run a headless simulation and save a PNG
  config    - Print the effective configuration

Examples:
  monkey play
  monkey play --seed 42 --fps 30
  monkey window --assets ./assets
  monkey serve --ssh :2222 --http :8080
  monkey snapshot --frames 600 -o frame.png`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		if flagFPS <= 0 {
			return fmt.Errorf("--fps must be positive, got %d", flagFPS)
		}
		return nil
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagAssets, "assets", "", "Asset directory (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&flagWatch, "watch", false, "Reload the config file when it changes")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(snapshotCmd)
	rootCmd.AddCommand(configCmd)
}
