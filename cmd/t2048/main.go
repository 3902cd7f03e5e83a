// t2048 is the 2048 sliding-tile puzzle for the terminal and the desktop.
//
// Usage:
//
//	t2048 play                 - Play in the terminal
//	t2048 window               - Play in a desktop window
//	t2048 replay <dir...>      - Apply moves headlessly and print the board
//	t2048 config               - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: from config, 60)
//	--seed <value>        - Set RNG seed for reproducible games
//	--config <path>       - Use a specific config file
//	--log-level <level>   - debug, info, warn or error
//	--log-file <path>     - Write logs to a file
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
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "t2048",
	Short: "2048 - slide and join numbered tiles",
	Long: `t2048 is the 2048 sliding-tile puzzle. Slide every tile on the 4x4
board in one direction; equal tiles that collide join into their sum.
Each move that changes the board drops a new 2 (sometimes a 4).

Available commands:
  play     - Play in the terminal
  window   - Play in a desktop window
  replay   - Apply a list of moves and print the result
  config   - Show the effective configuration

Examples:
  t2048 play
  t2048 play --speed fast
  t2048 window --seed 42
  t2048 replay --seed 7 left up up right
  t2048 config --config ./my-2048.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (frames per second, 0 = from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(configCmd)
}
