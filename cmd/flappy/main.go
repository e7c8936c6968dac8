// flappy is a Flappy Bird clone for the terminal.
//
// Usage:
//
//	flappy              - Play
//	flappy score        - Show the high score for the current directory
//	flappy defaults     - Print the default configuration
//
// Global flags:
//
//	--config <path>     - Game configuration YAML
//	--highscore <path>  - High-score record (default: ~/.flappy/high_score.json)
//	--store <backend>   - Record backend: json or sqlite
//	--assets <dir>      - Directory with images/ and audio/ overriding the built-in assets
//	--mute              - Disable sound
//	--seed <value>      - RNG seed for pipe placement (0 = random based on time)
//	--log-file <path>   - Log file (default: ~/.flappy/flappy.log)
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig    string
	flagHighScore string
	flagStore     string
	flagAssets    string
	flagMute      bool
	flagSeed      int64
	flagLogFile   string
	flagLogLevel  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappy",
	Short: "Flappy Bird in your terminal",
	Long: `Guide the bird through the gaps between the pipes.

Controls:
  Space/Click  - Flap (starts a new game when waiting)
  Esc/Q        - Save the high score and quit
  Ctrl+S       - Save a screenshot to ~/.flappy/screenshots

The high score is kept per working directory: running from another
directory starts again from zero.

Examples:
  flappy
  flappy --mute --seed 42
  flappy --store sqlite --highscore ~/.flappy/high_score.db
  flappy --config ./my-flappy.yaml
  flappy score`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagHighScore, "highscore", "", "Path to the high-score record (default ~/.flappy/high_score.json or .db)")
	rootCmd.PersistentFlags().StringVar(&flagStore, "store", "json", "High-score backend: json or sqlite")
	rootCmd.PersistentFlags().StringVar(&flagAssets, "assets", "", "Directory overriding the built-in images/ and audio/")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Disable sound")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "~/.flappy/flappy.log", "Log file path")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(defaultsCmd)
}
