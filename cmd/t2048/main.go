// t2048 is the 2048 sliding-tile puzzle for the terminal.
//
// Usage:
//
//	t2048                - Play (same as t2048 play)
//	t2048 play           - Play a game
//	t2048 scores         - Show high scores
//	t2048 serve          - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: from config, 60)
//	--seed <value>      - Set RNG seed for reproducible games
//	--db <path>         - Set database path (default: ~/.tui-2048/scores.db)
//	--config <path>     - Use a custom config YAML
//	--log-file <path>   - Write logs to a file
//	--debug             - Log every move and spawn
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/config"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagConfig  string
	flagLogFile string
	flagDebug   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "t2048",
	Short: "2048 - slide and merge tiles in your terminal",
	Long: `2048 is the sliding-tile puzzle: slide the board in one of four
directions, equal tiles merge into their sum, and a new tile appears after
every move. The game ends when no move can change the board.

Available commands:
  play     - Play a game (default)
  scores   - View high scores
  serve    - Start SSH server for remote play

Examples:
  t2048
  t2048 play --seed 42
  t2048 scores
  t2048 serve --ssh :2222`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = use config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.tui-2048/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// loadConfig reads the config and applies flag overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagFPS > 0 {
		cfg.Display.TickRate = flagFPS
	}
	return cfg, nil
}

// openLogger returns a logger writing to w, at debug level with --debug.
func openLogger(w io.Writer, prefix string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// openFileLogger opens --log-file for appending. With no log file the
// logger is nil and the caller discards events.
func openFileLogger(prefix string) (*log.Logger, func(), error) {
	if flagLogFile == "" {
		return nil, func() {}, nil
	}

	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	return openLogger(f, prefix), func() { f.Close() }, nil
}
