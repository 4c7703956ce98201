package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/platform/tui"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game of 2048.

Controls:
  Arrows/WASD/hjkl - Slide tiles
  Mouse drag       - Swipe in the drag direction
  R                - New game (any time)
  Ctrl+S           - Save a screenshot
  Q/Esc/Ctrl+C     - Quit

Examples:
  t2048 play
  t2048 play --seed 42
  t2048 play --config ./my-2048.yaml
  t2048 play --log-file 2048.log --debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := openFileLogger("t2048")
	if err != nil {
		return err
	}
	defer closeLog()

	runtime := core.DefaultConfig()
	runtime.TickRate = cfg.Display.TickRate
	runtime.Seed = flagSeed
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		runtime.ScreenW = w
		runtime.ScreenH = h
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	err = tui.Run(tui.Options{
		Config:  cfg,
		Runtime: runtime,
		Store:   store,
		Logger:  logger,
	})
	if err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
