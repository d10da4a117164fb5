package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick mode, start level and difficulty interactively",
	Long: `Start in interactive menu mode.

Use Up/Down to pick a row and Left/Right to change it, Enter to play.
After a game ends and you quit it, you return to the menu.

Controls:
  Up/Down/j/k     - Select row
  Left/Right/h/l  - Change value
  Enter/Space     - Play
  Tab             - High scores
  Q/Esc           - Quit

Examples:
  tetris menu
  tetris menu --fps 30
  tetris menu --db ./scores.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
}

func runMenu(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig()
	tetris.SetConfigPath(flagConfig)

	for {
		result, err := tui.RunMenu(store, cfg)
		if err != nil {
			return err
		}
		cfg = result.Config

		if result.Quit {
			return nil
		}

		if result.WantsScoreboard {
			goBack, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if !goBack {
				return nil
			}
			continue
		}

		sel := result.Selection
		tetris.SetDifficultyPreset(string(sel.Difficulty))
		tetris.SetStartLevel(sel.StartLevel)

		game, err := registry.Create(sel.GameID)
		if err != nil {
			return err
		}

		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		logger.Info("starting", "mode", sel.GameID, "difficulty", sel.Difficulty, "level", sel.StartLevel)
		if err := tui.Run(game, store, cfg, logger); err != nil {
			return fmt.Errorf("running game: %w", err)
		}
	}
}
