package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/happy-bunny/internal/core"
	"github.com/vovakirdan/happy-bunny/internal/platform/tui"
	"github.com/vovakirdan/happy-bunny/internal/scene"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a variant from a menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a variant.
Leaving a run returns to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select variant
  Tab          - High scores
  Q            - Quit

Examples:
  bunny menu
  bunny menu --fps 30
  bunny menu --db ./bunny.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	store := openStore()
	sound := newAudio()

	width, height := terminalSize()
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			break
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue // Back to menu
			}
			break // User quit from scoreboard
		}

		if menuResult.GameID == "" {
			break
		}

		env := newEnv(menuResult.GameID, store, cfg.ScreenW, cfg.ScreenH)
		director, err := scene.NewGameDirector(env)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}
		syncMute(sound, env)

		if err := tui.Run(director, env, sound); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}
		sound.StopAll()
		cfg.ScreenW, cfg.ScreenH = env.Runtime.ScreenW, env.Runtime.ScreenH

		// Loop back to menu
	}

	// Cleanup
	sound.Cleanup()
	if store != nil {
		store.Close()
	}
}
