package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/happy-bunny/internal/games/bunny"
	"github.com/vovakirdan/happy-bunny/internal/platform/tui"
	"github.com/vovakirdan/happy-bunny/internal/registry"
	"github.com/vovakirdan/happy-bunny/internal/scene"
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play in the terminal",
	Long: `Start a run of the given variant (default: bunny).

Controls:
  A/D, Left/Right  - Tilt the bunny
  Mouse drag       - Drag the bunny
  Mouse click      - Blow up a bomb
  P                - Pause
  M                - Toggle music
  Enter/Space      - Play again (after game over)
  B/Esc, Q         - Leave
  Ctrl+S           - Save a screenshot

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  bunny play
  bunny play bunny-physics
  bunny play --difficulty hard
  bunny play --config ./my-bunny.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

// variantArg returns the variant named on the command line or the default.
func variantArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return bunny.IDClassic
}

func checkVariant(gameID string) {
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'bunny list' to see available variants.")
		os.Exit(1)
	}
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := variantArg(args)
	checkVariant(gameID)

	store := openStore()
	width, height := terminalSize()
	env := newEnv(gameID, store, width, height)

	director, err := scene.NewGameDirector(env)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	sound := newAudio()
	syncMute(sound, env)

	// Run the game
	runErr := tui.Run(director, env, sound)

	sound.Cleanup()
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
